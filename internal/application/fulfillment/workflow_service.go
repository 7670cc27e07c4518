package fulfillment

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/storefront/backoffice/internal/domain/fulfillment"
	"github.com/storefront/backoffice/internal/domain/shared"
)

// SnapshotCache caches order snapshots between reads. Implementations are
// best effort: a miss or a failed write must never fail the request.
type SnapshotCache interface {
	Get(ctx context.Context, orderID uuid.UUID) (*OrderResponse, bool)
	Set(ctx context.Context, snapshot *OrderResponse)
	Invalidate(ctx context.Context, orderID uuid.UUID)
}

// WorkflowService is the only entry point permitted to mutate an order's
// status. It validates a requested transition against the policy, applies
// it, persists the new snapshot together with the appended ledger entry,
// and returns the result as the caller's new ground truth.
type WorkflowService struct {
	orderRepo      fulfillment.OrderRepository
	cache          SnapshotCache
	eventPublisher shared.EventPublisher
	logger         *zap.Logger
	now            func() time.Time
}

// NewWorkflowService creates a new WorkflowService
func NewWorkflowService(orderRepo fulfillment.OrderRepository, logger *zap.Logger) *WorkflowService {
	return &WorkflowService{
		orderRepo: orderRepo,
		logger:    logger,
		now:       time.Now,
	}
}

// SetEventPublisher sets the event publisher for cross-context integration
func (s *WorkflowService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// SetSnapshotCache sets the snapshot cache used by reads
func (s *WorkflowService) SetSnapshotCache(cache SnapshotCache) {
	s.cache = cache
}

// SetClock overrides the timestamp source. Tests use this to control the
// monotonic clock the ledger depends on.
func (s *WorkflowService) SetClock(now func() time.Time) {
	s.now = now
}

// Create registers a new order from the checkout/POS flow
func (s *WorkflowService) Create(ctx context.Context, req CreateOrderRequest) (*OrderResponse, error) {
	orderNumber, err := s.orderRepo.GenerateOrderNumber(ctx)
	if err != nil {
		return nil, err
	}

	order, err := fulfillment.NewOrder(orderNumber, req.CustomerName)
	if err != nil {
		return nil, err
	}

	for _, item := range req.Items {
		quantity := decimal.NewFromFloat(item.Quantity)
		unitPrice := decimal.NewFromFloat(item.UnitPrice)
		if _, err := order.AddItem(item.ProductName, item.ProductCode, quantity, unitPrice); err != nil {
			return nil, err
		}
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, order)

	response := ToOrderResponse(order, s.now())
	return &response, nil
}

// GetByID retrieves an order snapshot with its full history
func (s *WorkflowService) GetByID(ctx context.Context, orderID uuid.UUID) (*OrderResponse, error) {
	if s.cache != nil {
		if snapshot, ok := s.cache.Get(ctx, orderID); ok {
			return snapshot, nil
		}
	}

	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	response := ToOrderResponse(order, s.now())
	if s.cache != nil {
		s.cache.Set(ctx, &response)
	}
	return &response, nil
}

// GetByOrderNumber retrieves an order snapshot by its order number
func (s *WorkflowService) GetByOrderNumber(ctx context.Context, orderNumber string) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByOrderNumber(ctx, orderNumber)
	if err != nil {
		return nil, err
	}
	response := ToOrderResponse(order, s.now())
	return &response, nil
}

// List retrieves orders with filtering and pagination
func (s *WorkflowService) List(ctx context.Context, filter OrderListFilter) ([]OrderListItemResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.OrderBy == "" {
		filter.OrderBy = "created_at"
	}
	if filter.OrderDir == "" {
		filter.OrderDir = "desc"
	}

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Search:   filter.Search,
		Filters:  make(map[string]interface{}),
	}
	if filter.Status != nil {
		if !filter.Status.IsValid() {
			return nil, 0, fulfillment.ErrUnknownStatus
		}
		domainFilter.Filters["order_status"] = filter.Status.String()
	}

	orders, err := s.orderRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.orderRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	items := make([]OrderListItemResponse, len(orders))
	for i := range orders {
		items[i] = ToOrderListItemResponse(&orders[i])
	}
	return items, total, nil
}

// History retrieves an order's ledger, newest first, for the admin timeline
func (s *WorkflowService) History(ctx context.Context, orderID uuid.UUID) ([]HistoryEntryResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	entries := order.History.ReverseChronological()
	history := make([]HistoryEntryResponse, len(entries))
	for i, entry := range entries {
		history[i] = ToHistoryEntryResponse(entry, now)
	}
	return history, nil
}

// AvailableTransitions returns the targets the UI may offer for an order
func (s *WorkflowService) AvailableTransitions(ctx context.Context, orderID uuid.UUID) (*AvailableTransitionsResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	reachable := order.ReachableStatuses()
	targets := make([]string, len(reachable))
	for i, status := range reachable {
		targets[i] = status.String()
	}

	return &AvailableTransitionsResponse{
		Status: StatusResponse{
			Order:   order.Status.Order.String(),
			Payment: order.Status.Payment.String(),
		},
		CanAdvance: order.CanAdvance(),
		Reachable:  targets,
	}, nil
}

// RequestTransition validates and applies one status transition. On success
// the returned snapshot and entry were persisted atomically; on failure the
// order is untouched and the error identifies the exact rejection. Engine
// rejections are never retried here: the operator decides what to do next.
func (s *WorkflowService) RequestTransition(ctx context.Context, orderID uuid.UUID, req TransitionRequest) (*TransitionResponse, error) {
	target := fulfillment.OrderStatus(req.Target)
	if !target.IsValid() {
		return nil, fulfillment.ErrUnknownStatus
	}

	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	entry, err := order.Advance(target, req.Note, s.now())
	if err != nil {
		if err == fulfillment.ErrClockSkew {
			// Operational anomaly, not an operator mistake. Escalate via
			// logs; retrying with the same clock will not help.
			s.logger.Error("ledger clock skew detected",
				zap.String("order_id", orderID.String()),
				zap.String("order_number", order.OrderNumber),
				zap.String("target", target.String()),
			)
		}
		return nil, err
	}

	if err := s.orderRepo.SaveWithLockAndEntry(ctx, order, entry); err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx, orderID)
	}
	s.publishEvents(ctx, order)

	now := s.now()
	return &TransitionResponse{
		Order: ToOrderResponse(order, now),
		Entry: ToHistoryEntryResponse(*entry, now),
	}, nil
}

// RecordPayment records the payment state reported by the payment provider
func (s *WorkflowService) RecordPayment(ctx context.Context, orderID uuid.UUID, req RecordPaymentRequest) (*OrderResponse, error) {
	payment := fulfillment.PaymentStatus(req.Payment)
	if !payment.IsValid() {
		return nil, fulfillment.ErrUnknownStatus
	}

	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := order.RecordPayment(payment); err != nil {
		return nil, err
	}

	if err := s.orderRepo.SaveWithLockAndEntry(ctx, order, nil); err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx, orderID)
	}

	response := ToOrderResponse(order, s.now())
	return &response, nil
}

// StatusSummary returns per-status order counts for the dashboard
func (s *WorkflowService) StatusSummary(ctx context.Context) (*OrderStatusSummary, error) {
	statuses := append(fulfillment.Sequence(), fulfillment.OrderStatusCancelled)

	summary := &OrderStatusSummary{Counts: make([]StatusCount, 0, len(statuses))}
	for _, status := range statuses {
		count, err := s.orderRepo.CountByStatus(ctx, status)
		if err != nil {
			return nil, err
		}
		summary.Counts = append(summary.Counts, StatusCount{Status: status.String(), Count: count})
		summary.Total += count
	}
	return summary, nil
}

// publishEvents drains the aggregate's pending events to the bus.
// Publishing is async integration: a failed handler is logged, not
// propagated into the request.
func (s *WorkflowService) publishEvents(ctx context.Context, order *fulfillment.Order) {
	if s.eventPublisher == nil {
		return
	}
	events := order.GetDomainEvents()
	if len(events) == 0 {
		return
	}
	if err := s.eventPublisher.Publish(ctx, events...); err != nil {
		s.logger.Warn("failed to publish domain events",
			zap.String("order_id", order.ID.String()),
			zap.Int("event_count", len(events)),
			zap.Error(err),
		)
	}
	order.ClearDomainEvents()
}
