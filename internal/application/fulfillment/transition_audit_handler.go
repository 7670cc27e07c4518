package fulfillment

import (
	"context"

	"go.uber.org/zap"

	"github.com/storefront/backoffice/internal/domain/fulfillment"
	"github.com/storefront/backoffice/internal/domain/shared"
)

// TransitionAuditHandler writes an audit log line for every status change.
// The ledger is the durable record; this is the operational trail.
type TransitionAuditHandler struct {
	logger *zap.Logger
}

// NewTransitionAuditHandler creates a new TransitionAuditHandler
func NewTransitionAuditHandler(logger *zap.Logger) *TransitionAuditHandler {
	return &TransitionAuditHandler{logger: logger}
}

// EventTypes returns the event types this handler subscribes to
func (h *TransitionAuditHandler) EventTypes() []string {
	return []string{
		fulfillment.EventTypeOrderTransitioned,
		fulfillment.EventTypeOrderCancelled,
	}
}

// Handle processes a domain event
func (h *TransitionAuditHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	switch e := event.(type) {
	case *fulfillment.OrderTransitionedEvent:
		fields := []zap.Field{
			zap.String("order_id", e.OrderID.String()),
			zap.String("order_number", e.OrderNumber),
			zap.String("from", e.From.String()),
			zap.String("to", e.To.String()),
		}
		if e.Note != nil {
			fields = append(fields, zap.String("note", *e.Note))
		}
		h.logger.Info("order status changed", fields...)
	case *fulfillment.OrderCancelledEvent:
		h.logger.Info("order cancelled",
			zap.String("order_id", e.OrderID.String()),
			zap.String("order_number", e.OrderNumber),
			zap.String("reason", e.Reason),
		)
	}
	return nil
}

var _ shared.EventHandler = (*TransitionAuditHandler)(nil)
