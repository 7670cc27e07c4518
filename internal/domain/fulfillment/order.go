package fulfillment

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/storefront/backoffice/internal/domain/shared"
)

// OrderItem represents a line item on an order. Line items are display data
// for the back office; they carry no workflow semantics.
type OrderItem struct {
	ID          uuid.UUID
	OrderID     uuid.UUID
	ProductName string
	ProductCode string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	Amount      decimal.Decimal
	CreatedAt   time.Time
}

// TableName returns the table name for GORM
func (OrderItem) TableName() string {
	return "order_items"
}

// NewOrderItem creates a new order line item
func NewOrderItem(orderID uuid.UUID, productName, productCode string, quantity, unitPrice decimal.Decimal) (*OrderItem, error) {
	if productName == "" {
		return nil, shared.NewDomainError("INVALID_PRODUCT_NAME", "Product name cannot be empty")
	}
	if quantity.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if unitPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}

	return &OrderItem{
		ID:          uuid.New(),
		OrderID:     orderID,
		ProductName: productName,
		ProductCode: productCode,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		Amount:      quantity.Mul(unitPrice),
		CreatedAt:   time.Now(),
	}, nil
}

// Order is the aggregate root for order fulfillment. Its status pair and
// history ledger are mutated only through the methods below; the engine is
// the single writer.
type Order struct {
	shared.BaseAggregateRoot
	OrderNumber  string
	CustomerName string
	Items        []OrderItem `gorm:"foreignKey:OrderID"`
	TotalAmount  decimal.Decimal
	Status       Status  `gorm:"embedded"`
	History      History `gorm:"foreignKey:OrderID"`
}

// TableName returns the table name for GORM
func (Order) TableName() string {
	return "orders"
}

// NewOrder creates a new order in pending/pending state. The creation event
// doubles as the ledger's first entry.
func NewOrder(orderNumber, customerName string) (*Order, error) {
	if orderNumber == "" {
		return nil, shared.NewDomainError("INVALID_ORDER_NUMBER", "Order number cannot be empty")
	}
	if len(orderNumber) > 50 {
		return nil, shared.NewDomainError("INVALID_ORDER_NUMBER", "Order number cannot exceed 50 characters")
	}
	if customerName == "" {
		return nil, shared.NewDomainError("INVALID_CUSTOMER_NAME", "Customer name cannot be empty")
	}

	order := &Order{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		OrderNumber:       orderNumber,
		CustomerName:      customerName,
		Items:             make([]OrderItem, 0),
		TotalAmount:       decimal.Zero,
		Status: Status{
			Order:   OrderStatusPending,
			Payment: PaymentStatusPending,
		},
	}
	order.History = History{NewHistoryEntry(order.ID, OrderStatusPending, "", order.CreatedAt)}

	order.AddDomainEvent(NewOrderCreatedEvent(order))

	return order, nil
}

// AddItem adds a line item. Items can only change while the order is still
// pending; fulfillment stages work from a fixed manifest.
func (o *Order) AddItem(productName, productCode string, quantity, unitPrice decimal.Decimal) (*OrderItem, error) {
	if o.Status.Order != OrderStatusPending {
		return nil, shared.ErrInvalidState
	}

	item, err := NewOrderItem(o.ID, productName, productCode, quantity, unitPrice)
	if err != nil {
		return nil, err
	}

	o.Items = append(o.Items, *item)
	o.TotalAmount = o.TotalAmount.Add(item.Amount)
	o.UpdatedAt = time.Now()

	return item, nil
}

// Advance moves the order to the target status and appends a ledger entry.
// Guards run in a fixed order: finalized, payment, reachability, clock.
// On success the returned entry is already part of the order's history.
func (o *Order) Advance(target OrderStatus, note string, now time.Time) (*HistoryEntry, error) {
	if !o.Status.Order.IsValid() {
		return nil, ErrUnknownStatus
	}
	if o.Status.Order.IsTerminal() {
		return nil, ErrOrderFinalized
	}
	if !o.Status.Payment.IsPaid() {
		return nil, ErrPaymentNotConfirmed
	}
	if !target.IsValid() {
		return nil, ErrUnknownStatus
	}
	if !o.Status.Order.CanTransitionTo(target) {
		return nil, ErrInvalidTransition
	}

	entry := NewHistoryEntry(o.ID, target, note, now)
	history, err := o.History.Append(entry)
	if err != nil {
		return nil, err
	}

	from := o.Status.Order
	o.History = history
	o.Status.Order = target
	o.UpdatedAt = now

	o.AddDomainEvent(NewOrderTransitionedEvent(o, from, &entry))
	switch target {
	case OrderStatusDelivered:
		o.AddDomainEvent(NewOrderDeliveredEvent(o))
	case OrderStatusCancelled:
		o.AddDomainEvent(NewOrderCancelledEvent(o, note))
	}

	return &entry, nil
}

// RecordPayment records the payment state reported by the payment
// collaborator. Payment is a separate axis: no ledger entry is written.
func (o *Order) RecordPayment(payment PaymentStatus) error {
	if !payment.IsValid() {
		return ErrUnknownStatus
	}
	o.Status.Payment = payment
	o.UpdatedAt = time.Now()
	return nil
}

// ReachableStatuses returns the statuses the order can move to in one step
func (o *Order) ReachableStatuses() []OrderStatus {
	return ReachableStatuses(o.Status.Order)
}

// CanAdvance reports whether any transition is currently permitted
func (o *Order) CanAdvance() bool {
	return o.Status.CanAdvance()
}

// IsTerminal returns true if the order is delivered or cancelled
func (o *Order) IsTerminal() bool {
	return o.Status.Order.IsTerminal()
}

// IsDelivered returns true if the order is delivered
func (o *Order) IsDelivered() bool {
	return o.Status.Order == OrderStatusDelivered
}

// IsCancelled returns true if the order is cancelled
func (o *Order) IsCancelled() bool {
	return o.Status.Order == OrderStatusCancelled
}

// ItemCount returns the number of line items
func (o *Order) ItemCount() int {
	return len(o.Items)
}
