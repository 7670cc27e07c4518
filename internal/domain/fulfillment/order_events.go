package fulfillment

import (
	"github.com/google/uuid"

	"github.com/storefront/backoffice/internal/domain/shared"
)

// Aggregate type constant
const AggregateTypeOrder = "Order"

// Event type constants
const (
	EventTypeOrderCreated      = "OrderCreated"
	EventTypeOrderTransitioned = "OrderTransitioned"
	EventTypeOrderDelivered    = "OrderDelivered"
	EventTypeOrderCancelled    = "OrderCancelled"
)

// OrderCreatedEvent is raised when a new order enters the back office
type OrderCreatedEvent struct {
	shared.BaseDomainEvent
	OrderID      uuid.UUID `json:"order_id"`
	OrderNumber  string    `json:"order_number"`
	CustomerName string    `json:"customer_name"`
}

// NewOrderCreatedEvent creates a new OrderCreatedEvent
func NewOrderCreatedEvent(order *Order) *OrderCreatedEvent {
	return &OrderCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOrderCreated, AggregateTypeOrder, order.ID),
		OrderID:         order.ID,
		OrderNumber:     order.OrderNumber,
		CustomerName:    order.CustomerName,
	}
}

// EventType returns the event type name
func (e *OrderCreatedEvent) EventType() string {
	return EventTypeOrderCreated
}

// OrderTransitionedEvent is raised on every successful status transition
type OrderTransitionedEvent struct {
	shared.BaseDomainEvent
	OrderID     uuid.UUID   `json:"order_id"`
	OrderNumber string      `json:"order_number"`
	From        OrderStatus `json:"from"`
	To          OrderStatus `json:"to"`
	Note        *string     `json:"note,omitempty"`
	EntryID     uuid.UUID   `json:"entry_id"`
}

// NewOrderTransitionedEvent creates a new OrderTransitionedEvent
func NewOrderTransitionedEvent(order *Order, from OrderStatus, entry *HistoryEntry) *OrderTransitionedEvent {
	return &OrderTransitionedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOrderTransitioned, AggregateTypeOrder, order.ID),
		OrderID:         order.ID,
		OrderNumber:     order.OrderNumber,
		From:            from,
		To:              entry.Status,
		Note:            entry.Note,
		EntryID:         entry.ID,
	}
}

// EventType returns the event type name
func (e *OrderTransitionedEvent) EventType() string {
	return EventTypeOrderTransitioned
}

// OrderDeliveredEvent is raised when an order reaches its delivered terminal state
type OrderDeliveredEvent struct {
	shared.BaseDomainEvent
	OrderID     uuid.UUID `json:"order_id"`
	OrderNumber string    `json:"order_number"`
}

// NewOrderDeliveredEvent creates a new OrderDeliveredEvent
func NewOrderDeliveredEvent(order *Order) *OrderDeliveredEvent {
	return &OrderDeliveredEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOrderDelivered, AggregateTypeOrder, order.ID),
		OrderID:         order.ID,
		OrderNumber:     order.OrderNumber,
	}
}

// EventType returns the event type name
func (e *OrderDeliveredEvent) EventType() string {
	return EventTypeOrderDelivered
}

// OrderCancelledEvent is raised when an order is cancelled
type OrderCancelledEvent struct {
	shared.BaseDomainEvent
	OrderID     uuid.UUID `json:"order_id"`
	OrderNumber string    `json:"order_number"`
	Reason      string    `json:"reason"`
}

// NewOrderCancelledEvent creates a new OrderCancelledEvent
func NewOrderCancelledEvent(order *Order, reason string) *OrderCancelledEvent {
	return &OrderCancelledEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOrderCancelled, AggregateTypeOrder, order.ID),
		OrderID:         order.ID,
		OrderNumber:     order.OrderNumber,
		Reason:          reason,
	}
}

// EventType returns the event type name
func (e *OrderCancelledEvent) EventType() string {
	return EventTypeOrderCancelled
}
