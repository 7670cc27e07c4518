package fulfillment

// OrderStatus represents the fulfillment stage of an order
type OrderStatus string

const (
	OrderStatusPending        OrderStatus = "pending"
	OrderStatusProcessing     OrderStatus = "processing"
	OrderStatusPackaging      OrderStatus = "packaging"
	OrderStatusShipped        OrderStatus = "shipped"
	OrderStatusReadyForPickup OrderStatus = "ready_for_pickup"
	OrderStatusDelivered      OrderStatus = "delivered"
	OrderStatusCancelled      OrderStatus = "cancelled"
)

// statusSequence is the canonical forward progression of an order.
// Cancelled is terminal but deliberately not part of the sequence.
var statusSequence = []OrderStatus{
	OrderStatusPending,
	OrderStatusProcessing,
	OrderStatusPackaging,
	OrderStatusShipped,
	OrderStatusReadyForPickup,
	OrderStatusDelivered,
}

// Sequence returns the canonical forward progression of order statuses
func Sequence() []OrderStatus {
	return append([]OrderStatus(nil), statusSequence...)
}

// IsValid checks if the status is a valid OrderStatus
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusPackaging,
		OrderStatusShipped, OrderStatusReadyForPickup, OrderStatusDelivered,
		OrderStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of OrderStatus
func (s OrderStatus) String() string {
	return string(s)
}

// SequenceIndex returns the position of the status within the canonical
// progression, or -1 for cancelled and unknown values
func (s OrderStatus) SequenceIndex() int {
	for i, status := range statusSequence {
		if status == s {
			return i
		}
	}
	return -1
}

// IsTerminal returns true for statuses that permit no further transitions
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// PaymentStatus tracks whether funds have cleared for an order
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// IsValid checks if the status is a valid PaymentStatus
func (p PaymentStatus) IsValid() bool {
	switch p {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusFailed, PaymentStatusRefunded:
		return true
	}
	return false
}

// String returns the string representation of PaymentStatus
func (p PaymentStatus) String() string {
	return string(p)
}

// IsPaid returns true once funds have cleared
func (p PaymentStatus) IsPaid() bool {
	return p == PaymentStatusPaid
}
