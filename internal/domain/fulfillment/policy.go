package fulfillment

// Status pairs the two independent axes of an order's lifecycle
type Status struct {
	Order   OrderStatus   `json:"order" gorm:"column:order_status"`
	Payment PaymentStatus `json:"payment" gorm:"column:payment_status"`
}

// CanAdvance reports whether any forward transition is currently permitted.
// A terminal order never advances; an unpaid order never advances.
func (st Status) CanAdvance() bool {
	if !st.Order.IsValid() || st.Order.IsTerminal() {
		return false
	}
	return st.Payment.IsPaid()
}

// ReachableStatuses returns every status reachable in one step from the
// current one, in sequence order. Skipping intermediate stages is allowed:
// the policy models "any later stage", not "only the next stage".
// Terminal, cancelled, and unknown statuses reach nothing.
func ReachableStatuses(current OrderStatus) []OrderStatus {
	idx := current.SequenceIndex()
	if idx < 0 {
		return []OrderStatus{}
	}
	return append([]OrderStatus{}, statusSequence[idx+1:]...)
}

// CanTransitionTo checks if the status can transition to the target status.
// Cancellation is reachable from any non-terminal status even though it is
// not a sequence member.
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	if target == OrderStatusCancelled {
		return s.IsValid() && !s.IsTerminal()
	}
	for _, status := range ReachableStatuses(s) {
		if status == target {
			return true
		}
	}
	return false
}
