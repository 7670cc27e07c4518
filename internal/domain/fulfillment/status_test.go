package fulfillment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_IsValid(t *testing.T) {
	tests := []struct {
		status  OrderStatus
		isValid bool
	}{
		{OrderStatusPending, true},
		{OrderStatusProcessing, true},
		{OrderStatusPackaging, true},
		{OrderStatusShipped, true},
		{OrderStatusReadyForPickup, true},
		{OrderStatusDelivered, true},
		{OrderStatusCancelled, true},
		{OrderStatus("INVALID"), false},
		{OrderStatus("Pending"), false},
		{OrderStatus(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.isValid, tt.status.IsValid())
		})
	}
}

func TestOrderStatus_SequenceIndex(t *testing.T) {
	tests := []struct {
		status OrderStatus
		index  int
	}{
		{OrderStatusPending, 0},
		{OrderStatusProcessing, 1},
		{OrderStatusPackaging, 2},
		{OrderStatusShipped, 3},
		{OrderStatusReadyForPickup, 4},
		{OrderStatusDelivered, 5},
		{OrderStatusCancelled, -1},
		{OrderStatus("bogus"), -1},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.index, tt.status.SequenceIndex())
		})
	}
}

func TestOrderStatus_IsTerminal(t *testing.T) {
	assert.True(t, OrderStatusDelivered.IsTerminal())
	assert.True(t, OrderStatusCancelled.IsTerminal())
	assert.False(t, OrderStatusPending.IsTerminal())
	assert.False(t, OrderStatusShipped.IsTerminal())
	assert.False(t, OrderStatusReadyForPickup.IsTerminal())
}

func TestSequence(t *testing.T) {
	seq := Sequence()
	assert.Equal(t, []OrderStatus{
		OrderStatusPending,
		OrderStatusProcessing,
		OrderStatusPackaging,
		OrderStatusShipped,
		OrderStatusReadyForPickup,
		OrderStatusDelivered,
	}, seq)
	assert.NotContains(t, seq, OrderStatusCancelled)

	// Callers get a copy, not the canonical slice
	seq[0] = OrderStatusDelivered
	assert.Equal(t, OrderStatusPending, Sequence()[0])
}

func TestPaymentStatus_IsValid(t *testing.T) {
	tests := []struct {
		status  PaymentStatus
		isValid bool
	}{
		{PaymentStatusPending, true},
		{PaymentStatusPaid, true},
		{PaymentStatusFailed, true},
		{PaymentStatusRefunded, true},
		{PaymentStatus("cleared"), false},
		{PaymentStatus(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.isValid, tt.status.IsValid())
		})
	}
}

func TestPaymentStatus_IsPaid(t *testing.T) {
	assert.True(t, PaymentStatusPaid.IsPaid())
	assert.False(t, PaymentStatusPending.IsPaid())
	assert.False(t, PaymentStatusFailed.IsPaid())
	assert.False(t, PaymentStatusRefunded.IsPaid())
}
