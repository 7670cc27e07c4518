package fulfillment

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entryAt(orderID uuid.UUID, status OrderStatus, at time.Time) HistoryEntry {
	return NewHistoryEntry(orderID, status, "", at)
}

func TestNewHistoryEntry(t *testing.T) {
	orderID := uuid.New()
	at := time.Now()

	t.Run("stores note when present", func(t *testing.T) {
		entry := NewHistoryEntry(orderID, OrderStatusShipped, "left the warehouse", at)
		require.NotNil(t, entry.Note)
		assert.Equal(t, "left the warehouse", *entry.Note)
		assert.Equal(t, OrderStatusShipped, entry.Status)
		assert.Equal(t, orderID, entry.OrderID)
		assert.Equal(t, at, entry.CreatedAt)
	})

	t.Run("empty note becomes null", func(t *testing.T) {
		entry := NewHistoryEntry(orderID, OrderStatusShipped, "", at)
		assert.Nil(t, entry.Note)
	})
}

func TestHistory_Append(t *testing.T) {
	orderID := uuid.New()
	base := time.Now()

	t.Run("appends in chronological order", func(t *testing.T) {
		ledger := History{entryAt(orderID, OrderStatusPending, base)}

		ledger, err := ledger.Append(entryAt(orderID, OrderStatusProcessing, base.Add(time.Minute)))
		require.NoError(t, err)
		ledger, err = ledger.Append(entryAt(orderID, OrderStatusShipped, base.Add(2*time.Minute)))
		require.NoError(t, err)

		assert.Equal(t, 3, ledger.Len())
		assert.Equal(t, OrderStatusShipped, ledger.Latest().Status)
	})

	t.Run("rejects equal timestamp", func(t *testing.T) {
		ledger := History{entryAt(orderID, OrderStatusPending, base)}

		_, err := ledger.Append(entryAt(orderID, OrderStatusProcessing, base))
		assert.ErrorIs(t, err, ErrClockSkew)
	})

	t.Run("rejects earlier timestamp", func(t *testing.T) {
		ledger := History{entryAt(orderID, OrderStatusPending, base)}

		_, err := ledger.Append(entryAt(orderID, OrderStatusProcessing, base.Add(-time.Second)))
		assert.ErrorIs(t, err, ErrClockSkew)
	})

	t.Run("does not mutate the original ledger", func(t *testing.T) {
		original := History{entryAt(orderID, OrderStatusPending, base)}

		appended, err := original.Append(entryAt(orderID, OrderStatusProcessing, base.Add(time.Minute)))
		require.NoError(t, err)

		assert.Equal(t, 1, original.Len())
		assert.Equal(t, 2, appended.Len())
		assert.Equal(t, OrderStatusPending, original.Latest().Status)
	})

	t.Run("append to empty ledger", func(t *testing.T) {
		ledger, err := History{}.Append(entryAt(orderID, OrderStatusPending, base))
		require.NoError(t, err)
		assert.Equal(t, 1, ledger.Len())
	})
}

func TestHistory_Latest(t *testing.T) {
	orderID := uuid.New()
	base := time.Now()

	t.Run("empty ledger has no latest entry", func(t *testing.T) {
		assert.Nil(t, History{}.Latest())
	})

	t.Run("latest is the most recent entry", func(t *testing.T) {
		ledger := History{
			entryAt(orderID, OrderStatusPending, base),
			entryAt(orderID, OrderStatusPackaging, base.Add(time.Hour)),
		}
		latest := ledger.Latest()
		require.NotNil(t, latest)
		assert.Equal(t, OrderStatusPackaging, latest.Status)
	})

	t.Run("returned entry is a copy", func(t *testing.T) {
		ledger := History{entryAt(orderID, OrderStatusPending, base)}
		ledger.Latest().Status = OrderStatusDelivered
		assert.Equal(t, OrderStatusPending, ledger[0].Status)
	})
}

func TestHistory_Views(t *testing.T) {
	orderID := uuid.New()
	base := time.Now()
	ledger := History{
		entryAt(orderID, OrderStatusPending, base),
		entryAt(orderID, OrderStatusProcessing, base.Add(time.Minute)),
		entryAt(orderID, OrderStatusDelivered, base.Add(2*time.Minute)),
	}

	chrono := ledger.Chronological()
	reversed := ledger.ReverseChronological()

	assert.Equal(t, OrderStatusPending, chrono[0].Status)
	assert.Equal(t, OrderStatusDelivered, chrono[2].Status)
	assert.Equal(t, OrderStatusDelivered, reversed[0].Status)
	assert.Equal(t, OrderStatusPending, reversed[2].Status)

	// Both are read views: the ledger itself stays chronological
	reversed[0].Status = OrderStatusCancelled
	chrono[0].Status = OrderStatusCancelled
	assert.Equal(t, OrderStatusPending, ledger[0].Status)
	assert.Equal(t, OrderStatusDelivered, ledger[2].Status)
}

func TestTimeSince(t *testing.T) {
	orderID := uuid.New()
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	entry := entryAt(orderID, OrderStatusShipped, at)

	assert.Equal(t, 90*time.Minute, TimeSince(entry, at.Add(90*time.Minute)))
}

func TestFormatAge(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{30 * time.Second, "just now"},
		{5 * time.Minute, "5m ago"},
		{59 * time.Minute, "59m ago"},
		{3 * time.Hour, "3h ago"},
		{26 * time.Hour, "1d ago"},
		{72 * time.Hour, "3d ago"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatAge(tt.d))
		})
	}
}
