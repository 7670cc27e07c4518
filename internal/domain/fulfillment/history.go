package fulfillment

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// HistoryEntry records one status the order has held. Entries are immutable
// once created and are never edited or deleted.
type HistoryEntry struct {
	ID        uuid.UUID   `json:"id"`
	OrderID   uuid.UUID   `json:"order_id"`
	Status    OrderStatus `json:"status"`
	Note      *string     `json:"note"`
	CreatedAt time.Time   `json:"created_at"`
}

// TableName returns the table name for GORM
func (HistoryEntry) TableName() string {
	return "order_history"
}

// NewHistoryEntry creates a new history entry. An empty note is stored as null.
func NewHistoryEntry(orderID uuid.UUID, status OrderStatus, note string, at time.Time) HistoryEntry {
	entry := HistoryEntry{
		ID:        uuid.New(),
		OrderID:   orderID,
		Status:    status,
		CreatedAt: at,
	}
	if note != "" {
		entry.Note = &note
	}
	return entry
}

// History is the append-only ledger of status changes for one order,
// stored in chronological order.
type History []HistoryEntry

// Append returns a new ledger with the entry added. The entry's timestamp
// must be strictly later than every existing entry's; storage order stays
// chronological.
func (h History) Append(entry HistoryEntry) (History, error) {
	if latest := h.Latest(); latest != nil && !entry.CreatedAt.After(latest.CreatedAt) {
		return nil, ErrClockSkew
	}
	appended := make(History, 0, len(h)+1)
	appended = append(appended, h...)
	appended = append(appended, entry)
	return appended, nil
}

// Latest returns a copy of the most recent entry, or nil for an empty ledger
func (h History) Latest() *HistoryEntry {
	if len(h) == 0 {
		return nil
	}
	latest := h[len(h)-1]
	return &latest
}

// Len returns the number of entries in the ledger
func (h History) Len() int {
	return len(h)
}

// Chronological returns the entries oldest first
func (h History) Chronological() []HistoryEntry {
	return append([]HistoryEntry(nil), h...)
}

// ReverseChronological returns the entries newest first. This is a read-time
// view for display; the underlying ledger is untouched.
func (h History) ReverseChronological() []HistoryEntry {
	reversed := make([]HistoryEntry, len(h))
	for i, entry := range h {
		reversed[len(h)-1-i] = entry
	}
	return reversed
}

// TimeSince returns how long ago the entry was created
func TimeSince(entry HistoryEntry, now time.Time) time.Duration {
	return now.Sub(entry.CreatedAt)
}

// FormatAge renders a duration as a short "Xm ago" style label for display
func FormatAge(d time.Duration) string {
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}
