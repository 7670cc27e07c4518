package fulfillment

import (
	"context"

	"github.com/google/uuid"

	"github.com/storefront/backoffice/internal/domain/shared"
)

// OrderRepository defines the interface for order persistence
type OrderRepository interface {
	// FindByID finds an order with its full history ledger
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)

	// FindByOrderNumber finds an order by its order number
	FindByOrderNumber(ctx context.Context, orderNumber string) (*Order, error)

	// FindAll finds orders with filtering and pagination
	FindAll(ctx context.Context, filter shared.Filter) ([]Order, error)

	// Count counts orders matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// CountByStatus counts orders currently in the given status
	CountByStatus(ctx context.Context, status OrderStatus) (int64, error)

	// Save creates a new order with its items and initial history entry
	Save(ctx context.Context, order *Order) error

	// SaveWithLockAndEntry persists a status change and appends the one new
	// history entry in a single transaction, guarded by an optimistic
	// version check. The write is rejected when the stored version no longer
	// matches the version the caller validated against. A nil entry updates
	// the order row only (payment recording).
	SaveWithLockAndEntry(ctx context.Context, order *Order, entry *HistoryEntry) error

	// GenerateOrderNumber generates the next unique order number
	GenerateOrderNumber(ctx context.Context) (string, error)
}
