package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/storefront/backoffice/internal/domain/fulfillment"
	"github.com/storefront/backoffice/internal/domain/shared"
)

// GormOrderRepository implements OrderRepository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// preloadHistory loads the ledger oldest first so the in-memory History
// keeps its chronological order.
func preloadHistory(db *gorm.DB) *gorm.DB {
	return db.Order("created_at ASC")
}

// FindByID finds an order by its ID
func (r *GormOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*fulfillment.Order, error) {
	var order fulfillment.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("History", preloadHistory).
		First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// FindByOrderNumber finds an order by its order number
func (r *GormOrderRepository) FindByOrderNumber(ctx context.Context, orderNumber string) (*fulfillment.Order, error) {
	var order fulfillment.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("History", preloadHistory).
		Where("order_number = ?", orderNumber).
		First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// FindAll finds orders with filtering and pagination
func (r *GormOrderRepository) FindAll(ctx context.Context, filter shared.Filter) ([]fulfillment.Order, error) {
	var orders []fulfillment.Order
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&fulfillment.Order{}).Preload("Items"),
		filter,
	)

	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// Count counts orders matching the filter
func (r *GormOrderRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&fulfillment.Order{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByStatus counts orders in the given fulfillment status
func (r *GormOrderRepository) CountByStatus(ctx context.Context, status fulfillment.OrderStatus) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&fulfillment.Order{}).
		Where("order_status = ?", status).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates an order together with its items and ledger
func (r *GormOrderRepository) Save(ctx context.Context, order *fulfillment.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(order).Error; err != nil {
			return err
		}

		for i := range order.Items {
			order.Items[i].OrderID = order.ID
			if err := tx.Save(&order.Items[i]).Error; err != nil {
				return err
			}
		}

		// The ledger is append-only: insert entries that are not yet stored,
		// never update or delete existing ones.
		for i := range order.History {
			order.History[i].OrderID = order.ID
			if err := tx.Where("id = ?", order.History[i].ID).
				FirstOrCreate(&order.History[i]).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// SaveWithLockAndEntry persists a status change and its ledger entry in one
// transaction with optimistic locking. A nil entry means only the status pair
// changed (payment updates do not touch the ledger).
func (r *GormOrderRepository) SaveWithLockAndEntry(ctx context.Context, order *fulfillment.Order, entry *fulfillment.HistoryEntry) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var currentVersion int
		if err := tx.Model(&fulfillment.Order{}).
			Where("id = ?", order.ID).
			Select("version").
			Scan(&currentVersion).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return shared.ErrNotFound
			}
			return err
		}

		if currentVersion != order.Version {
			return shared.NewDomainError("CONCURRENT_MODIFICATION", "The order has been modified by another user")
		}

		order.Version++
		order.UpdatedAt = time.Now()

		result := tx.Model(&fulfillment.Order{}).
			Where("id = ? AND version = ?", order.ID, currentVersion).
			Updates(map[string]interface{}{
				"order_status":   order.Status.Order,
				"payment_status": order.Status.Payment,
				"version":        order.Version,
				"updated_at":     order.UpdatedAt,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.NewDomainError("CONCURRENT_MODIFICATION", "The order has been modified by another user")
		}

		if entry != nil {
			entry.OrderID = order.ID
			if err := tx.Create(entry).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// GenerateOrderNumber generates a unique order number
// Format: FO-YYYY-NNNNN (e.g., FO-2026-00001)
func (r *GormOrderRepository) GenerateOrderNumber(ctx context.Context) (string, error) {
	year := time.Now().Year()
	prefix := fmt.Sprintf("FO-%d-", year)

	var lastOrder fulfillment.Order
	err := r.db.WithContext(ctx).
		Model(&fulfillment.Order{}).
		Where("order_number LIKE ?", prefix+"%").
		Order("order_number DESC").
		First(&lastOrder).Error

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	var nextNum int64 = 1
	if err == nil && lastOrder.OrderNumber != "" {
		parts := strings.Split(lastOrder.OrderNumber, "-")
		if len(parts) == 3 {
			var num int64
			if _, parseErr := fmt.Sscanf(parts[2], "%d", &num); parseErr == nil {
				nextNum = num + 1
			}
		}
	}

	orderNumber := fmt.Sprintf("%s%05d", prefix, nextNum)

	exists, err := r.existsByOrderNumber(ctx, orderNumber)
	if err != nil {
		return "", err
	}
	if exists {
		for i := 0; i < 100; i++ {
			nextNum++
			orderNumber = fmt.Sprintf("%s%05d", prefix, nextNum)
			exists, err = r.existsByOrderNumber(ctx, orderNumber)
			if err != nil {
				return "", err
			}
			if !exists {
				break
			}
		}
	}

	return orderNumber, nil
}

func (r *GormOrderRepository) existsByOrderNumber(ctx context.Context, orderNumber string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&fulfillment.Order{}).
		Where("order_number = ?", orderNumber).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// applyFilter applies filter options to the query
func (r *GormOrderRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if filter.OrderBy != "" {
		orderDir := "ASC"
		if strings.ToLower(filter.OrderDir) == "desc" {
			orderDir = "DESC"
		}
		query = query.Order(filter.OrderBy + " " + orderDir)
	} else {
		query = query.Order("created_at DESC")
	}

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormOrderRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("order_number LIKE ? OR customer_name LIKE ?",
			searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "order_status":
			query = query.Where("order_status = ?", value)
		case "payment_status":
			query = query.Where("payment_status = ?", value)
		case "start_date":
			if t, ok := value.(time.Time); ok {
				query = query.Where("created_at >= ?", t)
			}
		case "end_date":
			if t, ok := value.(time.Time); ok {
				query = query.Where("created_at <= ?", t)
			}
		}
	}

	return query
}

// Ensure GormOrderRepository implements OrderRepository
var _ fulfillment.OrderRepository = (*GormOrderRepository)(nil)
