package fulfillment

import (
	"time"

	"github.com/storefront/backoffice/internal/domain/fulfillment"
)

// CreateOrderRequest represents a request to register a new order
type CreateOrderRequest struct {
	CustomerName string                 `json:"customer_name"`
	Items        []CreateOrderItemInput `json:"items"`
}

// CreateOrderItemInput represents a line item in the create request
type CreateOrderItemInput struct {
	ProductName string  `json:"product_name"`
	ProductCode string  `json:"product_code"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

// TransitionRequest represents an operator's request to move an order to a
// new fulfillment status
type TransitionRequest struct {
	Target string `json:"target"`
	Note   string `json:"note"`
}

// RecordPaymentRequest represents a payment state reported by the payment
// collaborator
type RecordPaymentRequest struct {
	Payment string `json:"payment"`
}

// OrderListFilter represents filtering options for order lists
type OrderListFilter struct {
	Page     int
	PageSize int
	OrderBy  string
	OrderDir string
	Search   string
	Status   *fulfillment.OrderStatus
}

// StatusResponse represents the status pair in API responses
type StatusResponse struct {
	Order   string `json:"order"`
	Payment string `json:"payment"`
}

// HistoryEntryResponse represents one ledger entry in API responses
type HistoryEntryResponse struct {
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	Note      *string   `json:"note"`
	CreatedAt time.Time `json:"created_at"`
	Age       string    `json:"age"`
}

// OrderItemResponse represents a line item in API responses
type OrderItemResponse struct {
	ID          string  `json:"id"`
	ProductName string  `json:"product_name"`
	ProductCode string  `json:"product_code"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Amount      float64 `json:"amount"`
}

// OrderResponse represents a full order snapshot in API responses.
// History is rendered newest first for the admin timeline.
type OrderResponse struct {
	ID           string                 `json:"id"`
	OrderNumber  string                 `json:"order_number"`
	CustomerName string                 `json:"customer_name"`
	Items        []OrderItemResponse    `json:"items"`
	TotalAmount  float64                `json:"total_amount"`
	Status       StatusResponse         `json:"status"`
	History      []HistoryEntryResponse `json:"history"`
	CreatedAt    time.Time              `json:"created_at"`
	UpdatedAt    time.Time              `json:"updated_at"`
	Version      int                    `json:"version"`
}

// OrderListItemResponse represents an order in list responses
type OrderListItemResponse struct {
	ID           string         `json:"id"`
	OrderNumber  string         `json:"order_number"`
	CustomerName string         `json:"customer_name"`
	ItemCount    int            `json:"item_count"`
	TotalAmount  float64        `json:"total_amount"`
	Status       StatusResponse `json:"status"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// TransitionResponse represents the atomic result of a successful
// transition: the fresh order snapshot and the one appended entry.
// Callers must discard any previously held snapshot in favor of this one.
type TransitionResponse struct {
	Order OrderResponse        `json:"order"`
	Entry HistoryEntryResponse `json:"entry"`
}

// AvailableTransitionsResponse lists the choices the UI may offer
type AvailableTransitionsResponse struct {
	Status     StatusResponse `json:"status"`
	CanAdvance bool           `json:"can_advance"`
	Reachable  []string       `json:"reachable"`
}

// StatusCount represents the number of orders in one status
type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// OrderStatusSummary represents dashboard counts per fulfillment status
type OrderStatusSummary struct {
	Counts []StatusCount `json:"counts"`
	Total  int64         `json:"total"`
}

// ToHistoryEntryResponse converts a ledger entry to its response form
func ToHistoryEntryResponse(entry fulfillment.HistoryEntry, now time.Time) HistoryEntryResponse {
	return HistoryEntryResponse{
		ID:        entry.ID.String(),
		Status:    entry.Status.String(),
		Note:      entry.Note,
		CreatedAt: entry.CreatedAt,
		Age:       fulfillment.FormatAge(fulfillment.TimeSince(entry, now)),
	}
}

// ToOrderResponse converts an order aggregate to its response form
func ToOrderResponse(order *fulfillment.Order, now time.Time) OrderResponse {
	items := make([]OrderItemResponse, len(order.Items))
	for i, item := range order.Items {
		items[i] = OrderItemResponse{
			ID:          item.ID.String(),
			ProductName: item.ProductName,
			ProductCode: item.ProductCode,
			Quantity:    item.Quantity.InexactFloat64(),
			UnitPrice:   item.UnitPrice.InexactFloat64(),
			Amount:      item.Amount.InexactFloat64(),
		}
	}

	entries := order.History.ReverseChronological()
	history := make([]HistoryEntryResponse, len(entries))
	for i, entry := range entries {
		history[i] = ToHistoryEntryResponse(entry, now)
	}

	return OrderResponse{
		ID:           order.ID.String(),
		OrderNumber:  order.OrderNumber,
		CustomerName: order.CustomerName,
		Items:        items,
		TotalAmount:  order.TotalAmount.InexactFloat64(),
		Status: StatusResponse{
			Order:   order.Status.Order.String(),
			Payment: order.Status.Payment.String(),
		},
		History:   history,
		CreatedAt: order.CreatedAt,
		UpdatedAt: order.UpdatedAt,
		Version:   order.Version,
	}
}

// ToOrderListItemResponse converts an order to its list item form
func ToOrderListItemResponse(order *fulfillment.Order) OrderListItemResponse {
	return OrderListItemResponse{
		ID:           order.ID.String(),
		OrderNumber:  order.OrderNumber,
		CustomerName: order.CustomerName,
		ItemCount:    order.ItemCount(),
		TotalAmount:  order.TotalAmount.InexactFloat64(),
		Status: StatusResponse{
			Order:   order.Status.Order.String(),
			Payment: order.Status.Payment.String(),
		},
		CreatedAt: order.CreatedAt,
		UpdatedAt: order.UpdatedAt,
	}
}
