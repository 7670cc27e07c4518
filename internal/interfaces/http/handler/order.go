package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	appfulfillment "github.com/storefront/backoffice/internal/application/fulfillment"
	"github.com/storefront/backoffice/internal/domain/fulfillment"
	"github.com/storefront/backoffice/internal/interfaces/http/dto"
)

// OrderHandler handles order fulfillment API endpoints
type OrderHandler struct {
	BaseHandler
	workflowService *appfulfillment.WorkflowService
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(workflowService *appfulfillment.WorkflowService) *OrderHandler {
	return &OrderHandler{
		workflowService: workflowService,
	}
}

// CreateOrderRequest represents a request to register a new order
type CreateOrderRequest struct {
	CustomerName string                 `json:"customer_name" binding:"required,min=1,max=200"`
	Items        []CreateOrderItemInput `json:"items"`
}

// CreateOrderItemInput represents an item in the create order request
type CreateOrderItemInput struct {
	ProductName string  `json:"product_name" binding:"required,min=1,max=200"`
	ProductCode string  `json:"product_code" binding:"required,min=1,max=50"`
	Quantity    float64 `json:"quantity" binding:"required,gt=0"`
	UnitPrice   float64 `json:"unit_price" binding:"required,gt=0"`
}

// TransitionRequest represents a request to move an order to a new status
type TransitionRequest struct {
	Target string `json:"target" binding:"required"`
	Note   string `json:"note" binding:"max=500"`
}

// RecordPaymentRequest represents a payment status update
type RecordPaymentRequest struct {
	Payment string `json:"payment" binding:"required"`
}

// ListOrdersRequest represents query parameters for the order list
type ListOrdersRequest struct {
	dto.ListRequest
	Status string `form:"status"`
}

// RegisterRoutes registers the order fulfillment routes
func (h *OrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	orders := rg.Group("/fulfillment/orders")
	{
		orders.POST("", h.Create)
		orders.GET("", h.List)
		orders.GET("/summary", h.StatusSummary)
		orders.GET("/number/:order_number", h.GetByOrderNumber)
		orders.GET("/:id", h.GetByID)
		orders.GET("/:id/history", h.History)
		orders.GET("/:id/transitions", h.AvailableTransitions)
		orders.POST("/:id/transitions", h.RequestTransition)
		orders.PUT("/:id/payment", h.RecordPayment)
	}
}

// Create handles POST /fulfillment/orders
func (h *OrderHandler) Create(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	appReq := appfulfillment.CreateOrderRequest{
		CustomerName: req.CustomerName,
	}
	for _, item := range req.Items {
		appReq.Items = append(appReq.Items, appfulfillment.CreateOrderItemInput{
			ProductName: item.ProductName,
			ProductCode: item.ProductCode,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}

	order, err := h.workflowService.Create(c.Request.Context(), appReq)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, order)
}

// List handles GET /fulfillment/orders
func (h *OrderHandler) List(c *gin.Context) {
	var req ListOrdersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	if req.Page <= 0 {
		req.Page = 1
	}
	if req.PageSize <= 0 {
		req.PageSize = 20
	}

	filter := appfulfillment.OrderListFilter{
		Page:     req.Page,
		PageSize: req.PageSize,
		OrderBy:  req.OrderBy,
		OrderDir: req.OrderDir,
		Search:   req.Search,
	}
	if req.Status != "" {
		status := fulfillment.OrderStatus(req.Status)
		filter.Status = &status
	}

	orders, total, err := h.workflowService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, orders, total, req.Page, req.PageSize)
}

// StatusSummary handles GET /fulfillment/orders/summary
func (h *OrderHandler) StatusSummary(c *gin.Context) {
	summary, err := h.workflowService.StatusSummary(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, summary)
}

// GetByID handles GET /fulfillment/orders/:id
func (h *OrderHandler) GetByID(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid order ID format")
		return
	}

	order, err := h.workflowService.GetByID(c.Request.Context(), orderID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, order)
}

// GetByOrderNumber handles GET /fulfillment/orders/number/:order_number
func (h *OrderHandler) GetByOrderNumber(c *gin.Context) {
	orderNumber := c.Param("order_number")
	if orderNumber == "" {
		h.BadRequest(c, "Order number is required")
		return
	}

	order, err := h.workflowService.GetByOrderNumber(c.Request.Context(), orderNumber)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, order)
}

// History handles GET /fulfillment/orders/:id/history
func (h *OrderHandler) History(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid order ID format")
		return
	}

	history, err := h.workflowService.History(c.Request.Context(), orderID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, history)
}

// AvailableTransitions handles GET /fulfillment/orders/:id/transitions
func (h *OrderHandler) AvailableTransitions(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid order ID format")
		return
	}

	transitions, err := h.workflowService.AvailableTransitions(c.Request.Context(), orderID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, transitions)
}

// RequestTransition handles POST /fulfillment/orders/:id/transitions
func (h *OrderHandler) RequestTransition(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid order ID format")
		return
	}

	var req TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.workflowService.RequestTransition(c.Request.Context(), orderID, appfulfillment.TransitionRequest{
		Target: req.Target,
		Note:   req.Note,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// RecordPayment handles PUT /fulfillment/orders/:id/payment
func (h *OrderHandler) RecordPayment(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid order ID format")
		return
	}

	var req RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	order, err := h.workflowService.RecordPayment(c.Request.Context(), orderID, appfulfillment.RecordPaymentRequest{
		Payment: req.Payment,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, order)
}
