// internal/interfaces/http/handlers/order.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/motoparts-backend/internal/config"
	"github.com/your-org/motoparts-backend/internal/domain/borrower"
	"github.com/your-org/motoparts-backend/internal/domain/cart"
	"github.com/your-org/motoparts-backend/internal/domain/inventory"
	"github.com/your-org/motoparts-backend/internal/domain/order"
	"gorm.io/gorm"
)

// OrderHandler handles order and checkout endpoints
type OrderHandler struct {
	orderService *order.Service
	carts        *cart.Manager
	config       *config.Config
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(db *gorm.DB, carts *cart.Manager, cfg *config.Config) *OrderHandler {
	orderService := order.NewService(db, cfg, inventory.NewService(db), borrower.NewService(db))

	return &OrderHandler{
		orderService: orderService,
		carts:        carts,
		config:       cfg,
	}
}

// Checkout handles POST /checkout. It turns the session cart into an
// order and clears the cart on success.
func (h *OrderHandler) Checkout(c *gin.Context) {
	store := h.carts.Session(getOrCreateSessionID(c))

	var req order.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	createdOrder, err := h.orderService.Checkout(c.Request.Context(), store, &req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order created successfully",
		"data":    createdOrder,
	})
}

// GetOrders handles GET /admin/orders
func (h *OrderHandler) GetOrders(c *gin.Context) {
	req := &order.ListRequest{
		Status: order.Status(c.Query("status")),
		Page:   parseIntQuery(c, "page", 1),
		Limit:  parseIntQuery(c, "limit", 20),
	}

	response, err := h.orderService.GetOrders(req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve orders",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Orders retrieved successfully",
		"data":    response,
	})
}

// GetOrder handles GET /admin/orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	found, err := h.orderService.GetOrder(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Order not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order retrieved successfully",
		"data":    found,
	})
}

// UpdateStatusRequest is the payload for status updates
type UpdateStatusRequest struct {
	Status  order.Status `json:"status" binding:"required"`
	Comment string       `json:"comment"`
}

// UpdateOrderStatus handles PUT /admin/orders/:id/status
func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if err := h.orderService.UpdateStatus(id, req.Status, req.Comment); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order status updated successfully",
	})
}

// CancelOrderRequest is the payload for cancellations
type CancelOrderRequest struct {
	Reason string `json:"reason"`
}

// CancelOrder handles POST /admin/orders/:id/cancel
func (h *OrderHandler) CancelOrder(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	// Reason is optional, an empty body is fine
	var req CancelOrderRequest
	_ = c.ShouldBindJSON(&req)

	if err := h.orderService.CancelOrder(id, req.Reason); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order cancelled successfully",
	})
}
