// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/your-org/motoparts-backend/internal/config"
	"github.com/your-org/motoparts-backend/internal/domain/cart"
	"github.com/your-org/motoparts-backend/internal/domain/catalog"
	"github.com/your-org/motoparts-backend/internal/domain/inventory"
	"gorm.io/gorm"
)

// CartHandler handles cart endpoints
type CartHandler struct {
	carts            *cart.Manager
	catalogService   *catalog.Service
	inventoryService *inventory.Service
	config           *config.Config
}

// NewCartHandler creates a new cart handler
func NewCartHandler(db *gorm.DB, carts *cart.Manager, cfg *config.Config) *CartHandler {
	return &CartHandler{
		carts:            carts,
		catalogService:   catalog.NewService(db),
		inventoryService: inventory.NewService(db),
		config:           cfg,
	}
}

// AddToCartRequest is the payload for POST /cart/items
type AddToCartRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity"`
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	store := h.sessionStore(c)

	lines := store.Lines(c.Request.Context())
	totals := store.Totals(c.Request.Context())

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart retrieved successfully",
		"data": gin.H{
			"items":  lines,
			"totals": totals,
		},
	})
}

// AddToCart handles POST /cart/items
func (h *CartHandler) AddToCart(c *gin.Context) {
	store := h.sessionStore(c)

	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	product, err := h.catalogService.GetProduct(req.ProductID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
		return
	}

	stock, err := h.inventoryService.GetStockByProduct(product.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to check stock",
		})
		return
	}

	// A tracked product with nothing on hand is rejected here; an
	// untracked one carries no bound and falls through to the cart
	if inventory.OutOfStock(stock) {
		c.JSON(http.StatusConflict, gin.H{
			"error": "Product is out of stock",
		})
		return
	}

	candidate, opts := inventory.NewCartCandidate(product, stock, req.Quantity)
	result := store.Add(c.Request.Context(), candidate, opts)

	message := "Item added to cart successfully"
	if result.Adjusted {
		message = fmt.Sprintf("Only %d available", result.Limit)
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  message,
		"adjusted": result.Adjusted,
		"data": gin.H{
			"item":   result.Line,
			"totals": store.Totals(c.Request.Context()),
		},
	})
}

// RemoveFromCart handles DELETE /cart/items/:id
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	store := h.sessionStore(c)

	productIDParam := c.Param("id")
	productID, err := strconv.ParseUint(productIDParam, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID",
		})
		return
	}

	store.Remove(c.Request.Context(), uint(productID))

	c.JSON(http.StatusOK, gin.H{
		"message": "Item removed from cart successfully",
		"data": gin.H{
			"items":  store.Lines(c.Request.Context()),
			"totals": store.Totals(c.Request.Context()),
		},
	})
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	store := h.sessionStore(c)

	store.Clear(c.Request.Context())

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart cleared successfully",
	})
}

// GetCartCount handles GET /cart/count
func (h *CartHandler) GetCartCount(c *gin.Context) {
	store := h.sessionStore(c)

	totals := store.Totals(c.Request.Context())

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart count retrieved successfully",
		"data": gin.H{
			"count": totals.TotalQuantity,
		},
	})
}

// sessionStore resolves the cart store for the caller's session
func (h *CartHandler) sessionStore(c *gin.Context) *cart.Store {
	return h.carts.Session(getOrCreateSessionID(c))
}

// getOrCreateSessionID gets session ID from cookie or creates new one
func getOrCreateSessionID(c *gin.Context) string {
	// Try to get session ID from cookie
	sessionID, err := c.Cookie("session_id")
	if err != nil || sessionID == "" {
		// Generate new session ID
		sessionID = uuid.New().String()

		// Set session cookie (24 hours)
		c.SetCookie("session_id", sessionID, 86400, "/", "", false, true)
	}

	return sessionID
}
