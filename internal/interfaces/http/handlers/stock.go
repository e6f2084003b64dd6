// internal/interfaces/http/handlers/stock.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/motoparts-backend/internal/config"
	"github.com/your-org/motoparts-backend/internal/domain/inventory"
	"gorm.io/gorm"
)

// StockHandler handles inventory endpoints
type StockHandler struct {
	inventoryService *inventory.Service
	config           *config.Config
}

// NewStockHandler creates a new stock handler
func NewStockHandler(db *gorm.DB, cfg *config.Config) *StockHandler {
	return &StockHandler{
		inventoryService: inventory.NewService(db),
		config:           cfg,
	}
}

// ListStocks handles GET /admin/stocks
func (h *StockHandler) ListStocks(c *gin.Context) {
	req := &inventory.StockListRequest{
		PartNo: c.Query("part_no"),
		Page:   parseIntQuery(c, "page", 1),
		Limit:  parseIntQuery(c, "limit", 20),
	}
	if companyID := parseIntQuery(c, "company_id", 0); companyID > 0 {
		req.CompanyID = uint(companyID)
	}

	stocks, total, err := h.inventoryService.ListStocks(req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve stocks",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Stocks retrieved successfully",
		"data": gin.H{
			"stocks": stocks,
			"total":  total,
			"page":   req.Page,
			"limit":  req.Limit,
		},
	})
}

// GetStock handles GET /admin/stocks/:id
func (h *StockHandler) GetStock(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	stock, err := h.inventoryService.GetStock(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Stock not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Stock retrieved successfully",
		"data":    stock,
	})
}

// RecordPurchase handles POST /admin/stocks/purchase
func (h *StockHandler) RecordPurchase(c *gin.Context) {
	var req inventory.PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	stock, err := h.inventoryService.RecordPurchase(&req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Purchase recorded successfully",
		"data":    stock,
	})
}

// SetDamage handles PUT /admin/stocks/:id/damage
func (h *StockHandler) SetDamage(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req inventory.DamageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	stock, err := h.inventoryService.SetDamageQuantity(id, &req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Damage quantity updated successfully",
		"data":    stock,
	})
}
