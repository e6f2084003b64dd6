// internal/interfaces/http/handlers/receipt.go
package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/your-org/motoparts-backend/internal/config"
	"github.com/your-org/motoparts-backend/internal/domain/borrower"
	"github.com/your-org/motoparts-backend/internal/domain/inventory"
	"github.com/your-org/motoparts-backend/internal/domain/order"
	"github.com/your-org/motoparts-backend/internal/pkg/pdf"
	"gorm.io/gorm"
)

// ReceiptHandler handles PDF receipt endpoints
type ReceiptHandler struct {
	orderService *order.Service
	pdfService   *pdf.Service
	config       *config.Config
}

// NewReceiptHandler creates a new receipt handler
func NewReceiptHandler(db *gorm.DB, cfg *config.Config) *ReceiptHandler {
	orderService := order.NewService(db, cfg, inventory.NewService(db), borrower.NewService(db))

	return &ReceiptHandler{
		orderService: orderService,
		pdfService:   pdf.NewService(cfg),
		config:       cfg,
	}
}

// GenerateReceipt handles GET /admin/orders/:id/receipt
func (h *ReceiptHandler) GenerateReceipt(c *gin.Context) {
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

	pdfBuffer, err := h.pdfService.GenerateReceipt(found)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate receipt",
		})
		return
	}

	// Set headers for PDF download
	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=receipt-%s.pdf", found.OrderNumber))
	c.Header("Content-Length", strconv.Itoa(len(pdfBuffer.Bytes())))

	c.Data(http.StatusOK, "application/pdf", pdfBuffer.Bytes())
}
