// internal/interfaces/http/handlers/transaction.go
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/your-org/motoparts-backend/internal/config"
	"github.com/your-org/motoparts-backend/internal/domain/borrower"
	"github.com/your-org/motoparts-backend/internal/domain/transaction"
	"gorm.io/gorm"
)

// TransactionHandler handles payment and statement endpoints
type TransactionHandler struct {
	transactionService *transaction.Service
	config             *config.Config
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(db *gorm.DB, cfg *config.Config) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transaction.NewService(db, borrower.NewService(db)),
		config:             cfg,
	}
}

// RecordReceive handles POST /admin/transactions/receive
func (h *TransactionHandler) RecordReceive(c *gin.Context) {
	var req transaction.ReceiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	created, err := h.transactionService.RecordReceive(&req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Payment received successfully",
		"data":    created,
	})
}

// RecordPay handles POST /admin/transactions/pay
func (h *TransactionHandler) RecordPay(c *gin.Context) {
	var req transaction.PayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	created, err := h.transactionService.RecordPay(&req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Payment recorded successfully",
		"data":    created,
	})
}

// ListTransactions handles GET /admin/transactions
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	from, to := parseDateRange(c)

	req := &transaction.ListRequest{
		Kind:  transaction.Kind(c.Query("kind")),
		From:  from,
		To:    to,
		Page:  parseIntQuery(c, "page", 1),
		Limit: parseIntQuery(c, "limit", 20),
	}
	if borrowerID := parseIntQuery(c, "borrower_id", 0); borrowerID > 0 {
		req.BorrowerID = uint(borrowerID)
	}
	if companyID := parseIntQuery(c, "company_id", 0); companyID > 0 {
		req.CompanyID = uint(companyID)
	}

	transactions, total, err := h.transactionService.List(req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve transactions",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Transactions retrieved successfully",
		"data": gin.H{
			"transactions": transactions,
			"total":        total,
			"page":         req.Page,
			"limit":        req.Limit,
		},
	})
}

// GetCustomerStatement handles GET /admin/statements/customer/:id
func (h *TransactionHandler) GetCustomerStatement(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	from, to := parseDateRange(c)

	statement, err := h.transactionService.GetCustomerStatement(id, from, to)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Customer statement retrieved successfully",
		"data":    statement,
	})
}

// GetBrandSaleStatement handles GET /admin/statements/brand-sales/:id
func (h *TransactionHandler) GetBrandSaleStatement(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	from, to := parseDateRange(c)

	rows, err := h.transactionService.GetBrandSaleStatement(id, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to build brand sale statement",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Brand sale statement retrieved successfully",
		"data":    rows,
	})
}

// GetPurchaseStatement handles GET /admin/statements/purchases/:id
func (h *TransactionHandler) GetPurchaseStatement(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	from, to := parseDateRange(c)

	rows, err := h.transactionService.GetPurchaseStatement(id, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to build purchase statement",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Purchase statement retrieved successfully",
		"data":    rows,
	})
}

// parseDateRange reads from/to query parameters (YYYY-MM-DD). Defaults to
// the start of the current month through now.
func parseDateRange(c *gin.Context) (time.Time, time.Time) {
	now := time.Now().UTC()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	to := now

	if raw := c.Query("from"); raw != "" {
		if parsed, err := time.Parse("2006-01-02", raw); err == nil {
			from = parsed
		}
	}
	if raw := c.Query("to"); raw != "" {
		if parsed, err := time.Parse("2006-01-02", raw); err == nil {
			// Inclusive end of day
			to = parsed.Add(24*time.Hour - time.Nanosecond)
		}
	}

	return from, to
}
