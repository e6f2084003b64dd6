// internal/interfaces/http/handlers/borrower.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/motoparts-backend/internal/config"
	"github.com/your-org/motoparts-backend/internal/domain/borrower"
	"gorm.io/gorm"
)

// BorrowerHandler handles credit customer endpoints
type BorrowerHandler struct {
	borrowerService *borrower.Service
	config          *config.Config
}

// NewBorrowerHandler creates a new borrower handler
func NewBorrowerHandler(db *gorm.DB, cfg *config.Config) *BorrowerHandler {
	return &BorrowerHandler{
		borrowerService: borrower.NewService(db),
		config:          cfg,
	}
}

// ListBorrowers handles GET /admin/borrowers
func (h *BorrowerHandler) ListBorrowers(c *gin.Context) {
	req := &borrower.ListRequest{
		Search: c.Query("search"),
		Page:   parseIntQuery(c, "page", 1),
		Limit:  parseIntQuery(c, "limit", 20),
	}

	borrowers, total, err := h.borrowerService.List(req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve borrowers",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Borrowers retrieved successfully",
		"data": gin.H{
			"borrowers": borrowers,
			"total":     total,
			"page":      req.Page,
			"limit":     req.Limit,
		},
	})
}

// GetBorrower handles GET /admin/borrowers/:id
func (h *BorrowerHandler) GetBorrower(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	found, err := h.borrowerService.Get(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Borrower not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Borrower retrieved successfully",
		"data":    found,
	})
}

// CreateBorrower handles POST /admin/borrowers
func (h *BorrowerHandler) CreateBorrower(c *gin.Context) {
	var req borrower.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	created, err := h.borrowerService.Create(&req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Borrower created successfully",
		"data":    created,
	})
}

// UpdateBorrower handles PUT /admin/borrowers/:id
func (h *BorrowerHandler) UpdateBorrower(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req borrower.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	updated, err := h.borrowerService.Update(id, &req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Borrower updated successfully",
		"data":    updated,
	})
}

// DeleteBorrower handles DELETE /admin/borrowers/:id
func (h *BorrowerHandler) DeleteBorrower(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.borrowerService.Delete(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Borrower deleted successfully",
	})
}

// ListDues handles GET /admin/borrowers/dues
func (h *BorrowerHandler) ListDues(c *gin.Context) {
	borrowers, err := h.borrowerService.ListWithDues()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve dues",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Dues retrieved successfully",
		"data":    borrowers,
	})
}
