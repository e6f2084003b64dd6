// internal/interfaces/http/handlers/catalog.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/your-org/motoparts-backend/internal/config"
	"github.com/your-org/motoparts-backend/internal/domain/catalog"
	"github.com/your-org/motoparts-backend/internal/domain/inventory"
	"gorm.io/gorm"
)

// CatalogHandler handles company, bike model and product endpoints
type CatalogHandler struct {
	catalogService   *catalog.Service
	inventoryService *inventory.Service
	config           *config.Config
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(db *gorm.DB, cfg *config.Config) *CatalogHandler {
	return &CatalogHandler{
		catalogService:   catalog.NewService(db),
		inventoryService: inventory.NewService(db),
		config:           cfg,
	}
}

// ProductView is a product enriched with its resolved listing price and
// availability for storefront consumers.
type ProductView struct {
	catalog.Product
	ListingPrice      decimal.Decimal `json:"listing_price"`
	AvailableQuantity int             `json:"available_quantity"`
}

// ListCompanies handles GET /companies
func (h *CatalogHandler) ListCompanies(c *gin.Context) {
	companies, err := h.catalogService.ListCompanies()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve companies",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Companies retrieved successfully",
		"data":    companies,
	})
}

// GetCompany handles GET /companies/:id
func (h *CatalogHandler) GetCompany(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	company, err := h.catalogService.GetCompany(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Company not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Company retrieved successfully",
		"data":    company,
	})
}

// CreateCompany handles POST /admin/companies
func (h *CatalogHandler) CreateCompany(c *gin.Context) {
	var req catalog.CompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	company, err := h.catalogService.CreateCompany(&req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Company created successfully",
		"data":    company,
	})
}

// UpdateCompany handles PUT /admin/companies/:id
func (h *CatalogHandler) UpdateCompany(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req catalog.CompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	company, err := h.catalogService.UpdateCompany(id, &req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Company updated successfully",
		"data":    company,
	})
}

// DeleteCompany handles DELETE /admin/companies/:id
func (h *CatalogHandler) DeleteCompany(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.catalogService.DeleteCompany(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Company deleted successfully",
	})
}

// ListBikeModels handles GET /companies/:id/models
func (h *CatalogHandler) ListBikeModels(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	models, err := h.catalogService.ListBikeModels(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve bike models",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Bike models retrieved successfully",
		"data":    models,
	})
}

// CreateBikeModel handles POST /admin/models
func (h *CatalogHandler) CreateBikeModel(c *gin.Context) {
	var req catalog.BikeModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	model, err := h.catalogService.CreateBikeModel(&req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Bike model created successfully",
		"data":    model,
	})
}

// DeleteBikeModel handles DELETE /admin/models/:id
func (h *CatalogHandler) DeleteBikeModel(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.catalogService.DeleteBikeModel(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Bike model deleted successfully",
	})
}

// ListProducts handles GET /products
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	req := &catalog.ProductListRequest{
		Search:  c.Query("search"),
		ModelNo: c.Query("model_no"),
		Page:    parseIntQuery(c, "page", 1),
		Limit:   parseIntQuery(c, "limit", 20),
	}
	if companyID := parseIntQuery(c, "company_id", 0); companyID > 0 {
		req.CompanyID = uint(companyID)
	}
	if bikeModelID := parseIntQuery(c, "bike_model_id", 0); bikeModelID > 0 {
		req.BikeModelID = uint(bikeModelID)
	}

	products, total, err := h.catalogService.ListProducts(req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve products",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Products retrieved successfully",
		"data": gin.H{
			"products": h.buildProductViews(products),
			"total":    total,
			"page":     req.Page,
			"limit":    req.Limit,
		},
	})
}

// GetProduct handles GET /products/:id
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	product, err := h.catalogService.GetProduct(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product retrieved successfully",
		"data":    h.buildProductView(product),
	})
}

// GetRelatedProducts handles GET /products/:id/related
func (h *CatalogHandler) GetRelatedProducts(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	product, err := h.catalogService.GetProduct(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
		return
	}

	related, err := h.catalogService.RelatedProducts(product, 8)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve related products",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Related products retrieved successfully",
		"data":    h.buildProductViews(related),
	})
}

// CreateProduct handles POST /admin/products
func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var req catalog.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	product, err := h.catalogService.CreateProduct(&req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Product created successfully",
		"data":    product,
	})
}

// UpdateProduct handles PUT /admin/products/:id
func (h *CatalogHandler) UpdateProduct(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req catalog.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	product, err := h.catalogService.UpdateProduct(id, &req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product updated successfully",
		"data":    product,
	})
}

// DeleteProduct handles DELETE /admin/products/:id
func (h *CatalogHandler) DeleteProduct(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.catalogService.DeleteProduct(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product deleted successfully",
	})
}

// buildProductView resolves the listing price and availability for one product
func (h *CatalogHandler) buildProductView(product *catalog.Product) ProductView {
	stock, err := h.inventoryService.GetStockByProduct(product.ID)
	if err != nil {
		stock = nil
	}

	return ProductView{
		Product:           *product,
		ListingPrice:      inventory.ListingPrice(product, stock),
		AvailableQuantity: inventory.AvailableQuantity(stock),
	}
}

func (h *CatalogHandler) buildProductViews(products []catalog.Product) []ProductView {
	views := make([]ProductView, 0, len(products))
	for i := range products {
		views = append(views, h.buildProductView(&products[i]))
	}
	return views
}

// parseIDParam parses the :id path parameter
func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid ID",
		})
		return 0, false
	}
	return uint(id), true
}

// parseIntQuery parses an integer query parameter with a default
func parseIntQuery(c *gin.Context, name string, defaultValue int) int {
	raw := c.Query(name)
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return defaultValue
	}
	return value
}
