// internal/domain/catalog/service.go
package catalog

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// Service handles catalog business logic
type Service struct {
	db *gorm.DB
}

// NewService creates a new catalog service
func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// ProductListRequest carries the storefront browse filters
type ProductListRequest struct {
	CompanyID   uint
	BikeModelID uint
	ModelNo     string
	Search      string
	Page        int
	Limit       int
}

// CompanyRequest represents create/update company input
type CompanyRequest struct {
	CompanyName string `json:"company_name" binding:"required"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Logo        string `json:"logo"`
}

// BikeModelRequest represents create/update bike model input
type BikeModelRequest struct {
	Name      string `json:"name" binding:"required"`
	CompanyID uint   `json:"company_id" binding:"required"`
}

// ProductRequest represents create/update product input
type ProductRequest struct {
	Name         string  `json:"product_name" binding:"required"`
	PartNo       string  `json:"part_no"`
	ProductCode  string  `json:"product_code"`
	ModelNo      string  `json:"model_no"`
	CompanyID    uint    `json:"company_id" binding:"required"`
	BikeModelID  *uint   `json:"bike_model_id"`
	Description  string  `json:"description"`
	Image        string  `json:"image"`
	NetWeight    string  `json:"net_weight"`
	Price        *string `json:"price"`
	SellingPrice *string `json:"selling_price"`
	MRP          *string `json:"mrp"`
}

// ListCompanies returns all active companies ordered by name
func (s *Service) ListCompanies() ([]Company, error) {
	var companies []Company
	err := s.db.Where("is_active = ?", true).Order("company_name ASC").Find(&companies).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	return companies, nil
}

// GetCompany returns one company by id
func (s *Service) GetCompany(id uint) (*Company, error) {
	var company Company
	if err := s.db.First(&company, id).Error; err != nil {
		return nil, fmt.Errorf("company not found")
	}
	return &company, nil
}

// CreateCompany creates a new company
func (s *Service) CreateCompany(req *CompanyRequest) (*Company, error) {
	company := Company{
		CompanyName: req.CompanyName,
		Address:     req.Address,
		Phone:       req.Phone,
		Email:       req.Email,
		Logo:        req.Logo,
		IsActive:    true,
	}
	if err := s.db.Create(&company).Error; err != nil {
		return nil, fmt.Errorf("failed to create company: %w", err)
	}
	return &company, nil
}

// UpdateCompany updates an existing company
func (s *Service) UpdateCompany(id uint, req *CompanyRequest) (*Company, error) {
	company, err := s.GetCompany(id)
	if err != nil {
		return nil, err
	}

	company.CompanyName = req.CompanyName
	company.Address = req.Address
	company.Phone = req.Phone
	company.Email = req.Email
	company.Logo = req.Logo

	if err := s.db.Save(company).Error; err != nil {
		return nil, fmt.Errorf("failed to update company: %w", err)
	}
	return company, nil
}

// DeleteCompany soft-deletes a company
func (s *Service) DeleteCompany(id uint) error {
	return s.db.Delete(&Company{}, id).Error
}

// ListBikeModels returns models, optionally filtered by company
func (s *Service) ListBikeModels(companyID uint) ([]BikeModel, error) {
	query := s.db.Where("is_active = ?", true)
	if companyID > 0 {
		query = query.Where("company_id = ?", companyID)
	}

	var models []BikeModel
	if err := query.Order("name ASC").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list bike models: %w", err)
	}
	return models, nil
}

// GetBikeModel returns one model by id
func (s *Service) GetBikeModel(id uint) (*BikeModel, error) {
	var model BikeModel
	if err := s.db.Preload("Company").First(&model, id).Error; err != nil {
		return nil, fmt.Errorf("bike model not found")
	}
	return &model, nil
}

// CreateBikeModel creates a new bike model under a company
func (s *Service) CreateBikeModel(req *BikeModelRequest) (*BikeModel, error) {
	if _, err := s.GetCompany(req.CompanyID); err != nil {
		return nil, err
	}

	model := BikeModel{
		Name:      req.Name,
		CompanyID: req.CompanyID,
		IsActive:  true,
	}
	if err := s.db.Create(&model).Error; err != nil {
		return nil, fmt.Errorf("failed to create bike model: %w", err)
	}
	return &model, nil
}

// DeleteBikeModel soft-deletes a bike model
func (s *Service) DeleteBikeModel(id uint) error {
	return s.db.Delete(&BikeModel{}, id).Error
}

// ListProducts returns products matching the browse filters. When a bike
// model foreign key yields nothing, the lookup falls back to matching the
// free-text model number against the model name, because older part
// records were entered before the foreign key existed.
func (s *Service) ListProducts(req *ProductListRequest) ([]Product, int64, error) {
	products, total, err := s.queryProducts(req, false)
	if err != nil {
		return nil, 0, err
	}

	if len(products) == 0 && req.BikeModelID > 0 {
		var model BikeModel
		if err := s.db.First(&model, req.BikeModelID).Error; err == nil && model.Name != "" {
			fallback := *req
			fallback.BikeModelID = 0
			fallback.ModelNo = model.Name
			return s.queryProducts(&fallback, true)
		}
	}

	return products, total, nil
}

func (s *Service) queryProducts(req *ProductListRequest, byModelNo bool) ([]Product, int64, error) {
	query := s.db.Model(&Product{}).Where("is_active = ?", true)

	if req.CompanyID > 0 {
		query = query.Where("company_id = ?", req.CompanyID)
	}
	if req.BikeModelID > 0 {
		query = query.Where("bike_model_id = ?", req.BikeModelID)
	}
	if byModelNo && req.ModelNo != "" {
		query = query.Where("LOWER(TRIM(model_no)) = ?", strings.ToLower(strings.TrimSpace(req.ModelNo)))
	}
	if req.Search != "" {
		pattern := "%" + strings.ToLower(req.Search) + "%"
		query = query.Where("LOWER(product_name) LIKE ? OR LOWER(part_no) LIKE ? OR LOWER(product_code) LIKE ?",
			pattern, pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	page := req.Page
	if page < 1 {
		page = 1
	}
	limit := req.Limit
	if limit < 1 || limit > 100 {
		limit = 20
	}

	var products []Product
	err := query.Preload("Company").Preload("BikeModel").
		Order("product_name ASC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&products).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}

	return products, total, nil
}

// GetProduct returns one product with its company and model preloaded
func (s *Service) GetProduct(id uint) (*Product, error) {
	var product Product
	err := s.db.Preload("Company").Preload("BikeModel").
		Where("is_active = ?", true).First(&product, id).Error
	if err != nil {
		return nil, fmt.Errorf("product not found")
	}
	return &product, nil
}

// RelatedProducts returns other parts for the same company and model
func (s *Service) RelatedProducts(product *Product, limit int) ([]Product, error) {
	if limit < 1 {
		limit = 8
	}

	query := s.db.Where("is_active = ? AND company_id = ? AND id <> ?",
		true, product.CompanyID, product.ID)
	if product.BikeModelID != nil {
		query = query.Where("bike_model_id = ?", *product.BikeModelID)
	} else if product.ModelNo != "" {
		query = query.Where("LOWER(TRIM(model_no)) = ?", strings.ToLower(strings.TrimSpace(product.ModelNo)))
	}

	var related []Product
	if err := query.Limit(limit).Find(&related).Error; err != nil {
		return nil, fmt.Errorf("failed to load related products: %w", err)
	}
	return related, nil
}

// CreateProduct creates a new product
func (s *Service) CreateProduct(req *ProductRequest) (*Product, error) {
	if _, err := s.GetCompany(req.CompanyID); err != nil {
		return nil, err
	}

	product := Product{
		Name:        req.Name,
		PartNo:      req.PartNo,
		ProductCode: req.ProductCode,
		ModelNo:     req.ModelNo,
		CompanyID:   req.CompanyID,
		BikeModelID: req.BikeModelID,
		Description: req.Description,
		Image:       req.Image,
		NetWeight:   req.NetWeight,
		IsActive:    true,
	}

	var err error
	if product.Price, err = parsePrice(req.Price); err != nil {
		return nil, err
	}
	if product.SellingPrice, err = parsePrice(req.SellingPrice); err != nil {
		return nil, err
	}
	if product.MRP, err = parsePrice(req.MRP); err != nil {
		return nil, err
	}

	if err := s.db.Create(&product).Error; err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return &product, nil
}

// UpdateProduct updates an existing product
func (s *Service) UpdateProduct(id uint, req *ProductRequest) (*Product, error) {
	product, err := s.GetProduct(id)
	if err != nil {
		return nil, err
	}

	product.Name = req.Name
	product.PartNo = req.PartNo
	product.ProductCode = req.ProductCode
	product.ModelNo = req.ModelNo
	product.CompanyID = req.CompanyID
	product.BikeModelID = req.BikeModelID
	product.Description = req.Description
	product.Image = req.Image
	product.NetWeight = req.NetWeight

	if product.Price, err = parsePrice(req.Price); err != nil {
		return nil, err
	}
	if product.SellingPrice, err = parsePrice(req.SellingPrice); err != nil {
		return nil, err
	}
	if product.MRP, err = parsePrice(req.MRP); err != nil {
		return nil, err
	}

	if err := s.db.Save(product).Error; err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return product, nil
}

// DeleteProduct soft-deletes a product
func (s *Service) DeleteProduct(id uint) error {
	return s.db.Delete(&Product{}, id).Error
}
