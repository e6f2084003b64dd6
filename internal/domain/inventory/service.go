// internal/domain/inventory/service.go
package inventory

import (
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Service handles stock business logic
type Service struct {
	db *gorm.DB
}

// NewService creates a new inventory service
func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// StockListRequest carries the stock list filters
type StockListRequest struct {
	CompanyID uint
	PartNo    string
	Page      int
	Limit     int
}

// PurchaseRequest records incoming stock for a product
type PurchaseRequest struct {
	ProductID     uint   `json:"product_id" binding:"required"`
	Quantity      int    `json:"quantity" binding:"required,min=1"`
	PurchasePrice string `json:"purchase_price"`
	SalePrice     string `json:"sale_price"`
	Reference     string `json:"reference"`
	Note          string `json:"note"`
}

// DamageRequest sets the damaged quantity for a stock row
type DamageRequest struct {
	DamageQuantity int    `json:"damage_quantity" binding:"min=0"`
	Note           string `json:"note"`
}

// ListStocks returns stock rows with their products
func (s *Service) ListStocks(req *StockListRequest) ([]Stock, int64, error) {
	query := s.db.Model(&Stock{}).Joins("JOIN products ON products.id = stocks.product_id")

	if req.CompanyID > 0 {
		query = query.Where("products.company_id = ?", req.CompanyID)
	}
	if req.PartNo != "" {
		query = query.Where("stocks.part_no ILIKE ?", "%"+req.PartNo+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count stocks: %w", err)
	}

	page := req.Page
	if page < 1 {
		page = 1
	}
	limit := req.Limit
	if limit < 1 || limit > 100 {
		limit = 20
	}

	var stocks []Stock
	err := query.Preload("Product").Preload("Product.Company").
		Order("stocks.id ASC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&stocks).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list stocks: %w", err)
	}

	return stocks, total, nil
}

// GetStock returns one stock row by id
func (s *Service) GetStock(id uint) (*Stock, error) {
	var stock Stock
	if err := s.db.Preload("Product").First(&stock, id).Error; err != nil {
		return nil, fmt.Errorf("stock not found")
	}
	return &stock, nil
}

// GetStockByProduct returns the stock row for a product, or nil without
// error when the product has never been stocked.
func (s *Service) GetStockByProduct(productID uint) (*Stock, error) {
	var stock Stock
	err := s.db.Where("product_id = ?", productID).First(&stock).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load stock: %w", err)
	}
	return &stock, nil
}

// RecordPurchase books incoming quantity against a product, creating the
// stock row on first purchase.
func (s *Service) RecordPurchase(req *PurchaseRequest) (*Stock, error) {
	purchasePrice, err := parseAmount(req.PurchasePrice)
	if err != nil {
		return nil, fmt.Errorf("invalid purchase price: %w", err)
	}
	salePrice, err := parseAmount(req.SalePrice)
	if err != nil {
		return nil, fmt.Errorf("invalid sale price: %w", err)
	}

	var stock *Stock
	err = s.db.Transaction(func(tx *gorm.DB) error {
		var existing Stock
		result := tx.Where("product_id = ?", req.ProductID).First(&existing)

		if result.Error == gorm.ErrRecordNotFound {
			existing = Stock{ProductID: req.ProductID}
			var partNo string
			tx.Table("products").Select("part_no").Where("id = ?", req.ProductID).Scan(&partNo)
			existing.PartNo = partNo
		} else if result.Error != nil {
			return fmt.Errorf("failed to load stock: %w", result.Error)
		}

		existing.PurchaseQuantity += req.Quantity
		existing.CurrentStockQuantity += req.Quantity
		if purchasePrice.IsPositive() {
			existing.PurchasePrice = purchasePrice
		}
		if salePrice.IsPositive() {
			existing.SalePrice = salePrice
		}

		if err := tx.Save(&existing).Error; err != nil {
			return fmt.Errorf("failed to save stock: %w", err)
		}

		movement := StockMovement{
			StockID:   existing.ID,
			Type:      MovementTypeInbound,
			Reason:    ReasonPurchase,
			Quantity:  req.Quantity,
			Reference: req.Reference,
			Note:      req.Note,
		}
		if err := tx.Create(&movement).Error; err != nil {
			return fmt.Errorf("failed to record movement: %w", err)
		}

		stock = &existing
		return nil
	})
	if err != nil {
		return nil, err
	}

	return stock, nil
}

// SetDamageQuantity adjusts the damaged count for a stock row. Current
// stock shrinks or grows by the difference to the previous damage count.
func (s *Service) SetDamageQuantity(stockID uint, req *DamageRequest) (*Stock, error) {
	var stock *Stock
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var existing Stock
		if err := tx.First(&existing, stockID).Error; err != nil {
			return fmt.Errorf("stock not found")
		}

		delta := req.DamageQuantity - existing.DamageQuantity
		if delta > existing.CurrentStockQuantity {
			return fmt.Errorf("damage quantity exceeds current stock. Available: %d", existing.CurrentStockQuantity)
		}

		existing.DamageQuantity = req.DamageQuantity
		existing.CurrentStockQuantity -= delta

		if err := tx.Save(&existing).Error; err != nil {
			return fmt.Errorf("failed to save stock: %w", err)
		}

		if delta != 0 {
			movementType := MovementTypeOutbound
			quantity := delta
			if delta < 0 {
				movementType = MovementTypeInbound
				quantity = -delta
			}
			movement := StockMovement{
				StockID:  existing.ID,
				Type:     movementType,
				Reason:   ReasonDamage,
				Quantity: quantity,
				Note:     req.Note,
			}
			if err := tx.Create(&movement).Error; err != nil {
				return fmt.Errorf("failed to record movement: %w", err)
			}
		}

		stock = &existing
		return nil
	})
	if err != nil {
		return nil, err
	}

	return stock, nil
}

// DeductForSale reduces current stock inside the caller's transaction.
// Used by checkout; fails when the requested quantity is not on hand.
func (s *Service) DeductForSale(tx *gorm.DB, productID uint, quantity int, reference string) error {
	var stock Stock
	result := tx.Where("product_id = ?", productID).First(&stock)
	if result.Error == gorm.ErrRecordNotFound {
		// Untracked product; nothing to deduct
		return nil
	}
	if result.Error != nil {
		return fmt.Errorf("failed to load stock: %w", result.Error)
	}

	if stock.CurrentStockQuantity < quantity {
		return fmt.Errorf("insufficient stock. Available: %d", stock.CurrentStockQuantity)
	}

	stock.SaleQuantity += quantity
	stock.CurrentStockQuantity -= quantity

	if err := tx.Save(&stock).Error; err != nil {
		return fmt.Errorf("failed to save stock: %w", err)
	}

	movement := StockMovement{
		StockID:   stock.ID,
		Type:      MovementTypeOutbound,
		Reason:    ReasonSale,
		Quantity:  quantity,
		Reference: reference,
	}
	return tx.Create(&movement).Error
}

// RestoreFromSale returns quantity to stock inside the caller's
// transaction, used when an order is cancelled.
func (s *Service) RestoreFromSale(tx *gorm.DB, productID uint, quantity int, reference string) error {
	var stock Stock
	result := tx.Where("product_id = ?", productID).First(&stock)
	if result.Error == gorm.ErrRecordNotFound {
		return nil
	}
	if result.Error != nil {
		return fmt.Errorf("failed to load stock: %w", result.Error)
	}

	stock.SaleQuantity -= quantity
	if stock.SaleQuantity < 0 {
		stock.SaleQuantity = 0
	}
	stock.CurrentStockQuantity += quantity

	if err := tx.Save(&stock).Error; err != nil {
		return fmt.Errorf("failed to save stock: %w", err)
	}

	movement := StockMovement{
		StockID:   stock.ID,
		Type:      MovementTypeInbound,
		Reason:    ReasonReturn,
		Quantity:  quantity,
		Reference: reference,
	}
	return tx.Create(&movement).Error
}

func parseAmount(raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(raw)
}
