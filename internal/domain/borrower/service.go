// internal/domain/borrower/service.go
package borrower

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Service handles borrower business logic
type Service struct {
	db *gorm.DB
}

// NewService creates a new borrower service
func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Request represents create/update borrower input
type Request struct {
	Name       string `json:"name" binding:"required"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	Shop       string `json:"shop"`
	OpeningDue string `json:"opening_due"`
}

// ListRequest carries borrower list filters
type ListRequest struct {
	Search string
	Page   int
	Limit  int
}

// Create registers a new borrower. The opening due seeds the running
// balance.
func (s *Service) Create(req *Request) (*Borrower, error) {
	openingDue, err := parseDue(req.OpeningDue)
	if err != nil {
		return nil, err
	}

	borrower := Borrower{
		Name:       req.Name,
		Phone:      req.Phone,
		Address:    req.Address,
		Shop:       req.Shop,
		OpeningDue: openingDue,
		CurrentDue: openingDue,
		IsActive:   true,
	}
	if err := s.db.Create(&borrower).Error; err != nil {
		return nil, fmt.Errorf("failed to create borrower: %w", err)
	}
	return &borrower, nil
}

// List returns borrowers matching an optional name/phone/shop search
func (s *Service) List(req *ListRequest) ([]Borrower, int64, error) {
	query := s.db.Model(&Borrower{}).Where("is_active = ?", true)

	if req.Search != "" {
		pattern := "%" + strings.ToLower(req.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR phone LIKE ? OR LOWER(shop) LIKE ?",
			pattern, "%"+req.Search+"%", pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count borrowers: %w", err)
	}

	page := req.Page
	if page < 1 {
		page = 1
	}
	limit := req.Limit
	if limit < 1 || limit > 100 {
		limit = 20
	}

	var borrowers []Borrower
	err := query.Order("name ASC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&borrowers).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list borrowers: %w", err)
	}

	return borrowers, total, nil
}

// Get returns one borrower by id
func (s *Service) Get(id uint) (*Borrower, error) {
	var borrower Borrower
	if err := s.db.First(&borrower, id).Error; err != nil {
		return nil, fmt.Errorf("borrower not found")
	}
	return &borrower, nil
}

// Update updates borrower contact details. The due balance is only moved
// by transactions and credit sales, never edited directly here.
func (s *Service) Update(id uint, req *Request) (*Borrower, error) {
	borrower, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	borrower.Name = req.Name
	borrower.Phone = req.Phone
	borrower.Address = req.Address
	borrower.Shop = req.Shop

	if err := s.db.Save(borrower).Error; err != nil {
		return nil, fmt.Errorf("failed to update borrower: %w", err)
	}
	return borrower, nil
}

// Delete soft-deletes a borrower
func (s *Service) Delete(id uint) error {
	return s.db.Delete(&Borrower{}, id).Error
}

// ListWithDues returns borrowers carrying a positive due balance
func (s *Service) ListWithDues() ([]Borrower, error) {
	var borrowers []Borrower
	err := s.db.Where("is_active = ? AND current_due > 0", true).
		Order("current_due DESC").
		Find(&borrowers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list dues: %w", err)
	}
	return borrowers, nil
}

// AddDue increases a borrower's balance inside the caller's transaction,
// used when an order is sold on credit.
func (s *Service) AddDue(tx *gorm.DB, borrowerID uint, amount decimal.Decimal) error {
	return tx.Model(&Borrower{}).Where("id = ?", borrowerID).
		Update("current_due", gorm.Expr("current_due + ?", amount)).Error
}

// SettleDue decreases a borrower's balance inside the caller's
// transaction, used when a payment is received.
func (s *Service) SettleDue(tx *gorm.DB, borrowerID uint, amount decimal.Decimal) error {
	return tx.Model(&Borrower{}).Where("id = ?", borrowerID).
		Update("current_due", gorm.Expr("current_due - ?", amount)).Error
}

func parseDue(raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, nil
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid opening due: %w", err)
	}
	if value.IsNegative() {
		return decimal.Zero, fmt.Errorf("opening due cannot be negative")
	}
	return value, nil
}
