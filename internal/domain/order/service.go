// internal/domain/order/service.go
package order

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/your-org/motoparts-backend/internal/config"
	"github.com/your-org/motoparts-backend/internal/domain/borrower"
	"github.com/your-org/motoparts-backend/internal/domain/cart"
	"github.com/your-org/motoparts-backend/internal/domain/inventory"
	"gorm.io/gorm"
)

// Service handles order business logic
type Service struct {
	db        *gorm.DB
	config    *config.Config
	inventory *inventory.Service
	borrowers *borrower.Service
}

// NewService creates a new order service
func NewService(db *gorm.DB, cfg *config.Config, inventoryService *inventory.Service, borrowerService *borrower.Service) *Service {
	return &Service{
		db:        db,
		config:    cfg,
		inventory: inventoryService,
		borrowers: borrowerService,
	}
}

// CheckoutRequest represents checkout input for a session cart
type CheckoutRequest struct {
	CustomerName    string `json:"customer_name" binding:"required"`
	CustomerPhone   string `json:"customer_phone"`
	CustomerAddress string `json:"customer_address"`
	BorrowerID      *uint  `json:"borrower_id"`
	DiscountAmount  string `json:"discount_amount"`
	PaidAmount      string `json:"paid_amount"`
	Notes           string `json:"notes"`
}

// ListRequest carries order list filters
type ListRequest struct {
	Status Status
	Page   int
	Limit  int
}

// ListResponse is a paginated order list
type ListResponse struct {
	Orders     []Order `json:"orders"`
	Total      int64   `json:"total"`
	Page       int     `json:"page"`
	Limit      int     `json:"limit"`
	TotalPages int     `json:"total_pages"`
}

// Checkout converts the session cart into a persisted order. Every line
// is re-validated against live stock inside the transaction; the cart's
// clamp bound was advisory at add time, stock at checkout is what counts.
// On success the cart is cleared.
func (s *Service) Checkout(ctx context.Context, store *cart.Store, req *CheckoutRequest) (*Order, error) {
	lines := store.Lines(ctx)
	if len(lines) == 0 {
		return nil, fmt.Errorf("cart is empty")
	}

	discount, err := parseOptionalAmount(req.DiscountAmount)
	if err != nil {
		return nil, fmt.Errorf("invalid discount amount: %w", err)
	}
	paid, err := parseOptionalAmount(req.PaidAmount)
	if err != nil {
		return nil, fmt.Errorf("invalid paid amount: %w", err)
	}

	if req.BorrowerID != nil {
		if _, err := s.borrowers.Get(*req.BorrowerID); err != nil {
			return nil, err
		}
	}

	subtotal := Subtotal(lines)
	total := subtotal.Sub(discount)
	if total.IsNegative() {
		return nil, fmt.Errorf("discount exceeds order subtotal")
	}
	if paid.GreaterThan(total) {
		return nil, fmt.Errorf("paid amount exceeds order total")
	}

	newOrder := &Order{
		OrderNumber:     s.generateOrderNumber(),
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		CustomerAddress: req.CustomerAddress,
		BorrowerID:      req.BorrowerID,
		Status:          StatusPending,
		SubtotalAmount:  subtotal,
		DiscountAmount:  discount,
		TotalAmount:     total,
		PaidAmount:      paid,
		Currency:        s.config.App.Currency,
		Notes:           req.Notes,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(newOrder).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		for _, line := range lines {
			if err := s.inventory.DeductForSale(tx, line.ProductID, line.Quantity, newOrder.OrderNumber); err != nil {
				return fmt.Errorf("product %q: %w", line.Name, err)
			}

			item := Item{
				OrderID:    newOrder.ID,
				ProductID:  line.ProductID,
				PartNo:     line.PartNo,
				Name:       line.Name,
				Quantity:   line.Quantity,
				UnitPrice:  line.UnitPrice,
				TotalPrice: line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))),
			}
			if err := tx.Create(&item).Error; err != nil {
				return fmt.Errorf("failed to create order item: %w", err)
			}
			newOrder.Items = append(newOrder.Items, item)
		}

		// A credit sale raises the borrower's running due by the
		// unpaid part of the order
		if req.BorrowerID != nil {
			due := total.Sub(paid)
			if due.IsPositive() {
				if err := s.borrowers.AddDue(tx, *req.BorrowerID, due); err != nil {
					return fmt.Errorf("failed to update borrower due: %w", err)
				}
			}
		}

		history := StatusHistory{
			OrderID: newOrder.ID,
			Status:  StatusPending,
			Comment: "Order placed",
		}
		return tx.Create(&history).Error
	})
	if err != nil {
		return nil, err
	}

	store.Clear(ctx)
	return newOrder, nil
}

// GetOrders returns a paginated order list, optionally filtered by status
func (s *Service) GetOrders(req *ListRequest) (*ListResponse, error) {
	query := s.db.Model(&Order{})
	if req.Status != "" {
		query = query.Where("status = ?", req.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}

	page := req.Page
	if page < 1 {
		page = 1
	}
	limit := req.Limit
	if limit < 1 || limit > 100 {
		limit = 20
	}

	var orders []Order
	err := query.Preload("Items").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return &ListResponse{
		Orders:     orders,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

// GetOrder returns one order with items and history
func (s *Service) GetOrder(id uint) (*Order, error) {
	var order Order
	err := s.db.Preload("Items").Preload("StatusHistory").First(&order, id).Error
	if err != nil {
		return nil, fmt.Errorf("order not found")
	}
	return &order, nil
}

// GetOrderByNumber returns one order by its order number
func (s *Service) GetOrderByNumber(orderNumber string) (*Order, error) {
	var order Order
	err := s.db.Preload("Items").Where("order_number = ?", orderNumber).First(&order).Error
	if err != nil {
		return nil, fmt.Errorf("order not found")
	}
	return &order, nil
}

// UpdateStatus moves an order along the status lifecycle
func (s *Service) UpdateStatus(orderID uint, status Status, comment string) error {
	order, err := s.GetOrder(orderID)
	if err != nil {
		return err
	}

	if !IsValidTransition(order.Status, status) {
		return fmt.Errorf("invalid status transition from %s to %s", order.Status, status)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&Order{}).Where("id = ?", orderID).
			Update("status", status).Error; err != nil {
			return fmt.Errorf("failed to update order status: %w", err)
		}

		history := StatusHistory{
			OrderID: orderID,
			Status:  status,
			Comment: comment,
		}
		return tx.Create(&history).Error
	})
}

// CancelOrder cancels an order and returns its items to stock
func (s *Service) CancelOrder(orderID uint, reason string) error {
	order, err := s.GetOrder(orderID)
	if err != nil {
		return err
	}

	if !IsValidTransition(order.Status, StatusCancelled) {
		return fmt.Errorf("order in status %s cannot be cancelled", order.Status)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		for _, item := range order.Items {
			if err := s.inventory.RestoreFromSale(tx, item.ProductID, item.Quantity, order.OrderNumber); err != nil {
				return err
			}
		}

		if err := tx.Model(&Order{}).Where("id = ?", orderID).
			Update("status", StatusCancelled).Error; err != nil {
			return fmt.Errorf("failed to cancel order: %w", err)
		}

		history := StatusHistory{
			OrderID: orderID,
			Status:  StatusCancelled,
			Comment: reason,
		}
		return tx.Create(&history).Error
	})
}

// Subtotal sums cart lines into an order subtotal. Lines with a negative
// price contribute zero, same rule as the cart's own totals.
func Subtotal(lines []cart.Line) decimal.Decimal {
	subtotal := decimal.Zero
	for _, line := range lines {
		price := line.UnitPrice
		if price.IsNegative() {
			price = decimal.Zero
		}
		subtotal = subtotal.Add(price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return subtotal
}

// IsValidTransition reports whether an order may move between two statuses
func IsValidTransition(from, to Status) bool {
	transitions := map[Status][]Status{
		StatusPending:    {StatusConfirmed, StatusCancelled},
		StatusConfirmed:  {StatusProcessing, StatusCancelled},
		StatusProcessing: {StatusDelivered, StatusCancelled},
		StatusDelivered:  {StatusCompleted},
		StatusCompleted:  {},
		StatusCancelled:  {},
	}

	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

func (s *Service) generateOrderNumber() string {
	return fmt.Sprintf("ORD-%s", strings.ToUpper(uuid.New().String()[:8]))
}

func parseOptionalAmount(raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, nil
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, err
	}
	if value.IsNegative() {
		return decimal.Zero, fmt.Errorf("amount cannot be negative")
	}
	return value, nil
}
