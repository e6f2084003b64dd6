// internal/domain/order/entity.go
package order

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Status represents the order status
type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusProcessing Status = "processing"
	StatusDelivered  Status = "delivered"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// Order represents a customer order assembled from a session cart
type Order struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	OrderNumber string `gorm:"uniqueIndex;not null;size:50" json:"order_number"`

	CustomerName    string `gorm:"not null;size:255" json:"customer_name"`
	CustomerPhone   string `gorm:"size:50" json:"customer_phone"`
	CustomerAddress string `gorm:"size:500" json:"customer_address"`
	BorrowerID      *uint  `gorm:"index" json:"borrower_id"` // Set for credit sales

	Status Status `gorm:"not null;default:'pending'" json:"status"`

	SubtotalAmount decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"subtotal_amount"`
	DiscountAmount decimal.Decimal `gorm:"type:numeric(12,2);default:0" json:"discount_amount"`
	TotalAmount    decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"total_amount"`
	PaidAmount     decimal.Decimal `gorm:"type:numeric(12,2);default:0" json:"paid_amount"`
	Currency       string          `gorm:"size:3;default:'BDT'" json:"currency"`

	Notes string `gorm:"type:text" json:"notes"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Items         []Item          `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
	StatusHistory []StatusHistory `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"status_history,omitempty"`
}

// DueAmount returns what remains unpaid on the order
func (o *Order) DueAmount() decimal.Decimal {
	return o.TotalAmount.Sub(o.PaidAmount)
}

// Item represents one line in an order. Name, part number and price are
// snapshots taken at checkout, so later catalog edits do not rewrite
// billing history.
type Item struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	OrderID    uint            `gorm:"not null;index" json:"order_id"`
	ProductID  uint            `gorm:"not null;index" json:"product_id"`
	PartNo     string          `gorm:"size:100" json:"part_no"`
	Name       string          `gorm:"not null;size:255" json:"name"`
	Quantity   int             `gorm:"not null" json:"quantity"`
	UnitPrice  decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"unit_price"`
	TotalPrice decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"total_price"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// TableName overrides the GORM table name
func (Item) TableName() string {
	return "order_items"
}

// StatusHistory records order status changes
type StatusHistory struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	OrderID   uint      `gorm:"not null;index" json:"order_id"`
	Status    Status    `gorm:"not null" json:"status"`
	Comment   string    `gorm:"size:500" json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName overrides the GORM table name
func (StatusHistory) TableName() string {
	return "order_status_histories"
}
