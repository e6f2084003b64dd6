// internal/domain/inventory/entity.go
package inventory

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/your-org/motoparts-backend/internal/domain/catalog"
	"gorm.io/gorm"
)

// MovementType represents the type of stock movement
type MovementType string

const (
	MovementTypeInbound  MovementType = "inbound"  // Purchase, return, adjustment increase
	MovementTypeOutbound MovementType = "outbound" // Sale, damage, adjustment decrease
)

// MovementReason represents the reason for a stock movement
type MovementReason string

const (
	ReasonPurchase   MovementReason = "purchase"
	ReasonSale       MovementReason = "sale"
	ReasonReturn     MovementReason = "return"
	ReasonDamage     MovementReason = "damage"
	ReasonAdjustment MovementReason = "adjustment"
)

// Stock tracks quantities and prices for one product
type Stock struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	ProductID uint   `gorm:"not null;uniqueIndex" json:"product_id"`
	PartNo    string `gorm:"size:100;index" json:"part_no"`

	PurchaseQuantity     int `gorm:"default:0" json:"purchase_quantity"`
	SaleQuantity         int `gorm:"default:0" json:"sale_quantity"`
	DamageQuantity       int `gorm:"default:0" json:"damage_quantity"`
	CurrentStockQuantity int `gorm:"default:0" json:"current_stock_quantity"`

	PurchasePrice decimal.Decimal `gorm:"type:numeric(12,2);default:0" json:"purchase_price"`
	SalePrice     decimal.Decimal `gorm:"type:numeric(12,2);default:0" json:"sale_price"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Product   *catalog.Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Movements []StockMovement  `gorm:"foreignKey:StockID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"movements,omitempty"`
}

// CurrentStockValue returns the value of stock on hand at purchase price
func (s *Stock) CurrentStockValue() decimal.Decimal {
	return s.PurchasePrice.Mul(decimal.NewFromInt(int64(s.CurrentStockQuantity)))
}

// StockMovement records one change to a stock row
type StockMovement struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	StockID   uint           `gorm:"not null;index" json:"stock_id"`
	Type      MovementType   `gorm:"not null;size:20" json:"type"`
	Reason    MovementReason `gorm:"not null;size:30" json:"reason"`
	Quantity  int            `gorm:"not null" json:"quantity"`
	Reference string         `gorm:"size:100" json:"reference"` // order number, challan no etc.
	Note      string         `gorm:"size:500" json:"note"`
	CreatedAt time.Time      `json:"created_at"`
}
