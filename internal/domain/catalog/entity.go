// internal/domain/catalog/entity.go
package catalog

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Company represents a parts manufacturer / brand carried by the shop
type Company struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	CompanyName string         `gorm:"not null;size:255;uniqueIndex" json:"company_name"`
	Address     string         `gorm:"size:500" json:"address"`
	Phone       string         `gorm:"size:50" json:"phone"`
	Email       string         `gorm:"size:255" json:"email"`
	Logo        string         `gorm:"size:500" json:"logo"`
	IsActive    bool           `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	BikeModels []BikeModel `gorm:"foreignKey:CompanyID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"bike_models,omitempty"`
	Products   []Product   `gorm:"foreignKey:CompanyID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"products,omitempty"`
}

// BikeModel represents a motorcycle model parts are catalogued under
type BikeModel struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"not null;size:255" json:"name"`
	CompanyID uint           `gorm:"not null;index" json:"company_id"`
	IsActive  bool           `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Company *Company `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
}

// Product represents a motorcycle part. Price fields are nullable because
// upstream records are frequently incomplete; the listing resolver in the
// inventory package walks the fallback chain when building a display or
// cart price.
type Product struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null;size:255" json:"product_name"`
	PartNo      string `gorm:"size:100;index" json:"part_no"`
	ProductCode string `gorm:"size:100" json:"product_code"`
	ModelNo     string `gorm:"size:255;index" json:"model_no"`
	CompanyID   uint   `gorm:"not null;index" json:"company_id"`
	BikeModelID *uint  `gorm:"index" json:"bike_model_id"`
	Description string `gorm:"type:text" json:"description"`
	Image       string `gorm:"size:500" json:"image"`
	NetWeight   string `gorm:"size:50" json:"net_weight"`

	Price        *decimal.Decimal `gorm:"type:numeric(12,2)" json:"price"`
	SellingPrice *decimal.Decimal `gorm:"type:numeric(12,2)" json:"selling_price"`
	MRP          *decimal.Decimal `gorm:"type:numeric(12,2)" json:"mrp"`

	IsActive  bool           `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Company   *Company   `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
	BikeModel *BikeModel `gorm:"foreignKey:BikeModelID" json:"bike_model,omitempty"`
}
