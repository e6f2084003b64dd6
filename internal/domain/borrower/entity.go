// internal/domain/borrower/entity.go
package borrower

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Borrower represents a credit customer who buys parts on account
type Borrower struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"not null;size:255" json:"name"`
	Phone   string `gorm:"size:50;index" json:"phone"`
	Address string `gorm:"size:500" json:"address"`
	Shop    string `gorm:"size:255" json:"shop"`

	OpeningDue decimal.Decimal `gorm:"type:numeric(12,2);default:0" json:"opening_due"`
	CurrentDue decimal.Decimal `gorm:"type:numeric(12,2);default:0" json:"current_due"`

	IsActive  bool           `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
