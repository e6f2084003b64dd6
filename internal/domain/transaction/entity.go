// internal/domain/transaction/entity.go
package transaction

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Kind distinguishes money coming in from money going out
type Kind string

const (
	KindPaymentReceived Kind = "payment_received" // From a borrower, settles dues
	KindPaymentMade     Kind = "payment_made"     // To a supplier company
)

// Method represents how a payment moved
type Method string

const (
	MethodCash   Method = "cash"
	MethodBank   Method = "bank"
	MethodMobile Method = "mobile" // bKash, Nagad and the like
)

// Transaction records one payment in or out of the shop
type Transaction struct {
	ID   uint `gorm:"primaryKey" json:"id"`
	Kind Kind `gorm:"not null;size:30;index" json:"kind"`

	BorrowerID *uint `gorm:"index" json:"borrower_id"` // Set for payments received
	CompanyID  *uint `gorm:"index" json:"company_id"`  // Set for payments made

	Amount      decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"amount"`
	Method      Method          `gorm:"not null;size:20;default:'cash'" json:"method"`
	ReferenceNo string          `gorm:"size:100" json:"reference_no"`
	Note        string          `gorm:"size:500" json:"note"`
	TxDate      time.Time       `gorm:"not null;index" json:"tx_date"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
