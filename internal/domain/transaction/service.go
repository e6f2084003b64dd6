// internal/domain/transaction/service.go
package transaction

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/your-org/motoparts-backend/internal/domain/borrower"
	"gorm.io/gorm"
)

// Service handles payment transactions and statements
type Service struct {
	db        *gorm.DB
	borrowers *borrower.Service
}

// NewService creates a new transaction service
func NewService(db *gorm.DB, borrowerService *borrower.Service) *Service {
	return &Service{
		db:        db,
		borrowers: borrowerService,
	}
}

// ReceiveRequest records a payment received from a borrower
type ReceiveRequest struct {
	BorrowerID  uint   `json:"borrower_id" binding:"required"`
	Amount      string `json:"amount" binding:"required"`
	Method      Method `json:"method"`
	ReferenceNo string `json:"reference_no"`
	Note        string `json:"note"`
	TxDate      string `json:"tx_date"` // YYYY-MM-DD, defaults to today
}

// PayRequest records a payment made to a supplier company
type PayRequest struct {
	CompanyID   uint   `json:"company_id" binding:"required"`
	Amount      string `json:"amount" binding:"required"`
	Method      Method `json:"method"`
	ReferenceNo string `json:"reference_no"`
	Note        string `json:"note"`
	TxDate      string `json:"tx_date"`
}

// ListRequest carries transaction list filters
type ListRequest struct {
	Kind       Kind
	BorrowerID uint
	CompanyID  uint
	From       time.Time
	To         time.Time
	Page       int
	Limit      int
}

// StatementEntry is one row of a customer statement
type StatementEntry struct {
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Debit       decimal.Decimal `json:"debit"`  // Credit sale, raises the due
	Credit      decimal.Decimal `json:"credit"` // Payment received, settles it
	Balance     decimal.Decimal `json:"balance"`
}

// CustomerStatement is a borrower's dated ledger
type CustomerStatement struct {
	Borrower       *borrower.Borrower `json:"borrower"`
	From           time.Time          `json:"from"`
	To             time.Time          `json:"to"`
	OpeningBalance decimal.Decimal    `json:"opening_balance"`
	Entries        []StatementEntry   `json:"entries"`
	ClosingBalance decimal.Decimal    `json:"closing_balance"`
}

// BrandSaleRow aggregates sold quantity and amount for one product
type BrandSaleRow struct {
	ProductID   uint            `json:"product_id"`
	ProductName string          `json:"product_name"`
	PartNo      string          `json:"part_no"`
	Quantity    int             `json:"quantity"`
	Amount      decimal.Decimal `json:"amount"`
}

// PurchaseRow aggregates purchased quantity and value for one product
type PurchaseRow struct {
	ProductID   uint            `json:"product_id"`
	ProductName string          `json:"product_name"`
	PartNo      string          `json:"part_no"`
	Quantity    int             `json:"quantity"`
	Value       decimal.Decimal `json:"value"`
}

// RecordReceive books a payment from a borrower and settles their due
func (s *Service) RecordReceive(req *ReceiveRequest) (*Transaction, error) {
	amount, err := parseAmount(req.Amount)
	if err != nil {
		return nil, err
	}
	txDate, err := parseTxDate(req.TxDate)
	if err != nil {
		return nil, err
	}

	if _, err := s.borrowers.Get(req.BorrowerID); err != nil {
		return nil, err
	}

	record := &Transaction{
		Kind:        KindPaymentReceived,
		BorrowerID:  &req.BorrowerID,
		Amount:      amount,
		Method:      normalizeMethod(req.Method),
		ReferenceNo: req.ReferenceNo,
		Note:        req.Note,
		TxDate:      txDate,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(record).Error; err != nil {
			return fmt.Errorf("failed to record payment: %w", err)
		}
		return s.borrowers.SettleDue(tx, req.BorrowerID, amount)
	})
	if err != nil {
		return nil, err
	}

	return record, nil
}

// RecordPay books a payment made to a supplier company
func (s *Service) RecordPay(req *PayRequest) (*Transaction, error) {
	amount, err := parseAmount(req.Amount)
	if err != nil {
		return nil, err
	}
	txDate, err := parseTxDate(req.TxDate)
	if err != nil {
		return nil, err
	}

	record := &Transaction{
		Kind:        KindPaymentMade,
		CompanyID:   &req.CompanyID,
		Amount:      amount,
		Method:      normalizeMethod(req.Method),
		ReferenceNo: req.ReferenceNo,
		Note:        req.Note,
		TxDate:      txDate,
	}

	if err := s.db.Create(record).Error; err != nil {
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}
	return record, nil
}

// List returns transactions matching the filters
func (s *Service) List(req *ListRequest) ([]Transaction, int64, error) {
	query := s.db.Model(&Transaction{})

	if req.Kind != "" {
		query = query.Where("kind = ?", req.Kind)
	}
	if req.BorrowerID > 0 {
		query = query.Where("borrower_id = ?", req.BorrowerID)
	}
	if req.CompanyID > 0 {
		query = query.Where("company_id = ?", req.CompanyID)
	}
	if !req.From.IsZero() {
		query = query.Where("tx_date >= ?", req.From)
	}
	if !req.To.IsZero() {
		query = query.Where("tx_date <= ?", req.To)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	page := req.Page
	if page < 1 {
		page = 1
	}
	limit := req.Limit
	if limit < 1 || limit > 100 {
		limit = 20
	}

	var transactions []Transaction
	err := query.Order("tx_date DESC, id DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&transactions).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list transactions: %w", err)
	}

	return transactions, total, nil
}

// ledgerRow is one dated movement feeding a customer statement
type ledgerRow struct {
	Date        time.Time
	Description string
	Debit       decimal.Decimal
	Credit      decimal.Decimal
}

// GetCustomerStatement builds a borrower's ledger between two dates:
// credit sales raise the balance by their unpaid part, received payments
// settle it. The amount paid at checkout never enters the due, so it
// must not enter the ledger either; only total minus paid is debited.
func (s *Service) GetCustomerStatement(borrowerID uint, from, to time.Time) (*CustomerStatement, error) {
	b, err := s.borrowers.Get(borrowerID)
	if err != nil {
		return nil, err
	}

	var rows []ledgerRow

	// Credit sales in range, net of what was paid on the spot
	saleRows := []ledgerRow{}
	err = s.db.Table("orders").
		Select("created_at AS date, 'Sale ' || order_number AS description, total_amount - paid_amount AS debit, 0 AS credit").
		Where("borrower_id = ? AND created_at BETWEEN ? AND ? AND status <> ? AND deleted_at IS NULL",
			borrowerID, from, to, "cancelled").
		Scan(&saleRows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load sales: %w", err)
	}
	rows = append(rows, saleRows...)

	// Payments received in range
	paymentRows := []ledgerRow{}
	err = s.db.Table("transactions").
		Select("tx_date AS date, 'Payment ' || COALESCE(NULLIF(reference_no, ''), method) AS description, 0 AS debit, amount AS credit").
		Where("borrower_id = ? AND kind = ? AND tx_date BETWEEN ? AND ? AND deleted_at IS NULL",
			borrowerID, KindPaymentReceived, from, to).
		Scan(&paymentRows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load payments: %w", err)
	}
	rows = append(rows, paymentRows...)

	// Opening balance: everything before the range, on top of the
	// borrower's opening due
	opening := b.OpeningDue

	var priorSales decimal.Decimal
	err = s.db.Table("orders").
		Select("COALESCE(SUM(total_amount - paid_amount), 0)").
		Where("borrower_id = ? AND created_at < ? AND status <> ? AND deleted_at IS NULL",
			borrowerID, from, "cancelled").
		Scan(&priorSales).Error
	if err != nil {
		return nil, fmt.Errorf("failed to compute opening balance: %w", err)
	}

	var priorPayments decimal.Decimal
	err = s.db.Table("transactions").
		Select("COALESCE(SUM(amount), 0)").
		Where("borrower_id = ? AND kind = ? AND tx_date < ? AND deleted_at IS NULL",
			borrowerID, KindPaymentReceived, from).
		Scan(&priorPayments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to compute opening balance: %w", err)
	}

	opening = opening.Add(priorSales).Sub(priorPayments)

	entries, closing := runLedger(opening, rows)

	return &CustomerStatement{
		Borrower:       b,
		From:           from,
		To:             to,
		OpeningBalance: opening,
		Entries:        entries,
		ClosingBalance: closing,
	}, nil
}

// runLedger orders the rows chronologically and runs the balance forward
// from the opening figure
func runLedger(opening decimal.Decimal, rows []ledgerRow) ([]StatementEntry, decimal.Decimal) {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Date.Before(rows[j].Date)
	})

	entries := make([]StatementEntry, 0, len(rows))
	balance := opening
	for _, row := range rows {
		balance = balance.Add(row.Debit).Sub(row.Credit)
		entries = append(entries, StatementEntry{
			Date:        row.Date,
			Description: row.Description,
			Debit:       row.Debit,
			Credit:      row.Credit,
			Balance:     balance,
		})
	}
	return entries, balance
}

// GetBrandSaleStatement aggregates sold items for one company's products
func (s *Service) GetBrandSaleStatement(companyID uint, from, to time.Time) ([]BrandSaleRow, error) {
	var rows []BrandSaleRow
	err := s.db.Table("order_items").
		Select("order_items.product_id, products.product_name, order_items.part_no, SUM(order_items.quantity) AS quantity, SUM(order_items.total_price) AS amount").
		Joins("JOIN products ON products.id = order_items.product_id").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("products.company_id = ? AND orders.created_at BETWEEN ? AND ? AND orders.status <> ? AND orders.deleted_at IS NULL",
			companyID, from, to, "cancelled").
		Group("order_items.product_id, products.product_name, order_items.part_no").
		Order("amount DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to build sale statement: %w", err)
	}
	return rows, nil
}

// GetPurchaseStatement aggregates purchased stock for one company
func (s *Service) GetPurchaseStatement(companyID uint, from, to time.Time) ([]PurchaseRow, error) {
	var rows []PurchaseRow
	err := s.db.Table("stock_movements").
		Select("stocks.product_id, products.product_name, stocks.part_no, SUM(stock_movements.quantity) AS quantity, SUM(stock_movements.quantity * stocks.purchase_price) AS value").
		Joins("JOIN stocks ON stocks.id = stock_movements.stock_id").
		Joins("JOIN products ON products.id = stocks.product_id").
		Where("products.company_id = ? AND stock_movements.reason = ? AND stock_movements.created_at BETWEEN ? AND ?",
			companyID, "purchase", from, to).
		Group("stocks.product_id, products.product_name, stocks.part_no").
		Order("value DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to build purchase statement: %w", err)
	}
	return rows, nil
}

// normalizeMethod maps unknown payment methods to cash
func normalizeMethod(method Method) Method {
	switch method {
	case MethodCash, MethodBank, MethodMobile:
		return method
	default:
		return MethodCash
	}
}

func parseAmount(raw string) (decimal.Decimal, error) {
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount: %w", err)
	}
	if !value.IsPositive() {
		return decimal.Zero, fmt.Errorf("amount must be positive")
	}
	return value, nil
}

func parseTxDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Now().UTC(), nil
	}
	txDate, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", raw)
	}
	return txDate, nil
}
