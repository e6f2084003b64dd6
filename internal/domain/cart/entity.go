// internal/domain/cart/entity.go
package cart

import "github.com/shopspring/decimal"

// Line represents one purchasable entry in the shopping cart. All fields
// except Quantity are snapshots taken at add time; later changes to the
// product on the server do not retroactively update an existing line.
type Line struct {
	ProductID uint            `json:"product_id"`
	Name      string          `json:"name"`
	ImageURL  string          `json:"image_url,omitempty"`
	PartNo    string          `json:"part_no,omitempty"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
}

// Candidate is the normalized add-to-cart input. Presentation surfaces
// resolve price, image and stock from however the upstream records shape
// them and hand the store this one well-typed form.
type Candidate struct {
	ProductID uint            `json:"product_id"`
	Name      string          `json:"name"`
	ImageURL  string          `json:"image_url"`
	PartNo    string          `json:"part_no"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
}

// AddOptions carries the optional stock bound for an add operation.
// A MaxQuantity below 1 means no bound applies.
type AddOptions struct {
	MaxQuantity int
}

// AddResult reports what an add operation did. Adjusted is true when the
// requested quantity was clamped to the stock bound, so the caller can
// show an "only N available" notice.
type AddResult struct {
	Line     Line `json:"line"`
	Adjusted bool `json:"adjusted"`
	Limit    int  `json:"limit,omitempty"`
}

// Totals represents calculated cart totals
type Totals struct {
	ItemCount     int             `json:"item_count"`     // Number of unique lines
	TotalQuantity int             `json:"total_quantity"` // Sum of all quantities
	TotalAmount   decimal.Decimal `json:"total_amount"`
}

// CalculateTotals derives totals from a set of lines. A line whose unit
// price is missing or was coerced to a non-positive value contributes
// zero to the amount instead of poisoning the whole total.
func CalculateTotals(lines []Line) Totals {
	totals := Totals{
		ItemCount:   len(lines),
		TotalAmount: decimal.Zero,
	}

	for _, line := range lines {
		totals.TotalQuantity += line.Quantity

		price := line.UnitPrice
		if price.IsNegative() {
			price = decimal.Zero
		}
		totals.TotalAmount = totals.TotalAmount.Add(price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	return totals
}
