// internal/domain/inventory/listing_test.go
package inventory

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/your-org/motoparts-backend/internal/domain/catalog"
)

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestListingPriceFallbackChain(t *testing.T) {
	tests := []struct {
		name    string
		product *catalog.Product
		stock   *Stock
		want    string
	}{
		{
			name:    "price field wins",
			product: &catalog.Product{Price: dec("150.00"), SellingPrice: dec("140"), MRP: dec("160")},
			stock:   &Stock{SalePrice: decimal.RequireFromString("145")},
			want:    "150.00",
		},
		{
			name:    "selling price when price missing",
			product: &catalog.Product{SellingPrice: dec("140"), MRP: dec("160")},
			want:    "140",
		},
		{
			name:    "stock sale price when product unpriced",
			product: &catalog.Product{MRP: dec("160")},
			stock:   &Stock{SalePrice: decimal.RequireFromString("145")},
			want:    "145",
		},
		{
			name:    "mrp as last resort",
			product: &catalog.Product{MRP: dec("160")},
			want:    "160",
		},
		{
			name:    "zero price fields are skipped",
			product: &catalog.Product{Price: dec("0"), SellingPrice: dec("140")},
			want:    "140",
		},
		{
			name:    "no usable price resolves to zero",
			product: &catalog.Product{},
			stock:   &Stock{},
			want:    "0",
		},
		{
			name: "nil product",
			want: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ListingPrice(tt.product, tt.stock)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
				"got %s want %s", got, tt.want)
		})
	}
}

func TestAvailableQuantity(t *testing.T) {
	assert.Equal(t, 0, AvailableQuantity(nil))
	assert.Equal(t, 0, AvailableQuantity(&Stock{CurrentStockQuantity: -3}))
	assert.Equal(t, 12, AvailableQuantity(&Stock{CurrentStockQuantity: 12}))
}

func TestOutOfStock(t *testing.T) {
	// No stock row means no known bound, not an empty shelf
	assert.False(t, OutOfStock(nil))
	assert.False(t, OutOfStock(&Stock{CurrentStockQuantity: 5}))

	// A tracked product at or below zero has nothing to sell
	assert.True(t, OutOfStock(&Stock{CurrentStockQuantity: 0}))
	assert.True(t, OutOfStock(&Stock{CurrentStockQuantity: -3}))
}

func TestNewCartCandidate(t *testing.T) {
	product := &catalog.Product{
		ID:     7,
		Name:   "Clutch Plate",
		PartNo: "CP-1100",
		Image:  "/media/clutch.png",
		Price:  dec("150.00"),
	}
	stock := &Stock{ProductID: 7, CurrentStockQuantity: 4}

	candidate, opts := NewCartCandidate(product, stock, 3)

	assert.Equal(t, uint(7), candidate.ProductID)
	assert.Equal(t, "Clutch Plate", candidate.Name)
	assert.Equal(t, "CP-1100", candidate.PartNo)
	assert.Equal(t, "/media/clutch.png", candidate.ImageURL)
	assert.Equal(t, 3, candidate.Quantity)
	assert.True(t, candidate.UnitPrice.Equal(decimal.RequireFromString("150.00")))
	assert.Equal(t, 4, opts.MaxQuantity)
}

func TestNewCartCandidateWithoutStock(t *testing.T) {
	product := &catalog.Product{ID: 7, Name: "Clutch Plate"}

	candidate, opts := NewCartCandidate(product, nil, 1)

	assert.True(t, candidate.UnitPrice.IsZero())
	assert.Equal(t, 0, opts.MaxQuantity, "missing stock row must not impose a bound")
}

func TestCurrentStockValue(t *testing.T) {
	stock := &Stock{
		CurrentStockQuantity: 5,
		PurchasePrice:        decimal.RequireFromString("120.50"),
	}
	assert.True(t, stock.CurrentStockValue().Equal(decimal.RequireFromString("602.50")))
}
