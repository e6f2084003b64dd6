// internal/domain/inventory/listing.go
package inventory

import (
	"github.com/shopspring/decimal"
	"github.com/your-org/motoparts-backend/internal/domain/cart"
	"github.com/your-org/motoparts-backend/internal/domain/catalog"
)

// ListingPrice resolves the unit price for a product listing. Part records
// come from several eras of data entry, so the price can live in any of
// the product price fields or only on the stock row; the first populated
// positive value wins, and a record with no usable price resolves to zero
// so the purchase flow is never blocked.
func ListingPrice(product *catalog.Product, stock *Stock) decimal.Decimal {
	if product != nil {
		for _, candidate := range []*decimal.Decimal{product.Price, product.SellingPrice} {
			if candidate != nil && candidate.IsPositive() {
				return *candidate
			}
		}
	}

	if stock != nil && stock.SalePrice.IsPositive() {
		return stock.SalePrice
	}

	if product != nil && product.MRP != nil && product.MRP.IsPositive() {
		return *product.MRP
	}

	return decimal.Zero
}

// AvailableQuantity resolves the sellable stock bound for a product.
// Zero means no bound is known, not that the item is out of stock; a
// missing stock row must not block adding to the cart. A present row at
// zero is the separate out-of-stock case, reported by OutOfStock.
func AvailableQuantity(stock *Stock) int {
	if stock == nil {
		return 0
	}
	if stock.CurrentStockQuantity < 0 {
		return 0
	}
	return stock.CurrentStockQuantity
}

// OutOfStock reports whether a tracked product has nothing left to sell.
// Only a present stock row can say so; untracked products stay sellable.
func OutOfStock(stock *Stock) bool {
	return stock != nil && stock.CurrentStockQuantity <= 0
}

// NewCartCandidate normalizes a product plus its optional stock record
// into the single shape the cart store accepts, together with the add
// options carrying the stock bound. This keeps the "which field holds the
// price" heuristic at the boundary instead of inside the cart.
func NewCartCandidate(product *catalog.Product, stock *Stock, quantity int) (cart.Candidate, cart.AddOptions) {
	candidate := cart.Candidate{
		ProductID: product.ID,
		Name:      product.Name,
		ImageURL:  product.Image,
		PartNo:    product.PartNo,
		UnitPrice: ListingPrice(product, stock),
		Quantity:  quantity,
	}

	return candidate, cart.AddOptions{MaxQuantity: AvailableQuantity(stock)}
}
