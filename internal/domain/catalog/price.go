// internal/domain/catalog/price.go
package catalog

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// parsePrice converts an optional request price into a decimal. Empty and
// missing values mean "not priced", which is a valid catalog state.
func parsePrice(raw *string) (*decimal.Decimal, error) {
	if raw == nil {
		return nil, nil
	}

	trimmed := strings.TrimSpace(*raw)
	if trimmed == "" {
		return nil, nil
	}

	value, err := decimal.NewFromString(trimmed)
	if err != nil {
		return nil, fmt.Errorf("invalid price %q", trimmed)
	}
	if value.IsNegative() {
		return nil, fmt.Errorf("price cannot be negative")
	}
	return &value, nil
}
