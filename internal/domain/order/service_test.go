// internal/domain/order/service_test.go
package order

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/your-org/motoparts-backend/internal/config"
	"github.com/your-org/motoparts-backend/internal/domain/cart"
	"github.com/your-org/motoparts-backend/internal/pkg/kv"
)

func TestSubtotal(t *testing.T) {
	lines := []cart.Line{
		{ProductID: 1, UnitPrice: decimal.RequireFromString("150.00"), Quantity: 3},
		{ProductID: 2, UnitPrice: decimal.RequireFromString("420.50"), Quantity: 2},
	}

	assert.True(t, Subtotal(lines).Equal(decimal.RequireFromString("1291.00")))
}

func TestSubtotalIgnoresNegativePrice(t *testing.T) {
	lines := []cart.Line{
		{ProductID: 1, UnitPrice: decimal.RequireFromString("100"), Quantity: 1},
		{ProductID: 2, UnitPrice: decimal.RequireFromString("-50"), Quantity: 4},
	}

	assert.True(t, Subtotal(lines).Equal(decimal.RequireFromString("100")))
}

func TestSubtotalEmptyCart(t *testing.T) {
	assert.True(t, Subtotal(nil).IsZero())
}

func TestStatusTransitions(t *testing.T) {
	tests := []struct {
		from  Status
		to    Status
		valid bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusDelivered, false},
		{StatusConfirmed, StatusProcessing, true},
		{StatusProcessing, StatusDelivered, true},
		{StatusDelivered, StatusCompleted, true},
		{StatusDelivered, StatusCancelled, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCancelled, StatusPending, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.valid, IsValidTransition(tt.from, tt.to),
			"%s -> %s", tt.from, tt.to)
	}
}

func TestCheckoutRejectsOverpayment(t *testing.T) {
	ctx := context.Background()
	store := cart.NewStore(kv.NewMemory(), "cart:session:checkout-test", nil)
	store.Add(ctx, cart.Candidate{
		ProductID: 1,
		Name:      "Brake Shoe",
		UnitPrice: decimal.RequireFromString("100"),
		Quantity:  1,
	}, cart.AddOptions{})

	service := NewService(nil, &config.Config{}, nil, nil)

	_, err := service.Checkout(ctx, store, &CheckoutRequest{
		CustomerName: "Walk-in",
		PaidAmount:   "150",
	})
	assert.ErrorContains(t, err, "paid amount exceeds order total")

	// Overpaying past a discounted total is rejected the same way
	_, err = service.Checkout(ctx, store, &CheckoutRequest{
		CustomerName:   "Walk-in",
		DiscountAmount: "20",
		PaidAmount:     "100",
	})
	assert.ErrorContains(t, err, "paid amount exceeds order total")
}

func TestDueAmount(t *testing.T) {
	order := &Order{
		TotalAmount: decimal.RequireFromString("1500"),
		PaidAmount:  decimal.RequireFromString("900"),
	}
	assert.True(t, order.DueAmount().Equal(decimal.RequireFromString("600")))
}
