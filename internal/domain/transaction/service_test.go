package transaction

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeMethod(t *testing.T) {
	assert.Equal(t, MethodCash, normalizeMethod(MethodCash))
	assert.Equal(t, MethodBank, normalizeMethod(MethodBank))
	assert.Equal(t, MethodMobile, normalizeMethod(MethodMobile))

	// Anything else falls back to cash
	assert.Equal(t, MethodCash, normalizeMethod(""))
	assert.Equal(t, MethodCash, normalizeMethod("cheque"))
}

func TestParseAmountRejectsNonPositive(t *testing.T) {
	_, err := parseAmount("0")
	assert.Error(t, err)

	_, err = parseAmount("-50")
	assert.Error(t, err)

	_, err = parseAmount("abc")
	assert.Error(t, err)

	amount, err := parseAmount("1250.50")
	require.NoError(t, err)
	assert.Equal(t, "1250.5", amount.String())
}

func TestLedgerPartlyPaidSaleMatchesRunningDue(t *testing.T) {
	// A 1000 sale with 600 paid at checkout raises the borrower's
	// current due by 400, so the statement must debit 400, not 1000
	total := decimal.RequireFromString("1000")
	paid := decimal.RequireFromString("600")
	dueRaised := total.Sub(paid)

	entries, closing := runLedger(decimal.Zero, []ledgerRow{
		{
			Date:        time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
			Description: "Sale ORD-1A2B3C4D",
			Debit:       total.Sub(paid),
		},
	})

	require.Len(t, entries, 1)
	assert.True(t, closing.Equal(dueRaised),
		"closing balance %s must match the due raised at checkout %s", closing, dueRaised)
}

func TestLedgerPaymentSettlesBalance(t *testing.T) {
	entries, closing := runLedger(decimal.RequireFromString("500"), []ledgerRow{
		{
			Date:        time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC),
			Description: "Payment cash",
			Credit:      decimal.RequireFromString("300"),
		},
		{
			Date:        time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
			Description: "Sale ORD-9F8E7D6C",
			Debit:       decimal.RequireFromString("250"),
		},
	})

	require.Len(t, entries, 2)
	// Chronological order regardless of input order
	assert.Equal(t, "Sale ORD-9F8E7D6C", entries[0].Description)
	assert.True(t, entries[0].Balance.Equal(decimal.RequireFromString("750")))
	assert.True(t, entries[1].Balance.Equal(decimal.RequireFromString("450")))
	assert.True(t, closing.Equal(decimal.RequireFromString("450")))
}

func TestParseTxDate(t *testing.T) {
	parsed, err := parseTxDate("2025-03-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), parsed)

	_, err = parseTxDate("15/03/2025")
	assert.Error(t, err)

	// Empty defaults to now
	parsed, err = parseTxDate("")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC(), parsed, time.Minute)
}
