// internal/domain/cart/store_test.go
package cart

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/motoparts-backend/internal/pkg/kv"
)

const testKey = "cart:session:test"

func newTestStore(t *testing.T) (*Store, *kv.Memory) {
	t.Helper()
	storage := kv.NewMemory()
	return NewStore(storage, testKey, nil), storage
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestAddCreatesLine(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	result := store.Add(ctx, Candidate{
		ProductID: 7,
		Name:      "Clutch Plate",
		PartNo:    "CP-1100",
		UnitPrice: price("150.00"),
		Quantity:  3,
	}, AddOptions{})

	assert.False(t, result.Adjusted)

	lines := store.Lines(ctx)
	require.Len(t, lines, 1)
	assert.Equal(t, uint(7), lines[0].ProductID)
	assert.Equal(t, "Clutch Plate", lines[0].Name)
	assert.Equal(t, 3, lines[0].Quantity)
	assert.True(t, lines[0].UnitPrice.Equal(price("150.00")))
}

func TestAddMergesByProductID(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	store.Add(ctx, Candidate{ProductID: 1, Name: "Brake Shoe", UnitPrice: price("420"), Quantity: 2}, AddOptions{})
	store.Add(ctx, Candidate{ProductID: 1, Name: "Brake Shoe", UnitPrice: price("420"), Quantity: 3}, AddOptions{})

	lines := store.Lines(ctx)
	require.Len(t, lines, 1)
	assert.Equal(t, 5, lines[0].Quantity)
}

func TestAddMergeClampsToStockBound(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	store.Add(ctx, Candidate{ProductID: 1, Name: "Brake Shoe", UnitPrice: price("420"), Quantity: 2}, AddOptions{})
	result := store.Add(ctx, Candidate{ProductID: 1, Name: "Brake Shoe", UnitPrice: price("420"), Quantity: 3}, AddOptions{MaxQuantity: 4})

	assert.True(t, result.Adjusted)
	assert.Equal(t, 4, result.Limit)

	lines := store.Lines(ctx)
	require.Len(t, lines, 1)
	assert.Equal(t, 4, lines[0].Quantity)
}

func TestAddNewLineClampNotifiesExactlyOnce(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	result := store.Add(ctx, Candidate{ProductID: 9, Name: "Chain Sprocket Kit", UnitPrice: price("1250"), Quantity: 5}, AddOptions{MaxQuantity: 3})
	assert.True(t, result.Adjusted)

	lines := store.Lines(ctx)
	require.Len(t, lines, 1)
	assert.Equal(t, 3, lines[0].Quantity)

	// An add that stays inside the bound must not re-raise the notice
	result = store.Add(ctx, Candidate{ProductID: 10, Name: "Oil Filter", UnitPrice: price("90"), Quantity: 1}, AddOptions{MaxQuantity: 3})
	assert.False(t, result.Adjusted)
}

func TestAddRefreshesSnapshotFields(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	store.Add(ctx, Candidate{ProductID: 2, Name: "Head Lamp", ImageURL: "/media/old.png", UnitPrice: price("800"), Quantity: 1}, AddOptions{})
	store.Add(ctx, Candidate{ProductID: 2, Name: "Head Lamp Assembly", ImageURL: "/media/new.png", UnitPrice: price("850"), Quantity: 1}, AddOptions{})

	lines := store.Lines(ctx)
	require.Len(t, lines, 1)
	assert.Equal(t, "Head Lamp Assembly", lines[0].Name)
	assert.Equal(t, "/media/new.png", lines[0].ImageURL)
	assert.True(t, lines[0].UnitPrice.Equal(price("850")))
	assert.Equal(t, 2, lines[0].Quantity)
}

func TestAddCoercesBadQuantityAndPrice(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	store.Add(ctx, Candidate{ProductID: 3, Name: "Gasket", UnitPrice: price("-10"), Quantity: -4}, AddOptions{})

	lines := store.Lines(ctx)
	require.Len(t, lines, 1)
	assert.Equal(t, 1, lines[0].Quantity)
	assert.True(t, lines[0].UnitPrice.IsZero())
}

func TestRemoveIsIdempotent(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	store.Add(ctx, Candidate{ProductID: 1, Name: "Brake Shoe", UnitPrice: price("420"), Quantity: 2}, AddOptions{})
	store.Add(ctx, Candidate{ProductID: 5, Name: "Mirror", UnitPrice: price("260"), Quantity: 1}, AddOptions{})

	store.Remove(ctx, 1)
	store.Remove(ctx, 1)
	store.Remove(ctx, 999) // never present

	lines := store.Lines(ctx)
	require.Len(t, lines, 1)
	assert.Equal(t, uint(5), lines[0].ProductID)
}

func TestClearEmptiesCart(t *testing.T) {
	store, storage := newTestStore(t)
	ctx := context.Background()

	store.Add(ctx, Candidate{ProductID: 1, Name: "Brake Shoe", UnitPrice: price("420"), Quantity: 2}, AddOptions{})
	store.Clear(ctx)

	assert.Empty(t, store.Lines(ctx))

	// Clear persists the empty state rather than deleting the key
	data, found, err := storage.Load(ctx, testKey)
	require.NoError(t, err)
	require.True(t, found)
	assert.JSONEq(t, "[]", data)
}

func TestRoundTripPersistence(t *testing.T) {
	storage := kv.NewMemory()
	ctx := context.Background()

	first := NewStore(storage, testKey, nil)
	first.Add(ctx, Candidate{
		ProductID: 7,
		Name:      "Clutch Plate",
		ImageURL:  "/media/clutch.png",
		PartNo:    "CP-1100",
		UnitPrice: price("150.00"),
		Quantity:  3,
	}, AddOptions{})

	// Simulate a page reload: a fresh store over the same storage key
	second := NewStore(storage, testKey, nil)
	lines := second.Lines(ctx)

	require.Len(t, lines, 1)
	assert.Equal(t, uint(7), lines[0].ProductID)
	assert.Equal(t, "Clutch Plate", lines[0].Name)
	assert.Equal(t, "/media/clutch.png", lines[0].ImageURL)
	assert.Equal(t, "CP-1100", lines[0].PartNo)
	assert.Equal(t, 3, lines[0].Quantity)
	assert.True(t, lines[0].UnitPrice.Equal(price("150.00")))
}

func TestCorruptStorageYieldsEmptyCart(t *testing.T) {
	storage := kv.NewMemory()
	ctx := context.Background()

	require.NoError(t, storage.Save(ctx, testKey, `{"truncated": [`))

	store := NewStore(storage, testKey, nil)
	assert.Empty(t, store.Lines(ctx))

	// The unreadable payload is discarded, not kept around to fail again
	_, found, err := storage.Load(ctx, testKey)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCorruptStoredPriceYieldsEmptyCart(t *testing.T) {
	storage := kv.NewMemory()
	ctx := context.Background()

	require.NoError(t, storage.Save(ctx, testKey,
		`[{"product_id":7,"name":"Clutch Plate","unit_price":"not-a-number","quantity":3}]`))

	store := NewStore(storage, testKey, nil)
	assert.Empty(t, store.Lines(ctx))
}

func TestLoadFoldsDuplicateStoredLines(t *testing.T) {
	storage := kv.NewMemory()
	ctx := context.Background()

	require.NoError(t, storage.Save(ctx, testKey,
		`[{"product_id":1,"name":"Brake Shoe","unit_price":"420","quantity":2},`+
			`{"product_id":1,"name":"Brake Shoe","unit_price":"420","quantity":3}]`))

	store := NewStore(storage, testKey, nil)
	lines := store.Lines(ctx)

	require.Len(t, lines, 1)
	assert.Equal(t, 5, lines[0].Quantity)
}

// slowStore delays reads to widen the window between an early mutation
// and the initial load finishing.
type slowStore struct {
	*kv.Memory
	loadDelay time.Duration
}

func (s *slowStore) Load(ctx context.Context, key string) (string, bool, error) {
	time.Sleep(s.loadDelay)
	return s.Memory.Load(ctx, key)
}

func TestMutationBeforeLoadLandsOnBaseline(t *testing.T) {
	ctx := context.Background()

	memory := kv.NewMemory()
	baseline := []Line{{ProductID: 7, Name: "Clutch Plate", UnitPrice: price("150.00"), Quantity: 3}}
	baselineJSON, err := json.Marshal(baseline)
	require.NoError(t, err)
	require.NoError(t, memory.Save(ctx, testKey, string(baselineJSON)))

	storage := &slowStore{Memory: memory, loadDelay: 50 * time.Millisecond}
	store := NewStore(storage, testKey, nil)

	// Mutate immediately, before any explicit load has run. The store
	// must complete the slow load first and apply the mutation on top
	// of the saved baseline, not flush the mutation alone.
	store.Remove(ctx, 999)
	store.Add(ctx, Candidate{ProductID: 5, Name: "Mirror", UnitPrice: price("260"), Quantity: 1}, AddOptions{})

	data, found, err := memory.Load(ctx, testKey)
	require.NoError(t, err)
	require.True(t, found)

	var persisted []Line
	require.NoError(t, json.Unmarshal([]byte(data), &persisted))
	require.Len(t, persisted, 2)
	assert.Equal(t, uint(7), persisted[0].ProductID)
	assert.Equal(t, 3, persisted[0].Quantity)
	assert.Equal(t, uint(5), persisted[1].ProductID)
}

func TestTotals(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	store.Add(ctx, Candidate{ProductID: 1, Name: "Brake Shoe", UnitPrice: price("420.50"), Quantity: 2}, AddOptions{})
	store.Add(ctx, Candidate{ProductID: 5, Name: "Mirror", UnitPrice: price("260"), Quantity: 1}, AddOptions{})

	totals := store.Totals(ctx)
	assert.Equal(t, 2, totals.ItemCount)
	assert.Equal(t, 3, totals.TotalQuantity)
	assert.True(t, totals.TotalAmount.Equal(price("1101.00")))
}

func TestTotalsSkipBadPrice(t *testing.T) {
	lines := []Line{
		{ProductID: 1, UnitPrice: price("100"), Quantity: 2},
		{ProductID: 2, UnitPrice: price("-50"), Quantity: 4},
	}

	totals := CalculateTotals(lines)
	assert.Equal(t, 2, totals.ItemCount)
	assert.Equal(t, 6, totals.TotalQuantity)
	assert.True(t, totals.TotalAmount.Equal(price("200")))
}

func TestManagerReturnsSameStorePerSession(t *testing.T) {
	manager := NewManager(kv.NewMemory(), "cart:session:", nil)

	a := manager.Session("abc")
	b := manager.Session("abc")
	c := manager.Session("def")

	assert.Same(t, a, b)
	assert.NotSame(t, a, c)
}

func TestManagerSessionsAreIsolated(t *testing.T) {
	manager := NewManager(kv.NewMemory(), "cart:session:", nil)
	ctx := context.Background()

	manager.Session("abc").Add(ctx, Candidate{ProductID: 1, Name: "Brake Shoe", UnitPrice: price("420"), Quantity: 1}, AddOptions{})

	assert.Len(t, manager.Session("abc").Lines(ctx), 1)
	assert.Empty(t, manager.Session("def").Lines(ctx))
}
