// internal/pkg/kv/memory_test.go
package kv

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLoadAbsentKey(t *testing.T) {
	store := NewMemory()

	value, found, err := store.Load(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, value)
}

func TestMemorySaveLoadDelete(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "cart:session:abc", `[{"product_id":1}]`))

	value, found, err := store.Load(ctx, "cart:session:abc")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[{"product_id":1}]`, value)

	require.NoError(t, store.Delete(ctx, "cart:session:abc"))

	_, found, err = store.Load(ctx, "cart:session:abc")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryDeleteAbsentKey(t *testing.T) {
	store := NewMemory()
	assert.NoError(t, store.Delete(context.Background(), "missing"))
}
