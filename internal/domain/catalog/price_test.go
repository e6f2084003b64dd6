package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestParsePriceAbsent(t *testing.T) {
	value, err := parsePrice(nil)
	require.NoError(t, err)
	assert.Nil(t, value)

	value, err = parsePrice(strPtr(""))
	require.NoError(t, err)
	assert.Nil(t, value)

	value, err = parsePrice(strPtr("   "))
	require.NoError(t, err)
	assert.Nil(t, value)
}

func TestParsePriceValid(t *testing.T) {
	value, err := parsePrice(strPtr("350.00"))
	require.NoError(t, err)
	require.NotNil(t, value)
	assert.Equal(t, "350", value.String())

	// Surrounding whitespace is tolerated
	value, err = parsePrice(strPtr(" 99.99 "))
	require.NoError(t, err)
	require.NotNil(t, value)
	assert.Equal(t, "99.99", value.String())
}

func TestParsePriceInvalid(t *testing.T) {
	_, err := parsePrice(strPtr("free"))
	assert.Error(t, err)

	_, err = parsePrice(strPtr("-10"))
	assert.Error(t, err)
}
