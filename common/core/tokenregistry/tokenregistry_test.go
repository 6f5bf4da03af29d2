package tokenregistry_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexkalak/go_swap_analyze/common/core/tokenregistry"
	"github.com/alexkalak/go_swap_analyze/common/models"
)

func TestLookup(t *testing.T) {
	registry := tokenregistry.New([]models.Token{
		{Symbol: "HDX", Address: "0x01", Decimals: 12, USDPrice: big.NewFloat(0.02)},
		{Symbol: "DAI", Address: "0x02", Decimals: 18, USDPrice: big.NewFloat(1)},
	})

	token, ok := registry.Lookup("0x01")
	require.True(t, ok)
	assert.Equal(t, "HDX", token.Symbol)
	assert.Equal(t, 12, token.Decimals)

	_, ok = registry.Lookup("0xdeadbeef")
	assert.False(t, ok)

	assert.Equal(t, 2, registry.Len())
}

func TestDuplicateAddressLastWriteWins(t *testing.T) {
	registry := tokenregistry.New([]models.Token{
		{Symbol: "OLD", Address: "0x01", Decimals: 6},
		{Symbol: "NEW", Address: "0x01", Decimals: 10},
	})

	token, ok := registry.Lookup("0x01")
	require.True(t, ok)
	assert.Equal(t, "NEW", token.Symbol)
	assert.Equal(t, 10, token.Decimals)
	assert.Equal(t, 1, registry.Len())
}

func TestFallback(t *testing.T) {
	token := tokenregistry.Fallback("0xunknown")

	assert.Equal(t, "0xunknown", token.Address)
	assert.Equal(t, "0xunknown", token.Symbol)
	assert.Equal(t, 0, token.Decimals)
	assert.Nil(t, token.USDPrice)
}
