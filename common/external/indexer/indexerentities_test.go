package indexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexkalak/go_swap_analyze/common/external/indexer/indexererrors"
)

func TestTokensToModels(t *testing.T) {
	price := 0.025
	responses := []TokenResponse{
		{Address: "0x01", Symbol: "HDX", Decimals: 12, Price: &price},
		{Address: "0x02", Symbol: "DAI", Decimals: 18},
		{Address: "", Symbol: "BAD", Decimals: 6},
		{Address: "0x03", Symbol: "NEG", Decimals: -1},
	}

	tokens := tokensToModels(responses)
	require.Len(t, tokens, 2)

	assert.Equal(t, "HDX", tokens[0].Symbol)
	assert.Equal(t, 12, tokens[0].Decimals)
	require.NotNil(t, tokens[0].USDPrice)
	priceValue, _ := tokens[0].USDPrice.Float64()
	assert.Equal(t, 0.025, priceValue)

	//Absent price stays nil, it is not zero
	assert.Equal(t, "DAI", tokens[1].Symbol)
	assert.Nil(t, tokens[1].USDPrice)
}

func TestSwapsToModels(t *testing.T) {
	responses := []SwapResponse{
		{
			Origin:         "7Lx...",
			TokenIn:        "0x01",
			TokenOut:       "0x02",
			Path:           []string{"0x01", "0x05", "0x02"},
			AmountIn:       "5000000000000",
			AmountOut:      "99000000000000000000",
			BlockNum:       123456,
			ExtrinsicIndex: 2,
		},
		{TokenIn: "", TokenOut: "0x02", AmountIn: "1", AmountOut: "1"},
	}

	swaps := swapsToModels(responses)
	require.Len(t, swaps, 1)

	swap := swaps[0]
	assert.Equal(t, "7Lx...", swap.Origin)
	assert.Equal(t, "0x01", swap.TokenIn)
	assert.Equal(t, "0x02", swap.TokenOut)
	assert.Equal(t, []string{"0x01", "0x05", "0x02"}, swap.Path)
	assert.Equal(t, "5000000000000", swap.AmountIn)
	assert.Equal(t, "99000000000000000000", swap.AmountOut)
	assert.Equal(t, uint64(123456), swap.BlockNumber)
	assert.Equal(t, uint(2), swap.ExtrinsicIndex)
	assert.Equal(t, "123456-2", swap.GetIdentificator().String())
}

func TestNewIndexerClientRequiresURL(t *testing.T) {
	_, err := NewIndexerClient(IndexerClientConfig{})
	assert.ErrorIs(t, err, indexererrors.ErrInvalidGraphQLURL)

	client, err := NewIndexerClient(IndexerClientConfig{GraphQLURL: "http://localhost:4350/graphql"})
	require.NoError(t, err)
	assert.NotNil(t, client)
}
