package swapvolume

import (
	"errors"
	"fmt"
	"math"
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/alexkalak/go_swap_analyze/common/core/amountformat"
	"github.com/alexkalak/go_swap_analyze/common/core/tokenregistry"
	"github.com/alexkalak/go_swap_analyze/common/models"
)

const volumeFractionDigits = 3

var ErrVolumeOverflow = errors.New("swap leg value exceeds float64 range")

// VolumeUSD derives the monetary value of one swap: the higher of the two
// legs' USD values, rounded to 3 fraction digits. A leg with no known price
// contributes 0, so the priced leg dominates. The only error condition is a
// corrupt raw amount string.
func VolumeUSD(swap models.Swap, registry *tokenregistry.Registry) (decimal.Decimal, error) {
	tokenIn, ok := registry.Lookup(swap.TokenIn)
	if !ok {
		tokenIn = tokenregistry.Fallback(swap.TokenIn)
	}
	tokenOut, ok := registry.Lookup(swap.TokenOut)
	if !ok {
		tokenOut = tokenregistry.Fallback(swap.TokenOut)
	}

	valueIn, err := legValueUSD(swap.AmountIn, tokenIn)
	if err != nil {
		return decimal.Zero, fmt.Errorf("amount in: %w", err)
	}
	valueOut, err := legValueUSD(swap.AmountOut, tokenOut)
	if err != nil {
		return decimal.Zero, fmt.Errorf("amount out: %w", err)
	}

	volume := valueIn
	if valueOut.Cmp(valueIn) > 0 {
		volume = valueOut
	}

	//Amounts are unbounded, the widened value may not fit a float64.
	//decimal.NewFromFloat panics on infinities, so overflow has to be
	//reported as a skippable error instead.
	value, _ := volume.Float64()
	if math.IsInf(value, 0) {
		return decimal.Zero, ErrVolumeOverflow
	}

	return decimal.NewFromFloat(value).Round(volumeFractionDigits), nil
}

func FormatVolume(volume decimal.Decimal) string {
	return volume.StringFixed(volumeFractionDigits)
}

func legValueUSD(rawAmount string, token models.Token) (*big.Float, error) {
	amount, err := amountformat.ParseRawAmount(rawAmount)
	if err != nil {
		return nil, err
	}

	if token.USDPrice == nil {
		return big.NewFloat(0), nil
	}

	realAmount := amountformat.RealAmount(amount, token.Decimals)
	return realAmount.Mul(realAmount, token.USDPrice), nil
}
