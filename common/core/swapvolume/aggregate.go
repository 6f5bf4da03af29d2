package swapvolume

import (
	"github.com/shopspring/decimal"

	"github.com/alexkalak/go_swap_analyze/common/core/tokenregistry"
	"github.com/alexkalak/go_swap_analyze/common/models"
)

type SkippedSwap struct {
	Swap models.SwapIdentificator
	Err  error
}

type AggregateResult struct {
	Total   decimal.Decimal
	Skipped []SkippedSwap
}

// TotalVolume folds per-swap volumes into one total. Each term is the
// already-rounded 3-digit volume, the same value the per-swap column
// displays, so the total always matches what is on screen. Swaps with
// corrupt amounts are skipped and reported, never counted as 0.
func TotalVolume(swaps []models.Swap, registry *tokenregistry.Registry) AggregateResult {
	result := AggregateResult{
		Total: decimal.Zero,
	}

	for _, swap := range swaps {
		volume, err := VolumeUSD(swap, registry)
		if err != nil {
			result.Skipped = append(result.Skipped, SkippedSwap{
				Swap: swap.GetIdentificator(),
				Err:  err,
			})
			continue
		}
		result.Total = result.Total.Add(volume)
	}

	result.Total = result.Total.Round(volumeFractionDigits)
	return result
}
