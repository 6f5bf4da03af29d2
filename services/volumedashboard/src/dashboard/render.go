package dashboard

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/alexkalak/go_swap_analyze/common/core/amountformat"
	"github.com/alexkalak/go_swap_analyze/common/core/swapvolume"
	"github.com/alexkalak/go_swap_analyze/common/core/tokenregistry"
	"github.com/alexkalak/go_swap_analyze/common/models"
)

const invalidAmountCell = "?"

func RenderSwapsTable(swaps []models.Swap, registry *tokenregistry.Registry, aggregate swapvolume.AggregateResult) string {
	rows := make([][]string, 0, len(swaps))
	for _, swap := range swaps {
		rows = append(rows, buildRow(swap, registry))
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("BLOCK", "ACCOUNT", "SOLD", "BOUGHT", "VOLUME (USD)").
		Rows(rows...)

	footer := fmt.Sprintf("Total volume: %s USD", swapvolume.FormatVolume(aggregate.Total))
	if len(aggregate.Skipped) > 0 {
		footer += fmt.Sprintf(" (%d swaps skipped, corrupt amounts)", len(aggregate.Skipped))
	}

	return t.Render() + "\n" + footer
}

func buildRow(swap models.Swap, registry *tokenregistry.Registry) []string {
	tokenIn, ok := registry.Lookup(swap.TokenIn)
	if !ok {
		tokenIn = tokenregistry.Fallback(swap.TokenIn)
	}
	tokenOut, ok := registry.Lookup(swap.TokenOut)
	if !ok {
		tokenOut = tokenregistry.Fallback(swap.TokenOut)
	}

	volumeCell := invalidAmountCell
	volume, err := swapvolume.VolumeUSD(swap, registry)
	if err == nil {
		volumeCell = swapvolume.FormatVolume(volume)
	}

	return []string{
		fmt.Sprintf("%d", swap.BlockNumber),
		swap.Origin,
		buildLegCell(swap.AmountIn, tokenIn),
		buildLegCell(swap.AmountOut, tokenOut),
		volumeCell,
	}
}

func buildLegCell(rawAmount string, token models.Token) string {
	formatted, err := amountformat.Format(rawAmount, token.Decimals)
	if err != nil {
		return invalidAmountCell
	}

	return formatted + " " + token.Symbol
}
