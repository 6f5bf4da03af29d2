package models

import "fmt"

type Swap struct {
	Origin   string
	TokenIn  string
	TokenOut string

	//Hop route, first/last hop practically equal TokenIn/TokenOut
	Path []string

	//Raw smallest-unit amounts as base-10 strings, up to 256-bit magnitude
	AmountIn  string
	AmountOut string

	BlockNumber    uint64
	ExtrinsicIndex uint
}

type SwapIdentificator struct {
	BlockNumber    uint64
	ExtrinsicIndex uint
}

func (s *Swap) GetIdentificator() SwapIdentificator {
	return SwapIdentificator{
		BlockNumber:    s.BlockNumber,
		ExtrinsicIndex: s.ExtrinsicIndex,
	}
}

func (s SwapIdentificator) String() string {
	return fmt.Sprintf("%d-%d", s.BlockNumber, s.ExtrinsicIndex)
}
