package indexer

type TokenResponse struct {
	Address  string   `json:"address"`
	Symbol   string   `json:"symbol"`
	Decimals int      `json:"decimals"`
	Price    *float64 `json:"price"`
}

type SwapResponse struct {
	Origin         string   `json:"origin"`
	TokenIn        string   `json:"token_in"`
	TokenOut       string   `json:"token_out"`
	Path           []string `json:"path"`
	AmountIn       string   `json:"amount_in"`
	AmountOut      string   `json:"amount_out"`
	BlockNum       uint64   `json:"block_num"`
	ExtrinsicIndex uint     `json:"extrinsic_index"`
}
