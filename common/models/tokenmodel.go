package models

import "math/big"

type Token struct {
	Symbol   string
	Address  string
	Decimals int

	//nil when the indexer knows no reference price for the token
	USDPrice *big.Float
}
