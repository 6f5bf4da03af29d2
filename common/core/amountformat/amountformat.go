package amountformat

import (
	"errors"
	"math/big"
	"strings"

	"github.com/ALTree/bigfloat"
	"github.com/ethereum/go-ethereum/common/math"
)

var ErrInvalidRawAmount = errors.New("raw amount is not a non-negative base-10 integer")

// Displayed fraction digits, dropped digits are truncated and never rounded
const FractionDigits = 3

const realAmountPrec = 256

func ParseRawAmount(raw string) (*big.Int, error) {
	if raw == "" {
		return nil, ErrInvalidRawAmount
	}
	for _, c := range raw {
		if c < '0' || c > '9' {
			return nil, ErrInvalidRawAmount
		}
	}

	amount, ok := new(big.Int).SetString(raw, 10)
	if !ok {
		return nil, ErrInvalidRawAmount
	}

	return amount, nil
}

func Format(raw string, decimals int) (string, error) {
	amount, err := ParseRawAmount(raw)
	if err != nil {
		return "", err
	}

	return FormatAmount(amount, decimals), nil
}

// FormatAmount renders a smallest-unit amount as a human-readable decimal
// string. The integer part is exact for any magnitude.
func FormatAmount(amount *big.Int, decimals int) string {
	if decimals == 0 {
		return amount.String()
	}

	divisor := math.BigPow(10, int64(decimals))
	integerPart, remainder := new(big.Int).QuoRem(amount, divisor, new(big.Int))

	fraction := remainder.String()
	if len(fraction) < decimals {
		fraction = strings.Repeat("0", decimals-len(fraction)) + fraction
	}
	if len(fraction) > FractionDigits {
		fraction = fraction[:FractionDigits]
	}

	return integerPart.String() + "." + fraction
}

// RealAmount widens a smallest-unit amount to a big.Float divided by
// 10^decimals. Unlike FormatAmount this is not exact at large magnitudes.
func RealAmount(amount *big.Int, decimals int) *big.Float {
	value := new(big.Float).SetPrec(realAmountPrec).SetInt(amount)
	if decimals == 0 {
		return value
	}

	ten := new(big.Float).SetPrec(realAmountPrec).SetInt64(10)
	divisor := bigfloat.Pow(ten, new(big.Float).SetInt64(int64(decimals)))

	return value.Quo(value, divisor)
}
