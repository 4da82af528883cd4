// Package money implements the token identity and amount model: token
// metadata lookup per network, and total ui<->raw unit conversion.
package money

import (
	"fmt"
	"math"
	"math/big"
	"strings"
)

// TokenInfo identifies a token by mint address. Identity is the mint;
// symbol/name/decimals/logo are descriptive metadata that may come
// from a static registry, a remote fetch, or a caller override.
type TokenInfo struct {
	Mint     string
	Symbol   string
	Name     string
	Decimals uint8
	LogoUri  string
}

// MoneyAmount pairs a token with an amount expressed two ways.
// RawUnits is authoritative (an integer in the token's smallest unit,
// stored as a decimal string to avoid precision loss for large
// supplies); UiUnits is the human-scale float derived from it.
type MoneyAmount struct {
	Token    TokenInfo
	RawUnits string
	UiUnits  float64
}

// NewMoneyAmount builds a MoneyAmount from raw units, deriving UiUnits.
func NewMoneyAmount(token TokenInfo, rawUnits string) MoneyAmount {
	return MoneyAmount{
		Token:    token,
		RawUnits: rawUnits,
		UiUnits:  ToUi(rawUnits, token.Decimals),
	}
}

// NewMoneyAmountFromUi builds a MoneyAmount from a ui-scale amount,
// deriving RawUnits via round-half-even.
func NewMoneyAmountFromUi(token TokenInfo, uiUnits float64) MoneyAmount {
	return MoneyAmount{
		Token:    token,
		RawUnits: ToRaw(uiUnits, token.Decimals),
		UiUnits:  uiUnits,
	}
}

// ToUi converts a raw integer amount (as a decimal string) to its
// ui-scale value: raw / 10^decimals. A malformed rawUnits string
// yields 0 rather than panicking; callers that need validation should
// check the string themselves before calling.
func ToUi(rawUnits string, decimals uint8) float64 {
	r, ok := new(big.Float).SetString(rawUnits)
	if !ok {
		return 0
	}
	divisor := new(big.Float).SetFloat64(math.Pow10(int(decimals)))
	result, _ := new(big.Float).Quo(r, divisor).Float64()
	return result
}

// ToRaw converts a ui-scale amount to a raw integer amount (as a
// decimal string), rounding half-to-even at the decimals boundary.
func ToRaw(uiUnits float64, decimals uint8) string {
	scaled := uiUnits * math.Pow10(int(decimals))
	return roundHalfEven(scaled)
}

// roundHalfEven implements banker's rounding for a float already
// scaled to integer magnitude, returned as a decimal string.
func roundHalfEven(v float64) string {
	floor := math.Floor(v)
	diff := v - floor
	const epsilon = 1e-9
	var rounded float64
	switch {
	case diff < 0.5-epsilon:
		rounded = floor
	case diff > 0.5+epsilon:
		rounded = floor + 1
	default:
		// Exactly (within float tolerance) half: round to even.
		if math.Mod(floor, 2) == 0 {
			rounded = floor
		} else {
			rounded = floor + 1
		}
	}
	return strings.TrimSuffix(fmt.Sprintf("%.0f", rounded), ".")
}

// Placeholder builds a deterministic unknown-token TokenInfo: symbol
// is the first 8 characters of the mint (or the whole mint if
// shorter), decimals defaults to 9 (native Solana scale) since the
// real value is unknown.
func Placeholder(mint string) TokenInfo {
	symbol := mint
	if len(symbol) > 8 {
		symbol = symbol[:8]
	}
	return TokenInfo{
		Mint:     mint,
		Symbol:   symbol,
		Name:     "Unknown Token",
		Decimals: 9,
	}
}
