package currency

import (
	"fmt"
	"math"
)

// StablecoinDecimals matches the 6-decimal tokens the vault accepts.
const StablecoinDecimals = 6

// ToBaseUnits converts a gateway-reported decimal amount to integer token base
// units using banker's rounding. All bucket arithmetic downstream is integer.
func ToBaseUnits(amount float64, decimals int) int64 {
	scaled := amount * math.Pow10(decimals)
	rounded := math.Round(scaled)
	if math.Abs(scaled-rounded) == 0.5 {
		if int64(rounded)%2 == 0 {
			return int64(rounded)
		}
		return int64(rounded) - 1
	}
	return int64(rounded)
}

// FromBaseUnits converts base units back to a decimal amount for display.
func FromBaseUnits(baseUnits int64, decimals int) float64 {
	return float64(baseUnits) / math.Pow10(decimals)
}

// Format renders base units as a fixed-point token string.
func Format(baseUnits int64, decimals int, symbol string) string {
	return fmt.Sprintf("%.*f %s", decimals, FromBaseUnits(baseUnits, decimals), symbol)
}
