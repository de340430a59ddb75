package domain

import (
	"fmt"
	"math"
)

// maxDollars bounds amounts entering the ledger. Above 2^53 a float64
// can no longer represent whole dollars exactly, so the decimal-place
// check below is meaningless and the cent conversion would eventually
// wrap int64.
const maxDollars = float64(1 << 53)

// DollarsToCents converts a float64 dollar amount to int64 cents.
// It rejects negative amounts, amounts too large to convert safely,
// and inputs with more than 2 decimal places, so that no amount
// entering the ledger carries sub-cent precision or overflows its
// cent representation. Uses math.Round after scaling to absorb
// floating-point representation noise.
func DollarsToCents(f float64) (int64, error) {
	if f < 0 {
		return 0, fmt.Errorf("monetary values must not be negative")
	}
	if f > maxDollars {
		return 0, fmt.Errorf("monetary values must not exceed %.0f", maxDollars)
	}

	// Scale by 1000 to expose a third decimal place, rounding first to
	// avoid artifacts like 1.10 * 1000 = 1099.9999....
	scaled := math.Round(f * 1000)
	if math.Mod(scaled, 10) != 0 {
		return 0, fmt.Errorf("monetary values must have at most 2 decimal places")
	}

	return int64(math.Round(f * 100)), nil
}

// CentsToDollars converts an int64 cents value to a float64 dollar amount.
func CentsToDollars(c int64) float64 {
	return float64(c) / 100.0
}
