// Package mathutil provides rounding and comparison helpers for display values.
package mathutil

import (
	"math"

	"github.com/timepricetag/time-price-tag/pkg/constants"
)

// RoundRate rounds an hourly rate to two decimals, i.e. to represent real
// currency.
func RoundRate(val float64) float64 {
	return math.Round(val*constants.RatePrecision) / constants.RatePrecision
}

// RoundHours rounds an hour or day count to one decimal for display.
func RoundHours(val float64) float64 {
	return math.Round(val*constants.HoursPrecision) / constants.HoursPrecision
}

// IsPositive checks if a value is positive (greater than tolerance)
func IsPositive(val float64) bool {
	return val > constants.CurrencyTolerance
}

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}
