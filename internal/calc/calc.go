// Package calc implements the time cost calculation: converting a price into
// the working time required to earn it, based on yearly income and daily
// working hours.
package calc

import (
	"github.com/timepricetag/time-price-tag/pkg/constants"
)

// Kind tags the two result variants.
type Kind int

const (
	// KindOneTime is the time cost of a single purchase.
	KindOneTime Kind = iota

	// KindRecurring is the monthly and annualized time cost of a recurring
	// monthly charge.
	KindRecurring
)

// String returns the wire name of the result kind.
func (k Kind) String() string {
	if k == KindRecurring {
		return "recurring"
	}
	return "oneTime"
}

// OneTimeCost is the time cost of a single purchase.
type OneTimeCost struct {
	Hours float64
	Days  float64
}

// RecurringCost is the time cost of a monthly recurring charge, reported both
// per month and annualized.
type RecurringCost struct {
	MonthlyHours float64
	MonthlyDays  float64
	YearlyHours  float64
	YearlyDays   float64
}

// Result carries one computed time cost. Exactly one of OneTime or Recurring
// is set, selected by Kind. Values are unrounded; display layers apply the
// mathutil rounding (rate to 2 decimals, hours and days to 1).
type Result struct {
	Kind       Kind
	HourlyRate float64
	OneTime    *OneTimeCost
	Recurring  *RecurringCost
}

// Compute projects a price against the hourly earnings derived from the given
// income and daily hours. Inputs must already have passed Validate; the
// (0, 24] bound on daily hours guarantees the annual working hours divisor is
// strictly positive.
func Compute(v Values, recurring bool) Result {
	annualWorkingHours := v.DailyHours * constants.WorkdaysPerYear
	hourlyEarnings := v.YearlyIncome / annualWorkingHours

	hours := v.ItemPrice / hourlyEarnings

	result := Result{HourlyRate: hourlyEarnings}
	if recurring {
		yearlyHours := hours * constants.MonthsPerYear
		result.Kind = KindRecurring
		result.Recurring = &RecurringCost{
			MonthlyHours: hours,
			MonthlyDays:  hours / v.DailyHours,
			YearlyHours:  yearlyHours,
			YearlyDays:   yearlyHours / v.DailyHours,
		}
	} else {
		result.Kind = KindOneTime
		result.OneTime = &OneTimeCost{
			Hours: hours,
			Days:  hours / v.DailyHours,
		}
	}

	return result
}

// Evaluate validates raw form input and computes the time cost. The second
// return value is the validation message; when it is non-empty no result is
// produced and the caller surfaces the message instead.
func Evaluate(in Input) (Result, string) {
	values, msg := Validate(in)
	if msg != "" {
		return Result{}, msg
	}
	return Compute(values, in.Recurring), ""
}
