// Package output provides utilities for formatting and displaying calculation
// results.
package output

import (
	"fmt"

	"github.com/timepricetag/time-price-tag/internal/calc"
	"github.com/timepricetag/time-price-tag/pkg/format"
	"github.com/timepricetag/time-price-tag/pkg/mathutil"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(result calc.Result) {
	p := message.NewPrinter(language.English)
	fmt.Printf("--- Time price tag ---\n")
	fmt.Printf("Hourly earnings: %s\n", format.Currency(mathutil.RoundRate(result.HourlyRate)))
	fmt.Printf("Period  | Hours   | Work days\n")
	fmt.Printf("______  | _____   | _________\n")
	switch result.Kind {
	case calc.KindRecurring:
		_, _ = p.Printf("monthly | %.1f | %.1f\n",
			mathutil.RoundHours(result.Recurring.MonthlyHours),
			mathutil.RoundHours(result.Recurring.MonthlyDays))
		_, _ = p.Printf("yearly  | %.1f | %.1f\n",
			mathutil.RoundHours(result.Recurring.YearlyHours),
			mathutil.RoundHours(result.Recurring.YearlyDays))
	default:
		_, _ = p.Printf("once    | %.1f | %.1f\n",
			mathutil.RoundHours(result.OneTime.Hours),
			mathutil.RoundHours(result.OneTime.Days))
	}
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(result calc.Result) {
	fmt.Printf("\"period\",\"hours\",\"work days\",\"hourly rate\"\n")
	rate := mathutil.RoundRate(result.HourlyRate)
	switch result.Kind {
	case calc.KindRecurring:
		fmt.Printf("\"monthly\",\"%.1f\",\"%.1f\",\"%.2f\"\n",
			mathutil.RoundHours(result.Recurring.MonthlyHours),
			mathutil.RoundHours(result.Recurring.MonthlyDays),
			rate)
		fmt.Printf("\"yearly\",\"%.1f\",\"%.1f\",\"%.2f\"\n",
			mathutil.RoundHours(result.Recurring.YearlyHours),
			mathutil.RoundHours(result.Recurring.YearlyDays),
			rate)
	default:
		fmt.Printf("\"once\",\"%.1f\",\"%.1f\",\"%.2f\"\n",
			mathutil.RoundHours(result.OneTime.Hours),
			mathutil.RoundHours(result.OneTime.Days),
			rate)
	}
}
