package calc

import (
	"math"
	"testing"

	"github.com/timepricetag/time-price-tag/pkg/constants"
	"github.com/timepricetag/time-price-tag/pkg/mathutil"
)

func TestComputeOneTimeScenario(t *testing.T) {
	// income=50000, hours=8, price=100 -> 2080 working hours, $24.04/hour
	values := Values{YearlyIncome: 50000, DailyHours: 8, ItemPrice: 100}
	result := Compute(values, false)

	if result.Kind != KindOneTime {
		t.Fatalf("Kind = %v, want KindOneTime", result.Kind)
	}
	if result.OneTime == nil {
		t.Fatal("expected OneTime cost to be set")
	}
	if result.Recurring != nil {
		t.Fatal("expected Recurring cost to be nil for one-time result")
	}

	if got := mathutil.RoundRate(result.HourlyRate); got != 24.04 {
		t.Errorf("rounded hourly rate = %v, want 24.04", got)
	}
	if got := mathutil.RoundHours(result.OneTime.Hours); got != 4.2 {
		t.Errorf("rounded hours = %v, want 4.2", got)
	}
	if got := mathutil.RoundHours(result.OneTime.Days); got != 0.5 {
		t.Errorf("rounded days = %v, want 0.5", got)
	}
}

func TestComputeRecurringScenario(t *testing.T) {
	values := Values{YearlyIncome: 50000, DailyHours: 8, ItemPrice: 100}
	result := Compute(values, true)

	if result.Kind != KindRecurring {
		t.Fatalf("Kind = %v, want KindRecurring", result.Kind)
	}
	if result.Recurring == nil {
		t.Fatal("expected Recurring cost to be set")
	}
	if result.OneTime != nil {
		t.Fatal("expected OneTime cost to be nil for recurring result")
	}

	if got := mathutil.RoundHours(result.Recurring.MonthlyHours); got != 4.2 {
		t.Errorf("rounded monthly hours = %v, want 4.2", got)
	}
	if got := mathutil.RoundHours(result.Recurring.MonthlyDays); got != 0.5 {
		t.Errorf("rounded monthly days = %v, want 0.5", got)
	}
	if got := mathutil.RoundHours(result.Recurring.YearlyHours); got != 49.9 {
		t.Errorf("rounded yearly hours = %v, want 49.9", got)
	}
	if got := mathutil.RoundHours(result.Recurring.YearlyDays); got != 6.2 {
		t.Errorf("rounded yearly days = %v, want 6.2", got)
	}
}

func TestComputeHourlyEarningsFormula(t *testing.T) {
	// hourlyEarnings must equal yearlyIncome / (dailyHours * 260) for any
	// valid combination of inputs.
	incomes := []float64{1, 30000, 50000, 123456.78, 1e9}
	hourValues := []float64{0.5, 1, 7.5, 8, 12, 24}

	for _, income := range incomes {
		for _, hours := range hourValues {
			values := Values{YearlyIncome: income, DailyHours: hours, ItemPrice: 100}
			result := Compute(values, false)

			want := income / (hours * constants.WorkdaysPerYear)
			if result.HourlyRate != want {
				t.Errorf("HourlyRate(income=%v, hours=%v) = %v, want %v",
					income, hours, result.HourlyRate, want)
			}
		}
	}
}

func TestComputeHoursTimesRateRecoversPrice(t *testing.T) {
	prices := []float64{0.01, 1, 99.99, 100, 2500, 1e6}
	for _, price := range prices {
		values := Values{YearlyIncome: 50000, DailyHours: 8, ItemPrice: price}
		result := Compute(values, false)

		recovered := result.OneTime.Hours * result.HourlyRate
		if !mathutil.WithinTolerance(recovered, price, price*1e-12+1e-12) {
			t.Errorf("hours*rate = %v, want %v", recovered, price)
		}
	}
}

func TestComputeYearlyIsTwelveTimesMonthly(t *testing.T) {
	// The annualized hours must be exactly 12x the monthly hours before any
	// display rounding.
	cases := []Values{
		{YearlyIncome: 50000, DailyHours: 8, ItemPrice: 100},
		{YearlyIncome: 72000, DailyHours: 7.5, ItemPrice: 15.99},
		{YearlyIncome: 1234.56, DailyHours: 24, ItemPrice: 0.01},
	}

	for _, values := range cases {
		result := Compute(values, true)

		if result.Recurring.YearlyHours != result.Recurring.MonthlyHours*constants.MonthsPerYear {
			t.Errorf("YearlyHours = %v, want exactly 12 * %v",
				result.Recurring.YearlyHours, result.Recurring.MonthlyHours)
		}
		if result.Recurring.MonthlyDays != result.Recurring.MonthlyHours/values.DailyHours {
			t.Errorf("MonthlyDays = %v, want MonthlyHours/dailyHours", result.Recurring.MonthlyDays)
		}
		if result.Recurring.YearlyDays != result.Recurring.YearlyHours/values.DailyHours {
			t.Errorf("YearlyDays = %v, want YearlyHours/dailyHours", result.Recurring.YearlyDays)
		}
	}
}

func TestComputeDaysDivideHoursByDailyHours(t *testing.T) {
	values := Values{YearlyIncome: 60000, DailyHours: 6, ItemPrice: 300}
	result := Compute(values, false)

	want := result.OneTime.Hours / 6
	if result.OneTime.Days != want {
		t.Errorf("Days = %v, want %v", result.OneTime.Days, want)
	}
}

func TestComputeNeverProducesNonFiniteValues(t *testing.T) {
	// The (0, 24] bound enforced by Validate keeps every divisor strictly
	// positive; extreme but valid values must stay finite.
	cases := []Values{
		{YearlyIncome: 1e-300, DailyHours: 24, ItemPrice: 1e300},
		{YearlyIncome: 1e300, DailyHours: 0.0001, ItemPrice: 1e-300},
	}

	for _, values := range cases {
		result := Compute(values, true)
		for _, val := range []float64{
			result.HourlyRate,
			result.Recurring.MonthlyHours,
			result.Recurring.MonthlyDays,
			result.Recurring.YearlyDays,
		} {
			if math.IsNaN(val) {
				t.Errorf("Compute(%+v) produced NaN", values)
			}
		}
	}
}

func TestEvaluateValid(t *testing.T) {
	result, msg := Evaluate(Input{
		YearlyIncome: "50000",
		DailyHours:   "8",
		ItemPrice:    "100",
		Recurring:    false,
	})
	if msg != "" {
		t.Fatalf("expected valid evaluation, got message %q", msg)
	}
	if result.Kind != KindOneTime {
		t.Errorf("Kind = %v, want KindOneTime", result.Kind)
	}
	if got := mathutil.RoundHours(result.OneTime.Hours); got != 4.2 {
		t.Errorf("rounded hours = %v, want 4.2", got)
	}
}

func TestEvaluateRecurringFlagSelectsVariant(t *testing.T) {
	result, msg := Evaluate(Input{
		YearlyIncome: "50000",
		DailyHours:   "8",
		ItemPrice:    "100",
		Recurring:    true,
	})
	if msg != "" {
		t.Fatalf("expected valid evaluation, got message %q", msg)
	}
	if result.Kind != KindRecurring {
		t.Errorf("Kind = %v, want KindRecurring", result.Kind)
	}
}

func TestEvaluateInvalidProducesNoResult(t *testing.T) {
	result, msg := Evaluate(Input{
		YearlyIncome: "50000",
		DailyHours:   "25",
		ItemPrice:    "100",
	})
	if msg != MsgHoursInvalid {
		t.Fatalf("expected hours range message, got %q", msg)
	}
	if result.OneTime != nil || result.Recurring != nil {
		t.Error("expected empty result on validation failure")
	}
	if result.HourlyRate != 0 {
		t.Errorf("expected zero hourly rate on validation failure, got %v", result.HourlyRate)
	}
}

func TestKindString(t *testing.T) {
	if KindOneTime.String() != "oneTime" {
		t.Errorf("KindOneTime.String() = %q, want %q", KindOneTime.String(), "oneTime")
	}
	if KindRecurring.String() != "recurring" {
		t.Errorf("KindRecurring.String() = %q, want %q", KindRecurring.String(), "recurring")
	}
}
