package calc

import (
	"math"
	"strconv"
	"strings"

	"github.com/timepricetag/time-price-tag/pkg/constants"
)

// Input holds the raw form input: three numeric strings and the recurring
// toggle, exactly as the presentation layer collects them.
type Input struct {
	YearlyIncome string
	DailyHours   string
	ItemPrice    string
	Recurring    bool
}

// Values holds the parsed numeric inputs after successful validation.
type Values struct {
	YearlyIncome float64
	DailyHours   float64
	ItemPrice    float64
}

// Validation messages surfaced to the user. The first failing rule wins.
const (
	MsgIncomeRequired = "Please enter your yearly income."
	MsgHoursRequired  = "Please enter your daily working hours."
	MsgPriceRequired  = "Please enter the item price."
	MsgIncomeInvalid  = "Yearly income must be a positive number."
	MsgHoursInvalid   = "Daily working hours must be greater than 0 and at most 24."
	MsgPriceInvalid   = "Item price must be a positive number."
)

// Validate checks the raw input against the validation rules in order:
// required-field checks for each of the three fields, then numeric parse and
// domain checks. It returns the parsed values and an empty message when the
// input is valid, otherwise the first failure message and zero values.
func Validate(in Input) (Values, string) {
	income := strings.TrimSpace(in.YearlyIncome)
	hours := strings.TrimSpace(in.DailyHours)
	price := strings.TrimSpace(in.ItemPrice)

	if income == "" {
		return Values{}, MsgIncomeRequired
	}
	if hours == "" {
		return Values{}, MsgHoursRequired
	}
	if price == "" {
		return Values{}, MsgPriceRequired
	}

	incomeVal, ok := parseNumber(income)
	if !ok || incomeVal <= 0 {
		return Values{}, MsgIncomeInvalid
	}

	hoursVal, ok := parseNumber(hours)
	if !ok || hoursVal <= 0 || hoursVal > constants.MaxDailyHours {
		return Values{}, MsgHoursInvalid
	}

	priceVal, ok := parseNumber(price)
	if !ok || priceVal <= 0 {
		return Values{}, MsgPriceInvalid
	}

	return Values{
		YearlyIncome: incomeVal,
		DailyHours:   hoursVal,
		ItemPrice:    priceVal,
	}, ""
}

// parseNumber parses a decimal string, rejecting NaN and infinities which
// strconv.ParseFloat otherwise accepts.
func parseNumber(s string) (float64, bool) {
	val, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(val) || math.IsInf(val, 0) {
		return 0, false
	}
	return val, true
}
