// Package constants provides shared constants for the time-price-tag application.
package constants

// Workweek assumption used when projecting annual income onto working hours.
// The calculator always assumes a 5-day workweek over a 52-week year.
const (
	// WorkdaysPerWeek is the number of working days in a week
	WorkdaysPerWeek = 5

	// WeeksPerYear is the number of working weeks in a year
	WeeksPerYear = 52

	// WorkdaysPerYear is the number of working days in a year (260)
	WorkdaysPerYear = WorkdaysPerWeek * WeeksPerYear

	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// MaxDailyHours is the upper bound for daily working hours
	MaxDailyHours = 24.0
)

// Display precision constants
const (
	// RatePrecision is the precision for hourly rate rounding (2 decimal places)
	RatePrecision = 100

	// HoursPrecision is the precision for hour and day rounding (1 decimal place)
	HoursPrecision = 10
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the web UI
	DefaultServerAddress = ":8080"

	// DefaultMaxRequestSizeBytes is the default maximum request body size for
	// the calculation API (64 KB)
	DefaultMaxRequestSizeBytes int64 = 64 * 1024
)

// Validation constants
const (
	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// HoursTolerance is the tolerance for hour and day comparisons at display
	// precision (half of one tenth)
	HoursTolerance = 0.05
)
