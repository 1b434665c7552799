// Package validation provides validation utilities for CLI options.
package validation

import (
	"fmt"

	"github.com/timepricetag/time-price-tag/pkg/constants"
)

// ValidateOutputFormat checks that the requested output format is supported.
func ValidateOutputFormat(format string) error {
	switch format {
	case constants.OutputFormatPretty, constants.OutputFormatCSV:
		return nil
	default:
		return fmt.Errorf("invalid output format: %s (valid formats: %s, %s)",
			format, constants.OutputFormatPretty, constants.OutputFormatCSV)
	}
}
