// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"
	"io"

	"github.com/spf13/viper"
	"github.com/timepricetag/time-price-tag/pkg/constants"
)

// Configuration holds all configuration for time-price-tag.
type Configuration struct {
	Profile Profile       `yaml:"profile,omitempty"`
	Logging LoggingConfig `yaml:"logging,omitempty"`
	Output  OutputConfig  `yaml:"output,omitempty"`
}

// Profile holds default earnings inputs so the calculator can be invoked with
// only a price.
type Profile struct {
	YearlyIncome float64 `yaml:"yearlyIncome,omitempty"`
	DailyHours   float64 `yaml:"dailyHours,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// LoadConfigurationFromReader loads YAML-formatted configuration from the
// given reader using an isolated viper instance.
func LoadConfigurationFromReader(reader io.Reader) (*Configuration, error) {
	v := viper.New()
	v.SetConfigType("yml")

	if err := v.ReadConfig(reader); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}

	var configuration Configuration
	err := v.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// ValidateConfiguration performs general validation of the configuration and
// returns warnings. A zero profile value means "not set" and is not flagged;
// the calculator's input validator remains the authority at compute time.
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if c.Profile.YearlyIncome < 0 {
		warnings = append(warnings,
			fmt.Sprintf("Profile yearly income %.2f is negative and will be rejected at compute time", c.Profile.YearlyIncome))
	}

	if c.Profile.DailyHours < 0 || c.Profile.DailyHours > constants.MaxDailyHours {
		warnings = append(warnings,
			fmt.Sprintf("Profile daily hours %.1f is outside (0, %d] and will be rejected at compute time", c.Profile.DailyHours, int(constants.MaxDailyHours)))
	}

	return warnings
}
