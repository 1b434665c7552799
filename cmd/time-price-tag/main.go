package main

import (
	"flag"
	"fmt"
	"strconv"

	"github.com/timepricetag/time-price-tag/internal/calc"
	"github.com/timepricetag/time-price-tag/internal/config"
	"github.com/timepricetag/time-price-tag/pkg/constants"
	"github.com/timepricetag/time-price-tag/pkg/output"
	"github.com/timepricetag/time-price-tag/pkg/validation"
	"go.uber.org/zap"
)

func main() {
	// Process command line flags first to get config location
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	income := flag.String("income", "", "yearly income (overrides the config profile)")
	hours := flag.String("hours", "", "daily working hours (overrides the config profile)")
	price := flag.String("price", "", "item price")
	recurring := flag.Bool("recurring", false, "treat the price as a recurring monthly charge")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	flag.Parse()

	// Load the config file for the profile defaults and logging configuration.
	// The file is optional when the full profile is supplied on the command line.
	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		if *income == "" || *hours == "" {
			fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
			return
		}
		conf = &config.Configuration{}
	}

	// Initialize logging based on config and CLI override
	logger, err := config.NewLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	// Determine output format (CLI override takes precedence over config)
	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}

	err = validation.ValidateOutputFormat(outputFormat)
	if err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	// Validate configuration and display any warnings
	warnings := conf.ValidateConfiguration()
	for _, warning := range warnings {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	in := calc.Input{
		YearlyIncome: *income,
		DailyHours:   *hours,
		ItemPrice:    *price,
		Recurring:    *recurring,
	}

	// Fall back to the config profile for fields not given on the command line.
	if in.YearlyIncome == "" && conf.Profile.YearlyIncome != 0 {
		in.YearlyIncome = strconv.FormatFloat(conf.Profile.YearlyIncome, 'f', -1, 64)
	}
	if in.DailyHours == "" && conf.Profile.DailyHours != 0 {
		in.DailyHours = strconv.FormatFloat(conf.Profile.DailyHours, 'f', -1, 64)
	}

	result, msg := calc.Evaluate(in)
	if msg != "" {
		logger.Fatal(msg,
			zap.String("op", "main"),
		)
	}

	// Handle output.
	switch outputFormat {
	case constants.OutputFormatPretty:
		output.PrettyFormat(result)
	case constants.OutputFormatCSV:
		output.CsvFormat(result)
	}

}
