package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"monthly-sales-report/internal/usecase"
)

// Output formats accepted for the report sink.
const (
	FormatCSV      = "csv"
	FormatXLSX     = "xlsx"
	FormatPostgres = "postgres"
)

// Config represents the application's configuration structure.
type Config struct {
	InputDir     string `json:"input-dir" mapstructure:"input-dir"`
	OutputPath   string `json:"output-path" mapstructure:"output-path"`
	OutputFormat string `json:"output-format" mapstructure:"output-format"`
	PostgresDSN  string `json:"postgres-dsn" mapstructure:"postgres-dsn"`
	LayoutPath   string `json:"layout-path" mapstructure:"layout-path"`
	LogLevel     string `json:"log-level" mapstructure:"log-level"`
	Workers      int    `json:"workers" mapstructure:"workers"`
	Year         string `json:"year" mapstructure:"year"`
	Month        string `json:"month" mapstructure:"month"`
	FilterStage  string `json:"filter-stage" mapstructure:"filter-stage"`
}

var requiredFields = []string{
	"input-dir",
}

var optionalFields = map[string]interface{}{
	"output-path":   "./reports/monthly_sales_report.csv",
	"output-format": FormatCSV,
	"postgres-dsn":  "",
	"layout-path":   "",
	"log-level":     "INFO",
	"workers":       0,
	"year":          "",
	"month":         "",
	"filter-stage":  usecase.FilterStageEvents,
}

// Init reads configuration from a JSON file and environment variables.
// Environment variables take precedence over the config file; a missing
// or unreadable file is not an error as long as the required fields arrive
// from the environment.
func Init(configFilePath string) (*Config, error) {
	v := viper.New()

	v.SetConfigFile(configFilePath)
	v.SetConfigType("json")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	for _, field := range requiredFields {
		v.BindEnv(field)
	}
	for field, value := range optionalFields {
		v.BindEnv(field)
		v.SetDefault(field, value)
	}

	if err := v.ReadInConfig(); err != nil {
		// ignore error if config file is not found
		// as we can get all config from env vars
		if !strings.Contains(err.Error(), configFilePath) {
			return nil, fmt.Errorf("could not read config: %w", err)
		}
	}

	for _, field := range requiredFields {
		if !v.IsSet(field) {
			return nil, fmt.Errorf("missing required config field: %s", field)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("could not unmarshal config: %w", err)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) validate() error {
	switch c.OutputFormat {
	case FormatCSV, FormatXLSX, FormatPostgres:
	default:
		return fmt.Errorf("unknown output-format %q", c.OutputFormat)
	}
	if c.OutputFormat == FormatPostgres && c.PostgresDSN == "" {
		return fmt.Errorf("output-format %q requires postgres-dsn", FormatPostgres)
	}
	switch c.FilterStage {
	case usecase.FilterStageEvents, usecase.FilterStageRecords:
	default:
		return fmt.Errorf("unknown filter-stage %q", c.FilterStage)
	}
	if c.Month != "" && c.Year == "" {
		return fmt.Errorf("month filter requires year")
	}
	return nil
}
