// =============================================================================
// Consumer Complaints Report - Configuration Module
// =============================================================================
//
// This module loads the optional application configuration file. Every
// setting has a default, so the tool runs without a config file at all.
//
// EXAMPLE (config.yaml):
//   log_file: ./logs/complaints_output.log
//   log_level: debug
//   progress_interval: 5000
//   xlsx_output: ./output/report.xlsx
//   summary_output: ./output/summary.yaml
//
// =============================================================================

package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults applied to unset fields.
const (
	DefaultLogFile          = "complaints_output.log"
	DefaultLogLevel         = "info"
	DefaultProgressInterval = 1000
)

// ErrInvalidProgressInterval is returned for a negative progress interval.
var ErrInvalidProgressInterval = errors.New("progress_interval must not be negative")

// =============================================================================
// MAIN CONFIGURATION STRUCTURE
// =============================================================================

// MainConfig holds the global application configuration.
type MainConfig struct {
	// =========================================================================
	// LOGGING SETTINGS
	// =========================================================================

	// LogFile is the path to the application log file.
	// Default: "complaints_output.log"
	LogFile string `yaml:"log_file"`

	// LogLevel controls the verbosity of logging.
	// Valid values: "debug", "info", "warn", "error"
	// Default: "info"
	LogLevel string `yaml:"log_level"`

	// ProgressInterval logs a progress line every N parsed rows.
	// Zero keeps the default; there is no way to disable progress lines
	// other than raising the log level above info.
	// Default: 1000
	ProgressInterval int `yaml:"progress_interval"`

	// =========================================================================
	// OUTPUT SETTINGS
	// =========================================================================

	// XLSXOutput, when set, also writes the report as a spreadsheet.
	XLSXOutput string `yaml:"xlsx_output"`

	// SummaryOutput, when set, writes a YAML summary of the run.
	SummaryOutput string `yaml:"summary_output"`
}

// Default returns a configuration with every default applied.
func Default() *MainConfig {
	var config MainConfig
	applyMainConfigDefaults(&config)
	return &config
}

// LoadMainConfig loads the main configuration from a YAML file.
//
// PARAMETERS:
//   - configPath: The path to the configuration file. A missing file yields
//     the defaults.
//
// RETURNS:
//   - A pointer to the MainConfig struct.
//   - An error if the file exists but cannot be read, parsed or validated.
func LoadMainConfig(configPath string) (*MainConfig, error) {
	data, err := os.ReadFile(configPath)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config MainConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	applyMainConfigDefaults(&config)

	return &config, nil
}

// applyMainConfigDefaults sets default values for any unset configuration options.
func applyMainConfigDefaults(config *MainConfig) {
	if config.LogFile == "" {
		config.LogFile = DefaultLogFile
	}
	if config.LogLevel == "" {
		config.LogLevel = DefaultLogLevel
	}
	if config.ProgressInterval == 0 {
		config.ProgressInterval = DefaultProgressInterval
	}
}

// Validate checks values that have no sensible default.
func (c *MainConfig) Validate() error {
	if c.ProgressInterval < 0 {
		return ErrInvalidProgressInterval
	}
	return nil
}
