// =============================================================================
// Consumer Complaints Report - File Manager Utility
// =============================================================================
//
// This module provides file helpers shared by the CLI and the pipeline:
//   - Creating parent directories for log, report and summary files
//   - Existence checks
//   - Writing the YAML run summary
//
// =============================================================================

package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// =============================================================================
// DIRECTORY MANAGEMENT
// =============================================================================

// EnsureParentDir creates the directory that will hold path, if missing.
func EnsureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	return nil
}

// FileExists checks if a file exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// =============================================================================
// RUN SUMMARY
// =============================================================================

// RunSummary describes one completed report run.
type RunSummary struct {
	RunID      string        `yaml:"run_id"`
	InputFile  string        `yaml:"input_file"`
	OutputFile string        `yaml:"output_file"`
	XLSXFile   string        `yaml:"xlsx_file,omitempty"`
	RowsParsed int           `yaml:"rows_parsed"`
	Products   int           `yaml:"products"`
	Groups     int           `yaml:"groups"`
	StartTime  time.Time     `yaml:"start_time"`
	EndTime    time.Time     `yaml:"end_time"`
	Duration   time.Duration `yaml:"duration"`
}

// WriteSummary writes summary as YAML to path.
//
// PARAMETERS:
//   - summary: The run summary.
//   - path: The file to create. Parent directories are created as needed.
//
// RETURNS:
//   - An error if encoding or writing fails.
func WriteSummary(summary RunSummary, path string) error {
	data, err := yaml.Marshal(summary)
	if err != nil {
		return fmt.Errorf("failed to encode summary: %w", err)
	}

	if err := EnsureParentDir(path); err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}

	return nil
}

// ReadSummary loads a summary written by WriteSummary.
func ReadSummary(path string) (*RunSummary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read summary: %w", err)
	}

	var summary RunSummary
	if err := yaml.Unmarshal(data, &summary); err != nil {
		return nil, fmt.Errorf("failed to parse summary: %w", err)
	}

	return &summary, nil
}
