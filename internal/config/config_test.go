package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/consumer-complaints/internal/config"
)

func TestLoadMainConfig_MissingFileUsesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.LoadMainConfig(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, "complaints_output.log", cfg.LogFile)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 1000, cfg.ProgressInterval)
	assert.Empty(t, cfg.XLSXOutput)
}

func TestLoadMainConfig_File(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
log_file: ./logs/run.log
log_level: debug
xlsx_output: ./out/report.xlsx
summary_output: ./out/summary.yaml
`), 0o644))

	cfg, err := config.LoadMainConfig(path)
	require.NoError(t, err)
	assert.Equal(t, &config.MainConfig{
		LogFile:          "./logs/run.log",
		LogLevel:         "debug",
		ProgressInterval: 1000,
		XLSXOutput:       "./out/report.xlsx",
		SummaryOutput:    "./out/summary.yaml",
	}, cfg)
}

func TestLoadMainConfig_Invalid(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	malformed := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(malformed, []byte("log_level: [unterminated"), 0o644))
	_, err := config.LoadMainConfig(malformed)
	assert.ErrorContains(t, err, "failed to parse config file")

	negative := filepath.Join(dir, "negative.yaml")
	require.NoError(t, os.WriteFile(negative, []byte("progress_interval: -5\n"), 0o644))
	_, err = config.LoadMainConfig(negative)
	assert.ErrorIs(t, err, config.ErrInvalidProgressInterval)
}
