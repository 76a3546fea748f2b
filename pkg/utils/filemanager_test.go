package utils_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/consumer-complaints/pkg/utils"
)

func TestEnsureParentDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	target := filepath.Join(dir, "a", "b", "file.csv")

	require.NoError(t, utils.EnsureParentDir(target))
	assert.DirExists(t, filepath.Join(dir, "a", "b"))
	assert.False(t, utils.FileExists(target))

	require.NoError(t, utils.EnsureParentDir("relative.csv"))
}

func TestWriteSummary_RoundTrip(t *testing.T) {
	t.Parallel()

	start := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	summary := utils.RunSummary{
		RunID:      "0b6f3c1e-5a4d-4c3b-9e2f-1a2b3c4d5e6f",
		InputFile:  "in.csv",
		OutputFile: "out.csv",
		RowsParsed: 5,
		Products:   2,
		Groups:     3,
		StartTime:  start,
		EndTime:    start.Add(1500 * time.Millisecond),
		Duration:   1500 * time.Millisecond,
	}

	path := filepath.Join(t.TempDir(), "nested", "summary.yaml")
	require.NoError(t, utils.WriteSummary(summary, path))
	assert.True(t, utils.FileExists(path))

	loaded, err := utils.ReadSummary(path)
	require.NoError(t, err)
	assert.Equal(t, summary.RunID, loaded.RunID)
	assert.Equal(t, summary.RowsParsed, loaded.RowsParsed)
	assert.Equal(t, summary.Groups, loaded.Groups)
	assert.Equal(t, summary.Duration, loaded.Duration)
	assert.True(t, summary.StartTime.Equal(loaded.StartTime))
	assert.Empty(t, loaded.XLSXFile)
}
