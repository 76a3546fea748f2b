package report_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/consumer-complaints/internal/report"
)

func TestWriteXLSX(t *testing.T) {
	t.Parallel()

	rows := []report.Row{
		{Product: "foo, inc", Year: 2019, Total: 3, Companies: 2, TopPercent: 67},
		{Product: "mortgage", Year: 2020, Total: 1, Companies: 1, TopPercent: 100},
	}

	path := filepath.Join(t.TempDir(), "report.xlsx")
	require.NoError(t, report.WriteXLSX(rows, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{report.SheetName}, f.GetSheetList())

	got, err := f.GetRows(report.SheetName)
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		report.ColumnTitles,
		{"foo, inc", "2019", "3", "2", "67"},
		{"mortgage", "2020", "1", "1", "100"},
	}, got)
}

func TestRenderTable(t *testing.T) {
	t.Parallel()

	out := report.RenderTable([]report.Row{
		{Product: "debt collection", Year: 2019, Total: 1, Companies: 1, TopPercent: 100},
	})

	assert.Contains(t, out, "debt collection")
	assert.Contains(t, out, "2019")
	assert.Contains(t, out, "100%")
	assert.Contains(t, strings.ToLower(out), "total: 1 groups")
}
