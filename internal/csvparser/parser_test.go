package csvparser_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/consumer-complaints/internal/csvparser"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "input.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestReadAll_ComplaintsFixture(t *testing.T) {
	t.Parallel()

	rows, err := csvparser.ReadAll(filepath.Join("..", "..", "testdata", "complaints.csv"))
	require.NoError(t, err)
	require.Len(t, rows, 6)

	assert.Len(t, rows[0], 18)
	assert.Equal(t, "Date received", rows[0][0])
	assert.Equal(t, "Company", rows[0][7])

	assert.Equal(t, "transworld systems inc. is trying to collect a debt that is not mine, not owed and is inaccurate.", rows[1][5])
	assert.Equal(t, "", rows[1][6])
	assert.Equal(t, "TRANSWORLD SYSTEMS INC", rows[1][7])
	assert.Equal(t, "Credit reporting, credit repair services, or other personal consumer reports", rows[2][1])
	assert.Equal(t, "TRANSUNION INTERMEDIATE HOLDINGS, INC.", rows[5][7])
	assert.Equal(t, "3444592", rows[5][17])
}

func TestStreamingParser_HeaderThenRows(t *testing.T) {
	t.Parallel()

	path := writeCSV(t, "Company,Date received,Product\nacme,2019-01-02,loans\nglobex,2020-03-04,\"cards, debit\"\n")

	parser, err := csvparser.Open(path)
	require.NoError(t, err)
	defer parser.Close()

	header, err := parser.ReadHeader()
	require.NoError(t, err)
	assert.Equal(t, []string{"Company", "Date received", "Product"}, header)
	assert.Equal(t, header, parser.Header())

	require.True(t, parser.Next())
	assert.Equal(t, 0, parser.RowIndex())
	assert.Equal(t, []string{"acme", "2019-01-02", "loans"}, parser.Row())

	require.True(t, parser.Next())
	assert.Equal(t, 1, parser.RowIndex())
	assert.Equal(t, []string{"globex", "2020-03-04", "cards, debit"}, parser.Row())

	assert.False(t, parser.Next())
	assert.NoError(t, parser.Err())

	// Exhausted parsers stay exhausted.
	assert.False(t, parser.Next())
}

func TestStreamingParser_VariableFieldCounts(t *testing.T) {
	t.Parallel()

	path := writeCSV(t, "a,b,c\n1\n1,2,3,4\n")

	rows, err := csvparser.ReadAll(path)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "b", "c"}, {"1"}, {"1", "2", "3", "4"}}, rows)
}

func TestStreamingParser_NextReadsHeaderImplicitly(t *testing.T) {
	t.Parallel()

	path := writeCSV(t, "h1,h2\nv1,v2\n")

	parser, err := csvparser.Open(path)
	require.NoError(t, err)
	defer parser.Close()

	require.True(t, parser.Next())
	assert.Equal(t, []string{"v1", "v2"}, parser.Row())
	assert.Equal(t, []string{"h1", "h2"}, parser.Header())

	_, err = parser.ReadHeader()
	assert.Error(t, err)
}

func TestStreamingParser_EmptyFile(t *testing.T) {
	t.Parallel()

	parser, err := csvparser.Open(writeCSV(t, ""))
	require.NoError(t, err)
	defer parser.Close()

	header, err := parser.ReadHeader()
	require.NoError(t, err)
	assert.Empty(t, header)
	assert.False(t, parser.Next())
}

func TestOpen_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := csvparser.Open(filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestStreamingParser_BlankLinesAreEmptyRows(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    [][]string
	}{
		{"between rows", "h1,h2\na,b\n\nc,d\n", [][]string{{"h1", "h2"}, {"a", "b"}, {}, {"c", "d"}}},
		{"several", "h1\n\n\na\n", [][]string{{"h1"}, {}, {}, {"a"}}},
		{"leading", "\nh1,h2\na,b\n", [][]string{{}, {"h1", "h2"}, {"a", "b"}}},
		{"trailing", "h1\na\n\n", [][]string{{"h1"}, {"a"}, {}}},
		{"crlf", "h1\r\n\r\na\r\n", [][]string{{"h1"}, {}, {"a"}}},
		{"no final newline", "h1\na", [][]string{{"h1"}, {"a"}}},
		{"multi-line quoted field", "h1,h2\n\"x\ny\",\"p\nq\"\n\nz,w\n", [][]string{{"h1", "h2"}, {"x\ny", "p\nq"}, {}, {"z", "w"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rows, err := csvparser.ReadAll(writeCSV(t, tt.content))
			require.NoError(t, err)
			assert.Equal(t, tt.want, rows)
		})
	}
}

func TestStreamingParser_BlankLineKeepsRowIndex(t *testing.T) {
	t.Parallel()

	parser, err := csvparser.Open(writeCSV(t, "h\na\n\nb\n"))
	require.NoError(t, err)
	defer parser.Close()

	_, err = parser.ReadHeader()
	require.NoError(t, err)

	var indexes []int
	for parser.Next() {
		indexes = append(indexes, parser.RowIndex())
	}
	require.NoError(t, parser.Err())

	assert.Equal(t, []int{0, 1, 2}, indexes)
	assert.Equal(t, []string{"b"}, parser.Row())
}

func TestStreamingParser_BlankFirstLineIsEmptyHeader(t *testing.T) {
	t.Parallel()

	parser, err := csvparser.Open(writeCSV(t, "\nDate received,Product,Company\n"))
	require.NoError(t, err)
	defer parser.Close()

	header, err := parser.ReadHeader()
	require.NoError(t, err)
	assert.Empty(t, header)
}
