// =============================================================================
// Consumer Complaints Report - CSV Parser Module
// =============================================================================
//
// This module is the row source for the report pipeline. It opens a complaint
// export and hands rows out one at a time, so the whole file never has to be
// held in memory.
//
// FEATURES:
//   - Standard comma-separated CSV with double-quote escaping
//   - Rows may have varying field counts (checked later by the normalizer)
//   - The first row is the header and is read separately from the data rows
//   - Blank lines are returned as rows with zero fields, never dropped, so
//     they fail the row length check and keep row indexes aligned with the
//     file
//   - Sequential, single pass: a parser cannot be rewound once consumed
//
// USAGE:
//   parser, err := csvparser.Open(path)
//   if err != nil {
//       return err
//   }
//   defer parser.Close()
//
//   header, err := parser.ReadHeader()
//   ...
//   for parser.Next() {
//       row := parser.Row()
//       // Process the row...
//   }
//
//   if err := parser.Err(); err != nil {
//       return err
//   }
//
// =============================================================================

package csvparser

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// =============================================================================
// STREAMING PARSER
// =============================================================================

// StreamingParser reads a CSV file one record at a time.
type StreamingParser struct {
	file       *os.File
	reader     *csv.Reader
	lines      *lineCounter
	header     []string
	headerRead bool
	currentRow []string
	rowIndex   int
	err        error

	// lastLine is the 1-based line the previous record ended on.
	lastLine int

	// Blank lines found ahead of pendingRow, still to be handed out.
	pendingBlanks int
	pendingRow    []string
	eof           bool
}

// Open opens the CSV file at filePath and prepares it for streaming.
//
// PARAMETERS:
//   - filePath: The path to the CSV file.
//
// RETURNS:
//   - A pointer to the StreamingParser. The caller owns it and must Close it.
//   - An error if the file cannot be opened.
func Open(filePath string) (*StreamingParser, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}

	return NewStreamingParser(file), nil
}

// NewStreamingParser wraps an already opened file. Close closes the file.
func NewStreamingParser(file *os.File) *StreamingParser {
	lines := &lineCounter{r: file}
	reader := csv.NewReader(bufio.NewReader(lines))
	configureReader(reader)

	return &StreamingParser{
		file:     file,
		reader:   reader,
		lines:    lines,
		rowIndex: -1,
	}
}

// configureReader sets up the CSV reader for complaint exports.
func configureReader(reader *csv.Reader) {
	reader.Comma = ','

	// Row length is validated against the resolved header positions, not
	// against the header width.
	reader.FieldsPerRecord = -1

	// Stray quotes inside unquoted fields are kept as literal characters.
	reader.LazyQuotes = true
}

// ReadHeader reads the first record of the file.
//
// An empty file or a blank first line yields an empty header, which the
// header resolver rejects.
// ReadHeader must be called exactly once, before Next.
func (p *StreamingParser) ReadHeader() ([]string, error) {
	if p.headerRead {
		return nil, errors.New("header already read")
	}
	p.headerRead = true

	row, err := p.readRecord()
	if err == io.EOF {
		p.header = []string{}
		return p.header, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading header row: %w", err)
	}

	p.header = row
	return p.header, nil
}

// Next advances to the next data row. Returns false when there are no more
// rows or a read error occurred; check Err afterwards.
func (p *StreamingParser) Next() bool {
	if p.err != nil {
		return false
	}

	if !p.headerRead {
		if _, err := p.ReadHeader(); err != nil {
			p.err = err
			return false
		}
	}

	row, err := p.readRecord()
	if err == io.EOF {
		return false
	}
	if err != nil {
		p.err = fmt.Errorf("error reading row %d: %w", p.rowIndex+1, err)
		return false
	}

	p.rowIndex++
	p.currentRow = row

	return true
}

// readRecord returns the next line-level row. encoding/csv skips blank
// lines, so they are recovered from the line numbers of the records around
// them and returned as empty rows.
func (p *StreamingParser) readRecord() ([]string, error) {
	if p.pendingBlanks > 0 {
		p.pendingBlanks--
		return []string{}, nil
	}
	if p.pendingRow != nil {
		row := p.pendingRow
		p.pendingRow = nil
		return row, nil
	}
	if p.eof {
		return nil, io.EOF
	}

	row, err := p.reader.Read()
	if err == io.EOF {
		p.eof = true

		// Trailing blank lines only show up in the total line count.
		if blanks := p.lines.total() - p.lastLine; blanks > 0 {
			p.lastLine += blanks
			p.pendingBlanks = blanks - 1
			return []string{}, nil
		}
		return nil, io.EOF
	}
	if err != nil {
		return nil, err
	}

	startLine, _ := p.reader.FieldPos(0)
	last := len(row) - 1
	endLine, _ := p.reader.FieldPos(last)
	endLine += strings.Count(row[last], "\n")

	blanks := startLine - p.lastLine - 1
	p.lastLine = endLine

	if blanks > 0 {
		p.pendingBlanks = blanks - 1
		p.pendingRow = row
		return []string{}, nil
	}

	return row, nil
}

// Row returns the current data row.
func (p *StreamingParser) Row() []string {
	return p.currentRow
}

// Header returns the header row, or nil before ReadHeader.
func (p *StreamingParser) Header() []string {
	return p.header
}

// RowIndex returns the 0-based index of the current data row. The header is
// not counted.
func (p *StreamingParser) RowIndex() int {
	return p.rowIndex
}

// Err returns any error that occurred during parsing.
func (p *StreamingParser) Err() error {
	return p.err
}

// Close closes the underlying file.
func (p *StreamingParser) Close() error {
	return p.file.Close()
}

// =============================================================================
// UTILITY FUNCTIONS
// =============================================================================

// ReadAll drains the file at filePath and returns every record, header
// included. Intended for small files and tests.
func ReadAll(filePath string) ([][]string, error) {
	parser, err := Open(filePath)
	if err != nil {
		return nil, err
	}
	defer parser.Close()

	header, err := parser.ReadHeader()
	if err != nil {
		return nil, err
	}
	rows := [][]string{header}
	for parser.Next() {
		rows = append(rows, parser.Row())
	}

	if err := parser.Err(); err != nil {
		return nil, err
	}

	// An empty file has no rows at all, not one empty header.
	if len(rows) == 1 && len(header) == 0 && parser.lines.total() == 0 {
		return [][]string{}, nil
	}

	return rows, nil
}

// lineCounter counts the lines of everything read through it.
type lineCounter struct {
	r        io.Reader
	newlines int
	last     byte
	read     bool
}

func (c *lineCounter) Read(b []byte) (int, error) {
	n, err := c.r.Read(b)
	if n > 0 {
		c.newlines += bytes.Count(b[:n], []byte{'\n'})
		c.last = b[n-1]
		c.read = true
	}
	return n, err
}

// total is the number of lines seen so far. A final line without a newline
// still counts.
func (c *lineCounter) total() int {
	if c.read && c.last != '\n' {
		return c.newlines + 1
	}
	return c.newlines
}
