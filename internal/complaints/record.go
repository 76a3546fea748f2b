// Package complaints turns raw CSV rows into normalized complaint records.
package complaints

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ginjaninja78/consumer-complaints/internal/csvparser"
)

// dateLayout is the only accepted "Date received" format.
const dateLayout = "2006-01-02"

var (
	// ErrRowTooShort is returned when a row does not reach every mandatory column.
	ErrRowTooShort = errors.New("row does not have enough columns")

	// ErrBadDateFormat is returned when a date is not YYYY-MM-DD.
	ErrBadDateFormat = errors.New("improper date format")
)

// Record is one complaint reduced to the fields the report needs.
type Record struct {
	Product string
	Year    int
	Company string
}

// Normalize extracts and cleans the mandatory fields of a data row.
// rowIndex is the 0-based data row index and only feeds error messages.
func Normalize(row []string, ptrs csvparser.HeaderPointers, rowIndex int) (Record, error) {
	if len(row) < ptrs.MinColumns() {
		return Record{}, fmt.Errorf("row %d: %w: %s", rowIndex, ErrRowTooShort, strings.Join(row, ", "))
	}

	year, err := ExtractYear(row[ptrs.Date], rowIndex)
	if err != nil {
		return Record{}, err
	}

	return Record{
		Product: Clean(row[ptrs.Product]),
		Year:    year,
		Company: Clean(row[ptrs.Company]),
	}, nil
}

// ExtractYear returns the year of a YYYY-MM-DD date. Anything else, including
// valid dates in other layouts, is rejected.
func ExtractYear(date string, rowIndex int) (int, error) {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return 0, fmt.Errorf("row %d: %w: %q", rowIndex, ErrBadDateFormat, date)
	}

	return t.Year(), nil
}

// Clean lowercases s and trims surrounding whitespace.
func Clean(s string) string {
	return strings.TrimSpace(strings.ToLower(s))
}
