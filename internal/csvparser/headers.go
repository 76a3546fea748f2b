package csvparser

import (
	"errors"
	"fmt"
)

// Mandatory column labels. Matching is exact and case-sensitive.
const (
	HeaderDateReceived = "Date received"
	HeaderProduct      = "Product"
	HeaderCompany      = "Company"
)

// MandatoryHeaders lists the labels every complaint export must carry.
var MandatoryHeaders = []string{HeaderDateReceived, HeaderProduct, HeaderCompany}

// ErrMissingHeader is returned when the header row lacks a mandatory label.
var ErrMissingHeader = errors.New("mandatory header not found")

// HeaderPointers holds the column positions of the mandatory fields.
type HeaderPointers struct {
	Date    int
	Product int
	Company int
}

// Max returns the highest of the three positions.
func (h HeaderPointers) Max() int {
	return max(h.Date, h.Product, h.Company)
}

// MinColumns is the number of fields a data row needs to cover every
// mandatory position.
func (h HeaderPointers) MinColumns() int {
	return h.Max() + 1
}

// ResolveHeaders locates the mandatory labels in the header row. Column order
// does not matter and extra columns are ignored. If a label occurs more than
// once, the first occurrence wins.
func ResolveHeaders(header []string) (HeaderPointers, error) {
	positions := make(map[string]int, len(MandatoryHeaders))
	for i, label := range header {
		if _, seen := positions[label]; !seen {
			positions[label] = i
		}
	}

	var missing []string
	for _, label := range MandatoryHeaders {
		if _, ok := positions[label]; !ok {
			missing = append(missing, label)
		}
	}
	if len(missing) > 0 {
		return HeaderPointers{}, fmt.Errorf("%w: %q", ErrMissingHeader, missing)
	}

	return HeaderPointers{
		Date:    positions[HeaderDateReceived],
		Product: positions[HeaderProduct],
		Company: positions[HeaderCompany],
	}, nil
}
