// =============================================================================
// Consumer Complaints Report - Report Writer Module
// =============================================================================
//
// This module serializes an aggregation result to the report CSV.
//
// OUTPUT FORMAT:
//   product,year,total_complaints,total_companies,highest_percentage
//
//   - No header row
//   - Products in lexicographic order, years ascending within a product
//   - Every line ends with "\n", including the last one
//   - A product containing a comma is wrapped in double quotes. Nothing else
//     is escaped. This is narrower than RFC 4180 on purpose, so the output is
//     built by hand rather than with encoding/csv's Writer.
//
// =============================================================================

package report

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ginjaninja78/consumer-complaints/internal/aggregate"
)

// =============================================================================
// REPORT ROW
// =============================================================================

// Row is the derived summary of one (product, year) group.
type Row struct {
	Product    string
	Year       int
	Total      int
	Companies  int
	TopPercent int
}

// NewRow computes the report row for one group.
func NewRow(product string, year int, counter aggregate.Counter) Row {
	total := aggregate.TotalComplaints(counter)

	return Row{
		Product:    product,
		Year:       year,
		Total:      total,
		Companies:  aggregate.TotalCompanies(counter),
		TopPercent: aggregate.HighestPercentage(counter, total),
	}
}

// BuildRows derives every report row from result, in output order.
func BuildRows(result aggregate.Result) []Row {
	rows := make([]Row, 0, result.Groups())

	for _, product := range result.Products() {
		for _, year := range result.Years(product) {
			rows = append(rows, NewRow(product, year, result[product][year]))
		}
	}

	return rows
}

// Fields returns the row as output fields, with the product quoted if needed.
func (r Row) Fields() []string {
	return []string{
		quoteProduct(r.Product),
		strconv.Itoa(r.Year),
		strconv.Itoa(r.Total),
		strconv.Itoa(r.Companies),
		strconv.Itoa(r.TopPercent),
	}
}

// FormatRow renders one report line without the trailing newline.
func FormatRow(r Row) string {
	return strings.Join(r.Fields(), ",")
}

// quoteProduct wraps product in double quotes when it contains a comma.
func quoteProduct(product string) string {
	if strings.Contains(product, ",") {
		return `"` + product + `"`
	}
	return product
}

// =============================================================================
// FILE OUTPUT
// =============================================================================

// WriteCSV writes the report for result to outputPath, truncating any
// existing file.
//
// PARAMETERS:
//   - result: The completed aggregation. It is only read.
//   - outputPath: The report file to create.
//
// RETURNS:
//   - An error if the file cannot be created or written.
func WriteCSV(result aggregate.Result, outputPath string) (err error) {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close report: %w", closeErr)
		}
	}()

	writer := bufio.NewWriter(file)
	for _, row := range BuildRows(result) {
		if _, err := writer.WriteString(FormatRow(row) + "\n"); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}

	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush report: %w", err)
	}

	return nil
}
