package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// SheetName is the worksheet the XLSX export writes to.
const SheetName = "Report"

// ColumnTitles heads the XLSX export and the terminal table. The CSV report
// has no header row.
var ColumnTitles = []string{"Product", "Year", "Total Complaints", "Total Companies", "Highest Percentage"}

// WriteXLSX writes rows to a single-sheet workbook at outputPath. Products are
// written verbatim; the CSV quoting rule does not apply to spreadsheet cells.
func WriteXLSX(rows []Row, outputPath string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	header := make([]interface{}, len(ColumnTitles))
	for i, title := range ColumnTitles {
		header[i] = title
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}

		values := []interface{}{row.Product, row.Year, row.Total, row.Companies, row.TopPercent}
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	if err := f.SaveAs(outputPath); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}

	return nil
}
