package report

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// reportColumns is the field count of every report line.
const reportColumns = 5

// ReadCSV reads a report written by WriteCSV back into rows.
func ReadCSV(reportPath string) ([]Row, error) {
	file, err := os.Open(reportPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open report: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(bufio.NewReader(file))
	reader.FieldsPerRecord = reportColumns

	var rows []Row
	for line := 1; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read report: %w", err)
		}

		row, err := parseRow(record)
		if err != nil {
			return nil, fmt.Errorf("report line %d: %w", line, err)
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// parseRow converts one report record into a Row.
func parseRow(record []string) (Row, error) {
	var nums [reportColumns - 1]int
	for i, field := range record[1:] {
		n, err := strconv.Atoi(field)
		if err != nil {
			return Row{}, fmt.Errorf("invalid number %q: %w", field, err)
		}
		nums[i] = n
	}

	return Row{
		Product:    record[0],
		Year:       nums[0],
		Total:      nums[1],
		Companies:  nums[2],
		TopPercent: nums[3],
	}, nil
}
