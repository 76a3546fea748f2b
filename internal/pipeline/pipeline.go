// =============================================================================
// Consumer Complaints Report - Pipeline Module
// =============================================================================
//
// This module runs the whole report for one input file.
//
// PIPELINE:
//   1. Open the input CSV
//   2. Resolve the mandatory header positions (once)
//   3. For each data row: normalize, then merge into the aggregation
//   4. Write the report CSV (and optional XLSX / summary)
//
// Any malformed row aborts the run before the report is created, so bad
// input leaves no report behind. The optional XLSX and summary exports run
// after the report is written; if one of them fails the report stays.
//
// =============================================================================

package pipeline

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/ginjaninja78/consumer-complaints/internal/aggregate"
	"github.com/ginjaninja78/consumer-complaints/internal/complaints"
	"github.com/ginjaninja78/consumer-complaints/internal/config"
	"github.com/ginjaninja78/consumer-complaints/internal/csvparser"
	"github.com/ginjaninja78/consumer-complaints/internal/logging"
	"github.com/ginjaninja78/consumer-complaints/internal/report"
	"github.com/ginjaninja78/consumer-complaints/pkg/utils"
)

// =============================================================================
// RESULT STRUCTURE
// =============================================================================

// Result represents the outcome of one run.
type Result struct {
	// RunID identifies the run in logs and in the summary file.
	RunID string

	// InputFile and OutputFile are the paths the run read and wrote.
	InputFile  string
	OutputFile string

	// XLSXFile is the spreadsheet export, empty when not requested.
	XLSXFile string

	// Aggregation is the completed, read-only grouping.
	Aggregation aggregate.Result

	// Stats contains processing statistics.
	Stats ProcessingStats
}

// ProcessingStats contains statistics about the processing.
type ProcessingStats struct {
	// RowsParsed is the number of data rows merged (header excluded).
	RowsParsed int

	// Products and Groups count distinct products and (product, year) pairs.
	Products int
	Groups   int

	StartTime      time.Time
	ProcessingTime time.Duration
}

// =============================================================================
// RUNNER
// =============================================================================

// Runner executes report runs with a given configuration and logger.
type Runner struct {
	config *config.MainConfig
	logger logging.Logger
}

// New creates a Runner. A nil config uses the defaults and a nil logger
// discards everything.
func New(cfg *config.MainConfig, logger logging.Logger) *Runner {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = logging.Discard()
	}

	return &Runner{config: cfg, logger: logger}
}

// Run reads inputPath and writes the report to outputPath using the default
// configuration and no logging.
func Run(inputPath, outputPath string) error {
	_, err := New(nil, nil).Run(inputPath, outputPath)
	return err
}

// Run executes the pipeline for one input file.
//
// PARAMETERS:
//   - inputPath: The complaints CSV to read.
//   - outputPath: The report CSV to write (truncated if present).
//
// RETURNS:
//   - The run result with statistics.
//   - The first error encountered; nothing is retried or skipped. An export
//     error is returned after the report CSV has already been written.
func (r *Runner) Run(inputPath, outputPath string) (*Result, error) {
	result := &Result{
		RunID:      uuid.New().String(),
		InputFile:  inputPath,
		OutputFile: outputPath,
	}
	result.Stats.StartTime = time.Now()

	log := r.withRun(result.RunID)

	aggregation, rows, err := r.aggregate(log, inputPath)
	if err != nil {
		log.Error("Parsing failed", "input", inputPath, "error", err)
		return nil, err
	}

	result.Aggregation = aggregation
	result.Stats.RowsParsed = rows
	result.Stats.Products = len(aggregation)
	result.Stats.Groups = aggregation.Groups()

	if utils.FileExists(outputPath) {
		log.Warn("Overwriting existing report", "output", outputPath)
	}
	log.Info("Saving results", "output", outputPath)
	if err := report.WriteCSV(aggregation, outputPath); err != nil {
		log.Error("Saving failed", "output", outputPath, "error", err)
		return nil, err
	}
	log.Info("Results successfully saved", "output", outputPath, "groups", result.Stats.Groups)

	if r.config.XLSXOutput != "" {
		if err := report.WriteXLSX(report.BuildRows(aggregation), r.config.XLSXOutput); err != nil {
			return nil, fmt.Errorf("failed to export xlsx: %w", err)
		}
		result.XLSXFile = r.config.XLSXOutput
		log.Info("Spreadsheet saved", "xlsx", r.config.XLSXOutput)
	}

	result.Stats.ProcessingTime = time.Since(result.Stats.StartTime)

	if r.config.SummaryOutput != "" {
		if err := utils.WriteSummary(result.Summary(), r.config.SummaryOutput); err != nil {
			return nil, err
		}
		log.Debug("Summary saved", "summary", r.config.SummaryOutput)
	}

	return result, nil
}

// Aggregate reads inputPath and returns the aggregation without writing
// anything.
func (r *Runner) Aggregate(inputPath string) (aggregate.Result, error) {
	aggregation, _, err := r.aggregate(r.withRun(uuid.New().String()), inputPath)
	return aggregation, err
}

// aggregate streams the input file into a fresh aggregation and returns it
// with the number of data rows merged.
func (r *Runner) aggregate(log logging.Logger, inputPath string) (aggregate.Result, int, error) {
	parser, err := csvparser.Open(inputPath)
	if err != nil {
		return nil, 0, err
	}
	defer parser.Close()

	header, err := parser.ReadHeader()
	if err != nil {
		return nil, 0, err
	}

	ptrs, err := csvparser.ResolveHeaders(header)
	if err != nil {
		return nil, 0, err
	}
	log.Debug("Resolved headers", "date", ptrs.Date, "product", ptrs.Product, "company", ptrs.Company)

	log.Info("Starting to parse CSV", "input", inputPath)

	aggregation := aggregate.New()
	rows := 0
	for parser.Next() {
		record, err := complaints.Normalize(parser.Row(), ptrs, parser.RowIndex())
		if err != nil {
			return nil, 0, err
		}

		aggregate.Merge(aggregation, record.Product, record.Year, record.Company)
		rows++

		if interval := r.config.ProgressInterval; interval > 0 && rows%interval == 0 {
			log.Info("Parsed rows", "rows", humanize.Comma(int64(rows)))
		}
	}

	if err := parser.Err(); err != nil {
		return nil, 0, err
	}

	log.Info("Successfully parsed CSV data", "rows", humanize.Comma(int64(rows)), "products", len(aggregation))

	return aggregation, rows, nil
}

// withRun tags log records with the run ID when the logger supports it.
func (r *Runner) withRun(runID string) logging.Logger {
	if l, ok := r.logger.(interface {
		With(args ...any) *slog.Logger
	}); ok {
		return l.With("run_id", runID)
	}
	return r.logger
}

// Summary converts the result into the persisted run summary.
func (res *Result) Summary() utils.RunSummary {
	return utils.RunSummary{
		RunID:      res.RunID,
		InputFile:  res.InputFile,
		OutputFile: res.OutputFile,
		XLSXFile:   res.XLSXFile,
		RowsParsed: res.Stats.RowsParsed,
		Products:   res.Stats.Products,
		Groups:     res.Stats.Groups,
		StartTime:  res.Stats.StartTime,
		EndTime:    res.Stats.StartTime.Add(res.Stats.ProcessingTime),
		Duration:   res.Stats.ProcessingTime,
	}
}
