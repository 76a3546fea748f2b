// =============================================================================
// Consumer Complaints Report - Process Command
// =============================================================================
//
// This file defines the 'process' command, which runs the report pipeline
// for one input file.
//
// COMMAND USAGE:
//   complaints process <input.csv> <output.csv> [flags]
//
// FLAGS:
//   --xlsx     : Also write the report as an XLSX workbook
//   --summary  : Write a YAML summary of the run
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/consumer-complaints/internal/pipeline"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

// xlsxOutput overrides xlsx_output from the config.
var xlsxOutput string

// summaryOutput overrides summary_output from the config.
var summaryOutput string

// =============================================================================
// PROCESS COMMAND DEFINITION
// =============================================================================

// processCmd represents the 'process' command.
var processCmd = &cobra.Command{
	Use:   "process <input.csv> <output.csv>",
	Short: "Aggregate a complaints CSV into a report",
	Long: `The process command reads the complaints CSV, groups complaints by
product and year, and writes one report line per group to the output file.

The input must have a header row containing "Date received", "Product" and
"Company". Dates must be YYYY-MM-DD. Any malformed row stops the run and no
report is written.`,
	Args: cobra.ExactArgs(2),

	RunE: func(cmd *cobra.Command, args []string) error {
		return runProcess(cmd, args[0], args[1])
	},
}

func init() {
	rootCmd.AddCommand(processCmd)

	processCmd.Flags().StringVar(
		&xlsxOutput,
		"xlsx",
		"",
		"Also write the report to this XLSX file",
	)

	processCmd.Flags().StringVar(
		&summaryOutput,
		"summary",
		"",
		"Write a YAML run summary to this file",
	)
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// runProcess runs the pipeline and prints a short summary.
func runProcess(cmd *cobra.Command, inputPath, outputPath string) error {
	if xlsxOutput != "" {
		mainConfig.XLSXOutput = xlsxOutput
	}
	if summaryOutput != "" {
		mainConfig.SummaryOutput = summaryOutput
	}

	result, err := pipeline.New(mainConfig, logger).Run(inputPath, outputPath)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "=== Processing Complete ===")
	fmt.Fprintf(out, "Run ID:          %s\n", result.RunID)
	fmt.Fprintf(out, "Rows parsed:     %d\n", result.Stats.RowsParsed)
	fmt.Fprintf(out, "Products:        %d\n", result.Stats.Products)
	fmt.Fprintf(out, "Report lines:    %d\n", result.Stats.Groups)
	fmt.Fprintf(out, "Report:          %s\n", result.OutputFile)
	if result.XLSXFile != "" {
		fmt.Fprintf(out, "Spreadsheet:     %s\n", result.XLSXFile)
	}
	fmt.Fprintf(out, "Time elapsed:    %s\n", result.Stats.ProcessingTime)

	return nil
}
