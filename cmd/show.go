package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/consumer-complaints/internal/pipeline"
	"github.com/ginjaninja78/consumer-complaints/internal/report"
)

// showFromReport treats the argument as an existing report CSV.
var showFromReport bool

// showCmd prints a report as a table without writing any file.
var showCmd = &cobra.Command{
	Use:   "show <file.csv>",
	Short: "Print the report for a complaints CSV as a table",
	Long: `The show command aggregates a complaints CSV and prints the report as a
table. With --report the argument is read as a report previously written by
'process' instead.`,
	Args: cobra.ExactArgs(1),

	RunE: func(cmd *cobra.Command, args []string) error {
		var rows []report.Row

		if showFromReport {
			r, err := report.ReadCSV(args[0])
			if err != nil {
				return err
			}
			rows = r
		} else {
			aggregation, err := pipeline.New(mainConfig, logger).Aggregate(args[0])
			if err != nil {
				return err
			}
			rows = report.BuildRows(aggregation)
		}

		fmt.Fprintln(cmd.OutOrStdout(), report.RenderTable(rows))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)

	showCmd.Flags().BoolVar(&showFromReport, "report", false, "Read the argument as an existing report CSV")
}
