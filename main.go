// =============================================================================
// Consumer Complaints Report - Main Entry Point
// =============================================================================
//
// This is the main entry point for the complaints CLI. It delegates command
// execution to the cmd package.
//
// USAGE:
//   complaints process <input> <output> - Write the product/year report
//   complaints show <input>             - Print the report as a table
//   complaints version                  - Display the application version
//
// ARCHITECTURE:
//   - cmd/       : CLI command definitions (Cobra)
//   - internal/  : Parsing, aggregation and report writing
//   - pkg/       : Shared file utilities
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/consumer-complaints/cmd"
)

func main() {
	cmd.Execute()
}
