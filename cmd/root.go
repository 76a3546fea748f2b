// =============================================================================
// Consumer Complaints Report - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the base command that all other commands are attached to.
//
// COBRA CLI STRUCTURE:
//   rootCmd (complaints)
//   ├── processCmd (complaints process <input> <output>)
//   ├── showCmd    (complaints show <input>)
//   └── versionCmd (complaints version)
//
// CONFIGURATION:
//   The root command is responsible for:
//   1. Setting up global flags (--config, --verbose, --log-file)
//   2. Loading the configuration file
//   3. Setting up logging
//
// =============================================================================

package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/consumer-complaints/internal/config"
	"github.com/ginjaninja78/consumer-complaints/internal/logging"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the main configuration file.
var cfgFile string

// verbose enables debug logging, mirrored to stderr.
var verbose bool

// logFile overrides the configured log file path.
var logFile string

// mainConfig and logger are prepared before any subcommand runs.
var (
	mainConfig *config.MainConfig
	logger     *slog.Logger
	logCloser  io.Closer
)

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "complaints",
	Short: "Consumer Complaints Report - Summarize complaints by product and year",
	Long: `Consumer Complaints Report reads a consumer-complaint CSV export and
produces a summary report. For every product and year it reports the number
of complaints, the number of companies that received them, and the share of
the company with the most complaints.

Example Usage:
  complaints process ./input/complaints.csv ./output/report.csv
  complaints process in.csv out.csv --xlsx out.xlsx --summary run.yaml
  complaints show ./input/complaints.csv`,

	SilenceUsage:  true,
	SilenceErrors: true,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfigAndLogging()
	},

	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if logCloser == nil {
			return nil
		}
		err := logCloser.Close()
		logCloser = nil
		return err
	},

	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the configuration file (optional)",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable debug logging and mirror log output to stderr",
	)

	rootCmd.PersistentFlags().StringVar(
		&logFile,
		"log-file",
		"",
		"Path to the log file (overrides log_file in the config)",
	)
}

// initConfigAndLogging loads the configuration and opens the log file.
func initConfigAndLogging() error {
	cfg, err := config.LoadMainConfig(cfgFile)
	if err != nil {
		return err
	}

	if logFile != "" {
		cfg.LogFile = logFile
	}
	if verbose {
		cfg.LogLevel = "debug"
	}

	l, closer, err := logging.Open(cfg.LogFile, cfg.LogLevel, verbose)
	if err != nil {
		return err
	}

	mainConfig = cfg
	logger = l
	logCloser = closer

	return nil
}
