package cmd

import (
	"fmt"
	"io"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Version and BuildDate are stamped with -ldflags "-X ...cmd.Version=...".
var (
	Version   = "dev"
	BuildDate = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version and build information",
	Args:  cobra.NoArgs,

	// Printing the version must work without a config or a writable log.
	PersistentPreRunE:  func(cmd *cobra.Command, args []string) error { return nil },
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error { return nil },

	RunE: func(cmd *cobra.Command, args []string) error {
		return writeVersion(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// writeVersion prints the version block. A binary built without ldflags
// falls back to the module version recorded by the Go toolchain.
func writeVersion(w io.Writer) error {
	version := Version
	if version == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
			version = info.Main.Version
		}
	}

	_, err := fmt.Fprintf(w, "Consumer Complaints Report\nVersion:    %s\nBuild Date: %s\nGo Version: %s\n",
		version, BuildDate, runtime.Version())
	return err
}
