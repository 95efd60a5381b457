// Command httphdr validates, normalizes and exports HTTP header blocks.
package main

import (
	"io"
	"log/slog"
	"os"

	"braces.dev/errtrace"
	"github.com/spf13/cobra"

	"github.com/ghettovoice/httphdr/internal/log"
)

var logger = log.Noop

func init() {
	rootCmd.PersistentFlags().Bool("dev", false, "Use the developer log handler")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		setupLogger(cmd)
	}

	rootCmd.AddCommand(checkCmd, dumpCmd, exportCmd, lookupCmd)
}

// setupLogger configures the logger based on flags.
func setupLogger(cmd *cobra.Command) {
	dev, _ := cmd.Flags().GetBool("dev")
	verbose, _ := cmd.Flags().GetBool("verbose")

	lvl := slog.LevelInfo
	if verbose {
		lvl = slog.LevelDebug
	}
	logger = log.New(cmd.ErrOrStderr(), lvl, dev)
}

var rootCmd = &cobra.Command{
	Use:           "httphdr",
	Short:         "Utility to check and convert HTTP header blocks",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// openInput returns the file named by the first argument or stdin.
func openInput(cmd *cobra.Command, args []string) (io.ReadCloser, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	return errtrace.Wrap2(os.Open(args[0]))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", slog.Any("error", err))
		os.Exit(1)
	}
}
