package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/arloliu/blmap/mapfile"
)

var logger = slog.New(slog.DiscardHandler)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "blmap",
	Short: "Inspect Blood MAP files",
	Long: `blmap decodes Blood level files (version 7.0 and 6.3), including
zstd, s2 and lz4 compressed copies, and prints their headers and records.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		logger = newLogger(cmd, verbose)
	},
}

func newLogger(cmd *cobra.Command, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

// readMap loads path with the command-line logger attached.
func readMap(path string, opts ...mapfile.Option) (*mapfile.Map, error) {
	return mapfile.ReadFile(path, append(opts, mapfile.WithLogger(logger))...)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
}
