package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/duvitech-llc/histogram-packing/cmd/histctl/logger"
	"github.com/duvitech-llc/histogram-packing/pkg/histpack"
)

var (
	// Global flags
	verbose bool
	quiet   bool
	jsonOut bool
	logFile string
	workers int

	closeLog = func() error { return nil }
)

var rootCmd = &cobra.Command{
	Use:   "histctl",
	Short: "Pack, unpack and inspect 8-way histogram files",
	Long: `histctl packs eight 1024-bin FPGA histograms (pattern_1.bin .. pattern_8.bin)
into a single 21,504-byte file and recovers them again, either all at once
or one histogram at a time.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		closeFn, err := logger.Init(logger.Options{
			Enabled: verbose || logFile != "",
			Path:    logFile,
			Level:   level,
		})
		if err != nil {
			return fmt.Errorf("init logging: %w", err)
		}
		closeLog = closeFn
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeLog()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Append structured JSON logs to this file")
	rootCmd.PersistentFlags().IntVar(&workers, "workers", 1, "Goroutines used to process bins")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", "err", err)
		printError("%v\n", err)
		os.Exit(1)
	}
}

func codecOptions() *histpack.Options {
	return &histpack.Options{Workers: workers}
}

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
