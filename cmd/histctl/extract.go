package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/duvitech-llc/histogram-packing/cmd/histctl/logger"
	"github.com/duvitech-llc/histogram-packing/pkg/histio"
	"github.com/duvitech-llc/histogram-packing/pkg/histpack"
)

// previewBins is how many leading bins the text preview shows.
const previewBins = 20

var (
	extractFile string
	extractOut  string
	extractText bool
)

func init() {
	cmd := newExtractCmd()
	cmd.Flags().StringVarP(&extractFile, "file", "f", histio.DefaultPackName, "Packed histogram file")
	cmd.Flags().StringVarP(&extractOut, "out", "o", "", "Write the histogram as a raw .bin file")
	cmd.Flags().BoolVar(&extractText, "text", false, "Print every bin as bin,count lines")
	rootCmd.AddCommand(cmd)
}

func newExtractCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "extract <index>",
		Short: "Extract one histogram (1-8) from a packed file",
		Long: `The extract command decodes a single histogram from a packed file
without unpacking the other seven. The index is 1-based, matching the
pattern_N.bin naming.

Example:
  histctl extract 3
  histctl extract 3 --file image_patterns/histograms.pack --text
  histctl extract 8 --out pattern_8_restored.bin`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(args)
		},
	}
}

type extractResult struct {
	Index   int                `json:"index"`
	File    string             `json:"file"`
	Summary histpack.Summary   `json:"summary"`
	Counts  histpack.Histogram `json:"counts"`
}

func runExtract(args []string) error {
	index, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid histogram index %q: %w", args[0], err)
	}

	printVerbose("Extracting histogram %d from %s\n", index, extractFile)
	packed, err := histio.ReadPackFile(extractFile)
	if err != nil {
		return err
	}
	h, err := histpack.ExtractWithOptions(packed, index, codecOptions())
	if err != nil {
		return fmt.Errorf("failed to extract histogram: %w", err)
	}
	logger.Debug("extracted histogram", "file", extractFile, "index", index)

	if extractOut != "" {
		if err := histio.WriteHistogramFile(extractOut, h); err != nil {
			return err
		}
		printVerbose("Saved histogram to %s\n", extractOut)
	}

	switch {
	case jsonOut:
		return printJSON(extractResult{Index: index, File: extractFile, Summary: h.Summarize(), Counts: h})
	case extractText:
		if quiet {
			return nil
		}
		return histio.WriteText(os.Stdout, h)
	default:
		printInfo("Extracted histogram for pattern %d:\n", index)
		printInfo("%v ...\n", []uint32(h[:previewBins]))
		return nil
	}
}
