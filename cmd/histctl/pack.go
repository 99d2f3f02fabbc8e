package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/duvitech-llc/histogram-packing/cmd/histctl/logger"
	"github.com/duvitech-llc/histogram-packing/pkg/histio"
	"github.com/duvitech-llc/histogram-packing/pkg/histpack"
)

var packOut string

func init() {
	cmd := newPackCmd()
	cmd.Flags().StringVarP(&packOut, "out", "o", "", "Output file (default <dir>/histograms.pack; .zst/.lz4 compress)")
	rootCmd.AddCommand(cmd)
}

func newPackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pack <dir>",
		Short: "Pack pattern_1.bin .. pattern_8.bin into one file",
		Long: `The pack command reads the eight raw histograms pattern_1.bin through
pattern_8.bin (1024 little-endian uint32 counts each) from <dir> and writes
them as a single 21,504-byte packed file. Every count must fit in 21 bits.

Example:
  histctl pack image_patterns
  histctl pack image_patterns --out archive/histograms.pack.zst`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPack(args)
		},
	}
}

type packResult struct {
	Output string `json:"output"`
	Bytes  int    `json:"bytes"`
	Codec  string `json:"codec"`
}

func runPack(args []string) error {
	dir := args[0]
	out := packOut
	if out == "" {
		out = filepath.Join(dir, histio.DefaultPackName)
	}

	printVerbose("Reading histograms from %s\n", dir)
	hs, err := histio.LoadPatternSet(dir)
	if err != nil {
		return fmt.Errorf("failed to load histograms: %w", err)
	}

	packed, err := histpack.PackWithOptions(hs, codecOptions())
	if err != nil {
		return fmt.Errorf("failed to pack histograms: %w", err)
	}
	if err := histio.WritePackFile(out, packed); err != nil {
		return err
	}
	logger.Info("packed histograms", "dir", dir, "output", out, "workers", workers)

	res := packResult{Output: out, Bytes: len(packed), Codec: histio.CodecFor(out).String()}
	if jsonOut {
		return printJSON(res)
	}
	printInfo("Packed file saved to %s (%d bytes)\n", res.Output, res.Bytes)
	return nil
}
