package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/duvitech-llc/histogram-packing/cmd/histctl/logger"
	"github.com/duvitech-llc/histogram-packing/pkg/histio"
	"github.com/duvitech-llc/histogram-packing/pkg/histpack"
)

var unpackDir string

func init() {
	cmd := newUnpackCmd()
	cmd.Flags().StringVarP(&unpackDir, "dir", "d", "", "Output directory (default: directory of the packed file)")
	rootCmd.AddCommand(cmd)
}

func newUnpackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unpack <packed>",
		Short: "Unpack all eight histograms from a packed file",
		Long: `The unpack command decodes a packed file and writes each histogram as
pattern_unpacked_N.bin (1024 little-endian uint32 counts) for N = 1..8.

Example:
  histctl unpack image_patterns/histograms.pack
  histctl unpack histograms.pack.zst --dir restored`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUnpack(args)
		},
	}
}

func runUnpack(args []string) error {
	packPath := args[0]
	dir := unpackDir
	if dir == "" {
		dir = filepath.Dir(packPath)
	}

	printVerbose("Unpacking %s\n", packPath)
	packed, err := histio.ReadPackFile(packPath)
	if err != nil {
		return err
	}
	hs, err := histpack.UnpackAllWithOptions(packed, codecOptions())
	if err != nil {
		return fmt.Errorf("failed to unpack %s: %w", packPath, err)
	}
	paths, err := histio.WriteUnpackedSet(dir, hs)
	if err != nil {
		return err
	}
	logger.Info("unpacked histograms", "input", packPath, "dir", dir)

	if jsonOut {
		return printJSON(map[string]any{"input": packPath, "files": paths})
	}
	for _, p := range paths {
		printInfo("Saved unpacked histogram to %s\n", p)
	}
	return nil
}
