package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/duvitech-llc/histogram-packing/pkg/histio"
	"github.com/duvitech-llc/histogram-packing/pkg/histpack"
)

// resetFlags restores every package-level flag to its default.
func resetFlags() {
	verbose, quiet, jsonOut = false, false, false
	logFile = ""
	workers = 1
	packOut = ""
	unpackDir = ""
	extractFile = histio.DefaultPackName
	extractOut = ""
	extractText = false
}

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	done := make(chan []byte)
	go func() {
		var buf bytes.Buffer
		_, _ = buf.ReadFrom(r)
		done <- buf.Bytes()
	}()

	fnErr := fn()

	w.Close()
	os.Stdout = origStdout
	return string(<-done), fnErr
}

// fixtureSet builds eight histograms where histogram k has every bin set to
// (k+1)*1000, except bin b which carries b extra counts.
func fixtureSet() []histpack.Histogram {
	hs := make([]histpack.Histogram, histpack.NumHistograms)
	for k := range hs {
		hs[k] = make(histpack.Histogram, histpack.NumBins)
		for bin := range hs[k] {
			hs[k][bin] = uint32((k+1)*1000 + bin)
		}
	}
	return hs
}

// writeFixtureDir writes pattern_1.bin .. pattern_8.bin into a temp dir.
func writeFixtureDir(t *testing.T) (string, []histpack.Histogram) {
	t.Helper()
	dir := t.TempDir()
	hs := fixtureSet()
	for k, h := range hs {
		require.NoError(t, histio.WriteHistogramFile(filepath.Join(dir, histio.PatternFileName(k+1)), h))
	}
	return dir, hs
}
