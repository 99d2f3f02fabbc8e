// Package testutil builds histogram fixtures shared by package tests.
package testutil

import (
	"math/rand/v2"
	"path/filepath"
	"testing"

	"github.com/duvitech-llc/histogram-packing/pkg/histio"
	"github.com/duvitech-llc/histogram-packing/pkg/histpack"
)

// RandomSet returns eight histograms of uniformly random in-range counts.
// The same seed always yields the same set.
func RandomSet(seed uint64) []histpack.Histogram {
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	return build(func(int, int) uint32 { return r.Uint32N(histpack.MaxCount + 1) })
}

// RampSet returns eight histograms where histogram k rises linearly with
// the bin index from a k-dependent base. Every histogram is distinct.
func RampSet() []histpack.Histogram {
	return build(func(k, bin int) uint32 {
		return uint32((bin*(k+3) + k*1000) % (histpack.MaxCount + 1))
	})
}

// WritePatternDir stores hs as pattern_1.bin .. pattern_N.bin in dir.
func WritePatternDir(t testing.TB, dir string, hs []histpack.Histogram) {
	t.Helper()
	for k, h := range hs {
		if err := histio.WriteHistogramFile(filepath.Join(dir, histio.PatternFileName(k+1)), h); err != nil {
			t.Fatalf("write pattern %d: %v", k+1, err)
		}
	}
}

func build(count func(k, bin int) uint32) []histpack.Histogram {
	hs := make([]histpack.Histogram, histpack.NumHistograms)
	for k := range hs {
		hs[k] = make(histpack.Histogram, histpack.NumBins)
		for bin := range hs[k] {
			hs[k][bin] = count(k, bin)
		}
	}
	return hs
}
