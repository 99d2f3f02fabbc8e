package histpack

import "github.com/duvitech-llc/histogram-packing/internal/format"

// Format constants re-exported for callers that size their own buffers.
const (
	NumBins       = format.NumBins
	NumHistograms = format.NumHistograms
	LaneBits      = format.LaneBits
	MaxCount      = format.MaxCount
	RecordSize    = format.RecordSize
	PackedSize    = format.PackedSize
)

// Histogram is one frequency histogram: index is the bin, value the count.
// A well-formed histogram has exactly NumBins entries.
type Histogram []uint32

// Summary describes the contents of a histogram.
type Summary struct {
	Total     uint64 `json:"total"`
	PeakBin   int    `json:"peak_bin"`
	PeakCount uint32 `json:"peak_count"`
	NonZero   int    `json:"non_zero_bins"`
}

// Summarize returns the total sample count, the first bin holding the
// largest count, and the number of populated bins.
func (h Histogram) Summarize() Summary {
	var s Summary
	for bin, c := range h {
		s.Total += uint64(c)
		if c > s.PeakCount {
			s.PeakCount = c
			s.PeakBin = bin
		}
		if c != 0 {
			s.NonZero++
		}
	}
	return s
}
