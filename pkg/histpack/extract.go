package histpack

import "github.com/duvitech-llc/histogram-packing/internal/format"

// Extract returns the histogram with the given 1-based index (1 through
// NumHistograms) without decoding the other seven lanes.
func Extract(packed []byte, index int) (Histogram, error) {
	return ExtractWithOptions(packed, index, nil)
}

// ExtractWithOptions is Extract with explicit execution options.
func ExtractWithOptions(packed []byte, index int, opts *Options) (Histogram, error) {
	if index < 1 || index > format.NumHistograms {
		return nil, &IndexOutOfRangeError{Given: index, Min: 1, Max: format.NumHistograms}
	}
	if err := checkSize(packed); err != nil {
		return nil, err
	}

	lane := index - 1
	h := make(Histogram, format.NumBins)
	err := forEachBinRange(opts, func(lo, hi int) error {
		for bin := lo; bin < hi; bin++ {
			src, ok := format.RecordAt(packed, bin)
			if !ok {
				return format.ErrTruncated
			}
			h[bin] = format.LaneOf(src, lane)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return h, nil
}
