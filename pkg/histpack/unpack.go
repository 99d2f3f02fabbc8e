package histpack

import "github.com/duvitech-llc/histogram-packing/internal/format"

// UnpackAll reconstructs all NumHistograms histograms from a packed buffer.
// Any PackedSize-byte input decodes successfully; every count is below 2^21
// by construction.
func UnpackAll(packed []byte) ([]Histogram, error) {
	return UnpackAllWithOptions(packed, nil)
}

// UnpackAllWithOptions is UnpackAll with explicit execution options.
func UnpackAllWithOptions(packed []byte, opts *Options) ([]Histogram, error) {
	if err := checkSize(packed); err != nil {
		return nil, err
	}

	hs := make([]Histogram, format.NumHistograms)
	for k := range hs {
		hs[k] = make(Histogram, format.NumBins)
	}
	err := forEachBinRange(opts, func(lo, hi int) error {
		for bin := lo; bin < hi; bin++ {
			src, ok := format.RecordAt(packed, bin)
			if !ok {
				return format.ErrTruncated
			}
			rec, err := format.DecodeRecord(src)
			if err != nil {
				return err
			}
			for k := range hs {
				hs[k][bin] = rec.Lane(k)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return hs, nil
}

func checkSize(packed []byte) error {
	if len(packed) != format.PackedSize {
		return &SizeMismatchError{Expected: format.PackedSize, Actual: len(packed)}
	}
	return nil
}
