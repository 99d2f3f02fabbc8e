package histpack

import "github.com/duvitech-llc/histogram-packing/internal/format"

// Pack folds exactly NumHistograms histograms of NumBins counts each into a
// PackedSize-byte buffer. Histogram k lands in lane k of every bin record.
//
// Pack is deterministic: identical input always produces identical bytes.
func Pack(hs []Histogram) ([]byte, error) {
	return PackWithOptions(hs, nil)
}

// PackWithOptions is Pack with explicit execution options.
func PackWithOptions(hs []Histogram, opts *Options) ([]byte, error) {
	if err := CheckShape(hs); err != nil {
		return nil, err
	}

	out := make([]byte, format.PackedSize)
	err := forEachBinRange(opts, func(lo, hi int) error {
		return packBins(out, hs, lo, hi)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CheckShape reports a *ShapeMismatchError unless hs holds exactly
// NumHistograms histograms of NumBins counts each.
func CheckShape(hs []Histogram) error {
	if len(hs) != format.NumHistograms {
		return &ShapeMismatchError{Expected: format.NumHistograms, Actual: len(hs), Histogram: -1}
	}
	for k, h := range hs {
		if len(h) != format.NumBins {
			return &ShapeMismatchError{Expected: format.NumBins, Actual: len(h), Histogram: k}
		}
	}
	return nil
}

// packBins encodes bins [lo, hi) into out. Each bin writes only its own
// record, so disjoint ranges may run concurrently.
func packBins(out []byte, hs []Histogram, lo, hi int) error {
	for bin := lo; bin < hi; bin++ {
		var rec format.Record
		for k, h := range hs {
			if err := rec.SetLane(k, h[bin]); err != nil {
				return &FieldOverflowError{Bin: bin, Histogram: k, Value: h[bin], cause: err}
			}
		}
		rec.PutBytes(out[bin*format.RecordSize:])
	}
	return nil
}
