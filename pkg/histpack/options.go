package histpack

import (
	"golang.org/x/sync/errgroup"

	"github.com/duvitech-llc/histogram-packing/internal/format"
)

// Options controls how a transform is executed. A nil *Options, or a zero
// value, runs sequentially on the calling goroutine.
type Options struct {
	// Workers is the number of goroutines the bins are spread across.
	// Values below 2 keep the work on the calling goroutine; values above
	// NumBins are clamped.
	Workers int
}

func (o *Options) workers() int {
	if o == nil || o.Workers < 2 {
		return 1
	}
	return min(o.Workers, format.NumBins)
}

// forEachBinRange runs fn over [0, NumBins) split into contiguous ranges.
// When several ranges fail, the error from the lowest range is returned so
// the result matches a sequential scan.
func forEachBinRange(opts *Options, fn func(lo, hi int) error) error {
	n := opts.workers()
	if n == 1 {
		return fn(0, format.NumBins)
	}

	errs := make([]error, n)
	var g errgroup.Group
	for i := 0; i < n; i++ {
		lo := i * format.NumBins / n
		hi := (i + 1) * format.NumBins / n
		g.Go(func() error {
			errs[i] = fn(lo, hi)
			return errs[i]
		})
	}
	if g.Wait() == nil {
		return nil
	}
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
