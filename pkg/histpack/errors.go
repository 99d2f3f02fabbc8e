package histpack

import (
	"errors"
	"fmt"
)

var (
	// ErrShapeMismatch is matched by *ShapeMismatchError.
	ErrShapeMismatch = errors.New("histpack: shape mismatch")
	// ErrFieldOverflow is matched by *FieldOverflowError.
	ErrFieldOverflow = errors.New("histpack: field overflow")
	// ErrSizeMismatch is matched by *SizeMismatchError.
	ErrSizeMismatch = errors.New("histpack: size mismatch")
	// ErrIndexOutOfRange is matched by *IndexOutOfRangeError.
	ErrIndexOutOfRange = errors.New("histpack: index out of range")
)

// ShapeMismatchError reports input histograms of the wrong shape: either the
// wrong number of histograms (Histogram == -1) or a histogram whose bin count
// differs from NumBins.
type ShapeMismatchError struct {
	Expected  int
	Actual    int
	Histogram int // zero-based; -1 when the histogram count itself is wrong
}

func (e *ShapeMismatchError) Error() string {
	if e.Histogram < 0 {
		return fmt.Sprintf("histpack: expected %d histograms, got %d", e.Expected, e.Actual)
	}
	return fmt.Sprintf("histpack: histogram %d has %d bins, expected %d", e.Histogram+1, e.Actual, e.Expected)
}

func (e *ShapeMismatchError) Is(target error) bool { return target == ErrShapeMismatch }

// FieldOverflowError reports a count that does not fit in a 21-bit lane.
// The source data exceeds the format's capacity; it is never clipped.
type FieldOverflowError struct {
	Bin       int
	Histogram int // zero-based lane index
	Value     uint32
	cause     error
}

func (e *FieldOverflowError) Error() string {
	return fmt.Sprintf("histpack: count %d at bin %d in histogram %d exceeds %d bits",
		e.Value, e.Bin, e.Histogram+1, LaneBits)
}

func (e *FieldOverflowError) Is(target error) bool { return target == ErrFieldOverflow }

func (e *FieldOverflowError) Unwrap() error { return e.cause }

// SizeMismatchError reports a buffer whose length is not the fixed format size.
type SizeMismatchError struct {
	Expected int
	Actual   int
}

func (e *SizeMismatchError) Error() string {
	return fmt.Sprintf("histpack: expected %d bytes, got %d", e.Expected, e.Actual)
}

func (e *SizeMismatchError) Is(target error) bool { return target == ErrSizeMismatch }

// IndexOutOfRangeError reports a histogram index outside [Min, Max].
type IndexOutOfRangeError struct {
	Given int
	Min   int
	Max   int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("histpack: histogram index %d outside [%d,%d]", e.Given, e.Min, e.Max)
}

func (e *IndexOutOfRangeError) Is(target error) bool { return target == ErrIndexOutOfRange }
