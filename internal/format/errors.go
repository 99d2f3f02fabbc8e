package format

import "errors"

var (
	// ErrLaneOverflow indicates a count does not fit in LaneBits bits.
	ErrLaneOverflow = errors.New("format: count exceeds lane width")
	// ErrTruncated indicates the buffer lacked the bytes required for a record.
	ErrTruncated = errors.New("format: truncated buffer")
)
