/*
Package histpack packs eight 1024-bin frequency histograms into a single
21,504-byte buffer and recovers them again.

# File Format

A packed buffer is 1024 consecutive 21-byte bin records, bin 0 first. Each
record is a 168-bit little-endian integer made of eight 21-bit lanes; lane k
(bits 21k through 21k+20) holds the count for histogram k+1. There is no
header, magic number or checksum: the format is identified by its length.

# Basic Usage

Pack eight histograms:

	packed, err := histpack.Pack(hs) // hs is []histpack.Histogram, len 8
	if err != nil {
	    log.Fatal(err)
	}

Recover all of them:

	hs, err := histpack.UnpackAll(packed)

Pull out a single histogram (1-based, matching pattern_N.bin naming):

	h3, err := histpack.Extract(packed, 3)

# Concurrency

Every function is a pure transform over its arguments; concurrent calls are
safe as long as callers do not mutate a shared input while it is in use.
Bins are independent, so the *WithOptions variants can spread the work over
several goroutines:

	packed, err := histpack.PackWithOptions(hs, &histpack.Options{Workers: 4})

The output is byte-for-byte identical to the sequential path.

# Error Handling

Failures are typed and never partial. Use errors.As for details or errors.Is
against the package sentinels:

	var ovf *histpack.FieldOverflowError
	if errors.As(err, &ovf) {
	    fmt.Printf("bin %d of histogram %d holds %d\n", ovf.Bin, ovf.Histogram+1, ovf.Value)
	}
	if errors.Is(err, histpack.ErrSizeMismatch) {
	    ...
	}
*/
package histpack
