// Package format houses the low-level layout of the packed histogram file.
// A packed file is a positional array of fixed-size bin records with no
// header, footer or checksum; everything in this package is derived from the
// handful of constants below so the writer and the readers share a single
// definition of where each count lives.
package format

const (
	// NumBins is the number of bins in every histogram (10-bit pixel values).
	NumBins = 1024

	// NumHistograms is the number of histograms folded into one packed file.
	// It is a format constant, not a runtime parameter.
	NumHistograms = 8

	// LaneBits is the width of each per-histogram count inside a bin record.
	LaneBits = 21

	// LaneMask selects the low LaneBits bits of a value (0x1FFFFF).
	LaneMask = 1<<LaneBits - 1

	// MaxCount is the largest count a lane can hold (2,097,151).
	MaxCount = LaneMask

	// RecordBits is the number of meaningful bits in a bin record.
	RecordBits = LaneBits * NumHistograms // 168

	// RecordSize is the on-disk size of one bin record in bytes.
	RecordSize = RecordBits / 8 // 21

	// PackedSize is the exact size of a packed histogram file.
	//
	// Layout:
	//   0x0000  bin 0 record (21 bytes)
	//   0x0015  bin 1 record
	//   ...
	//   0x53EB  bin 1023 record
	PackedSize = NumBins * RecordSize // 21504

	// CountSize is the width of one count in a raw histogram file.
	CountSize = 4

	// BinFileSize is the size of a raw histogram file as produced by the FPGA
	// readout: NumBins little-endian uint32 counts, no header.
	BinFileSize = NumBins * CountSize // 4096
)

// LaneOffset returns the bit offset of lane within a bin record.
// Lane k holds the count for histogram k+1.
func LaneOffset(lane int) int {
	return lane * LaneBits
}
