package histio

import (
	"fmt"
	"path/filepath"
	"strings"
)

// DefaultPackName is the conventional name of a packed histogram file.
const DefaultPackName = "histograms.pack"

// PatternFileName returns the raw histogram file name for 1-based index i.
func PatternFileName(i int) string {
	return fmt.Sprintf("pattern_%d.bin", i)
}

// UnpackedFileName returns the file name used for the i-th unpacked histogram.
func UnpackedFileName(i int) string {
	return fmt.Sprintf("pattern_unpacked_%d.bin", i)
}

// Codec identifies the storage envelope of a packed file.
type Codec int

const (
	CodecNone Codec = iota
	CodecZstd
	CodecLZ4
)

func (c Codec) String() string {
	switch c {
	case CodecZstd:
		return "zstd"
	case CodecLZ4:
		return "lz4"
	default:
		return "none"
	}
}

// CodecFor picks the envelope from the file extension.
func CodecFor(path string) Codec {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".zst", ".zstd":
		return CodecZstd
	case ".lz4":
		return CodecLZ4
	default:
		return CodecNone
	}
}
