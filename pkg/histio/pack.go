package histio

import (
	"fmt"

	"github.com/duvitech-llc/histogram-packing/internal/mmfile"
	"github.com/duvitech-llc/histogram-packing/internal/writer"
)

// ReadPackFile returns the packed buffer stored at path. Plain files are
// memory-mapped and copied out; compressed files are decoded according to
// their extension. The length is not validated here; histpack does that.
func ReadPackFile(path string) ([]byte, error) {
	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return nil, fmt.Errorf("read pack %s: %w", path, err)
	}
	defer cleanup()

	codec := CodecFor(path)
	if codec == CodecNone {
		return append([]byte(nil), data...), nil
	}
	out, err := decompress(codec, data)
	if err != nil {
		return nil, fmt.Errorf("read pack %s: %w", path, err)
	}
	return out, nil
}

// WritePackFile stores packed at path atomically, compressing it when the
// extension names a codec.
func WritePackFile(path string, packed []byte) error {
	out, err := compress(CodecFor(path), packed)
	if err != nil {
		return fmt.Errorf("write pack %s: %w", path, err)
	}
	w := &writer.FileWriter{Path: path}
	if err := w.Write(out); err != nil {
		return fmt.Errorf("write pack %s: %w", path, err)
	}
	return nil
}
