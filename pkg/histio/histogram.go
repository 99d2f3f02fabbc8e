package histio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/duvitech-llc/histogram-packing/internal/buf"
	"github.com/duvitech-llc/histogram-packing/internal/format"
	"github.com/duvitech-llc/histogram-packing/internal/writer"
	"github.com/duvitech-llc/histogram-packing/pkg/histpack"
)

// ReadHistogram reads one raw histogram: exactly BinFileSize bytes of
// little-endian uint32 counts. Any other length is a *histpack.SizeMismatchError.
func ReadHistogram(r io.Reader) (histpack.Histogram, error) {
	raw, err := io.ReadAll(io.LimitReader(r, format.BinFileSize+1))
	if err != nil {
		return nil, err
	}
	h := make(histpack.Histogram, format.NumBins)
	if !buf.Uint32sLE(h, raw) {
		return nil, &histpack.SizeMismatchError{Expected: format.BinFileSize, Actual: len(raw)}
	}
	return h, nil
}

// ReadHistogramFile reads a raw histogram from path.
func ReadHistogramFile(path string) (histpack.Histogram, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	h, err := ReadHistogram(f)
	if err != nil {
		return nil, fmt.Errorf("read histogram %s: %w", path, err)
	}
	return h, nil
}

// EncodeHistogram returns the raw file encoding of h. A standalone histogram
// with the wrong bin count is reported as histogram index 0.
func EncodeHistogram(h histpack.Histogram) ([]byte, error) {
	return encodeHistogram(h, 0)
}

func encodeHistogram(h histpack.Histogram, index int) ([]byte, error) {
	if len(h) != format.NumBins {
		return nil, &histpack.ShapeMismatchError{Expected: format.NumBins, Actual: len(h), Histogram: index}
	}
	return buf.AppendUint32sLE(make([]byte, 0, format.BinFileSize), h), nil
}

// WriteHistogram writes h in raw file form.
func WriteHistogram(w io.Writer, h histpack.Histogram) error {
	raw, err := EncodeHistogram(h)
	if err != nil {
		return err
	}
	_, err = w.Write(raw)
	return err
}

// WriteHistogramFile writes h to path atomically.
func WriteHistogramFile(path string, h histpack.Histogram) error {
	raw, err := EncodeHistogram(h)
	if err != nil {
		return err
	}
	fw := &writer.FileWriter{Path: path}
	if err := fw.Write(raw); err != nil {
		return fmt.Errorf("write histogram %s: %w", path, err)
	}
	return nil
}

// LoadPatternSet reads pattern_1.bin through pattern_8.bin from dir, in
// index order, ready for histpack.Pack.
func LoadPatternSet(dir string) ([]histpack.Histogram, error) {
	hs := make([]histpack.Histogram, format.NumHistograms)
	for i := 1; i <= format.NumHistograms; i++ {
		h, err := ReadHistogramFile(filepath.Join(dir, PatternFileName(i)))
		if err != nil {
			return nil, err
		}
		hs[i-1] = h
	}
	return hs, nil
}

// WriteUnpackedSet writes hs[k] to pattern_unpacked_<k+1>.bin in dir and
// returns the paths written. Every shape is checked before the first file
// is touched, so a malformed set writes nothing.
func WriteUnpackedSet(dir string, hs []histpack.Histogram) ([]string, error) {
	if err := histpack.CheckShape(hs); err != nil {
		return nil, err
	}
	paths := make([]string, 0, len(hs))
	for k, h := range hs {
		raw, err := encodeHistogram(h, k)
		if err != nil {
			return paths, err
		}
		path := filepath.Join(dir, UnpackedFileName(k+1))
		fw := &writer.FileWriter{Path: path}
		if err := fw.Write(raw); err != nil {
			return paths, fmt.Errorf("write histogram %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// WriteText writes h as "bin,count" lines, one per bin.
func WriteText(w io.Writer, h histpack.Histogram) error {
	bw := bufio.NewWriter(w)
	line := make([]byte, 0, 32)
	for bin, c := range h {
		line = strconv.AppendInt(line[:0], int64(bin), 10)
		line = append(line, ',')
		line = strconv.AppendUint(line, uint64(c), 10)
		line = append(line, '\n')
		if _, err := bw.Write(line); err != nil {
			return err
		}
	}
	return bw.Flush()
}
