// Package histio moves histograms and packed buffers between memory and disk.
//
// Raw histogram files (pattern_N.bin) hold NumBins little-endian uint32
// counts with no header, as produced by the FPGA readout. Packed files
// (histograms.pack) hold the 21,504-byte histpack buffer; a ".zst" or ".lz4"
// suffix stores the same bytes inside a compression envelope. The envelope is
// storage only and never changes the packed format.
//
// All writes are atomic (temp file + rename).
package histio
