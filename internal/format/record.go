package format

import (
	"fmt"

	"github.com/duvitech-llc/histogram-packing/internal/buf"
)

// Record is one 168-bit bin record: eight LaneBits-wide lanes laid out
// least-significant-bit first. Lane k occupies bits 21k through 21k+20.
//
// The value is held in three 64-bit words; only the low 40 bits of w[2] are
// ever populated, so bits 168-191 stay zero and never reach the wire.
type Record struct {
	w [3]uint64
}

// SetLane stores v in lane, replacing whatever the lane held before.
// It returns ErrLaneOverflow when v does not fit in LaneBits bits; the record
// is left unchanged in that case.
func (r *Record) SetLane(lane int, v uint32) error {
	checkLane(lane)
	if v > MaxCount {
		return ErrLaneOverflow
	}
	off := LaneOffset(lane)
	word, shift := off/64, uint(off%64)
	val := uint64(v)

	r.w[word] = r.w[word]&^(LaneMask<<shift) | val<<shift
	if spill := int(shift) + LaneBits - 64; spill > 0 {
		// Lane straddles a word boundary; the high bits continue in the next word.
		lo := uint(LaneBits - spill)
		r.w[word+1] = r.w[word+1]&^(1<<uint(spill)-1) | val>>lo
	}
	return nil
}

// Lane returns the count stored in lane.
func (r Record) Lane(lane int) uint32 {
	checkLane(lane)
	off := LaneOffset(lane)
	word, shift := off/64, uint(off%64)

	v := r.w[word] >> shift
	if spill := int(shift) + LaneBits - 64; spill > 0 {
		v |= r.w[word+1] << (64 - shift)
	}
	return uint32(v & LaneMask)
}

// PutBytes serializes r little-endian into dst, which must hold at least
// RecordSize bytes.
func (r Record) PutBytes(dst []byte) {
	_ = dst[RecordSize-1] // bounds check hint
	buf.PutU64LE(dst[0:], r.w[0])
	buf.PutU64LE(dst[8:], r.w[1])
	hi := r.w[2]
	for i := 0; i < RecordSize-16; i++ {
		dst[16+i] = byte(hi >> (8 * i))
	}
}

// Bytes returns the RecordSize-byte little-endian encoding of r.
func (r Record) Bytes() [RecordSize]byte {
	var out [RecordSize]byte
	r.PutBytes(out[:])
	return out
}

// DecodeRecord reads a record from the first RecordSize bytes of src.
// Every bit pattern is a valid record; only short input is rejected.
func DecodeRecord(src []byte) (Record, error) {
	if len(src) < RecordSize {
		return Record{}, fmt.Errorf("record: %w (have %d bytes, need %d)", ErrTruncated, len(src), RecordSize)
	}
	var r Record
	r.w[0] = buf.U64LE(src[0:])
	r.w[1] = buf.U64LE(src[8:])
	r.w[2] = uint64(buf.U32LE(src[16:])) | uint64(src[20])<<32
	return r, nil
}

// LaneOf decodes a single lane directly from an encoded record without
// materializing the other seven. src must hold at least RecordSize bytes.
func LaneOf(src []byte, lane int) uint32 {
	checkLane(lane)
	off := LaneOffset(lane)
	start, shift := off/8, uint(off%8)

	// shift+LaneBits never exceeds 28 bits, so four bytes always suffice;
	// the last lane ends at the record boundary and only needs three.
	var v uint32
	for i := 0; i < 4 && start+i < RecordSize; i++ {
		v |= uint32(src[start+i]) << (8 * i)
	}
	return (v >> shift) & LaneMask
}

// RecordAt returns the encoded record for bin within a packed buffer.
func RecordAt(packed []byte, bin int) ([]byte, bool) {
	if bin < 0 || bin >= NumBins {
		return nil, false
	}
	return buf.Slice(packed, bin*RecordSize, RecordSize)
}

func checkLane(lane int) {
	if lane < 0 || lane >= NumHistograms {
		panic(fmt.Sprintf("format: lane %d out of range [0,%d)", lane, NumHistograms))
	}
}
