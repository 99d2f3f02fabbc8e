package format

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

// bigRecord computes the reference encoding of lanes as one 168-bit integer.
func bigRecord(lanes [NumHistograms]uint32) [RecordSize]byte {
	v := new(big.Int)
	for k, c := range lanes {
		term := new(big.Int).Lsh(big.NewInt(int64(c)), uint(LaneOffset(k)))
		v.Or(v, term)
	}
	var be [RecordSize]byte
	v.FillBytes(be[:])
	var le [RecordSize]byte
	for i := range be {
		le[i] = be[RecordSize-1-i]
	}
	return le
}

func TestConstants(t *testing.T) {
	require.Equal(t, 168, RecordBits)
	require.Equal(t, 21, RecordSize)
	require.Equal(t, 21504, PackedSize)
	require.Equal(t, 2097151, MaxCount)
	require.Equal(t, 4096, BinFileSize)
}

func TestRecordMatchesBigIntLayout(t *testing.T) {
	cases := map[string][NumHistograms]uint32{
		"zero":      {},
		"ascending": {1000, 2000, 3000, 4000, 5000, 6000, 7000, 8000},
		"max":       {MaxCount, MaxCount, MaxCount, MaxCount, MaxCount, MaxCount, MaxCount, MaxCount},
		"straddle":  {0, 0, 0, MaxCount, 0, 0, MaxCount, 0},
		"mixed":     {1, MaxCount, 0x155555, 0x0AAAAA, 7, 0x100000, 0x0FFFFF, 42},
	}
	for name, lanes := range cases {
		t.Run(name, func(t *testing.T) {
			var r Record
			for k, c := range lanes {
				require.NoError(t, r.SetLane(k, c))
			}
			want := bigRecord(lanes)
			require.Equal(t, want, r.Bytes())

			for k, c := range lanes {
				require.Equal(t, c, r.Lane(k), "lane %d", k)
				require.Equal(t, c, LaneOf(want[:], k), "LaneOf lane %d", k)
			}

			back, err := DecodeRecord(want[:])
			require.NoError(t, err)
			require.Equal(t, r, back)
		})
	}
}

func TestSetLaneReplaces(t *testing.T) {
	var r Record
	for k := 0; k < NumHistograms; k++ {
		require.NoError(t, r.SetLane(k, MaxCount))
	}
	require.NoError(t, r.SetLane(3, 5))
	require.NoError(t, r.SetLane(6, 0))

	for k := 0; k < NumHistograms; k++ {
		want := uint32(MaxCount)
		switch k {
		case 3:
			want = 5
		case 6:
			want = 0
		}
		require.Equal(t, want, r.Lane(k), "lane %d", k)
	}
}

func TestSetLaneOverflow(t *testing.T) {
	var r Record
	require.NoError(t, r.SetLane(0, 17))
	err := r.SetLane(0, MaxCount+1)
	require.ErrorIs(t, err, ErrLaneOverflow)
	require.Equal(t, uint32(17), r.Lane(0), "failed SetLane must not modify the record")
}

func TestLaneIndexPanics(t *testing.T) {
	var r Record
	require.Panics(t, func() { _ = r.SetLane(NumHistograms, 1) })
	require.Panics(t, func() { _ = r.Lane(-1) })
}

func TestDecodeRecordAllOnes(t *testing.T) {
	src := make([]byte, RecordSize)
	for i := range src {
		src[i] = 0xFF
	}
	r, err := DecodeRecord(src)
	require.NoError(t, err)
	for k := 0; k < NumHistograms; k++ {
		require.Equal(t, uint32(MaxCount), r.Lane(k))
		require.Equal(t, uint32(MaxCount), LaneOf(src, k))
	}
	enc := r.Bytes()
	require.Equal(t, src, enc[:])
}

func TestDecodeRecordTruncated(t *testing.T) {
	_, err := DecodeRecord(make([]byte, RecordSize-1))
	require.ErrorIs(t, err, ErrTruncated)
}

func TestRecordAt(t *testing.T) {
	packed := make([]byte, PackedSize)
	packed[RecordSize*5] = 0xAB

	rec, ok := RecordAt(packed, 5)
	require.True(t, ok)
	require.Len(t, rec, RecordSize)
	require.Equal(t, byte(0xAB), rec[0])

	last, ok := RecordAt(packed, NumBins-1)
	require.True(t, ok)
	require.Len(t, last, RecordSize)

	_, ok = RecordAt(packed, NumBins)
	require.False(t, ok)
	_, ok = RecordAt(packed[:PackedSize-1], NumBins-1)
	require.False(t, ok)
}

func BenchmarkLaneOf(b *testing.B) {
	src := bigRecord([NumHistograms]uint32{1, 2, 3, 4, 5, 6, 7, 8})
	var sink uint32
	for i := 0; i < b.N; i++ {
		sink += LaneOf(src[:], i&(NumHistograms-1))
	}
	_ = sink
}
