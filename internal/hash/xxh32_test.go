package hash

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/require"
)

func TestSum32_KnownValues(t *testing.T) {
	require.Equal(t, uint32(0x02CC5D05), Sum32(nil, 0))
	require.Equal(t, uint32(0x32D153FF), Sum32([]byte("abc"), 0))
}

// An LZ4 frame ends with the unseeded xxHash32 of its content, which gives an
// independent reference for every length class of the hash.
func TestSum32_MatchesLZ4FrameChecksum(t *testing.T) {
	for _, n := range []int{1, 3, 4, 15, 16, 17, 31, 64, 1000, 70_000} {
		data := make([]byte, n)
		for i := range data {
			data[i] = byte(i*7 + i/13)
		}

		var buf bytes.Buffer
		w := lz4.NewWriter(&buf)
		_, err := w.Write(data)
		require.NoError(t, err)
		require.NoError(t, w.Close())

		frame := buf.Bytes()
		want := binary.LittleEndian.Uint32(frame[len(frame)-4:])
		require.Equal(t, want, Sum32(data, 0), "length %d", n)
	}
}

func TestSum32_SeedMatters(t *testing.T) {
	data := []byte("minecraft:stone")
	require.NotEqual(t, Sum32(data, 0), Sum32(data, 0x9747B28C))
}

func BenchmarkSum32_Block(b *testing.B) {
	payload := make([]byte, 64<<10)
	b.SetBytes(int64(len(payload)))

	for b.Loop() {
		Sum32(payload, 0x9747B28C)
	}
}
