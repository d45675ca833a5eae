package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTagType_Valid(t *testing.T) {
	for tt := TagEnd; tt <= TagLongArray; tt++ {
		require.True(t, tt.Valid(), "tag type %d", tt)
		require.NotEqual(t, "Unknown", tt.String())
	}

	require.False(t, TagType(13).Valid())
	require.False(t, TagType(0xFF).Valid())
	require.Equal(t, "Unknown", TagType(13).String())
}

func TestTagType_FixedSize(t *testing.T) {
	tests := []struct {
		tag   TagType
		size  int
		fixed bool
	}{
		{TagEnd, 0, true},
		{TagByte, 1, true},
		{TagShort, 2, true},
		{TagInt, 4, true},
		{TagLong, 8, true},
		{TagFloat, 4, true},
		{TagDouble, 8, true},
		{TagByteArray, 0, false},
		{TagString, 0, false},
		{TagList, 0, false},
		{TagCompound, 0, false},
		{TagIntArray, 0, false},
		{TagLongArray, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.tag.String(), func(t *testing.T) {
			size, fixed := tt.tag.FixedSize()
			require.Equal(t, tt.size, size)
			require.Equal(t, tt.fixed, fixed)
		})
	}
}

func TestTagType_IsNumeric(t *testing.T) {
	require.False(t, TagEnd.IsNumeric())
	require.True(t, TagByte.IsNumeric())
	require.True(t, TagDouble.IsNumeric())
	require.False(t, TagByteArray.IsNumeric())
	require.False(t, TagString.IsNumeric())
}

func TestCompressionType_String(t *testing.T) {
	require.Equal(t, "None", CompressionNone.String())
	require.Equal(t, "Gzip", CompressionGzip.String())
	require.Equal(t, "Zlib", CompressionZlib.String())
	require.Equal(t, "LZ4", CompressionLZ4.String())
	require.Equal(t, "Zstd", CompressionZstd.String())
	require.Equal(t, "LZ4Block", CompressionLZ4Block.String())
	require.Equal(t, "Unknown", CompressionType(99).String())
}

func TestByteOrder_String(t *testing.T) {
	require.Equal(t, "BigEndian", BigEndian.String())
	require.Equal(t, "LittleEndian", LittleEndian.String())
	require.Equal(t, "Unknown", ByteOrder(7).String())
}
