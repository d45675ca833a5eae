package mcnbt

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/mcnbt/document"
	"github.com/arloliu/mcnbt/format"
	"github.com/arloliu/mcnbt/nbt"
	"github.com/arloliu/mcnbt/region"
)

// TestReadWrite verifies a document survives Write and Read with its compression.
func TestReadWrite(t *testing.T) {
	root := NewCompound()
	root.Set("foo", nbt.String("Hello!"))

	for _, ct := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionGzip,
		format.CompressionZlib,
		format.CompressionLZ4,
		format.CompressionLZ4Block,
		format.CompressionZstd,
	} {
		t.Run(ct.String(), func(t *testing.T) {
			doc, err := document.New("", root, document.WithCompression(ct))
			require.NoError(t, err)

			data, err := Write(doc)
			require.NoError(t, err)
			require.Equal(t, ct, DetectCompression(data))

			back, err := Read(data)
			require.NoError(t, err)
			require.Equal(t, ct, back.Compression)
			require.Equal(t, "Hello!", back.GetString("foo"))
		})
	}
}

// TestReadFields verifies only the requested entries are decoded.
func TestReadFields(t *testing.T) {
	root := NewCompound()
	root.Set("a", nbt.Int(1))
	root.Set("b", nbt.String("skip me"))
	root.Set("c", nbt.LongArray{1, 2, 3})

	doc, err := document.New("", root)
	require.NoError(t, err)
	data, err := Write(doc)
	require.NoError(t, err)

	partial, err := ReadFields(data, []string{"c", "a"})
	require.NoError(t, err)
	require.Equal(t, []string{"a", "c"}, partial.Root.Keys())
	require.False(t, partial.Root.Has("b"))
}

// TestRegionRoundTrip verifies the region wrappers.
func TestRegionRoundTrip(t *testing.T) {
	root := NewCompound()
	root.Set("Status", nbt.String("minecraft:full"))
	doc, err := document.New("", root, document.WithCompression(format.CompressionZlib))
	require.NoError(t, err)

	c, err := region.NewChunkFromDocument(7, 9, doc, 1000)
	require.NoError(t, err)
	r, err := region.FromChunks([]*region.Chunk{c})
	require.NoError(t, err)

	data, err := WriteRegion(r)
	require.NoError(t, err)

	back, err := ReadRegion(data)
	require.NoError(t, err)
	require.True(t, r.Equal(back))
}

// TestDetectCompression_Raw verifies an uncompressed document is not mistaken for an envelope.
func TestDetectCompression_Raw(t *testing.T) {
	require.Equal(t, format.CompressionNone, DetectCompression([]byte{10, 0, 0, 0}))
	require.Equal(t, format.CompressionNone, DetectCompression(nil))
}
