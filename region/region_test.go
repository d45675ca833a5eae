package region

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/mcnbt/document"
	"github.com/arloliu/mcnbt/errs"
	"github.com/arloliu/mcnbt/format"
	"github.com/arloliu/mcnbt/nbt"
	"github.com/arloliu/mcnbt/section"
)

func chunkDoc(t *testing.T, x, z int, ct format.CompressionType) *document.Document {
	t.Helper()

	level := nbt.NewCompound()
	level.Set("xPos", nbt.Int(x))
	level.Set("zPos", nbt.Int(z))
	level.Set("Status", nbt.String("minecraft:full"))
	level.Set("sections", nbt.MustList(format.TagCompound))

	doc, err := document.New("", level, document.WithCompression(ct))
	require.NoError(t, err)

	return doc
}

func newTestChunk(t *testing.T, x, z int, ts uint32) *Chunk {
	t.Helper()

	c, err := NewChunkFromDocument(x, z, chunkDoc(t, x, z, format.CompressionZlib), ts)
	require.NoError(t, err)

	return c
}

func TestRegion_RoundTripTwoChunks(t *testing.T) {
	c0 := newTestChunk(t, 0, 0, 1000)
	c1 := newTestChunk(t, 1, 0, 2000)

	r, err := FromChunks([]*Chunk{c0, c1})
	require.NoError(t, err)

	data, err := r.Write()
	require.NoError(t, err)

	p0 := c0.Size() + section.PayloadHeaderSize
	p1 := c1.Size() + section.PayloadHeaderSize
	wantSectors := 2 + (p0+4095)/4096 + (p1+4095)/4096
	require.Equal(t, wantSectors, r.SectorCount())
	require.Len(t, data, wantSectors*section.SectorSize)

	back, err := Read(data)
	require.NoError(t, err)
	require.Equal(t, 2, back.Len())
	require.Equal(t, []Position{{0, 0}, {1, 0}}, back.Positions())

	got0, err := back.Chunk(0, 0)
	require.NoError(t, err)
	require.Equal(t, uint32(1000), got0.Timestamp())
	require.True(t, c0.Equal(got0))

	got1, err := back.Chunk(1, 0)
	require.NoError(t, err)
	require.Equal(t, uint32(2000), got1.Timestamp())
	require.Equal(t, c1.Checksum(), got1.Checksum())

	root, err := got1.Root()
	require.NoError(t, err)
	require.Equal(t, float64(1), root.GetNumber("xPos"))

	require.True(t, r.Equal(back))
}

func TestRegion_WriteLayout(t *testing.T) {
	c, err := NewChunk(31, 31, section.CompressionIDNone, 0xCAFEBABE, bytes.Repeat([]byte{0xAB}, 5000))
	require.NoError(t, err)

	r, err := FromChunks([]*Chunk{c})
	require.NoError(t, err)

	data, err := r.Write()
	require.NoError(t, err)
	require.Len(t, data, 4*section.SectorSize)

	loc, err := section.ParseLocation(data[1023*4:])
	require.NoError(t, err)
	require.Equal(t, section.LocationEntry{Offset: 2, Count: 2}, loc)
	require.Equal(t, uint32(0xCAFEBABE), section.ReadTimestamp(data, 1023))

	hdr, err := section.ParsePayloadHeader(data[2*section.SectorSize:])
	require.NoError(t, err)
	require.Equal(t, uint32(5001), hdr.Length)
	require.Equal(t, section.CompressionIDNone, hdr.Compression)

	// Padding after the payload is zero.
	end := 2*section.SectorSize + section.PayloadHeaderSize + 5000
	require.Equal(t, make([]byte, len(data)-end), data[end:])
}

func TestRegion_EmptyAndShortInput(t *testing.T) {
	r, err := Read(nil)
	require.NoError(t, err)
	require.True(t, r.IsEmpty())

	_, err = Read(make([]byte, section.HeaderSize-1))
	require.ErrorIs(t, err, errs.ErrInvalidHeader)

	r, err = Read(make([]byte, section.HeaderSize))
	require.NoError(t, err)
	require.True(t, r.IsEmpty())

	empty, err := New()
	require.NoError(t, err)
	data, err := empty.Write()
	require.NoError(t, err)
	require.Len(t, data, section.HeaderSize)
}

func TestRegion_LenientSlots(t *testing.T) {
	good := newTestChunk(t, 0, 0, 1)
	r, err := FromChunks([]*Chunk{good})
	require.NoError(t, err)
	data, err := r.Write()
	require.NoError(t, err)

	corrupt := func(index int, loc section.LocationEntry) []byte {
		out := bytes.Clone(data)
		loc.WriteToSlice(out[index*4:])

		return out
	}

	t.Run("offset beyond file", func(t *testing.T) {
		back, err := Read(corrupt(5, section.LocationEntry{Offset: 999, Count: 1}))
		require.NoError(t, err)
		require.Equal(t, 1, back.Len())
	})

	t.Run("offset inside header", func(t *testing.T) {
		back, err := Read(corrupt(5, section.LocationEntry{Offset: 1, Count: 1}))
		require.NoError(t, err)
		require.Equal(t, 1, back.Len())
	})

	t.Run("truncated payload", func(t *testing.T) {
		back, err := Read(data[:section.HeaderSize+10])
		require.NoError(t, err)
		require.True(t, back.IsEmpty())
	})

	t.Run("zero length", func(t *testing.T) {
		out := bytes.Clone(data)
		copy(out[2*section.SectorSize:], []byte{0, 0, 0, 0})
		back, err := Read(out)
		require.NoError(t, err)
		require.True(t, back.IsEmpty())
	})

	t.Run("unknown compression", func(t *testing.T) {
		out := bytes.Clone(data)
		out[2*section.SectorSize+4] = 99

		var logs bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
		back, err := Read(out, WithLogger(logger))
		require.NoError(t, err)
		require.True(t, back.IsEmpty())
		require.Contains(t, logs.String(), "unknown compression id 99")
	})
}

func TestRegion_CoordinateBounds(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	for _, pos := range []Position{{-1, 0}, {0, -1}, {32, 0}, {0, 32}} {
		_, err := r.Chunk(pos.X, pos.Z)
		require.ErrorIs(t, err, errs.ErrInvalidCoordinates)

		var coordErr *errs.CoordinatesError
		require.ErrorAs(t, err, &coordErr)
		require.Equal(t, pos.X, coordErr.X)

		_, err = r.RemoveChunk(pos.X, pos.Z)
		require.ErrorIs(t, err, errs.ErrInvalidCoordinates)

		_, err = NewChunk(pos.X, pos.Z, section.CompressionIDZlib, 0, nil)
		require.ErrorIs(t, err, errs.ErrInvalidCoordinates)

		_, err = NewChunkFromDocument(pos.X, pos.Z, chunkDoc(t, 0, 0, format.CompressionZlib), 0)
		require.ErrorIs(t, err, errs.ErrInvalidCoordinates)
	}

	c, err := r.Chunk(31, 31)
	require.NoError(t, err)
	require.Nil(t, c)
}

func TestRegion_SetRemove(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	require.NoError(t, r.SetChunk(newTestChunk(t, 3, 4, 1)))
	require.NoError(t, r.SetChunk(newTestChunk(t, 3, 4, 2)))
	require.Equal(t, 1, r.Len())

	c, err := r.Chunk(3, 4)
	require.NoError(t, err)
	require.Equal(t, uint32(2), c.Timestamp())

	removed, err := r.RemoveChunk(3, 4)
	require.NoError(t, err)
	require.Same(t, c, removed)
	require.True(t, r.IsEmpty())

	removed, err = r.RemoveChunk(3, 4)
	require.NoError(t, err)
	require.Nil(t, removed)

	require.ErrorIs(t, r.SetChunk(nil), errs.ErrNilTag)
}

func TestRegion_AllInSlotOrder(t *testing.T) {
	r, err := FromChunks([]*Chunk{
		newTestChunk(t, 5, 1, 0),
		newTestChunk(t, 0, 1, 0),
		newTestChunk(t, 31, 0, 0),
	})
	require.NoError(t, err)

	var got []Position
	for c := range r.All() {
		got = append(got, Position{c.X(), c.Z()})
	}
	require.Equal(t, []Position{{31, 0}, {0, 1}, {5, 1}}, got)
}

func TestRegion_ChunkTooLarge(t *testing.T) {
	c, err := NewChunk(0, 0, section.CompressionIDNone, 0, make([]byte, 255*section.SectorSize))
	require.NoError(t, err)
	require.Equal(t, 256, c.Sectors())

	r, err := FromChunks([]*Chunk{c})
	require.NoError(t, err)

	_, err = r.Write()
	require.ErrorIs(t, err, errs.ErrChunkTooLarge)
}

func TestNew_InvalidOptions(t *testing.T) {
	_, err := New(WithMaxDepth(0))
	require.Error(t, err)

	_, err = Read(nil, WithMaxDepth(-3))
	require.Error(t, err)

	_, err = New(WithMaxDecompressedSize(-1))
	require.Error(t, err)
}

func TestRegion_WriteReturnsFreshBuffer(t *testing.T) {
	r, err := FromChunks([]*Chunk{newTestChunk(t, 0, 0, 1)})
	require.NoError(t, err)

	first, err := r.Write()
	require.NoError(t, err)
	require.Len(t, first, r.SectorCount()*section.SectorSize)
	require.Equal(t, len(first), cap(first))

	snapshot := bytes.Clone(first)
	second, err := r.Write()
	require.NoError(t, err)
	require.NotSame(t, &first[0], &second[0])
	require.Equal(t, snapshot, first)
	require.Equal(t, first, second)
}
