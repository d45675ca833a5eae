package region

import (
	"fmt"
	"iter"
	"log/slog"

	"github.com/arloliu/mcnbt/errs"
	"github.com/arloliu/mcnbt/section"
)

// Position is a slot coordinate within a region.
type Position struct {
	X, Z int
}

// Region holds the up to 1024 chunks of a region file, indexed x + z*32.
//
// A Region keeps no on-disk layout: Write recomputes sector offsets from
// scratch every time.
//
// Note: Region is NOT thread-safe.
type Region struct {
	chunks   [section.SlotCount]*Chunk
	logger   *slog.Logger
	maxDepth int
	maxSize  int
}

// New creates an empty region.
func New(opts ...Option) (*Region, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	return &Region{logger: cfg.logger, maxDepth: cfg.maxDepth, maxSize: cfg.maxSize}, nil
}

// FromChunks creates a region holding chunks. A later chunk replaces an earlier
// one at the same position.
func FromChunks(chunks []*Chunk, opts ...Option) (*Region, error) {
	r, err := New(opts...)
	if err != nil {
		return nil, err
	}
	for _, c := range chunks {
		if err := r.SetChunk(c); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Read parses a region file.
//
// Slot parsing is lenient: a slot whose payload lies outside data, has a zero
// length or an unknown compression id is skipped and logged at debug level.
// Payloads are copied, so data may be reused after Read returns.
//
// Returns:
//   - *Region: The parsed region (empty for empty data)
//   - error: errs.ErrInvalidHeader when data is shorter than the 8KiB header
func Read(data []byte, opts ...Option) (*Region, error) {
	r, err := New(opts...)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return r, nil
	}
	if len(data) < section.HeaderSize {
		return nil, fmt.Errorf("%w: region is %d bytes, header needs %d", errs.ErrInvalidHeader, len(data), section.HeaderSize)
	}

	for index := range section.SlotCount {
		loc, _ := section.ParseLocation(data[index*section.LocationEntrySize:])
		if loc.Count == 0 {
			continue
		}

		x, z := section.SlotCoords(index)
		chunk, reason := r.readSlot(data, index, loc)
		if chunk == nil {
			r.logger.Debug("skipping region slot",
				slog.Int("x", x), slog.Int("z", z),
				slog.Uint64("sector", uint64(loc.Offset)),
				slog.String("reason", reason))

			continue
		}
		r.chunks[index] = chunk
	}

	r.logger.Debug("read region", slog.Int("bytes", len(data)), slog.Int("chunks", r.Len()))

	return r, nil
}

func (r *Region) readSlot(data []byte, index int, loc section.LocationEntry) (*Chunk, string) {
	if loc.Offset < section.HeaderSectors {
		return nil, "payload offset inside header"
	}

	start := loc.ByteOffset()
	if start+section.PayloadHeaderSize > len(data) {
		return nil, "payload header beyond end of file"
	}

	hdr, _ := section.ParsePayloadHeader(data[start:])
	n := hdr.PayloadLen()
	if hdr.Length == 0 {
		return nil, "zero payload length"
	}
	payloadStart := start + section.PayloadHeaderSize
	if n > len(data)-payloadStart {
		return nil, "payload beyond end of file"
	}
	if !hdr.Compression.Valid() {
		return nil, fmt.Sprintf("unknown compression id %d", uint8(hdr.Compression))
	}

	x, z := section.SlotCoords(index)
	raw := make([]byte, n)
	copy(raw, data[payloadStart:payloadStart+n])

	return &Chunk{
		x:           x,
		z:           z,
		compression: hdr.Compression,
		timestamp:   section.ReadTimestamp(data, index),
		raw:         raw,
		maxDepth:    r.maxDepth,
		maxSize:     r.maxSize,
	}, ""
}

// SectorCount returns the number of sectors Write produces, header included.
// Chunks with pending edits are counted at their size as of the last Sync.
func (r *Region) SectorCount() int {
	total := section.HeaderSectors
	for _, c := range r.chunks {
		if c != nil {
			total += c.Sectors()
		}
	}

	return total
}

// Write serializes the region. Every chunk is synced first, so edits made
// through Chunk.Document or Chunk.Root are written. Chunks are laid out
// contiguously from sector 2 in slot order, each padded to a whole number of
// sectors.
//
// Returns:
//   - []byte: The region file (exactly SectorCount()*4096 bytes)
//   - error: errs.ErrChunkTooLarge when a chunk needs more than 255 sectors,
//     errs.ErrRegionTooLarge when offsets overflow 24 bits, or the encoding
//     error of a chunk that failed to sync
func (r *Region) Write() ([]byte, error) {
	for _, c := range r.chunks {
		if c == nil {
			continue
		}
		if err := c.Sync(); err != nil {
			return nil, fmt.Errorf("sync chunk (%d,%d): %w", c.x, c.z, err)
		}
	}

	total := r.SectorCount()
	if total-1 > section.MaxSectorOffset {
		return nil, fmt.Errorf("%w: %d sectors", errs.ErrRegionTooLarge, total)
	}

	out := make([]byte, total*section.SectorSize)

	offset := section.HeaderSectors
	for index, c := range r.chunks {
		if c == nil {
			continue
		}

		sectors := c.Sectors()
		if sectors > section.MaxSectorCount {
			return nil, fmt.Errorf("%w: chunk (%d,%d) needs %d sectors", errs.ErrChunkTooLarge, c.x, c.z, sectors)
		}

		loc := section.LocationEntry{Offset: uint32(offset), Count: uint8(sectors)} //nolint:gosec
		loc.WriteToSlice(out[index*section.LocationEntrySize:])
		section.WriteTimestamp(out, index, c.timestamp)

		start := offset * section.SectorSize
		section.NewPayloadHeader(len(c.raw), c.compression).WriteToSlice(out[start:])
		copy(out[start+section.PayloadHeaderSize:], c.raw)

		offset += sectors
	}

	r.logger.Debug("wrote region", slog.Int("chunks", r.Len()), slog.Int("sectors", total))

	return out, nil
}

// Chunk returns the chunk at (x, z), or nil when the slot is empty.
func (r *Region) Chunk(x, z int) (*Chunk, error) {
	if !section.ValidCoords(x, z) {
		return nil, errs.InvalidCoordinates(x, z)
	}

	return r.chunks[section.SlotIndex(x, z)], nil
}

// SetChunk stores c at its own position, replacing any existing chunk.
func (r *Region) SetChunk(c *Chunk) error {
	if c == nil {
		return fmt.Errorf("set chunk: %w", errs.ErrNilTag)
	}
	if !section.ValidCoords(c.x, c.z) {
		return errs.InvalidCoordinates(c.x, c.z)
	}
	r.chunks[section.SlotIndex(c.x, c.z)] = c

	return nil
}

// RemoveChunk clears the slot at (x, z) and returns the chunk that was there,
// or nil when it was empty.
func (r *Region) RemoveChunk(x, z int) (*Chunk, error) {
	if !section.ValidCoords(x, z) {
		return nil, errs.InvalidCoordinates(x, z)
	}
	index := section.SlotIndex(x, z)
	c := r.chunks[index]
	r.chunks[index] = nil

	return c, nil
}

// Positions returns the coordinates of all occupied slots in slot order.
func (r *Region) Positions() []Position {
	out := make([]Position, 0, r.Len())
	for _, c := range r.chunks {
		if c != nil {
			out = append(out, Position{X: c.x, Z: c.z})
		}
	}

	return out
}

// All iterates the occupied slots in slot order.
func (r *Region) All() iter.Seq[*Chunk] {
	return func(yield func(*Chunk) bool) {
		for _, c := range r.chunks {
			if c != nil && !yield(c) {
				return
			}
		}
	}
}

// Len returns the number of occupied slots.
func (r *Region) Len() int {
	n := 0
	for _, c := range r.chunks {
		if c != nil {
			n++
		}
	}

	return n
}

// IsEmpty reports whether no slot is occupied.
func (r *Region) IsEmpty() bool {
	return r.Len() == 0
}

// Equal reports whether both regions hold equal chunks in every slot.
func (r *Region) Equal(other *Region) bool {
	if r == nil || other == nil {
		return r == other
	}
	for i := range r.chunks {
		if !r.chunks[i].Equal(other.chunks[i]) {
			return false
		}
	}

	return true
}
