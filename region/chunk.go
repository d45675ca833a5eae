package region

import (
	"bytes"

	"github.com/arloliu/mcnbt/compress"
	"github.com/arloliu/mcnbt/document"
	"github.com/arloliu/mcnbt/encoding"
	"github.com/arloliu/mcnbt/errs"
	"github.com/arloliu/mcnbt/internal/hash"
	"github.com/arloliu/mcnbt/nbt"
	"github.com/arloliu/mcnbt/section"
)

// Chunk is one occupied slot of a region: the compressed payload together with
// its position, compression id and modification time.
//
// The decoded document is built lazily on the first call to Document or Root
// and cached. Callers may edit the returned tree in place; once it has been
// handed out, Sync (called by Region.Write) re-encodes the payload from it.
// Until then RawData, Size, Checksum and Equal describe the payload as of the
// last Sync or Set call.
//
// Note: Chunk is NOT thread-safe, including the lazy decode.
type Chunk struct {
	x, z        int
	compression section.CompressionID
	timestamp   uint32
	raw         []byte
	cached      *document.Document
	shared      bool
	maxDepth    int
	maxSize     int
}

// NewChunk creates a chunk from an already compressed payload. The chunk takes
// ownership of raw.
//
// Parameters:
//   - x, z: Slot coordinates in [0, 32)
//   - id: Region compression id of raw
//   - timestamp: Modification time in seconds since the Unix epoch
//   - raw: Compressed NBT document
//
// Returns:
//   - *Chunk: The chunk
//   - error: CoordinatesError or errs.ErrUnsupportedCompression
func NewChunk(x, z int, id section.CompressionID, timestamp uint32, raw []byte) (*Chunk, error) {
	if !section.ValidCoords(x, z) {
		return nil, errs.InvalidCoordinates(x, z)
	}
	if _, err := id.CompressionType(); err != nil {
		return nil, err
	}

	return &Chunk{
		x:           x,
		z:           z,
		compression: id,
		timestamp:   timestamp,
		raw:         raw,
		maxDepth:    encoding.DefaultMaxDepth,
		maxSize:     compress.DefaultMaxDecompressedSize,
	}, nil
}

// NewChunkFromDocument encodes doc with its own compression and wraps it in a
// chunk. The chunk caches a copy of doc, so later changes to doc do not reach it.
func NewChunkFromDocument(x, z int, doc *document.Document, timestamp uint32) (*Chunk, error) {
	if !section.ValidCoords(x, z) {
		return nil, errs.InvalidCoordinates(x, z)
	}

	c := &Chunk{
		x:         x,
		z:         z,
		timestamp: timestamp,
		maxDepth:  encoding.DefaultMaxDepth,
		maxSize:   compress.DefaultMaxDecompressedSize,
	}
	if err := c.SetDocument(doc); err != nil {
		return nil, err
	}

	return c, nil
}

// X returns the slot x coordinate.
func (c *Chunk) X() int { return c.x }

// Z returns the slot z coordinate.
func (c *Chunk) Z() int { return c.z }

// Compression returns the region compression id of the payload.
func (c *Chunk) Compression() section.CompressionID { return c.compression }

// Timestamp returns the modification time.
func (c *Chunk) Timestamp() uint32 { return c.timestamp }

// SetTimestamp replaces the modification time.
func (c *Chunk) SetTimestamp(ts uint32) { c.timestamp = ts }

// RawData returns the compressed payload. The slice must not be modified.
func (c *Chunk) RawData() []byte { return c.raw }

// Size returns the compressed payload length in bytes.
func (c *Chunk) Size() int { return len(c.raw) }

// Sectors returns the number of sectors the chunk occupies when written.
func (c *Chunk) Sectors() int { return section.SectorsFor(len(c.raw)) }

// Checksum returns the xxHash64 of the compressed payload. Two chunks with
// equal checksums almost certainly hold identical payloads.
func (c *Chunk) Checksum() uint64 {
	return hash.Sum64(c.raw)
}

// Document returns the decoded chunk document, decoding and caching it on the
// first call. Edits made to the returned document are written back by Sync.
func (c *Chunk) Document() (*document.Document, error) {
	if c.cached == nil {
		doc, err := c.decode()
		if err != nil {
			return nil, err
		}
		c.cached = doc
	}
	c.shared = true

	return c.cached, nil
}

// Root returns the root compound of the cached document. Edits made to the
// returned compound are written back by Sync.
func (c *Chunk) Root() (*nbt.Compound, error) {
	doc, err := c.Document()
	if err != nil {
		return nil, err
	}

	return doc.Root, nil
}

// DecodeRoot decodes the payload into a fresh root compound without touching
// the cache.
func (c *Chunk) DecodeRoot() (*nbt.Compound, error) {
	doc, err := c.decode()
	if err != nil {
		return nil, err
	}

	return doc.Root, nil
}

// IsCached reports whether the document has been decoded and cached.
func (c *Chunk) IsCached() bool {
	return c.cached != nil
}

func (c *Chunk) decode() (*document.Document, error) {
	ct, err := c.compression.CompressionType()
	if err != nil {
		return nil, err
	}

	return document.DecodeWithCompression(c.raw, ct, c.decodeOptions()...)
}

func (c *Chunk) decodeOptions() []document.Option {
	return []document.Option{
		document.WithMaxDepth(c.maxDepth),
		document.WithMaxDecompressedSize(c.maxSize),
	}
}

// Sync re-encodes the payload from the cached document when Document or Root
// has handed it out. It is a no-op otherwise. On error the payload is left
// unchanged.
func (c *Chunk) Sync() error {
	if c.cached == nil || !c.shared {
		return nil
	}

	id, raw, err := encodeDocument(c.cached)
	if err != nil {
		return err
	}
	c.compression = id
	c.raw = raw

	return nil
}

func encodeDocument(doc *document.Document) (section.CompressionID, []byte, error) {
	id, err := section.CompressionIDFor(doc.Compression)
	if err != nil {
		return 0, nil, err
	}
	raw, err := doc.Encode()
	if err != nil {
		return 0, nil, err
	}

	return id, raw, nil
}

// SetDocument re-encodes the chunk from doc using doc's compression, which must
// have a region compression id. The chunk caches a copy of doc. On error the
// chunk is left unchanged.
func (c *Chunk) SetDocument(doc *document.Document) error {
	if doc == nil {
		return errs.ErrNilTag
	}
	id, raw, err := encodeDocument(doc)
	if err != nil {
		return err
	}

	c.compression = id
	c.raw = raw
	c.cached = doc.Clone()
	c.shared = false

	return nil
}

// SetRoot replaces the chunk's root compound, keeping the current compression
// and root name. When the payload has not been decoded, the name is read from
// its header; a payload whose header cannot be read gets an empty name.
func (c *Chunk) SetRoot(root *nbt.Compound) error {
	ct, err := c.compression.CompressionType()
	if err != nil {
		return err
	}

	var name string
	if c.cached != nil {
		name = c.cached.Name
	} else if n, nameErr := document.DecodeName(c.raw, ct, c.decodeOptions()...); nameErr == nil {
		name = n
	}

	doc, err := document.New(name, root, document.WithCompression(ct), document.WithMaxDepth(c.maxDepth))
	if err != nil {
		return err
	}

	return c.SetDocument(doc)
}

// Clone returns a copy of the chunk with its own payload as of the last Sync.
// The decode cache is not copied.
func (c *Chunk) Clone() *Chunk {
	return &Chunk{
		x:           c.x,
		z:           c.z,
		compression: c.compression,
		timestamp:   c.timestamp,
		raw:         bytes.Clone(c.raw),
		maxDepth:    c.maxDepth,
		maxSize:     c.maxSize,
	}
}

// Equal reports whether two chunks have the same position, compression,
// timestamp and payload bytes. The decode cache is ignored.
func (c *Chunk) Equal(other *Chunk) bool {
	if c == nil || other == nil {
		return c == other
	}

	return c.x == other.x &&
		c.z == other.z &&
		c.compression == other.compression &&
		c.timestamp == other.timestamp &&
		bytes.Equal(c.raw, other.raw)
}
