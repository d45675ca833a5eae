package document

import (
	"fmt"

	"github.com/arloliu/mcnbt/compress"
	"github.com/arloliu/mcnbt/encoding"
	"github.com/arloliu/mcnbt/errs"
	"github.com/arloliu/mcnbt/format"
	"github.com/arloliu/mcnbt/nbt"
)

// Document is a complete NBT file: a named root compound together with the
// envelope and byte order it is stored with.
//
// Note: Document is NOT thread-safe. Concurrent reads are fine; any mutation of
// Root must be synchronized by the caller.
type Document struct {
	Name        string
	Root        *nbt.Compound
	Compression format.CompressionType
	ByteOrder   format.ByteOrder

	maxDepth int
}

// New creates a document around root. A nil root becomes an empty compound.
//
// Parameters:
//   - name: Root tag name, usually empty
//   - root: Root compound
//   - opts: WithCompression, byte order and depth options
//
// Returns:
//   - *Document: The document
//   - error: Invalid option values
func New(name string, root *nbt.Compound, opts ...Option) (*Document, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}
	if root == nil {
		root = nbt.NewCompound()
	}

	return &Document{
		Name:        name,
		Root:        root,
		Compression: cfg.compression,
		ByteOrder:   cfg.byteOrder,
		maxDepth:    cfg.maxDepth,
	}, nil
}

// Decode detects the envelope of data, decompresses it and decodes the document.
//
// Example:
//
//	doc, err := document.Decode(levelDat)
//	if err != nil {
//	    return err
//	}
//	name := doc.GetString("LevelName")
func Decode(data []byte, opts ...Option) (*Document, error) {
	return decode(data, compress.Detect(data), nil, opts)
}

// DecodeWithCompression decodes data using an explicit envelope instead of
// detecting it.
func DecodeWithCompression(data []byte, ct format.CompressionType, opts ...Option) (*Document, error) {
	return decode(data, ct, nil, opts)
}

// DecodeFields decodes only the named top-level entries of the root compound.
// Other entries are skipped without being built. An empty fields list decodes
// the whole document.
//
// When decoding fails part way, the document holding the entries decoded so far
// is returned together with the error.
func DecodeFields(data []byte, fields []string, opts ...Option) (*Document, error) {
	if len(fields) == 0 {
		return Decode(data, opts...)
	}

	return decode(data, compress.Detect(data), fields, opts)
}

func decode(data []byte, ct format.CompressionType, fields []string, opts []Option) (*Document, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	raw, err := compress.DecompressLimit(data, ct, cfg.maxSize)
	if err != nil {
		return nil, fmt.Errorf("decompress %s document: %w", ct, err)
	}

	r, err := encoding.NewReader(raw, cfg.codecOptions()...)
	if err != nil {
		return nil, err
	}

	doc := &Document{
		Compression: ct,
		ByteOrder:   cfg.byteOrder,
		maxDepth:    cfg.maxDepth,
	}
	if fields == nil {
		doc.Name, doc.Root, err = r.ReadRoot()
		if err != nil {
			return nil, err
		}

		return doc, nil
	}

	doc.Name, doc.Root, err = r.ReadRootSelective(fields)

	return doc, err
}

// DecodeName decodes only the root name of data stored with envelope ct.
func DecodeName(data []byte, ct format.CompressionType, opts ...Option) (string, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return "", err
	}

	raw, err := compress.DecompressLimit(data, ct, cfg.maxSize)
	if err != nil {
		return "", fmt.Errorf("decompress %s document: %w", ct, err)
	}

	r, err := encoding.NewReader(raw, cfg.codecOptions()...)
	if err != nil {
		return "", err
	}

	return r.ReadRootName()
}

// Find decodes a single top-level entry of the document in data, skipping
// every other entry.
//
// Returns:
//   - nbt.Tag: The entry, nil when absent
//   - bool: Whether the entry exists
//   - error: Decompression or framing error
func Find(data []byte, name string, opts ...Option) (nbt.Tag, bool, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, false, err
	}

	ct := compress.Detect(data)
	raw, err := compress.DecompressLimit(data, ct, cfg.maxSize)
	if err != nil {
		return nil, false, fmt.Errorf("decompress %s document: %w", ct, err)
	}

	r, err := encoding.NewReader(raw, cfg.codecOptions()...)
	if err != nil {
		return nil, false, err
	}

	return r.FindPath(name)
}

// Encode serializes the document and wraps it in its envelope.
func (d *Document) Encode() ([]byte, error) {
	raw, release, err := d.encodeRaw()
	if err != nil {
		return nil, err
	}
	defer release()

	if d.Compression == format.CompressionNone {
		out := make([]byte, len(raw))
		copy(out, raw)

		return out, nil
	}

	return compress.Compress(raw, d.Compression)
}

// EncodeUncompressed serializes the document without an envelope.
func (d *Document) EncodeUncompressed() ([]byte, error) {
	raw, release, err := d.encodeRaw()
	if err != nil {
		return nil, err
	}
	defer release()

	out := make([]byte, len(raw))
	copy(out, raw)

	return out, nil
}

func (d *Document) encodeRaw() ([]byte, func(), error) {
	if d == nil {
		return nil, nil, errs.ErrNilTag
	}

	maxDepth := d.maxDepth
	if maxDepth == 0 {
		maxDepth = encoding.DefaultMaxDepth
	}

	w, err := encoding.NewWriter(encoding.WithByteOrder(d.ByteOrder), encoding.WithMaxDepth(maxDepth))
	if err != nil {
		return nil, nil, err
	}
	if err := w.WriteRoot(d.Name, d.Root); err != nil {
		w.Release()
		return nil, nil, err
	}

	return w.Bytes(), w.Release, nil
}

// Get returns the top-level entry name.
func (d *Document) Get(name string) (nbt.Tag, bool) {
	return d.Root.Get(name)
}

// GetString returns the top-level string entry name, or "" when absent or not a string.
func (d *Document) GetString(name string) string {
	return d.Root.GetString(name)
}

// GetNumber returns the top-level numeric entry name as float64, or 0 when
// absent or not numeric.
func (d *Document) GetNumber(name string) float64 {
	return d.Root.GetNumber(name)
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	c := *d
	c.Root = d.Root.Clone()

	return &c
}

// Equal reports whether two documents have the same name and structurally equal
// roots. Envelope and byte order are not compared.
func (d *Document) Equal(other *Document) bool {
	if d == nil || other == nil {
		return d == other
	}

	return d.Name == other.Name && nbt.Equal(d.Root, other.Root)
}
