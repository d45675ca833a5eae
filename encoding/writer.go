package encoding

import (
	"fmt"
	"math"

	"github.com/arloliu/mcnbt/endian"
	"github.com/arloliu/mcnbt/errs"
	"github.com/arloliu/mcnbt/format"
	"github.com/arloliu/mcnbt/internal/pool"
	"github.com/arloliu/mcnbt/nbt"
)

const (
	maxStringLen = math.MaxUint16
	maxArrayLen  = math.MaxInt32
)

// Writer encodes NBT values into a pooled buffer.
//
// The zero value is not usable; create writers with NewWriter. Call Release when
// the encoded bytes are no longer needed to return the buffer to the pool.
//
// Note: The Writer is NOT thread-safe.
type Writer struct {
	buf      *pool.ByteBuffer
	engine   endian.EndianEngine
	maxDepth int
}

// NewWriter creates a Writer with an empty pooled buffer.
//
// Parameters:
//   - opts: Byte order and depth options
//
// Returns:
//   - *Writer: Writer ready for encoding
//   - error: Invalid option values
func NewWriter(opts ...Option) (*Writer, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	return &Writer{
		buf:      pool.GetDocumentBuffer(),
		engine:   cfg.engine,
		maxDepth: cfg.maxDepth,
	}, nil
}

// Bytes returns the encoded bytes. The slice is only valid until the next write,
// Reset or Release.
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

// Len returns the number of encoded bytes.
func (w *Writer) Len() int {
	return w.buf.Len()
}

// Reset discards the encoded bytes and keeps the buffer.
func (w *Writer) Reset() {
	w.buf.Reset()
}

// Release returns the buffer to the pool. The writer must not be used afterwards.
func (w *Writer) Release() {
	if w.buf != nil {
		pool.PutDocumentBuffer(w.buf)
		w.buf = nil
	}
}

// ByteOrder returns the wire byte order the writer encodes.
func (w *Writer) ByteOrder() format.ByteOrder {
	return endian.ByteOrderOf(w.engine)
}

// WriteUint8 appends one byte.
func (w *Writer) WriteUint8(v uint8) {
	w.buf.B = append(w.buf.B, v)
}

// WriteUint16 appends a 16-bit unsigned integer.
func (w *Writer) WriteUint16(v uint16) {
	w.buf.B = w.engine.AppendUint16(w.buf.B, v)
}

// WriteInt32 appends a 32-bit signed integer.
func (w *Writer) WriteInt32(v int32) {
	w.buf.B = w.engine.AppendUint32(w.buf.B, uint32(v)) //nolint:gosec
}

// WriteInt64 appends a 64-bit signed integer.
func (w *Writer) WriteInt64(v int64) {
	w.buf.B = w.engine.AppendUint64(w.buf.B, uint64(v)) //nolint:gosec
}

// WriteString appends a u16 length-prefixed string.
func (w *Writer) WriteString(s string) error {
	if len(s) > maxStringLen {
		return fmt.Errorf("%w: %d bytes", errs.ErrStringTooLong, len(s))
	}
	w.WriteUint16(uint16(len(s))) //nolint:gosec
	w.buf.MustWriteString(s)

	return nil
}

func (w *Writer) writeLen(n int) error {
	if n > maxArrayLen {
		return fmt.Errorf("%w: %d elements", errs.ErrArrayTooLong, n)
	}
	w.WriteInt32(int32(n)) //nolint:gosec

	return nil
}

func (w *Writer) enter(depth int) error {
	if depth+1 > w.maxDepth {
		return fmt.Errorf("%w: limit %d", errs.ErrMaxDepthExceeded, w.maxDepth)
	}

	return nil
}

// WriteTag appends the payload of t without a type byte or name.
//
// On error the buffer holds a partial encoding; Reset before reusing the writer.
func (w *Writer) WriteTag(t nbt.Tag) error {
	return w.writeTag(t, 0)
}

// WriteNamedTag appends a type byte, a name and the payload of t, the layout
// used for compound entries and document roots.
func (w *Writer) WriteNamedTag(name string, t nbt.Tag) error {
	return w.writeNamed(name, t, 0)
}

func (w *Writer) writeNamed(name string, t nbt.Tag, depth int) error {
	if t == nil {
		return fmt.Errorf("entry %q: %w", name, errs.ErrNilTag)
	}
	if t.Type() == format.TagEnd {
		return fmt.Errorf("entry %q: End is not a value: %w", name, errs.InvalidTagType(0))
	}
	w.WriteUint8(uint8(t.Type()))
	if err := w.WriteString(name); err != nil {
		return err
	}

	return w.writeTag(t, depth)
}

// WriteRoot appends a complete document: Compound type byte, root name and the
// root compound. A nil root is written as an empty compound.
func (w *Writer) WriteRoot(name string, root *nbt.Compound) error {
	if root == nil {
		root = nbt.NewCompound()
	}

	return w.WriteNamedTag(name, root)
}

func (w *Writer) writeTag(t nbt.Tag, depth int) error {
	switch v := t.(type) {
	case nil:
		return errs.ErrNilTag
	case nbt.End:
		return nil
	case nbt.Byte:
		w.WriteUint8(uint8(v)) //nolint:gosec
	case nbt.Short:
		w.WriteUint16(uint16(v)) //nolint:gosec
	case nbt.Int:
		w.WriteInt32(int32(v))
	case nbt.Long:
		w.WriteInt64(int64(v))
	case nbt.Float:
		w.buf.B = w.engine.AppendUint32(w.buf.B, math.Float32bits(float32(v)))
	case nbt.Double:
		w.buf.B = w.engine.AppendUint64(w.buf.B, math.Float64bits(float64(v)))
	case nbt.ByteArray:
		if err := w.writeLen(len(v)); err != nil {
			return err
		}
		w.buf.Grow(len(v))
		for _, b := range v {
			w.buf.B = append(w.buf.B, byte(b))
		}
	case nbt.String:
		return w.WriteString(string(v))
	case nbt.IntArray:
		if err := w.writeLen(len(v)); err != nil {
			return err
		}
		w.buf.Grow(4 * len(v))
		for _, n := range v {
			w.WriteInt32(n)
		}
	case nbt.LongArray:
		if err := w.writeLen(len(v)); err != nil {
			return err
		}
		w.buf.Grow(8 * len(v))
		for _, n := range v {
			w.WriteInt64(n)
		}
	case *nbt.List:
		return w.writeList(v, depth)
	case *nbt.Compound:
		return w.writeCompound(v, depth)
	default:
		return errs.InvalidTagType(uint8(t.Type()))
	}

	return nil
}

func (w *Writer) writeList(l *nbt.List, depth int) error {
	if err := w.enter(depth); err != nil {
		return err
	}

	// Empty lists keep their declared element type.
	elem := l.ElemType()
	w.WriteUint8(uint8(elem))
	if err := w.writeLen(l.Len()); err != nil {
		return err
	}
	for i, item := range l.All() {
		if item == nil {
			return fmt.Errorf("list item %d: %w", i, errs.ErrNilTag)
		}
		if item.Type() != elem {
			return fmt.Errorf("list item %d: %w: %s in list of %s", i, errs.ErrListTypeMismatch, item.Type(), elem)
		}
		if err := w.writeTag(item, depth+1); err != nil {
			return fmt.Errorf("list item %d: %w", i, err)
		}
	}

	return nil
}

func (w *Writer) writeCompound(c *nbt.Compound, depth int) error {
	if err := w.enter(depth); err != nil {
		return err
	}

	for name, value := range c.All() {
		if err := w.writeNamed(name, value, depth+1); err != nil {
			return fmt.Errorf("compound entry %q: %w", name, err)
		}
	}
	w.WriteUint8(uint8(format.TagEnd))

	return nil
}
