package encoding

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/arloliu/mcnbt/endian"
	"github.com/arloliu/mcnbt/errs"
	"github.com/arloliu/mcnbt/format"
	"github.com/arloliu/mcnbt/nbt"
)

// Reader decodes NBT values from an immutable byte slice.
//
// Note: The Reader is NOT thread-safe. The input slice must not be modified while
// the reader is in use; returned tags never alias it.
type Reader struct {
	data     []byte
	pos      int
	engine   endian.EndianEngine
	maxDepth int
}

// NewReader creates a Reader positioned at the start of data.
//
// Parameters:
//   - data: Encoded NBT bytes (already decompressed)
//   - opts: Byte order and depth options
//
// Returns:
//   - *Reader: Reader ready for decoding
//   - error: Invalid option values
func NewReader(data []byte, opts ...Option) (*Reader, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	return &Reader{
		data:     data,
		engine:   cfg.engine,
		maxDepth: cfg.maxDepth,
	}, nil
}

// Pos returns the cursor offset.
func (r *Reader) Pos() int {
	return r.pos
}

// Len returns the size of the underlying buffer.
func (r *Reader) Len() int {
	return len(r.data)
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.data) - r.pos
}

// SetPos moves the cursor to an absolute offset within the buffer.
func (r *Reader) SetPos(pos int) error {
	if pos < 0 || pos > len(r.data) {
		return fmt.Errorf("position %d outside [0,%d]: %w", pos, len(r.data), errs.ErrUnexpectedEOF)
	}
	r.pos = pos

	return nil
}

// Reset moves the cursor back to the start of the buffer.
func (r *Reader) Reset() {
	r.pos = 0
}

// ByteOrder returns the wire byte order the reader decodes.
func (r *Reader) ByteOrder() format.ByteOrder {
	return endian.ByteOrderOf(r.engine)
}

func (r *Reader) need(n int) error {
	if n < 0 || len(r.data)-r.pos < n {
		return errs.ErrUnexpectedEOF
	}

	return nil
}

func (r *Reader) advance(n int) error {
	if err := r.need(n); err != nil {
		return err
	}
	r.pos += n

	return nil
}

// ReadBytes returns the next n bytes without copying.
// The returned slice aliases the reader's input.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if err := r.need(n); err != nil {
		return nil, err
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n

	return b, nil
}

// ReadUint8 reads one unsigned byte.
func (r *Reader) ReadUint8() (uint8, error) {
	if r.pos >= len(r.data) {
		return 0, errs.ErrUnexpectedEOF
	}
	v := r.data[r.pos]
	r.pos++

	return v, nil
}

// ReadInt8 reads one signed byte.
func (r *Reader) ReadInt8() (int8, error) {
	v, err := r.ReadUint8()
	return int8(v), err //nolint:gosec
}

// ReadUint16 reads a 16-bit unsigned integer.
func (r *Reader) ReadUint16() (uint16, error) {
	if err := r.need(2); err != nil {
		return 0, err
	}
	v := r.engine.Uint16(r.data[r.pos:])
	r.pos += 2

	return v, nil
}

// ReadInt16 reads a 16-bit signed integer.
func (r *Reader) ReadInt16() (int16, error) {
	v, err := r.ReadUint16()
	return int16(v), err //nolint:gosec
}

// ReadInt32 reads a 32-bit signed integer.
func (r *Reader) ReadInt32() (int32, error) {
	if err := r.need(4); err != nil {
		return 0, err
	}
	v := r.engine.Uint32(r.data[r.pos:])
	r.pos += 4

	return int32(v), nil //nolint:gosec
}

// ReadInt64 reads a 64-bit signed integer.
func (r *Reader) ReadInt64() (int64, error) {
	if err := r.need(8); err != nil {
		return 0, err
	}
	v := r.engine.Uint64(r.data[r.pos:])
	r.pos += 8

	return int64(v), nil //nolint:gosec
}

// ReadFloat32 reads a 32-bit IEEE 754 value from its bit pattern.
func (r *Reader) ReadFloat32() (float32, error) {
	v, err := r.ReadInt32()
	return math.Float32frombits(uint32(v)), err //nolint:gosec
}

// ReadFloat64 reads a 64-bit IEEE 754 value from its bit pattern.
func (r *Reader) ReadFloat64() (float64, error) {
	v, err := r.ReadInt64()
	return math.Float64frombits(uint64(v)), err //nolint:gosec
}

// ReadString reads a u16 length-prefixed UTF-8 string.
// Invalid UTF-8 fails with errs.ErrInvalidUTF8; bytes are never replaced.
func (r *Reader) ReadString() (string, error) {
	b, err := r.readStringBytes()
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", errs.ErrInvalidUTF8
	}

	return string(b), nil
}

func (r *Reader) readStringBytes() ([]byte, error) {
	n, err := r.ReadUint16()
	if err != nil {
		return nil, err
	}

	return r.ReadBytes(int(n))
}

// ReadTagType reads a type id byte and validates it.
func (r *Reader) ReadTagType() (format.TagType, error) {
	b, err := r.ReadUint8()
	if err != nil {
		return format.TagEnd, err
	}
	t := format.TagType(b)
	if !t.Valid() {
		return t, errs.InvalidTagType(b)
	}

	return t, nil
}

// readArrayLen reads an i32 element count, treating it as an unsigned magnitude,
// and checks that count elements of elemSize bytes remain.
func (r *Reader) readArrayLen(elemSize int) (int, error) {
	raw, err := r.ReadInt32()
	if err != nil {
		return 0, err
	}
	n := int(uint32(raw)) //nolint:gosec
	if n > r.Remaining()/elemSize {
		return 0, errs.ErrUnexpectedEOF
	}

	return n, nil
}

// readListHeader reads a list's element type and count, rejecting counts that
// cannot possibly fit in the remaining bytes.
func (r *Reader) readListHeader() (format.TagType, int, error) {
	elem, err := r.ReadTagType()
	if err != nil {
		return elem, 0, err
	}
	raw, err := r.ReadInt32()
	if err != nil {
		return elem, 0, err
	}
	n := int(uint32(raw)) //nolint:gosec
	if n == 0 {
		return elem, 0, nil
	}
	if elem == format.TagEnd {
		return elem, 0, fmt.Errorf("list of %d End elements: %w", n, errs.InvalidTagType(0))
	}
	if n > r.Remaining()/minPayloadSize(elem) {
		return elem, 0, errs.ErrUnexpectedEOF
	}

	return elem, n, nil
}

// minPayloadSize is the smallest possible encoded payload of a tag type.
func minPayloadSize(t format.TagType) int {
	if size, ok := t.FixedSize(); ok {
		return size
	}
	switch t {
	case format.TagString:
		return 2
	case format.TagList:
		return 5
	case format.TagCompound:
		return 1
	default: // arrays
		return 4
	}
}

func (r *Reader) enter(depth int) error {
	if depth+1 > r.maxDepth {
		return fmt.Errorf("%w: limit %d", errs.ErrMaxDepthExceeded, r.maxDepth)
	}

	return nil
}

// ReadTag decodes one payload of type t at the cursor.
//
// Decoding is all-or-nothing: on error no partial tree is returned.
func (r *Reader) ReadTag(t format.TagType) (nbt.Tag, error) {
	return r.readTag(t, 0)
}

func (r *Reader) readTag(t format.TagType, depth int) (nbt.Tag, error) {
	switch t {
	case format.TagEnd:
		return nbt.End{}, nil
	case format.TagByte:
		v, err := r.ReadInt8()
		return nbt.Byte(v), err
	case format.TagShort:
		v, err := r.ReadInt16()
		return nbt.Short(v), err
	case format.TagInt:
		v, err := r.ReadInt32()
		return nbt.Int(v), err
	case format.TagLong:
		v, err := r.ReadInt64()
		return nbt.Long(v), err
	case format.TagFloat:
		v, err := r.ReadFloat32()
		return nbt.Float(v), err
	case format.TagDouble:
		v, err := r.ReadFloat64()
		return nbt.Double(v), err
	case format.TagByteArray:
		return r.readByteArray()
	case format.TagString:
		v, err := r.ReadString()
		return nbt.String(v), err
	case format.TagList:
		return r.readList(depth)
	case format.TagCompound:
		return r.readCompound(depth)
	case format.TagIntArray:
		return r.readIntArray()
	case format.TagLongArray:
		return r.readLongArray()
	default:
		return nil, errs.InvalidTagType(uint8(t))
	}
}

func (r *Reader) readByteArray() (nbt.Tag, error) {
	n, err := r.readArrayLen(1)
	if err != nil {
		return nil, err
	}
	out := make(nbt.ByteArray, n)
	for i, b := range r.data[r.pos : r.pos+n] {
		out[i] = int8(b) //nolint:gosec
	}
	r.pos += n

	return out, nil
}

func (r *Reader) readIntArray() (nbt.Tag, error) {
	n, err := r.readArrayLen(4)
	if err != nil {
		return nil, err
	}
	out := make(nbt.IntArray, n)
	for i := range out {
		out[i] = int32(r.engine.Uint32(r.data[r.pos:])) //nolint:gosec
		r.pos += 4
	}

	return out, nil
}

func (r *Reader) readLongArray() (nbt.Tag, error) {
	n, err := r.readArrayLen(8)
	if err != nil {
		return nil, err
	}
	out := make(nbt.LongArray, n)
	for i := range out {
		out[i] = int64(r.engine.Uint64(r.data[r.pos:])) //nolint:gosec
		r.pos += 8
	}

	return out, nil
}

func (r *Reader) readList(depth int) (nbt.Tag, error) {
	if err := r.enter(depth); err != nil {
		return nil, err
	}
	elem, n, err := r.readListHeader()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nbt.NewList(elem)
	}

	items := make([]nbt.Tag, n)
	for i := range items {
		item, err := r.readTag(elem, depth+1)
		if err != nil {
			return nil, wrapEntry(err, "list item %d", i)
		}
		items[i] = item
	}

	return nbt.NewList(elem, items...)
}

// entryError names the innermost list item or compound entry that failed to
// decode. Enclosing containers pass it through unchanged, so the message stays
// short however deep the failure is.
type entryError struct {
	entry string
	err   error
}

func (e *entryError) Error() string { return e.entry + ": " + e.err.Error() }

func (e *entryError) Unwrap() error { return e.err }

func wrapEntry(err error, format string, args ...any) error {
	if _, ok := err.(*entryError); ok { //nolint:errorlint
		return err
	}

	return &entryError{entry: fmt.Sprintf(format, args...), err: err}
}

func (r *Reader) readCompound(depth int) (nbt.Tag, error) {
	return r.readCompoundEntries(depth)
}

func (r *Reader) readCompoundEntries(depth int) (*nbt.Compound, error) {
	if err := r.enter(depth); err != nil {
		return nil, err
	}

	c := nbt.NewCompound()
	for {
		t, err := r.ReadTagType()
		if err != nil {
			return nil, err
		}
		if t == format.TagEnd {
			return c, nil
		}

		name, err := r.ReadString()
		if err != nil {
			return nil, err
		}
		value, err := r.readTag(t, depth+1)
		if err != nil {
			return nil, wrapEntry(err, "compound entry %q", name)
		}
		c.Set(name, value)
	}
}

// ReadCompound decodes a compound payload at the cursor.
func (r *Reader) ReadCompound() (*nbt.Compound, error) {
	return r.readCompoundEntries(0)
}

// ReadRoot decodes a complete document: the root type byte, the root name and
// the root compound. A root of any other type fails with errs.ErrInvalidHeader.
func (r *Reader) ReadRoot() (string, *nbt.Compound, error) {
	name, err := r.readRootHeader()
	if err != nil {
		return "", nil, err
	}
	root, err := r.readCompoundEntries(0)
	if err != nil {
		return "", nil, err
	}

	return name, root, nil
}

// ReadRootName reads only the root type byte and root name, leaving the cursor
// at the start of the root compound payload.
func (r *Reader) ReadRootName() (string, error) {
	return r.readRootHeader()
}

func (r *Reader) readRootHeader() (string, error) {
	b, err := r.ReadUint8()
	if err != nil {
		return "", err
	}
	if t := format.TagType(b); t != format.TagCompound {
		return "", fmt.Errorf("%w: root tag type %d (%s), expected Compound", errs.ErrInvalidHeader, b, t)
	}

	return r.ReadString()
}
