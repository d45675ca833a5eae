package nbt

import "github.com/arloliu/mcnbt/format"

// Tag is a node of an NBT document tree.
type Tag interface {
	// Type returns the wire type id of the tag.
	Type() format.TagType

	tag()
}

type (
	// End marks the end of a compound on the wire. It is never stored as a value.
	End struct{}
	// Byte is a signed 8-bit integer tag.
	Byte int8
	// Short is a signed 16-bit integer tag.
	Short int16
	// Int is a signed 32-bit integer tag.
	Int int32
	// Long is a signed 64-bit integer tag.
	Long int64
	// Float is a 32-bit IEEE 754 tag.
	Float float32
	// Double is a 64-bit IEEE 754 tag.
	Double float64
	// ByteArray is a sequence of signed bytes.
	ByteArray []int8
	// String is a UTF-8 string tag.
	String string
	// IntArray is a sequence of signed 32-bit integers.
	IntArray []int32
	// LongArray is a sequence of signed 64-bit integers.
	LongArray []int64
)

var (
	_ Tag = End{}
	_ Tag = Byte(0)
	_ Tag = Short(0)
	_ Tag = Int(0)
	_ Tag = Long(0)
	_ Tag = Float(0)
	_ Tag = Double(0)
	_ Tag = ByteArray(nil)
	_ Tag = String("")
	_ Tag = (*List)(nil)
	_ Tag = (*Compound)(nil)
	_ Tag = IntArray(nil)
	_ Tag = LongArray(nil)
)

func (End) Type() format.TagType       { return format.TagEnd }
func (Byte) Type() format.TagType      { return format.TagByte }
func (Short) Type() format.TagType     { return format.TagShort }
func (Int) Type() format.TagType       { return format.TagInt }
func (Long) Type() format.TagType      { return format.TagLong }
func (Float) Type() format.TagType     { return format.TagFloat }
func (Double) Type() format.TagType    { return format.TagDouble }
func (ByteArray) Type() format.TagType { return format.TagByteArray }
func (String) Type() format.TagType    { return format.TagString }
func (IntArray) Type() format.TagType  { return format.TagIntArray }
func (LongArray) Type() format.TagType { return format.TagLongArray }

func (End) tag()       {}
func (Byte) tag()      {}
func (Short) tag()     {}
func (Int) tag()       {}
func (Long) tag()      {}
func (Float) tag()     {}
func (Double) tag()    {}
func (ByteArray) tag() {}
func (String) tag()    {}
func (IntArray) tag()  {}
func (LongArray) tag() {}

// Bool returns a Byte tag holding 1 for true and 0 for false, the NBT
// convention for boolean fields.
func Bool(v bool) Byte {
	if v {
		return 1
	}

	return 0
}

// TypeOf returns the type id of t, or End for a nil tag.
func TypeOf(t Tag) format.TagType {
	if t == nil {
		return format.TagEnd
	}

	return t.Type()
}
