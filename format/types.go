// Package format defines the wire discriminants shared by every mcnbt package:
// tag type ids, payload compression kinds and byte order.
package format

type (
	TagType         uint8
	CompressionType uint8
	ByteOrder       uint8
)

const (
	TagEnd       TagType = 0x0 // TagEnd terminates a compound; never a real value.
	TagByte      TagType = 0x1 // TagByte is a signed 8-bit integer.
	TagShort     TagType = 0x2 // TagShort is a signed 16-bit integer.
	TagInt       TagType = 0x3 // TagInt is a signed 32-bit integer.
	TagLong      TagType = 0x4 // TagLong is a signed 64-bit integer.
	TagFloat     TagType = 0x5 // TagFloat is a 32-bit IEEE float.
	TagDouble    TagType = 0x6 // TagDouble is a 64-bit IEEE float.
	TagByteArray TagType = 0x7 // TagByteArray is a length-prefixed sequence of signed bytes.
	TagString    TagType = 0x8 // TagString is a u16 length-prefixed UTF-8 string.
	TagList      TagType = 0x9 // TagList is a homogeneous sequence of tags.
	TagCompound  TagType = 0xA // TagCompound is a name to tag mapping.
	TagIntArray  TagType = 0xB // TagIntArray is a length-prefixed sequence of 32-bit integers.
	TagLongArray TagType = 0xC // TagLongArray is a length-prefixed sequence of 64-bit integers.

	// MaxTagType is the largest valid tag type id.
	MaxTagType = TagLongArray
)

const (
	CompressionNone CompressionType = 0x0 // CompressionNone represents an uncompressed payload.
	CompressionGzip CompressionType = 0x1 // CompressionGzip represents a gzip (RFC 1952) envelope.
	CompressionZlib CompressionType = 0x2 // CompressionZlib represents a zlib (RFC 1950) envelope.
	CompressionLZ4  CompressionType = 0x3 // CompressionLZ4 represents an LZ4 frame.
	CompressionZstd CompressionType = 0x4 // CompressionZstd represents a Zstandard frame.
	// CompressionLZ4Block represents the lz4-java LZ4Block stream used by region
	// compression id 4.
	CompressionLZ4Block CompressionType = 0x5
)

const (
	BigEndian    ByteOrder = 0x0 // BigEndian is the canonical (Java Edition) byte order.
	LittleEndian ByteOrder = 0x1 // LittleEndian is the Bedrock Edition byte order.
)

// Valid reports whether t is one of the 13 defined tag types.
func (t TagType) Valid() bool {
	return t <= MaxTagType
}

// IsNumeric reports whether t is an integer or floating point scalar.
func (t TagType) IsNumeric() bool {
	return t >= TagByte && t <= TagDouble
}

// FixedSize returns the encoded payload size of a scalar tag type and true,
// or 0 and false for variable-length types.
func (t TagType) FixedSize() (int, bool) {
	switch t {
	case TagEnd:
		return 0, true
	case TagByte:
		return 1, true
	case TagShort:
		return 2, true
	case TagInt, TagFloat:
		return 4, true
	case TagLong, TagDouble:
		return 8, true
	default:
		return 0, false
	}
}

func (t TagType) String() string {
	switch t {
	case TagEnd:
		return "End"
	case TagByte:
		return "Byte"
	case TagShort:
		return "Short"
	case TagInt:
		return "Int"
	case TagLong:
		return "Long"
	case TagFloat:
		return "Float"
	case TagDouble:
		return "Double"
	case TagByteArray:
		return "ByteArray"
	case TagString:
		return "String"
	case TagList:
		return "List"
	case TagCompound:
		return "Compound"
	case TagIntArray:
		return "IntArray"
	case TagLongArray:
		return "LongArray"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionGzip:
		return "Gzip"
	case CompressionZlib:
		return "Zlib"
	case CompressionLZ4:
		return "LZ4"
	case CompressionZstd:
		return "Zstd"
	case CompressionLZ4Block:
		return "LZ4Block"
	default:
		return "Unknown"
	}
}

func (b ByteOrder) String() string {
	switch b {
	case BigEndian:
		return "BigEndian"
	case LittleEndian:
		return "LittleEndian"
	default:
		return "Unknown"
	}
}
