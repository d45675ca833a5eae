// Package endian provides the byte order engines used by the NBT reader and writer.
//
// This package combines encoding/binary's ByteOrder and AppendByteOrder interfaces
// into a single EndianEngine so the codec can both decode fixed-width fields in place
// and append them to an output buffer without temporary slices.
//
// # Basic Usage
//
// Java Edition documents and region files are big-endian, which is the default
// everywhere in mcnbt:
//
//	engine := endian.GetBigEndianEngine()
//	v := int32(engine.Uint32(buf[0:4]))
//
// Bedrock Edition documents use little-endian:
//
//	engine := endian.ForByteOrder(format.LittleEndian)
//	buf = engine.AppendUint16(buf, uint16(len(name)))
//
// # Thread Safety
//
// All functions and methods in this package are safe for concurrent use.
// The returned EndianEngine instances are immutable and stateless.
package endian

import (
	"encoding/binary"

	"github.com/arloliu/mcnbt/format"
)

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
//
// This interface is satisfied by binary.LittleEndian and binary.BigEndian from
// the standard library.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// ForByteOrder returns the engine for the given wire byte order.
// Unknown values fall back to big-endian, the canonical NBT order.
func ForByteOrder(order format.ByteOrder) EndianEngine {
	if order == format.LittleEndian {
		return binary.LittleEndian
	}

	return binary.BigEndian
}

// ByteOrderOf maps an engine back to its wire byte order.
func ByteOrderOf(engine EndianEngine) format.ByteOrder {
	if engine == binary.LittleEndian {
		return format.LittleEndian
	}

	return format.BigEndian
}
