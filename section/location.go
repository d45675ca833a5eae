package section

import (
	"github.com/arloliu/mcnbt/endian"
	"github.com/arloliu/mcnbt/errs"
)

// LocationEntry is one slot of the region location table.
//
// Layout (4 bytes, big-endian):
//
//	Bytes | Field  | Description
//	------|--------|------------------------------------------
//	0-2   | Offset | first sector of the payload, from file start
//	3     | Count  | sectors allocated to the payload
//
// An all-zero entry marks an empty slot.
type LocationEntry struct {
	Offset uint32
	Count  uint8
}

// ParseLocation decodes a location entry from the first 4 bytes of data.
func ParseLocation(data []byte) (LocationEntry, error) {
	if len(data) < LocationEntrySize {
		return LocationEntry{}, errs.ErrUnexpectedEOF
	}

	return LocationEntry{
		Offset: uint32(data[0])<<16 | uint32(data[1])<<8 | uint32(data[2]),
		Count:  data[3],
	}, nil
}

// IsEmpty reports whether the entry marks an unused slot.
func (e LocationEntry) IsEmpty() bool {
	return e.Offset == 0 && e.Count == 0
}

// ByteOffset returns the absolute file offset of the payload.
func (e LocationEntry) ByteOffset() int {
	return int(e.Offset) * SectorSize
}

// ByteLength returns the number of bytes allocated to the payload.
func (e LocationEntry) ByteLength() int {
	return int(e.Count) * SectorSize
}

// Bytes returns the 4-byte encoding of the entry.
func (e LocationEntry) Bytes() []byte {
	b := make([]byte, LocationEntrySize)
	e.WriteToSlice(b)

	return b
}

// WriteToSlice writes the entry into the first 4 bytes of buf.
// buf must be at least LocationEntrySize long.
func (e LocationEntry) WriteToSlice(buf []byte) {
	_ = buf[3]
	buf[0] = byte(e.Offset >> 16)
	buf[1] = byte(e.Offset >> 8)
	buf[2] = byte(e.Offset)
	buf[3] = e.Count
}

// ReadTimestamp decodes the timestamp of slot index from a region header.
func ReadTimestamp(header []byte, index int) uint32 {
	off := LocationTableSize + index*TimestampEntrySize

	return endian.GetBigEndianEngine().Uint32(header[off : off+TimestampEntrySize])
}

// WriteTimestamp encodes the timestamp of slot index into a region header.
func WriteTimestamp(header []byte, index int, ts uint32) {
	off := LocationTableSize + index*TimestampEntrySize
	endian.GetBigEndianEngine().PutUint32(header[off:off+TimestampEntrySize], ts)
}
