package section

import (
	"github.com/arloliu/mcnbt/endian"
	"github.com/arloliu/mcnbt/errs"
)

// PayloadHeader frames a chunk payload inside its sectors.
//
// Layout (5 bytes, big-endian):
//
//	Bytes | Field       | Description
//	------|-------------|-----------------------------------------
//	0-3   | Length      | compression id byte + payload bytes
//	4     | Compression | region compression id
//
// Length counts the compression byte, so the payload itself is Length-1 bytes.
type PayloadHeader struct {
	Length      uint32
	Compression CompressionID
}

// NewPayloadHeader returns the header framing a payload of payloadLen bytes.
func NewPayloadHeader(payloadLen int, id CompressionID) PayloadHeader {
	return PayloadHeader{
		Length:      uint32(payloadLen + 1), //nolint:gosec
		Compression: id,
	}
}

// ParsePayloadHeader decodes a payload header from the first 5 bytes of data.
func ParsePayloadHeader(data []byte) (PayloadHeader, error) {
	if len(data) < PayloadHeaderSize {
		return PayloadHeader{}, errs.ErrUnexpectedEOF
	}

	return PayloadHeader{
		Length:      endian.GetBigEndianEngine().Uint32(data[0:4]),
		Compression: CompressionID(data[4]),
	}, nil
}

// PayloadLen returns the payload byte count, or 0 for a malformed zero length.
func (h PayloadHeader) PayloadLen() int {
	if h.Length == 0 {
		return 0
	}

	return int(h.Length - 1)
}

// Bytes returns the 5-byte encoding of the header.
func (h PayloadHeader) Bytes() []byte {
	b := make([]byte, PayloadHeaderSize)
	h.WriteToSlice(b)

	return b
}

// WriteToSlice writes the header into the first 5 bytes of buf.
func (h PayloadHeader) WriteToSlice(buf []byte) {
	_ = buf[4]
	endian.GetBigEndianEngine().PutUint32(buf[0:4], h.Length)
	buf[4] = byte(h.Compression)
}
