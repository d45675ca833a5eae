package compress

import (
	"bytes"

	"github.com/arloliu/mcnbt/format"
)

var (
	lz4FrameMagic = []byte{0x04, 0x22, 0x4D, 0x18}
	zstdMagic     = []byte{0x28, 0xB5, 0x2F, 0xFD}
)

// Detect identifies the envelope of data from its leading bytes.
//
// Detection rules:
//   - 1F 8B: gzip
//   - 78 xx where bit 5 of xx (FDICT) is clear: zlib
//   - 04 22 4D 18: LZ4 frame
//   - 28 B5 2F FD: zstd frame
//   - "LZ4Block": lz4-java block stream
//
// Anything else, including inputs shorter than two bytes, is reported as
// format.CompressionNone. An uncompressed NBT document starts with the Compound
// type id 0x0A, so it never collides with these prefixes.
func Detect(data []byte) format.CompressionType {
	if len(data) < 2 {
		return format.CompressionNone
	}

	switch {
	case data[0] == 0x1F && data[1] == 0x8B:
		return format.CompressionGzip
	case data[0] == 0x78 && data[1]&0x20 == 0:
		return format.CompressionZlib
	case bytes.HasPrefix(data, lz4FrameMagic):
		return format.CompressionLZ4
	case bytes.HasPrefix(data, zstdMagic):
		return format.CompressionZstd
	case bytes.HasPrefix(data, lz4BlockMagic):
		return format.CompressionLZ4Block
	default:
		return format.CompressionNone
	}
}

// DecompressAuto detects the envelope of data and decompresses it.
//
// Returns:
//   - []byte: Uncompressed bytes (data itself when no envelope was found)
//   - format.CompressionType: The detected compression
//   - error: Decompression error
func DecompressAuto(data []byte) ([]byte, format.CompressionType, error) {
	ct := Detect(data)
	out, err := Decompress(data, ct)

	return out, ct, err
}
