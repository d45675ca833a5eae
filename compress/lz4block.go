package compress

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"slices"
	"sync"

	"github.com/pierrec/lz4/v4"

	"github.com/arloliu/mcnbt/errs"
	"github.com/arloliu/mcnbt/internal/hash"
)

// LZ4Block stream layout (lz4-java LZ4BlockOutputStream). Every block is
//
//	"LZ4Block" | token | compressedLen LE32 | originalLen LE32 | checksum LE32 | data
//
// where token is method|level, level = log2(blockSize)-10 and checksum is the
// seeded xxHash32 of the original bytes masked to 28 bits. The stream ends with
// an empty block.
const (
	lz4BlockHeaderSize   = 21
	lz4BlockMethodRaw    = 0x10
	lz4BlockMethodLZ4    = 0x20
	lz4BlockSeed         = 0x9747B28C
	lz4BlockChecksumMask = 0x0FFFFFFF
	lz4BlockSize         = 1 << 16
	lz4BlockLevel        = 6
)

var lz4BlockMagic = []byte("LZ4Block")

var lz4CompressorPool = sync.Pool{
	New: func() any { return new(lz4.Compressor) },
}

// LZ4BlockCompressor produces the block stream written by lz4-java, which is
// what Minecraft stores for region compression id 4. It is unrelated to the
// LZ4 frame format of LZ4Compressor.
type LZ4BlockCompressor struct{}

var _ Codec = (*LZ4BlockCompressor)(nil)

// NewLZ4BlockCompressor creates a new LZ4Block codec.
func NewLZ4BlockCompressor() LZ4BlockCompressor {
	return LZ4BlockCompressor{}
}

// Compress splits data into 64KiB blocks. Blocks that do not shrink are
// stored raw.
func (c LZ4BlockCompressor) Compress(data []byte) ([]byte, error) {
	comp, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(comp)

	blocks := (len(data) + lz4BlockSize - 1) / lz4BlockSize
	out := make([]byte, 0, len(data)+(blocks+1)*lz4BlockHeaderSize)
	scratch := make([]byte, lz4.CompressBlockBound(min(len(data), lz4BlockSize)))

	for start := 0; start < len(data); start += lz4BlockSize {
		block := data[start:min(start+lz4BlockSize, len(data))]

		n, err := comp.CompressBlock(block, scratch)
		if err != nil {
			return nil, fmt.Errorf("lz4block compression failed: %w", err)
		}

		method, payload := byte(lz4BlockMethodLZ4), scratch[:n]
		if n == 0 || n >= len(block) {
			method, payload = lz4BlockMethodRaw, block
		}
		checksum := hash.Sum32(block, lz4BlockSeed) & lz4BlockChecksumMask
		out = appendLZ4BlockHeader(out, method, len(payload), len(block), checksum)
		out = append(out, payload...)
	}

	return appendLZ4BlockHeader(out, lz4BlockMethodRaw, 0, 0, 0), nil
}

func appendLZ4BlockHeader(out []byte, method byte, compressedLen, originalLen int, checksum uint32) []byte {
	out = append(out, lz4BlockMagic...)
	out = append(out, method|lz4BlockLevel)
	out = binary.LittleEndian.AppendUint32(out, uint32(compressedLen)) //nolint:gosec
	out = binary.LittleEndian.AppendUint32(out, uint32(originalLen))   //nolint:gosec
	out = binary.LittleEndian.AppendUint32(out, checksum)

	return out
}

// Decompress decodes an LZ4Block stream up to DefaultMaxDecompressedSize.
func (c LZ4BlockCompressor) Decompress(data []byte) ([]byte, error) {
	return c.DecompressLimit(data, DefaultMaxDecompressedSize)
}

// DecompressLimit decodes an LZ4Block stream, verifying every block checksum.
// Bytes after the terminating empty block are ignored.
func (c LZ4BlockCompressor) DecompressLimit(data []byte, limit int) ([]byte, error) {
	var out []byte
	pos := 0
	for {
		if len(data)-pos < lz4BlockHeaderSize {
			return nil, fmt.Errorf("lz4block: stream ended before end block: %w", errs.ErrUnexpectedEOF)
		}
		hdr := data[pos : pos+lz4BlockHeaderSize]
		if !bytes.Equal(hdr[:8], lz4BlockMagic) {
			return nil, fmt.Errorf("lz4block: bad magic at offset %d", pos)
		}

		method := hdr[8] & 0xF0
		maxBlock := 1 << (10 + int(hdr[8]&0x0F))
		compressedLen := int(binary.LittleEndian.Uint32(hdr[9:]))
		originalLen := int(binary.LittleEndian.Uint32(hdr[13:]))
		checksum := binary.LittleEndian.Uint32(hdr[17:])
		pos += lz4BlockHeaderSize

		if originalLen == 0 {
			if compressedLen != 0 || checksum != 0 {
				return nil, fmt.Errorf("lz4block: malformed end block at offset %d", pos-lz4BlockHeaderSize)
			}

			return out, nil
		}

		switch {
		case method != lz4BlockMethodRaw && method != lz4BlockMethodLZ4:
			return nil, fmt.Errorf("lz4block: unknown method 0x%02X", method)
		case originalLen > maxBlock || compressedLen == 0:
			return nil, fmt.Errorf("lz4block: block lengths %d/%d out of range", compressedLen, originalLen)
		case method == lz4BlockMethodRaw && compressedLen != originalLen:
			return nil, fmt.Errorf("lz4block: raw block lengths differ (%d != %d)", compressedLen, originalLen)
		case compressedLen > len(data)-pos:
			return nil, fmt.Errorf("lz4block: block of %d bytes: %w", compressedLen, errs.ErrUnexpectedEOF)
		case limit > 0 && len(out)+originalLen > limit:
			return nil, fmt.Errorf("%w: more than %d bytes", errs.ErrDecompressedTooLarge, limit)
		}

		src := data[pos : pos+compressedLen]
		pos += compressedLen

		start := len(out)
		out = slices.Grow(out, originalLen)[:start+originalLen]
		dst := out[start:]
		if method == lz4BlockMethodRaw {
			copy(dst, src)
		} else {
			n, err := lz4.UncompressBlock(src, dst)
			if err != nil {
				return nil, fmt.Errorf("lz4block decompression failed: %w", err)
			}
			if n != originalLen {
				return nil, fmt.Errorf("lz4block: block inflated to %d bytes, header says %d", n, originalLen)
			}
		}

		if sum := hash.Sum32(dst, lz4BlockSeed) & lz4BlockChecksumMask; sum != checksum {
			return nil, fmt.Errorf("lz4block: checksum mismatch (0x%08X != 0x%08X)", sum, checksum)
		}
	}
}
