//go:build gozstd && cgo

package compress

import (
	"bytes"
	"fmt"

	"github.com/valyala/gozstd"
)

// Compress compresses the input data using Zstandard compression.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	return gozstd.CompressLevel(nil, data, 3), nil
}

// Decompress decodes a Zstandard frame up to DefaultMaxDecompressedSize.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	return c.DecompressLimit(data, DefaultMaxDecompressedSize)
}

// DecompressLimit decodes a Zstandard frame through a streaming reader so the
// output bound is enforced while inflating.
func (c ZstdCompressor) DecompressLimit(data []byte, limit int) ([]byte, error) {
	zr := gozstd.NewReader(bytes.NewReader(data))
	defer zr.Release()

	out, err := readAllSized(zr, len(data), limit)
	if err != nil {
		return nil, fmt.Errorf("zstd: %w", err)
	}

	return out, nil
}
