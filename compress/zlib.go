package compress

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/klauspost/compress/zlib"
)

var zlibWriterPool = sync.Pool{
	New: func() any {
		w, _ := zlib.NewWriterLevel(nil, zlib.DefaultCompression)
		return w
	},
}

var zlibReaderPool sync.Pool

// ZlibCompressor provides the RFC 1950 envelope used by most region chunks.
type ZlibCompressor struct{}

var _ Codec = (*ZlibCompressor)(nil)

// NewZlibCompressor creates a new zlib codec.
func NewZlibCompressor() ZlibCompressor {
	return ZlibCompressor{}
}

// Compress wraps data in a zlib stream.
// Uses a pooled writer for better performance.
func (c ZlibCompressor) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(len(data)/2 + 16)

	w, _ := zlibWriterPool.Get().(*zlib.Writer)
	defer zlibWriterPool.Put(w)
	w.Reset(&buf)

	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("zlib compression failed: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("zlib compression failed: %w", err)
	}

	return buf.Bytes(), nil
}

// Decompress inflates a zlib stream up to DefaultMaxDecompressedSize.
func (c ZlibCompressor) Decompress(data []byte) ([]byte, error) {
	return c.DecompressLimit(data, DefaultMaxDecompressedSize)
}

// DecompressLimit inflates a zlib stream and verifies its Adler-32 trailer.
func (c ZlibCompressor) DecompressLimit(data []byte, limit int) ([]byte, error) {
	src := bytes.NewReader(data)

	r, ok := zlibReaderPool.Get().(io.ReadCloser)
	if ok {
		if err := r.(zlib.Resetter).Reset(src, nil); err != nil {
			zlibReaderPool.Put(r)
			return nil, fmt.Errorf("zlib decompression failed: %w", err)
		}
	} else {
		var err error
		r, err = zlib.NewReader(src)
		if err != nil {
			return nil, fmt.Errorf("zlib decompression failed: %w", err)
		}
	}
	defer zlibReaderPool.Put(r)

	return readAllSized(r, len(data), limit)
}
