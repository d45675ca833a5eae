package compress

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/klauspost/compress/gzip"

	"github.com/arloliu/mcnbt/errs"
)

// gzipWriterPool pools gzip writers; a writer carries ~800KB of window state.
var gzipWriterPool = sync.Pool{
	New: func() any {
		w, _ := gzip.NewWriterLevel(nil, gzip.DefaultCompression)
		return w
	},
}

var gzipReaderPool sync.Pool

// GzipCompressor provides the RFC 1952 envelope used by level.dat and
// player data files.
type GzipCompressor struct{}

var _ Codec = (*GzipCompressor)(nil)

// NewGzipCompressor creates a new gzip codec.
func NewGzipCompressor() GzipCompressor {
	return GzipCompressor{}
}

// Compress wraps data in a single gzip member.
// Uses a pooled writer for better performance.
func (c GzipCompressor) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(len(data)/2 + 64)

	w, _ := gzipWriterPool.Get().(*gzip.Writer)
	defer gzipWriterPool.Put(w)
	w.Reset(&buf)

	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("gzip compression failed: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("gzip compression failed: %w", err)
	}

	return buf.Bytes(), nil
}

// Decompress inflates a gzip stream up to DefaultMaxDecompressedSize.
func (c GzipCompressor) Decompress(data []byte) ([]byte, error) {
	return c.DecompressLimit(data, DefaultMaxDecompressedSize)
}

// DecompressLimit inflates a gzip stream. Multi-member streams are concatenated.
func (c GzipCompressor) DecompressLimit(data []byte, limit int) ([]byte, error) {
	src := bytes.NewReader(data)

	r, ok := gzipReaderPool.Get().(*gzip.Reader)
	if ok {
		if err := r.Reset(src); err != nil {
			gzipReaderPool.Put(r)
			return nil, fmt.Errorf("gzip decompression failed: %w", err)
		}
	} else {
		var err error
		r, err = gzip.NewReader(src)
		if err != nil {
			return nil, fmt.Errorf("gzip decompression failed: %w", err)
		}
	}
	defer gzipReaderPool.Put(r)

	return readAllSized(r, len(data), limit)
}

// maxSizeHint caps the up-front allocation of readAllSized; larger outputs
// grow as they are read.
const maxSizeHint = 4 << 20

// readAllSized drains r into a buffer presized from the compressed length,
// stopping with errs.ErrDecompressedTooLarge once more than limit bytes arrive.
func readAllSized(r io.Reader, compressedLen, limit int) ([]byte, error) {
	hint := min(compressedLen*4, maxSizeHint)
	if limit > 0 {
		hint = min(hint, limit)
		r = io.LimitReader(r, int64(limit)+1)
	}

	var out bytes.Buffer
	out.Grow(hint)
	if _, err := out.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("decompression failed: %w", err)
	}
	if limit > 0 && out.Len() > limit {
		return nil, fmt.Errorf("%w: more than %d bytes", errs.ErrDecompressedTooLarge, limit)
	}

	return out.Bytes(), nil
}
