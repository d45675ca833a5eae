package compress

// ZstdCompressor provides Zstandard frames.
//
// Zstd documents are produced by newer tooling; region files have no
// compression id for zstd, so it only applies to standalone documents.
//
// The default build uses github.com/klauspost/compress/zstd. Building with the
// gozstd tag (and cgo enabled) switches to github.com/valyala/gozstd.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
//
// Returns:
//   - ZstdCompressor: New Zstd compressor instance
//
// Example:
//
//	compressor := NewZstdCompressor()
//	compressed, err := compressor.Compress(data)
//	if err != nil {
//		return err
//	}
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
