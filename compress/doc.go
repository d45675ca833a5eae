// Package compress provides the compression envelopes found around NBT data.
//
// Minecraft tooling wraps NBT documents and region chunk payloads in one of a
// few envelopes. This package detects them from their leading bytes and
// provides a Codec for each:
//   - None: raw NBT, the document starts with the Compound type id 0x0A
//   - Gzip: level.dat, player data and most standalone .nbt files
//   - Zlib: the default for region chunk payloads
//   - LZ4: LZ4 frames, written by newer servers for region chunks
//   - Zstd: Zstandard frames from third-party tooling
//
// # Architecture
//
// The package defines three core interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// # Detection
//
//	ct := compress.Detect(data)          // format.CompressionGzip, ...
//	raw, ct, err := compress.DecompressAuto(data)
//
// Detection never fails: unknown prefixes are reported as format.CompressionNone
// and the NBT reader then rejects the bytes if they are not a document.
//
// # Zstd Backends
//
// The default build uses the pure Go decoder from github.com/klauspost/compress.
// Building with -tags gozstd (with cgo enabled) uses github.com/valyala/gozstd
// instead. Both produce standard frames and are interchangeable on the wire.
//
// # Thread Safety
//
// All codec implementations are stateless values backed by sync.Pool and can be
// shared across goroutines.
package compress
