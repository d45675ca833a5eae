package compress

import (
	"fmt"

	"github.com/arloliu/mcnbt/errs"
	"github.com/arloliu/mcnbt/format"
)

// Compressor compresses a complete NBT payload.
type Compressor interface {
	// Compress compresses the input data and returns the compressed result.
	//
	// Memory management:
	//   - Returned slice is owned by the caller (the no-op codec returns the input)
	//   - Input slice is not modified
	Compress(data []byte) ([]byte, error)
}

// DefaultMaxDecompressedSize bounds the output of Decompress. Chunk and level
// documents are orders of magnitude smaller; the bound only stops a crafted
// payload from inflating without limit.
const DefaultMaxDecompressedSize = 256 << 20

// Decompressor restores a payload produced by the matching Compressor.
//
// Example:
//
//	codec, _ := compress.GetCodec(format.CompressionGzip)
//	raw, err := codec.Decompress(fileBytes)
//	if err != nil {
//	    return fmt.Errorf("decompression failed: %w", err)
//	}
//
// Thread Safety: all built-in decompressors are safe for concurrent use.
type Decompressor interface {
	// Decompress decompresses the input data and returns the original bytes.
	//
	// Error conditions:
	//   - Returns error if input data is corrupted or truncated
	//   - Returns error if data was compressed with a different algorithm
	Decompress(data []byte) ([]byte, error)

	// DecompressLimit is Decompress with an explicit output bound. Output larger
	// than limit fails with errs.ErrDecompressedTooLarge; limit <= 0 disables
	// the bound.
	DecompressLimit(data []byte, limit int) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// CreateCodec is a factory function that creates a Codec based on the specified compression type.
//
// Parameters:
//   - compressionType: Type of compression (None, Gzip, Zlib, LZ4, Zstd or LZ4Block)
//   - target: Description of target usage (for error messages)
//
// Returns:
//   - Codec: Codec instance for the specified type
//   - error: errs.ErrUnsupportedCompression for unknown types
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionGzip:
		return NewGzipCompressor(), nil
	case format.CompressionZlib:
		return NewZlibCompressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionLZ4Block:
		return NewLZ4BlockCompressor(), nil
	default:
		return nil, fmt.Errorf("invalid %s compression %s: %w", target, compressionType, errs.ErrUnsupportedCompression)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionGzip: NewGzipCompressor(),
	format.CompressionZlib: NewZlibCompressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
	format.CompressionZstd: NewZstdCompressor(),

	format.CompressionLZ4Block: NewLZ4BlockCompressor(),
}

// GetCodec retrieves a built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("compression type %s: %w", compressionType, errs.ErrUnsupportedCompression)
}

// Compress compresses data with the built-in codec for compressionType.
func Compress(data []byte, compressionType format.CompressionType) ([]byte, error) {
	codec, err := GetCodec(compressionType)
	if err != nil {
		return nil, err
	}

	return codec.Compress(data)
}

// Decompress decompresses data with the built-in codec for compressionType.
func Decompress(data []byte, compressionType format.CompressionType) ([]byte, error) {
	codec, err := GetCodec(compressionType)
	if err != nil {
		return nil, err
	}

	return codec.Decompress(data)
}

// DecompressLimit decompresses data with the built-in codec for compressionType,
// failing with errs.ErrDecompressedTooLarge once the output exceeds limit.
func DecompressLimit(data []byte, compressionType format.CompressionType, limit int) ([]byte, error) {
	codec, err := GetCodec(compressionType)
	if err != nil {
		return nil, err
	}

	return codec.DecompressLimit(data, limit)
}
