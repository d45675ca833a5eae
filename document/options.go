package document

import (
	"fmt"

	"github.com/arloliu/mcnbt/compress"
	"github.com/arloliu/mcnbt/encoding"
	"github.com/arloliu/mcnbt/errs"
	"github.com/arloliu/mcnbt/format"
	"github.com/arloliu/mcnbt/internal/options"
)

// Config holds the settings shared by document decoding and encoding.
type Config struct {
	compression format.CompressionType
	byteOrder   format.ByteOrder
	maxDepth    int
	maxSize     int
}

// Option configures a Document or a decode call.
type Option = options.Option[*Config]

func newConfig(opts ...Option) (*Config, error) {
	cfg := &Config{
		compression: format.CompressionGzip,
		byteOrder:   format.BigEndian,
		maxDepth:    encoding.DefaultMaxDepth,
		maxSize:     compress.DefaultMaxDecompressedSize,
	}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) codecOptions() []encoding.Option {
	return []encoding.Option{
		encoding.WithByteOrder(c.byteOrder),
		encoding.WithMaxDepth(c.maxDepth),
	}
}

// WithCompression sets the envelope used by Encode. Decode ignores it and
// detects the envelope from the data.
//
// The default is format.CompressionGzip, the envelope of level.dat and player files.
func WithCompression(ct format.CompressionType) Option {
	return options.New(func(c *Config) error {
		switch ct {
		case format.CompressionNone, format.CompressionGzip, format.CompressionZlib,
			format.CompressionLZ4, format.CompressionLZ4Block, format.CompressionZstd:
			c.compression = ct
			return nil
		default:
			return fmt.Errorf("compression %s: %w", ct, errs.ErrUnsupportedCompression)
		}
	})
}

// WithBigEndian selects the Java Edition byte order. This is the default.
func WithBigEndian() Option {
	return options.NoError(func(c *Config) {
		c.byteOrder = format.BigEndian
	})
}

// WithLittleEndian selects the Bedrock Edition byte order.
func WithLittleEndian() Option {
	return options.NoError(func(c *Config) {
		c.byteOrder = format.LittleEndian
	})
}

// WithMaxDepth limits List/Compound nesting while decoding and encoding.
func WithMaxDepth(depth int) Option {
	return options.New(func(c *Config) error {
		if depth < 1 {
			return fmt.Errorf("max depth must be positive, got %d", depth)
		}
		c.maxDepth = depth

		return nil
	})
}

// WithMaxDecompressedSize caps the decompressed size of a document while
// decoding. Payloads inflating past size fail with errs.ErrDecompressedTooLarge.
// Zero removes the cap.
//
// The default is compress.DefaultMaxDecompressedSize.
func WithMaxDecompressedSize(size int) Option {
	return options.New(func(c *Config) error {
		if size < 0 {
			return fmt.Errorf("max decompressed size must not be negative, got %d", size)
		}
		c.maxSize = size

		return nil
	})
}
