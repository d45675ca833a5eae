package region

import (
	"fmt"
	"log/slog"

	"github.com/arloliu/mcnbt/compress"
	"github.com/arloliu/mcnbt/encoding"
	"github.com/arloliu/mcnbt/internal/options"
)

// Config holds region settings.
type Config struct {
	logger   *slog.Logger
	maxDepth int
	maxSize  int
}

// Option configures a Region.
type Option = options.Option[*Config]

func newConfig(opts ...Option) (*Config, error) {
	cfg := &Config{
		logger:   slog.New(slog.DiscardHandler),
		maxDepth: encoding.DefaultMaxDepth,
		maxSize:  compress.DefaultMaxDecompressedSize,
	}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithLogger sets the logger that receives skipped-slot and layout messages.
// By default nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	return options.NoError(func(c *Config) {
		if logger != nil {
			c.logger = logger
		}
	})
}

// WithMaxDepth limits List/Compound nesting when decoding chunk documents.
func WithMaxDepth(depth int) Option {
	return options.New(func(c *Config) error {
		if depth < 1 {
			return fmt.Errorf("max depth must be positive, got %d", depth)
		}
		c.maxDepth = depth

		return nil
	})
}

// WithMaxDecompressedSize caps the decompressed size of each chunk document.
// Decoding a larger chunk fails with errs.ErrDecompressedTooLarge. Zero removes
// the cap.
func WithMaxDecompressedSize(size int) Option {
	return options.New(func(c *Config) error {
		if size < 0 {
			return fmt.Errorf("max decompressed size must not be negative, got %d", size)
		}
		c.maxSize = size

		return nil
	})
}
