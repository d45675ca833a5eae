package encoding

import (
	"fmt"

	"github.com/arloliu/mcnbt/endian"
	"github.com/arloliu/mcnbt/format"
	"github.com/arloliu/mcnbt/internal/options"
)

// DefaultMaxDepth is the default limit on nested lists and compounds.
const DefaultMaxDepth = 512

// Config holds the settings shared by Reader and Writer.
type Config struct {
	engine   endian.EndianEngine
	maxDepth int
}

// Option configures a Reader or Writer.
type Option = options.Option[*Config]

func newConfig(opts ...Option) (*Config, error) {
	cfg := &Config{
		engine:   endian.GetBigEndianEngine(),
		maxDepth: DefaultMaxDepth,
	}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ByteOrder returns the configured wire byte order.
func (c *Config) ByteOrder() format.ByteOrder {
	return endian.ByteOrderOf(c.engine)
}

// MaxDepth returns the configured nesting limit.
func (c *Config) MaxDepth() int {
	return c.maxDepth
}

// WithBigEndian selects big-endian byte order. It is the default.
func WithBigEndian() Option {
	return options.NoError(func(c *Config) {
		c.engine = endian.GetBigEndianEngine()
	})
}

// WithLittleEndian selects little-endian byte order (Bedrock Edition).
func WithLittleEndian() Option {
	return options.NoError(func(c *Config) {
		c.engine = endian.GetLittleEndianEngine()
	})
}

// WithByteOrder selects the byte order by wire value.
func WithByteOrder(order format.ByteOrder) Option {
	return options.New(func(c *Config) error {
		switch order {
		case format.BigEndian, format.LittleEndian:
			c.engine = endian.ForByteOrder(order)
			return nil
		default:
			return fmt.Errorf("invalid byte order: %d", order)
		}
	})
}

// WithMaxDepth sets the maximum number of nested lists and compounds.
func WithMaxDepth(depth int) Option {
	return options.New(func(c *Config) error {
		if depth < 1 {
			return fmt.Errorf("max depth must be at least 1, got %d", depth)
		}
		c.maxDepth = depth

		return nil
	})
}
