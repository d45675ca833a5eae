package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	depth int
	name  string
	calls []string
}

func withDepth(d int) Option[*testConfig] {
	return New(func(c *testConfig) error {
		if d <= 0 {
			return errors.New("depth must be positive")
		}
		c.depth = d
		c.calls = append(c.calls, "depth")

		return nil
	})
}

func withName(name string) Option[*testConfig] {
	return NoError(func(c *testConfig) {
		c.name = name
		c.calls = append(c.calls, "name")
	})
}

func TestApply_InOrder(t *testing.T) {
	cfg := &testConfig{}

	err := Apply(cfg, withName("a"), withDepth(3), withName("b"))
	require.NoError(t, err)
	require.Equal(t, 3, cfg.depth)
	require.Equal(t, "b", cfg.name, "later options override earlier ones")
	require.Equal(t, []string{"name", "depth", "name"}, cfg.calls)
}

func TestApply_StopsOnError(t *testing.T) {
	cfg := &testConfig{}

	err := Apply(cfg, withName("a"), withDepth(0), withName("b"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "depth must be positive")
	require.Equal(t, "a", cfg.name, "options after the failing one must not run")
}

func TestApply_NoOptions(t *testing.T) {
	cfg := &testConfig{depth: 7}
	require.NoError(t, Apply(cfg))
	require.Equal(t, 7, cfg.depth)
}

func TestApply_NilOption(t *testing.T) {
	cfg := &testConfig{}
	require.NoError(t, Apply[*testConfig](cfg, nil, withDepth(2)))
	require.Equal(t, 2, cfg.depth)
}
