package nbt

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/mcnbt/format"
)

func TestCompound_ZeroValue(t *testing.T) {
	var c Compound
	require.Equal(t, 0, c.Len())

	c.Set("k", String("v"))
	require.Equal(t, 1, c.Len())
	require.Equal(t, "v", c.GetString("k"))
}

func TestCompound_NilReceiver(t *testing.T) {
	var c *Compound
	require.Equal(t, 0, c.Len())
	_, ok := c.Get("a")
	require.False(t, ok)
	require.False(t, c.Delete("a"))
	require.Nil(t, c.Keys())
	for range c.All() {
		t.Fatal("nil compound must not yield")
	}

	require.Panics(t, func() { c.Set("a", Int(1)) })
}

func TestCompound_InsertionOrder(t *testing.T) {
	c := NewCompound()
	c.Set("zeta", Int(1))
	c.Set("alpha", Int(2))
	c.Set("mid", Int(3))

	require.Equal(t, []string{"zeta", "alpha", "mid"}, c.Keys())

	// replacing keeps position
	c.Set("zeta", Int(10))
	require.Equal(t, []string{"zeta", "alpha", "mid"}, c.Keys())
	require.Equal(t, 10.0, c.GetNumber("zeta"))

	var seen []string
	for name := range c.All() {
		seen = append(seen, name)
	}
	require.Equal(t, c.Keys(), seen)
}

func TestCompound_Delete(t *testing.T) {
	c := NewCompound()
	c.Set("a", Int(1))
	c.Set("b", Int(2))
	c.Set("c", Int(3))

	require.True(t, c.Delete("b"))
	require.False(t, c.Delete("b"))
	require.Equal(t, []string{"a", "c"}, c.Keys())

	// index must be rebuilt for shifted entries
	v, ok := c.Get("c")
	require.True(t, ok)
	require.Equal(t, Int(3), v)

	c.Set("b", Int(4))
	require.Equal(t, []string{"a", "c", "b"}, c.Keys())
}

func TestCompound_Keys_IsACopy(t *testing.T) {
	c := NewCompound()
	c.Set("a", Int(1))

	keys := c.Keys()
	keys[0] = "mutated"

	require.True(t, c.Has("a"))
}

func TestCompound_All_EarlyStop(t *testing.T) {
	c := NewCompound()
	for _, k := range []string{"a", "b", "c"} {
		c.Set(k, Byte(0))
	}

	count := 0
	for range c.All() {
		count++
		if count == 2 {
			break
		}
	}
	require.Equal(t, 2, count)
}

func TestCompound_TypedGetters(t *testing.T) {
	inner := NewCompound()
	inner.Set("x", Int(7))

	c := NewCompound()
	c.Set("name", String("Steve"))
	c.Set("health", Float(19.5))
	c.Set("flying", Byte(1))
	c.Set("grounded", Byte(0))
	c.Set("inner", inner)
	c.Set("list", MustList(format.TagInt, Int(1), Int(2)))

	require.Equal(t, "Steve", c.GetString("name"))
	require.Equal(t, "", c.GetString("health"), "wrong type yields the default")
	require.Equal(t, 19.5, c.GetNumber("health"))
	require.Equal(t, 0.0, c.GetNumber("missing"))
	require.True(t, c.GetBool("flying"))
	require.False(t, c.GetBool("grounded"))
	require.False(t, c.GetBool("missing"))

	sub, ok := c.GetCompound("inner")
	require.True(t, ok)
	require.Equal(t, 7.0, sub.GetNumber("x"))

	_, ok = c.GetCompound("name")
	require.False(t, ok)

	l, ok := c.GetList("list")
	require.True(t, ok)
	require.Equal(t, 2, l.Len())

	_, ok = c.GetList("inner")
	require.False(t, ok)
}
