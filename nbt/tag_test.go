package nbt

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/mcnbt/format"
)

func TestTag_Type(t *testing.T) {
	tests := []struct {
		tag  Tag
		want format.TagType
	}{
		{End{}, format.TagEnd},
		{Byte(1), format.TagByte},
		{Short(1), format.TagShort},
		{Int(1), format.TagInt},
		{Long(1), format.TagLong},
		{Float(1), format.TagFloat},
		{Double(1), format.TagDouble},
		{ByteArray{1}, format.TagByteArray},
		{String("x"), format.TagString},
		{MustList(format.TagInt), format.TagList},
		{NewCompound(), format.TagCompound},
		{IntArray{1}, format.TagIntArray},
		{LongArray{1}, format.TagLongArray},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			require.Equal(t, tt.want, tt.tag.Type())
			require.Equal(t, tt.want, TypeOf(tt.tag))
		})
	}

	require.Equal(t, format.TagEnd, TypeOf(nil))
}

func TestAsNumber(t *testing.T) {
	require.Equal(t, -5.0, AsNumber(Byte(-5)))
	require.Equal(t, 300.0, AsNumber(Short(300)))
	require.Equal(t, 70000.0, AsNumber(Int(70000)))
	require.Equal(t, float64(math.MaxInt32)*4, AsNumber(Long(int64(math.MaxInt32)*4)))
	require.Equal(t, 1.5, AsNumber(Float(1.5)))
	require.Equal(t, 2.25, AsNumber(Double(2.25)))

	// lenient defaults
	require.Equal(t, 0.0, AsNumber(String("42")))
	require.Equal(t, 0.0, AsNumber(NewCompound()))
	require.Equal(t, 0.0, AsNumber(nil))
}

func TestAsString(t *testing.T) {
	require.Equal(t, "hello", AsString(String("hello")))
	require.Equal(t, "", AsString(Int(1)))
	require.Equal(t, "", AsString(nil))
}

func TestGet(t *testing.T) {
	c := NewCompound()
	c.Set("a", Int(1))

	v, ok := Get(c, "a")
	require.True(t, ok)
	require.Equal(t, Int(1), v)

	_, ok = Get(c, "missing")
	require.False(t, ok)

	_, ok = Get(Int(1), "a")
	require.False(t, ok, "Get only resolves through compounds")

	_, ok = Get(nil, "a")
	require.False(t, ok)
}

func TestIsNumber(t *testing.T) {
	require.True(t, IsNumber(Byte(0)))
	require.True(t, IsNumber(Double(0)))
	require.False(t, IsNumber(String("")))
	require.False(t, IsNumber(nil))
}

func TestBool(t *testing.T) {
	require.Equal(t, Byte(1), Bool(true))
	require.Equal(t, Byte(0), Bool(false))
}
