package nbt

import (
	"math"
	"slices"
)

// Equal reports whether a and b are structurally equal. Compound entries are
// compared by name regardless of order; floating point values are compared by
// bit pattern so NaN payloads round-trip as equal.
func Equal(a, b Tag) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Type() != b.Type() {
		return false
	}

	switch av := a.(type) {
	case End:
		return true
	case Byte:
		return av == b.(Byte)
	case Short:
		return av == b.(Short)
	case Int:
		return av == b.(Int)
	case Long:
		return av == b.(Long)
	case Float:
		return math.Float32bits(float32(av)) == math.Float32bits(float32(b.(Float)))
	case Double:
		return math.Float64bits(float64(av)) == math.Float64bits(float64(b.(Double)))
	case ByteArray:
		return slices.Equal(av, b.(ByteArray))
	case String:
		return av == b.(String)
	case IntArray:
		return slices.Equal(av, b.(IntArray))
	case LongArray:
		return slices.Equal(av, b.(LongArray))
	case *List:
		return equalList(av, b.(*List))
	case *Compound:
		return equalCompound(av, b.(*Compound))
	default:
		return false
	}
}

func equalList(a, b *List) bool {
	if a.Len() != b.Len() {
		return false
	}
	if a.Len() > 0 && a.ElemType() != b.ElemType() {
		return false
	}
	for i := range a.Len() {
		if !Equal(a.items[i], b.items[i]) {
			return false
		}
	}

	return true
}

func equalCompound(a, b *Compound) bool {
	if a.Len() != b.Len() {
		return false
	}
	for name, av := range a.All() {
		bv, ok := b.Get(name)
		if !ok || !Equal(av, bv) {
			return false
		}
	}

	return true
}

// Clone returns a deep copy of t.
func Clone(t Tag) Tag {
	switch v := t.(type) {
	case ByteArray:
		return slices.Clone(v)
	case IntArray:
		return slices.Clone(v)
	case LongArray:
		return slices.Clone(v)
	case *List:
		return v.Clone()
	case *Compound:
		return v.Clone()
	default:
		return t
	}
}

// Clone returns a deep copy of the list.
func (l *List) Clone() *List {
	if l == nil {
		return nil
	}
	out := &List{elem: l.elem}
	if len(l.items) > 0 {
		out.items = make([]Tag, len(l.items))
		for i, item := range l.items {
			out.items[i] = Clone(item)
		}
	}

	return out
}

// Clone returns a deep copy of the compound, preserving entry order.
func (c *Compound) Clone() *Compound {
	if c == nil {
		return nil
	}
	out := NewCompoundWithCapacity(c.Len())
	for name, v := range c.All() {
		out.Set(name, Clone(v))
	}

	return out
}
