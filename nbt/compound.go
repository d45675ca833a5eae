package nbt

import (
	"iter"
	"slices"

	"github.com/arloliu/mcnbt/format"
)

// Compound is an insertion-ordered mapping from names to tags.
//
// The zero value is an empty compound ready to use. Compound is not safe for
// concurrent mutation.
type Compound struct {
	names  []string
	values []Tag
	index  map[string]int
}

// NewCompound returns an empty compound.
func NewCompound() *Compound {
	return &Compound{}
}

// NewCompoundWithCapacity returns an empty compound with room for n entries.
func NewCompoundWithCapacity(n int) *Compound {
	return &Compound{
		names:  make([]string, 0, n),
		values: make([]Tag, 0, n),
		index:  make(map[string]int, n),
	}
}

func (*Compound) Type() format.TagType { return format.TagCompound }
func (*Compound) tag()                 {}

// Len returns the number of entries.
func (c *Compound) Len() int {
	if c == nil {
		return 0
	}

	return len(c.names)
}

// Get returns the tag stored under name.
func (c *Compound) Get(name string) (Tag, bool) {
	if c == nil {
		return nil, false
	}
	i, ok := c.index[name]
	if !ok {
		return nil, false
	}

	return c.values[i], true
}

// Has reports whether name is present.
func (c *Compound) Has(name string) bool {
	_, ok := c.Get(name)
	return ok
}

// Set stores value under name. Replacing an existing name keeps its position.
//
// Unlike the read methods, Set needs a non-nil receiver and panics on a nil
// *Compound; use NewCompound or a zero Compound value.
func (c *Compound) Set(name string, value Tag) {
	if c.index == nil {
		c.index = make(map[string]int)
	}
	if i, ok := c.index[name]; ok {
		c.values[i] = value
		return
	}

	c.index[name] = len(c.names)
	c.names = append(c.names, name)
	c.values = append(c.values, value)
}

// Delete removes name and reports whether it was present.
func (c *Compound) Delete(name string) bool {
	if c == nil {
		return false
	}
	i, ok := c.index[name]
	if !ok {
		return false
	}

	c.names = slices.Delete(c.names, i, i+1)
	c.values = slices.Delete(c.values, i, i+1)
	delete(c.index, name)
	for j := i; j < len(c.names); j++ {
		c.index[c.names[j]] = j
	}

	return true
}

// Keys returns the entry names in insertion order.
func (c *Compound) Keys() []string {
	if c == nil {
		return nil
	}

	return slices.Clone(c.names)
}

// All iterates entries in insertion order.
func (c *Compound) All() iter.Seq2[string, Tag] {
	return func(yield func(string, Tag) bool) {
		if c == nil {
			return
		}
		for i, name := range c.names {
			if !yield(name, c.values[i]) {
				return
			}
		}
	}
}

// GetString returns the string stored under name, or "".
func (c *Compound) GetString(name string) string {
	v, _ := c.Get(name)
	return AsString(v)
}

// GetNumber returns the numeric value stored under name widened to float64, or 0.
func (c *Compound) GetNumber(name string) float64 {
	v, _ := c.Get(name)
	return AsNumber(v)
}

// GetBool reports whether the number stored under name is non-zero.
func (c *Compound) GetBool(name string) bool {
	return c.GetNumber(name) != 0
}

// GetCompound returns the compound stored under name.
func (c *Compound) GetCompound(name string) (*Compound, bool) {
	v, _ := c.Get(name)
	sub, ok := v.(*Compound)

	return sub, ok && sub != nil
}

// GetList returns the list stored under name.
func (c *Compound) GetList(name string) (*List, bool) {
	v, _ := c.Get(name)
	l, ok := v.(*List)

	return l, ok && l != nil
}
