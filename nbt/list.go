package nbt

import (
	"fmt"
	"iter"

	"github.com/arloliu/mcnbt/errs"
	"github.com/arloliu/mcnbt/format"
)

// List is a homogeneous sequence of tags of one declared element type.
type List struct {
	elem  format.TagType
	items []Tag
}

// NewList creates a list of elem holding items. The list takes ownership of the
// items slice.
func NewList(elem format.TagType, items ...Tag) (*List, error) {
	if !elem.Valid() {
		return nil, errs.InvalidTagType(uint8(elem))
	}

	l := &List{elem: elem}
	if len(items) == 0 {
		return l, nil
	}
	if elem == format.TagEnd {
		return nil, fmt.Errorf("%w: non-empty list declared as End", errs.ErrListTypeMismatch)
	}
	for i, item := range items {
		if err := l.check(item); err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
	}
	l.items = items

	return l, nil
}

// MustList is like NewList but panics on error. It is meant for literals in
// tests and examples.
func MustList(elem format.TagType, items ...Tag) *List {
	l, err := NewList(elem, items...)
	if err != nil {
		panic(err)
	}

	return l
}

func (*List) Type() format.TagType { return format.TagList }
func (*List) tag()                 {}

// ElemType returns the declared element type.
func (l *List) ElemType() format.TagType {
	if l == nil {
		return format.TagEnd
	}

	return l.elem
}

// Len returns the number of items.
func (l *List) Len() int {
	if l == nil {
		return 0
	}

	return len(l.items)
}

// At returns the item at index i.
func (l *List) At(i int) (Tag, bool) {
	if l == nil || i < 0 || i >= len(l.items) {
		return nil, false
	}

	return l.items[i], true
}

// Append adds items to the end of the list. An empty End list adopts the type
// of the first item.
func (l *List) Append(items ...Tag) error {
	for i, item := range items {
		if len(l.items) == 0 && l.elem == format.TagEnd && item != nil {
			l.elem = item.Type()
		}
		if err := l.check(item); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
		l.items = append(l.items, item)
	}

	return nil
}

// Set replaces the item at index i.
func (l *List) Set(i int, item Tag) error {
	if i < 0 || i >= len(l.items) {
		return fmt.Errorf("list index %d out of range [0,%d)", i, len(l.items))
	}
	if err := l.check(item); err != nil {
		return err
	}
	l.items[i] = item

	return nil
}

// All iterates the items in order.
func (l *List) All() iter.Seq2[int, Tag] {
	return func(yield func(int, Tag) bool) {
		if l == nil {
			return
		}
		for i, item := range l.items {
			if !yield(i, item) {
				return
			}
		}
	}
}

func (l *List) check(item Tag) error {
	if item == nil {
		return errs.ErrNilTag
	}
	if item.Type() == format.TagEnd {
		return fmt.Errorf("%w: End is not a list value", errs.ErrListTypeMismatch)
	}
	if item.Type() != l.elem {
		return fmt.Errorf("%w: expected %s, found %s", errs.ErrListTypeMismatch, l.elem, item.Type())
	}

	return nil
}
