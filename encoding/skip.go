package encoding

import (
	"github.com/arloliu/mcnbt/errs"
	"github.com/arloliu/mcnbt/format"
	"github.com/arloliu/mcnbt/nbt"
)

// selectiveMapThreshold is the wanted-name count above which selective reads
// switch from a linear scan to a set lookup.
const selectiveMapThreshold = 8

// SkipTag advances the cursor past one payload of type t without building it.
//
// The cursor lands exactly where ReadTag would leave it. SkipTag checks framing
// (lengths, type ids, depth) but does not validate string contents as UTF-8, and
// it allocates nothing on success.
func (r *Reader) SkipTag(t format.TagType) error {
	return r.skipTag(t, 0)
}

func (r *Reader) skipTag(t format.TagType, depth int) error {
	if size, ok := t.FixedSize(); ok {
		return r.advance(size)
	}

	switch t {
	case format.TagEnd:
		return nil
	case format.TagByteArray:
		return r.skipArray(1)
	case format.TagIntArray:
		return r.skipArray(4)
	case format.TagLongArray:
		return r.skipArray(8)
	case format.TagString:
		n, err := r.ReadUint16()
		if err != nil {
			return err
		}

		return r.advance(int(n))
	case format.TagList:
		return r.skipList(depth)
	case format.TagCompound:
		return r.skipCompound(depth)
	default:
		return errs.InvalidTagType(uint8(t))
	}
}

func (r *Reader) skipArray(elemSize int) error {
	n, err := r.readArrayLen(elemSize)
	if err != nil {
		return err
	}
	r.pos += n * elemSize

	return nil
}

func (r *Reader) skipList(depth int) error {
	if err := r.enter(depth); err != nil {
		return err
	}
	elem, n, err := r.readListHeader()
	if err != nil || n == 0 {
		return err
	}

	// Fixed-width elements are skipped in a single step.
	if size, ok := elem.FixedSize(); ok {
		return r.advance(n * size)
	}

	for range n {
		if err := r.skipTag(elem, depth+1); err != nil {
			return err
		}
	}

	return nil
}

func (r *Reader) skipCompound(depth int) error {
	if err := r.enter(depth); err != nil {
		return err
	}

	for {
		t, err := r.ReadTagType()
		if err != nil {
			return err
		}
		if t == format.TagEnd {
			return nil
		}
		if err := r.skipName(); err != nil {
			return err
		}
		if err := r.skipTag(t, depth+1); err != nil {
			return err
		}
	}
}

func (r *Reader) skipName() error {
	n, err := r.ReadUint16()
	if err != nil {
		return err
	}

	return r.advance(int(n))
}

// fieldSet matches entry names against the wanted names without allocating.
type fieldSet struct {
	list []string
	set  map[string]struct{}
}

func newFieldSet(fields []string) fieldSet {
	if len(fields) <= selectiveMapThreshold {
		return fieldSet{list: fields}
	}

	set := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		set[f] = struct{}{}
	}

	return fieldSet{set: set}
}

func (fs fieldSet) contains(name []byte) bool {
	if fs.set != nil {
		_, ok := fs.set[string(name)]
		return ok
	}
	for _, f := range fs.list {
		if f == string(name) {
			return true
		}
	}

	return false
}

// ReadCompoundSelective decodes a compound payload at the cursor, keeping only
// the entries whose names are listed in fields. Other entries are skipped.
//
// Names are matched against the top level only. On error the entries decoded so
// far are returned together with the error.
func (r *Reader) ReadCompoundSelective(fields ...string) (*nbt.Compound, error) {
	return r.readCompoundSelective(newFieldSet(fields))
}

func (r *Reader) readCompoundSelective(fs fieldSet) (*nbt.Compound, error) {
	c := nbt.NewCompound()
	if err := r.enter(0); err != nil {
		return c, err
	}

	for {
		t, err := r.ReadTagType()
		if err != nil {
			return c, err
		}
		if t == format.TagEnd {
			return c, nil
		}

		nameBytes, err := r.readStringBytes()
		if err != nil {
			return c, err
		}
		if !fs.contains(nameBytes) {
			if err := r.skipTag(t, 1); err != nil {
				return c, wrapEntry(err, "skipping entry %q", nameBytes)
			}

			continue
		}

		// nameBytes equals a wanted name, so it is valid UTF-8.
		name := string(nameBytes)
		value, err := r.readTag(t, 1)
		if err != nil {
			return c, wrapEntry(err, "compound entry %q", name)
		}
		c.Set(name, value)
	}
}

// ReadRootSelective decodes a document header and then the root compound,
// keeping only the named top-level entries.
func (r *Reader) ReadRootSelective(fields []string) (string, *nbt.Compound, error) {
	name, err := r.readRootHeader()
	if err != nil {
		return "", nbt.NewCompound(), err
	}
	root, err := r.ReadCompoundSelective(fields...)

	return name, root, err
}

// FindPath looks up a top-level entry of the root compound by name.
//
// It reads the document header from offset 0, skips entries until the name
// matches and decodes only that entry. The cursor is restored to its previous
// position on return.
//
// Returns:
//   - nbt.Tag: The decoded entry, nil when absent
//   - bool: Whether the entry exists
//   - error: Framing or decoding error
func (r *Reader) FindPath(name string) (nbt.Tag, bool, error) {
	saved := r.pos
	defer func() { r.pos = saved }()

	r.pos = 0
	if _, err := r.readRootHeader(); err != nil {
		return nil, false, err
	}
	if err := r.enter(0); err != nil {
		return nil, false, err
	}

	for {
		t, err := r.ReadTagType()
		if err != nil {
			return nil, false, err
		}
		if t == format.TagEnd {
			return nil, false, nil
		}

		nameBytes, err := r.readStringBytes()
		if err != nil {
			return nil, false, err
		}
		if string(nameBytes) != name {
			if err := r.skipTag(t, 1); err != nil {
				return nil, false, err
			}

			continue
		}

		value, err := r.readTag(t, 1)
		if err != nil {
			return nil, false, wrapEntry(err, "compound entry %q", name)
		}

		return value, true, nil
	}
}
