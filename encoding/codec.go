package encoding

import (
	"github.com/arloliu/mcnbt/nbt"
)

// Marshal encodes a complete document and returns a freshly allocated copy of
// the bytes.
//
// Example:
//
//	root := nbt.NewCompound()
//	root.Set("foo", nbt.String("Hello!"))
//	data, err := encoding.Marshal("", root)
func Marshal(name string, root *nbt.Compound, opts ...Option) ([]byte, error) {
	w, err := NewWriter(opts...)
	if err != nil {
		return nil, err
	}
	defer w.Release()

	if err := w.WriteRoot(name, root); err != nil {
		return nil, err
	}

	out := make([]byte, w.Len())
	copy(out, w.Bytes())

	return out, nil
}

// Unmarshal decodes a complete document from uncompressed bytes.
// Trailing bytes after the root compound are ignored.
func Unmarshal(data []byte, opts ...Option) (string, *nbt.Compound, error) {
	r, err := NewReader(data, opts...)
	if err != nil {
		return "", nil, err
	}

	return r.ReadRoot()
}

// UnmarshalFields decodes a complete document keeping only the named top-level
// entries. The partial root is returned together with any error.
func UnmarshalFields(data []byte, fields []string, opts ...Option) (string, *nbt.Compound, error) {
	r, err := NewReader(data, opts...)
	if err != nil {
		return "", nil, err
	}

	return r.ReadRootSelective(fields)
}
