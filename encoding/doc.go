// Package encoding implements the NBT binary codec: a cursor-based Reader and a
// buffered Writer translating between byte slices and nbt.Tag trees.
//
// # Wire Format
//
// A document is a single named tag:
//
//	[type:u8][name length:u16][name:UTF-8][payload]
//
// Payloads by type:
//
//	Byte, Short, Int, Long     fixed width, two's complement
//	Float, Double              IEEE 754 bit pattern
//	ByteArray, IntArray,       [count:i32][count fixed-width elements]
//	LongArray
//	String                     [length:u16][UTF-8 bytes]
//	List                       [element type:u8][count:i32][count payloads]
//	Compound                   repeated [type:u8][name][payload], closed by a 0 byte
//
// Java Edition uses big-endian (the default); Bedrock Edition uses little-endian,
// selected with WithLittleEndian.
//
// # Reading
//
//	r, err := encoding.NewReader(data)
//	name, root, err := r.ReadRoot()
//
// # Selective Reading
//
// The format carries no offset index, so finding a field means walking every
// entry before it. ReadRootSelective and ReadCompoundSelective decode only the
// named top-level fields and skip the rest with SkipTag, which advances past a
// value without allocating. SkipTag and ReadTag always leave the cursor at the
// same position for the same bytes.
//
//	_, root, err := r.ReadRootSelective("DataVersion", "Status")
//
// Skipping validates framing (type ids, lengths, depth) but not string
// contents, so a skipped field holding invalid UTF-8 does not fail the parse.
//
// # Writing
//
//	w, err := encoding.NewWriter()
//	defer w.Release()
//	if err := w.WriteRoot("", root); err != nil {
//	    return err
//	}
//	out := bytes.Clone(w.Bytes())
//
// # Depth Limit
//
// Reader and Writer refuse to nest more than DefaultMaxDepth lists and compounds
// (configurable with WithMaxDepth), so adversarial input cannot drive unbounded
// recursion and a compound that contains itself cannot loop forever.
//
// # Thread Safety
//
// Reader and Writer are not safe for concurrent use.
package encoding
