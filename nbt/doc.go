// Package nbt defines the in-memory tag model of the NBT binary format.
//
// A Tag is one of 13 concrete types, matching the wire type ids 0 through 12:
//
//	End, Byte, Short, Int, Long, Float, Double, ByteArray, String,
//	*List, *Compound, IntArray, LongArray
//
// The set is closed: only types in this package implement Tag. Scalars and
// arrays are plain named Go types, so construction is a conversion:
//
//	root := nbt.NewCompound()
//	root.Set("name", nbt.String("Steve"))
//	root.Set("health", nbt.Float(20))
//	root.Set("pos", nbt.MustList(format.TagDouble, nbt.Double(1), nbt.Double(64), nbt.Double(-3)))
//
// # Ordering
//
// Compound preserves insertion order, and that order is the serialized byte
// order. Two compounds built in the same order encode to identical bytes.
// Equal ignores order.
//
// # Lists
//
// Lists are homogeneous. NewList, Append and Set reject elements whose type
// differs from the declared element type with errs.ErrListTypeMismatch. An
// empty list declared as End adopts the type of the first element appended.
//
// # Lenient accessors
//
// AsNumber, AsString, Get and the Compound Get* helpers never fail: they return
// a zero value when the tag is missing or has another type. Code that needs to
// distinguish a wrong type from a missing one should use a type switch or
// assertion on the Tag itself.
package nbt
