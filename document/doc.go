// Package document reads and writes complete NBT files.
//
// A document is the unit stored in level.dat, player data and structure files:
// a single named root compound, optionally wrapped in a compression envelope.
// Decode detects the envelope; Encode applies the one recorded on the Document.
//
// # Basic Usage
//
//	doc, err := document.Decode(data)
//	if err != nil {
//	    return err
//	}
//	doc.Root.Set("LevelName", nbt.String("New World"))
//	out, err := doc.Encode()
//
// Reading only the entries you need:
//
//	doc, err := document.DecodeFields(data, []string{"Data"})
//	tag, ok, err := document.Find(data, "DataVersion")
//
// Bedrock Edition files are little-endian:
//
//	doc, err := document.Decode(data, document.WithLittleEndian())
package document
