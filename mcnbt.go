// Package mcnbt reads and writes Minecraft NBT documents and region files.
//
// NBT (Named Binary Tag) is a tree of typed, named values: numbers, strings,
// arrays, homogeneous lists and ordered compounds. Documents such as level.dat
// are stored as a single root compound, usually inside a gzip envelope. Region
// files (.mca, .mcr) pack up to 1024 independently compressed chunk documents
// into 4KiB sectors.
//
// # Core Features
//
//   - Full NBT model with order-preserving compounds and strictly typed lists
//   - Big-endian (Java Edition) and little-endian (Bedrock) byte orders
//   - Gzip, zlib, LZ4 frame, LZ4Block and zstd envelopes with automatic detection
//   - Selective decoding of named top-level fields, skipping the rest without
//     allocating
//   - Region files with lazily decoded, cached chunk documents
//   - Configurable nesting depth limit for untrusted input
//
// # Basic Usage
//
// Reading and modifying a document:
//
//	import "github.com/arloliu/mcnbt"
//
//	doc, err := mcnbt.Read(levelDat)
//	if err != nil {
//	    return err
//	}
//	data, _ := doc.Root.GetCompound("Data")
//	fmt.Println(data.GetString("LevelName"))
//
//	data.Set("LevelName", nbt.String("New World"))
//	out, err := mcnbt.Write(doc)
//
// Reading only the fields you need:
//
//	doc, err := mcnbt.ReadFields(chunkData, []string{"xPos", "zPos", "Status"})
//
// Working with regions:
//
//	r, err := mcnbt.ReadRegion(mcaData)
//	for c := range r.All() {
//	    root, err := c.Root()
//	    ...
//	}
//	out, err := mcnbt.WriteRegion(r)
//
// # Package Structure
//
// This package provides convenient top-level wrappers for the most common use
// cases. For fine-grained control use the packages directly:
//
//   - nbt: the tag value model
//   - encoding: the uncompressed binary reader and writer
//   - compress: envelope codecs and detection
//   - document: compressed documents
//   - section: region byte layout
//   - region: region files and chunks
//   - session: handle registry for hosts that cannot hold Go pointers
package mcnbt

import (
	"github.com/arloliu/mcnbt/compress"
	"github.com/arloliu/mcnbt/document"
	"github.com/arloliu/mcnbt/format"
	"github.com/arloliu/mcnbt/nbt"
	"github.com/arloliu/mcnbt/region"
)

// Read decodes a document, detecting its compression from the leading bytes.
//
// Parameters:
//   - data: Document bytes, compressed or not
//   - opts: Optional byte order and depth options (see document.Option)
//
// Returns:
//   - *document.Document: The decoded document. Its Compression field records
//     the detected envelope so Write reproduces it.
//   - error: Decompression or decoding error
//
// Example:
//
//	doc, err := mcnbt.Read(data, document.WithLittleEndian())
func Read(data []byte, opts ...document.Option) (*document.Document, error) {
	return document.Decode(data, opts...)
}

// ReadFields decodes a document keeping only the named top-level entries of the
// root compound. Entries not listed are skipped without being built.
//
// On a decoding error the entries read so far are returned together with the
// error. An empty fields list decodes everything.
//
// Example:
//
//	doc, err := mcnbt.ReadFields(data, []string{"DataVersion", "Status"})
func ReadFields(data []byte, fields []string, opts ...document.Option) (*document.Document, error) {
	return document.DecodeFields(data, fields, opts...)
}

// Write encodes doc using its own compression and byte order.
func Write(doc *document.Document) ([]byte, error) {
	return doc.Encode()
}

// ReadRegion parses a region file. Chunk documents are decoded lazily.
//
// Available options:
//   - region.WithLogger(logger): receive debug messages for skipped slots
//   - region.WithMaxDepth(depth): nesting limit for chunk documents
func ReadRegion(data []byte, opts ...region.Option) (*region.Region, error) {
	return region.Read(data, opts...)
}

// WriteRegion serializes r into a compact region file.
func WriteRegion(r *region.Region) ([]byte, error) {
	return r.Write()
}

// DetectCompression reports the envelope of data from its leading bytes.
// Unrecognized input is reported as format.CompressionNone.
func DetectCompression(data []byte) format.CompressionType {
	return compress.Detect(data)
}

// NewCompound returns an empty compound, ready to be used as a document root.
func NewCompound() *nbt.Compound {
	return nbt.NewCompound()
}
