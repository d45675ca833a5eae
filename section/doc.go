// Package section defines the binary layout of region files.
//
// A region file stores the chunks of a 32×32 chunk area. It starts with two
// fixed tables followed by sector-aligned payloads:
//
//	┌─────────────────────────────────────────────────────────┐
//	│ Location table (1024 × 4 bytes, sector 0)               │
//	│  - 3-byte sector offset + 1-byte sector count per slot  │
//	├─────────────────────────────────────────────────────────┤
//	│ Timestamp table (1024 × 4 bytes, sector 1)              │
//	│  - u32 modification time per slot                       │
//	├─────────────────────────────────────────────────────────┤
//	│ Payloads (from sector 2, each padded to 4096 bytes)     │
//	│  - u32 length, u8 compression id, compressed NBT        │
//	└─────────────────────────────────────────────────────────┘
//
// Slot i holds chunk (i % 32, i / 32). All multi-byte fields are big-endian.
//
// # Compression IDs
//
//	1 = gzip, 2 = zlib, 3 = none, 4 = LZ4Block (lz4-java block stream)
//
// CompressionIDFor and CompressionID.CompressionType convert between these ids
// and format.CompressionType.
//
// # Thread Safety
//
// All types in this package are immutable value types and are safe for concurrent use.
package section
