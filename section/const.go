package section

// Region file layout.
const (
	SectorSize         = 4096                        // region files are allocated in 4KiB sectors
	GridSize           = 32                          // chunks per region edge
	SlotCount          = GridSize * GridSize         // number of chunk slots in a region
	LocationEntrySize  = 4                           // 3-byte sector offset + 1-byte sector count
	TimestampEntrySize = 4                           // u32 big-endian modification time
	LocationTableSize  = SlotCount * LocationEntrySize
	TimestampTableSize = SlotCount * TimestampEntrySize
	HeaderSize         = LocationTableSize + TimestampTableSize // 8192, two sectors
	HeaderSectors      = HeaderSize / SectorSize                // first sector usable by payloads
	PayloadHeaderSize  = 5                                      // u32 length + u8 compression id
	MaxSectorCount     = 0xFF                                   // largest count a location entry holds
	MaxSectorOffset    = 0xFFFFFF                               // largest 24-bit sector offset
)

// SlotIndex returns the slot of chunk (x, z) in the location and timestamp
// tables. Coordinates must already be within [0, GridSize).
func SlotIndex(x, z int) int {
	return x + z*GridSize
}

// SlotCoords is the inverse of SlotIndex.
func SlotCoords(index int) (x, z int) {
	return index % GridSize, index / GridSize
}

// ValidCoords reports whether (x, z) addresses a slot.
func ValidCoords(x, z int) bool {
	return x >= 0 && x < GridSize && z >= 0 && z < GridSize
}

// SectorsFor returns the number of sectors needed to store a payload of
// payloadLen bytes together with its 5-byte frame header.
func SectorsFor(payloadLen int) int {
	return (payloadLen + PayloadHeaderSize + SectorSize - 1) / SectorSize
}
