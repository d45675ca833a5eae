package hash

import (
	"encoding/binary"
	"math/bits"
)

const (
	prime32x1 uint32 = 2654435761
	prime32x2 uint32 = 2246822519
	prime32x3 uint32 = 3266489917
	prime32x4 uint32 = 668265263
	prime32x5 uint32 = 374761393
)

// Sum32 returns the seeded 32-bit xxHash of data. It is the block checksum of
// the lz4-java stream format, which uses a non-zero seed.
func Sum32(data []byte, seed uint32) uint32 {
	n := len(data)

	var h uint32
	if n >= 16 {
		v1 := seed + prime32x1 + prime32x2
		v2 := seed + prime32x2
		v3 := seed
		v4 := seed - prime32x1
		for len(data) >= 16 {
			v1 = round32(v1, binary.LittleEndian.Uint32(data[0:]))
			v2 = round32(v2, binary.LittleEndian.Uint32(data[4:]))
			v3 = round32(v3, binary.LittleEndian.Uint32(data[8:]))
			v4 = round32(v4, binary.LittleEndian.Uint32(data[12:]))
			data = data[16:]
		}
		h = bits.RotateLeft32(v1, 1) + bits.RotateLeft32(v2, 7) +
			bits.RotateLeft32(v3, 12) + bits.RotateLeft32(v4, 18)
	} else {
		h = seed + prime32x5
	}

	h += uint32(n) //nolint:gosec
	for len(data) >= 4 {
		h += binary.LittleEndian.Uint32(data) * prime32x3
		h = bits.RotateLeft32(h, 17) * prime32x4
		data = data[4:]
	}
	for _, b := range data {
		h += uint32(b) * prime32x5
		h = bits.RotateLeft32(h, 11) * prime32x1
	}

	h ^= h >> 15
	h *= prime32x2
	h ^= h >> 13
	h *= prime32x3
	h ^= h >> 16

	return h
}

func round32(acc, lane uint32) uint32 {
	acc += lane * prime32x2
	return bits.RotateLeft32(acc, 13) * prime32x1
}
