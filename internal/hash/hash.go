// Package hash provides the xxHash variants mcnbt needs: xxHash64 to
// fingerprint chunk payloads and seeded xxHash32 for LZ4Block checksums.
package hash

import "github.com/cespare/xxhash/v2"

// Sum64 returns the xxHash64 of data.
func Sum64(data []byte) uint64 {
	return xxhash.Sum64(data)
}
