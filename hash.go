package bucketmap

import (
	"unicode/utf16"

	"github.com/cespare/xxhash/v2"
)

// Hasher maps a key to a bucket index in [0, capacity).
//
// A Hasher must be a deterministic function of key and capacity; the map
// relies on a key always landing in the same bucket for a given capacity.
type Hasher func(key string, capacity int) int

const polynomialPrime = 31

// PolynomialHash is the default bucket hash. It folds the UTF-16 code units
// of key into h = (31*h + c) mod capacity, reducing after every unit so the
// accumulator never exceeds capacity and cannot overflow for long keys.
// Characters outside the BMP contribute both halves of their surrogate pair.
func PolynomialHash(key string, capacity int) int {
	c := uint64(capacity)
	var h uint64
	for _, r := range key {
		if r >= 0x10000 {
			hi, lo := utf16.EncodeRune(r)
			h = (polynomialPrime*h + uint64(hi)) % c
			h = (polynomialPrime*h + uint64(lo)) % c
			continue
		}
		h = (polynomialPrime*h + uint64(r)) % c
	}
	return int(h)
}

const (
	offset32 = 2166136261
	prime32  = 16777619
)

// FNVHash reduces a 32-bit FNV-1a hash of the key bytes modulo capacity.
func FNVHash(key string, capacity int) int {
	hash := uint32(offset32)
	for i := 0; i < len(key); i++ {
		hash ^= uint32(key[i])
		hash *= prime32
	}
	return int(uint64(hash) % uint64(capacity))
}

// XXHash reduces the 64-bit xxHash of key modulo capacity.
func XXHash(key string, capacity int) int {
	return int(xxhash.Sum64String(key) % uint64(capacity))
}
