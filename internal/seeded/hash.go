// Package seeded provides the deterministic, non-cryptographic seed used to
// pick daily content variants.
package seeded

import (
	"unicode/utf16"
	"unicode/utf8"
)

const (
	offsetBasis uint32 = 2166136261
	prime       uint32 = 16777619
)

// Hash returns the 32-bit FNV-1a hash of text, folded over its UTF-16 code
// units. For text inside the Basic Multilingual Plane every unit is the
// character's code point; characters outside it contribute their surrogate
// pair. hash/fnv is not used because it folds over UTF-8 bytes, which
// diverges for any non-ASCII input.
//
// Postcondition: Hash("") == 2166136261; identical input always yields
// identical output. Collisions are expected.
func Hash(text string) uint32 {
	h := offsetBasis
	for _, r := range text {
		if r1, r2 := utf16.EncodeRune(r); r1 != utf8.RuneError {
			h = (h ^ uint32(r1)) * prime
			h = (h ^ uint32(r2)) * prime
			continue
		}
		h = (h ^ uint32(r)) * prime
	}
	return h
}

// Index reduces seed into [0, n).
//
// Precondition: n > 0.
func Index(seed uint32, n int) int {
	return int(seed % uint32(n))
}
