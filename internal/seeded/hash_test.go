package seeded

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestHash_Empty(t *testing.T) {
	assert.Equal(t, uint32(2166136261), Hash(""))
}

func TestHash_KnownValues(t *testing.T) {
	cases := []struct {
		in   string
		want uint32
	}{
		{"a", 3826002220},
		{"foobar", 3214735720},
		{"atrium2024-01-01", 1005029803},
		{"default2024-01-01", 911443834},
		{"é", 1812687940},
		// Outside the BMP the surrogate pair is hashed unit by unit.
		{"😀", 3409036472},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Hash(tc.in), "Hash(%q)", tc.in)
	}
}

func TestPropertyHashDeterministic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := rapid.String().Draw(t, "text")
		if Hash(s) != Hash(s) {
			t.Fatalf("Hash(%q) not deterministic", s)
		}
	})
}

func TestPropertyIndexInRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		seed := rapid.Uint32().Draw(t, "seed")
		n := rapid.IntRange(1, 64).Draw(t, "n")
		idx := Index(seed, n)
		if idx < 0 || idx >= n {
			t.Fatalf("Index(%d, %d) = %d", seed, n, idx)
		}
	})
}
