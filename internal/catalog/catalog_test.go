package catalog

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/liminal/internal/random"
)

func testCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := NewCatalog(Builtin(), random.NewSeededSource(1))
	require.NoError(t, err)
	return c
}

func slugs(rooms []Room) []string {
	out := make([]string, len(rooms))
	for i, r := range rooms {
		out[i] = r.Slug
	}
	return out
}

func TestNewCatalog_Builtin(t *testing.T) {
	c := testCatalog(t)
	assert.Equal(t, 9, c.Len())
	assert.Equal(t, []string{
		"atrium", "mirror", "stairs", "corridor", "attic",
		"garden", "memory", "greenhouse", "threshold",
	}, slugs(c.Rooms()))
}

func TestNewCatalog_DuplicateSlug(t *testing.T) {
	_, err := NewCatalog([]Room{{Slug: "a"}, {Slug: "a"}}, nil)
	assert.ErrorIs(t, err, ErrDuplicateSlug)
}

func TestNewCatalog_EmptySlug(t *testing.T) {
	_, err := NewCatalog([]Room{{Title: "Nameless"}}, nil)
	assert.ErrorIs(t, err, ErrEmptySlug)
}

func TestNewCatalog_ToleratesDanglingExits(t *testing.T) {
	c, err := NewCatalog([]Room{{Slug: "a", Exits: []string{"nowhere"}}}, nil)
	require.NoError(t, err)
	assert.Equal(t, []DanglingExit{{From: "a", To: "nowhere"}}, c.DanglingExits())
	assert.Empty(t, c.Neighbors("a", DefaultNeighborLimit))
}

func TestBuiltin_HasNoDanglingExits(t *testing.T) {
	assert.Empty(t, testCatalog(t).DanglingExits())
}

func TestBuiltin_TonesAreValid(t *testing.T) {
	for _, r := range Builtin() {
		assert.Len(t, r.Variants, 3, "room %q", r.Slug)
		for _, v := range r.Variants {
			assert.True(t, v.Tone.Valid(), "room %q tone %q", r.Slug, v.Tone)
			assert.NotEmpty(t, v.Line)
		}
	}
}

func TestCatalog_IsolatedFromInput(t *testing.T) {
	rooms := []Room{{Slug: "a", Exits: []string{"b"}}, {Slug: "b"}}
	c, err := NewCatalog(rooms, nil)
	require.NoError(t, err)

	rooms[0].Exits[0] = "mutated"
	got, ok := c.Lookup("a")
	require.True(t, ok)
	assert.Equal(t, []string{"b"}, got.Exits)

	got.Exits[0] = "mutated again"
	again, _ := c.Lookup("a")
	assert.Equal(t, []string{"b"}, again.Exits)
}

func TestCatalog_Lookup(t *testing.T) {
	c := testCatalog(t)

	room, ok := c.Lookup("atrium")
	require.True(t, ok)
	assert.Equal(t, "The Atrium", room.Title)
	assert.Equal(t, []string{"mirror", "stairs"}, room.Exits)

	_, ok = c.Lookup("nonexistent")
	assert.False(t, ok)

	_, ok = c.Lookup("ATRIUM")
	assert.False(t, ok, "lookup is exact")
}

func TestCatalog_Neighbors(t *testing.T) {
	c := testCatalog(t)
	got := c.Neighbors("atrium", DefaultNeighborLimit)
	assert.ElementsMatch(t, []string{"mirror", "stairs"}, slugs(got))
}

func TestCatalog_Neighbors_Limit(t *testing.T) {
	c := testCatalog(t)
	assert.Len(t, c.Neighbors("atrium", 1), 1)
	assert.Empty(t, c.Neighbors("atrium", 0))
	assert.Empty(t, c.Neighbors("atrium", -1))
}

func TestCatalog_Neighbors_Unknown(t *testing.T) {
	got := testCatalog(t).Neighbors("nonexistent", DefaultNeighborLimit)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestCatalog_Neighbors_ExcludesSelf(t *testing.T) {
	c, err := NewCatalog([]Room{
		{Slug: "loop", Exits: []string{"loop", "other"}},
		{Slug: "other"},
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"other"}, slugs(c.Neighbors("loop", DefaultNeighborLimit)))
}

func TestCatalog_Neighbors_SeededSourceIsReproducible(t *testing.T) {
	rooms := []Room{
		{Slug: "hub", Exits: []string{"a", "b", "c", "d", "e"}},
		{Slug: "a"}, {Slug: "b"}, {Slug: "c"}, {Slug: "d"}, {Slug: "e"},
	}
	c1, err := NewCatalog(rooms, random.NewSeededSource(99))
	require.NoError(t, err)
	c2, err := NewCatalog(rooms, random.NewSeededSource(99))
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		assert.Equal(t, slugs(c1.Neighbors("hub", 3)), slugs(c2.Neighbors("hub", 3)))
	}
}

// genCatalogRooms draws a set of uniquely named rooms whose exits may point at
// themselves, at each other, or at rooms that do not exist.
func genCatalogRooms(t *rapid.T) []Room {
	n := rapid.IntRange(1, 8).Draw(t, "rooms")
	pool := make([]string, 0, n+3)
	for i := 0; i < n; i++ {
		pool = append(pool, fmt.Sprintf("room_%d", i))
	}
	pool = append(pool, "ghost_a", "ghost_b", "ghost_c")

	rooms := make([]Room, n)
	for i := range rooms {
		rooms[i] = Room{
			Slug:  pool[i],
			Title: pool[i],
			Exits: rapid.SliceOfNDistinct(rapid.SampledFrom(pool), 0, len(pool), rapid.ID[string]).Draw(t, fmt.Sprintf("exits_%d", i)),
		}
	}
	return rooms
}

func TestPropertyNeighborsDrawnFromExits(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		rooms := genCatalogRooms(t)
		c, err := NewCatalog(rooms, random.NewSeededSource(rapid.Uint64().Draw(t, "seed")))
		if err != nil {
			t.Fatalf("NewCatalog: %v", err)
		}
		room := rapid.SampledFrom(rooms).Draw(t, "room")
		limit := rapid.IntRange(0, 5).Draw(t, "limit")

		valid := 0
		for _, e := range room.Exits {
			if _, ok := c.Lookup(e); ok && e != room.Slug {
				valid++
			}
		}

		got := c.Neighbors(room.Slug, limit)
		if want := min(valid, limit); len(got) != want {
			t.Fatalf("len(Neighbors(%q, %d)) = %d, want %d", room.Slug, limit, len(got), want)
		}
		seen := make(map[string]bool)
		for _, r := range got {
			if r.Slug == room.Slug {
				t.Fatalf("neighbors of %q include itself", room.Slug)
			}
			if !room.HasExit(r.Slug) {
				t.Fatalf("neighbor %q is not an exit of %q", r.Slug, room.Slug)
			}
			if seen[r.Slug] {
				t.Fatalf("neighbor %q repeated", r.Slug)
			}
			seen[r.Slug] = true
		}
	})
}

func TestPropertyUnknownSlugIsAbsent(t *testing.T) {
	c, err := NewCatalog(Builtin(), nil)
	require.NoError(t, err)
	rapid.Check(t, func(t *rapid.T) {
		slug := rapid.StringMatching(`[a-z]{1,12}`).Draw(t, "slug")
		if _, ok := c.Lookup(slug); ok {
			t.Skip("generated a known slug")
		}
		if got := c.Neighbors(slug, DefaultNeighborLimit); len(got) != 0 {
			t.Fatalf("Neighbors(%q) = %v, want empty", slug, got)
		}
	})
}
