package catalog

import (
	"fmt"

	"github.com/cory-johannsen/liminal/internal/random"
)

// DefaultNeighborLimit is the number of neighbors shown for a room.
const DefaultNeighborLimit = 3

// Catalog is an immutable, ordered set of rooms.
// It is safe for concurrent use as long as its Source is.
type Catalog struct {
	rooms []Room
	src   random.Source
}

// NewCatalog builds a Catalog from rooms, preserving their order.
// Exits are not checked; dangling exits are tolerated. A nil src means
// random.NewCryptoSource().
//
// Postcondition: Returns a Catalog holding private copies of rooms, or an
// error wrapping ErrEmptySlug or ErrDuplicateSlug.
func NewCatalog(rooms []Room, src random.Source) (*Catalog, error) {
	if src == nil {
		src = random.NewCryptoSource()
	}
	seen := make(map[string]struct{}, len(rooms))
	c := &Catalog{rooms: make([]Room, 0, len(rooms)), src: src}
	for i, r := range rooms {
		if r.Slug == "" {
			return nil, fmt.Errorf("room %d (%q): %w", i, r.Title, ErrEmptySlug)
		}
		if _, ok := seen[r.Slug]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateSlug, r.Slug)
		}
		seen[r.Slug] = struct{}{}
		c.rooms = append(c.rooms, r.clone())
	}
	return c, nil
}

// Len returns the number of rooms.
func (c *Catalog) Len() int {
	return len(c.rooms)
}

// Rooms returns copies of all rooms in catalog order.
func (c *Catalog) Rooms() []Room {
	out := make([]Room, len(c.rooms))
	for i, r := range c.rooms {
		out[i] = r.clone()
	}
	return out
}

// Lookup returns the room with the exact slug.
//
// Postcondition: Returns (room, true) if found, or (Room{}, false) otherwise.
func (c *Catalog) Lookup(slug string) (Room, bool) {
	for _, r := range c.rooms {
		if r.Slug == slug {
			return r.clone(), true
		}
	}
	return Room{}, false
}

// Neighbors returns up to limit rooms reachable through slug's exits, in an
// order drawn from the catalog's Source. With the default crypto source two
// identical calls generally return different orders.
//
// Postcondition: The result is non-nil, never contains slug itself, holds no
// duplicates, and is empty when slug is unknown or limit <= 0.
func (c *Catalog) Neighbors(slug string, limit int) []Room {
	current, ok := c.Lookup(slug)
	if !ok || limit <= 0 {
		return []Room{}
	}

	out := make([]Room, 0, len(current.Exits))
	for _, r := range c.rooms {
		if r.Slug != slug && current.HasExit(r.Slug) {
			out = append(out, r.clone())
		}
	}

	random.Shuffle(c.src, out)
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// DanglingExit is an exit whose target is not in the catalog.
type DanglingExit struct {
	From string
	To   string
}

// DanglingExits lists every exit that does not resolve, in catalog order.
func (c *Catalog) DanglingExits() []DanglingExit {
	known := make(map[string]struct{}, len(c.rooms))
	for _, r := range c.rooms {
		known[r.Slug] = struct{}{}
	}
	var out []DanglingExit
	for _, r := range c.rooms {
		for _, e := range r.Exits {
			if _, ok := known[e]; !ok {
				out = append(out, DanglingExit{From: r.Slug, To: e})
			}
		}
	}
	return out
}
