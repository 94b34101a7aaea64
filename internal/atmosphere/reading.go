// Package atmosphere derives the daily tone, mood, and lighting for a room
// from its seed.
package atmosphere

import (
	"time"

	"github.com/cory-johannsen/liminal/internal/catalog"
	"github.com/cory-johannsen/liminal/internal/seeded"
)

// DefaultRoom is used when a request names no room.
const DefaultRoom = "default"

// TimestampLayout renders instants as ISO 8601 UTC with milliseconds.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Mood is the emotional register of a reading.
type Mood string

// Moods, index-aligned with catalog.Tones.
const (
	Contemplative Mood = "contemplative"
	Restless      Mood = "restless"
	Peaceful      Mood = "peaceful"
)

// Lighting is the visual register of a reading.
type Lighting string

// Lighting values, index-aligned with catalog.Tones.
const (
	Bright Lighting = "bright"
	Dim    Lighting = "dim"
	Golden Lighting = "golden"
)

// Moods and Lightings share one index with catalog.Tones, so a reading's
// tone, mood, and lighting always move together.
var (
	Moods     = []Mood{Contemplative, Restless, Peaceful}
	Lightings = []Lighting{Bright, Dim, Golden}
)

// Reading is the derived state for one room on one date.
type Reading struct {
	Seed         uint32       `json:"seed"`
	Room         string       `json:"room"`
	Date         string       `json:"date"`
	VariantIndex int          `json:"variantIndex"`
	Tone         catalog.Tone `json:"tone"`
	Mood         Mood         `json:"mood"`
	Lighting     Lighting     `json:"lighting"`
	Timestamp    string       `json:"timestamp"`
}

// Derive computes the reading for room on date. date is treated as opaque
// text; malformed dates hash like any other string.
//
// Postcondition: Tone, Mood, and Lighting are all taken at VariantIndex ==
// Seed % 3; Timestamp is now rendered in UTC.
func Derive(room, date string, now time.Time) Reading {
	seed := seeded.Hash(room + date)
	idx := seeded.Index(seed, len(catalog.Tones))
	return Reading{
		Seed:         seed,
		Room:         room,
		Date:         date,
		VariantIndex: idx,
		Tone:         catalog.Tones[idx],
		Mood:         Moods[idx],
		Lighting:     Lightings[idx],
		Timestamp:    now.UTC().Format(TimestampLayout),
	}
}

// Service resolves defaults against a seeded.Selector before deriving.
type Service struct {
	sel *seeded.Selector
}

// NewService creates a Service.
//
// Precondition: sel must be non-nil.
func NewService(sel *seeded.Selector) *Service {
	return &Service{sel: sel}
}

// Read derives the reading for room and date, substituting DefaultRoom and
// today's date for empty values. Nothing is cached.
func (s *Service) Read(room, date string) Reading {
	if room == "" {
		room = DefaultRoom
	}
	if date == "" {
		date = s.sel.Today()
	}
	return Derive(room, date, s.sel.Now())
}
