package seeded

import (
	"errors"
	"time"
)

// DateLayout is the calendar-day format mixed into daily seeds.
const DateLayout = "2006-01-02"

// ErrNoVariants is returned when a daily pick is requested from an empty set.
var ErrNoVariants = errors.New("no variants to choose from")

// Clock reports the current instant.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always reports the same instant.
type FixedClock time.Time

// Now returns the pinned instant.
func (c FixedClock) Now() time.Time { return time.Time(c) }

// Selector derives the calendar date used as the daily rollover boundary.
// The day rolls over at midnight in the selector's location.
type Selector struct {
	clock Clock
	loc   *time.Location
}

// NewSelector creates a Selector reading clock in loc.
// A nil clock means SystemClock; a nil loc means UTC.
//
// Postcondition: Returns a non-nil Selector.
func NewSelector(clock Clock, loc *time.Location) *Selector {
	if clock == nil {
		clock = SystemClock{}
	}
	if loc == nil {
		loc = time.UTC
	}
	return &Selector{clock: clock, loc: loc}
}

// Now returns the clock's current instant.
func (s *Selector) Now() time.Time {
	return s.clock.Now()
}

// Today returns the current calendar date as YYYY-MM-DD in the selector's
// location.
func (s *Selector) Today() string {
	return s.clock.Now().In(s.loc).Format(DateLayout)
}

// Location returns the location that defines the day boundary.
func (s *Selector) Location() *time.Location {
	return s.loc
}

// DailyVariant picks one element of variants keyed by key and today's date.
// The pick is stable for the whole calendar day and changes only at rollover.
//
// Postcondition: Returns variants[Hash(key+Today()) % len(variants)], or
// ErrNoVariants when variants is empty.
func DailyVariant[T any](s *Selector, key string, variants []T) (T, error) {
	var zero T
	if len(variants) == 0 {
		return zero, ErrNoVariants
	}
	seed := Hash(key + s.Today())
	return variants[Index(seed, len(variants))], nil
}
