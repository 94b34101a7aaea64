// Package catalog provides the room model, the immutable room catalog, and
// the schema for externally authored room content.
package catalog

import (
	"fmt"
	"slices"
)

// Tone tags the mood of a variant line.
type Tone string

// The closed set of tones.
const (
	Gentle  Tone = "gentle"
	Neutral Tone = "neutral"
	Sharp   Tone = "sharp"
)

// DefaultTone is assigned to authored variants that omit a tone.
const DefaultTone = Neutral

// Tones lists every valid tone in declaration order.
var Tones = []Tone{Gentle, Neutral, Sharp}

// Valid reports whether t is one of the three declared tones.
func (t Tone) Valid() bool {
	return slices.Contains(Tones, t)
}

// ParseTone converts s to a Tone.
//
// Postcondition: Returns a valid Tone, or an error wrapping ErrInvalidTone.
func ParseTone(s string) (Tone, error) {
	t := Tone(s)
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q (want one of %v)", ErrInvalidTone, s, Tones)
	}
	return t, nil
}

// Variant is a line of text associated with a tone.
type Variant struct {
	Tone Tone   `json:"tone"`
	Line string `json:"line"`
}

// Room is a static content node.
type Room struct {
	// Slug uniquely identifies the room within a catalog.
	Slug string `json:"slug"`
	// Title is the display name.
	Title string `json:"title"`
	// Exits lists slugs of rooms reachable from here. Targets may not exist.
	Exits []string `json:"exits"`
	// Variants holds the tone-tagged lines for daily selection.
	Variants []Variant `json:"variants"`
	// Content is the free-form room description.
	Content string `json:"content"`
}

// HasExit reports whether slug appears in the room's exits.
func (r Room) HasExit(slug string) bool {
	return slices.Contains(r.Exits, slug)
}

// clone returns a copy that shares no slices with r.
func (r Room) clone() Room {
	out := r
	out.Exits = slices.Clone(r.Exits)
	if out.Exits == nil {
		out.Exits = []string{}
	}
	out.Variants = slices.Clone(r.Variants)
	if out.Variants == nil {
		out.Variants = []Variant{}
	}
	return out
}
