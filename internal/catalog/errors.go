package catalog

import "errors"

var (
	// ErrEmptySlug is returned when a room has no identifier.
	ErrEmptySlug = errors.New("room slug must not be empty")
	// ErrDuplicateSlug is returned when two rooms share an identifier.
	ErrDuplicateSlug = errors.New("duplicate room slug")
	// ErrInvalidTone is returned for a tone outside the closed enumeration.
	ErrInvalidTone = errors.New("invalid tone")
	// ErrInvalidContent is returned when authored content does not match the schema.
	ErrInvalidContent = errors.New("invalid room content")
)
