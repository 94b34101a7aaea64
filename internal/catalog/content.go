package catalog

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// ContentExtensions lists the file extensions treated as room content.
var ContentExtensions = []string{".md", ".markdown"}

var frontmatterFence = []byte("---")

// ParseContent builds a Room from a Markdown document with a YAML front
// matter block delimited by "---" lines. The body after the closing fence
// becomes the room's content.
//
// Precondition: slug must be non-empty.
// Postcondition: Returns a schema-valid Room, or an error wrapping
// ErrInvalidContent.
func ParseContent(slug string, data []byte) (Room, error) {
	if slug == "" {
		return Room{}, ErrEmptySlug
	}
	front, body, err := splitFrontmatter(data)
	if err != nil {
		return Room{}, fmt.Errorf("room %q: %w", slug, err)
	}
	fm, err := ValidateFrontmatter(front)
	if err != nil {
		return Room{}, fmt.Errorf("room %q: %w", slug, err)
	}
	return Room{
		Slug:     slug,
		Title:    fm.Title,
		Exits:    fm.Exits,
		Variants: fm.Variants,
		Content:  strings.TrimSpace(string(body)),
	}, nil
}

// splitFrontmatter separates the front matter block from the body.
func splitFrontmatter(data []byte) (front, body []byte, err error) {
	data = bytes.TrimPrefix(data, []byte("\ufeff"))
	lines := bytes.SplitAfter(data, []byte("\n"))
	if len(lines) == 0 || !isFence(lines[0]) {
		return nil, nil, fmt.Errorf("%w: missing front matter", ErrInvalidContent)
	}
	offset := len(lines[0])
	for _, line := range lines[1:] {
		if isFence(line) {
			return data[len(lines[0]):offset], data[offset+len(line):], nil
		}
		offset += len(line)
	}
	return nil, nil, fmt.Errorf("%w: unterminated front matter", ErrInvalidContent)
}

func isFence(line []byte) bool {
	return bytes.Equal(bytes.TrimRight(line, " \t\r\n"), frontmatterFence)
}

// LoadContentFile reads a single room file. The slug is the file name
// without its extension.
//
// Postcondition: Returns a schema-valid Room or a non-nil error.
func LoadContentFile(path string) (Room, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Room{}, fmt.Errorf("reading content file %s: %w", path, err)
	}
	name := filepath.Base(path)
	return ParseContent(strings.TrimSuffix(name, filepath.Ext(name)), data)
}

// LoadContentDir loads every content file in dir, sorted by file name.
// Subdirectories and files with other extensions are skipped.
//
// Postcondition: Returns at least one Room, or the first error encountered.
func LoadContentDir(dir string) ([]Room, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading content directory %s: %w", dir, err)
	}

	var rooms []Room
	for _, entry := range entries {
		if entry.IsDir() || !isContentFile(entry.Name()) {
			continue
		}
		room, err := LoadContentFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("loading content from %s: %w", entry.Name(), err)
		}
		rooms = append(rooms, room)
	}

	if len(rooms) == 0 {
		return nil, fmt.Errorf("no content files found in %s", dir)
	}
	return rooms, nil
}

func isContentFile(name string) bool {
	return slices.Contains(ContentExtensions, strings.ToLower(filepath.Ext(name)))
}
