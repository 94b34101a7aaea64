package catalog

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Frontmatter is the validated shape of an authored room's front matter:
//
//	title:    string (required)
//	exits:    [string] (default [])
//	variants: [{tone: gentle|neutral|sharp (default neutral), line: string}] (default [])
//
// Unknown keys are ignored.
type Frontmatter struct {
	Title    string
	Exits    []string
	Variants []Variant
}

// FieldError describes one schema violation.
type FieldError struct {
	// Path locates the offending value, e.g. "variants[1].tone".
	Path string
	// Msg explains the violation.
	Msg string
	// Err is an optional more specific sentinel such as ErrInvalidTone.
	Err error
}

func (e *FieldError) Error() string {
	return e.Path + ": " + e.Msg
}

// Unwrap exposes ErrInvalidContent and, when set, the specific cause.
func (e *FieldError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrInvalidContent, e.Err}
	}
	return []error{ErrInvalidContent}
}

// ValidateFrontmatter parses data as YAML and checks it against the room
// content schema, applying defaults for omitted optional fields.
//
// Postcondition: Returns a Frontmatter with non-nil Exits and Variants, or an
// error joining one *FieldError per violation.
func ValidateFrontmatter(data []byte) (Frontmatter, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Frontmatter{}, fmt.Errorf("%w: parsing front matter: %v", ErrInvalidContent, err)
	}
	root := resolve(&doc)
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			root = &yaml.Node{Kind: yaml.MappingNode}
		} else {
			root = resolve(root.Content[0])
		}
	}
	if root.Kind == 0 {
		root = &yaml.Node{Kind: yaml.MappingNode}
	}
	return validateRoot(root)
}

func validateRoot(root *yaml.Node) (Frontmatter, error) {
	fm := Frontmatter{Exits: []string{}, Variants: []Variant{}}
	var errs []error
	fail := func(path, format string, args ...any) {
		errs = append(errs, &FieldError{Path: path, Msg: fmt.Sprintf(format, args...)})
	}

	if root.Kind != yaml.MappingNode {
		fail("$", "front matter must be a mapping")
		return Frontmatter{}, errors.Join(errs...)
	}

	fields := mappingFields(root)

	switch title, ok := fields["title"]; {
	case !ok:
		fail("title", "required")
	case !isString(title):
		fail("title", "must be a string")
	default:
		fm.Title = title.Value
	}

	if exits, ok := fields["exits"]; ok {
		if exits.Kind != yaml.SequenceNode {
			fail("exits", "must be a list of strings")
		} else {
			for i, item := range exits.Content {
				item = resolve(item)
				if !isString(item) {
					fail(fmt.Sprintf("exits[%d]", i), "must be a string")
					continue
				}
				fm.Exits = append(fm.Exits, item.Value)
			}
		}
	}

	if variants, ok := fields["variants"]; ok {
		if variants.Kind != yaml.SequenceNode {
			fail("variants", "must be a list")
		} else {
			for i, item := range variants.Content {
				v, verrs := validateVariant(fmt.Sprintf("variants[%d]", i), resolve(item))
				errs = append(errs, verrs...)
				if len(verrs) == 0 {
					fm.Variants = append(fm.Variants, v)
				}
			}
		}
	}

	if len(errs) > 0 {
		return Frontmatter{}, errors.Join(errs...)
	}
	return fm, nil
}

func validateVariant(path string, n *yaml.Node) (Variant, []error) {
	if n.Kind != yaml.MappingNode {
		return Variant{}, []error{&FieldError{Path: path, Msg: "must be a mapping"}}
	}
	var errs []error
	v := Variant{Tone: DefaultTone}
	fields := mappingFields(n)

	if tone, ok := fields["tone"]; ok {
		switch {
		case !isString(tone):
			errs = append(errs, &FieldError{Path: path + ".tone", Msg: "must be a string", Err: ErrInvalidTone})
		default:
			t, err := ParseTone(tone.Value)
			if err != nil {
				errs = append(errs, &FieldError{Path: path + ".tone", Msg: fmt.Sprintf("%q is not one of %v", tone.Value, Tones), Err: ErrInvalidTone})
			}
			v.Tone = t
		}
	}

	switch line, ok := fields["line"]; {
	case !ok:
		errs = append(errs, &FieldError{Path: path + ".line", Msg: "required"})
	case !isString(line):
		errs = append(errs, &FieldError{Path: path + ".line", Msg: "must be a string"})
	default:
		v.Line = line.Value
	}
	return v, errs
}

// mappingFields indexes a mapping node's values by key. Later keys win.
func mappingFields(n *yaml.Node) map[string]*yaml.Node {
	out := make(map[string]*yaml.Node, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		out[resolve(n.Content[i]).Value] = resolve(n.Content[i+1])
	}
	return out
}

func resolve(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func isString(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.ShortTag() == "!!str"
}
