package translit

import (
	"fmt"
	"strings"
)

// ToLatiner converts text to Latin script.
type ToLatiner interface {
	ToLatin(src string) string
}

// FromLatiner converts text from Latin script.
type FromLatiner interface {
	FromLatin(src string) string
}

// Transliterator converts text in both directions with a single table.
//
// A Transliterator is immutable after creation and may be shared between
// goroutines.
type Transliterator struct {
	rules      Mapping // sorted by descending target length
	Identifier string  // Identifies the table
}

// New creates a transliterator for a custom table.
//
// Example:
//
//	t := translit.New(translit.Mapping{
//		{Source: "ф", Target: "f"},
//		{Source: "а", Target: "a"},
//		{Source: "с", Target: "s"},
//		{Source: "д", Target: "d"},
//	})
//	t.ToLatin("фасад") // => "fasad"
//
// Rules are not validated; use NewStrict for that.
func New(rules Mapping) *Transliterator {
	return newTransliterator("custom", rules)
}

// NewStrict is like New, but rejects tables which do not pass Mapping.Validate.
func NewStrict(rules Mapping) (*Transliterator, error) {
	if err := rules.Validate(); err != nil {
		tracer().Errorf("rejecting custom table: %v", err)
		return nil, fmt.Errorf("invalid transliteration table: %w", err)
	}
	return New(rules), nil
}

func newTransliterator(name string, rules Mapping) *Transliterator {
	t := &Transliterator{
		rules:      rules.sorted(),
		Identifier: fmt.Sprintf("table: %s", name),
	}
	tracer().Debugf("%s: %d rules, longest target %d bytes", t.Identifier, len(t.rules),
		t.rules.MaxTargetLen())
	return t
}

// Rules returns a copy of the table in substitution order.
func (t *Transliterator) Rules() Mapping {
	r := make(Mapping, len(t.rules))
	copy(r, t.rules)
	return r
}

// Convert transliterates src, to Latin if invert is false, from Latin otherwise.
//
// Every rule replaces all non-overlapping occurrences of its token in the
// output of the previous rule. Characters not covered by the table are left
// untouched. Rules with an empty token to search for are skipped.
func (t *Transliterator) Convert(src string, invert bool) string {
	if t == nil {
		return src
	}
	s := src
	for _, p := range t.rules {
		from, to := p.Source, p.Target
		if invert {
			from, to = to, from
		}
		if from == "" {
			continue // strings.ReplaceAll would insert at every rune boundary
		}
		s = strings.ReplaceAll(s, from, to)
	}
	return s
}

// ToLatin transliterates src to Latin script.
func (t *Transliterator) ToLatin(src string) string {
	return t.Convert(src, false)
}

// FromLatin transliterates src from Latin script.
// For forward-only tables the result is best effort.
func (t *Transliterator) FromLatin(src string) string {
	return t.Convert(src, true)
}

func (t *Transliterator) String() string {
	return fmt.Sprintf("Transliterator(%s, rules=%d)", t.Identifier, len(t.rules))
}
