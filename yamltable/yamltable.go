/*
Package yamltable reads transliteration tables from YAML documents.

A table document looks like this:

	name: ru-slug
	extends: gost779b-ru    # optional, start from a built-in preset
	drop: ["`", "#"]        # optional, remove inherited entries whose target contains any of these
	pairs:                  # entries appended after the inherited ones
	  - [" ", "-"]
	  - [",", ""]
	  - ["ь", ""]

Each pair is a two-element sequence [source, target]. A YAML sequence is used
instead of a mapping because order matters and source tokens may repeat.
*/
package yamltable

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/npillmayer/translit"
)

// Document is the YAML representation of a table.
type Document struct {
	Name    string      `yaml:"name"`
	Extends string      `yaml:"extends,omitempty"`
	Drop    []string    `yaml:"drop,omitempty"`
	Pairs   [][2]string `yaml:"pairs"`
}

// Parse decodes a table document. Unknown keys are rejected.
func Parse(data []byte) (*Document, error) {
	var doc Document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to parse table YAML: %w", err)
	}
	if doc.Name == "" {
		doc.Name = "yaml"
	}
	return &doc, nil
}

// Marshal serializes a table document to YAML.
func Marshal(doc *Document) ([]byte, error) {
	return yaml.Marshal(doc)
}

// FromMapping wraps a mapping into a document without a base preset.
func FromMapping(name string, m translit.Mapping) *Document {
	doc := &Document{Name: name, Pairs: make([][2]string, len(m))}
	for i, p := range m {
		doc.Pairs[i] = [2]string{p.Source, p.Target}
	}
	return doc
}

// Reader streams the entries of a table document: inherited preset entries
// first, minus the dropped ones, then the document's own pairs.
type Reader struct {
	entries translit.Mapping
	index   int
}

// NewReader resolves the document's base preset and returns a reader over all
// of its entries.
func NewReader(doc *Document) (*Reader, error) {
	var base translit.Mapping
	if doc.Extends != "" {
		preset, err := translit.ParsePreset(doc.Extends)
		if err != nil {
			return nil, err
		}
		base = preset.Table().Retain(func(p translit.Pair) bool {
			for _, d := range doc.Drop {
				if d != "" && strings.Contains(p.Target, d) {
					return false
				}
			}
			return true
		})
	}
	own := make([]translit.Pair, len(doc.Pairs))
	for i, p := range doc.Pairs {
		own[i] = translit.Pair{Source: p[0], Target: p[1]}
	}
	return &Reader{entries: base.Extend(own...)}, nil
}

// Next returns the next entry as (source, target).
// It returns io.EOF when exhausted.
func (r *Reader) Next() (string, string, error) {
	if r.index >= len(r.entries) {
		return "", "", io.EOF
	}
	p := r.entries[r.index]
	r.index++
	return p.Source, p.Target, nil
}

// LoadTable parses a YAML table document and returns a transliterator for it.
func LoadTable(reader io.Reader) (*translit.Transliterator, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, err
	}
	r, err := NewReader(doc)
	if err != nil {
		return nil, err
	}
	return translit.LoadTable(doc.Name, r)
}
