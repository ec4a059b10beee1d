package translit

import (
	"fmt"
	"io"
)

// PairReader yields table entries one-by-one.
// It should return io.EOF when the stream is exhausted.
type PairReader interface {
	Next() (source, target string, err error)
}

// ReadMapping collects all entries of reader into a mapping.
func ReadMapping(reader PairReader) (Mapping, error) {
	m := make(Mapping, 0, 64)
	for {
		source, target, err := reader.Next()
		if err == io.EOF {
			return m, nil
		}
		if err != nil {
			return nil, err
		}
		m = append(m, Pair{Source: source, Target: target})
	}
}

// LoadTable builds a transliterator from a streaming, format-agnostic source.
//
// File format parsing is outside the base package. Use adapters like package
// yamltable to parse concrete formats and feed this API.
func LoadTable(name string, reader PairReader) (*Transliterator, error) {
	m, err := ReadMapping(reader)
	if err != nil {
		return nil, fmt.Errorf("loading table %s: %w", name, err)
	}
	t := newTransliterator(name, m)
	tracer().Infof("loaded %s with %d rules", t.Identifier, len(m))
	return t, nil
}
