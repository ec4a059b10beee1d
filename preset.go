package translit

import (
	"fmt"
	"sort"
	"strings"

	"github.com/derekparker/trie"

	"github.com/npillmayer/translit/tables"
)

// Preset selects one of the built-in tables.
type Preset uint8

const (
	Gost779BRu           Preset = iota // GOST 7.79 System B, Russian
	Gost779BBy                         // GOST 7.79 System B, Belarusian
	Gost779BUa                         // GOST 7.79 System B, Ukrainian
	Passport2013Ru                     // ICAO, Russian international passports (forward only)
	OrderN995Ru                        // ICAO, Russian driver licenses (forward only)
	BulgarianStreamlined               // Bulgarian Streamlined System (forward only)
	MacedonianDigraph                  // Macedonian digraph system (forward only)
	presetCount
)

type presetInfo struct {
	name       string
	table      func() []tables.Pair
	invertible bool
}

var presetInfos = [presetCount]presetInfo{
	Gost779BRu:           {"gost779b-ru", tables.Gost779BRu, true},
	Gost779BBy:           {"gost779b-by", tables.Gost779BBy, true},
	Gost779BUa:           {"gost779b-ua", tables.Gost779BUa, true},
	Passport2013Ru:       {"passport2013-ru", tables.Passport2013Ru, false},
	OrderN995Ru:          {"order995-ru", tables.OrderN995Ru, false},
	BulgarianStreamlined: {"bulgarian-streamlined", tables.BulgarianStreamlined, false},
	MacedonianDigraph:    {"macedonian-digraph", tables.MacedonianDigraph, false},
}

// presetNames indexes presets by name. Written once at init, read-only afterwards.
var presetNames = func() *trie.Trie {
	t := trie.New()
	for p := range presetCount {
		t.Add(presetInfos[p].name, p)
	}
	return t
}()

func (p Preset) String() string {
	if p >= presetCount {
		return fmt.Sprintf("Preset(%d)", uint8(p))
	}
	return presetInfos[p].name
}

// Invertible reports whether FromLatin reproduces the original text for
// input made of the preset's alphabet.
func (p Preset) Invertible() bool {
	return p < presetCount && presetInfos[p].invertible
}

// Table returns a fresh copy of the preset's table, in declaration order.
// It is empty for unknown presets.
func (p Preset) Table() Mapping {
	if p >= presetCount {
		return Mapping{}
	}
	return Mapping(presetInfos[p].table())
}

// ParsePreset looks up a preset by name, e.g. "gost779b-ru".
// Matching is case-insensitive.
func ParsePreset(name string) (Preset, error) {
	node, ok := presetNames.Find(strings.ToLower(name))
	if !ok {
		return 0, fmt.Errorf("unknown transliteration preset %q", name)
	}
	return node.Meta().(Preset), nil
}

// PresetNames returns the sorted names of all presets starting with prefix.
// An empty prefix lists all presets.
func PresetNames(prefix string) []string {
	var names []string
	if prefix == "" {
		names = presetNames.Keys()
	} else {
		names = presetNames.PrefixSearch(strings.ToLower(prefix))
	}
	sort.Strings(names)
	return names
}

// NewPreset creates a transliterator for a built-in table.
func NewPreset(p Preset) *Transliterator {
	return newTransliterator(p.String(), p.Table())
}

// Language selects the alphabet for GOST 7.79 System B.
type Language uint8

const (
	Ru Language = iota
	By
	Ua
)

// NewGost779B creates a transliterator for GOST 7.79 System B.
//
//	NewGost779B(Ru).ToLatin("Россия") // => "Rossiya"
func NewGost779B(lang Language) *Transliterator {
	switch lang {
	case By:
		return NewPreset(Gost779BBy)
	case Ua:
		return NewPreset(Gost779BUa)
	}
	return NewPreset(Gost779BRu)
}
