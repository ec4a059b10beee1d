package translit

import (
	"errors"
	"fmt"
	"sort"

	"golang.org/x/text/unicode/norm"

	"github.com/npillmayer/translit/tables"
)

// Pair is a substitution rule: Source is replaced by Target for conversions
// to Latin, Target by Source for conversions from Latin.
type Pair = tables.Pair

// Mapping is a transliteration table. Order of entries is arbitrary until a
// transliterator is built from it.
type Mapping []Pair

// Retain returns the entries of m for which keep returns true.
// m is not modified.
func (m Mapping) Retain(keep func(Pair) bool) Mapping {
	r := make(Mapping, 0, len(m))
	for _, p := range m {
		if keep(p) {
			r = append(r, p)
		}
	}
	return r
}

// Extend returns a copy of m with pairs appended.
func (m Mapping) Extend(pairs ...Pair) Mapping {
	r := make(Mapping, 0, len(m)+len(pairs))
	r = append(r, m...)
	return append(r, pairs...)
}

// MaxTargetLen returns the byte length of the longest target token.
func (m Mapping) MaxTargetLen() int {
	n := 0
	for _, p := range m {
		n = max(n, len(p.Target))
	}
	return n
}

// compareTargetLen orders pairs by descending byte length of their targets.
// Targets of equal length compare equal, regardless of content.
// Do not replace this by a lexicographic order: substitution precedence
// depends on length only.
func compareTargetLen(a, b Pair) int {
	switch {
	case len(a.Target) == len(b.Target):
		return 0
	case len(a.Target) > len(b.Target):
		return -1
	}
	return 1
}

// sorted returns a copy of m in substitution order. Entries with targets of
// equal length keep their relative order.
func (m Mapping) sorted() Mapping {
	s := make(Mapping, len(m))
	copy(s, m)
	sort.SliceStable(s, func(i, j int) bool {
		return compareTargetLen(s[i], s[j]) < 0
	})
	return s
}

// Validate checks m for entries which are legal but almost certainly
// unintended:
//
//   - empty source tokens (such an entry never matches anything)
//   - source tokens occurring more than once (later entries re-overwrite
//     the output of earlier ones)
//   - tokens not in Unicode normal form C (they will not match composed input)
//
// All findings are reported, joined into a single error.
func (m Mapping) Validate() error {
	var errs []error
	seen := make(map[string]int, len(m))
	for i, p := range m {
		if p.Source == "" {
			errs = append(errs, fmt.Errorf("entry %d: empty source token (target %q)", i, p.Target))
			continue
		}
		if j, dup := seen[p.Source]; dup {
			errs = append(errs, fmt.Errorf("entry %d: source token %q already mapped by entry %d", i, p.Source, j))
		} else {
			seen[p.Source] = i
		}
		if !norm.NFC.IsNormalString(p.Source) {
			errs = append(errs, fmt.Errorf("entry %d: source token %q is not NFC", i, p.Source))
		}
		if !norm.NFC.IsNormalString(p.Target) {
			errs = append(errs, fmt.Errorf("entry %d: target token %q is not NFC", i, p.Target))
		}
	}
	return errors.Join(errs...)
}
