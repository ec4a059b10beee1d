package tables

import (
	"testing"
	"unicode"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allTables = map[string]func() []Pair{
	"gost779b-ru":           Gost779BRu,
	"gost779b-by":           Gost779BBy,
	"gost779b-ua":           Gost779BUa,
	"passport2013-ru":       Passport2013Ru,
	"order995-ru":           OrderN995Ru,
	"bulgarian-streamlined": BulgarianStreamlined,
	"macedonian-digraph":    MacedonianDigraph,
}

func TestTablesAreWellFormed(t *testing.T) {
	for name, table := range allTables {
		pairs := table()
		require.NotEmpty(t, pairs, name)
		seen := make(map[string]bool, len(pairs))
		for _, p := range pairs {
			require.Equal(t, 1, utf8.RuneCountInString(p.Source), "%s: source %q", name, p.Source)
			require.False(t, seen[p.Source], "%s: duplicate source %q", name, p.Source)
			seen[p.Source] = true
			for _, r := range p.Target {
				assert.True(t, r < utf8.RuneSelf, "%s: non-ASCII target %q", name, p.Target)
			}
			r, _ := utf8.DecodeRuneInString(p.Source)
			if r != '№' {
				assert.True(t, unicode.Is(unicode.Cyrillic, r), "%s: non-Cyrillic source %q", name, p.Source)
			}
		}
	}
}

func TestTablesAreFreshCopies(t *testing.T) {
	for name, table := range allTables {
		a := table()
		a[0].Target = "?"
		b := table()
		require.NotEqual(t, "?", b[0].Target, name)
	}
}

func TestPassportExtendsDriverLicense(t *testing.T) {
	passport, license := Passport2013Ru(), OrderN995Ru()
	require.Len(t, passport, len(license)+1)
	assert.Equal(t, license, passport[:len(license)])
	assert.Equal(t, Pair{"№", "#"}, passport[len(passport)-1])
}
