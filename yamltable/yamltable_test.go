package yamltable

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/npillmayer/translit"
)

func mustLoadFixture(t *testing.T, file string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", file))
	if err != nil {
		t.Fatalf("cannot read fixture %s: %v", file, err)
	}
	return data
}

func TestLoadSlugFixture(t *testing.T) {
	data := mustLoadFixture(t, "ru-slug.yaml")
	tr, err := LoadTable(bytes.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, "table: ru-slug", tr.Identifier)
	source := strings.ToLower("Общие вопросы по языку, получение помощи")
	require.Equal(t, "obshhie-voprosy-po-yazyku-poluchenie-pomoshhi", tr.ToLatin(source))
}

func TestStandaloneTable(t *testing.T) {
	src := `
name: tiny
pairs:
  - ["ш", "sh"]
  - ["с", "s"]
  - ["х", "h"]
  - ["а", "a"]
`
	tr, err := LoadTable(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, "shsh", tr.ToLatin("шсх"))
	// "sh" is replaced before "s" and "h": the table is not injective
	require.Equal(t, "шш", tr.FromLatin("shsh"))
	require.Equal(t, "шах", tr.FromLatin("shah"))
}

func TestDefaultName(t *testing.T) {
	doc, err := Parse([]byte(`pairs: [["а", "a"]]`))
	require.NoError(t, err)
	require.Equal(t, "yaml", doc.Name)
	require.Equal(t, [][2]string{{"а", "a"}}, doc.Pairs)
}

func TestReaderStreamsBaseThenOwnPairs(t *testing.T) {
	r, err := NewReader(&Document{
		Extends: "macedonian-digraph",
		Drop:    []string{"j", "h", "z", "c", "J", "H", "Z", "C"},
		Pairs:   [][2]string{{"ђ", "dj"}},
	})
	require.NoError(t, err)
	m, err := translit.ReadMapping(r)
	require.NoError(t, err)
	for _, p := range m[:len(m)-1] {
		require.False(t, strings.ContainsAny(p.Target, "jhzcJHZC"), "%q should be dropped", p.Target)
	}
	require.Equal(t, translit.Pair{Source: "ђ", Target: "dj"}, m[len(m)-1])
	_, _, err = r.Next()
	require.Equal(t, io.EOF, err)
}

func TestUnknownKeysAreRejected(t *testing.T) {
	_, err := LoadTable(strings.NewReader("name: typo\npair: [[\"а\", \"a\"]]\n"))
	require.Error(t, err)
	_, err = Parse([]byte("name: typo\nextend: gost779b-ru\n"))
	require.Error(t, err)
}

func TestEmptyDocument(t *testing.T) {
	doc, err := Parse(nil)
	require.NoError(t, err)
	require.Equal(t, "yaml", doc.Name)
	require.Empty(t, doc.Pairs)
}

func TestUnknownBasePreset(t *testing.T) {
	_, err := LoadTable(strings.NewReader("extends: klingon\n"))
	require.Error(t, err)
}

func TestMalformedPair(t *testing.T) {
	_, err := LoadTable(strings.NewReader(`pairs: [["а", "a", "x"]]`))
	require.Error(t, err)
}

func TestMarshalRoundTrip(t *testing.T) {
	doc := FromMapping("bg", translit.BulgarianStreamlined.Table())
	data, err := Marshal(doc)
	require.NoError(t, err)
	tr, err := LoadTable(bytes.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, "Razni prikazki", tr.ToLatin("Разни приказки"))
}
