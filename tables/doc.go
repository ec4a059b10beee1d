/*
Package tables holds the built-in transliteration tables.

Every table is plain data: an ordered list of (source, target) token pairs,
where the source side is a Cyrillic grapheme and the target side is its Latin
rendition. Tables are handed out as fresh slices on every call, so clients may
filter or extend them before building a transliterator from them.

Order of entries matters only among targets of equal byte length, see
package translit for details.

Further Reading

	https://en.wikipedia.org/wiki/ISO_9
	https://en.wikipedia.org/wiki/Romanization_of_Russian#After_2013
	https://en.wikipedia.org/wiki/Romanization_of_Bulgarian#Streamlined_System
	https://en.wikipedia.org/wiki/Romanization_of_Macedonian#Digraph_system
*/
package tables

// Pair is a single substitution rule.
type Pair struct {
	Source string // Cyrillic token
	Target string // Latin token
}

func clone(pairs []Pair) []Pair {
	c := make([]Pair, len(pairs))
	copy(c, pairs)
	return c
}
