/*
Package translit transliterates text between Cyrillic and Latin scripts.

Transliteration is driven by fixed substitution tables, one per named system
(GOST 7.79 System B, ICAO/Passport 2013, Bulgarian Streamlined System,
Macedonian digraph system, …). A table is an ordered list of
(source, target) token pairs. Before use, a table is sorted by descending
byte length of its target tokens, so that "Shh" is handled before "Sh"
and "S" when converting back from Latin.

Conversion is a sequence of global literal substring replacements, one per
table entry, each working on the output of the previous one. This is not a
simultaneous character mapping: a token produced by an earlier rule may be
rewritten by a later rule whose source equals it. Built-in tables are authored
to avoid this; custom tables must take care themselves.

Some systems are forward-only (Passport 2013, Bulgarian, Macedonian). Calling
FromLatin with such a table is not rejected, but the result may differ from
the original text.

Table data lives in package tables. Package yamltable loads custom tables
from YAML documents.

Further Reading

	https://en.wikipedia.org/wiki/ISO_9
	https://en.wikipedia.org/wiki/Romanization_of_Russian

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package translit

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'translit'
func tracer() tracing.Trace {
	return tracing.Select("translit")
}
