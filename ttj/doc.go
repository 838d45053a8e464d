/*
Package ttj turns fonts into generic tree documents and compares them.

The name stands for "tables to JSON". Every table of a font is serialized into
a Document, a tree of maps, arrays and scalars. Wherever a table refers to
glyphs, the serialization uses glyph names instead of glyph IDs, taken from a
NameMap. Two such documents are then compared by Diff, which is oblivious of
font semantics: it walks both trees in parallel and keeps what differs.

	a, _ := ot.Parse(oldFont)
	b, _ := ot.Parse(newFont)
	delta := ttj.TableDiff(a, b, 128, false)
	fmt.Println(delta.Indent())

Leaf differences are reported as two-element arrays [left, right]. Subtrees
with too many differing children are replaced by a map {"error": "<n>
changes, check manually"}.

Glyph IDs are meaningless across two versions of a font if glyphs have been
re-ordered or renamed. TableDiff therefore checks whether the glyph names of
both fonts are compatible and, if they are not, serializes both fonts using
the names of the first one.

JustKerns flattens the pair positioning lookups of a serialized GPOS table
into one map from glyph pairs to value records. KernDiff compares two fonts
on this flattened representation only.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package ttj

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fontdiff.ttj'
func tracer() tracing.Trace {
	return tracing.Select("fontdiff.ttj")
}
