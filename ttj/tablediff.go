package ttj

import (
	"github.com/npillmayer/fontdiff/ot"
)

// TableDiff serializes two fonts and compares them table by table.
//
// Glyphs are identified by name. If noMatch is false and the glyph names of
// the fonts are not compatible, the names of font a are used for both fonts,
// comparing glyphs by glyph ID. With noMatch set, each font uses its own
// names.
func TableDiff(a, b *ot.Font, maxChanges int, noMatch bool) Document {
	left, right := serializePair(a, b, noMatch)
	return Diff(left, right, maxChanges)
}

// KernDiff compares the flattened kerning of two fonts.
func KernDiff(a, b *ot.Font, maxChanges int, noMatch bool) Document {
	left, right := serializePair(a, b, noMatch)
	return Diff(JustKerns(left), JustKerns(right), maxChanges)
}

func serializePair(a, b *ot.Font, noMatch bool) (Document, Document) {
	namesA, namesB := NewNameMap(a), NewNameMap(b)
	if !noMatch && !namesA.Compatible(namesB) {
		tracer().Infof("Glyph names differ dramatically between fonts, using font names from font A")
		namesB = namesA
	}
	return FontToJSON(a, namesA), FontToJSON(b, namesB)
}
