package ttj

import (
	"strconv"

	"github.com/npillmayer/fontdiff/ot"
)

var glyphClassNames = map[uint16]string{
	ot.BaseGlyph:      "Base",
	ot.LigatureGlyph:  "Ligature",
	ot.MarkGlyph:      "Mark",
	ot.ComponentGlyph: "Component",
}

// serializeGDef serializes glyph classes, attachment points, ligature carets,
// mark attachment classes and mark glyph sets, all keyed by glyph name.
func serializeGDef(gdef *ot.GDef, ctx *SerializationContext) Document {
	doc := NewMap()
	if gdef.GlyphClassDef != nil {
		doc.Set("glyph_classes", serializeClassDef(gdef.GlyphClassDef, ctx, true))
	}
	if al := gdef.AttachList; al != nil {
		attachments := NewMap()
		for i, g := range al.Coverage.Glyphs {
			if i >= len(al.Points) {
				break
			}
			points := NewArray()
			for _, p := range al.Points[i] {
				points.Append(Int(p))
			}
			attachments.Set(ctx.Name(g), points)
		}
		doc.Set("attach_points", attachments)
	}
	if lcl := gdef.LigCaretList; lcl != nil {
		carets := NewMap()
		for i, g := range lcl.Coverage.Glyphs {
			if i >= len(lcl.Carets) {
				break
			}
			values := NewArray()
			for _, cv := range lcl.Carets[i] {
				values.Append(serializeCaret(cv, ctx))
			}
			carets.Set(ctx.Name(g), values)
		}
		doc.Set("lig_carets", carets)
	}
	if gdef.MarkAttachClassDef != nil {
		doc.Set("mark_attach_classes", serializeClassDef(gdef.MarkAttachClassDef, ctx, false))
	}
	if gdef.MarkGlyphSets != nil {
		sets := NewMap()
		for i, cov := range gdef.MarkGlyphSets {
			sets.Set(strconv.Itoa(i), StringArray(ctx.Names.Names(cov.Glyphs)))
		}
		doc.Set("mark_glyph_sets", sets)
	}
	return doc
}

func serializeCaret(cv ot.CaretValue, ctx *SerializationContext) Document {
	caret := NewMap()
	switch cv.Format {
	case 2:
		caret.Set("point_index", Int(cv.PointIndex))
	case 3:
		if _, _, ok := cv.Device.VariationIndex(); ok {
			caret.Set("coordinate", ctx.variable(cv.Coordinate, cv.Device))
		} else {
			caret.Set("variable_coordinate", Int(cv.Coordinate))
		}
	default:
		caret.Set("coordinate", Int(cv.Coordinate))
	}
	return caret
}

// serializeClassDef maps glyph names to their class, leaving out class 0.
// With useEnum set, GDEF glyph class names are used instead of numbers.
func serializeClassDef(cd *ot.ClassDef, ctx *SerializationContext, useEnum bool) Document {
	classes := NewMap()
	for g, class := range cd.Assignments() {
		if class == 0 {
			continue
		}
		if name, ok := glyphClassNames[class]; ok && useEnum {
			classes.Set(ctx.Name(g), String(name))
		} else {
			classes.Set(ctx.Name(g), Int(class))
		}
	}
	return classes
}
