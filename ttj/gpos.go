package ttj

import (
	"fmt"
	"slices"

	"github.com/npillmayer/fontdiff/ot"
)

// serializeValueRecord serializes the fields present in a value record.
// Advances are keyed "x" and "y", placements "x_placement" and "y_placement".
func serializeValueRecord(vr ot.ValueRecord, ctx *SerializationContext) Document {
	doc := NewMap()
	if vr.Format.Has(ot.ValueFormatXAdvance) {
		doc.Set("x", ctx.variable(vr.XAdvance, vr.XAdvDevice))
	}
	if vr.Format.Has(ot.ValueFormatYAdvance) {
		doc.Set("y", ctx.variable(vr.YAdvance, vr.YAdvDevice))
	}
	if vr.Format.Has(ot.ValueFormatXPlacement) {
		doc.Set("x_placement", ctx.variable(vr.XPlacement, vr.XPlaDevice))
	}
	if vr.Format.Has(ot.ValueFormatYPlacement) {
		doc.Set("y_placement", ctx.variable(vr.YPlacement, vr.YPlaDevice))
	}
	return doc
}

func serializeAnchor(a *ot.Anchor, ctx *SerializationContext) Document {
	doc := NewMap()
	if a == nil {
		return doc
	}
	doc.Set("x", ctx.variable(a.X, a.XDevice))
	doc.Set("y", ctx.variable(a.Y, a.YDevice))
	return doc
}

// pairValue combines the value records of a pair. If the second record is
// empty, the first one is used on its own.
func pairValue(v1, v2 ot.ValueRecord, ctx *SerializationContext) Document {
	first := serializeValueRecord(v1, ctx)
	second := serializeValueRecord(v2, ctx)
	if second.Len() == 0 {
		return first
	}
	doc := NewMap()
	doc.Set("first", first)
	doc.Set("second", second)
	return doc
}

func subtableMap(typ string) Document {
	doc := NewMap()
	doc.Set("type", String(typ))
	return doc
}

// child returns the map entry for key, creating an empty map if necessary.
func child(doc Document, key string) Document {
	if c, ok := doc.Get(key); ok {
		return c
	}
	c := NewMap()
	doc.Set(key, c)
	return c
}

func serializeSinglePos(sp *ot.SinglePos, ctx *SerializationContext) Document {
	doc := subtableMap("single")
	for i, g := range sp.Coverage.Glyphs {
		if vr, ok := sp.Value(i); ok {
			doc.Set(ctx.Name(g), serializeValueRecord(vr, ctx))
		}
	}
	return doc
}

// serializePairPos serializes format 1 subtables as a map from left glyph to
// right glyph to value. Format 2 subtables are kept in their class based form:
// "classes" lists the glyphs of each class, "kerns" the value for each pair
// of classes. Left class 0 consists of the covered glyphs not assigned to any
// other class, right class 0 is rendered as "@All".
func serializePairPos(pp *ot.PairPos, ctx *SerializationContext) Document {
	doc := subtableMap("pair")
	if pp.Format == 1 {
		for i, g := range pp.Coverage.Glyphs {
			if i >= len(pp.PairSets) {
				break
			}
			left := child(doc, ctx.Name(g))
			for _, pvr := range pp.PairSets[i] {
				left.Set(ctx.Name(pvr.SecondGlyph), pairValue(pvr.Value1, pvr.Value2, ctx))
			}
		}
		return doc
	}
	classes := NewMap()
	for c := range pp.Class1Count {
		var glyphs []ot.GlyphIndex
		if c == 0 {
			for _, g := range pp.Coverage.Glyphs {
				if pp.ClassDef1.Class(g) == 0 {
					glyphs = append(glyphs, g)
				}
			}
		} else {
			glyphs = pp.ClassDef1.Glyphs(c)
		}
		classes.Set(leftClassName(c), StringArray(ctx.Names.Names(sortedGlyphs(glyphs))))
	}
	for c := uint16(1); c < pp.Class2Count; c++ {
		classes.Set(rightClassName(c), StringArray(ctx.Names.Names(pp.ClassDef2.Glyphs(c))))
	}
	kerns := NewMap()
	for c1, row := range pp.ClassRecords {
		left := child(kerns, leftClassName(uint16(c1)))
		for c2, rec := range row {
			left.Set(rightClassName(uint16(c2)), pairValue(rec.Value1, rec.Value2, ctx))
		}
	}
	doc.Set("classes", classes)
	doc.Set("kerns", kerns)
	return doc
}

func sortedGlyphs(glyphs []ot.GlyphIndex) []ot.GlyphIndex {
	slices.Sort(glyphs)
	return glyphs
}

func leftClassName(c uint16) string {
	return fmt.Sprintf("@CLASS_L_%d", c)
}

func rightClassName(c uint16) string {
	if c == 0 {
		return "@All"
	}
	return fmt.Sprintf("@CLASS_R_%d", c)
}

func serializeCursivePos(cp *ot.CursivePos, ctx *SerializationContext) Document {
	doc := subtableMap("cursive")
	for i, g := range cp.Coverage.Glyphs {
		if i >= len(cp.EntryExit) {
			break
		}
		ee := NewMap()
		if a := cp.EntryExit[i].Entry; a != nil {
			ee.Set("entry", serializeAnchor(a, ctx))
		}
		if a := cp.EntryExit[i].Exit; a != nil {
			ee.Set("exit", serializeAnchor(a, ctx))
		}
		doc.Set(ctx.Name(g), ee)
	}
	return doc
}

// serializeMarks groups mark anchors by mark class:
// {"anchor_<class>": {mark: anchor}}.
func serializeMarks(cov ot.Coverage, marks []ot.MarkRecord, ctx *SerializationContext) Document {
	doc := NewMap()
	for i, g := range cov.Glyphs {
		if i >= len(marks) {
			break
		}
		class := child(doc, fmt.Sprintf("anchor_%d", marks[i].Class))
		class.Set(ctx.Name(g), serializeAnchor(marks[i].Anchor, ctx))
	}
	return doc
}

// serializeBaseAnchors maps base glyphs to their anchors by mark class.
func serializeBaseAnchors(cov ot.Coverage, bases [][]*ot.Anchor, ctx *SerializationContext) Document {
	doc := NewMap()
	for i, g := range cov.Glyphs {
		if i >= len(bases) {
			break
		}
		anchors := NewMap()
		for class, a := range bases[i] {
			if a != nil {
				anchors.Set(fmt.Sprintf("anchor_%d", class), serializeAnchor(a, ctx))
			}
		}
		doc.Set(ctx.Name(g), anchors)
	}
	return doc
}

func serializeMarkBasePos(mb *ot.MarkBasePos, ctx *SerializationContext) Document {
	doc := subtableMap("mark_to_base")
	doc.Set("marks", serializeMarks(mb.MarkCoverage, mb.Marks, ctx))
	doc.Set("bases", serializeBaseAnchors(mb.BaseCoverage, mb.Bases, ctx))
	return doc
}

func serializeMarkLigPos(ml *ot.MarkLigPos, ctx *SerializationContext) Document {
	doc := subtableMap("mark_to_lig")
	doc.Set("marks", serializeMarks(ml.MarkCoverage, ml.Marks, ctx))
	ligatures := NewMap()
	for i, g := range ml.LigatureCoverage.Glyphs {
		if i >= len(ml.Ligatures) {
			break
		}
		anchors := NewMap()
		for comp, classes := range ml.Ligatures[i] {
			for class, a := range classes {
				if a != nil {
					anchors.Set(fmt.Sprintf("anchor_%d_%d", class, comp+1), serializeAnchor(a, ctx))
				}
			}
		}
		ligatures.Set(ctx.Name(g), anchors)
	}
	doc.Set("ligatures", ligatures)
	return doc
}

func serializeMarkMarkPos(mm *ot.MarkMarkPos, ctx *SerializationContext) Document {
	doc := subtableMap("mark_to_mark")
	doc.Set("marks", serializeMarks(mm.Mark1Coverage, mm.Marks, ctx))
	doc.Set("basemarks", serializeBaseAnchors(mm.Mark2Coverage, mm.BaseMarks, ctx))
	return doc
}
