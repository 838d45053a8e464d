package otquery

import (
	"github.com/npillmayer/fontdiff/ot"
	"golang.org/x/image/font/sfnt"
)

// FontMetricsInfo holds the vertical metrics of a font, in font units.
type FontMetricsInfo struct {
	UnitsPerEm      sfnt.Units
	Ascent, Descent sfnt.Units // from 'hhea', or from 'OS/2' if 'hhea' has none
	LineGap         sfnt.Units
	MaxAdvance      sfnt.Units
}

// GlyphMetricsInfo holds the horizontal metrics and the outline box of a
// glyph, in font units.
type GlyphMetricsInfo struct {
	Advance  sfnt.Units
	LSB, RSB sfnt.Units
	BBox     BoundingBox // from table 'glyf'
}

// BoundingBox is the box of a glyph outline.
type BoundingBox struct {
	MinX, MinY sfnt.Units
	MaxX, MaxY sfnt.Units
}

// IsEmpty is true for glyphs without contours.
func (bbox BoundingBox) IsEmpty() bool {
	return bbox.Dx() == 0 || bbox.Dy() == 0
}

// Dx returns the width of the box.
func (bbox BoundingBox) Dx() sfnt.Units {
	return bbox.MaxX - bbox.MinX
}

// Dy returns the height of the box.
func (bbox BoundingBox) Dy() sfnt.Units {
	return bbox.MaxY - bbox.MinY
}

// --- Font Information -------------------------------------------------

// FontSupportsScript returns a tuple (script-tag, language-tag) for a given input
// of a script tag and a language tag. If the language has no special support in the
// font, DFLT will be returned. If the script has no support in the font,
// DFLT will be returned for the script.
func FontSupportsScript(otf *ot.Font, scr ot.Tag, lang ot.Tag) (ot.Tag, ot.Tag) {
	if otf == nil {
		return 0, 0
	}
	gsub, err := otf.GSub()
	if err != nil {
		return ot.DFLT, ot.DFLT
	}
	for _, script := range gsub.Scripts {
		if script.Tag != scr {
			continue
		}
		tracer().Debugf("script %s is contained in GSUB", scr.String())
		for _, ls := range script.LangSys {
			if ls.Tag == lang {
				return scr, lang
			}
		}
		return scr, ot.DFLT
	}
	tracer().Infof("cannot find script %s in font", scr.String())
	return ot.DFLT, ot.DFLT
}

// FontMetrics retrieves selected metrics of a font.
func FontMetrics(otf *ot.Font) FontMetricsInfo {
	metrics := FontMetricsInfo{}
	if hhea, err := otf.FlatRecord(ot.T("hhea")); err == nil {
		metrics.Ascent = sfnt.Units(fieldInt(hhea, "ascender"))
		metrics.Descent = sfnt.Units(fieldInt(hhea, "descender"))
		metrics.LineGap = sfnt.Units(fieldInt(hhea, "line_gap"))
		metrics.MaxAdvance = sfnt.Units(fieldInt(hhea, "advance_width_max"))
	}
	if metrics.Ascent == 0 && metrics.Descent == 0 {
		if os2, err := otf.FlatRecord(ot.T("OS/2")); err == nil {
			tracer().Debugf("OS/2")
			a := sfnt.Units(fieldInt(os2, "s_typo_ascender"))
			if a > metrics.Ascent {
				tracer().Debugf("override of ascent: %d -> %d", metrics.Ascent, a)
				metrics.Ascent = a
			}
			d := sfnt.Units(fieldInt(os2, "s_typo_descender"))
			if d < metrics.Descent {
				tracer().Debugf("override of descent: %d -> %d", metrics.Descent, d)
				metrics.Descent = d
			}
		}
	}
	metrics.UnitsPerEm = sfnt.Units(otf.UnitsPerEm())
	return metrics
}

// --- Glyph Routines --------------------------------------------------------

// GlyphIndex returns the glyph index for a give code-point.
// If the code-point cannot be found, 0 is returned.
//
// From the OpenType specification: character codes that do not correspond to any glyph in
// the font should be mapped to glyph index 0. The glyph at this location must be a special
// glyph representing a missing character, commonly known as '.notdef'.
func GlyphIndex(otf *ot.Font, codepoint rune) ot.GlyphIndex {
	cmap, err := otf.CMap()
	if err != nil {
		return 0
	}
	gid, _ := cmap.Lookup(codepoint)
	return gid
}

// CodePointForGlyph returns the lowest code-point mapped to a given glyph index.
// If the glyph index does not correspond to a code-point, 0 is returned.
func CodePointForGlyph(otf *ot.Font, gid ot.GlyphIndex) rune {
	if gid == 0 {
		return 0
	}
	cmap, err := otf.CMap()
	if err != nil {
		return 0
	}
	return cmap.ReverseMap()[gid]
}

// GlyphMetrics retrieves metrics for a given glyph.
func GlyphMetrics(otf *ot.Font, gid ot.GlyphIndex) GlyphMetricsInfo {
	metrics := GlyphMetricsInfo{}
	//
	// table HMtx: advance width and left side bearing
	if hmtx, err := otf.HMetrics(); err == nil {
		metrics.Advance = sfnt.Units(hmtx.Advance(gid))
		metrics.LSB = sfnt.Units(hmtx.SideBearing(gid))
	}
	//
	// table glyf: bounding box
	if glyf, err := otf.Glyf(); err == nil {
		if g, err := glyf.Glyph(gid); err == nil && g != nil {
			metrics.BBox = BoundingBox{
				MinX: sfnt.Units(g.XMin),
				MinY: sfnt.Units(g.YMin),
				MaxX: sfnt.Units(g.XMax),
				MaxY: sfnt.Units(g.YMax),
			}
		}
	}
	// RSB calculation: rsb = aw - (lsb + xMax - xMin)
	// From the spec:
	// If a glyph has no contours, xMax/xMin are not defined. The left side bearing indicated
	// in the 'hmtx' table for such glyphs should be zero.
	if !metrics.BBox.IsEmpty() { // leave RSB for empty bboxes
		metrics.RSB = metrics.Advance - (metrics.LSB + metrics.BBox.Dx())
	}
	return metrics
}
