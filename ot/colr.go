package ot

import "fmt"

// --- CPAL ------------------------------------------------------------------

// Color is a CPAL color record.
type Color struct {
	R, G, B, A uint8
}

func (c Color) String() string {
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

// CPal is the color palette table.
type CPal struct {
	Version    uint16
	NumEntries int
	Palettes   [][]Color
}

// CPal decodes table 'CPAL'.
func (otf *Font) CPal() (*CPal, error) {
	tag := T("CPAL")
	b, err := otf.tableData(tag)
	if err != nil {
		return nil, err
	}
	cpal, err := parseCPal(b)
	return cpal, otf.ec.tableError(tag, "Header", err)
}

func parseCPal(b binarySegm) (*CPal, error) {
	if err := b.need(12, "CPAL header"); err != nil {
		return nil, err
	}
	cpal := &CPal{Version: b.U16(0), NumEntries: int(b.U16(2))}
	numPalettes, numColors := int(b.U16(4)), int(b.U16(6))
	colors, err := b.offset32(8)
	if err != nil {
		return nil, err
	}
	if err := colors.need(4*numColors, "CPAL color records"); err != nil {
		return nil, err
	}
	indices, err := b.uint16s(12, numPalettes)
	if err != nil {
		return nil, errFontFormat("CPAL color record indices truncated")
	}
	for _, first := range indices {
		if int(first)+cpal.NumEntries > numColors {
			return nil, errFontFormat("CPAL palette exceeds color records")
		}
		palette := make([]Color, cpal.NumEntries)
		for k := range cpal.NumEntries {
			c := colors[4*(int(first)+k):]
			palette[k] = Color{B: c.U8(0), G: c.U8(1), R: c.U8(2), A: c.U8(3)}
		}
		cpal.Palettes = append(cpal.Palettes, palette)
	}
	return cpal, nil
}

// --- COLR ------------------------------------------------------------------

// ColorLayer is a layer of a version 0 color glyph.
type ColorLayer struct {
	Glyph        GlyphIndex
	PaletteIndex uint16
}

// ColorGlyph is a version 0 base glyph with its layers.
type ColorGlyph struct {
	Glyph  GlyphIndex
	Layers []ColorLayer
}

// PaintGlyph is a version 1 base glyph and the format of its root paint table.
type PaintGlyph struct {
	Glyph       GlyphIndex
	PaintFormat uint8
}

// Colr is the color table. Version 1 paint graphs are not decoded beyond
// their root paint format.
type Colr struct {
	Version     uint16
	BaseGlyphs  []ColorGlyph
	PaintGlyphs []PaintGlyph
	NumLayers   int // size of the version 1 layer list
}

// Colr decodes table 'COLR'.
func (otf *Font) Colr() (*Colr, error) {
	tag := T("COLR")
	b, err := otf.tableData(tag)
	if err != nil {
		return nil, err
	}
	colr, err := parseColr(b)
	return colr, otf.ec.tableError(tag, "Header", err)
}

func parseColr(b binarySegm) (*Colr, error) {
	if err := b.need(14, "COLR header"); err != nil {
		return nil, err
	}
	colr := &Colr{Version: b.U16(0)}
	numBase, numLayers := int(b.U16(2)), int(b.U16(12))
	bases, err := b.offset32(4)
	if err != nil {
		return nil, err
	}
	layers, err := b.offset32(8)
	if err != nil {
		return nil, err
	}
	if err := bases.need(6*numBase, "COLR base glyph records"); err != nil && numBase > 0 {
		return nil, err
	}
	if err := layers.need(4*numLayers, "COLR layer records"); err != nil && numLayers > 0 {
		return nil, err
	}
	for i := range numBase {
		r := bases[6*i:]
		cg := ColorGlyph{Glyph: GlyphIndex(r.U16(0))}
		first, n := int(r.U16(2)), int(r.U16(4))
		if first+n > numLayers {
			return nil, errFontFormat("COLR base glyph layers out of range")
		}
		for k := first; k < first+n; k++ {
			l := layers[4*k:]
			cg.Layers = append(cg.Layers, ColorLayer{Glyph: GlyphIndex(l.U16(0)), PaletteIndex: l.U16(2)})
		}
		colr.BaseGlyphs = append(colr.BaseGlyphs, cg)
	}
	if colr.Version == 0 {
		return colr, nil
	}
	if err := b.need(34, "COLR version 1 header"); err != nil {
		return nil, err
	}
	if list, err := b.offset32(14); err != nil {
		return nil, err
	} else if list != nil {
		count := int(list.U32(0))
		if err := list.need(4+6*count, "COLR base glyph list"); err != nil {
			return nil, err
		}
		for i := range count {
			r := list[4+6*i:]
			pg := PaintGlyph{Glyph: GlyphIndex(r.U16(0))}
			if paint, err := list.offsetFrom(r.U32(2)); err == nil && paint != nil {
				pg.PaintFormat = paint.U8(0)
			}
			colr.PaintGlyphs = append(colr.PaintGlyphs, pg)
		}
	}
	if list, err := b.offset32(18); err != nil {
		return nil, err
	} else if list != nil {
		colr.NumLayers = int(list.U32(0))
	}
	return colr, nil
}
