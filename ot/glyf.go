package ot

import "fmt"

// Loca decodes table 'loca', returning numGlyphs+1 offsets into table 'glyf'.
func (otf *Font) Loca() ([]uint32, error) {
	tag := T("loca")
	b, err := otf.tableData(tag)
	if err != nil {
		return nil, err
	}
	head, err := otf.tableData(T("head"))
	if err != nil {
		return nil, otf.ec.tableError(tag, "Header", errFontFormat("loca without head table"))
	}
	loca, err := parseLoca(b, otf.NumGlyphs(), head.I16(50) != 0)
	return loca, otf.ec.tableError(tag, "Offsets", err)
}

func parseLoca(b binarySegm, numGlyphs int, long bool) ([]uint32, error) {
	offsets := make([]uint32, numGlyphs+1)
	if long {
		if err := b.need(4*(numGlyphs+1), "loca"); err != nil {
			return nil, err
		}
		for i := range offsets {
			offsets[i] = b.U32(4 * i)
		}
		return offsets, nil
	}
	if err := b.need(2*(numGlyphs+1), "loca"); err != nil {
		return nil, err
	}
	for i := range offsets {
		offsets[i] = 2 * uint32(b.U16(2*i))
	}
	return offsets, nil
}

// GlyphPoint is a point of a simple glyph outline.
type GlyphPoint struct {
	X, Y    int16
	OnCurve bool
}

// GlyphComponent is a reference to another glyph within a composite glyph.
// Transform holds the 2x2 matrix xx, xy, yx, yy.
type GlyphComponent struct {
	Flags      uint16
	Glyph      GlyphIndex
	Arg1, Arg2 int32
	Transform  [4]float64
}

// Flags of composite glyph components
const (
	ComponentArgsAreWords     = 0x0001
	ComponentArgsAreXY        = 0x0002
	ComponentHaveScale        = 0x0008
	ComponentMoreComponents   = 0x0020
	ComponentHaveXYScale      = 0x0040
	ComponentHaveTwoByTwo     = 0x0080
	ComponentHaveInstructions = 0x0100
)

// Glyph is a glyph description of table 'glyf'. Simple glyphs have
// EndPoints and Points, composite glyphs have Components.
type Glyph struct {
	NumberOfContours       int16
	XMin, YMin, XMax, YMax int16
	EndPoints              []uint16
	Points                 []GlyphPoint
	Components             []GlyphComponent
	InstructionLength      int
}

// IsComposite returns true for composite glyphs.
func (g *Glyph) IsComposite() bool {
	return g.NumberOfContours < 0
}

// GlyfTable gives access to the glyph descriptions of table 'glyf'.
type GlyfTable struct {
	data binarySegm
	loca []uint32
}

// Glyf prepares table 'glyf' for reading glyph descriptions.
func (otf *Font) Glyf() (*GlyfTable, error) {
	b, err := otf.tableData(T("glyf"))
	if err != nil {
		return nil, err
	}
	loca, err := otf.Loca()
	if err != nil {
		return nil, err
	}
	return &GlyfTable{data: b, loca: loca}, nil
}

// NumGlyphs returns the number of glyphs addressable by table 'loca'.
func (glyf *GlyfTable) NumGlyphs() int {
	return max(0, len(glyf.loca)-1)
}

// Glyph decodes the description of glyph g. Glyphs without outline, such as
// spaces, yield nil.
func (glyf *GlyfTable) Glyph(g GlyphIndex) (*Glyph, error) {
	if int(g) >= glyf.NumGlyphs() {
		return nil, fmt.Errorf("glyph %d out of range", g)
	}
	start, end := glyf.loca[g], glyf.loca[g+1]
	if start == end {
		return nil, nil
	}
	if start > end || uint64(end) > uint64(len(glyf.data)) {
		return nil, errFontFormat(fmt.Sprintf("glyph %d: loca offsets out of bounds", g))
	}
	return parseGlyph(glyf.data[start:end])
}

func parseGlyph(b binarySegm) (*Glyph, error) {
	if err := b.need(10, "glyph header"); err != nil {
		return nil, err
	}
	glyph := &Glyph{
		NumberOfContours: b.I16(0),
		XMin:             b.I16(2),
		YMin:             b.I16(4),
		XMax:             b.I16(6),
		YMax:             b.I16(8),
	}
	if glyph.IsComposite() {
		return glyph, parseComponents(b[10:], glyph)
	}
	return glyph, parseSimpleGlyph(b[10:], glyph)
}

// Flags of simple glyph points
const (
	onCurvePoint = 0x01
	xShortVector = 0x02
	yShortVector = 0x04
	repeatFlag   = 0x08
	xIsSameOrPos = 0x10
	yIsSameOrPos = 0x20
)

func parseSimpleGlyph(b binarySegm, glyph *Glyph) error {
	n := int(glyph.NumberOfContours)
	var err error
	if glyph.EndPoints, err = b.uint16s(0, n); err != nil {
		return errFontFormat("glyph contour end points truncated")
	}
	if n == 0 {
		return nil
	}
	numPoints := int(glyph.EndPoints[n-1]) + 1
	pos := 2 * n
	if err := b.need(pos+2, "glyph instructions"); err != nil {
		return err
	}
	glyph.InstructionLength = int(b.U16(pos))
	pos += 2 + glyph.InstructionLength
	flags := make([]byte, 0, numPoints)
	for len(flags) < numPoints {
		if pos >= len(b) {
			return errFontFormat("glyph flags truncated")
		}
		f := b[pos]
		pos++
		flags = append(flags, f)
		if f&repeatFlag != 0 {
			if pos >= len(b) {
				return errFontFormat("glyph flags truncated")
			}
			for range int(b[pos]) {
				flags = append(flags, f)
			}
			pos++
		}
	}
	flags = flags[:numPoints]
	glyph.Points = make([]GlyphPoint, numPoints)
	readCoords := func(short, same byte, set func(i int, v int16)) error {
		var v int16
		for i, f := range flags {
			switch {
			case f&short != 0:
				if pos >= len(b) {
					return errFontFormat("glyph coordinates truncated")
				}
				d := int16(b[pos])
				pos++
				if f&same == 0 {
					d = -d
				}
				v += d
			case f&same == 0:
				if pos+2 > len(b) {
					return errFontFormat("glyph coordinates truncated")
				}
				v += b.I16(pos)
				pos += 2
			}
			set(i, v)
		}
		return nil
	}
	if err := readCoords(xShortVector, xIsSameOrPos, func(i int, v int16) { glyph.Points[i].X = v }); err != nil {
		return err
	}
	if err := readCoords(yShortVector, yIsSameOrPos, func(i int, v int16) { glyph.Points[i].Y = v }); err != nil {
		return err
	}
	for i, f := range flags {
		glyph.Points[i].OnCurve = f&onCurvePoint != 0
	}
	return nil
}

func parseComponents(b binarySegm, glyph *Glyph) error {
	pos := 0
	for {
		if err := b.need(pos+4, "glyph component"); err != nil {
			return err
		}
		c := GlyphComponent{Flags: b.U16(pos), Glyph: GlyphIndex(b.U16(pos + 2)), Transform: [4]float64{1, 0, 0, 1}}
		pos += 4
		if c.Flags&ComponentArgsAreWords != 0 {
			if err := b.need(pos+4, "glyph component arguments"); err != nil {
				return err
			}
			if c.Flags&ComponentArgsAreXY != 0 {
				c.Arg1, c.Arg2 = int32(b.I16(pos)), int32(b.I16(pos+2))
			} else {
				c.Arg1, c.Arg2 = int32(b.U16(pos)), int32(b.U16(pos+2))
			}
			pos += 4
		} else {
			if err := b.need(pos+2, "glyph component arguments"); err != nil {
				return err
			}
			if c.Flags&ComponentArgsAreXY != 0 {
				c.Arg1, c.Arg2 = int32(int8(b[pos])), int32(int8(b[pos+1]))
			} else {
				c.Arg1, c.Arg2 = int32(b[pos]), int32(b[pos+1])
			}
			pos += 2
		}
		switch {
		case c.Flags&ComponentHaveScale != 0:
			if err := b.need(pos+2, "glyph component scale"); err != nil {
				return err
			}
			s := b.F2Dot14(pos)
			c.Transform = [4]float64{s, 0, 0, s}
			pos += 2
		case c.Flags&ComponentHaveXYScale != 0:
			if err := b.need(pos+4, "glyph component scale"); err != nil {
				return err
			}
			c.Transform = [4]float64{b.F2Dot14(pos), 0, 0, b.F2Dot14(pos + 2)}
			pos += 4
		case c.Flags&ComponentHaveTwoByTwo != 0:
			if err := b.need(pos+8, "glyph component matrix"); err != nil {
				return err
			}
			c.Transform = [4]float64{b.F2Dot14(pos), b.F2Dot14(pos + 2), b.F2Dot14(pos + 4), b.F2Dot14(pos + 6)}
			pos += 8
		}
		glyph.Components = append(glyph.Components, c)
		if c.Flags&ComponentMoreComponents == 0 {
			break
		}
	}
	if glyph.Components[len(glyph.Components)-1].Flags&ComponentHaveInstructions != 0 && pos+2 <= len(b) {
		glyph.InstructionLength = int(b.U16(pos))
	}
	return nil
}
