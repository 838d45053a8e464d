package ot

import (
	"fmt"
	"iter"
	"math/bits"
	"slices"
	"sort"
)

// --- Coverage --------------------------------------------------------------

// Coverage defines a unique index value, the Coverage Index, for each covered
// glyph. Glyphs are stored in Coverage Index order.
type Coverage struct {
	Format uint16
	Glyphs []GlyphIndex
}

// Index returns the Coverage Index of glyph g, if g is covered.
func (c Coverage) Index(g GlyphIndex) (int, bool) {
	i := sort.Search(len(c.Glyphs), func(i int) bool { return c.Glyphs[i] >= g })
	if i < len(c.Glyphs) && c.Glyphs[i] == g {
		return i, true
	}
	// Glyphs should be sorted, but we do not rely on it.
	for i, cg := range c.Glyphs {
		if cg == g {
			return i, true
		}
	}
	return 0, false
}

// Len returns the number of covered glyphs.
func (c Coverage) Len() int {
	return len(c.Glyphs)
}

// Read a coverage table-module, which comes in two formats (1 and 2).
func parseCoverage(b binarySegm) (Coverage, error) {
	if b == nil {
		return Coverage{}, errFontFormat("NULL coverage offset")
	}
	if err := b.need(4, "coverage header"); err != nil {
		return Coverage{}, err
	}
	c := Coverage{Format: b.U16(0)}
	count := int(b.U16(2))
	switch c.Format {
	case 1:
		glyphs, err := b.glyphs(4, count)
		if err != nil {
			return c, errFontFormat("coverage format 1 extends beyond bounds")
		}
		c.Glyphs = glyphs
	case 2:
		if err := b.need(4+6*count, "coverage format 2 ranges"); err != nil {
			return c, err
		}
		for i := range count {
			rec := b[4+6*i:]
			start, end := rec.U16(0), rec.U16(2)
			if start > end {
				return c, errFontFormat(fmt.Sprintf("coverage range %d: start > end", i))
			}
			for g := int(start); g <= int(end); g++ {
				c.Glyphs = append(c.Glyphs, GlyphIndex(g))
			}
		}
	default:
		return c, errFontFormat(fmt.Sprintf("unknown coverage format %d", c.Format))
	}
	return c, nil
}

// coverageAt parses a coverage table at a 16-bit offset within b.
func coverageAt(b binarySegm, at int) (Coverage, error) {
	link, err := b.offset16(at)
	if err != nil {
		return Coverage{}, err
	}
	return parseCoverage(link)
}

// --- Class definitions -----------------------------------------------------

// ClassDef groups glyphs into classes, denoted by integer values.
// Glyphs not assigned to a class fall into class 0.
// A nil *ClassDef assigns every glyph to class 0.
type ClassDef struct {
	Format  uint16
	classes map[GlyphIndex]uint16
}

// Class returns the class of glyph g.
func (cd *ClassDef) Class(g GlyphIndex) uint16 {
	if cd == nil {
		return 0
	}
	return cd.classes[g]
}

// Glyphs returns the glyphs of a class other than class 0, sorted by glyph ID.
func (cd *ClassDef) Glyphs(class uint16) []GlyphIndex {
	if cd == nil {
		return nil
	}
	var glyphs []GlyphIndex
	for g, c := range cd.classes {
		if c == class {
			glyphs = append(glyphs, g)
		}
	}
	slices.Sort(glyphs)
	return glyphs
}

// Assignments iterates over all explicit (glyph, class) assignments in
// ascending glyph order.
func (cd *ClassDef) Assignments() iter.Seq2[GlyphIndex, uint16] {
	return func(yield func(GlyphIndex, uint16) bool) {
		if cd == nil {
			return
		}
		glyphs := make([]GlyphIndex, 0, len(cd.classes))
		for g := range cd.classes {
			glyphs = append(glyphs, g)
		}
		slices.Sort(glyphs)
		for _, g := range glyphs {
			if !yield(g, cd.classes[g]) {
				return
			}
		}
	}
}

// MaxClass returns the highest class value assigned.
func (cd *ClassDef) MaxClass() uint16 {
	var m uint16
	if cd == nil {
		return 0
	}
	for _, c := range cd.classes {
		m = max(m, c)
	}
	return m
}

func parseClassDef(b binarySegm) (*ClassDef, error) {
	if b == nil {
		return nil, nil
	}
	if err := b.need(4, "ClassDef header"); err != nil {
		return nil, err
	}
	cd := &ClassDef{Format: b.U16(0), classes: make(map[GlyphIndex]uint16)}
	switch cd.Format {
	case 1:
		if err := b.need(6, "ClassDef format 1 header"); err != nil {
			return nil, err
		}
		start, n := int(b.U16(2)), int(b.U16(4))
		values, err := b.uint16s(6, n)
		if err != nil {
			return nil, errFontFormat("ClassDef format 1 array extends beyond bounds")
		}
		for i, c := range values {
			if c != 0 && start+i < MaxGlyphCount {
				cd.classes[GlyphIndex(start+i)] = c
			}
		}
	case 2:
		n := int(b.U16(2))
		if err := b.need(4+6*n, "ClassDef format 2 ranges"); err != nil {
			return nil, err
		}
		for i := range n {
			rec := b[4+6*i:]
			start, end, c := rec.U16(0), rec.U16(2), rec.U16(4)
			if start > end {
				return nil, errFontFormat(fmt.Sprintf("ClassDef range %d: start > end", i))
			}
			if c == 0 {
				continue
			}
			for g := int(start); g <= int(end); g++ {
				cd.classes[GlyphIndex(g)] = c
			}
		}
	default:
		return nil, errFontFormat(fmt.Sprintf("unknown ClassDef format %d", cd.Format))
	}
	return cd, nil
}

// classDefAt parses a class definition table at a 16-bit offset within b.
// A NULL offset yields a nil ClassDef.
func classDefAt(b binarySegm, at int) (*ClassDef, error) {
	link, err := b.offset16(at)
	if err != nil {
		return nil, err
	}
	return parseClassDef(link)
}

// --- Device and VariationIndex tables --------------------------------------

// Device is either a hinting device table or, for DeltaFormat 0x8000,
// a VariationIndex table referencing a delta-set in an item variation store.
type Device struct {
	StartSize   uint16 // DeltaSetOuterIndex for variation index tables
	EndSize     uint16 // DeltaSetInnerIndex for variation index tables
	DeltaFormat uint16
}

// VariationIndex returns the delta-set indices of a VariationIndex table.
func (d *Device) VariationIndex() (outer, inner uint16, ok bool) {
	if d == nil || d.DeltaFormat != 0x8000 {
		return 0, 0, false
	}
	return d.StartSize, d.EndSize, true
}

func deviceAt(parent binarySegm, offset uint16) (*Device, error) {
	if offset == 0 {
		return nil, nil
	}
	b, err := parent.view(int(offset), 6)
	if err != nil {
		return nil, errFontFormat("device table out of bounds")
	}
	return &Device{StartSize: b.U16(0), EndSize: b.U16(2), DeltaFormat: b.U16(4)}, nil
}

// --- Value records ---------------------------------------------------------

// ValueFormat flags which fields are present in a ValueRecord.
type ValueFormat uint16

// ValueFormat flags
const (
	ValueFormatXPlacement ValueFormat = 0x0001
	ValueFormatYPlacement ValueFormat = 0x0002
	ValueFormatXAdvance   ValueFormat = 0x0004
	ValueFormatYAdvance   ValueFormat = 0x0008
	ValueFormatXPlaDevice ValueFormat = 0x0010
	ValueFormatYPlaDevice ValueFormat = 0x0020
	ValueFormatXAdvDevice ValueFormat = 0x0040
	ValueFormatYAdvDevice ValueFormat = 0x0080
)

// size returns the byte size of a ValueRecord in this format.
func (vf ValueFormat) size() int {
	return 2 * bits.OnesCount16(uint16(vf&0x00ff))
}

// Has returns true if all flags of f are set in vf.
func (vf ValueFormat) Has(f ValueFormat) bool {
	return vf&f == f
}

// ValueRecord holds positioning adjustments. Only fields flagged in Format
// are meaningful.
type ValueRecord struct {
	Format     ValueFormat
	XPlacement int16
	YPlacement int16
	XAdvance   int16
	YAdvance   int16
	XPlaDevice *Device
	YPlaDevice *Device
	XAdvDevice *Device
	YAdvDevice *Device
}

// IsEmpty returns true if the record has no fields at all.
func (vr ValueRecord) IsEmpty() bool {
	return vr.Format&0x00ff == 0
}

// parseValueRecord reads a value record at position at of b. Device offsets
// are relative to parent, usually the start of the positioning subtable.
func parseValueRecord(b binarySegm, at int, vf ValueFormat, parent binarySegm) (ValueRecord, error) {
	vr := ValueRecord{Format: vf}
	if _, err := b.view(at, vf.size()); err != nil {
		return vr, errFontFormat("value record out of bounds")
	}
	pos := at
	next := func() uint16 {
		v := b.U16(pos)
		pos += 2
		return v
	}
	var err error
	if vf.Has(ValueFormatXPlacement) {
		vr.XPlacement = int16(next())
	}
	if vf.Has(ValueFormatYPlacement) {
		vr.YPlacement = int16(next())
	}
	if vf.Has(ValueFormatXAdvance) {
		vr.XAdvance = int16(next())
	}
	if vf.Has(ValueFormatYAdvance) {
		vr.YAdvance = int16(next())
	}
	devices := []struct {
		flag ValueFormat
		dev  **Device
	}{
		{ValueFormatXPlaDevice, &vr.XPlaDevice},
		{ValueFormatYPlaDevice, &vr.YPlaDevice},
		{ValueFormatXAdvDevice, &vr.XAdvDevice},
		{ValueFormatYAdvDevice, &vr.YAdvDevice},
	}
	for _, d := range devices {
		if !vf.Has(d.flag) {
			continue
		}
		if *d.dev, err = deviceAt(parent, next()); err != nil {
			return vr, err
		}
	}
	return vr, nil
}

// --- Anchors ---------------------------------------------------------------

// Anchor is an attachment point, in one of three formats.
type Anchor struct {
	Format      uint16
	X, Y        int16
	AnchorPoint uint16  // format 2 only
	XDevice     *Device // format 3 only
	YDevice     *Device // format 3 only
}

// anchorAt parses an anchor table at a 16-bit offset from base.
// A NULL offset yields a nil anchor.
func anchorAt(base binarySegm, offset uint16) (*Anchor, error) {
	if offset == 0 {
		return nil, nil
	}
	b, err := base.offsetFrom(uint32(offset))
	if err != nil {
		return nil, errFontFormat("anchor table out of bounds")
	}
	if err := b.need(6, "anchor table"); err != nil {
		return nil, err
	}
	a := &Anchor{Format: b.U16(0), X: b.I16(2), Y: b.I16(4)}
	switch a.Format {
	case 1:
	case 2:
		if err := b.need(8, "anchor format 2"); err != nil {
			return nil, err
		}
		a.AnchorPoint = b.U16(6)
	case 3:
		if err := b.need(10, "anchor format 3"); err != nil {
			return nil, err
		}
		if a.XDevice, err = deviceAt(b, b.U16(6)); err != nil {
			return nil, err
		}
		if a.YDevice, err = deviceAt(b, b.U16(8)); err != nil {
			return nil, err
		}
	default:
		return nil, errFontFormat(fmt.Sprintf("unknown anchor format %d", a.Format))
	}
	return a, nil
}
