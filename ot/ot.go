package ot

import (
	"slices"
)

// Font represents the internal structure of an OpenType font.
//
// A Font keeps the font's binary data and decodes tables from it on demand.
// Its elements are assumed immutable while the Font remains in use.
type Font struct {
	Header    *FontHeader
	binary    binarySegm
	tables    map[Tag]*Table
	directory []Tag // table tags in the order of the table directory
	ec        *errorCollector
}

// FontHeader is the offset table at the start of the font data.
//
// OpenType fonts that contain TrueType outlines should use the value of 0x00010000
// for the FontType. OpenType fonts containing CFF data (version 1 or 2) should
// use 0x4F54544F ('OTTO', when re-interpreted as a Tag).
// The Apple specification for TrueType fonts allows for 'true' and 'typ1',
// but these version tags should not be used for OpenType fonts.
type FontHeader struct {
	FontType   uint32
	TableCount uint16
}

// GlyphIndex is a glyph index in a font.
type GlyphIndex uint16

// Table returns the font table for a given tag. If a table for a tag cannot
// be found in the font, nil is returned.
//
// Table tag names are case-sensitive, following the names in the OpenType
// specification, e.g. "OS/2" or "cvt ".
func (otf *Font) Table(tag Tag) *Table {
	if otf == nil {
		return nil
	}
	return otf.tables[tag]
}

// HasTable returns true if the font contains a table with the given tag.
func (otf *Font) HasTable(tag Tag) bool {
	return otf.Table(tag) != nil
}

// TableTags returns a list of tags, one for each table contained in the font,
// in the order of the font's table directory.
func (otf *Font) TableTags() []Tag {
	return slices.Clone(otf.directory)
}

// Binary returns the complete binary data of the font.
func (otf *Font) Binary() []byte {
	return otf.binary
}

// Errors returns all errors encountered so far while decoding the font.
func (otf *Font) Errors() []FontError {
	otf.ec.Lock()
	defer otf.ec.Unlock()
	return slices.Clone(otf.ec.errors)
}

// Warnings returns all warnings encountered so far while decoding the font.
func (otf *Font) Warnings() []FontWarning {
	otf.ec.Lock()
	defer otf.ec.Unlock()
	return slices.Clone(otf.ec.warnings)
}

// CriticalErrors returns all errors with critical severity.
func (otf *Font) CriticalErrors() []FontError {
	critical := make([]FontError, 0)
	for _, err := range otf.Errors() {
		if err.Severity == SeverityCritical {
			critical = append(critical, err)
		}
	}
	return critical
}

// NumGlyphs returns the number of glyphs as stated in table 'maxp'.
// Returns 0 if 'maxp' is missing or too short.
func (otf *Font) NumGlyphs() int {
	maxp := otf.Table(T("maxp"))
	if maxp == nil || len(maxp.data) < 6 {
		return 0
	}
	return int(maxp.data.U16(4))
}

// UnitsPerEm returns the design units per em as stated in table 'head'.
// Returns 1000 if 'head' is missing or broken.
func (otf *Font) UnitsPerEm() uint16 {
	head := otf.Table(T("head"))
	if head == nil || len(head.data) < 20 {
		return 1000
	}
	if upem := head.data.U16(18); upem > 0 {
		return upem
	}
	return 1000
}

// --- Tag -------------------------------------------------------------------

// Tag is defined by the spec as:
// Array of four uint8s (length = 32 bits) used to identify a table, design-variation axis,
// script, language system, feature, or baseline
type Tag uint32

// MakeTag creates a Tag from 4 bytes, e.g.,
// If b is shorter or longer, it will be silently extended or cut as appropriate
//
//	MakeTag([]byte("cmap"))
func MakeTag(b []byte) Tag {
	if b == nil {
		b = []byte{0, 0, 0, 0}
	} else if len(b) > 4 {
		b = b[:4]
	} else if len(b) < 4 {
		b = append([]byte{0, 0, 0, 0}[:4-len(b)], b...)
	}
	return Tag(u32(b))
}

// T returns a Tag from a (4-letter) string.
// If t is shorter or longer, it will be silently extended or cut as appropriate
func T(t string) Tag {
	t = (t + "    ")[:4]
	return Tag(u32([]byte(t)))
}

func (t Tag) String() string {
	bytes := []byte{
		byte(t >> 24 & 0xff),
		byte(t >> 16 & 0xff),
		byte(t >> 8 & 0xff),
		byte(t & 0xff),
	}
	return string(bytes)
}

// DFLT is the default script tag.
var DFLT = T("DFLT")

// --- Table -----------------------------------------------------------------

// Table represents one of the various OpenType font tables as a raw
// segment of the font's binary data. Typed views are available through
// methods of Font, e.g. `Font.CMap` or `Font.GPos`.
type Table struct {
	tag    Tag
	data   binarySegm // a table is a slice of font data
	offset uint32
	length uint32
}

// Tag returns the 4-letter name of a table.
func (t *Table) Tag() Tag {
	return t.tag
}

// Extent returns offset and byte size of this table within the OpenType font.
func (t *Table) Extent() (uint32, uint32) {
	return t.offset, t.length
}

// Binary returns the bytes of this table. Should be treated as read-only by
// clients, as it is a view into the original data.
func (t *Table) Binary() []byte {
	return t.data
}

// tableData returns the binary segment of a table or ErrNoTable.
func (otf *Font) tableData(tag Tag) (binarySegm, error) {
	t := otf.Table(tag)
	if t == nil {
		return nil, ErrNoTable
	}
	return t.data, nil
}
