package ot

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// Maximum reasonable counts for OpenType table structures.
// These limits prevent malicious fonts from claiming unreasonably large counts
// that could lead to excessive memory allocation or out-of-bounds reads.
const (
	MaxScriptCount   = 200   // Scripts: typically < 10
	MaxFeatureCount  = 2000  // Features: typically < 200
	MaxLookupCount   = 5000  // Lookups: typically < 100
	MaxGlyphCount    = 65536 // Maximum glyph index (uint16)
	MaxExtensionHops = 1     // Extension subtables must not point to extensions
)

// Parse parses an OpenType font from a byte slice.
//
// Parse checks the font header and the table directory only. Tables are
// decoded on demand by the typed accessors of Font. An ot.Font needs ongoing
// access to the font's byte data after Parse returns.
func Parse(font []byte) (*Font, error) {
	// https://www.microsoft.com/typography/otspec/otff.htm: Offset Table is 12 bytes.
	r := bytes.NewReader(font)
	h := FontHeader{}
	if err := binary.Read(r, binary.BigEndian, &h); err != nil {
		return nil, errFontFormat("font header: " + err.Error())
	}
	tracer().Debugf("header = %v, tag = %x|%s", h, h.FontType, Tag(h.FontType).String())

	if !(h.FontType == 0x4f54544f || // OTTO
		h.FontType == 0x00010000 || // TrueType
		h.FontType == 0x74727565) { // true
		return nil, errFontFormat(fmt.Sprintf("font type not supported: %x", h.FontType))
	}
	ec := &errorCollector{}
	otf := &Font{
		Header: &h,
		binary: binarySegm(font),
		tables: make(map[Tag]*Table),
		ec:     ec,
	}
	src := otf.binary
	// "The Offset Table is followed immediately by the Table Record entries …
	// sorted in ascending order by tag", 16 bytes each.
	tableRecordsSize, err := checkedMulInt(16, int(h.TableCount))
	if err != nil {
		return nil, err
	}
	buf, err := src.view(12, tableRecordsSize)
	if err != nil {
		return nil, errFontFormat("table record entries")
	}
	for b, prevTag := buf, Tag(0); len(b) > 0; b = b[16:] {
		tag := MakeTag(b)
		if tag < prevTag {
			// Fonts in the wild occasionally get this wrong; lookup is by map anyway.
			ec.addWarning(tag, "table directory not sorted by tag", 12)
		}
		prevTag = tag
		off, size := u32(b[8:12]), u32(b[12:16])
		if off&3 != 0 { // ignore checksums, but "all tables must begin on four byte boundries".
			ec.addWarning(tag, "table offset not aligned to 4 bytes", off)
		}
		tableEnd, err := checkedAddUint32(off, size)
		if err != nil {
			return nil, fmt.Errorf("table %s: %w", tag, err)
		}
		if off > uint32(len(src)) || tableEnd > uint32(len(src)) {
			ec.addError(tag, "Bounds", fmt.Sprintf("bounds [%d:%d] exceed font size %d", off, tableEnd, len(src)),
				SeverityCritical, off)
			return nil, errFontFormat(fmt.Sprintf("table %s: bounds [%d:%d] exceed font size %d",
				tag, off, tableEnd, len(src)))
		}
		if _, dup := otf.tables[tag]; dup {
			ec.addWarning(tag, "duplicate table record", off)
			continue
		}
		otf.tables[tag] = &Table{
			tag:    tag,
			data:   src[off:tableEnd],
			offset: off,
			length: size,
		}
		otf.directory = append(otf.directory, tag)
	}
	for _, tag := range RequiredTables {
		if otf.tables[T(tag)] == nil {
			ec.addWarning(T(tag), "missing required table", 0)
		}
	}
	return otf, nil
}

// According to the OpenType spec, the following tables are
// required for the font to function correctly.
var RequiredTables = []string{
	"cmap", "head", "hhea", "hmtx", "maxp", "name", "OS/2", "post",
}
