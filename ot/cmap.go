package ot

import (
	"fmt"
	"iter"
	"slices"
	"sort"
)

// CMap is the decoded character-to-glyph mapping of a font.
//
// Of the cmap sub-tables contained in a font, the one with the widest
// Unicode encoding is selected, i.e. a UCS-4 sub-table is preferred over
// a BMP-only one.
type CMap struct {
	PlatformID uint16
	EncodingID uint16
	Format     uint16
	entries    []CMapEntry // sorted by code-point
}

// CMapEntry maps a single code-point to a glyph.
type CMapEntry struct {
	Codepoint rune
	Glyph     GlyphIndex
}

// Lookup returns the glyph for a code-point, if it is mapped.
func (cmap *CMap) Lookup(r rune) (GlyphIndex, bool) {
	i := sort.Search(len(cmap.entries), func(i int) bool {
		return cmap.entries[i].Codepoint >= r
	})
	if i < len(cmap.entries) && cmap.entries[i].Codepoint == r {
		return cmap.entries[i].Glyph, true
	}
	return 0, false
}

// Mappings iterates over all (code-point, glyph) pairs in ascending
// code-point order. Code-points mapping to glyph 0 are not included.
func (cmap *CMap) Mappings() iter.Seq2[rune, GlyphIndex] {
	return func(yield func(rune, GlyphIndex) bool) {
		for _, e := range cmap.entries {
			if !yield(e.Codepoint, e.Glyph) {
				return
			}
		}
	}
}

// Len returns the number of mapped code-points.
func (cmap *CMap) Len() int {
	return len(cmap.entries)
}

// ReverseMap returns, for every glyph reachable from the cmap, the lowest
// code-point mapping to it.
func (cmap *CMap) ReverseMap() map[GlyphIndex]rune {
	rev := make(map[GlyphIndex]rune, len(cmap.entries))
	for _, e := range cmap.entries {
		if _, ok := rev[e.Glyph]; !ok {
			rev[e.Glyph] = e.Codepoint
		}
	}
	return rev
}

// CMap decodes table 'cmap'.
func (otf *Font) CMap() (*CMap, error) {
	b, err := otf.tableData(T("cmap"))
	if err != nil {
		return nil, err
	}
	cmap, err := parseCMap(b)
	return cmap, otf.ec.tableError(T("cmap"), "CMap", err)
}

func parseCMap(b binarySegm) (*CMap, error) {
	const headerSize, entrySize = 4, 8
	if err := b.need(headerSize, "cmap header"); err != nil {
		return nil, err
	}
	n := int(b.U16(2)) // number of sub-tables
	if err := b.need(headerSize+n*entrySize, "cmap encoding records"); err != nil {
		return nil, err
	}
	tracer().Debugf("font cmap has %d sub-tables in %d bytes", n, len(b))
	var best binarySegm
	cmap := &CMap{}
	bestWidth := 0
	for i := range n {
		rec := b[headerSize+entrySize*i:]
		pid, psid := rec.U16(0), rec.U16(2)
		width := platformEncodingWidth(pid, psid)
		if width <= bestWidth {
			continue
		}
		sub, err := b.offsetFrom(rec.U32(4))
		if err != nil || sub == nil {
			tracer().Infof("cmap sub-table %d cannot be located", i)
			continue
		}
		format := sub.U16(0)
		if !supportedCmapFormat(format) {
			continue
		}
		best, bestWidth = sub, width
		cmap.PlatformID, cmap.EncodingID, cmap.Format = pid, psid, format
	}
	if best == nil {
		return nil, errFontFormat("no supported cmap sub-table found")
	}
	var err error
	switch cmap.Format {
	case 0:
		cmap.entries, err = parseCMapFormat0(best)
	case 4:
		cmap.entries, err = parseCMapFormat4(best)
	case 6:
		cmap.entries, err = parseCMapFormat6(best)
	case 12, 13:
		cmap.entries, err = parseCMapFormat12(best, cmap.Format == 13)
	}
	if err != nil {
		return nil, err
	}
	slices.SortFunc(cmap.entries, func(a, b CMapEntry) int {
		return int(a.Codepoint) - int(b.Codepoint)
	})
	cmap.entries = slices.CompactFunc(cmap.entries, func(a, b CMapEntry) bool {
		return a.Codepoint == b.Codepoint
	})
	return cmap, nil
}

// platformEncodingWidth returns the number of bytes per character assumed by
// the given Platform ID and Platform Specific ID.
//
// Very old fonts, from before Unicode was widely adopted, might only have only
// a Macintosh (platform 1) sub-table, which we do not support.
func platformEncodingWidth(pid, psid uint16) int {
	switch pid {
	case 0: // Unicode
		switch psid {
		case 3: // BMP
			return 2
		case 4, 6: // Full repertoire
			return 4
		}
		return 1
	case 3: // Windows
		switch psid {
		case 0: // Symbol
			return 1
		case 1: // Unicode BMP
			return 3
		case 10: // UCS-4
			return 5
		}
	}
	return 0
}

func supportedCmapFormat(format uint16) bool {
	switch format {
	case 0, 4, 6, 12, 13:
		return true
	}
	return false
}

func parseCMapFormat0(b binarySegm) ([]CMapEntry, error) {
	if err := b.need(6+256, "cmap format 0"); err != nil {
		return nil, err
	}
	var entries []CMapEntry
	for c := range 256 {
		if g := GlyphIndex(b[6+c]); g != 0 {
			entries = append(entries, CMapEntry{Codepoint: rune(c), Glyph: g})
		}
	}
	return entries, nil
}

func parseCMapFormat4(b binarySegm) ([]CMapEntry, error) {
	const headerSize = 14
	if err := b.need(headerSize, "cmap format 4 header"); err != nil {
		return nil, err
	}
	segCount := int(b.U16(6) / 2)
	if err := b.need(headerSize+2+8*segCount, "cmap format 4 segments"); err != nil {
		return nil, err
	}
	endCodes := headerSize
	startCodes := endCodes + 2*segCount + 2 // skip reservedPad
	deltas := startCodes + 2*segCount
	rangeOffsets := deltas + 2*segCount
	var entries []CMapEntry
	for i := range segCount {
		end, start := uint32(b.U16(endCodes+2*i)), uint32(b.U16(startCodes+2*i))
		delta := b.U16(deltas + 2*i)
		ro := int(b.U16(rangeOffsets + 2*i))
		if start > end {
			return nil, errFontFormat(fmt.Sprintf("cmap format 4 segment %d: start > end", i))
		}
		for c := start; c <= end; c++ {
			if c == 0xFFFF {
				break
			}
			var g uint16
			if ro == 0 {
				g = uint16(c) + delta
			} else {
				at := rangeOffsets + 2*i + ro + 2*int(c-start)
				raw, err := b.u16(at)
				if err != nil {
					return nil, errFontFormat("cmap format 4 glyph index array out of bounds")
				}
				if raw != 0 {
					g = raw + delta
				}
			}
			if g != 0 {
				entries = append(entries, CMapEntry{Codepoint: rune(c), Glyph: GlyphIndex(g)})
			}
		}
	}
	return entries, nil
}

func parseCMapFormat6(b binarySegm) ([]CMapEntry, error) {
	if err := b.need(10, "cmap format 6 header"); err != nil {
		return nil, err
	}
	first, count := int(b.U16(6)), int(b.U16(8))
	glyphs, err := b.glyphs(10, count)
	if err != nil {
		return nil, errFontFormat("cmap format 6 glyph array truncated")
	}
	var entries []CMapEntry
	for i, g := range glyphs {
		if g != 0 {
			entries = append(entries, CMapEntry{Codepoint: rune(first + i), Glyph: g})
		}
	}
	return entries, nil
}

func parseCMapFormat12(b binarySegm, manyToOne bool) ([]CMapEntry, error) {
	const headerSize, groupSize = 16, 12
	if err := b.need(headerSize, "cmap format 12 header"); err != nil {
		return nil, err
	}
	nGroups := int(b.U32(12))
	size, err := checkedMulInt(nGroups, groupSize)
	if err != nil {
		return nil, err
	}
	if err := b.need(headerSize+size, "cmap format 12 groups"); err != nil {
		return nil, err
	}
	var entries []CMapEntry
	for i := range nGroups {
		grp := b[headerSize+i*groupSize:]
		start, end, startGlyph := grp.U32(0), grp.U32(4), grp.U32(8)
		if start > end || end > 0x10FFFF {
			return nil, errFontFormat(fmt.Sprintf("cmap format 12 group %d has invalid range", i))
		}
		for c := start; c <= end; c++ {
			g := startGlyph
			if !manyToOne {
				g += c - start
			}
			if g != 0 && g < MaxGlyphCount {
				entries = append(entries, CMapEntry{Codepoint: rune(c), Glyph: GlyphIndex(g)})
			}
		}
	}
	return entries, nil
}
