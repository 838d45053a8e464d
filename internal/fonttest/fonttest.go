/*
Package fonttest assembles small synthetic OpenType fonts for tests.

The fonts are not meant to be rendered. They carry just enough structure
(glyph names, a character map, metrics, layout tables) to pin down the
behavior of table decoding, serialization and diffing.
*/
package fonttest

import (
	"encoding/binary"
	"maps"
	"slices"
	"sort"

	"golang.org/x/text/encoding/unicode"
)

// PutU16 writes v at position at of b, big-endian.
func PutU16(b []byte, at int, v uint16) {
	binary.BigEndian.PutUint16(b[at:at+2], v)
}

// PutU32 writes v at position at of b, big-endian.
func PutU32(b []byte, at int, v uint32) {
	binary.BigEndian.PutUint32(b[at:at+4], v)
}

// writer appends big-endian values to a byte slice.
type writer struct {
	buf []byte
}

func (w *writer) u16(v uint16) { w.buf = binary.BigEndian.AppendUint16(w.buf, v) }
func (w *writer) i16(v int16)  { w.u16(uint16(v)) }
func (w *writer) u32(v uint32) { w.buf = binary.BigEndian.AppendUint32(w.buf, v) }
func (w *writer) tag(t string) { w.buf = append(w.buf, (t + "    ")[:4]...) }
func (w *writer) bytes(b []byte) {
	w.buf = append(w.buf, b...)
}
func (w *writer) pos() int { return len(w.buf) }

// patch16 overwrites a previously written uint16.
func (w *writer) patch16(at int, v uint16) { PutU16(w.buf, at, v) }

// --- SFNT assembly ---------------------------------------------------------

// Font collects tables to be assembled into an SFNT binary.
type Font struct {
	tables map[string][]byte
}

// NewFont creates an empty font.
func NewFont() *Font {
	return &Font{tables: make(map[string][]byte)}
}

// Table adds or replaces a table.
func (f *Font) Table(tag string, data []byte) *Font {
	f.tables[tag] = data
	return f
}

// Bytes assembles the font binary, with the table directory sorted by tag
// and every table aligned to 4 bytes. Checksums are left 0.
func (f *Font) Bytes() []byte {
	tags := slices.Sorted(maps.Keys(f.tables))
	w := &writer{}
	w.u32(0x00010000)
	n := uint16(len(tags))
	w.u16(n)
	searchRange, entrySelector := uint16(1), uint16(0)
	for searchRange*2 <= n {
		searchRange *= 2
		entrySelector++
	}
	w.u16(searchRange * 16)
	w.u16(entrySelector)
	w.u16(n*16 - searchRange*16)
	offset := uint32(12 + 16*len(tags))
	for _, tag := range tags {
		data := f.tables[tag]
		w.tag(tag)
		w.u32(0)
		w.u32(offset)
		w.u32(uint32(len(data)))
		offset += uint32(len(data)+3) &^ 3
	}
	for _, tag := range tags {
		data := f.tables[tag]
		w.bytes(data)
		for len(w.buf)%4 != 0 {
			w.buf = append(w.buf, 0)
		}
	}
	return w.buf
}

// Basic builds a font with tables head, maxp, hhea, hmtx, post (version 2)
// and cmap (format 4). Glyph i is named names[i] and is 500 units wide.
func Basic(names []string, cmap map[rune]uint16) *Font {
	advances := make([]uint16, len(names))
	lsbs := make([]int16, len(names))
	for i := range advances {
		advances[i] = 500
		lsbs[i] = 50
	}
	return NewFont().
		Table("head", Head(1000)).
		Table("maxp", Maxp(uint16(len(names)))).
		Table("hhea", Hhea(uint16(len(names)))).
		Table("hmtx", Hmtx(advances, lsbs)).
		Table("post", PostV2(names)).
		Table("cmap", CMapFmt4(cmap))
}

// --- Simple tables ---------------------------------------------------------

// Head creates a 'head' table with short loca offsets.
func Head(upem uint16) []byte {
	b := make([]byte, 54)
	PutU32(b, 0, 0x00010000)
	PutU32(b, 4, 0x00010000)
	PutU32(b, 12, 0x5F0F3CF5)
	PutU16(b, 18, upem)
	return b
}

// Maxp creates a version 0.5 'maxp' table.
func Maxp(numGlyphs uint16) []byte {
	b := make([]byte, 6)
	PutU32(b, 0, 0x00005000)
	PutU16(b, 4, numGlyphs)
	return b
}

// Hhea creates a 'hhea' table.
func Hhea(numberOfHMetrics uint16) []byte {
	b := make([]byte, 36)
	PutU32(b, 0, 0x00010000)
	PutU16(b, 4, 800)
	PutU16(b, 6, uint16(0xFFFF-200+1)) // -200
	PutU16(b, 34, numberOfHMetrics)
	return b
}

// Hmtx creates a 'hmtx' table with one long metric per glyph.
func Hmtx(advances []uint16, lsbs []int16) []byte {
	w := &writer{}
	for i, a := range advances {
		w.u16(a)
		w.i16(lsbs[i])
	}
	return w.buf
}

// PostV2 creates a version 2 'post' table naming every glyph.
func PostV2(names []string) []byte {
	w := &writer{}
	w.u32(0x00020000)
	w.bytes(make([]byte, 28))
	w.u16(uint16(len(names)))
	for i := range names {
		w.u16(uint16(258 + i))
	}
	for _, name := range names {
		w.buf = append(w.buf, byte(len(name)))
		w.bytes([]byte(name))
	}
	return w.buf
}

// CMapFmt4 creates a 'cmap' table with a single Windows Unicode BMP subtable,
// one segment per code point.
func CMapFmt4(mapping map[rune]uint16) []byte {
	cps := slices.Sorted(maps.Keys(mapping))
	segCount := len(cps) + 1
	sub := &writer{}
	sub.u16(4)
	sub.u16(uint16(16 + 8*segCount))
	sub.u16(0)
	sub.u16(uint16(2 * segCount))
	searchRange, entrySelector := 1, 0
	for searchRange*2 <= segCount {
		searchRange *= 2
		entrySelector++
	}
	sub.u16(uint16(2 * searchRange))
	sub.u16(uint16(entrySelector))
	sub.u16(uint16(2*segCount - 2*searchRange))
	for _, c := range cps {
		sub.u16(uint16(c))
	}
	sub.u16(0xFFFF)
	sub.u16(0)
	for _, c := range cps {
		sub.u16(uint16(c))
	}
	sub.u16(0xFFFF)
	for _, c := range cps {
		sub.u16(mapping[c] - uint16(c))
	}
	sub.u16(1)
	for range segCount {
		sub.u16(0)
	}
	w := &writer{}
	w.u16(0)
	w.u16(1)
	w.u16(3)
	w.u16(1)
	w.u32(12)
	w.bytes(sub.buf)
	return w.buf
}

// Name creates a format 0 'name' table with Windows English records.
func Name(records map[uint16]string) []byte {
	ids := slices.Sorted(maps.Keys(records))
	enc := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewEncoder()
	var storage []byte
	w := &writer{}
	w.u16(0)
	w.u16(uint16(len(ids)))
	w.u16(uint16(6 + 12*len(ids)))
	for _, id := range ids {
		s, _ := enc.String(records[id])
		w.u16(3)
		w.u16(1)
		w.u16(0x0409)
		w.u16(id)
		w.u16(uint16(len(s)))
		w.u16(uint16(len(storage)))
		storage = append(storage, s...)
	}
	w.bytes(storage)
	return w.buf
}

// --- Layout tables ---------------------------------------------------------

// CoverageFmt1 creates a format 1 coverage table.
func CoverageFmt1(glyphs ...uint16) []byte {
	out := make([]byte, 4+len(glyphs)*2)
	PutU16(out, 0, 1)
	PutU16(out, 2, uint16(len(glyphs)))
	for i, g := range glyphs {
		PutU16(out, 4+i*2, g)
	}
	return out
}

// ClassDefFmt2 creates a format 2 class definition with one range per glyph.
func ClassDefFmt2(classes map[uint16]uint16) []byte {
	glyphs := slices.Sorted(maps.Keys(classes))
	w := &writer{}
	w.u16(2)
	w.u16(uint16(len(glyphs)))
	for _, g := range glyphs {
		w.u16(g)
		w.u16(g)
		w.u16(classes[g])
	}
	return w.buf
}

// Lookup is a lookup of a layout table.
type Lookup struct {
	Type      uint16
	Subtables [][]byte
}

// Layout creates a GSUB or GPOS table with script DFLT, whose default
// language system has a single feature referencing all lookups.
func Layout(feature string, lookups ...Lookup) []byte {
	w := &writer{}
	w.u32(0x00010000)
	w.u16(10) // script list
	w.u16(0)  // feature list, patched
	w.u16(0)  // lookup list, patched
	// script list: DFLT -> script table -> default LangSys with feature 0
	w.u16(1)
	w.tag("DFLT")
	w.u16(8)
	w.u16(4)
	w.u16(0)
	w.u16(0)
	w.u16(0xFFFF)
	w.u16(1)
	w.u16(0)
	w.patch16(6, uint16(w.pos()))
	w.u16(1)
	w.tag(feature)
	w.u16(8)
	w.u16(0)
	w.u16(uint16(len(lookups)))
	for i := range lookups {
		w.u16(uint16(i))
	}
	w.patch16(8, uint16(w.pos()))
	lookupList := w.pos()
	w.u16(uint16(len(lookups)))
	slots := w.pos()
	for range lookups {
		w.u16(0)
	}
	for i, lookup := range lookups {
		start := w.pos()
		w.patch16(slots+2*i, uint16(start-lookupList))
		w.u16(lookup.Type)
		w.u16(0)
		w.u16(uint16(len(lookup.Subtables)))
		subSlots := w.pos()
		for range lookup.Subtables {
			w.u16(0)
		}
		for k, sub := range lookup.Subtables {
			w.patch16(subSlots+2*k, uint16(w.pos()-start))
			w.bytes(sub)
		}
	}
	return w.buf
}

// Kern is a kerning pair.
type Kern struct {
	Left, Right uint16
	Value       int16
}

// PairPosFmt1 creates a glyph-pair positioning subtable adjusting the
// x-advance of the first glyph.
func PairPosFmt1(kerns ...Kern) []byte {
	byLeft := make(map[uint16][]Kern)
	for _, k := range kerns {
		byLeft[k.Left] = append(byLeft[k.Left], k)
	}
	lefts := slices.Sorted(maps.Keys(byLeft))
	w := &writer{}
	w.u16(1)
	w.u16(0) // coverage, patched
	w.u16(0x0004)
	w.u16(0)
	w.u16(uint16(len(lefts)))
	slots := w.pos()
	for range lefts {
		w.u16(0)
	}
	for i, left := range lefts {
		w.patch16(slots+2*i, uint16(w.pos()))
		pairs := byLeft[left]
		sort.Slice(pairs, func(a, b int) bool { return pairs[a].Right < pairs[b].Right })
		w.u16(uint16(len(pairs)))
		for _, p := range pairs {
			w.u16(p.Right)
			w.i16(p.Value)
		}
	}
	w.patch16(2, uint16(w.pos()))
	w.bytes(CoverageFmt1(lefts...))
	return w.buf
}

// PairPosFmt2 creates a class-pair positioning subtable adjusting the
// x-advance of the first glyph. values[c1][c2] is the adjustment for the
// class pair (c1, c2).
func PairPosFmt2(coverage []uint16, classDef1, classDef2 map[uint16]uint16, values [][]int16) []byte {
	class1Count, class2Count := len(values), 0
	if class1Count > 0 {
		class2Count = len(values[0])
	}
	w := &writer{}
	w.u16(2)
	w.u16(0) // coverage, patched
	w.u16(0x0004)
	w.u16(0)
	w.u16(0) // class def 1, patched
	w.u16(0) // class def 2, patched
	w.u16(uint16(class1Count))
	w.u16(uint16(class2Count))
	for _, row := range values {
		for _, v := range row {
			w.i16(v)
		}
	}
	w.patch16(2, uint16(w.pos()))
	w.bytes(CoverageFmt1(coverage...))
	w.patch16(8, uint16(w.pos()))
	w.bytes(ClassDefFmt2(classDef1))
	w.patch16(10, uint16(w.pos()))
	w.bytes(ClassDefFmt2(classDef2))
	return w.buf
}

// SingleSubstFmt2 creates a single substitution subtable.
func SingleSubstFmt2(subst map[uint16]uint16) []byte {
	glyphs := slices.Sorted(maps.Keys(subst))
	w := &writer{}
	w.u16(2)
	w.u16(0) // coverage, patched
	w.u16(uint16(len(glyphs)))
	for _, g := range glyphs {
		w.u16(subst[g])
	}
	w.patch16(2, uint16(w.pos()))
	w.bytes(CoverageFmt1(glyphs...))
	return w.buf
}

// LigatureSubst creates a ligature substitution subtable with a single
// ligature replacing the sequence first, components... by lig.
func LigatureSubst(first uint16, components []uint16, lig uint16) []byte {
	w := &writer{}
	w.u16(1)
	w.u16(0) // coverage, patched
	w.u16(1)
	w.u16(8) // ligature set
	// ligature set
	w.u16(1)
	w.u16(4)
	// ligature
	w.u16(lig)
	w.u16(uint16(len(components) + 1))
	for _, c := range components {
		w.u16(c)
	}
	w.patch16(2, uint16(w.pos()))
	w.bytes(CoverageFmt1(first))
	return w.buf
}

// ChainedContextFmt3 creates a chained sequence context subtable of format 3
// with single-glyph coverages, triggering lookup at input position 0.
func ChainedContextFmt3(backtrack, input, lookahead []uint16, lookup uint16) []byte {
	w := &writer{}
	w.u16(3)
	var slots []int
	for _, seq := range [][]uint16{backtrack, input, lookahead} {
		w.u16(uint16(len(seq)))
		for range seq {
			slots = append(slots, w.pos())
			w.u16(0)
		}
	}
	w.u16(1)
	w.u16(0)
	w.u16(lookup)
	i := 0
	for _, seq := range [][]uint16{backtrack, input, lookahead} {
		for _, g := range seq {
			w.patch16(slots[i], uint16(w.pos()))
			w.bytes(CoverageFmt1(g))
			i++
		}
	}
	return w.buf
}

// --- Variation tables ------------------------------------------------------

// Axis is a variation axis of table 'fvar'.
type Axis struct {
	Tag               string
	Min, Default, Max float64
	NameID            uint16
}

// Instance is a named instance of table 'fvar'.
type Instance struct {
	NameID      uint16
	Coordinates []float64
}

func fixed(v float64) uint32 {
	return uint32(int32(v * 65536))
}

// FVar creates a version 1.0 'fvar' table.
func FVar(axes []Axis, instances []Instance) []byte {
	w := &writer{}
	w.u32(0x00010000)
	w.u16(16)
	w.u16(2)
	w.u16(uint16(len(axes)))
	w.u16(20)
	w.u16(uint16(len(instances)))
	w.u16(uint16(4 + 4*len(axes)))
	for _, a := range axes {
		w.tag(a.Tag)
		w.u32(fixed(a.Min))
		w.u32(fixed(a.Default))
		w.u32(fixed(a.Max))
		w.u16(0)
		w.u16(a.NameID)
	}
	for _, inst := range instances {
		w.u16(inst.NameID)
		w.u16(0)
		for _, c := range inst.Coordinates {
			w.u32(fixed(c))
		}
	}
	return w.buf
}

// GVarShared creates a 'gvar' table holding shared tuples only. None of the
// numGlyphs glyphs has variation data.
func GVarShared(axisCount, numGlyphs int, shared [][]float64) []byte {
	w := &writer{}
	w.u32(0x00010000)
	w.u16(uint16(axisCount))
	w.u16(uint16(len(shared)))
	w.u32(0) // shared tuples offset, patched
	w.u16(uint16(numGlyphs))
	w.u16(0)
	w.u32(0) // glyph variation data offset, patched
	for range numGlyphs + 1 {
		w.u16(0)
	}
	PutU32(w.buf, 8, uint32(w.pos()))
	for _, tuple := range shared {
		for _, v := range tuple {
			w.i16(int16(v * 16384))
		}
	}
	PutU32(w.buf, 16, uint32(w.pos()))
	return w.buf
}
