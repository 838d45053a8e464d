package ot

import "fmt"

// TupleVariation is the header of a glyph variation tuple. Peak is either
// embedded or taken from the shared tuples. Start and End are set only for
// intermediate regions.
type TupleVariation struct {
	Peak          []float64
	Start, End    []float64
	SharedIndex   int // -1 for an embedded peak
	PrivatePoints bool
	DataSize      int
}

// GVar is the glyph variations table.
type GVar struct {
	Version      uint32
	AxisCount    int
	SharedTuples [][]float64
	data         binarySegm
	offsets      []uint32
}

// GVar decodes the header of table 'gvar'. Per-glyph variation data is decoded
// on demand with GlyphVariations.
func (otf *Font) GVar() (*GVar, error) {
	tag := T("gvar")
	b, err := otf.tableData(tag)
	if err != nil {
		return nil, err
	}
	gvar, err := parseGVar(b)
	return gvar, otf.ec.tableError(tag, "Header", err)
}

func parseGVar(b binarySegm) (*GVar, error) {
	if err := b.need(20, "gvar header"); err != nil {
		return nil, err
	}
	gvar := &GVar{Version: b.U32(0), AxisCount: int(b.U16(4))}
	sharedCount := int(b.U16(6))
	if sharedCount > 0 {
		shared, err := b.offset32(8)
		if err != nil || shared == nil {
			return nil, errFontFormat("gvar shared tuples offset")
		}
		if err := shared.need(2*gvar.AxisCount*sharedCount, "gvar shared tuples"); err != nil {
			return nil, err
		}
		for i := range sharedCount {
			gvar.SharedTuples = append(gvar.SharedTuples, readTuple(shared, 2*gvar.AxisCount*i, gvar.AxisCount))
		}
	}
	glyphCount, flags := int(b.U16(12)), b.U16(14)
	dataStart := b.U32(16)
	if uint64(dataStart) > uint64(len(b)) {
		return nil, errFontFormat("gvar glyph variation data offset")
	}
	gvar.data = b[dataStart:]
	gvar.offsets = make([]uint32, glyphCount+1)
	if flags&1 != 0 {
		if err := b.need(20+4*(glyphCount+1), "gvar offsets"); err != nil {
			return nil, err
		}
		for i := range gvar.offsets {
			gvar.offsets[i] = b.U32(20 + 4*i)
		}
	} else {
		if err := b.need(20+2*(glyphCount+1), "gvar offsets"); err != nil {
			return nil, err
		}
		for i := range gvar.offsets {
			gvar.offsets[i] = 2 * uint32(b.U16(20+2*i))
		}
	}
	return gvar, nil
}

func readTuple(b binarySegm, at, axisCount int) []float64 {
	tuple := make([]float64, axisCount)
	for k := range axisCount {
		tuple[k] = b.F2Dot14(at + 2*k)
	}
	return tuple
}

// NumGlyphs returns the number of glyphs covered by the table.
func (gvar *GVar) NumGlyphs() int {
	return max(0, len(gvar.offsets)-1)
}

// Tuple variation header flags
const (
	tupleEmbeddedPeak       = 0x8000
	tupleIntermediateRegion = 0x4000
	tuplePrivatePoints      = 0x2000
	tupleIndexMask          = 0x0FFF
	tupleCountMask          = 0x0FFF
)

// GlyphVariations decodes the tuple variation headers of glyph g.
// Glyphs without variations yield nil.
func (gvar *GVar) GlyphVariations(g GlyphIndex) ([]TupleVariation, error) {
	if int(g) >= gvar.NumGlyphs() {
		return nil, fmt.Errorf("glyph %d out of range", g)
	}
	start, end := gvar.offsets[g], gvar.offsets[g+1]
	if start == end {
		return nil, nil
	}
	if start > end || uint64(end) > uint64(len(gvar.data)) {
		return nil, errFontFormat(fmt.Sprintf("glyph %d: gvar offsets out of bounds", g))
	}
	b := gvar.data[start:end]
	if err := b.need(4, "glyph variation data"); err != nil {
		return nil, err
	}
	count := int(b.U16(0) & tupleCountMask)
	pos := 4
	tuples := make([]TupleVariation, 0, count)
	for i := range count {
		if err := b.need(pos+4, "tuple variation header"); err != nil {
			return nil, err
		}
		tv := TupleVariation{DataSize: int(b.U16(pos)), SharedIndex: -1}
		index := b.U16(pos + 2)
		pos += 4
		tv.PrivatePoints = index&tuplePrivatePoints != 0
		if index&tupleEmbeddedPeak != 0 {
			if err := b.need(pos+2*gvar.AxisCount, "tuple peak"); err != nil {
				return nil, err
			}
			tv.Peak = readTuple(b, pos, gvar.AxisCount)
			pos += 2 * gvar.AxisCount
		} else {
			tv.SharedIndex = int(index & tupleIndexMask)
			if tv.SharedIndex >= len(gvar.SharedTuples) {
				return nil, errFontFormat(fmt.Sprintf("glyph %d tuple %d: shared tuple index out of range", g, i))
			}
			tv.Peak = gvar.SharedTuples[tv.SharedIndex]
		}
		if index&tupleIntermediateRegion != 0 {
			if err := b.need(pos+4*gvar.AxisCount, "tuple intermediate region"); err != nil {
				return nil, err
			}
			tv.Start = readTuple(b, pos, gvar.AxisCount)
			tv.End = readTuple(b, pos+2*gvar.AxisCount, gvar.AxisCount)
			pos += 4 * gvar.AxisCount
		}
		tuples = append(tuples, tv)
	}
	return tuples, nil
}
