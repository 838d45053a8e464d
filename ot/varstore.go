package ot

import "fmt"

// --- Item variation store --------------------------------------------------

// RegionAxis is the extent of a variation region along one axis, given in
// normalized coordinates.
type RegionAxis struct {
	Start, Peak, End float64
}

// VariationRegion has one RegionAxis per axis of the font.
type VariationRegion []RegionAxis

// ItemVariationData is a subtable of an item variation store. Deltas holds
// one row per item, each row having one delta per referenced region.
type ItemVariationData struct {
	RegionIndices []uint16
	Deltas        [][]int32
}

// ItemVariationStore holds delta-sets for variable values, used by tables
// GDEF, GPOS, HVAR, VVAR and MVAR.
type ItemVariationStore struct {
	Format  uint16
	Regions []VariationRegion
	Data    []ItemVariationData
}

// RegionDelta is a non-zero delta of a delta-set, together with the region
// it applies to.
type RegionDelta struct {
	Region int
	Delta  int32
}

// RegionDeltas returns the non-zero deltas of a delta-set, in the order of
// the subtable's region indices.
func (ivs *ItemVariationStore) RegionDeltas(outer, inner uint16) []RegionDelta {
	if ivs == nil || int(outer) >= len(ivs.Data) {
		return nil
	}
	data := ivs.Data[outer]
	if int(inner) >= len(data.Deltas) {
		return nil
	}
	var deltas []RegionDelta
	for k, d := range data.Deltas[inner] {
		if d != 0 && k < len(data.RegionIndices) {
			deltas = append(deltas, RegionDelta{Region: int(data.RegionIndices[k]), Delta: d})
		}
	}
	return deltas
}

// Delta computes the interpolated delta of a delta-set for a location given
// in normalized coordinates.
func (ivs *ItemVariationStore) Delta(outer, inner uint16, coords []float64) float64 {
	var delta float64
	for _, rd := range ivs.RegionDeltas(outer, inner) {
		if rd.Region < len(ivs.Regions) {
			delta += float64(rd.Delta) * ivs.Regions[rd.Region].Scalar(coords)
		}
	}
	return delta
}

// Scalar returns the factor by which deltas of this region contribute at
// a location. Missing coordinates count as 0.
func (r VariationRegion) Scalar(coords []float64) float64 {
	scalar := 1.0
	for i, ax := range r {
		if ax.Peak == 0 || ax.Start > ax.Peak || ax.Peak > ax.End ||
			(ax.Start < 0 && ax.End > 0) {
			continue
		}
		var v float64
		if i < len(coords) {
			v = coords[i]
		}
		switch {
		case v == ax.Peak:
		case v <= ax.Start || v >= ax.End:
			return 0
		case v < ax.Peak:
			scalar *= (v - ax.Start) / (ax.Peak - ax.Start)
		default:
			scalar *= (ax.End - v) / (ax.End - ax.Peak)
		}
	}
	return scalar
}

// Peaks returns the peak coordinates of a region, one per axis.
func (r VariationRegion) Peaks() []float64 {
	peaks := make([]float64, len(r))
	for i, ax := range r {
		peaks[i] = ax.Peak
	}
	return peaks
}

func parseItemVariationStore(b binarySegm) (*ItemVariationStore, error) {
	if b == nil {
		return nil, nil
	}
	if err := b.need(8, "item variation store"); err != nil {
		return nil, err
	}
	ivs := &ItemVariationStore{Format: b.U16(0)}
	if ivs.Format != 1 {
		return nil, errFontFormat(fmt.Sprintf("unknown item variation store format %d", ivs.Format))
	}
	regions, err := b.offset32(2)
	if err != nil {
		return nil, err
	}
	if regions != nil {
		if err := regions.need(4, "variation region list"); err != nil {
			return nil, err
		}
		axisCount, regionCount := int(regions.U16(0)), int(regions.U16(2))
		size, err := checkedMulInt(6*axisCount, regionCount)
		if err != nil {
			return nil, err
		}
		if err := regions.need(4+size, "variation regions"); err != nil {
			return nil, err
		}
		ivs.Regions = make([]VariationRegion, regionCount)
		for r := range regionCount {
			region := make(VariationRegion, axisCount)
			for a := range axisCount {
				at := 4 + 6*(r*axisCount+a)
				region[a] = RegionAxis{
					Start: regions.F2Dot14(at),
					Peak:  regions.F2Dot14(at + 2),
					End:   regions.F2Dot14(at + 4),
				}
			}
			ivs.Regions[r] = region
		}
	}
	count := int(b.U16(6))
	if err := b.need(8+4*count, "item variation data offsets"); err != nil {
		return nil, err
	}
	ivs.Data = make([]ItemVariationData, count)
	for i := range count {
		db, err := b.offset32(8 + 4*i)
		if err != nil || db == nil {
			return nil, errFontFormat("item variation data offset")
		}
		if ivs.Data[i], err = parseItemVariationData(db); err != nil {
			return nil, err
		}
	}
	return ivs, nil
}

func parseItemVariationData(b binarySegm) (ItemVariationData, error) {
	var data ItemVariationData
	if err := b.need(6, "item variation data"); err != nil {
		return data, err
	}
	itemCount := int(b.U16(0))
	wordCount := int(b.U16(2) & 0x7fff)
	longWords := b.U16(2)&0x8000 != 0
	regionCount := int(b.U16(4))
	if wordCount > regionCount {
		return data, errFontFormat("item variation data word count exceeds region count")
	}
	var err error
	if data.RegionIndices, err = b.uint16s(6, regionCount); err != nil {
		return data, errFontFormat("region indices truncated")
	}
	wide, narrow := 2, 1
	if longWords {
		wide, narrow = 4, 2
	}
	rowSize := wordCount*wide + (regionCount-wordCount)*narrow
	pos := 6 + 2*regionCount
	total, err := checkedMulInt(rowSize, itemCount)
	if err != nil {
		return data, err
	}
	if err := b.need(pos+total, "delta sets"); err != nil {
		return data, err
	}
	data.Deltas = make([][]int32, itemCount)
	for i := range itemCount {
		row := make([]int32, regionCount)
		at := pos + i*rowSize
		for k := range regionCount {
			switch {
			case k < wordCount && longWords:
				row[k] = b.I32(at)
				at += 4
			case k < wordCount || longWords:
				row[k] = int32(b.I16(at))
				at += 2
			default:
				row[k] = int32(int8(b.U8(at)))
				at++
			}
		}
		data.Deltas[i] = row
	}
	return data, nil
}

// --- Delta-set index maps --------------------------------------------------

// DeltaSetIndexMap maps glyph IDs or other items to delta-set indices of an
// item variation store. Items beyond the end of the map use the last entry.
type DeltaSetIndexMap struct {
	Outer, Inner []uint16
}

// Index returns the delta-set indices for item i. Without a map, the item
// index is used as inner index into the first subtable.
func (m *DeltaSetIndexMap) Index(i int) (outer, inner uint16) {
	if m == nil || len(m.Outer) == 0 {
		return 0, uint16(i)
	}
	i = min(i, len(m.Outer)-1)
	return m.Outer[i], m.Inner[i]
}

func parseDeltaSetIndexMap(b binarySegm) (*DeltaSetIndexMap, error) {
	if b == nil {
		return nil, nil
	}
	if err := b.need(4, "delta-set index map"); err != nil {
		return nil, err
	}
	format, entryFormat := b.U8(0), b.U8(1)
	var count, pos int
	switch format {
	case 0:
		count, pos = int(b.U16(2)), 4
	case 1:
		if err := b.need(6, "delta-set index map"); err != nil {
			return nil, err
		}
		count, pos = int(b.U32(2)), 6
	default:
		return nil, errFontFormat(fmt.Sprintf("unknown delta-set index map format %d", format))
	}
	entrySize := int(entryFormat&0x30>>4) + 1
	innerBits := uint(entryFormat&0x0f) + 1
	if _, err := b.view(pos, entrySize*count); err != nil {
		return nil, errFontFormat("delta-set index map truncated")
	}
	m := &DeltaSetIndexMap{Outer: make([]uint16, count), Inner: make([]uint16, count)}
	for i := range count {
		var entry uint32
		for k := range entrySize {
			entry = entry<<8 | uint32(b[pos+i*entrySize+k])
		}
		m.Outer[i] = uint16(entry >> innerBits)
		m.Inner[i] = uint16(entry & (1<<innerBits - 1))
	}
	return m, nil
}
