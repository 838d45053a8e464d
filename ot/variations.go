package ot

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// --- fvar ------------------------------------------------------------------

// VariationAxis is a design-variation axis of a variable font, with values
// in user space.
type VariationAxis struct {
	Tag     Tag
	Min     float64
	Default float64
	Max     float64
	Flags   uint16
	NameID  uint16
}

// NamedInstance is a named location in the design space of a variable font.
type NamedInstance struct {
	SubfamilyNameID  uint16
	Flags            uint16
	Coordinates      []float64 // user space, one per axis
	PostScriptNameID uint16    // 0xFFFF if absent
}

// FVar is the font variations table.
type FVar struct {
	Version   uint32
	Axes      []VariationAxis
	Instances []NamedInstance
}

// FVar decodes table 'fvar'.
func (otf *Font) FVar() (*FVar, error) {
	tag := T("fvar")
	b, err := otf.tableData(tag)
	if err != nil {
		return nil, err
	}
	fvar, err := parseFVar(b)
	return fvar, otf.ec.tableError(tag, "Header", err)
}

func parseFVar(b binarySegm) (*FVar, error) {
	if err := b.need(16, "fvar header"); err != nil {
		return nil, err
	}
	fvar := &FVar{Version: b.U32(0)}
	axesOffset := int(b.U16(4))
	axisCount, axisSize := int(b.U16(8)), int(b.U16(10))
	instanceCount, instanceSize := int(b.U16(12)), int(b.U16(14))
	if axisSize < 20 || instanceSize < 4+4*axisCount {
		return nil, errFontFormat("fvar record sizes too small")
	}
	if err := b.need(axesOffset+axisCount*axisSize+instanceCount*instanceSize, "fvar records"); err != nil {
		return nil, err
	}
	for i := range axisCount {
		a := b[axesOffset+i*axisSize:]
		fvar.Axes = append(fvar.Axes, VariationAxis{
			Tag:     a.Tag(0),
			Min:     a.Fixed(4),
			Default: a.Fixed(8),
			Max:     a.Fixed(12),
			Flags:   a.U16(16),
			NameID:  a.U16(18),
		})
	}
	instancesOffset := axesOffset + axisCount*axisSize
	for i := range instanceCount {
		r := b[instancesOffset+i*instanceSize:]
		inst := NamedInstance{
			SubfamilyNameID:  r.U16(0),
			Flags:            r.U16(2),
			Coordinates:      make([]float64, axisCount),
			PostScriptNameID: 0xFFFF,
		}
		for k := range axisCount {
			inst.Coordinates[k] = r.Fixed(4 + 4*k)
		}
		if instanceSize >= 6+4*axisCount {
			inst.PostScriptNameID = r.U16(4 + 4*axisCount)
		}
		fvar.Instances = append(fvar.Instances, inst)
	}
	return fvar, nil
}

// Axis returns the axis with a given tag.
func (fvar *FVar) Axis(tag Tag) (VariationAxis, int, bool) {
	if fvar == nil {
		return VariationAxis{}, -1, false
	}
	for i, a := range fvar.Axes {
		if a.Tag == tag {
			return a, i, true
		}
	}
	return VariationAxis{}, -1, false
}

// Normalize converts a user space value for an axis to a normalized
// coordinate in the range -1..1, without applying 'avar'.
func (a VariationAxis) Normalize(v float64) float64 {
	v = max(a.Min, min(a.Max, v))
	switch {
	case v < a.Default && a.Default > a.Min:
		return (v - a.Default) / (a.Default - a.Min)
	case v > a.Default && a.Max > a.Default:
		return (v - a.Default) / (a.Max - a.Default)
	}
	return 0
}

// Denormalize converts a normalized coordinate back to user space,
// interpolating linearly between default and min resp. max.
func (a VariationAxis) Denormalize(n float64) float64 {
	if n > 0 {
		return a.Default + (a.Max-a.Default)*n
	}
	return a.Default + (a.Default-a.Min)*n
}

// AxisValue is a user space value for a variation axis.
type AxisValue struct {
	Tag   Tag
	Value float64
}

// DenormalizeLocation turns a tuple of normalized coordinates back into user
// space values. Axes with coordinate 0 are omitted.
func (fvar *FVar) DenormalizeLocation(tuple []float64) []AxisValue {
	var loc []AxisValue
	if fvar == nil {
		return loc
	}
	for i, a := range fvar.Axes {
		if i >= len(tuple) || tuple[i] == 0 {
			continue
		}
		loc = append(loc, AxisValue{Tag: a.Tag, Value: float32Value(a.Denormalize(tuple[i]))})
	}
	return loc
}

// LocationString formats a location as "tag=value,...", sorted by tag.
func LocationString(loc []AxisValue) string {
	parts := make([]string, len(loc))
	for i, av := range loc {
		parts[i] = av.Tag.String() + "=" + strconv.FormatFloat(av.Value, 'f', -1, 32)
	}
	slices.Sort(parts)
	return strings.Join(parts, ",")
}

// float32Value rounds to float32 precision, which is the precision of the
// fixed-point values found in fonts.
func float32Value(v float64) float64 {
	return float64(float32(v))
}

// --- avar ------------------------------------------------------------------

// AxisValueMap maps a normalized coordinate to a modified one.
type AxisValueMap struct {
	From, To float64
}

// AVar is the axis variations table, one segment map per axis.
type AVar struct {
	Version     uint32
	SegmentMaps [][]AxisValueMap
}

// AVar decodes table 'avar'.
func (otf *Font) AVar() (*AVar, error) {
	tag := T("avar")
	b, err := otf.tableData(tag)
	if err != nil {
		return nil, err
	}
	avar, err := parseAVar(b)
	return avar, otf.ec.tableError(tag, "Header", err)
}

func parseAVar(b binarySegm) (*AVar, error) {
	if err := b.need(8, "avar header"); err != nil {
		return nil, err
	}
	avar := &AVar{Version: b.U32(0)}
	axisCount := int(b.U16(6))
	pos := 8
	for i := range axisCount {
		if err := b.need(pos+2, "avar segment map"); err != nil {
			return nil, err
		}
		n := int(b.U16(pos))
		if err := b.need(pos+2+4*n, fmt.Sprintf("avar segment map %d", i)); err != nil {
			return nil, err
		}
		maps := make([]AxisValueMap, n)
		for k := range n {
			maps[k] = AxisValueMap{From: b.F2Dot14(pos + 2 + 4*k), To: b.F2Dot14(pos + 4 + 4*k)}
		}
		avar.SegmentMaps = append(avar.SegmentMaps, maps)
		pos += 2 + 4*n
	}
	return avar, nil
}

// Map applies the segment map of an axis to a normalized coordinate.
func (avar *AVar) Map(axis int, v float64) float64 {
	if avar == nil || axis >= len(avar.SegmentMaps) {
		return v
	}
	maps := avar.SegmentMaps[axis]
	if len(maps) < 3 {
		return v
	}
	for k := 1; k < len(maps); k++ {
		if v <= maps[k].From {
			lo, hi := maps[k-1], maps[k]
			if hi.From == lo.From {
				return hi.To
			}
			return lo.To + (hi.To-lo.To)*(v-lo.From)/(hi.From-lo.From)
		}
	}
	return maps[len(maps)-1].To
}

// --- HVAR, VVAR ------------------------------------------------------------

// MetricsVariations is table HVAR or VVAR. Mappings may be nil.
type MetricsVariations struct {
	Version        uint32
	VarStore       *ItemVariationStore
	AdvanceMapping *DeltaSetIndexMap
	StartMapping   *DeltaSetIndexMap // left resp. top side bearing
	EndMapping     *DeltaSetIndexMap // right resp. bottom side bearing
	OriginMapping  *DeltaSetIndexMap // VVAR only
}

// HVar decodes table 'HVAR'.
func (otf *Font) HVar() (*MetricsVariations, error) {
	return otf.metricsVariations(T("HVAR"))
}

// VVar decodes table 'VVAR'.
func (otf *Font) VVar() (*MetricsVariations, error) {
	return otf.metricsVariations(T("VVAR"))
}

func (otf *Font) metricsVariations(tag Tag) (*MetricsVariations, error) {
	b, err := otf.tableData(tag)
	if err != nil {
		return nil, err
	}
	mv, err := parseMetricsVariations(b, tag == T("VVAR"))
	return mv, otf.ec.tableError(tag, "Header", err)
}

func parseMetricsVariations(b binarySegm, vertical bool) (*MetricsVariations, error) {
	size := 20
	if vertical {
		size = 24
	}
	if err := b.need(size, "metrics variations header"); err != nil {
		return nil, err
	}
	mv := &MetricsVariations{Version: b.U32(0)}
	link, err := b.offset32(4)
	if err != nil {
		return nil, err
	}
	if mv.VarStore, err = parseItemVariationStore(link); err != nil {
		return nil, err
	}
	mappings := []**DeltaSetIndexMap{&mv.AdvanceMapping, &mv.StartMapping, &mv.EndMapping}
	if vertical {
		mappings = append(mappings, &mv.OriginMapping)
	}
	for i, m := range mappings {
		link, err := b.offset32(8 + 4*i)
		if err != nil {
			return nil, err
		}
		if *m, err = parseDeltaSetIndexMap(link); err != nil {
			return nil, err
		}
	}
	return mv, nil
}

// --- MVAR ------------------------------------------------------------------

// MetricsValueRecord ties a font-wide metric, identified by a tag, to a
// delta-set.
type MetricsValueRecord struct {
	Tag          Tag
	Outer, Inner uint16
}

// MVar is the metrics variations table.
type MVar struct {
	Version  uint32
	Records  []MetricsValueRecord
	VarStore *ItemVariationStore
}

// MVar decodes table 'MVAR'.
func (otf *Font) MVar() (*MVar, error) {
	tag := T("MVAR")
	b, err := otf.tableData(tag)
	if err != nil {
		return nil, err
	}
	mvar, err := parseMVar(b)
	return mvar, otf.ec.tableError(tag, "Header", err)
}

func parseMVar(b binarySegm) (*MVar, error) {
	if err := b.need(12, "MVAR header"); err != nil {
		return nil, err
	}
	mvar := &MVar{Version: b.U32(0)}
	recordSize, count := int(b.U16(6)), int(b.U16(8))
	if count > 0 && recordSize < 8 {
		return nil, errFontFormat("MVAR value record size too small")
	}
	if err := b.need(12+recordSize*count, "MVAR value records"); err != nil {
		return nil, err
	}
	for i := range count {
		r := b[12+i*recordSize:]
		mvar.Records = append(mvar.Records, MetricsValueRecord{Tag: r.Tag(0), Outer: r.U16(4), Inner: r.U16(6)})
	}
	link, err := b.offset16(10)
	if err != nil {
		return nil, err
	}
	if mvar.VarStore, err = parseItemVariationStore(link); err != nil {
		return nil, err
	}
	return mvar, nil
}
