package ot

import "fmt"

// DesignAxis is an axis record of table STAT.
type DesignAxis struct {
	Tag      Tag
	NameID   uint16
	Ordering uint16
}

// StatAxisValue is an axis value table of STAT, in one of four formats.
// Format 4 uses Locations, the other formats AxisIndex and Value.
type StatAxisValue struct {
	Format      uint16
	AxisIndex   uint16
	Flags       uint16
	ValueNameID uint16
	Value       float64
	RangeMin    float64   // format 2
	RangeMax    float64   // format 2
	LinkedValue float64   // format 3
	Locations   []AxisLoc // format 4
}

// AxisLoc is a value for a design axis, referenced by index.
type AxisLoc struct {
	AxisIndex uint16
	Value     float64
}

// Stat is the style attributes table.
type Stat struct {
	Version              uint32
	DesignAxes           []DesignAxis
	AxisValues           []StatAxisValue
	ElidedFallbackNameID uint16
}

// Stat decodes table 'STAT'.
func (otf *Font) Stat() (*Stat, error) {
	tag := T("STAT")
	b, err := otf.tableData(tag)
	if err != nil {
		return nil, err
	}
	stat, err := parseStat(b)
	return stat, otf.ec.tableError(tag, "Header", err)
}

func parseStat(b binarySegm) (*Stat, error) {
	if err := b.need(18, "STAT header"); err != nil {
		return nil, err
	}
	stat := &Stat{Version: b.U32(0)}
	axisSize, axisCount := int(b.U16(4)), int(b.U16(6))
	if b.U16(2) >= 1 && len(b) >= 20 {
		stat.ElidedFallbackNameID = b.U16(18)
	}
	if axisCount > 0 {
		axes, err := b.offset32(8)
		if err != nil || axes == nil {
			return nil, errFontFormat("STAT design axes offset")
		}
		if axisSize < 8 {
			return nil, errFontFormat("STAT design axis size too small")
		}
		if err := axes.need(axisCount*axisSize, "STAT design axes"); err != nil {
			return nil, err
		}
		for i := range axisCount {
			a := axes[i*axisSize:]
			stat.DesignAxes = append(stat.DesignAxes, DesignAxis{Tag: a.Tag(0), NameID: a.U16(4), Ordering: a.U16(6)})
		}
	}
	valueCount := int(b.U16(12))
	if valueCount == 0 {
		return stat, nil
	}
	values, err := b.offset32(14)
	if err != nil || values == nil {
		return nil, errFontFormat("STAT axis value offsets")
	}
	offsets, err := values.uint16s(0, valueCount)
	if err != nil {
		return nil, errFontFormat("STAT axis value offsets truncated")
	}
	for _, off := range offsets {
		vb, err := values.offsetFrom(uint32(off))
		if err != nil || vb == nil {
			return nil, errFontFormat("STAT axis value offset")
		}
		av, err := parseStatAxisValue(vb)
		if err != nil {
			return nil, err
		}
		stat.AxisValues = append(stat.AxisValues, av)
	}
	return stat, nil
}

func parseStatAxisValue(b binarySegm) (StatAxisValue, error) {
	sizes := map[uint16]int{1: 12, 2: 20, 3: 16, 4: 8}
	av := StatAxisValue{Format: b.U16(0)}
	size, ok := sizes[av.Format]
	if !ok {
		return av, errFontFormat(fmt.Sprintf("unknown STAT axis value format %d", av.Format))
	}
	if err := b.need(size, "STAT axis value"); err != nil {
		return av, err
	}
	av.Flags, av.ValueNameID = b.U16(4), b.U16(6)
	switch av.Format {
	case 1:
		av.AxisIndex, av.Value = b.U16(2), b.Fixed(8)
	case 2:
		av.AxisIndex, av.Value = b.U16(2), b.Fixed(8)
		av.RangeMin, av.RangeMax = b.Fixed(12), b.Fixed(16)
	case 3:
		av.AxisIndex, av.Value = b.U16(2), b.Fixed(8)
		av.LinkedValue = b.Fixed(12)
	case 4:
		count := int(b.U16(2))
		if err := b.need(8+6*count, "STAT axis value format 4"); err != nil {
			return av, err
		}
		for k := range count {
			av.Locations = append(av.Locations, AxisLoc{AxisIndex: b.U16(8 + 6*k), Value: b.Fixed(10 + 6*k)})
		}
	}
	return av, nil
}
