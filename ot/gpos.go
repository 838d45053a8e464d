package ot

import "fmt"

// GPOS lookup types
const (
	GPosLookupTypeSingle         = 1
	GPosLookupTypePair           = 2
	GPosLookupTypeCursive        = 3
	GPosLookupTypeMarkToBase     = 4
	GPosLookupTypeMarkToLigature = 5
	GPosLookupTypeMarkToMark     = 6
	GPosLookupTypeContextPos     = 7
	GPosLookupTypeChainedContext = 8
	GPosLookupTypeExtensionPos   = 9
)

// SinglePos adjusts the position of single glyphs.
// Format 1 has a single value record applying to all covered glyphs,
// format 2 has one value record per covered glyph.
type SinglePos struct {
	Format   uint16
	Coverage Coverage
	Values   []ValueRecord
}

// PairPos adjusts the positions of pairs of glyphs.
type PairPos struct {
	Format       uint16
	Coverage     Coverage
	ValueFormat1 ValueFormat
	ValueFormat2 ValueFormat
	PairSets     [][]PairValueRecord // format 1, by coverage index
	ClassDef1    *ClassDef           // format 2
	ClassDef2    *ClassDef           // format 2
	Class1Count  uint16              // format 2
	Class2Count  uint16              // format 2
	ClassRecords [][]Class2Record    // format 2, [class1][class2]
}

// PairValueRecord is an entry of a format 1 pair set.
type PairValueRecord struct {
	SecondGlyph GlyphIndex
	Value1      ValueRecord
	Value2      ValueRecord
}

// Class2Record is an entry of the format 2 class matrix.
type Class2Record struct {
	Value1 ValueRecord
	Value2 ValueRecord
}

// CursivePos connects glyphs by entry and exit anchors.
type CursivePos struct {
	Coverage  Coverage
	EntryExit []EntryExit // by coverage index
}

// EntryExit holds the anchors of a glyph for cursive attachment.
type EntryExit struct {
	Entry *Anchor
	Exit  *Anchor
}

// MarkRecord assigns a mark class and an anchor to a mark glyph.
type MarkRecord struct {
	Class  uint16
	Anchor *Anchor
}

// MarkBasePos attaches marks to base glyphs.
type MarkBasePos struct {
	MarkCoverage   Coverage
	BaseCoverage   Coverage
	MarkClassCount uint16
	Marks          []MarkRecord // by mark coverage index
	Bases          [][]*Anchor  // by base coverage index, then mark class
}

// MarkLigPos attaches marks to ligature components.
type MarkLigPos struct {
	MarkCoverage     Coverage
	LigatureCoverage Coverage
	MarkClassCount   uint16
	Marks            []MarkRecord  // by mark coverage index
	Ligatures        [][][]*Anchor // by ligature coverage index, component, mark class
}

// MarkMarkPos attaches marks to other marks.
type MarkMarkPos struct {
	Mark1Coverage  Coverage
	Mark2Coverage  Coverage
	MarkClassCount uint16
	Marks          []MarkRecord // by mark1 coverage index
	BaseMarks      [][]*Anchor  // by mark2 coverage index, then mark class
}

func (*SinglePos) isSubtable()   {}
func (*PairPos) isSubtable()     {}
func (*CursivePos) isSubtable()  {}
func (*MarkBasePos) isSubtable() {}
func (*MarkLigPos) isSubtable()  {}
func (*MarkMarkPos) isSubtable() {}

func parseGPosSubtable(b binarySegm, lookupType uint16) (Subtable, error) {
	switch lookupType {
	case GPosLookupTypeSingle:
		return parseSinglePos(b)
	case GPosLookupTypePair:
		return parsePairPos(b)
	case GPosLookupTypeCursive:
		return parseCursivePos(b)
	case GPosLookupTypeMarkToBase:
		return parseMarkBasePos(b)
	case GPosLookupTypeMarkToLigature:
		return parseMarkLigPos(b)
	case GPosLookupTypeMarkToMark:
		return parseMarkMarkPos(b)
	case GPosLookupTypeContextPos:
		return parseSequenceContext(b)
	case GPosLookupTypeChainedContext:
		return parseChainedSequenceContext(b)
	}
	return nil, errFontFormat(fmt.Sprintf("unknown GPOS lookup type %d", lookupType))
}

func parseSinglePos(b binarySegm) (*SinglePos, error) {
	if err := b.need(6, "SinglePos"); err != nil {
		return nil, err
	}
	sp := &SinglePos{Format: b.U16(0)}
	var err error
	if sp.Coverage, err = coverageAt(b, 2); err != nil {
		return nil, err
	}
	vf := ValueFormat(b.U16(4))
	switch sp.Format {
	case 1:
		vr, err := parseValueRecord(b, 6, vf, b)
		if err != nil {
			return nil, err
		}
		sp.Values = []ValueRecord{vr}
	case 2:
		n := int(b.U16(6))
		for i := range n {
			vr, err := parseValueRecord(b, 8+i*vf.size(), vf, b)
			if err != nil {
				return nil, err
			}
			sp.Values = append(sp.Values, vr)
		}
	default:
		return nil, errFontFormat(fmt.Sprintf("unknown SinglePos format %d", sp.Format))
	}
	return sp, nil
}

// Value returns the value record for the i-th covered glyph.
func (sp *SinglePos) Value(i int) (ValueRecord, bool) {
	if sp.Format == 1 && len(sp.Values) == 1 {
		return sp.Values[0], true
	}
	if i < len(sp.Values) {
		return sp.Values[i], true
	}
	return ValueRecord{}, false
}

func parsePairPos(b binarySegm) (*PairPos, error) {
	if err := b.need(10, "PairPos"); err != nil {
		return nil, err
	}
	pp := &PairPos{
		Format:       b.U16(0),
		ValueFormat1: ValueFormat(b.U16(4)),
		ValueFormat2: ValueFormat(b.U16(6)),
	}
	var err error
	if pp.Coverage, err = coverageAt(b, 2); err != nil {
		return nil, err
	}
	size1, size2 := pp.ValueFormat1.size(), pp.ValueFormat2.size()
	switch pp.Format {
	case 1:
		n := int(b.U16(8))
		offsets, err := b.uint16s(10, n)
		if err != nil {
			return nil, errFontFormat("pair set offsets truncated")
		}
		pp.PairSets = make([][]PairValueRecord, n)
		for i, off := range offsets {
			ps, err := b.offsetFrom(uint32(off))
			if err != nil || ps == nil {
				return nil, errFontFormat("pair set offset out of bounds")
			}
			count := int(ps.U16(0))
			recSize := 2 + size1 + size2
			if err := ps.need(2+count*recSize, "pair set"); err != nil {
				return nil, err
			}
			for k := range count {
				at := 2 + k*recSize
				pvr := PairValueRecord{SecondGlyph: GlyphIndex(ps.U16(at))}
				if pvr.Value1, err = parseValueRecord(ps, at+2, pp.ValueFormat1, b); err != nil {
					return nil, err
				}
				if pvr.Value2, err = parseValueRecord(ps, at+2+size1, pp.ValueFormat2, b); err != nil {
					return nil, err
				}
				pp.PairSets[i] = append(pp.PairSets[i], pvr)
			}
		}
	case 2:
		if err := b.need(16, "PairPos format 2"); err != nil {
			return nil, err
		}
		if pp.ClassDef1, err = classDefAt(b, 8); err != nil {
			return nil, err
		}
		if pp.ClassDef2, err = classDefAt(b, 10); err != nil {
			return nil, err
		}
		pp.Class1Count, pp.Class2Count = b.U16(12), b.U16(14)
		recSize := size1 + size2
		total, err := checkedMulInt(int(pp.Class1Count)*int(pp.Class2Count), recSize)
		if err != nil {
			return nil, err
		}
		if err := b.need(16+total, "PairPos class records"); err != nil {
			return nil, err
		}
		pp.ClassRecords = make([][]Class2Record, pp.Class1Count)
		for c1 := range int(pp.Class1Count) {
			pp.ClassRecords[c1] = make([]Class2Record, pp.Class2Count)
			for c2 := range int(pp.Class2Count) {
				at := 16 + (c1*int(pp.Class2Count)+c2)*recSize
				rec := &pp.ClassRecords[c1][c2]
				if rec.Value1, err = parseValueRecord(b, at, pp.ValueFormat1, b); err != nil {
					return nil, err
				}
				if rec.Value2, err = parseValueRecord(b, at+size1, pp.ValueFormat2, b); err != nil {
					return nil, err
				}
			}
		}
	default:
		return nil, errFontFormat(fmt.Sprintf("unknown PairPos format %d", pp.Format))
	}
	return pp, nil
}

func parseCursivePos(b binarySegm) (*CursivePos, error) {
	if err := b.need(6, "CursivePos"); err != nil {
		return nil, err
	}
	cp := &CursivePos{}
	var err error
	if cp.Coverage, err = coverageAt(b, 2); err != nil {
		return nil, err
	}
	n := int(b.U16(4))
	if err := b.need(6+4*n, "entry exit records"); err != nil {
		return nil, err
	}
	for i := range n {
		var ee EntryExit
		if ee.Entry, err = anchorAt(b, b.U16(6+4*i)); err != nil {
			return nil, err
		}
		if ee.Exit, err = anchorAt(b, b.U16(6+4*i+2)); err != nil {
			return nil, err
		}
		cp.EntryExit = append(cp.EntryExit, ee)
	}
	return cp, nil
}

// parseMarkArray parses a mark array at a 16-bit offset within b.
func parseMarkArray(b binarySegm, at int) ([]MarkRecord, error) {
	ma, err := b.offset16(at)
	if err != nil || ma == nil {
		return nil, errFontFormat("mark array offset out of bounds")
	}
	n := int(ma.U16(0))
	if err := ma.need(2+4*n, "mark array"); err != nil {
		return nil, err
	}
	marks := make([]MarkRecord, n)
	for i := range n {
		marks[i].Class = ma.U16(2 + 4*i)
		if marks[i].Anchor, err = anchorAt(ma, ma.U16(2+4*i+2)); err != nil {
			return nil, err
		}
	}
	return marks, nil
}

// parseAnchorMatrix parses an array of records, each holding classCount
// anchor offsets relative to the array, starting at a 16-bit offset within b.
// BaseArray and Mark2Array share this layout.
func parseAnchorMatrix(b binarySegm, at int, classCount int) ([][]*Anchor, error) {
	arr, err := b.offset16(at)
	if err != nil || arr == nil {
		return nil, errFontFormat("anchor array offset out of bounds")
	}
	return parseAnchorRecords(arr, classCount)
}

func parseAnchorRecords(arr binarySegm, classCount int) ([][]*Anchor, error) {
	n := int(arr.U16(0))
	if err := arr.need(2+2*n*classCount, "anchor records"); err != nil {
		return nil, err
	}
	matrix := make([][]*Anchor, n)
	var err error
	for i := range n {
		matrix[i] = make([]*Anchor, classCount)
		for c := range classCount {
			off := arr.U16(2 + 2*(i*classCount+c))
			if matrix[i][c], err = anchorAt(arr, off); err != nil {
				return nil, err
			}
		}
	}
	return matrix, nil
}

func parseMarkBasePos(b binarySegm) (*MarkBasePos, error) {
	if err := b.need(12, "MarkBasePos"); err != nil {
		return nil, err
	}
	mb := &MarkBasePos{MarkClassCount: b.U16(6)}
	var err error
	if mb.MarkCoverage, err = coverageAt(b, 2); err != nil {
		return nil, err
	}
	if mb.BaseCoverage, err = coverageAt(b, 4); err != nil {
		return nil, err
	}
	if mb.Marks, err = parseMarkArray(b, 8); err != nil {
		return nil, err
	}
	if mb.Bases, err = parseAnchorMatrix(b, 10, int(mb.MarkClassCount)); err != nil {
		return nil, err
	}
	return mb, nil
}

func parseMarkLigPos(b binarySegm) (*MarkLigPos, error) {
	if err := b.need(12, "MarkLigPos"); err != nil {
		return nil, err
	}
	ml := &MarkLigPos{MarkClassCount: b.U16(6)}
	var err error
	if ml.MarkCoverage, err = coverageAt(b, 2); err != nil {
		return nil, err
	}
	if ml.LigatureCoverage, err = coverageAt(b, 4); err != nil {
		return nil, err
	}
	if ml.Marks, err = parseMarkArray(b, 8); err != nil {
		return nil, err
	}
	la, err := b.offset16(10)
	if err != nil || la == nil {
		return nil, errFontFormat("ligature array offset out of bounds")
	}
	n := int(la.U16(0))
	offsets, err := la.uint16s(2, n)
	if err != nil {
		return nil, errFontFormat("ligature attach offsets truncated")
	}
	ml.Ligatures = make([][][]*Anchor, n)
	for i, off := range offsets {
		attach, err := la.offsetFrom(uint32(off))
		if err != nil || attach == nil {
			return nil, errFontFormat("ligature attach offset out of bounds")
		}
		if ml.Ligatures[i], err = parseAnchorRecords(attach, int(ml.MarkClassCount)); err != nil {
			return nil, err
		}
	}
	return ml, nil
}

func parseMarkMarkPos(b binarySegm) (*MarkMarkPos, error) {
	if err := b.need(12, "MarkMarkPos"); err != nil {
		return nil, err
	}
	mm := &MarkMarkPos{MarkClassCount: b.U16(6)}
	var err error
	if mm.Mark1Coverage, err = coverageAt(b, 2); err != nil {
		return nil, err
	}
	if mm.Mark2Coverage, err = coverageAt(b, 4); err != nil {
		return nil, err
	}
	if mm.Marks, err = parseMarkArray(b, 8); err != nil {
		return nil, err
	}
	if mm.BaseMarks, err = parseAnchorMatrix(b, 10, int(mm.MarkClassCount)); err != nil {
		return nil, err
	}
	return mm, nil
}
