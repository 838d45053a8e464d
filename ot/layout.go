package ot

import (
	"fmt"
)

// LayoutTable is the common structure of tables GSUB and GPOS: a script list,
// a feature list and a lookup list.
type LayoutTable struct {
	Tag      Tag
	Version  uint32 // major << 16 | minor
	Scripts  []ScriptRecord
	Features []FeatureRecord
	Lookups  []Lookup
}

// ScriptRecord is an entry of the script list.
type ScriptRecord struct {
	Tag            Tag
	DefaultLangSys *LangSys
	LangSys        []LangSysRecord
}

// LangSysRecord is a language system of a script.
type LangSysRecord struct {
	Tag     Tag
	LangSys LangSys
}

// NoRequiredFeature is the RequiredFeatureIndex of a language system without
// a required feature.
const NoRequiredFeature = 0xFFFF

// LangSys lists the features of a language system.
type LangSys struct {
	RequiredFeatureIndex uint16
	FeatureIndices       []uint16
}

// FeatureRecord is an entry of the feature list.
type FeatureRecord struct {
	Tag           Tag
	LookupIndices []uint16
}

// Lookup flags
const (
	LookupRightToLeft         uint16 = 0x0001
	LookupIgnoreBaseGlyphs    uint16 = 0x0002
	LookupIgnoreLigatures     uint16 = 0x0004
	LookupIgnoreMarks         uint16 = 0x0008
	LookupUseMarkFilteringSet uint16 = 0x0010
)

// Lookup is an entry of the lookup list. Extension subtables are resolved,
// i.e. Type and Subtables denote the extended lookup type.
type Lookup struct {
	Type             uint16
	Flag             uint16
	MarkFilteringSet int // -1 if not used
	Subtables        []Subtable
}

// Subtable is one of the lookup subtable types of GSUB or GPOS.
// The set of implementing types is closed:
//
//	GPOS: *SinglePos, *PairPos, *CursivePos, *MarkBasePos, *MarkLigPos, *MarkMarkPos
//	GSUB: *SingleSubst, *MultipleSubst, *AlternateSubst, *LigatureSubst, *ReverseChainSubst
//	both: *SequenceContext, *ChainedSequenceContext, *BrokenSubtable
type Subtable interface {
	isSubtable()
}

// BrokenSubtable stands in for a subtable which could not be decoded.
type BrokenSubtable struct {
	Err error
}

func (*BrokenSubtable) isSubtable() {}

// GSub decodes table 'GSUB'.
func (otf *Font) GSub() (*LayoutTable, error) {
	return otf.layoutTable(T("GSUB"), false)
}

// GPos decodes table 'GPOS'.
func (otf *Font) GPos() (*LayoutTable, error) {
	return otf.layoutTable(T("GPOS"), true)
}

func (otf *Font) layoutTable(tag Tag, isGPos bool) (*LayoutTable, error) {
	b, err := otf.tableData(tag)
	if err != nil {
		return nil, err
	}
	lytt, err := parseLayoutTable(b, tag, isGPos, otf.ec)
	return lytt, otf.ec.tableError(tag, "Header", err)
}

func parseLayoutTable(b binarySegm, tag Tag, isGPos bool, ec *errorCollector) (*LayoutTable, error) {
	if err := b.need(10, "layout table header"); err != nil {
		return nil, err
	}
	lytt := &LayoutTable{Tag: tag, Version: b.U32(0)}
	if major := b.U16(0); major != 1 {
		return nil, errFontFormat(fmt.Sprintf("unsupported %s version %d", tag, major))
	}
	scripts, err := b.offset16(4)
	if err != nil {
		return nil, err
	}
	if lytt.Scripts, err = parseScriptList(scripts); err != nil {
		return nil, fmt.Errorf("script list: %w", err)
	}
	features, err := b.offset16(6)
	if err != nil {
		return nil, err
	}
	if lytt.Features, err = parseFeatureList(features); err != nil {
		return nil, fmt.Errorf("feature list: %w", err)
	}
	lookups, err := b.offset16(8)
	if err != nil {
		return nil, err
	}
	if lytt.Lookups, err = parseLookupList(lookups, tag, isGPos, ec); err != nil {
		return nil, fmt.Errorf("lookup list: %w", err)
	}
	return lytt, nil
}

func parseScriptList(b binarySegm) ([]ScriptRecord, error) {
	if b == nil {
		return nil, nil
	}
	n := int(b.U16(0))
	if n > MaxScriptCount {
		return nil, errFontFormat(fmt.Sprintf("script count %d exceeds maximum", n))
	}
	if err := b.need(2+6*n, "script records"); err != nil {
		return nil, err
	}
	scripts := make([]ScriptRecord, 0, n)
	for i := range n {
		rec := ScriptRecord{Tag: b.Tag(2 + 6*i)}
		s, err := b.offset16(2 + 6*i + 4)
		if err != nil || s == nil {
			return nil, errFontFormat("script table offset")
		}
		if err := s.need(4, "script table"); err != nil {
			return nil, err
		}
		if dflt, _ := s.offset16(0); dflt != nil {
			ls, err := parseLangSys(dflt)
			if err != nil {
				return nil, err
			}
			rec.DefaultLangSys = &ls
		}
		count := int(s.U16(2))
		if err := s.need(4+6*count, "language system records"); err != nil {
			return nil, err
		}
		for k := range count {
			lsb, err := s.offset16(4 + 6*k + 4)
			if err != nil || lsb == nil {
				return nil, errFontFormat("language system offset")
			}
			ls, err := parseLangSys(lsb)
			if err != nil {
				return nil, err
			}
			rec.LangSys = append(rec.LangSys, LangSysRecord{Tag: s.Tag(4 + 6*k), LangSys: ls})
		}
		scripts = append(scripts, rec)
	}
	return scripts, nil
}

func parseLangSys(b binarySegm) (LangSys, error) {
	if err := b.need(6, "language system"); err != nil {
		return LangSys{}, err
	}
	ls := LangSys{RequiredFeatureIndex: b.U16(2)}
	inx, err := b.uint16s(6, int(b.U16(4)))
	if err != nil {
		return ls, errFontFormat("feature indices truncated")
	}
	ls.FeatureIndices = inx
	return ls, nil
}

func parseFeatureList(b binarySegm) ([]FeatureRecord, error) {
	if b == nil {
		return nil, nil
	}
	n := int(b.U16(0))
	if n > MaxFeatureCount {
		return nil, errFontFormat(fmt.Sprintf("feature count %d exceeds maximum", n))
	}
	if err := b.need(2+6*n, "feature records"); err != nil {
		return nil, err
	}
	features := make([]FeatureRecord, 0, n)
	for i := range n {
		f, err := b.offset16(2 + 6*i + 4)
		if err != nil || f == nil {
			return nil, errFontFormat("feature table offset")
		}
		if err := f.need(4, "feature table"); err != nil {
			return nil, err
		}
		inx, err := f.uint16s(4, int(f.U16(2)))
		if err != nil {
			return nil, errFontFormat("lookup indices truncated")
		}
		features = append(features, FeatureRecord{Tag: b.Tag(2 + 6*i), LookupIndices: inx})
	}
	return features, nil
}

// GSUB and GPOS extension lookup types
const (
	gsubExtension = 7
	gposExtension = 9
)

func parseLookupList(b binarySegm, tag Tag, isGPos bool, ec *errorCollector) ([]Lookup, error) {
	if b == nil {
		return nil, nil
	}
	n := int(b.U16(0))
	if n > MaxLookupCount {
		return nil, errFontFormat(fmt.Sprintf("lookup count %d exceeds maximum", n))
	}
	offsets, err := b.uint16s(2, n)
	if err != nil {
		return nil, errFontFormat("lookup offsets truncated")
	}
	lookups := make([]Lookup, 0, n)
	for i, off := range offsets {
		lb, err := b.offsetFrom(uint32(off))
		if err != nil || lb == nil {
			return nil, errFontFormat(fmt.Sprintf("lookup %d offset", i))
		}
		if err := lb.need(6, "lookup table"); err != nil {
			return nil, err
		}
		lookup := Lookup{Type: lb.U16(0), Flag: lb.U16(2), MarkFilteringSet: -1}
		count := int(lb.U16(4))
		subOffsets, err := lb.uint16s(6, count)
		if err != nil {
			return nil, errFontFormat(fmt.Sprintf("lookup %d subtable offsets truncated", i))
		}
		if lookup.Flag&LookupUseMarkFilteringSet != 0 {
			lookup.MarkFilteringSet = int(lb.U16(6 + 2*count))
		}
		extension := uint16(gsubExtension)
		if isGPos {
			extension = gposExtension
		}
		declared := lookup.Type
		for k, so := range subOffsets {
			sb, err := lb.offsetFrom(uint32(so))
			lookupType := declared
			if err == nil && declared == extension {
				lookupType, sb, err = resolveExtension(sb, extension)
				if err == nil {
					lookup.Type = lookupType
				}
			}
			var sub Subtable
			if err == nil {
				if isGPos {
					sub, err = parseGPosSubtable(sb, lookupType)
				} else {
					sub, err = parseGSubSubtable(sb, lookupType)
				}
			}
			if err != nil {
				ec.addError(tag, fmt.Sprintf("Lookup %d/%d", i, k), err.Error(), SeverityMinor, 0)
				tracer().Infof("%s lookup %d subtable %d cannot be parsed: %v", tag, i, k, err)
				sub = &BrokenSubtable{Err: err}
			}
			lookup.Subtables = append(lookup.Subtables, sub)
		}
		lookups = append(lookups, lookup)
	}
	return lookups, nil
}

// resolveExtension follows an extension subtable to the subtable it wraps.
func resolveExtension(b binarySegm, extension uint16) (uint16, binarySegm, error) {
	if err := b.need(8, "extension subtable"); err != nil {
		return 0, nil, err
	}
	if b.U16(0) != 1 {
		return 0, nil, errFontFormat("unknown extension subtable format")
	}
	lookupType := b.U16(2)
	if lookupType == extension {
		return 0, nil, errFontFormat("recursive extension subtable")
	}
	sub, err := b.offset32(4)
	if err != nil || sub == nil {
		return 0, nil, errFontFormat("extension offset out of bounds")
	}
	return lookupType, sub, nil
}

// SequenceLookup is a nested lookup triggered at a position of a matched
// input sequence.
type SequenceLookup struct {
	SequenceIndex uint16
	LookupIndex   uint16
}

func parseSequenceLookups(b binarySegm, at, n int) ([]SequenceLookup, error) {
	if _, err := b.view(at, 4*n); err != nil {
		return nil, errFontFormat("sequence lookup records truncated")
	}
	records := make([]SequenceLookup, n)
	for i := range n {
		records[i] = SequenceLookup{SequenceIndex: b.U16(at + 4*i), LookupIndex: b.U16(at + 4*i + 2)}
	}
	return records, nil
}
