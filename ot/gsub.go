package ot

import "fmt"

// GSUB lookup types
const (
	GSubLookupTypeSingle          = 1
	GSubLookupTypeMultiple        = 2
	GSubLookupTypeAlternate       = 3
	GSubLookupTypeLigature        = 4
	GSubLookupTypeContext         = 5
	GSubLookupTypeChainingContext = 6
	GSubLookupTypeExtensionSubs   = 7
	GSubLookupTypeReverseChaining = 8
)

// SingleSubst replaces single glyphs. Format 1 adds a delta to the glyph ID,
// format 2 lists a substitute per covered glyph.
type SingleSubst struct {
	Format      uint16
	Coverage    Coverage
	DeltaGlyph  int16        // format 1
	Substitutes []GlyphIndex // format 2, by coverage index
}

// Substitute returns the replacement for the i-th covered glyph g.
func (ss *SingleSubst) Substitute(i int, g GlyphIndex) (GlyphIndex, bool) {
	if ss.Format == 1 {
		return GlyphIndex(uint16(int(g) + int(ss.DeltaGlyph))), true
	}
	if i < len(ss.Substitutes) {
		return ss.Substitutes[i], true
	}
	return 0, false
}

// MultipleSubst replaces single glyphs by sequences of glyphs.
type MultipleSubst struct {
	Coverage  Coverage
	Sequences [][]GlyphIndex // by coverage index
}

// AlternateSubst offers alternates for single glyphs.
type AlternateSubst struct {
	Coverage   Coverage
	Alternates [][]GlyphIndex // by coverage index
}

// Ligature replaces a sequence of components by a ligature glyph. Components
// start with the second glyph, the first one being the covered glyph.
type Ligature struct {
	Glyph      GlyphIndex
	Components []GlyphIndex
}

// LigatureSubst replaces glyph sequences by ligatures.
type LigatureSubst struct {
	Coverage     Coverage
	LigatureSets [][]Ligature // by coverage index
}

// ReverseChainSubst is a reverse chaining contextual single substitution.
type ReverseChainSubst struct {
	Coverage           Coverage
	BacktrackCoverages []Coverage
	LookaheadCoverages []Coverage
	Substitutes        []GlyphIndex // by coverage index
}

func (*SingleSubst) isSubtable()       {}
func (*MultipleSubst) isSubtable()     {}
func (*AlternateSubst) isSubtable()    {}
func (*LigatureSubst) isSubtable()     {}
func (*ReverseChainSubst) isSubtable() {}

func parseGSubSubtable(b binarySegm, lookupType uint16) (Subtable, error) {
	switch lookupType {
	case GSubLookupTypeSingle:
		return parseSingleSubst(b)
	case GSubLookupTypeMultiple:
		seqs, cov, err := parseGlyphSequences(b, "MultipleSubst")
		if err != nil {
			return nil, err
		}
		return &MultipleSubst{Coverage: cov, Sequences: seqs}, nil
	case GSubLookupTypeAlternate:
		alts, cov, err := parseGlyphSequences(b, "AlternateSubst")
		if err != nil {
			return nil, err
		}
		return &AlternateSubst{Coverage: cov, Alternates: alts}, nil
	case GSubLookupTypeLigature:
		return parseLigatureSubst(b)
	case GSubLookupTypeContext:
		return parseSequenceContext(b)
	case GSubLookupTypeChainingContext:
		return parseChainedSequenceContext(b)
	case GSubLookupTypeReverseChaining:
		return parseReverseChainSubst(b)
	}
	return nil, errFontFormat(fmt.Sprintf("unknown GSUB lookup type %d", lookupType))
}

func parseSingleSubst(b binarySegm) (*SingleSubst, error) {
	if err := b.need(6, "SingleSubst"); err != nil {
		return nil, err
	}
	ss := &SingleSubst{Format: b.U16(0)}
	var err error
	if ss.Coverage, err = coverageAt(b, 2); err != nil {
		return nil, err
	}
	switch ss.Format {
	case 1:
		ss.DeltaGlyph = b.I16(4)
	case 2:
		if ss.Substitutes, err = b.glyphs(6, int(b.U16(4))); err != nil {
			return nil, errFontFormat("SingleSubst substitutes truncated")
		}
	default:
		return nil, errFontFormat(fmt.Sprintf("unknown SingleSubst format %d", ss.Format))
	}
	return ss, nil
}

// parseGlyphSequences parses the common layout of multiple and alternate
// substitution subtables: a coverage and an array of offsets to glyph arrays.
func parseGlyphSequences(b binarySegm, name string) ([][]GlyphIndex, Coverage, error) {
	if err := b.need(6, name); err != nil {
		return nil, Coverage{}, err
	}
	if f := b.U16(0); f != 1 {
		return nil, Coverage{}, errFontFormat(fmt.Sprintf("unknown %s format %d", name, f))
	}
	cov, err := coverageAt(b, 2)
	if err != nil {
		return nil, cov, err
	}
	n := int(b.U16(4))
	offsets, err := b.uint16s(6, n)
	if err != nil {
		return nil, cov, errFontFormat(name + " offsets truncated")
	}
	seqs := make([][]GlyphIndex, n)
	for i, off := range offsets {
		sb, err := b.offsetFrom(uint32(off))
		if err != nil || sb == nil {
			return nil, cov, errFontFormat(name + " sequence offset out of bounds")
		}
		if seqs[i], err = sb.glyphs(2, int(sb.U16(0))); err != nil {
			return nil, cov, errFontFormat(name + " sequence truncated")
		}
	}
	return seqs, cov, nil
}

func parseLigatureSubst(b binarySegm) (*LigatureSubst, error) {
	if err := b.need(6, "LigatureSubst"); err != nil {
		return nil, err
	}
	ls := &LigatureSubst{}
	var err error
	if ls.Coverage, err = coverageAt(b, 2); err != nil {
		return nil, err
	}
	n := int(b.U16(4))
	offsets, err := b.uint16s(6, n)
	if err != nil {
		return nil, errFontFormat("ligature set offsets truncated")
	}
	ls.LigatureSets = make([][]Ligature, n)
	for i, off := range offsets {
		set, err := b.offsetFrom(uint32(off))
		if err != nil || set == nil {
			return nil, errFontFormat("ligature set offset out of bounds")
		}
		ligs, err := parseRuleSet(set, parseLigature)
		if err != nil {
			return nil, err
		}
		ls.LigatureSets[i] = ligs
	}
	return ls, nil
}

func parseLigature(b binarySegm) (Ligature, error) {
	if err := b.need(4, "ligature"); err != nil {
		return Ligature{}, err
	}
	lig := Ligature{Glyph: GlyphIndex(b.U16(0))}
	count := int(b.U16(2))
	if count == 0 {
		return lig, errFontFormat("ligature without components")
	}
	var err error
	if lig.Components, err = b.glyphs(4, count-1); err != nil {
		return lig, errFontFormat("ligature components truncated")
	}
	return lig, nil
}

func parseReverseChainSubst(b binarySegm) (*ReverseChainSubst, error) {
	if err := b.need(6, "ReverseChainSubst"); err != nil {
		return nil, err
	}
	rc := &ReverseChainSubst{}
	var err error
	if rc.Coverage, err = coverageAt(b, 2); err != nil {
		return nil, err
	}
	pos := 4
	count := int(b.U16(pos))
	if rc.BacktrackCoverages, err = coverageArray(b, pos+2, count); err != nil {
		return nil, err
	}
	pos += 2 + 2*count
	count = int(b.U16(pos))
	if rc.LookaheadCoverages, err = coverageArray(b, pos+2, count); err != nil {
		return nil, err
	}
	pos += 2 + 2*count
	if err := b.need(pos+2, "ReverseChainSubst substitutes"); err != nil {
		return nil, err
	}
	if rc.Substitutes, err = b.glyphs(pos+2, int(b.U16(pos))); err != nil {
		return nil, errFontFormat("ReverseChainSubst substitutes truncated")
	}
	return rc, nil
}
