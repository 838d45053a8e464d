package ot

import "fmt"

// The contextual lookup types support specifying input glyph sequences that can be
// acted upon, as well as a list of actions to be taken on any glyph within the sequence.
// Actions are specified as references to separate nested lookups (an index into the
// LookupList). Three subtable formats are defined, which describe the input sequences
// in different ways.

// SequenceRule is a rule of a (non-chained) sequence context, formats 1 and 2.
// Input holds glyph IDs (format 1) or class values (format 2), starting with
// the second position of the input sequence.
type SequenceRule struct {
	Input   []uint16
	Lookups []SequenceLookup
}

// SequenceContext is a GSUB type 5 or GPOS type 7 subtable.
type SequenceContext struct {
	Format         uint16
	Coverage       Coverage         // formats 1 and 2
	ClassDef       *ClassDef        // format 2
	RuleSets       [][]SequenceRule // formats 1 and 2, by coverage index resp. class
	InputCoverages []Coverage       // format 3
	Lookups        []SequenceLookup // format 3
}

func (*SequenceContext) isSubtable() {}

// ChainedSequenceRule is a rule of a chained sequence context, formats 1 and 2.
// Input starts with the second position of the input sequence.
type ChainedSequenceRule struct {
	Backtrack []uint16
	Input     []uint16
	Lookahead []uint16
	Lookups   []SequenceLookup
}

// ChainedSequenceContext is a GSUB type 6 or GPOS type 8 subtable.
type ChainedSequenceContext struct {
	Format             uint16
	Coverage           Coverage // formats 1 and 2
	BacktrackClassDef  *ClassDef
	InputClassDef      *ClassDef
	LookaheadClassDef  *ClassDef
	RuleSets           [][]ChainedSequenceRule
	BacktrackCoverages []Coverage // format 3
	InputCoverages     []Coverage // format 3
	LookaheadCoverages []Coverage // format 3
	Lookups            []SequenceLookup
}

func (*ChainedSequenceContext) isSubtable() {}

func parseSequenceContext(b binarySegm) (*SequenceContext, error) {
	if err := b.need(6, "sequence context"); err != nil {
		return nil, err
	}
	sc := &SequenceContext{Format: b.U16(0)}
	var err error
	switch sc.Format {
	case 1, 2:
		if sc.Coverage, err = coverageAt(b, 2); err != nil {
			return nil, err
		}
		at := 4
		if sc.Format == 2 {
			if sc.ClassDef, err = classDefAt(b, 4); err != nil {
				return nil, err
			}
			at = 6
		}
		n := int(b.U16(at))
		offsets, err := b.uint16s(at+2, n)
		if err != nil {
			return nil, errFontFormat("sequence rule set offsets truncated")
		}
		sc.RuleSets = make([][]SequenceRule, n)
		for i, off := range offsets {
			rs, err := b.offsetFrom(uint32(off))
			if err != nil {
				return nil, err
			}
			if sc.RuleSets[i], err = parseRuleSet(rs, parseSequenceRule); err != nil {
				return nil, err
			}
		}
	case 3:
		glyphCount, lookupCount := int(b.U16(2)), int(b.U16(4))
		sc.InputCoverages, err = coverageArray(b, 6, glyphCount)
		if err != nil {
			return nil, err
		}
		if sc.Lookups, err = parseSequenceLookups(b, 6+2*glyphCount, lookupCount); err != nil {
			return nil, err
		}
	default:
		return nil, errFontFormat(fmt.Sprintf("unknown sequence context format %d", sc.Format))
	}
	return sc, nil
}

func parseSequenceRule(b binarySegm) (SequenceRule, error) {
	if err := b.need(4, "sequence rule"); err != nil {
		return SequenceRule{}, err
	}
	glyphCount, lookupCount := int(b.U16(0)), int(b.U16(2))
	if glyphCount == 0 {
		return SequenceRule{}, errFontFormat("sequence rule with empty input")
	}
	input, err := b.uint16s(4, glyphCount-1)
	if err != nil {
		return SequenceRule{}, errFontFormat("sequence rule input truncated")
	}
	lookups, err := parseSequenceLookups(b, 4+2*(glyphCount-1), lookupCount)
	return SequenceRule{Input: input, Lookups: lookups}, err
}

func parseChainedSequenceContext(b binarySegm) (*ChainedSequenceContext, error) {
	if err := b.need(6, "chained sequence context"); err != nil {
		return nil, err
	}
	csc := &ChainedSequenceContext{Format: b.U16(0)}
	var err error
	switch csc.Format {
	case 1, 2:
		if csc.Coverage, err = coverageAt(b, 2); err != nil {
			return nil, err
		}
		at := 4
		if csc.Format == 2 {
			if err := b.need(12, "chained sequence context format 2"); err != nil {
				return nil, err
			}
			if csc.BacktrackClassDef, err = classDefAt(b, 4); err != nil {
				return nil, err
			}
			if csc.InputClassDef, err = classDefAt(b, 6); err != nil {
				return nil, err
			}
			if csc.LookaheadClassDef, err = classDefAt(b, 8); err != nil {
				return nil, err
			}
			at = 10
		}
		n := int(b.U16(at))
		offsets, err := b.uint16s(at+2, n)
		if err != nil {
			return nil, errFontFormat("chained rule set offsets truncated")
		}
		csc.RuleSets = make([][]ChainedSequenceRule, n)
		for i, off := range offsets {
			rs, err := b.offsetFrom(uint32(off))
			if err != nil {
				return nil, err
			}
			if csc.RuleSets[i], err = parseRuleSet(rs, parseChainedSequenceRule); err != nil {
				return nil, err
			}
		}
	case 3:
		pos := 2
		count := int(b.U16(pos))
		if csc.BacktrackCoverages, err = coverageArray(b, pos+2, count); err != nil {
			return nil, err
		}
		pos += 2 + 2*count
		count = int(b.U16(pos))
		if csc.InputCoverages, err = coverageArray(b, pos+2, count); err != nil {
			return nil, err
		}
		pos += 2 + 2*count
		count = int(b.U16(pos))
		if csc.LookaheadCoverages, err = coverageArray(b, pos+2, count); err != nil {
			return nil, err
		}
		pos += 2 + 2*count
		if err := b.need(pos+2, "chained sequence context format 3"); err != nil {
			return nil, err
		}
		if csc.Lookups, err = parseSequenceLookups(b, pos+2, int(b.U16(pos))); err != nil {
			return nil, err
		}
	default:
		return nil, errFontFormat(fmt.Sprintf("unknown chained sequence context format %d", csc.Format))
	}
	return csc, nil
}

func parseChainedSequenceRule(b binarySegm) (ChainedSequenceRule, error) {
	var rule ChainedSequenceRule
	var err error
	pos := 0
	count := int(b.U16(pos))
	if rule.Backtrack, err = b.uint16s(pos+2, count); err != nil {
		return rule, errFontFormat("chained rule backtrack truncated")
	}
	pos += 2 + 2*count
	count = int(b.U16(pos))
	if count == 0 {
		return rule, errFontFormat("chained rule with empty input")
	}
	if rule.Input, err = b.uint16s(pos+2, count-1); err != nil {
		return rule, errFontFormat("chained rule input truncated")
	}
	pos += 2 + 2*(count-1)
	count = int(b.U16(pos))
	if rule.Lookahead, err = b.uint16s(pos+2, count); err != nil {
		return rule, errFontFormat("chained rule lookahead truncated")
	}
	pos += 2 + 2*count
	if err := b.need(pos+2, "chained rule"); err != nil {
		return rule, err
	}
	rule.Lookups, err = parseSequenceLookups(b, pos+2, int(b.U16(pos)))
	return rule, err
}

// parseRuleSet parses a rule set, i.e. a count followed by offsets to rules.
// A NULL rule set yields a nil slice.
func parseRuleSet[R any](b binarySegm, parseRule func(binarySegm) (R, error)) ([]R, error) {
	if b == nil {
		return nil, nil
	}
	n := int(b.U16(0))
	offsets, err := b.uint16s(2, n)
	if err != nil {
		return nil, errFontFormat("rule offsets truncated")
	}
	rules := make([]R, 0, n)
	for _, off := range offsets {
		rb, err := b.offsetFrom(uint32(off))
		if err != nil || rb == nil {
			return nil, errFontFormat("rule offset out of bounds")
		}
		rule, err := parseRule(rb)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

// coverageArray parses n coverage tables, given as 16-bit offsets starting at
// position at.
func coverageArray(b binarySegm, at, n int) ([]Coverage, error) {
	if _, err := b.view(at, 2*n); err != nil {
		return nil, errFontFormat("coverage offsets truncated")
	}
	covs := make([]Coverage, n)
	for i := range n {
		c, err := coverageAt(b, at+2*i)
		if err != nil {
			return nil, err
		}
		covs[i] = c
	}
	return covs, nil
}
