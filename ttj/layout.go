package ttj

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/npillmayer/fontdiff/ot"
)

// serializeLayout serializes table GSUB or GPOS into a script list, a feature
// list and a lookup list. The lookup list is a map keyed by lookup index, each
// lookup being an array of its serialized subtables.
func serializeLayout(table *ot.LayoutTable, ctx *SerializationContext) Document {
	doc := NewMap()
	scripts := NewMap()
	for _, script := range table.Scripts {
		if script.DefaultLangSys != nil {
			scripts.Set(script.Tag.String()+"/dflt", serializeLangSys(*script.DefaultLangSys))
		}
		for _, ls := range script.LangSys {
			scripts.Set(script.Tag.String()+"/"+ls.Tag.String(), serializeLangSys(ls.LangSys))
		}
	}
	doc.Set("script_list", scripts)
	features := NewMap()
	for _, feature := range table.Features {
		lookups := NewArray()
		for _, inx := range feature.LookupIndices {
			lookups.Append(Int(inx))
		}
		features.Set(feature.Tag.String(), lookups)
	}
	doc.Set("feature_list", features)
	lookups := NewMap()
	for i, lookup := range table.Lookups {
		subtables := NewArray()
		for _, st := range lookup.Subtables {
			subtables.Append(serializeSubtable(st, ctx))
		}
		lookups.Set(strconv.Itoa(i), subtables)
	}
	doc.Set("lookup_list", lookups)
	return doc
}

func serializeLangSys(ls ot.LangSys) Document {
	doc := NewMap()
	if ls.RequiredFeatureIndex != ot.NoRequiredFeature {
		doc.Set("required_feature_index", Int(ls.RequiredFeatureIndex))
	}
	features := NewArray()
	for _, inx := range ls.FeatureIndices {
		features.Append(Int(inx))
	}
	doc.Set("lookups", features)
	return doc
}

// serializeSubtable dispatches on the closed set of lookup subtable types.
// Subtables which could not be decoded serialize as null.
func serializeSubtable(st ot.Subtable, ctx *SerializationContext) Document {
	switch st := st.(type) {
	case *ot.SinglePos:
		return serializeSinglePos(st, ctx)
	case *ot.PairPos:
		return serializePairPos(st, ctx)
	case *ot.CursivePos:
		return serializeCursivePos(st, ctx)
	case *ot.MarkBasePos:
		return serializeMarkBasePos(st, ctx)
	case *ot.MarkLigPos:
		return serializeMarkLigPos(st, ctx)
	case *ot.MarkMarkPos:
		return serializeMarkMarkPos(st, ctx)
	case *ot.SingleSubst:
		return serializeSingleSubst(st, ctx)
	case *ot.MultipleSubst:
		return serializeSequences("multiple", st.Coverage, st.Sequences, ctx)
	case *ot.AlternateSubst:
		return serializeSequences("alternate", st.Coverage, st.Alternates, ctx)
	case *ot.LigatureSubst:
		return serializeLigatureSubst(st, ctx)
	case *ot.ReverseChainSubst:
		return serializeReverseChainSubst(st, ctx)
	case *ot.SequenceContext:
		return serializeRules("sequence_context", sequenceContextRules(st), ctx)
	case *ot.ChainedSequenceContext:
		return serializeRules("chained_sequence_context", chainedContextRules(st), ctx)
	case *ot.BrokenSubtable:
		tracer().Debugf("broken subtable: %v", st.Err)
	}
	return Null()
}

// --- Contextual rules ------------------------------------------------------

// slot is a position of a contextual rule, matching a set of glyphs.
type slot struct {
	glyphs  []ot.GlyphIndex
	lookups []uint16
	class0  bool
}

func (s slot) format(names *NameMap, marked bool) string {
	var b strings.Builder
	switch {
	case s.class0:
		b.WriteString("@Any")
	case len(s.glyphs) == 1:
		b.WriteString(names.Get(s.glyphs[0]))
	default:
		b.WriteString("[" + strings.Join(names.Names(s.glyphs), " ") + "]")
	}
	if !marked {
		return b.String()
	}
	b.WriteByte('\'')
	for _, l := range s.lookups {
		fmt.Fprintf(&b, " lookup lookup_%d", l)
	}
	return b.String()
}

// chainRule is a contextual rule in logical order: the backtrack sequence
// runs towards the input sequence.
type chainRule struct {
	backtrack, input, lookahead []slot
}

// format renders a rule in the style of feature files, marking input slots
// with the lookups they trigger.
func (r chainRule) format(names *NameMap) string {
	parts := make([]string, 0, len(r.backtrack)+len(r.input)+len(r.lookahead))
	for _, s := range r.backtrack {
		parts = append(parts, s.format(names, false))
	}
	for _, s := range r.input {
		parts = append(parts, s.format(names, true))
	}
	for _, s := range r.lookahead {
		parts = append(parts, s.format(names, false))
	}
	return strings.Join(parts, " ")
}

func (r *chainRule) applyLookups(records []ot.SequenceLookup) {
	for _, rec := range records {
		if int(rec.SequenceIndex) < len(r.input) {
			s := &r.input[rec.SequenceIndex]
			s.lookups = append(s.lookups, rec.LookupIndex)
		}
	}
}

func glyphSlot(g ot.GlyphIndex) slot {
	return slot{glyphs: []ot.GlyphIndex{g}}
}

func glyphSlots(glyphs []uint16) []slot {
	slots := make([]slot, len(glyphs))
	for i, g := range glyphs {
		slots[i] = glyphSlot(ot.GlyphIndex(g))
	}
	return slots
}

func classSlot(cd *ot.ClassDef, class uint16) slot {
	if class == 0 {
		return slot{class0: true}
	}
	return slot{glyphs: cd.Glyphs(class)}
}

func classSlots(cd *ot.ClassDef, classes []uint16) []slot {
	slots := make([]slot, len(classes))
	for i, c := range classes {
		slots[i] = classSlot(cd, c)
	}
	return slots
}

func coverageSlots(coverages []ot.Coverage) []slot {
	slots := make([]slot, len(coverages))
	for i, c := range coverages {
		slots[i] = slot{glyphs: c.Glyphs}
	}
	return slots
}

func reversed(slots []slot) []slot {
	slices.Reverse(slots)
	return slots
}

func sequenceContextRules(sc *ot.SequenceContext) []chainRule {
	var rules []chainRule
	switch sc.Format {
	case 1:
		for i, ruleSet := range sc.RuleSets {
			if i >= len(sc.Coverage.Glyphs) {
				break
			}
			for _, sr := range ruleSet {
				r := chainRule{input: append([]slot{glyphSlot(sc.Coverage.Glyphs[i])}, glyphSlots(sr.Input)...)}
				r.applyLookups(sr.Lookups)
				rules = append(rules, r)
			}
		}
	case 2:
		for class, ruleSet := range sc.RuleSets {
			for _, sr := range ruleSet {
				r := chainRule{input: append([]slot{classSlot(sc.ClassDef, uint16(class))}, classSlots(sc.ClassDef, sr.Input)...)}
				r.applyLookups(sr.Lookups)
				rules = append(rules, r)
			}
		}
	case 3:
		r := chainRule{input: coverageSlots(sc.InputCoverages)}
		r.applyLookups(sc.Lookups)
		rules = append(rules, r)
	}
	return rules
}

// chainedContextRules reconstructs the rules of a chained context subtable.
// Backtrack sequences are stored in reverse order in fonts and are turned
// into logical order here.
func chainedContextRules(csc *ot.ChainedSequenceContext) []chainRule {
	var rules []chainRule
	switch csc.Format {
	case 1:
		for i, ruleSet := range csc.RuleSets {
			if i >= len(csc.Coverage.Glyphs) {
				break
			}
			for _, sr := range ruleSet {
				r := chainRule{
					backtrack: reversed(glyphSlots(sr.Backtrack)),
					input:     append([]slot{glyphSlot(csc.Coverage.Glyphs[i])}, glyphSlots(sr.Input)...),
					lookahead: glyphSlots(sr.Lookahead),
				}
				r.applyLookups(sr.Lookups)
				rules = append(rules, r)
			}
		}
	case 2:
		for class, ruleSet := range csc.RuleSets {
			for _, sr := range ruleSet {
				first := classSlot(csc.InputClassDef, uint16(class))
				r := chainRule{
					backtrack: reversed(classSlots(csc.BacktrackClassDef, sr.Backtrack)),
					input:     append([]slot{first}, classSlots(csc.InputClassDef, sr.Input)...),
					lookahead: classSlots(csc.LookaheadClassDef, sr.Lookahead),
				}
				r.applyLookups(sr.Lookups)
				rules = append(rules, r)
			}
		}
	case 3:
		r := chainRule{
			backtrack: reversed(coverageSlots(csc.BacktrackCoverages)),
			input:     coverageSlots(csc.InputCoverages),
			lookahead: coverageSlots(csc.LookaheadCoverages),
		}
		r.applyLookups(csc.Lookups)
		rules = append(rules, r)
	}
	return rules
}

func serializeRules(typ string, rules []chainRule, ctx *SerializationContext) Document {
	doc := NewMap()
	doc.Set("type", String(typ))
	strs := make([]string, len(rules))
	for i, r := range rules {
		strs[i] = r.format(ctx.Names)
	}
	doc.Set("rules", StringArray(strs))
	return doc
}
