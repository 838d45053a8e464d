package ot

import (
	"testing"

	"github.com/npillmayer/fontdiff/internal/fonttest"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func layoutFont(t *testing.T, tag string, lookups ...fonttest.Lookup) *Font {
	t.Helper()
	names := []string{".notdef", "A", "V", "T", "o", "f", "i", "f_i"}
	b := fonttest.Basic(names, map[rune]uint16{'A': 1, 'V': 2, 'T': 3, 'o': 4, 'f': 5, 'i': 6}).
		Table(tag, fonttest.Layout("kern", lookups...)).
		Bytes()
	otf, err := Parse(b)
	if err != nil {
		t.Fatal(err)
	}
	return otf
}

func TestParseGPosPairs(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.opentype")
	defer teardown()
	//
	otf := layoutFont(t, "GPOS",
		fonttest.Lookup{Type: 2, Subtables: [][]byte{
			fonttest.PairPosFmt1(fonttest.Kern{Left: 1, Right: 2, Value: -80}, fonttest.Kern{Left: 1, Right: 3, Value: -60}),
		}},
		fonttest.Lookup{Type: 2, Subtables: [][]byte{
			fonttest.PairPosFmt2([]uint16{1, 3},
				map[uint16]uint16{3: 1},
				map[uint16]uint16{4: 1},
				[][]int16{{0, -10}, {0, -40}}),
		}},
	)
	gpos, err := otf.GPos()
	if err != nil {
		t.Fatal(err)
	}
	if len(gpos.Scripts) != 1 || gpos.Scripts[0].Tag != DFLT {
		t.Fatalf("expected a single DFLT script, have %v", gpos.Scripts)
	}
	if ls := gpos.Scripts[0].DefaultLangSys; ls == nil || ls.RequiredFeatureIndex != NoRequiredFeature {
		t.Errorf("expected default language system without required feature")
	}
	if len(gpos.Features) != 1 || gpos.Features[0].Tag != T("kern") || len(gpos.Features[0].LookupIndices) != 2 {
		t.Errorf("expected feature 'kern' with 2 lookups, have %v", gpos.Features)
	}
	if len(gpos.Lookups) != 2 {
		t.Fatalf("expected 2 lookups, have %d", len(gpos.Lookups))
	}
	t.Run("format 1", func(t *testing.T) {
		pp, ok := gpos.Lookups[0].Subtables[0].(*PairPos)
		if !ok || pp.Format != 1 {
			t.Fatalf("expected pair positioning format 1, have %T", gpos.Lookups[0].Subtables[0])
		}
		inx, ok := pp.Coverage.Index(1)
		if !ok {
			t.Fatalf("expected glyph 1 to be covered")
		}
		pairs := pp.PairSets[inx]
		if len(pairs) != 2 || pairs[0].SecondGlyph != 2 || pairs[0].Value1.XAdvance != -80 {
			t.Errorf("expected A/V = -80, have %v", pairs)
		}
		if !pairs[0].Value2.IsEmpty() {
			t.Errorf("expected empty second value record")
		}
	})
	t.Run("format 2", func(t *testing.T) {
		pp, ok := gpos.Lookups[1].Subtables[0].(*PairPos)
		if !ok || pp.Format != 2 {
			t.Fatalf("expected pair positioning format 2, have %T", gpos.Lookups[1].Subtables[0])
		}
		if pp.Class1Count != 2 || pp.Class2Count != 2 {
			t.Errorf("expected 2x2 classes, have %dx%d", pp.Class1Count, pp.Class2Count)
		}
		if c := pp.ClassDef1.Class(3); c != 1 {
			t.Errorf("expected T in left class 1, is in %d", c)
		}
		if c := pp.ClassDef1.Class(1); c != 0 {
			t.Errorf("expected A in left class 0, is in %d", c)
		}
		if v := pp.ClassRecords[1][1].Value1.XAdvance; v != -40 {
			t.Errorf("expected T/o = -40, have %d", v)
		}
	})
}

func TestParseGSub(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.opentype")
	defer teardown()
	//
	otf := layoutFont(t, "GSUB",
		fonttest.Lookup{Type: 4, Subtables: [][]byte{fonttest.LigatureSubst(5, []uint16{6}, 7)}},
		fonttest.Lookup{Type: 1, Subtables: [][]byte{fonttest.SingleSubstFmt2(map[uint16]uint16{1: 3})}},
		fonttest.Lookup{Type: 6, Subtables: [][]byte{fonttest.ChainedContextFmt3([]uint16{2}, []uint16{1}, nil, 1)}},
	)
	gsub, err := otf.GSub()
	if err != nil {
		t.Fatal(err)
	}
	if len(gsub.Lookups) != 3 {
		t.Fatalf("expected 3 lookups, have %d", len(gsub.Lookups))
	}
	ls, ok := gsub.Lookups[0].Subtables[0].(*LigatureSubst)
	if !ok {
		t.Fatalf("expected ligature substitution, have %T", gsub.Lookups[0].Subtables[0])
	}
	if lig := ls.LigatureSets[0][0]; lig.Glyph != 7 || len(lig.Components) != 1 || lig.Components[0] != 6 {
		t.Errorf("expected f i -> f_i, have %v", lig)
	}
	ss := gsub.Lookups[1].Subtables[0].(*SingleSubst)
	if g, ok := ss.Substitute(0, 1); !ok || g != 3 {
		t.Errorf("expected A -> T, have %d", g)
	}
	csc, ok := gsub.Lookups[2].Subtables[0].(*ChainedSequenceContext)
	if !ok || csc.Format != 3 {
		t.Fatalf("expected chained context format 3, have %T", gsub.Lookups[2].Subtables[0])
	}
	if len(csc.BacktrackCoverages) != 1 || len(csc.InputCoverages) != 1 || len(csc.LookaheadCoverages) != 0 {
		t.Errorf("expected 1/1/0 coverages, have %d/%d/%d", len(csc.BacktrackCoverages),
			len(csc.InputCoverages), len(csc.LookaheadCoverages))
	}
	if len(csc.Lookups) != 1 || csc.Lookups[0].LookupIndex != 1 {
		t.Errorf("expected nested lookup 1, have %v", csc.Lookups)
	}
}

func TestBrokenSubtable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.opentype")
	defer teardown()
	//
	broken := fonttest.PairPosFmt2([]uint16{1}, map[uint16]uint16{1: 1}, map[uint16]uint16{2: 1}, [][]int16{{0, 1}, {0, 2}})
	fonttest.PutU16(broken, 12, 50) // class1Count exceeding the subtable
	otf := layoutFont(t, "GPOS",
		fonttest.Lookup{Type: 2, Subtables: [][]byte{broken}},
		fonttest.Lookup{Type: 2, Subtables: [][]byte{fonttest.PairPosFmt1(fonttest.Kern{Left: 1, Right: 2, Value: 5})}},
	)
	gpos, err := otf.GPos()
	if err != nil {
		t.Fatalf("expected broken subtable not to fail the table, have %v", err)
	}
	if _, ok := gpos.Lookups[0].Subtables[0].(*BrokenSubtable); !ok {
		t.Errorf("expected broken subtable, have %T", gpos.Lookups[0].Subtables[0])
	}
	if _, ok := gpos.Lookups[1].Subtables[0].(*PairPos); !ok {
		t.Errorf("expected intact second lookup, have %T", gpos.Lookups[1].Subtables[0])
	}
	errs := otf.Errors()
	if len(errs) != 1 || errs[0].Severity != SeverityMinor {
		t.Errorf("expected one minor error, have %v", errs)
	}
}

func TestClassDefAndCoverage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.opentype")
	defer teardown()
	//
	cd, err := parseClassDef(fonttest.ClassDefFmt2(map[uint16]uint16{7: 2, 3: 2, 5: 1}))
	if err != nil {
		t.Fatal(err)
	}
	if glyphs := cd.Glyphs(2); len(glyphs) != 2 || glyphs[0] != 3 || glyphs[1] != 7 {
		t.Errorf("expected class 2 = [3 7], have %v", glyphs)
	}
	if cd.MaxClass() != 2 {
		t.Errorf("expected max class 2, have %d", cd.MaxClass())
	}
	var nilClassDef *ClassDef
	if nilClassDef.Class(5) != 0 {
		t.Errorf("expected nil class definition to assign class 0")
	}
	cov, err := parseCoverage(fonttest.CoverageFmt1(4, 9, 12))
	if err != nil {
		t.Fatal(err)
	}
	if inx, ok := cov.Index(12); !ok || inx != 2 {
		t.Errorf("expected glyph 12 at coverage index 2, have %d", inx)
	}
	if _, ok := cov.Index(5); ok {
		t.Errorf("expected glyph 5 not to be covered")
	}
}
