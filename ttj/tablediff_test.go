package ttj

import (
	"testing"

	"github.com/npillmayer/fontdiff/internal/fonttest"
	"github.com/npillmayer/fontdiff/ot"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

var testNames = []string{".notdef", "A", "V", "T", "o", "f", "i", "f_i"}

var testCMap = map[rune]uint16{'A': 1, 'V': 2, 'T': 3, 'o': 4, 'f': 5, 'i': 6}

func testFont(t *testing.T, names []string, tables map[string][]byte) *ot.Font {
	t.Helper()
	f := fonttest.Basic(names, testCMap)
	for tag, data := range tables {
		f.Table(tag, data)
	}
	otf, err := ot.Parse(f.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	return otf
}

func classKerning(toKern int16) []byte {
	return fonttest.Layout("kern", fonttest.Lookup{Type: 2, Subtables: [][]byte{
		fonttest.PairPosFmt2([]uint16{1, 3},
			map[uint16]uint16{3: 1},
			map[uint16]uint16{4: 1},
			[][]int16{{0, -10}, {0, toKern}}),
	}})
}

func TestFontToJSON(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontdiff.ttj")
	defer teardown()
	//
	otf := testFont(t, testNames, map[string][]byte{
		"GPOS": classKerning(-40),
		"GSUB": fonttest.Layout("liga",
			fonttest.Lookup{Type: 4, Subtables: [][]byte{fonttest.LigatureSubst(5, []uint16{6}, 7)}},
			fonttest.Lookup{Type: 1, Subtables: [][]byte{fonttest.SingleSubstFmt2(map[uint16]uint16{1: 3})}},
			fonttest.Lookup{Type: 6, Subtables: [][]byte{fonttest.ChainedContextFmt3([]uint16{2}, []uint16{1}, nil, 1)}},
		),
	})
	doc := FontToJSON(otf, nil)
	for _, tag := range []string{"head", "hhea", "maxp", "post", "name", "cmap", "hmtx", "GDEF", "GPOS", "GSUB"} {
		if !doc.Has(tag) {
			t.Errorf("expected table %s in serialization", tag)
		}
	}
	if v, ok := doc.Lookup("cmap", "U+0041"); !ok || v.String() != `"A"` {
		t.Errorf("expected cmap U+0041 -> A, have %v", v)
	}
	if v, ok := doc.Lookup("hmtx", "f_i"); !ok || v.String() != `{"width":500,"lsb":50}` {
		t.Errorf("expected metrics of f_i, have %v", v)
	}
	if v, ok := doc.Lookup("GSUB", "feature_list", "liga"); !ok || v.String() != `[0,1,2]` {
		t.Errorf("expected feature liga with 3 lookups, have %v", v)
	}
	if v, ok := doc.Lookup("GSUB", "script_list", "DFLT/dflt"); !ok || !v.Has("lookups") {
		t.Errorf("expected default language system of DFLT, have %v", v)
	}
	t.Run("ligature", func(t *testing.T) {
		lig := lookupSubtable(t, doc, "GSUB", "0")
		if v, ok := lig.Get("f i"); !ok || v.String() != `"f_i"` {
			t.Errorf("expected ligature f i -> f_i, have %s", lig)
		}
	})
	t.Run("single", func(t *testing.T) {
		single := lookupSubtable(t, doc, "GSUB", "1")
		if single.String() != `{"type":"single","A":"T"}` {
			t.Errorf("unexpected single substitution %s", single)
		}
	})
	t.Run("chained context", func(t *testing.T) {
		chain := lookupSubtable(t, doc, "GSUB", "2")
		if chain.String() != `{"type":"chained_sequence_context","rules":["V A' lookup lookup_1"]}` {
			t.Errorf("unexpected chained context %s", chain)
		}
	})
	t.Run("class kerning", func(t *testing.T) {
		pair := lookupSubtable(t, doc, "GPOS", "0")
		if v, ok := pair.Lookup("classes", "@CLASS_L_0"); !ok || v.String() != `["A"]` {
			t.Errorf("expected left class 0 to hold the uncovered glyphs, have %v", v)
		}
		if v, ok := pair.Lookup("kerns", "@CLASS_L_1", "@CLASS_R_1"); !ok || v.String() != `{"x":-40}` {
			t.Errorf("expected T/o kerning of -40, have %v", v)
		}
	})
}

func lookupSubtable(t *testing.T, doc Document, table, lookup string) Document {
	t.Helper()
	subtables, ok := doc.Lookup(table, "lookup_list", lookup)
	if !ok || subtables.Len() != 1 {
		t.Fatalf("expected a single subtable for %s lookup %s, have %v", table, lookup, subtables)
	}
	return subtables.Index(0)
}

func TestTableDiffIdentical(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontdiff.ttj")
	defer teardown()
	//
	a := testFont(t, testNames, map[string][]byte{"GPOS": classKerning(-40)})
	b := testFont(t, testNames, map[string][]byte{"GPOS": classKerning(-40)})
	if d := TableDiff(a, b, DefaultMaxChanges, false); !d.IsNull() {
		t.Errorf("expected no differences, have %s", d.Indent())
	}
	if d := KernDiff(a, b, DefaultMaxChanges, false); !d.IsNull() {
		t.Errorf("expected no kerning differences, have %s", d.Indent())
	}
}

func TestTableDiffRenamedGlyphs(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontdiff.ttj")
	defer teardown()
	//
	renamed := []string{".notdef", "g1", "g2", "g3", "g4", "g5", "g6", "g7"}
	a := testFont(t, testNames, nil)
	b := testFont(t, renamed, nil)
	if d := TableDiff(a, b, DefaultMaxChanges, false); !d.IsNull() {
		t.Errorf("expected glyphs to be matched by ID, have %s", d.Indent())
	}
	d := TableDiff(a, b, DefaultMaxChanges, true)
	if v, ok := d.Lookup("cmap", "U+0041"); !ok || v.String() != `["A","g1"]` {
		t.Errorf("expected cmap difference for U+0041, have %s", d.Indent())
	}
}

func TestKernDiff(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontdiff.ttj")
	defer teardown()
	//
	a := testFont(t, testNames, map[string][]byte{"GPOS": classKerning(-40)})
	b := testFont(t, testNames, map[string][]byte{"GPOS": classKerning(-30)})
	d := KernDiff(a, b, DefaultMaxChanges, false)
	if d.String() != `{"T/o":{"x":[-40,-30]}}` {
		t.Errorf("expected a single kerning difference, have %s", d)
	}
	d = TableDiff(a, b, DefaultMaxChanges, false)
	v, ok := d.Lookup("GPOS", "lookup_list", "0", "0", "kerns", "@CLASS_L_1", "@CLASS_R_1", "x")
	if !ok || v.String() != `[-40,-30]` {
		t.Errorf("expected class kerning difference, have %s", d.Indent())
	}
}
