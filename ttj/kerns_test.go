package ttj

import (
	"testing"

	"github.com/npillmayer/fontdiff/internal/fonttest"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestJustKernsAddsUp(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontdiff.ttj")
	defer teardown()
	//
	otf := testFont(t, testNames, map[string][]byte{
		"GPOS": fonttest.Layout("kern",
			fonttest.Lookup{Type: 2, Subtables: [][]byte{
				fonttest.PairPosFmt1(fonttest.Kern{Left: 1, Right: 2, Value: 5}, fonttest.Kern{Left: 1, Right: 3, Value: 0}),
			}},
			fonttest.Lookup{Type: 2, Subtables: [][]byte{
				fonttest.PairPosFmt1(fonttest.Kern{Left: 1, Right: 2, Value: 5}),
			}},
		),
	})
	kerns := JustKerns(FontToJSON(otf, nil))
	if kerns.String() != `{"A/V":{"x":10}}` {
		t.Errorf("expected A/V kerning to add up to 10 and zero kerns to be skipped, have %s", kerns)
	}
}

func TestJustKernsExpandsClasses(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontdiff.ttj")
	defer teardown()
	//
	font := parse(t, `{"GPOS":{"lookup_list":{"0":[{
		"type":"pair",
		"classes":{"@CLASS_L_0":["A"],"@CLASS_L_1":["T","V"],"@CLASS_R_1":["o","a"]},
		"kerns":{
			"@CLASS_L_0":{"@All":{"x":0},"@CLASS_R_1":{"x":-10}},
			"@CLASS_L_1":{"@All":{"x":-5},"@CLASS_R_1":{"x":-40}}
		}}]}}}`)
	kerns := JustKerns(font)
	expected := `{"T/o":{"x":-40},"T/a":{"x":-40},"V/o":{"x":-40},"V/a":{"x":-40}}`
	if kerns.String() != expected {
		t.Errorf("expected %s, have %s", expected, kerns)
	}
}

func TestJustKernsMergesVariableValues(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontdiff.ttj")
	defer teardown()
	//
	font := parse(t, `{"GPOS":{"lookup_list":{
		"0":[{"type":"pair","A":{"V":{"x":{"default":5,"wght=900":3}}}}],
		"1":[{"type":"single","A":{"x":7}}],
		"2":[{"type":"pair","A":{"V":{"x":5,"y":2}}}]
	}}}`)
	kerns := JustKerns(font)
	expected := `{"A/V":{"x":{"default":10,"wght=900":8},"y":2}}`
	if kerns.String() != expected {
		t.Errorf("expected %s, have %s", expected, kerns)
	}
}

func TestAddVariable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontdiff.ttj")
	defer teardown()
	//
	for _, tc := range []struct{ a, b, sum string }{
		{`1`, `2`, `3`},
		{`{"default":5,"wght=900":3}`, `5`, `{"default":10,"wght=900":8}`},
		{`5`, `{"default":5,"wght=900":3}`, `{"default":10,"wght=900":8}`},
		{`{"default":5,"wght=900":3}`, `{"default":1,"wdth=75":4}`, `{"default":6,"wght=900":4,"wdth=75":9}`},
	} {
		if sum := addVariable(parse(t, tc.a), parse(t, tc.b)); sum.String() != tc.sum {
			t.Errorf("expected %s + %s = %s, have %s", tc.a, tc.b, tc.sum, sum)
		}
	}
}
