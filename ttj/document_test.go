package ttj

import (
	"encoding/json"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestDocumentKeepsKeyOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontdiff.ttj")
	defer teardown()
	//
	input := `{"zeta":1,"alpha":[1,2.5,"x",null,true],"mid":{"b":false,"a":-3}}`
	var doc Document
	if err := json.Unmarshal([]byte(input), &doc); err != nil {
		t.Fatal(err)
	}
	if doc.Kind() != KindMap {
		t.Fatalf("expected map, have %s", doc.Kind())
	}
	if out := doc.String(); out != input {
		t.Errorf("expected JSON output to keep key order, have %s", out)
	}
	keys := doc.Keys()
	if len(keys) != 3 || keys[0] != "zeta" || keys[2] != "mid" {
		t.Errorf("unexpected keys %v", keys)
	}
	doc.Set("zeta", String("replaced"))
	if doc.Keys()[0] != "zeta" {
		t.Errorf("expected replaced key to keep its position")
	}
	if v, ok := doc.Lookup("mid", "a"); !ok || v.String() != "-3" {
		t.Errorf("expected mid/a = -3, have %v", v)
	}
}

func TestDocumentEqual(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontdiff.ttj")
	defer teardown()
	//
	a := NewMap()
	a.Set("x", Int(1))
	a.Set("y", NewArray(String("a"), Null()))
	b := NewMap()
	b.Set("y", NewArray(String("a"), Null()))
	b.Set("x", Number(1))
	if !a.Equal(b) {
		t.Errorf("expected maps to be equal regardless of key order")
	}
	c := a.Clone()
	c.Set("x", Int(2))
	if a.Equal(c) {
		t.Errorf("expected modified clone to differ")
	}
	if n, _ := a.Get("x"); n.String() != "1" {
		t.Errorf("expected clone to be independent of original, have x = %v", n)
	}
	if NewArray().Equal(NewMap()) {
		t.Errorf("expected empty array and empty map to differ")
	}
}

func TestDocumentRejectsTrailingData(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontdiff.ttj")
	defer teardown()
	//
	var doc Document
	if err := doc.UnmarshalJSON([]byte(`[1] [2]`)); err == nil {
		t.Errorf("expected error for trailing data")
	}
}
