package ttj

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func parse(t *testing.T, s string) Document {
	t.Helper()
	var doc Document
	if err := json.Unmarshal([]byte(s), &doc); err != nil {
		t.Fatalf("cannot parse %q: %v", s, err)
	}
	return doc
}

func TestDiffIdentity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontdiff.ttj")
	defer teardown()
	//
	for _, s := range []string{`null`, `1`, `"a"`, `[1,[2,3]]`, `{"a":{"b":[1,null]}}`, `{}`, `[]`} {
		doc := parse(t, s)
		if d := Diff(doc, doc.Clone(), DefaultMaxChanges); !d.IsNull() {
			t.Errorf("expected no difference for %s, have %s", s, d)
		}
	}
}

func TestDiffLeaves(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontdiff.ttj")
	defer teardown()
	//
	tests := []struct {
		left, right, expected string
	}{
		{`1`, `2`, `[1,2]`},
		{`{}`, `[]`, `[{},[]]`},
		{`null`, `{"a":1}`, `[null,{"a":1}]`},
		{`{"a":1,"b":2}`, `{"a":1,"b":3}`, `{"b":[2,3]}`},
		{`{"a":1}`, `{"a":1,"c":true}`, `{"c":[null,true]}`},
		{`[1,2,3]`, `[1,5]`, `{"1":[2,5],"2":[3,null]}`},
		{`{"a":{"b":"x"}}`, `{"a":{"b":"y"}}`, `{"a":{"b":["x","y"]}}`},
	}
	for _, test := range tests {
		t.Run(test.left+" vs "+test.right, func(t *testing.T) {
			d := Diff(parse(t, test.left), parse(t, test.right), DefaultMaxChanges)
			if d.String() != test.expected {
				t.Errorf("expected %s, have %s", test.expected, d)
			}
		})
	}
}

func TestDiffSymmetry(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontdiff.ttj")
	defer teardown()
	//
	a := parse(t, `{"a":1,"b":[1,2],"c":"x"}`)
	b := parse(t, `{"a":2,"b":[1],"d":null}`)
	ab, ba := Diff(a, b, DefaultMaxChanges), Diff(b, a, DefaultMaxChanges)
	if ab.Len() != ba.Len() {
		t.Fatalf("expected same number of changes, have %s and %s", ab, ba)
	}
	for k, v := range ab.Entries() {
		w, ok := ba.Get(k)
		if !ok {
			t.Errorf("change %q missing in reverse diff", k)
			continue
		}
		if l, r, ok := IsPair(v); ok {
			if wl, wr, _ := IsPair(w); !l.Equal(wr) || !r.Equal(wl) {
				t.Errorf("expected swapped pair for %q, have %s and %s", k, v, w)
			}
		}
	}
}

func TestDiffMaxChanges(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontdiff.ttj")
	defer teardown()
	//
	const limit = 4
	left, right := NewMap(), NewMap()
	for i := range limit + 5 {
		left.Set(fmt.Sprintf("k%d", i), Int(i))
		right.Set(fmt.Sprintf("k%d", i), Int(i+1))
	}
	d := Diff(left, right, limit)
	msg, ok := IsErrorDocument(d)
	if !ok || msg != "9 changes, check manually" {
		t.Errorf("expected error document, have %s", d)
	}
	// the limit applies per level: the parent has a single change only
	outer := NewMap()
	outer.Set("inner", left)
	outer2 := NewMap()
	outer2.Set("inner", right)
	d = Diff(outer, outer2, limit)
	if inner, ok := d.Get("inner"); !ok || !inner.Equal(ErrorDocument("9 changes, check manually")) {
		t.Errorf("expected error document for inner map, have %s", d)
	}
	if d = Diff(left, right, limit+5); d.Len() != limit+5 {
		t.Errorf("expected %d changes within limit, have %d", limit+5, d.Len())
	}
}

func TestIsSomething(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontdiff.ttj")
	defer teardown()
	//
	for _, s := range []string{`null`, `false`, `0`, `""`, `[]`, `{}`} {
		if IsSomething(parse(t, s)) {
			t.Errorf("expected %s to be nothing", s)
		}
	}
	for _, s := range []string{`true`, `-1`, `"a"`, `[null]`, `{"a":null}`} {
		if !IsSomething(parse(t, s)) {
			t.Errorf("expected %s to be something", s)
		}
	}
}
