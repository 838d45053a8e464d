package ot

import (
	"math"
	"testing"

	"github.com/npillmayer/fontdiff/internal/fonttest"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestAxisNormalization(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.opentype")
	defer teardown()
	//
	wght := VariationAxis{Tag: T("wght"), Min: 100, Default: 400, Max: 900}
	cases := []struct {
		user, norm float64
	}{
		{400, 0}, {100, -1}, {900, 1}, {250, -0.5}, {650, 0.5}, {1000, 1}, {50, -1},
	}
	for _, c := range cases {
		if n := wght.Normalize(c.user); n != c.norm {
			t.Errorf("expected wght=%g to normalize to %g, have %g", c.user, c.norm, n)
		}
	}
	if u := wght.Denormalize(0.5); u != 650 {
		t.Errorf("expected 0.5 to denormalize to 650, have %g", u)
	}
	fvar := &FVar{Axes: []VariationAxis{wght, {Tag: T("wdth"), Min: 75, Default: 100, Max: 125}}}
	loc := fvar.DenormalizeLocation([]float64{0, -1})
	if s := LocationString(loc); s != "wdth=75" {
		t.Errorf("expected location 'wdth=75', have %q", s)
	}
	loc = fvar.DenormalizeLocation([]float64{1, 0.5})
	if s := LocationString(loc); s != "wdth=112.5,wght=900" {
		t.Errorf("expected location sorted by tag, have %q", s)
	}
}

func TestAVarMapping(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.opentype")
	defer teardown()
	//
	avar := &AVar{SegmentMaps: [][]AxisValueMap{
		{{-1, -1}, {0, 0}, {0.5, 0.8}, {1, 1}},
	}}
	if v := avar.Map(0, 0.25); math.Abs(v-0.4) > 1e-9 {
		t.Errorf("expected 0.25 to map to 0.4, have %g", v)
	}
	if v := avar.Map(0, 0.75); math.Abs(v-0.9) > 1e-9 {
		t.Errorf("expected 0.75 to map to 0.9, have %g", v)
	}
	if v := avar.Map(1, 0.3); v != 0.3 {
		t.Errorf("expected axis without segment map to be unchanged, have %g", v)
	}
}

func TestRegionScalar(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.opentype")
	defer teardown()
	//
	region := VariationRegion{{Start: 0, Peak: 1, End: 1}}
	if s := region.Scalar([]float64{0.5}); s != 0.5 {
		t.Errorf("expected scalar 0.5, have %g", s)
	}
	if s := region.Scalar([]float64{-0.5}); s != 0 {
		t.Errorf("expected scalar 0 outside of region, have %g", s)
	}
	ivs := &ItemVariationStore{
		Regions: []VariationRegion{region, {{Start: -1, Peak: -1, End: 0}}},
		Data:    []ItemVariationData{{RegionIndices: []uint16{0, 1}, Deltas: [][]int32{{10, 0}, {20, -30}}}},
	}
	if d := ivs.Delta(0, 1, []float64{1}); d != 20 {
		t.Errorf("expected delta 20 at peak, have %g", d)
	}
	if rd := ivs.RegionDeltas(0, 0); len(rd) != 1 || rd[0].Region != 0 || rd[0].Delta != 10 {
		t.Errorf("expected a single non-zero region delta, have %v", rd)
	}
}

func TestDeltaSetIndexMap(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.opentype")
	defer teardown()
	//
	// format 0, entry format: 2 byte entries, 4 inner bits
	b := make([]byte, 4+3*2)
	b[0], b[1] = 0, 0x13
	fonttest.PutU16(b, 2, 3)
	fonttest.PutU16(b, 4, 0x0012) // outer 1, inner 2
	fonttest.PutU16(b, 6, 0x0005) // outer 0, inner 5
	fonttest.PutU16(b, 8, 0x0030) // outer 3, inner 0
	m, err := parseDeltaSetIndexMap(b)
	if err != nil {
		t.Fatal(err)
	}
	if o, i := m.Index(0); o != 1 || i != 2 {
		t.Errorf("expected (1,2), have (%d,%d)", o, i)
	}
	if o, i := m.Index(7); o != 3 || i != 0 {
		t.Errorf("expected items beyond the map to use the last entry, have (%d,%d)", o, i)
	}
	var none *DeltaSetIndexMap
	if o, i := none.Index(9); o != 0 || i != 9 {
		t.Errorf("expected implicit mapping without map, have (%d,%d)", o, i)
	}
}
