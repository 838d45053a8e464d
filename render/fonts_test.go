package render

import (
	"testing"

	td "github.com/go-text/typesetting-utils/opentype"
	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/language"
	"github.com/npillmayer/fontdiff/dfont"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// testdataFont loads a font of the go-text test font collection.
func testdataFont(t *testing.T, name string) *dfont.DFont {
	data, err := td.Files.ReadFile(name)
	if err != nil {
		t.Skipf("test font %s not available: %v", name, err)
	}
	df, err := dfont.New(data)
	if err != nil {
		t.Fatalf("cannot load font %s: %v", name, err)
	}
	return df
}

func TestRenderArabic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontdiff.render")
	defer teardown()
	//
	df := testdataFont(t, "common/NotoSansArabic.ttf")
	r, err := NewRenderer(df, DefaultWordsFontSize, di.DirectionRTL, language.Arabic)
	if err != nil {
		t.Fatal(err)
	}
	buffer, img, ok := r.RenderString("سلام")
	if !ok {
		t.Fatalf("expected Arabic word to shape")
	}
	if buffer == "" || img.Bounds().Empty() {
		t.Errorf("expected a rendering, have buffer %q and bounds %v", buffer, img.Bounds())
	}
	wl, ok := GetWordlist("Arabic")
	if !ok {
		t.Fatalf("expected built-in Arabic word list")
	}
	if wl.Direction() != di.DirectionRTL {
		t.Errorf("expected Arabic word list to be right-to-left")
	}
	words := wl.Words[:min(len(wl.Words), 50)]
	opts := DefaultOptions()
	opts.Direction, opts.Script = wl.Direction(), wl.ScriptTag()
	diffs, err := DiffManyWords(df, df, words, opts)
	if err != nil {
		t.Fatal(err)
	}
	if len(diffs) != 0 {
		t.Errorf("expected font to render identical to itself, have %d differences", len(diffs))
	}
}

func TestRenderAtLocations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontdiff.render")
	defer teardown()
	//
	df := testdataFont(t, "common/Commissioner-VF.ttf")
	if !df.IsVariable() {
		t.Fatalf("expected Commissioner to be a variable font")
	}
	if _, ok := df.AxisInfo()["wght"]; !ok {
		t.Fatalf("expected Commissioner to have a weight axis")
	}
	thin, black := *df, *df
	if err := thin.SetLocation("wght=100"); err != nil {
		t.Fatal(err)
	}
	if err := black.SetLocation("wght=900"); err != nil {
		t.Fatal(err)
	}
	opts := DefaultOptions()
	opts.Jobs = 1
	diffs, err := DiffManyWords(&thin, &black, []string{"Hamburg"}, opts)
	if err != nil {
		t.Fatal(err)
	}
	if len(diffs) != 1 {
		t.Fatalf("expected thin and black weight to render differently, have %d differences", len(diffs))
	}
	if diffs[0].DifferingPixels <= DefaultWordsThreshold {
		t.Errorf("expected difference above threshold, have %d pixels", diffs[0].DifferingPixels)
	}
	diffs, err = DiffManyWords(&black, &black, []string{"Hamburg"}, opts)
	if err != nil {
		t.Fatal(err)
	}
	if len(diffs) != 0 {
		t.Errorf("expected no differences at identical locations")
	}
}
