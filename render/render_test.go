package render

import (
	"image"
	"testing"

	"github.com/go-text/typesetting/di"
	"github.com/npillmayer/fontdiff/dfont"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

func goFont(t *testing.T, data []byte) *dfont.DFont {
	df, err := dfont.New(data)
	if err != nil {
		t.Fatalf("cannot load font: %v", err)
	}
	return df
}

func TestBoundingBox(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontdiff.render")
	defer teardown()
	//
	path := Path{
		{Op: MoveTo, Points: [3]Point{{X: 2, Y: 1}}},
		{Op: QuadTo, Points: [3]Point{{X: 5, Y: 12}, {X: 8, Y: 1}}},
		{Op: LineTo, Points: [3]Point{{X: 5, Y: -3}}},
		{Op: Close},
	}
	lo, hi := path.BoundingBox()
	if lo != (Point{X: 0, Y: -3}) || hi != (Point{X: 8, Y: 12}) {
		t.Errorf("expected box (0,-3)-(8,12) including control point and origin, have %v-%v", lo, hi)
	}
	lo, hi = Path{}.BoundingBox()
	if lo != (Point{}) || hi != (Point{}) {
		t.Errorf("expected empty box for empty path, have %v-%v", lo, hi)
	}
}

func TestCountDifferences(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontdiff.render")
	defer teardown()
	//
	a := image.NewAlpha(image.Rect(0, 0, 2, 2))
	b := image.NewAlpha(image.Rect(0, 0, 2, 2))
	a.Pix[0], b.Pix[0] = 100, 108 // exactly the fuzz
	a.Pix[1], b.Pix[1] = 100, 109 // above
	if n := CountDifferences(a, b, 8); n != 1 {
		t.Errorf("expected 1 differing pixel, have %d", n)
	}
	t.Run("padding", func(t *testing.T) {
		wide := image.NewAlpha(image.Rect(0, 0, 3, 1))
		wide.Pix[2] = 255
		small := image.NewAlpha(image.Rect(0, 0, 2, 2))
		small.Pix[3] = 255 // bottom right
		if n := CountDifferences(wide, small, 8); n != 2 {
			t.Errorf("expected 2 differing pixels after padding, have %d", n)
		}
		if n := CountDifferences(small, wide, 8); n != 2 {
			t.Errorf("expected padding to be symmetric, have %d", n)
		}
	})
}

func TestRenderUpright(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontdiff.render")
	defer teardown()
	//
	r, err := NewRenderer(goFont(t, goregular.TTF), 32, di.DirectionLTR, 0)
	if err != nil {
		t.Fatal(err)
	}
	buffer, img, ok := r.RenderString("'")
	if !ok {
		t.Fatalf("cannot shape apostrophe")
	}
	if buffer == "" {
		t.Errorf("expected serialized buffer")
	}
	bounds := img.Bounds()
	if bounds.Max.Y != 0 || bounds.Dy() < 10 {
		t.Fatalf("expected apostrophe to reach well above the baseline, image bounds are %v", bounds)
	}
	row := func(y int) int {
		sum := 0
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			sum += int(img.AlphaAt(x, y).A)
		}
		return sum
	}
	if row(-1) != 0 {
		t.Errorf("expected no ink at the baseline")
	}
	if row(bounds.Min.Y) == 0 {
		t.Errorf("expected ink at the top of the image")
	}
}

// box returns a closed rectangular contour.
func box(x0, y0, x1, y1 float32) Path {
	return Path{
		{Op: MoveTo, Points: [3]Point{{X: x0, Y: y0}}},
		{Op: LineTo, Points: [3]Point{{X: x1, Y: y0}}},
		{Op: LineTo, Points: [3]Point{{X: x1, Y: y1}}},
		{Op: LineTo, Points: [3]Point{{X: x0, Y: y1}}},
		{Op: Close},
	}
}

func TestBaselineAlignment(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontdiff.render")
	defer teardown()
	//
	stem := box(0, 0, 4, 10)
	dotted := append(box(0, 0, 4, 10), box(0, 12, 4, 14)...)
	a, b := RenderPositionedGlyphs(stem), RenderPositionedGlyphs(dotted)
	if a.Bounds().Dy() != 10 || b.Bounds().Dy() != 14 {
		t.Fatalf("expected image heights 10 and 14, have %v and %v", a.Bounds(), b.Bounds())
	}
	if n := CountDifferences(a, b, DefaultGrayFuzz); n != 8 {
		t.Errorf("expected only the added dot to differ by 8 pixels, have %d", n)
	}
	t.Run("descender", func(t *testing.T) {
		descending := RenderPositionedGlyphs(box(0, -2, 4, 10))
		if n := CountDifferences(a, descending, DefaultGrayFuzz); n != 8 {
			t.Errorf("expected only the descender to differ by 8 pixels, have %d", n)
		}
	})
	t.Run("offset", func(t *testing.T) {
		shifted := RenderPositionedGlyphs(box(1, 0, 5, 10))
		if n := CountDifferences(a, shifted, DefaultGrayFuzz); n != 20 {
			t.Errorf("expected a shift by one pixel to differ in two columns, have %d", n)
		}
	})
}

func TestDifferenceThreshold(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontdiff.render")
	defer teardown()
	//
	opts := DefaultOptions()
	opts.Threshold = 8
	stem := box(0, 0, 4, 10)
	if _, ok := differingPixels(stem, box(0, 0, 4, 10), opts); ok {
		t.Errorf("expected identical paths not to differ")
	}
	atThreshold := append(box(0, 0, 4, 10), box(0, 12, 4, 14)...) // 4x2 mark
	if n, ok := differingPixels(stem, atThreshold, opts); ok || n != 8 {
		t.Errorf("expected 8 differing pixels not to exceed threshold 8, have %d (reported=%v)", n, ok)
	}
	aboveThreshold := append(box(0, 0, 4, 10), box(0, 12, 3, 15)...) // 3x3 mark
	if n, ok := differingPixels(stem, aboveThreshold, opts); !ok || n != 9 {
		t.Errorf("expected 9 differing pixels to exceed threshold 8, have %d (reported=%v)", n, ok)
	}
}

func TestOutlineCache(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontdiff.render")
	defer teardown()
	//
	r, err := NewRenderer(goFont(t, goregular.TTF), 32, di.DirectionLTR, 0)
	if err != nil {
		t.Fatal(err)
	}
	gid, ok := r.face.NominalGlyph('O')
	if !ok {
		t.Fatalf("no glyph for 'O'")
	}
	outline := r.outlines.Get(gid)
	if len(outline) < 4 || outline[0].Op != MoveTo || outline[len(outline)-1].Op != Close {
		t.Fatalf("expected closed contours, have %v", outline)
	}
	closes := 0
	for _, c := range outline {
		if c.Op == Close {
			closes++
		}
	}
	if closes != 2 {
		t.Errorf("expected 2 contours for 'O', have %d", closes)
	}
	var moved Path
	r.outlines.Draw(gid, 10, 5, &moved)
	if moved[0].Points[0].X != outline[0].Points[0].X+10 || moved[0].Points[0].Y != outline[0].Points[0].Y+5 {
		t.Errorf("expected outline to be moved by (10,5)")
	}
	if r.outlines.Len() != 1 {
		t.Errorf("expected 1 cached outline, have %d", r.outlines.Len())
	}
	_, first, _ := r.StringToPositionedGlyphs("OO")
	_, second, _ := r.StringToPositionedGlyphs("OO")
	if !first.Equal(second) {
		t.Errorf("expected shaping from cached outlines to be stable")
	}
}

func TestIdenticalFontsHaveNoDifferences(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontdiff.render")
	defer teardown()
	//
	a, b := goFont(t, goregular.TTF), goFont(t, goregular.TTF)
	diffs, err := DiffManyWords(a, b, []string{"Hello", "World", "fjord"}, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if len(diffs) != 0 {
		t.Errorf("expected no differences between identical fonts, have %v", diffs)
	}
}

func TestDiffManyWords(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontdiff.render")
	defer teardown()
	//
	a, b := goFont(t, goregular.TTF), goFont(t, gobold.TTF)
	opts := DefaultOptions()
	opts.Jobs = 1
	diffs, err := DiffManyWords(a, b, []string{"Hello", "Hello", "lo", "Hamburg"}, opts)
	if err != nil {
		t.Fatal(err)
	}
	dedup, err := DiffManyWords(a, b, []string{"Hello", "lo", "Hamburg"}, opts)
	if err != nil {
		t.Fatal(err)
	}
	words := func(ds []Difference) []string {
		var w []string
		for _, d := range ds {
			w = append(w, d.Word)
		}
		return w
	}
	if len(diffs) != 2 {
		t.Fatalf("expected 2 differences (repetition and known glyphs skipped), have %v", words(diffs))
	}
	if len(dedup) != len(diffs) || dedup[0].Word != diffs[0].Word || dedup[1].Word != diffs[1].Word {
		t.Errorf("expected duplicate words not to change the result, have %v and %v", words(diffs), words(dedup))
	}
	if diffs[0].DifferingPixels < diffs[1].DifferingPixels {
		t.Errorf("expected differences sorted by pixel count, most first")
	}
	for _, d := range diffs {
		if d.DifferingPixels <= opts.Threshold {
			t.Errorf("difference for %q below threshold", d.Word)
		}
		if d.BufferA == "" {
			t.Errorf("expected buffer for %q", d.Word)
		}
	}
}

func TestSeenSet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontdiff.render")
	defer teardown()
	//
	seen := newSeenSet()
	if !seen.add([]string{"1", "2@0,64"}) {
		t.Errorf("expected new glyphs to be added")
	}
	if seen.add([]string{"2@0,64", "1", "1"}) {
		t.Errorf("expected known glyphs to be rejected")
	}
	if !seen.add([]string{"1", "3"}) {
		t.Errorf("expected partly new glyphs to be added")
	}
}

func TestModifiedEncodedGlyphs(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontdiff.render")
	defer teardown()
	//
	a, b := goFont(t, goregular.TTF), goFont(t, gobold.TTF)
	glyphs, err := ModifiedEncodedGlyphs(a, b, GlyphOptions())
	if err != nil {
		t.Fatal(err)
	}
	if len(glyphs) == 0 {
		t.Fatalf("expected regular and bold glyphs to differ")
	}
	found := false
	for _, g := range glyphs {
		if g.Char == "A" {
			found = true
			if g.Unicode != "U+0041" || g.Name != "LATIN CAPITAL LETTER A" {
				t.Errorf("unexpected glyph diff %+v", g)
			}
		}
	}
	if !found {
		t.Errorf("expected 'A' to be rendered differently")
	}
	same, err := ModifiedEncodedGlyphs(a, goFont(t, goregular.TTF), GlyphOptions())
	if err != nil {
		t.Fatal(err)
	}
	if len(same) != 0 {
		t.Errorf("expected no modified glyphs for identical fonts, have %d", len(same))
	}
}

func TestFontWordsPerScript(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontdiff.render")
	defer teardown()
	//
	a, b := goFont(t, goregular.TTF), goFont(t, gobold.TTF)
	custom := &Wordlist{Name: "custom", Words: []string{"Quartz", "שלום"}}
	results, err := TestFontWords(a, b, []*Wordlist{custom}, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if len(results["Latin"]) == 0 {
		t.Errorf("expected Latin words to differ, have lists %v", keys(results))
	}
	if _, ok := results["Arabic"]; ok {
		t.Errorf("expected no Arabic results for fonts without Arabic")
	}
	if c := results["custom"]; len(c) != 1 || c[0].Word != "Quartz" {
		t.Errorf("expected custom list with 'Quartz' only, have %v", c)
	}
}

func keys(m map[string][]Difference) []string {
	var k []string
	for key := range m {
		k = append(k, key)
	}
	return k
}
