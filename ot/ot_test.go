package ot

import (
	"testing"

	"github.com/npillmayer/fontdiff/internal/fonttest"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/image/font/gofont/goregular"
)

func TestTags(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.opentype")
	defer teardown()
	//
	tag := Tag(0x636d6170)
	if tag.String() != "cmap" {
		t.Errorf("expected tag 0x636d6170 to be 'cmap', is %s", tag.String())
	}
	if tag = MakeTag([]byte("cmap")); tag.String() != "cmap" {
		t.Errorf("expected tag MakeTag(cmap) to be 'cmap', is %s", tag.String())
	}
	if tag = T("cvt"); tag.String() != "cvt " {
		t.Errorf("expected tag T(cvt) to be padded with a space, is %q", tag.String())
	}
}

func TestParseHeader(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.opentype")
	defer teardown()
	//
	otf := parseGoRegular(t)
	for _, tag := range []string{"head", "cmap", "glyf", "loca", "hmtx", "maxp"} {
		if !otf.HasTable(T(tag)) {
			t.Errorf("expected Go Regular to contain table %q", tag)
		}
	}
	if otf.NumGlyphs() == 0 {
		t.Errorf("expected Go Regular to have glyphs")
	}
	if len(otf.CriticalErrors()) > 0 {
		t.Errorf("expected no critical errors, have %v", otf.CriticalErrors())
	}
	if _, err := Parse([]byte("not a font at all")); err == nil {
		t.Errorf("expected garbage input to be rejected")
	}
}

func TestParseTruncatedDirectory(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.opentype")
	defer teardown()
	//
	b := fonttest.NewFont().Table("maxp", fonttest.Maxp(3)).Bytes()
	fonttest.PutU32(b, 12+12, 4096) // table length beyond end of data
	if _, err := Parse(b); err == nil {
		t.Fatalf("expected table bounds error")
	}
}

func TestCMapAndGlyphNames(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.opentype")
	defer teardown()
	//
	names := []string{".notdef", "A", "B", "A.alt"}
	b := fonttest.Basic(names, map[rune]uint16{'A': 1, 'B': 2, 'a': 1}).Bytes()
	otf, err := Parse(b)
	if err != nil {
		t.Fatal(err)
	}
	cmap, err := otf.CMap()
	if err != nil {
		t.Fatal(err)
	}
	if g, ok := cmap.Lookup('B'); !ok || g != 2 {
		t.Errorf("expected 'B' to map to glyph 2, have %d", g)
	}
	if cmap.Len() != 3 {
		t.Errorf("expected 3 mappings, have %d", cmap.Len())
	}
	if r := cmap.ReverseMap()[1]; r != 'A' {
		t.Errorf("expected reverse map to pick lowest code point 'A' for glyph 1, have %q", r)
	}
	post, err := otf.Post()
	if err != nil {
		t.Fatal(err)
	}
	for g, name := range names {
		if post.GlyphName(GlyphIndex(g)) != name {
			t.Errorf("expected glyph %d to be named %q, is %q", g, name, post.GlyphName(GlyphIndex(g)))
		}
	}
	hm, err := otf.HMetrics()
	if err != nil {
		t.Fatal(err)
	}
	if hm.Advance(3) != 500 || hm.SideBearing(3) != 50 {
		t.Errorf("expected metrics 500/50 for glyph 3, have %d/%d", hm.Advance(3), hm.SideBearing(3))
	}
	head, err := otf.FlatRecord(T("head"))
	if err != nil {
		t.Fatal(err)
	}
	if upem, _ := head.Get("units_per_em"); upem != int64(1000) {
		t.Errorf("expected units_per_em = 1000, have %v", upem)
	}
	if _, err := otf.GPos(); err != ErrNoTable {
		t.Errorf("expected ErrNoTable for missing GPOS, have %v", err)
	}
}

func TestNames(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.opentype")
	defer teardown()
	//
	b := fonttest.Basic([]string{".notdef"}, nil).
		Table("name", fonttest.Name(map[uint16]string{1: "Testing", 2: "Bold"})).
		Bytes()
	otf, err := Parse(b)
	if err != nil {
		t.Fatal(err)
	}
	names, err := otf.Names()
	if err != nil {
		t.Fatal(err)
	}
	if family, ok := names.EnglishOrFirst(NameFamily); !ok || family != "Testing" {
		t.Errorf("expected family name 'Testing', have %q", family)
	}
	for lang, style := range names.Localized(NameSubfamily) {
		if lang != "en-US" || style != "Bold" {
			t.Errorf("expected en-US:Bold, have %s:%s", lang, style)
		}
	}
}

func TestGlyf(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.opentype")
	defer teardown()
	//
	otf := parseGoRegular(t)
	cmap, err := otf.CMap()
	if err != nil {
		t.Fatal(err)
	}
	glyf, err := otf.Glyf()
	if err != nil {
		t.Fatal(err)
	}
	gid, ok := cmap.Lookup('O')
	if !ok {
		t.Fatalf("expected Go Regular to encode 'O'")
	}
	glyph, err := glyf.Glyph(gid)
	if err != nil {
		t.Fatal(err)
	}
	if glyph == nil || glyph.IsComposite() {
		t.Fatalf("expected 'O' to be a simple glyph")
	}
	if glyph.NumberOfContours != 2 || len(glyph.EndPoints) != 2 {
		t.Errorf("expected 'O' to have 2 contours, has %d", glyph.NumberOfContours)
	}
	if len(glyph.Points) != int(glyph.EndPoints[len(glyph.EndPoints)-1])+1 {
		t.Errorf("expected number of points to match last contour end point")
	}
	space, _ := cmap.Lookup(' ')
	if g, err := glyf.Glyph(space); err != nil || g != nil {
		t.Errorf("expected space to have no outline, have %v, %v", g, err)
	}
}

func parseGoRegular(t *testing.T) *Font {
	otf, err := Parse(goregular.TTF)
	if err != nil {
		t.Fatalf("cannot parse Go Regular: %v", err)
	}
	return otf
}
