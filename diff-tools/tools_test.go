package main

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/language"
	"github.com/npillmayer/fontdiff/ttj"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestFlagParsing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontdiff")
	defer teardown()
	//
	t.Run("lists", func(t *testing.T) {
		assert.Nil(t, splitList("-", ","))
		assert.Equal(t, []string{"Bold", "*"}, splitList(" Bold, ,* ", ","))
		assert.Equal(t, []string{"wght=400,wdth=100", "wght=700"}, splitList("wght=400,wdth=100;wght=700", ";"))
	})
	t.Run("direction", func(t *testing.T) {
		dir, explicit, err := parseDirection("RTL")
		assert.NoError(t, err)
		assert.True(t, explicit)
		assert.Equal(t, di.DirectionRTL, dir)
		_, explicit, err = parseDirection("-")
		assert.NoError(t, err)
		assert.False(t, explicit)
		_, _, err = parseDirection("ttb")
		assert.Error(t, err)
	})
	t.Run("script", func(t *testing.T) {
		scr, err := parseScript("Arabic")
		assert.NoError(t, err)
		assert.Equal(t, language.Arabic, scr)
		scr, err = parseScript("Latn")
		assert.NoError(t, err)
		assert.Equal(t, language.Latin, scr)
		scr, err = parseScript("")
		assert.NoError(t, err)
		assert.Equal(t, language.Script(0), scr)
	})
	t.Run("trace level", func(t *testing.T) {
		assert.Equal(t, "Info", traceLevel(false, false))
		assert.Equal(t, "Debug", traceLevel(true, false))
		assert.Equal(t, "Error", traceLevel(true, true))
	})
}

func TestDirectionOf(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontdiff")
	defer teardown()
	//
	if dir := directionOf("123 שלום", 0); dir != di.DirectionRTL {
		t.Errorf("expected Hebrew text to be set right-to-left")
	}
	if dir := directionOf("Hamburg", 0); dir != di.DirectionLTR {
		t.Errorf("expected Latin text to be set left-to-right")
	}
	if dir := directionOf("123", language.Arabic); dir != di.DirectionRTL {
		t.Errorf("expected explicit script Arabic to be set right-to-left")
	}
}

func TestWriteRenderingPNG(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontdiff")
	defer teardown()
	//
	coverage := image.NewAlpha(image.Rect(0, 0, 10, 4))
	coverage.Pix[0] = 0xff
	out := filepath.Join(t.TempDir(), "sub", "word.png")
	if err := writeRenderingPNG(out, coverage); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 10+2*margin || b.Dy() != 4+2*margin {
		t.Errorf("expected rendering with margin, have %v", b)
	}
	if r, _, _, _ := img.At(margin, margin).RGBA(); r != 0 {
		t.Errorf("expected inked pixel to be black, have red=%d", r)
	}
	if r, _, _, _ := img.At(0, 0).RGBA(); r != 0xffff {
		t.Errorf("expected margin to be white, have red=%d", r)
	}
}

func TestSelectTables(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontdiff")
	defer teardown()
	//
	font := ttj.NewMap()
	font.Set("head", ttj.String("h"))
	font.Set("OS/2", ttj.String("o"))
	doc := selectTables(font, []string{"OS/2", "GSUB"})
	if doc.String() != `{"OS/2":"o"}` {
		t.Errorf("unexpected selection %s", doc)
	}
}
