package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/fontdiff/dfont"
	"github.com/npillmayer/fontdiff/render"
	"github.com/npillmayer/fontdiff/ttj"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

func document(t *testing.T, s string) *ttj.Document {
	var d ttj.Document
	if err := json.Unmarshal([]byte(s), &d); err != nil {
		t.Fatalf("cannot parse %s: %v", s, err)
	}
	return &d
}

func testReport(t *testing.T) *Report {
	bufferB := "3|7"
	return &Report{
		Tables: document(t, `{
			"head":{"unitsPerEm":[1000,2048]},
			"GSUB":[{"x":1},null],
			"name":{"error":"200 changes, check manually"},
			"post":{"italic_angle":[5,0]}
		}`),
		Kerns: document(t, `{"T/o":{"x":[-40,-30]}}`),
		CmapDiff: &render.CmapDiff{
			Missing: []render.EncodedGlyph{render.NewEncodedGlyph('Ä')},
		},
		Locations: []LocationResult{
			{
				Location: "Bold",
				Coords:   map[string]float64{"wght": 700},
				Glyphs: []render.GlyphDiff{
					{Char: "A", Unicode: "U+0041", Name: "LATIN CAPITAL LETTER A", DifferingPixels: 42},
				},
				Words: map[string][]render.Difference{
					"Latin": {{Word: "Hello", BufferA: "3|5", BufferB: &bufferB, DifferingPixels: 99}},
				},
			},
			{Location: "Light"},
			ErrorResult("Black", errors.New("New font does not contain instance 'Black'")),
		},
	}
}

func TestTextReport(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontdiff.report")
	defer teardown()
	//
	var out bytes.Buffer
	err := TextReporter{Succinct: true, NoColor: true}.Write(&out, testReport(t))
	require.NoError(t, err)
	text := out.String()
	for _, expected := range []string{
		"\n# head\nunitsPerEm: 1000 => 2048\n",
		"\n# GSUB\nTable was present in LHS but absent in RHS\n",
		"\n# name\n200 changes, check manually\n",
		"italic_angle: 5 => <absent>\n",
		"\n# Kerning\nT/o:\n  x: -40 => -30\n",
		"Missing glyphs:\n - Ä (U+00C4) LATIN CAPITAL LETTER A WITH DIAERESIS\n",
		"# Differences at location Bold (wght: 700)\n",
		" - A U+0041 LATIN CAPITAL LETTER A (42 pixels)\n",
		"### Latin\n  - Hello (99 pixels)\n",
		"# Differences at location Black\nNew font does not contain instance 'Black'\n",
	} {
		assert.Contains(t, text, expected)
	}
	assert.NotContains(t, text, "Light", "expected location without differences to be left out")
	assert.NotContains(t, text, "New glyphs")
	//
	out.Reset()
	err = TextReporter{NoColor: true}.Write(&out, testReport(t))
	require.NoError(t, err)
	text = out.String()
	assert.Contains(t, text, "italic_angle: 5 => 0\n")
	assert.Contains(t, text, "LHS had: {\"x\":1}\nRHS had: null\n")
}

func TestJSONReport(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontdiff.report")
	defer teardown()
	//
	var out bytes.Buffer
	require.NoError(t, WriteJSON(&out, testReport(t), false))
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	assert.Contains(t, decoded, "tables")
	assert.Contains(t, decoded, "kerns")
	assert.Contains(t, decoded, "cmap_diff")
	locations := decoded["locations"].([]interface{})
	require.Len(t, locations, 3)
	bold := locations[0].(map[string]interface{})
	assert.Equal(t, "Bold", bold["location"])
	word := bold["words"].(map[string]interface{})["Latin"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, "3|7", word["buffer_b"])
	assert.Equal(t, float64(99), word["differing_pixels"])
	assert.NotContains(t, word, "ot_features")
	light := locations[1].(map[string]interface{})
	assert.NotContains(t, light, "glyphs")
	assert.NotContains(t, light, "error")
	//
	out.Reset()
	require.NoError(t, WriteJSON(&out, &Report{}, true))
	assert.Equal(t, "{}\n", out.String())
}

func TestHTMLReport(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontdiff.report")
	defer teardown()
	//
	a, err := dfont.New(goregular.TTF)
	require.NoError(t, err)
	b, err := dfont.New(gobold.TTF)
	require.NoError(t, err)
	r := testReport(t)
	r.Locations[0].Coords = nil // Go fonts have no axes
	dir := t.TempDir()
	path, err := HTMLReporter{OutputDir: dir, OldName: "/some/where/Go.ttf", NewName: "Go-Bold.ttf"}.Write(r, a, b)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "fontdiff.html"), path)
	page, err := os.ReadFile(path)
	require.NoError(t, err)
	html := string(page)
	assert.Contains(t, html, "old-Go.ttf")
	assert.Contains(t, html, "new-Go-Bold.ttf")
	assert.Contains(t, html, "Differences at location Bold")
	assert.Contains(t, html, "loc0-glyph0-a.png")
	assert.Contains(t, html, "loc0-list0-word0-b.png")
	assert.True(t, strings.Contains(html, "New font does not contain instance"), "expected error of location to be shown")
	for _, name := range []string{"old-Go.ttf", "new-Go-Bold.ttf", "loc0-glyph0-a.png", "loc0-glyph0-b.png", "loc0-list0-word0-a.png"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, "expected file %s", name)
	}
}
