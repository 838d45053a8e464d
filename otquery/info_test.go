package otquery

import (
	"testing"

	"github.com/go-text/typesetting/language"
	"github.com/npillmayer/fontdiff/internal/fonttest"
	"github.com/npillmayer/fontdiff/ot"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
	"golang.org/x/image/font/gofont/goregular"
)

// --- Test Suite Preparation ------------------------------------------------

type InfoTestEnviron struct {
	suite.Suite
	otf *ot.Font
}

// listen for 'go test' command --> run test methods
func TestInfoFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.opentype")
	defer teardown()
	suite.Run(t, new(InfoTestEnviron))
}

// run once, before test suite methods
func (env *InfoTestEnviron) SetupSuite() {
	env.T().Log("Setting up test suite")
	tracing.Select("font.opentype").SetTraceLevel(tracing.LevelError)
	otf, err := ot.Parse(goregular.TTF)
	env.Require().NoError(err, "cannot parse Go Regular")
	env.otf = otf
	tracing.Select("font.opentype").SetTraceLevel(tracing.LevelInfo)
}

// run once, after test suite methods
func (env *InfoTestEnviron) TearDownSuite() {
	env.T().Log("Tearing down test suite")
}

// --- Tests -----------------------------------------------------------------

func (env *InfoTestEnviron) TestFontTypeInfo() {
	fti := FontType(env.otf)
	env.Equal("TrueType", fti, "expected font type of test font to be TrueType")
}

func (env *InfoTestEnviron) TestGeneralInfo() {
	info := NameInfo(env.otf)
	env.T().Logf("info = %v", info)
	fam, ok := info["family"]
	env.Require().True(ok, "font familiy identifier not found in font info")
	env.Equal("Go", fam, "expected font family name 'Go'")
	env.Equal("Go", FamilyName(env.otf))
	env.Equal("Regular", StyleName(env.otf))
}

func (env *InfoTestEnviron) TestHeadInfo() {
	h, ok := HeadInfo(env.otf)
	env.Require().True(ok, "expected to decode table 'head'")
	env.Equal(env.otf.UnitsPerEm(), h.UnitsPerEm, "expected matching UnitsPerEm")
	env.Equal(uint32(0x5F0F3CF5), h.MagicNumber, "expected OpenType head magic number")
	env.True(h.IndexToLocFormat == 0 || h.IndexToLocFormat == 1)
}

func (env *InfoTestEnviron) TestMaxPInfo() {
	m, ok := MaxPInfo(env.otf)
	env.Require().True(ok, "expected to decode table 'maxp'")
	env.Equal(env.otf.NumGlyphs(), int(m.NumGlyphs), "expected matching numGlyphs")
	env.True(m.HasExtendedProfile, "expected TrueType maxp profile")
}

func (env *InfoTestEnviron) TestReverseLookup() {
	gid := GlyphIndex(env.otf, 'A')
	env.NotZero(gid)
	r := CodePointForGlyph(env.otf, gid)
	env.Equal('A', r, "expected code-point to be %#U, is %#U", 'A', r)
}

func (env *InfoTestEnviron) TestGlyphMetrics() {
	m := GlyphMetrics(env.otf, GlyphIndex(env.otf, 'H'))
	env.Greater(int(m.Advance), 0)
	env.False(m.BBox.IsEmpty(), "expected 'H' to have a bounding box")
	env.Equal(m.Advance, m.LSB+m.BBox.Dx()+m.RSB)
	fm := FontMetrics(env.otf)
	env.Greater(int(fm.Ascent), 0)
	env.Less(int(fm.Descent), 0)
}

func (env *InfoTestEnviron) TestScripts() {
	scripts := SupportedScripts(env.otf)
	env.Contains(scripts, "Latin")
	env.Contains(scripts, "Common")
	cps := Codepoints(env.otf)
	env.True(cps.Contains('a', 'Z', '0'))
	env.False(cps.Contains(rune(0x0627)), "expected Go Regular not to encode Arabic")
}

// --- Plain tests -----------------------------------------------------------

func TestScriptNames(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.opentype")
	defer teardown()
	//
	if name := ScriptName(language.Arabic); name != "Arabic" {
		t.Errorf("expected script name 'Arabic', have %q", name)
	}
	if s, ok := ScriptByName("Old Italic"); !ok || s != language.Old_Italic {
		t.Errorf("expected to find script 'Old Italic'")
	}
	if s, ok := ScriptByName("Latn"); !ok || s != language.Latin {
		t.Errorf("expected to find script by ISO code")
	}
	if s, ok := ScriptByName("arab"); !ok || s != language.Arabic {
		t.Errorf("expected ISO codes to be matched regardless of case")
	}
	for _, name := range []string{"mywords", "Mywo", "Latinx", "Unknown", "Zzzz", "Lat", ""} {
		if s, ok := ScriptByName(name); ok {
			t.Errorf("expected %q not to name a script, have %s", name, s)
		}
	}
}

func TestMissingNames(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.opentype")
	defer teardown()
	//
	otf, err := ot.Parse(fonttest.Basic([]string{".notdef"}, nil).Bytes())
	if err != nil {
		t.Fatal(err)
	}
	if name := FamilyName(otf); name != "Unknown" {
		t.Errorf("expected fallback family name 'Unknown', have %q", name)
	}
	if name := StyleName(otf); name != "Regular" {
		t.Errorf("expected fallback style name 'Regular', have %q", name)
	}
	if LayoutTables(otf) != nil {
		t.Errorf("expected no layout tables")
	}
}
