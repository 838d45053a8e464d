package dfont

import (
	"testing"

	"github.com/npillmayer/fontdiff/internal/fonttest"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
	"golang.org/x/image/font/gofont/goregular"
)

var glyphNames = []string{".notdef", "A", "B", "C"}

func variableFont(axis fonttest.Axis, instances map[string]float64, masters [][]float64) []byte {
	names := map[uint16]string{1: "Test Sans", 2: "Regular"}
	var insts []fonttest.Instance
	id := uint16(256)
	for _, name := range []string{"Light", "Regular", "Bold", "Black"} {
		v, ok := instances[name]
		if !ok {
			continue
		}
		names[id] = name
		insts = append(insts, fonttest.Instance{NameID: id, Coordinates: []float64{v}})
		id++
	}
	return fonttest.Basic(glyphNames, map[rune]uint16{'A': 1, 'B': 2, 'C': 3}).
		Table("name", fonttest.Name(names)).
		Table("fvar", fonttest.FVar([]fonttest.Axis{axis}, insts)).
		Table("gvar", fonttest.GVarShared(1, len(glyphNames), masters)).
		Bytes()
}

// --- Test Suite Preparation ------------------------------------------------

type DFontTestEnviron struct {
	suite.Suite
	variable *DFont
	static   *DFont
}

// listen for 'go test' command --> run test methods
func TestDFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontdiff")
	defer teardown()
	suite.Run(t, new(DFontTestEnviron))
}

// run once, before test suite methods
func (env *DFontTestEnviron) SetupSuite() {
	tracing.Select("fontdiff").SetTraceLevel(tracing.LevelInfo)
	var err error
	env.variable, err = New(variableFont(
		fonttest.Axis{Tag: "wght", Min: 100, Default: 400, Max: 900, NameID: 256},
		map[string]float64{"Light": 300, "Bold": 700},
		[][]float64{{-1}, {1}},
	))
	env.Require().NoError(err, "cannot parse synthetic variable font")
	env.static, err = New(goregular.TTF)
	env.Require().NoError(err, "cannot parse Go Regular")
}

// --- Tests -----------------------------------------------------------------

func (env *DFontTestEnviron) TestNames() {
	env.Equal("Test Sans", env.variable.FamilyName())
	env.Equal("Regular", env.variable.StyleName())
	env.Equal("Go", env.static.FamilyName())
	env.True(env.static.Codepoints.Contains('A'), "expected Go Regular to encode 'A'")
	env.Contains(env.static.SupportedScripts(), "Latin")
}

func (env *DFontTestEnviron) TestAxes() {
	env.True(env.variable.IsVariable())
	env.False(env.static.IsVariable())
	env.Equal(map[string]AxisRange{"wght": {Min: 100, Default: 400, Max: 900}}, env.variable.AxisInfo())
	env.Empty(env.static.AxisInfo())
	env.Equal([]string{"Light", "Bold"}, env.variable.Instances())
}

func (env *DFontTestEnviron) TestSetInstance() {
	df := *env.variable
	env.Require().NoError(df.SetInstance("Bold"))
	env.Equal([]VariationSetting{{Tag: "wght", Value: 700}}, df.Location)
	env.Require().Len(df.NormalizedLocation, 1)
	env.InDelta(0.6, df.NormalizedLocation[0], 1e-9)
	err := df.SetInstance("Hairline")
	env.EqualError(err, "No instance named Hairline")
}

func (env *DFontTestEnviron) TestSetLocation() {
	df := *env.variable
	env.Require().NoError(df.SetLocation("wght=250"))
	env.InDelta(-0.5, df.NormalizedLocation[0], 1e-9)
	env.Require().NoError(df.SetLocation("wght=2000 XXXX=3"))
	env.InDelta(1.0, df.NormalizedLocation[0], 1e-9, "expected value to be clamped to axis maximum")
	env.Error(df.SetLocation("wght"))
	static := *env.static
	env.Require().NoError(static.SetLocation("wght=700"))
	env.Empty(static.NormalizedLocation)
}

func (env *DFontTestEnviron) TestMasters() {
	masters, err := env.variable.Masters()
	env.Require().NoError(err)
	env.Equal([][]VariationSetting{{{Tag: "wght", Value: 100}}, {{Tag: "wght", Value: 900}}}, masters)
	_, err = env.static.Masters()
	env.Error(err, "expected Go Regular to have no masters")
}

func (env *DFontTestEnviron) TestSettings() {
	a, b := *env.variable, *env.static
	env.EqualError(Instance("Bold").SetOnFonts(&a, &b), "New font does not contain instance 'Bold'")
	env.EqualError(Instance("Bold").SetOnFonts(&b, &a), "Old font does not contain instance 'Bold'")
	loc := Location([]VariationSetting{{Tag: "wght", Value: 900}})
	env.Require().NoError(loc.SetOnFonts(&a, &b))
	env.InDelta(1.0, a.NormalizedLocation[0], 1e-9)
	env.Equal("wght=900", loc.Name())
	env.Require().NoError(Default().SetOnFonts(&a, &b))
	env.Equal([]float64{0}, a.NormalizedLocation)
	env.Equal("Default", Default().Name())
	env.Equal("Bold", Instance("Bold").Name())
	env.True(loc.Equal(Location([]VariationSetting{{Tag: "wght", Value: 900}})))
	env.False(loc.Equal(Default()))
}

func (env *DFontTestEnviron) TestSharedAxes() {
	other, err := New(variableFont(
		fonttest.Axis{Tag: "wght", Min: 200, Default: 400, Max: 700, NameID: 256},
		map[string]float64{"Regular": 400, "Bold": 700},
		nil,
	))
	env.Require().NoError(err)
	axes, instances := SharedAxes(env.variable, other)
	env.Equal(map[string]AxisRange{"wght": {Min: 200, Default: 400, Max: 700}}, axes)
	env.Equal([]string{"Bold"}, instances)
	axes, instances = SharedAxes(env.variable, env.static)
	env.Empty(axes)
	env.Empty(instances)
}

// --- Plain tests -----------------------------------------------------------

func TestParseLocation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontdiff")
	defer teardown()
	//
	loc, err := ParseLocation("wght=400,wdth=87.5 opsz=12")
	if err != nil {
		t.Fatal(err)
	}
	if len(loc) != 3 || loc[1].Tag != "wdth" || loc[1].Value != 87.5 {
		t.Errorf("unexpected location %v", loc)
	}
	if s := LocationName(loc); s != "wght=400,wdth=87.5,opsz=12" {
		t.Errorf("unexpected location name %q", s)
	}
	for _, bad := range []string{"wght", "wght=bold", "=400"} {
		if _, err := ParseLocation(bad); err == nil {
			t.Errorf("expected error for location %q", bad)
		}
	}
	if loc, err := ParseLocation(""); err != nil || len(loc) != 0 {
		t.Errorf("expected empty location without error, have %v, %v", loc, err)
	}
}
