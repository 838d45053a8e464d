package fontdiff

import (
	"errors"
	"testing"

	"github.com/npillmayer/fontdiff/dfont"
	"github.com/npillmayer/fontdiff/internal/fonttest"
	"github.com/npillmayer/fontdiff/render"
	"github.com/npillmayer/fontdiff/report"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

func variableFont(axis fonttest.Axis, instances []string, coords []float64) []byte {
	names := map[uint16]string{1: "Test Sans", 2: "Regular"}
	var insts []fonttest.Instance
	for i, name := range instances {
		id := uint16(256 + i)
		names[id] = name
		insts = append(insts, fonttest.Instance{NameID: id, Coordinates: []float64{coords[i]}})
	}
	glyphNames := []string{".notdef", "A", "B"}
	return fonttest.Basic(glyphNames, map[rune]uint16{'A': 1, 'B': 2}).
		Table("name", fonttest.Name(names)).
		Table("fvar", fonttest.FVar([]fonttest.Axis{axis}, insts)).
		Table("gvar", fonttest.GVarShared(1, len(glyphNames), [][]float64{{-1}, {1}})).
		Bytes()
}

// --- Test Suite Preparation ------------------------------------------------

type CompareTestEnviron struct {
	suite.Suite
	variable *dfont.DFont
	narrow   *dfont.DFont
	regular  *dfont.DFont
	bold     *dfont.DFont
}

// listen for 'go test' command --> run test methods
func TestCompare(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontdiff")
	defer teardown()
	suite.Run(t, new(CompareTestEnviron))
}

func (env *CompareTestEnviron) load(data []byte) *dfont.DFont {
	df, err := dfont.New(data)
	env.Require().NoError(err)
	return df
}

// run once, before test suite methods
func (env *CompareTestEnviron) SetupSuite() {
	tracing.Select("fontdiff").SetTraceLevel(tracing.LevelInfo)
	env.variable = env.load(variableFont(
		fonttest.Axis{Tag: "wght", Min: 100, Default: 400, Max: 900, NameID: 256},
		[]string{"Light", "Bold"}, []float64{300, 700},
	))
	env.narrow = env.load(variableFont(
		fonttest.Axis{Tag: "wght", Min: 200, Default: 400, Max: 700, NameID: 256},
		[]string{"Bold", "Heavy"}, []float64{700, 800},
	))
	env.regular = env.load(goregular.TTF)
	env.bold = env.load(gobold.TTF)
}

func names(settings []dfont.Setting) []string {
	n := make([]string, len(settings))
	for i, s := range settings {
		n[i] = s.Name()
	}
	return n
}

// --- Tests -----------------------------------------------------------------

func (env *CompareTestEnviron) TestDefaultSettings() {
	settings, err := GenerateSettings(env.regular, env.bold, DefaultOptions())
	env.Require().NoError(err)
	env.Equal([]string{"Default"}, names(settings))
	settings, err = GenerateSettings(env.variable, env.narrow, DefaultOptions())
	env.Require().NoError(err)
	env.Equal([]string{"Light", "Bold", "Heavy"}, names(settings))
}

func (env *CompareTestEnviron) TestExplicitSettings() {
	opts := DefaultOptions()
	opts.Instances = []string{"Bold", "*"}
	opts.Locations = []string{"wght=500", "wght=500"}
	settings, err := GenerateSettings(env.variable, env.variable, opts)
	env.Require().NoError(err)
	env.Equal([]string{"Bold", "Light", "wght=500"}, names(settings))
	opts.Instances = nil
	settings, err = GenerateSettings(env.variable, env.variable, opts)
	env.Require().NoError(err)
	env.Equal([]string{"wght=500"}, names(settings), "expected no instances when locations are given")
	opts.Locations = []string{"wght"}
	_, err = GenerateSettings(env.variable, env.variable, opts)
	env.Error(err)
}

func (env *CompareTestEnviron) TestMasterSettings() {
	opts := DefaultOptions()
	opts.Masters = true
	settings, err := GenerateSettings(env.variable, env.variable, opts)
	env.Require().NoError(err)
	env.Equal([]string{"Default", "wght=100", "wght=900"}, names(settings))
	settings, err = GenerateSettings(env.regular, env.regular, opts)
	env.Require().NoError(err)
	env.Equal([]string{"Default"}, names(settings))
}

func (env *CompareTestEnviron) TestCrossProduct() {
	opts := DefaultOptions()
	opts.CrossProduct = true
	settings, err := GenerateSettings(env.variable, env.narrow, opts)
	env.Require().NoError(err)
	env.Equal([]string{"wght=100", "wght=400", "wght=900"}, names(settings))
	opts.Splits = 2
	settings, err = GenerateSettings(env.narrow, env.narrow, opts)
	env.Require().NoError(err)
	env.Equal([]string{"wght=200", "wght=300", "wght=400", "wght=550", "wght=700"}, names(settings))
	env.Equal([]dfont.VariationSetting{
		{Tag: "wght", Value: 100}, {Tag: "wght", Value: 400}, {Tag: "wght", Value: 900},
	}, splitAxis("wght", dfont.AxisRange{Min: 100, Default: 400, Max: 900}, 1))
	env.Len(splitAxis("wght", dfont.AxisRange{Min: 400, Default: 400, Max: 900}, 1), 2)
}

func (env *CompareTestEnviron) TestIdenticalFonts() {
	opts := DefaultOptions()
	opts.Words = false
	a, b := *env.regular, *env.regular
	rep, err := Compare(&a, &b, opts)
	env.Require().NoError(err)
	env.Nil(rep.Tables)
	env.Nil(rep.Kerns)
	env.Require().NotNil(rep.CmapDiff)
	env.False(rep.CmapDiff.IsSomething())
	env.Require().Len(rep.Locations, 1, "expected single location to be kept")
	env.Equal("Default", rep.Locations[0].Location)
	env.False(rep.Locations[0].IsSomething())
}

func (env *CompareTestEnviron) TestRegularVersusBold() {
	opts := DefaultOptions()
	opts.Tables, opts.Kerns = false, false
	a, b := *env.regular, *env.bold
	rep, err := Compare(&a, &b, opts)
	env.Require().NoError(err)
	env.Require().Len(rep.Locations, 1)
	lr := rep.Locations[0]
	env.NotEmpty(lr.Glyphs)
	env.NotEmpty(lr.Words["Latin"])
	env.Empty(lr.Coords)
}

func (env *CompareTestEnviron) TestTableDifferences() {
	opts := DefaultOptions()
	opts.Glyphs, opts.Words = false, false
	a, b := *env.regular, *env.bold
	rep, err := Compare(&a, &b, opts)
	env.Require().NoError(err)
	env.Require().NotNil(rep.Tables)
	env.True(rep.Tables.Has("head") || rep.Tables.Has("error"))
	env.Nil(rep.Locations)
}

func (env *CompareTestEnviron) TestMissingInstances() {
	opts := DefaultOptions()
	opts.Tables, opts.Kerns = false, false
	opts.Instances = []string{"Light", "Bold"}
	a, b := *env.variable, *env.regular
	rep, err := Compare(&a, &b, opts)
	env.Require().NoError(err)
	env.Require().Len(rep.Locations, 2)
	env.Equal("New font does not contain instance 'Light'", rep.Locations[0].Error)
	env.Equal("Bold", rep.Locations[1].Location)
}

func (env *CompareTestEnviron) TestFailingLocation() {
	settings := []dfont.Setting{
		dfont.Default(),
		dfont.Location([]dfont.VariationSetting{{Tag: "wght", Value: 500}}),
		dfont.Instance("Bold"),
	}
	a, b := *env.variable, *env.variable
	var tested []string
	results := testSettings(&a, &b, settings, func(name string) (report.LocationResult, error) {
		tested = append(tested, name)
		if name == "wght=500" {
			return report.LocationResult{Glyphs: []render.GlyphDiff{{Char: "A"}}}, errors.New("cannot shape")
		}
		return report.LocationResult{Location: name}, nil
	})
	env.Equal([]string{"Default", "wght=500", "Bold"}, tested, "expected all locations to be tested")
	env.Require().Len(results, 3)
	env.Equal("wght=500", results[1].Location)
	env.Equal("cannot shape", results[1].Error)
	env.Empty(results[1].Glyphs)
	env.Empty(results[2].Error)
	env.Equal("Bold", results[2].Location)
}
