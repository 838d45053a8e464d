package fontdiff

import (
	"github.com/npillmayer/fontdiff/dfont"
	"github.com/npillmayer/fontdiff/report"
	"github.com/npillmayer/fontdiff/render"
	"github.com/npillmayer/fontdiff/ttj"
)

// Compare runs the tests selected by opts on an old font a and a new font b.
//
// Rendering tests move both fonts to each location tested. A location which
// cannot be set on both fonts, or whose rendering fails, is reported with an
// error and does not stop the other locations from being tested. If more than one
// location is tested, locations without differences are left out of the
// report.
func Compare(a, b *dfont.DFont, opts Options) (*report.Report, error) {
	rep := &report.Report{}
	if opts.MaxChanges <= 0 {
		opts.MaxChanges = DefaultMaxChanges
	}
	if opts.Tables {
		tracer().Infof("Diffing binary tables")
		if d := ttj.TableDiff(a.Font, b.Font, opts.MaxChanges, opts.NoMatch); ttj.IsSomething(d) {
			rep.Tables = &d
		}
	}
	if opts.Kerns {
		tracer().Infof("Diffing kerning")
		if d := ttj.KernDiff(a.Font, b.Font, opts.MaxChanges, opts.NoMatch); ttj.IsSomething(d) {
			rep.Kerns = &d
		}
	}
	if opts.Glyphs {
		cd := render.NewCmapDiff(a, b)
		rep.CmapDiff = &cd
	}
	if !opts.Glyphs && !opts.Words {
		return rep, nil
	}
	settings, err := GenerateSettings(a, b, opts)
	if err != nil {
		return nil, err
	}
	rep.Locations = testSettings(a, b, settings, func(name string) (report.LocationResult, error) {
		return testAtLocation(a, b, name, opts)
	})
	if len(rep.Locations) > 1 {
		var interesting []report.LocationResult
		for _, lr := range rep.Locations {
			if lr.IsSomething() {
				interesting = append(interesting, lr)
			}
		}
		rep.Locations = interesting
	}
	return rep, nil
}

// testSettings moves both fonts to each setting in turn and runs test there.
// A setting which cannot be applied or whose test fails is recorded as an
// error result; the remaining settings are tested nevertheless.
func testSettings(a, b *dfont.DFont, settings []dfont.Setting,
	test func(name string) (report.LocationResult, error)) []report.LocationResult {
	//
	results := make([]report.LocationResult, 0, len(settings))
	for _, setting := range settings {
		name := setting.Name()
		tracer().Infof("Testing %s", name)
		if err := setting.SetOnFonts(a, b); err != nil {
			tracer().Errorf("cannot test %s: %v", name, err)
			results = append(results, report.ErrorResult(name, err))
			continue
		}
		lr, err := test(name)
		if err != nil {
			tracer().Errorf("testing %s failed: %v", name, err)
			lr.Location, lr.Error = name, err.Error()
			lr.Glyphs, lr.Words = nil, nil
		}
		results = append(results, lr)
	}
	return results
}

func testAtLocation(a, b *dfont.DFont, name string, opts Options) (report.LocationResult, error) {
	lr := report.LocationResult{Location: name}
	if len(a.Location) > 0 {
		lr.Coords = make(map[string]float64, len(a.Location))
		for _, vs := range a.Location {
			lr.Coords[vs.Tag] = vs.Value
		}
	}
	var err error
	if opts.Glyphs {
		if lr.Glyphs, err = render.ModifiedEncodedGlyphs(a, b, opts.glyphOptions()); err != nil {
			return lr, err
		}
	}
	if opts.Words {
		if lr.Words, err = render.TestFontWords(a, b, opts.CustomWordlists, opts.wordOptions()); err != nil {
			return lr, err
		}
	}
	return lr, nil
}
