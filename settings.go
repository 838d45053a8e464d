package fontdiff

import (
	"slices"

	"github.com/npillmayer/fontdiff/dfont"
)

// GenerateSettings derives the locations to test from the options.
//
// Instances named "*" stand for all named instances of both fonts. If
// neither instances, locations, masters nor a cross product are requested,
// all named instances are tested. If this yields no location, the default
// location is tested. Duplicate settings are removed.
func GenerateSettings(a, b *dfont.DFont, opts Options) ([]dfont.Setting, error) {
	instances := opts.Instances
	if len(instances) == 0 && len(opts.Locations) == 0 && !opts.Masters && !opts.CrossProduct {
		instances = []string{"*"}
	}
	var settings []dfont.Setting
	for _, inst := range instances {
		if inst != "*" {
			settings = append(settings, dfont.Instance(inst))
			continue
		}
		for _, name := range append(a.Instances(), b.Instances()...) {
			settings = append(settings, dfont.Instance(name))
		}
	}
	for _, loc := range opts.Locations {
		vs, err := dfont.ParseLocation(loc)
		if err != nil {
			return nil, err
		}
		settings = append(settings, dfont.Location(vs))
	}
	if opts.Masters {
		if masters, err := a.Masters(); err == nil {
			settings = append(settings, dfont.Default())
			for _, m := range masters {
				settings = append(settings, dfont.Location(m))
			}
		} else {
			tracer().Infof("cannot determine masters: %v", err)
		}
	}
	if opts.CrossProduct {
		settings = append(settings, crossProduct(a, b, max(1, opts.Splits))...)
	}
	if len(settings) == 0 {
		settings = append(settings, dfont.Default())
	}
	unique := settings[:0:0]
	for _, s := range settings {
		if !slices.ContainsFunc(unique, s.Equal) {
			unique = append(unique, s)
		}
	}
	return unique, nil
}

// crossProduct splits every axis of either font and returns all
// combinations of axis values. Axes present in both fonts span both ranges.
func crossProduct(a, b *dfont.DFont, splits int) []dfont.Setting {
	infoA, infoB := a.AxisInfo(), b.AxisInfo()
	tags := a.AxisTags()
	for _, tag := range b.AxisTags() {
		if !slices.Contains(tags, tag) {
			tags = append(tags, tag)
		}
	}
	if len(tags) == 0 {
		return nil
	}
	perAxis := make([][]dfont.VariationSetting, len(tags))
	for i, tag := range tags {
		ra, okA := infoA[tag]
		rb, okB := infoB[tag]
		switch {
		case okA && okB:
			ra = dfont.AxisRange{Min: min(ra.Min, rb.Min), Default: ra.Default, Max: max(ra.Max, rb.Max)}
		case okB:
			ra = rb
		}
		perAxis[i] = splitAxis(tag, ra, splits)
	}
	var settings []dfont.Setting
	combination := make([]dfont.VariationSetting, len(tags))
	var product func(int)
	product = func(axis int) {
		if axis == len(perAxis) {
			settings = append(settings, dfont.Location(slices.Clone(combination)))
			return
		}
		for _, vs := range perAxis[axis] {
			combination[axis] = vs
			product(axis + 1)
		}
	}
	product(0)
	return settings
}

// splitAxis returns the minimum, default and maximum of an axis, with
// splits-1 values in between each of them.
func splitAxis(tag string, r dfont.AxisRange, splits int) []dfont.VariationSetting {
	values := []float64{r.Min}
	step := (r.Default - r.Min) / float64(splits)
	for i := 1; i < splits; i++ {
		values = append(values, r.Min+step*float64(i))
	}
	values = append(values, r.Default)
	step = (r.Max - r.Default) / float64(splits)
	for i := 1; i < splits; i++ {
		values = append(values, r.Default+step*float64(i))
	}
	values = append(values, r.Max)
	values = slices.Compact(values)
	settings := make([]dfont.VariationSetting, len(values))
	for i, v := range values {
		settings[i] = dfont.VariationSetting{Tag: tag, Value: v}
	}
	return settings
}
