package dfont

import (
	"fmt"
	"math"
	"slices"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/npillmayer/fontdiff/ot"
	"github.com/npillmayer/fontdiff/otquery"
)

// DFont is a font binary together with a location in its design space.
//
// Location holds the user space settings selected, NormalizedLocation the
// resulting normalized coordinates, one per axis of table 'fvar' (with
// 'avar' applied). After changing Location, NormalizeLocation has to be
// called. For fonts without variations NormalizedLocation is empty.
type DFont struct {
	Backing            []byte
	Font               *ot.Font
	Location           []VariationSetting
	NormalizedLocation []float64
	Codepoints         *treeset.Set // encoded code-points, of type rune
	fvar               *ot.FVar
	avar               *ot.AVar
}

// New parses a font binary. The font is positioned at its default location.
func New(font []byte) (*DFont, error) {
	otf, err := ot.Parse(font)
	if err != nil {
		return nil, err
	}
	df := &DFont{
		Backing:    font,
		Font:       otf,
		Codepoints: otquery.Codepoints(otf),
	}
	if fvar, err := otf.FVar(); err == nil {
		df.fvar = fvar
		if avar, err := otf.AVar(); err == nil {
			df.avar = avar
		}
	} else if err != ot.ErrNoTable {
		tracer().Errorf("font variations of %s unusable: %v", otquery.FamilyName(otf), err)
	}
	df.NormalizeLocation()
	return df, nil
}

// IsVariable reports whether the font has variation axes.
func (df *DFont) IsVariable() bool {
	return df.fvar != nil && len(df.fvar.Axes) > 0
}

// NormalizeLocation derives the normalized location from the user space
// settings. Axes without a setting are at their default, settings for axes
// the font does not have are ignored.
func (df *DFont) NormalizeLocation() {
	if !df.IsVariable() {
		df.NormalizedLocation = nil
		return
	}
	df.NormalizedLocation = make([]float64, len(df.fvar.Axes))
	for i, axis := range df.fvar.Axes {
		v := axis.Default
		for _, vs := range df.Location {
			if ot.T(vs.Tag) == axis.Tag {
				v = vs.Value
			}
		}
		df.NormalizedLocation[i] = df.avar.Map(i, axis.Normalize(v))
	}
}

// SetLocation positions the font at a location given as "tag=value,...".
func (df *DFont) SetLocation(variations string) error {
	loc, err := ParseLocation(variations)
	if err != nil {
		return err
	}
	for _, vs := range loc {
		if _, _, ok := df.fvar.Axis(ot.T(vs.Tag)); !ok {
			tracer().Infof("font has no axis %s", vs.Tag)
		}
	}
	df.Location = loc
	df.NormalizeLocation()
	return nil
}

// Instances returns the names of the named instances of the font.
func (df *DFont) Instances() []string {
	if df.fvar == nil {
		return nil
	}
	names := make([]string, 0, len(df.fvar.Instances))
	for _, inst := range df.fvar.Instances {
		if name, ok := otquery.LocalizedName(df.Font, inst.SubfamilyNameID); ok {
			names = append(names, name)
		}
	}
	return names
}

// SetInstance positions the font at the location of a named instance. Any
// localization of the instance name is accepted.
func (df *DFont) SetInstance(name string) error {
	if df.fvar != nil {
		for _, inst := range df.fvar.Instances {
			if !otquery.NameMatches(df.Font, inst.SubfamilyNameID, name) {
				continue
			}
			df.Location = make([]VariationSetting, 0, len(df.fvar.Axes))
			for i, axis := range df.fvar.Axes {
				if i < len(inst.Coordinates) {
					df.Location = append(df.Location, VariationSetting{Tag: axis.Tag.String(), Value: inst.Coordinates[i]})
				}
			}
			df.NormalizeLocation()
			return nil
		}
	}
	return fmt.Errorf("No instance named %s", name)
}

// FamilyName returns the family name of the font, or "Unknown".
func (df *DFont) FamilyName() string {
	return otquery.FamilyName(df.Font)
}

// StyleName returns the subfamily name of the font, or "Regular".
func (df *DFont) StyleName() string {
	return otquery.StyleName(df.Font)
}

// AxisRange holds the minimum, default and maximum value of an axis.
type AxisRange struct {
	Min, Default, Max float64
}

// AxisInfo maps axis tags to their ranges.
func (df *DFont) AxisInfo() map[string]AxisRange {
	info := make(map[string]AxisRange)
	if df.fvar == nil {
		return info
	}
	for _, a := range df.fvar.Axes {
		info[a.Tag.String()] = AxisRange{Min: a.Min, Default: a.Default, Max: a.Max}
	}
	return info
}

// AxisTags returns the tags of the axes of the font, in font order.
func (df *DFont) AxisTags() []string {
	if df.fvar == nil {
		return nil
	}
	tags := make([]string, len(df.fvar.Axes))
	for i, a := range df.fvar.Axes {
		tags[i] = a.Tag.String()
	}
	return tags
}

// SupportedScripts returns the names of the scripts with at least one encoded
// character in the font.
func (df *DFont) SupportedScripts() []string {
	return otquery.SupportedScripts(df.Font)
}

// Masters returns the master locations of the font. They are guessed from
// the shared tuples of table 'gvar', which usually are the peaks of the
// masters the font was built from.
func (df *DFont) Masters() ([][]VariationSetting, error) {
	gvar, err := df.Font.GVar()
	if err != nil {
		return nil, err
	}
	masters := make([][]VariationSetting, 0, len(gvar.SharedTuples))
	for _, tuple := range gvar.SharedTuples {
		loc := df.fvar.DenormalizeLocation(tuple)
		master := make([]VariationSetting, len(loc))
		for i, av := range loc {
			master[i] = VariationSetting{Tag: av.Tag.String(), Value: av.Value}
		}
		masters = append(masters, master)
	}
	return masters, nil
}

// SharedAxes returns the axes present in both fonts, with the range both
// fonts support, together with the names of instances present in both fonts.
func SharedAxes(a, b *DFont) (map[string]AxisRange, []string) {
	axes := make(map[string]AxisRange)
	infoB := b.AxisInfo()
	for tag, ra := range a.AxisInfo() {
		rb, ok := infoB[tag]
		if !ok {
			continue
		}
		lo, hi := math.Max(ra.Min, rb.Min), math.Min(ra.Max, rb.Max)
		if lo > hi {
			continue
		}
		axes[tag] = AxisRange{Min: lo, Default: max(lo, min(hi, ra.Default)), Max: hi}
	}
	var instances []string
	instancesB := b.Instances()
	for _, name := range a.Instances() {
		if slices.Contains(instancesB, name) && !slices.Contains(instances, name) {
			instances = append(instances, name)
		}
	}
	return axes, instances
}
