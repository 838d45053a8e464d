package dfont

import (
	"fmt"
	"strconv"
	"strings"
)

// VariationSetting is a value for a variation axis, in user space.
type VariationSetting struct {
	Tag   string
	Value float64
}

func (vs VariationSetting) String() string {
	return vs.Tag + "=" + strconv.FormatFloat(vs.Value, 'f', -1, 32)
}

// ParseLocation parses a location of the form "wght=400,wdth=100". Settings
// may be separated by commas or blanks.
func ParseLocation(variations string) ([]VariationSetting, error) {
	var settings []VariationSetting
	fields := strings.FieldsFunc(variations, func(r rune) bool {
		return r == ',' || r == ' '
	})
	for _, f := range fields {
		axis, value, ok := strings.Cut(f, "=")
		if !ok {
			return nil, fmt.Errorf("couldn't parse value of axis '%s'", f)
		}
		if axis == "" {
			return nil, fmt.Errorf("couldn't parse axis in '%s'", f)
		}
		v, err := strconv.ParseFloat(value, 32)
		if err != nil {
			return nil, fmt.Errorf("couldn't parse value '%s' of axis %s", value, axis)
		}
		settings = append(settings, VariationSetting{Tag: axis, Value: v})
	}
	return settings, nil
}

// LocationName formats a list of settings as "tag=value,...", in the order
// given.
func LocationName(loc []VariationSetting) string {
	parts := make([]string, len(loc))
	for i, vs := range loc {
		parts[i] = vs.String()
	}
	return strings.Join(parts, ",")
}

// SettingKind tells how a Setting selects a location.
type SettingKind int8

// Kinds of settings
const (
	DefaultSetting SettingKind = iota
	InstanceSetting
	LocationSetting
)

// Setting is a location to test both fonts of a comparison at. It is either
// a named instance, an explicit location, or the default location.
type Setting struct {
	Kind     SettingKind
	Instance string
	Location []VariationSetting
}

// Instance creates a setting for a named instance.
func Instance(name string) Setting {
	return Setting{Kind: InstanceSetting, Instance: name}
}

// Location creates a setting for an explicit location.
func Location(loc []VariationSetting) Setting {
	return Setting{Kind: LocationSetting, Location: loc}
}

// Default is the setting for the default location of the fonts.
func Default() Setting {
	return Setting{Kind: DefaultSetting}
}

// Name returns the instance name, the location as "tag=value,..." or
// "Default".
func (s Setting) Name() string {
	switch s.Kind {
	case InstanceSetting:
		return s.Instance
	case LocationSetting:
		return LocationName(s.Location)
	}
	return "Default"
}

func (s Setting) String() string {
	switch s.Kind {
	case InstanceSetting:
		return s.Instance + " instance"
	case LocationSetting:
		return LocationName(s.Location)
	}
	return "default location"
}

// Equal reports whether two settings select the same location in the same
// way.
func (s Setting) Equal(other Setting) bool {
	return s.Kind == other.Kind && s.Name() == other.Name()
}

// SetOnFonts moves both fonts to the location of the setting.
func (s Setting) SetOnFonts(a, b *DFont) error {
	switch s.Kind {
	case InstanceSetting:
		if err := a.SetInstance(s.Instance); err != nil {
			return fmt.Errorf("Old font does not contain instance '%s'", s.Instance)
		}
		if err := b.SetInstance(s.Instance); err != nil {
			return fmt.Errorf("New font does not contain instance '%s'", s.Instance)
		}
	case LocationSetting:
		a.Location = append([]VariationSetting(nil), s.Location...)
		a.NormalizeLocation()
		b.Location = append([]VariationSetting(nil), s.Location...)
		b.NormalizeLocation()
	default:
		a.Location, b.Location = nil, nil
		a.NormalizeLocation()
		b.NormalizeLocation()
	}
	tracer().Debugf("font A location is %v, normalized %v", a.Location, a.NormalizedLocation)
	tracer().Debugf("font B location is %v, normalized %v", b.Location, b.NormalizedLocation)
	return nil
}
