package otquery

import (
	"github.com/npillmayer/fontdiff/ot"
)

// FontType returns the outline format of a font: "TrueType", "OpenType/CFF",
// "OpenType/CFF2" or "Unknown".
func FontType(otf *ot.Font) string {
	switch {
	case otf == nil:
		return "Unknown"
	case otf.HasTable(ot.T("glyf")):
		return "TrueType"
	case otf.HasTable(ot.T("CFF ")):
		return "OpenType/CFF"
	case otf.HasTable(ot.T("CFF2")):
		return "OpenType/CFF2"
	}
	return "Unknown"
}

// LayoutTables returns the tags of the layout tables present in a font.
func LayoutTables(otf *ot.Font) []string {
	var tables []string
	for _, tag := range []string{"GDEF", "GSUB", "GPOS", "BASE", "JSTF", "MATH"} {
		if otf.HasTable(ot.T(tag)) {
			tables = append(tables, tag)
		}
	}
	return tables
}

// IsVariable reports whether a font has variation axes.
func IsVariable(otf *ot.Font) bool {
	fvar, err := otf.FVar()
	return err == nil && len(fvar.Axes) > 0
}

// HeadTableInfo is a typed view over selected fields of table 'head'.
type HeadTableInfo struct {
	Version          string
	FontRevision     float64
	MagicNumber      uint32
	Flags            uint16
	UnitsPerEm       uint16
	XMin, YMin       int16
	XMax, YMax       int16
	MacStyle         uint16
	IndexToLocFormat int16
}

// HeadInfo decodes table 'head'.
// Returns (info, false) if the table is missing or too short.
func HeadInfo(otf *ot.Font) (HeadTableInfo, bool) {
	var info HeadTableInfo
	rec, err := otf.FlatRecord(ot.T("head"))
	if err != nil {
		return info, false
	}
	info.Version, _ = fieldString(rec, "version")
	info.FontRevision, _ = fieldFloat(rec, "font_revision")
	info.MagicNumber = uint32(fieldInt(rec, "magic_number"))
	info.Flags = uint16(fieldInt(rec, "flags"))
	info.UnitsPerEm = uint16(fieldInt(rec, "units_per_em"))
	info.XMin = int16(fieldInt(rec, "x_min"))
	info.YMin = int16(fieldInt(rec, "y_min"))
	info.XMax = int16(fieldInt(rec, "x_max"))
	info.YMax = int16(fieldInt(rec, "y_max"))
	info.MacStyle = uint16(fieldInt(rec, "mac_style"))
	info.IndexToLocFormat = int16(fieldInt(rec, "index_to_loc_format"))
	return info, true
}

// MaxPTableInfo is a typed view over selected fields of table 'maxp'.
type MaxPTableInfo struct {
	Version            float64
	NumGlyphs          uint16
	HasExtendedProfile bool // version 1.0 tables carry TrueType limits
	MaxPoints          uint16
	MaxContours        uint16
	MaxComponentDepth  uint16
}

// MaxPInfo decodes table 'maxp'.
// Returns (info, false) if the table is missing or too short.
func MaxPInfo(otf *ot.Font) (MaxPTableInfo, bool) {
	var info MaxPTableInfo
	rec, err := otf.FlatRecord(ot.T("maxp"))
	if err != nil {
		return info, false
	}
	info.Version, _ = fieldFloat(rec, "version")
	info.NumGlyphs = uint16(fieldInt(rec, "num_glyphs"))
	if _, ok := rec.Get("max_points"); ok {
		info.HasExtendedProfile = true
		info.MaxPoints = uint16(fieldInt(rec, "max_points"))
		info.MaxContours = uint16(fieldInt(rec, "max_contours"))
		info.MaxComponentDepth = uint16(fieldInt(rec, "max_component_depth"))
	}
	return info, true
}

func fieldInt(rec ot.Record, name string) int64 {
	if v, ok := rec.Get(name); ok {
		if n, ok := v.(int64); ok {
			return n
		}
	}
	return 0
}

func fieldFloat(rec ot.Record, name string) (float64, bool) {
	v, ok := rec.Get(name)
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	}
	return 0, false
}

func fieldString(rec ot.Record, name string) (string, bool) {
	if v, ok := rec.Get(name); ok {
		s, ok := v.(string)
		return s, ok
	}
	return "", false
}
