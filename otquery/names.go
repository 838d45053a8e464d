package otquery

import (
	"github.com/npillmayer/fontdiff/ot"
)

// FamilyName returns the English (or first) family name of a font,
// or "Unknown".
func FamilyName(otf *ot.Font) string {
	if name, ok := englishName(otf, ot.NameFamily); ok {
		return name
	}
	return "Unknown"
}

// StyleName returns the English (or first) subfamily name of a font,
// or "Regular".
func StyleName(otf *ot.Font) string {
	if name, ok := englishName(otf, ot.NameSubfamily); ok {
		return name
	}
	return "Regular"
}

// LocalizedName returns a localized name from table 'name'.
func LocalizedName(otf *ot.Font, nameID uint16) (string, bool) {
	return englishName(otf, nameID)
}

// NameMatches reports whether any localization of name nameID equals s.
func NameMatches(otf *ot.Font, nameID uint16, s string) bool {
	names, err := otf.Names()
	if err != nil {
		return false
	}
	for _, value := range names.Localized(nameID) {
		if value == s {
			return true
		}
	}
	return false
}

var infoKeys = []struct {
	key string
	id  uint16
}{
	{"copyright", ot.NameCopyright},
	{"family", ot.NameFamily},
	{"subfamily", ot.NameSubfamily},
	{"unique", ot.NameUniqueID},
	{"fullname", ot.NameFull},
	{"version", ot.NameVersion},
	{"postscript", ot.NamePostScript},
	{"typographic-family", ot.NameTypographicFamily},
	{"typographic-subfamily", ot.NameTypographicSubfam},
}

// NameInfo returns a map with general font information, taken from table 'name'.
// Keys are
//
//	copyright, family, subfamily, unique, fullname, version, postscript,
//	typographic-family, typographic-subfamily
//
// Entries not present in the font are missing from the map.
func NameInfo(otf *ot.Font) map[string]string {
	info := make(map[string]string)
	names, err := otf.Names()
	if err != nil {
		tracer().Debugf("font has no usable name table: %v", err)
		return info
	}
	for _, k := range infoKeys {
		if value, ok := names.EnglishOrFirst(k.id); ok {
			info[k.key] = value
		}
	}
	return info
}

func englishName(otf *ot.Font, nameID uint16) (string, bool) {
	if otf == nil {
		return "", false
	}
	names, err := otf.Names()
	if err != nil {
		return "", false
	}
	name, ok := names.EnglishOrFirst(nameID)
	return name, ok && name != ""
}
