package otquery

import (
	"sort"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"github.com/go-text/typesetting/language"
	"github.com/npillmayer/fontdiff/ot"
)

// Codepoints returns the set of code-points encoded in a font's cmap, ordered
// ascending. The set elements are of type rune.
func Codepoints(otf *ot.Font) *treeset.Set {
	set := treeset.NewWith(utils.RuneComparator)
	cmap, err := otf.CMap()
	if err != nil {
		tracer().Infof("font has no usable cmap: %v", err)
		return set
	}
	for r := range cmap.Mappings() {
		set.Add(r)
	}
	return set
}

// SupportedScripts returns the names of all scripts for which a font encodes
// at least one character, sorted by name. Characters of the Common,
// Inherited and Unknown scripts count as well.
func SupportedScripts(otf *ot.Font) []string {
	cmap, err := otf.CMap()
	if err != nil {
		return nil
	}
	seen := make(map[language.Script]struct{})
	for r := range cmap.Mappings() {
		seen[language.LookupScript(r)] = struct{}{}
	}
	scripts := make([]string, 0, len(seen))
	for s := range seen {
		scripts = append(scripts, ScriptName(s))
	}
	sort.Strings(scripts)
	return scripts
}

// ScriptName returns the English name of a script, e.g. "Latin". Scripts not
// known by name yield their ISO 15924 code.
func ScriptName(s language.Script) string {
	if name, ok := scriptNames[s]; ok {
		return name
	}
	return s.String()
}

// ScriptByName is the inverse of ScriptName. It accepts script names as
// well as 4-letter ISO 15924 codes, but only for scripts known to Unicode.
// "Unknown" (Zzzz) is not a script to shape with and is rejected.
func ScriptByName(name string) (language.Script, bool) {
	for s, n := range scriptNames {
		if n == name && s != language.Unknown {
			return s, true
		}
	}
	if len(name) != 4 {
		return language.Unknown, false
	}
	s, err := language.ParseScript(name)
	if err != nil || s == language.Unknown {
		return language.Unknown, false
	}
	if _, ok := scriptNames[s]; !ok {
		return language.Unknown, false
	}
	return s, true
}
