package ttj

import (
	"fmt"

	"github.com/npillmayer/fontdiff/ot"
)

// NameMap maps glyph IDs to glyph names. A NameMap is built once per font and
// is immutable afterwards.
type NameMap struct {
	names []string
}

// NewNameMap derives glyph names for every glyph of a font. Names are taken
// from table 'post' if possible. Glyphs without a 'post' name and with a
// code-point mapped to them get the AGLFN name of the lowest such code-point,
// or a name of the form uniXXXX resp. uXXXXX. All other glyphs are named
// glyph.NNNNN.
func NewNameMap(otf *ot.Font) *NameMap {
	n := otf.NumGlyphs()
	nm := &NameMap{names: make([]string, n)}
	post, err := otf.Post()
	if err != nil && err != ot.ErrNoTable {
		tracer().Infof("cannot use glyph names of table post: %v", err)
	}
	var reverse map[ot.GlyphIndex]rune
	if cmap, err := otf.CMap(); err == nil {
		reverse = cmap.ReverseMap()
	}
	for i := range n {
		gid := ot.GlyphIndex(i)
		if name := post.GlyphName(gid); name != "" {
			nm.names[i] = name
			continue
		}
		if r, ok := reverse[gid]; ok {
			nm.names[i] = glyphNameForRune(r)
			continue
		}
		nm.names[i] = fmt.Sprintf("glyph.%05d", i)
	}
	return nm
}

// NameMapFromNames creates a NameMap from a list of names, indexed by glyph ID.
func NameMapFromNames(names []string) *NameMap {
	return &NameMap{names: append([]string(nil), names...)}
}

func glyphNameForRune(r rune) string {
	if name, ok := aglfn[r]; ok {
		return name
	}
	if r <= 0xFFFF {
		return fmt.Sprintf("uni%04X", r)
	}
	return fmt.Sprintf("u%X", r)
}

// Get returns the name of a glyph. Glyph IDs outside the font are named
// gidNNN.
func (nm *NameMap) Get(gid ot.GlyphIndex) string {
	if nm == nil || int(gid) >= len(nm.names) {
		return fmt.Sprintf("gid%d", gid)
	}
	return nm.names[gid]
}

// Names returns a list of names for a list of glyph IDs.
func (nm *NameMap) Names(glyphs []ot.GlyphIndex) []string {
	names := make([]string, len(glyphs))
	for i, g := range glyphs {
		names[i] = nm.Get(g)
	}
	return names
}

// Len returns the number of glyphs named.
func (nm *NameMap) Len() int {
	if nm == nil {
		return 0
	}
	return len(nm.names)
}

// Compatible reports whether two NameMaps mostly agree. This is the case if
// less than a quarter of the glyph IDs present in both maps carry different
// names.
func (nm *NameMap) Compatible(other *NameMap) bool {
	n := min(nm.Len(), other.Len())
	differences := 0
	for i := range n {
		if nm.names[i] != other.names[i] {
			differences++
		}
	}
	tracer().Debugf("%d of %d glyph names differ", differences, nm.Len())
	return differences < nm.Len()/4
}
