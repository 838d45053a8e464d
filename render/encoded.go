package render

import (
	"fmt"
	"slices"
	"unicode/utf8"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"github.com/go-text/typesetting/di"
	"github.com/npillmayer/fontdiff/dfont"
	"golang.org/x/text/unicode/runenames"
)

// EncodedGlyph is a character encoded in a font.
type EncodedGlyph struct {
	Char string `json:"string"`
	Name string `json:"name,omitempty"` // Unicode name of the character
}

// NewEncodedGlyph creates an EncodedGlyph for a code-point.
func NewEncodedGlyph(r rune) EncodedGlyph {
	return EncodedGlyph{Char: string(r), Name: runenames.Name(r)}
}

func (eg EncodedGlyph) String() string {
	r, _ := utf8.DecodeRuneInString(eg.Char)
	if eg.Name == "" {
		return fmt.Sprintf("%s (U+%04X)", eg.Char, r)
	}
	return fmt.Sprintf("%s (U+%04X) %s", eg.Char, r, eg.Name)
}

// CmapDiff lists the characters encoded in only one of two fonts.
type CmapDiff struct {
	Missing []EncodedGlyph `json:"missing,omitempty"` // encoded in the old font only
	New     []EncodedGlyph `json:"new,omitempty"`     // encoded in the new font only
}

// NewCmapDiff compares the encoded characters of two fonts. Both lists are
// ordered by code-point.
func NewCmapDiff(a, b *dfont.DFont) CmapDiff {
	return CmapDiff{
		Missing: encodedGlyphs(difference(a.Codepoints, b.Codepoints)),
		New:     encodedGlyphs(difference(b.Codepoints, a.Codepoints)),
	}
}

// IsSomething reports whether the fonts differ in encoded characters.
func (cd CmapDiff) IsSomething() bool {
	return len(cd.Missing) > 0 || len(cd.New) > 0
}

// GlyphDiff is a character rendered differently by two fonts.
type GlyphDiff struct {
	Char            string `json:"string"`
	Name            string `json:"name"`
	Unicode         string `json:"unicode"` // "U+" and the hexadecimal code-point
	DifferingPixels int    `json:"differing_pixels"`
}

// NewGlyphDiff creates a GlyphDiff from the difference of a single
// character word.
func NewGlyphDiff(d Difference) GlyphDiff {
	for _, r := range d.Word {
		return GlyphDiff{
			Char:            d.Word,
			Name:            runenames.Name(r),
			Unicode:         fmt.Sprintf("U+%04X", r),
			DifferingPixels: d.DifferingPixels,
		}
	}
	return GlyphDiff{}
}

// ModifiedEncodedGlyphs renders every character encoded in both fonts on its
// own and returns the characters rendered differently, most different first.
// Direction and script of opts are ignored; use GlyphOptions for the usual
// size and threshold.
func ModifiedEncodedGlyphs(a, b *dfont.DFont, opts DriverOptions) ([]GlyphDiff, error) {
	shared := intersection(a.Codepoints, b.Codepoints)
	words := make([]string, 0, shared.Size())
	for it := shared.Iterator(); it.Next(); {
		words = append(words, string(it.Value().(rune)))
	}
	opts.Direction, opts.Script, opts.Codepoints = di.DirectionLTR, 0, nil
	diffs, err := DiffManyWords(a, b, words, opts)
	if err != nil {
		return nil, err
	}
	glyphs := make([]GlyphDiff, len(diffs))
	for i, d := range diffs {
		glyphs[i] = NewGlyphDiff(d)
	}
	return glyphs, nil
}

// TestFontWords renders words of every script supported by both fonts, plus
// the words of custom wordlists, and returns the differences found per
// wordlist. Only wordlists with differences are included. Words using
// characters not encoded in both fonts are skipped.
func TestFontWords(a, b *dfont.DFont, custom []*Wordlist, opts DriverOptions) (map[string][]Difference, error) {
	var lists []*Wordlist
	scriptsB := b.SupportedScripts()
	for _, script := range a.SupportedScripts() {
		if !slices.Contains(scriptsB, script) {
			continue
		}
		if wl, ok := GetWordlist(script); ok {
			lists = append(lists, wl)
		}
	}
	lists = append(lists, custom...)
	opts.Codepoints = intersection(a.Codepoints, b.Codepoints)
	results := make(map[string][]Difference)
	for _, wl := range lists {
		opts.Direction = wl.Direction()
		opts.Script = wl.ScriptTag()
		tracer().Infof("testing %d words of wordlist %s", len(wl.Words), wl.Name)
		diffs, err := DiffManyWords(a, b, wl.Words, opts)
		if err != nil {
			return nil, err
		}
		if len(diffs) > 0 {
			results[wl.Name] = diffs
		}
	}
	return results, nil
}

func intersection(a, b *treeset.Set) *treeset.Set {
	set := treeset.NewWith(utils.RuneComparator)
	for it := a.Iterator(); it.Next(); {
		if b.Contains(it.Value()) {
			set.Add(it.Value())
		}
	}
	return set
}

func difference(a, b *treeset.Set) []rune {
	var runes []rune
	for it := a.Iterator(); it.Next(); {
		if !b.Contains(it.Value()) {
			runes = append(runes, it.Value().(rune))
		}
	}
	return runes
}

func encodedGlyphs(runes []rune) []EncodedGlyph {
	if len(runes) == 0 {
		return nil
	}
	glyphs := make([]EncodedGlyph, len(runes))
	for i, r := range runes {
		glyphs[i] = NewEncodedGlyph(r)
	}
	return glyphs
}
