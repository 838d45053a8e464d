package ot

import "fmt"

// PostTable holds the glyph names of table 'post'. Formats 1.0, 2.0 and 2.5
// carry glyph names; format 3.0 does not.
type PostTable struct {
	Version    uint32
	GlyphNames []string // nil if the table carries no glyph names
}

// Post decodes the glyph names of table 'post'.
func (otf *Font) Post() (*PostTable, error) {
	b, err := otf.tableData(T("post"))
	if err != nil {
		return nil, err
	}
	post, err := parsePost(b, otf.NumGlyphs())
	return post, otf.ec.tableError(T("post"), "GlyphNames", err)
}

// GlyphName returns the 'post' name of glyph g, or "".
func (post *PostTable) GlyphName(g GlyphIndex) string {
	if post == nil || int(g) >= len(post.GlyphNames) {
		return ""
	}
	return post.GlyphNames[g]
}

const postHeaderSize = 32

func parsePost(b binarySegm, numGlyphs int) (*PostTable, error) {
	if err := b.need(postHeaderSize, "post header"); err != nil {
		return nil, err
	}
	post := &PostTable{Version: b.U32(0)}
	switch post.Version {
	case 0x00010000:
		n := min(numGlyphs, len(macGlyphNames))
		post.GlyphNames = append([]string(nil), macGlyphNames[:n]...)
	case 0x00020000:
		count := int(b.U16(postHeaderSize))
		indices, err := b.uint16s(postHeaderSize+2, count)
		if err != nil {
			return nil, errFontFormat("post glyph name index truncated")
		}
		var custom []string
		for p := postHeaderSize + 2 + 2*count; p < len(b); {
			l := int(b[p])
			if p+1+l > len(b) {
				return nil, errFontFormat("post glyph name string truncated")
			}
			custom = append(custom, string(b[p+1:p+1+l]))
			p += 1 + l
		}
		post.GlyphNames = make([]string, count)
		for g, inx := range indices {
			switch {
			case int(inx) < len(macGlyphNames):
				post.GlyphNames[g] = macGlyphNames[inx]
			case int(inx)-len(macGlyphNames) < len(custom):
				post.GlyphNames[g] = custom[int(inx)-len(macGlyphNames)]
			default:
				return nil, errFontFormat(fmt.Sprintf("post glyph name index %d out of range", inx))
			}
		}
	case 0x00025000:
		count := numGlyphs
		if err := b.need(postHeaderSize+2+count, "post format 2.5 offsets"); err != nil {
			return nil, err
		}
		post.GlyphNames = make([]string, count)
		for g := range count {
			inx := g + int(int8(b[postHeaderSize+2+g]))
			if inx < 0 || inx >= len(macGlyphNames) {
				return nil, errFontFormat(fmt.Sprintf("post format 2.5 offset out of range for glyph %d", g))
			}
			post.GlyphNames[g] = macGlyphNames[inx]
		}
	}
	return post, nil
}

// The 258 standard Macintosh glyph names.
var macGlyphNames = [...]string{
	".notdef", ".null", "nonmarkingreturn", "space", "exclam", "quotedbl", "numbersign",
	"dollar", "percent", "ampersand", "quotesingle", "parenleft", "parenright",
	"asterisk", "plus", "comma", "hyphen", "period", "slash", "zero", "one", "two",
	"three", "four", "five", "six", "seven", "eight", "nine", "colon", "semicolon",
	"less", "equal", "greater", "question", "at", "A", "B", "C", "D", "E", "F", "G", "H",
	"I", "J", "K", "L", "M", "N", "O", "P", "Q", "R", "S", "T", "U", "V", "W", "X", "Y",
	"Z", "bracketleft", "backslash", "bracketright", "asciicircum", "underscore", "grave",
	"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l", "m", "n", "o", "p", "q",
	"r", "s", "t", "u", "v", "w", "x", "y", "z", "braceleft", "bar", "braceright",
	"asciitilde", "Adieresis", "Aring", "Ccedilla", "Eacute", "Ntilde", "Odieresis",
	"Udieresis", "aacute", "agrave", "acircumflex", "adieresis", "atilde", "aring",
	"ccedilla", "eacute", "egrave", "ecircumflex", "edieresis", "iacute", "igrave",
	"icircumflex", "idieresis", "ntilde", "oacute", "ograve", "ocircumflex", "odieresis",
	"otilde", "uacute", "ugrave", "ucircumflex", "udieresis", "dagger", "degree", "cent",
	"sterling", "section", "bullet", "paragraph", "germandbls", "registered", "copyright",
	"trademark", "acute", "dieresis", "notequal", "AE", "Oslash", "infinity", "plusminus",
	"lessequal", "greaterequal", "yen", "mu", "partialdiff", "summation", "product", "pi",
	"integral", "ordfeminine", "ordmasculine", "Omega", "ae", "oslash", "questiondown",
	"exclamdown", "logicalnot", "radical", "florin", "approxequal", "Delta",
	"guillemotleft", "guillemotright", "ellipsis", "nonbreakingspace", "Agrave", "Atilde",
	"Otilde", "OE", "oe", "endash", "emdash", "quotedblleft", "quotedblright",
	"quoteleft", "quoteright", "divide", "lozenge", "ydieresis", "Ydieresis", "fraction",
	"currency", "guilsinglleft", "guilsinglright", "fi", "fl", "daggerdbl",
	"periodcentered", "quotesinglbase", "quotedblbase", "perthousand", "Acircumflex",
	"Ecircumflex", "Aacute", "Edieresis", "Egrave", "Iacute", "Icircumflex", "Idieresis",
	"Igrave", "Oacute", "Ocircumflex", "apple", "Ograve", "Uacute", "Ucircumflex",
	"Ugrave", "dotlessi", "circumflex", "tilde", "macron", "breve", "dotaccent", "ring",
	"cedilla", "hungarumlaut", "ogonek", "caron", "Lslash", "lslash", "Scaron", "scaron",
	"Zcaron", "zcaron", "brokenbar", "Eth", "eth", "Yacute", "yacute", "Thorn", "thorn",
	"minus", "multiply", "onesuperior", "twosuperior", "threesuperior", "onehalf",
	"onequarter", "threequarters", "franc", "Gbreve", "gbreve", "Idotaccent", "Scedilla",
	"scedilla", "Cacute", "cacute", "Ccaron", "ccaron", "dcroat",
}
