/*
Package fontload acquires font binaries for the command line tools.

A font is given either as a path to a font file or as the name of a font.
Names are resolved against the Go fonts compiled into the tools first, then
against the fonts installed on the system.
*/
package fontload

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/flopp/go-findfont"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
)

// tracer writes to trace with key 'fontdiff'
func tracer() tracing.Trace {
	return tracing.Select("fontdiff")
}

// ScalableFont is a font binary together with the path it has been loaded
// from and its full name.
type ScalableFont struct {
	Fontname string
	Filepath string // empty for packaged fonts
	Binary   []byte
}

var packaged = map[string][]byte{
	"go-regular": goregular.TTF,
	"go-bold":    gobold.TTF,
	"go-italic":  goitalic.TTF,
	"go-mono":    gomono.TTF,
}

// Load loads a font from a file, or, if no such file exists, resolves name
// as the name of a packaged or system font.
func Load(name string) (*ScalableFont, error) {
	if _, err := os.Stat(name); err == nil {
		return LoadOpenTypeFont(name)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	if bytez, ok := packaged[normalizeFontname(name)]; ok {
		tracer().Debugf("%s is a packaged font", name)
		return ParseOpenTypeFont(bytez)
	}
	fpath, err := findfont.Find(name)
	if err != nil || fpath == "" {
		return nil, fmt.Errorf("font not found: %s", name)
	}
	tracer().Debugf("%s is a system font at %s", name, fpath)
	return LoadOpenTypeFont(fpath)
}

// LoadOpenTypeFont loads an OpenType font (TTF or OTF) from a file.
func LoadOpenTypeFont(fontfile string) (*ScalableFont, error) {
	bytez, err := os.ReadFile(fontfile)
	if err != nil {
		return nil, err
	}
	f, err := ParseOpenTypeFont(bytez)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fontfile, err)
	}
	f.Filepath = fontfile
	return f, nil
}

// ParseOpenTypeFont checks that a binary is an OpenType font (TTF or OTF)
// and extracts its full name.
func ParseOpenTypeFont(fbytes []byte) (*ScalableFont, error) {
	f := &ScalableFont{Binary: fbytes}
	sf, err := sfnt.Parse(fbytes)
	if err != nil {
		return nil, err
	}
	if f.Fontname, err = sf.Name(nil, sfnt.NameIDFull); err != nil {
		f.Fontname = "Unknown"
	}
	tracer().Debugf("loaded and parsed SFNT %s", f.Fontname)
	return f, nil
}

// FileName returns the base name of the file a font has been loaded from,
// or a name derived from the font name for packaged fonts.
func (f *ScalableFont) FileName() string {
	if f.Filepath != "" {
		return filepath.Base(f.Filepath)
	}
	return strings.ReplaceAll(f.Fontname, " ", "-") + ".ttf"
}

func normalizeFontname(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.TrimSuffix(name, filepath.Ext(name))
	return strings.ReplaceAll(name, " ", "-")
}
