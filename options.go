package fontdiff

import (
	"runtime"

	"github.com/npillmayer/fontdiff/render"
)

// DefaultMaxChanges is the number of changes on a level of a table delta
// above which the level is not reported in detail.
const DefaultMaxChanges = 128

// Options selects the tests of a comparison and the locations to test at.
type Options struct {
	Tables          bool               // compare binary tables
	Kerns           bool               // compare kerning pairs
	Glyphs          bool               // compare encoded characters and their renderings
	Words           bool               // compare renderings of words
	CustomWordlists []*render.Wordlist // tested in addition to the built-in lists
	MaxChanges      int
	NoMatch         bool // do not reconcile glyph names between the fonts
	Jobs            int  // number of rendering workers
	Instances       []string
	Locations       []string // as "tag=value,..."
	Masters         bool
	CrossProduct    bool
	Splits          int // number of segments between minimum, default and maximum of an axis
}

// DefaultOptions returns options for running all tests, at every named
// instance of the fonts.
func DefaultOptions() Options {
	return Options{
		Tables:     true,
		Kerns:      true,
		Glyphs:     true,
		Words:      true,
		MaxChanges: DefaultMaxChanges,
		Jobs:       runtime.NumCPU(),
		Splits:     1,
	}
}

func (opts Options) glyphOptions() render.DriverOptions {
	ro := render.GlyphOptions()
	if opts.Jobs > 0 {
		ro.Jobs = opts.Jobs
	}
	return ro
}

func (opts Options) wordOptions() render.DriverOptions {
	ro := render.DefaultOptions()
	if opts.Jobs > 0 {
		ro.Jobs = opts.Jobs
	}
	return ro
}
