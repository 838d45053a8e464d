package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/language"
	"github.com/npillmayer/fontdiff/dfont"
	"github.com/npillmayer/fontdiff/internal/fontload"
	"github.com/npillmayer/fontdiff/otquery"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/thatisuday/commando"
)

// tracer traces with key 'fontdiff'
func tracer() tracing.Trace {
	return tracing.Select("fontdiff")
}

func main() {
	commando.
		SetExecutableName("diff-tools").
		SetVersion("v0.1.0").
		SetDescription("CLI for comparing two versions of a font.")

	commando.
		Register(nil).
		AddFlag("verbose,v", "display additional output", commando.Bool, nil)

	commando.
		Register("diff").
		SetDescription("Compare tables, kerning, encoded glyphs and word renderings of two fonts.").
		SetShortDescription("compare two fonts").
		AddArgument("font1", "old font (file path or font name)", "").
		AddArgument("font2", "new font (file path or font name)", "").
		AddFlag("no-tables", "don't show diffs in font tables", commando.Bool, nil).
		AddFlag("no-kerns", "don't show diffs in kerning pairs", commando.Bool, nil).
		AddFlag("no-glyphs", "don't show diffs in glyph images", commando.Bool, nil).
		AddFlag("no-words", "don't show diffs in word images", commando.Bool, nil).
		AddFlag("custom-wordlists,w", "custom word list files (comma separated)", commando.String, "-").
		AddFlag("max-changes", "maximum number of changes to report on a level of a table", commando.Int, 128).
		AddFlag("no-match", "don't try to match glyph names between fonts", commando.Bool, nil).
		AddFlag("jobs,J", "number of rendering workers (0 uses one per CPU)", commando.Int, 0).
		AddFlag("instance,i", "instances to compare (comma separated, * for all)", commando.String, "-").
		AddFlag("location,l", "locations in user space, e.g. wght=400,wdth=100 (separate locations by ';')", commando.String, "-").
		AddFlag("masters,m", "compare at the masters detected from table gvar", commando.Bool, nil).
		AddFlag("cross-product,x", "compare at min/default/max of all axes", commando.Bool, nil).
		AddFlag("cross-product-splits", "number of segments between min, default and max", commando.Int, 1).
		AddFlag("json", "show diffs as JSON", commando.Bool, nil).
		AddFlag("pretty", "indent JSON", commando.Bool, nil).
		AddFlag("html", "write diffs as an HTML page", commando.Bool, nil).
		AddFlag("output,o", "output directory for HTML", commando.String, "out").
		AddFlag("no-succinct", "if an entry is absent in one font, show the data anyway", commando.Bool, nil).
		AddFlag("quiet,q", "log errors only", commando.Bool, nil).
		AddFlag("verbose,v", "log debug messages", commando.Bool, nil).
		SetAction(runDiffCommand)

	commando.
		Register("kerns").
		SetDescription("Compare the kerning pairs of two fonts.").
		SetShortDescription("compare kerning").
		AddArgument("font1", "old font (file path or font name)", "").
		AddArgument("font2", "new font (file path or font name)", "").
		AddFlag("max-changes", "maximum number of changes to report on a level", commando.Int, 128).
		AddFlag("no-match", "don't try to match glyph names between fonts", commando.Bool, nil).
		AddFlag("json", "show diffs as JSON", commando.Bool, nil).
		AddFlag("pretty", "indent JSON", commando.Bool, nil).
		AddFlag("quiet,q", "log errors only", commando.Bool, nil).
		AddFlag("verbose,v", "log debug messages", commando.Bool, nil).
		SetAction(runKernsCommand)

	commando.
		Register("ttj").
		SetDescription("Print the JSON serialization of a font, or of some of its tables.").
		SetShortDescription("serialize a font").
		AddArgument("font", "font (file path or font name)", "").
		AddFlag("table,t", "table tags to print (comma separated)", commando.String, "-").
		AddFlag("kerns,k", "print the flattened kerning pairs only", commando.Bool, nil).
		AddFlag("pretty", "indent JSON", commando.Bool, nil).
		AddFlag("quiet,q", "log errors only", commando.Bool, nil).
		AddFlag("verbose,v", "log debug messages", commando.Bool, nil).
		SetAction(runTTJCommand)

	commando.
		Register("render").
		SetDescription("Shape a text and render it to a PNG image.").
		SetShortDescription("render text").
		AddArgument("font", "font (file path or font name)", "").
		AddArgument("text...", "text to render (variadic argument parts joined by comma by commando)", "").
		AddFlag("size,s", "font size in pixels", commando.Int, 64).
		AddFlag("location,l", "location in user space, e.g. wght=700", commando.String, "-").
		AddFlag("instance,i", "named instance to render at", commando.String, "-").
		AddFlag("script", "script (ISO 15924 code or name, e.g. Arab, Latin)", commando.String, "-").
		AddFlag("direction,d", "direction: ltr|rtl", commando.String, "-").
		AddFlag("output,o", "output PNG file", commando.String, "diff-tools-render.png").
		AddFlag("quiet,q", "log errors only", commando.Bool, nil).
		AddFlag("verbose,v", "log debug messages", commando.Bool, nil).
		SetAction(runRenderCommand)

	commando.
		Register("instances").
		SetDescription("Print the axes, named instances and masters of a font, and the locations a comparison would test.").
		SetShortDescription("variation info").
		AddArgument("font1", "font (file path or font name)", "").
		AddArgument("font2", "optional second font", "").
		AddFlag("masters,m", "include masters in the locations tested", commando.Bool, nil).
		AddFlag("cross-product,x", "include the cross product of axis values", commando.Bool, nil).
		AddFlag("cross-product-splits", "number of segments between min, default and max", commando.Int, 1).
		AddFlag("quiet,q", "log errors only", commando.Bool, nil).
		AddFlag("verbose,v", "log debug messages", commando.Bool, nil).
		SetAction(runInstancesCommand)

	commando.
		Register("info").
		SetDescription("Print diagnostics and table information for a font.").
		SetShortDescription("font diagnostics").
		AddArgument("font", "font (file path or font name)", "").
		AddArgument("chars...", "optional characters to print glyph metrics for", "").
		AddFlag("script", "check table GSUB for a script (ISO 15924 code or name)", commando.String, "-").
		AddFlag("errors,e", "print parse errors and warnings", commando.Bool, nil).
		AddFlag("quiet,q", "log errors only", commando.Bool, nil).
		AddFlag("verbose,v", "log debug messages", commando.Bool, nil).
		SetAction(runInfoCommand)

	commando.Parse(nil)
}

// setupTracing configures the tracers of all packages of the module to log
// at Info level, or at Debug/Error level if requested by flag.
func setupTracing(flags map[string]commando.FlagValue) {
	level := traceLevel(mustFlagBool(flags["verbose"], "verbose"), mustFlagBool(flags["quiet"], "quiet"))
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":       "go",
		"trace.fontdiff":        level,
		"trace.font.opentype":   level,
		"trace.fontdiff.ttj":    level,
		"trace.fontdiff.render": level,
		"trace.fontdiff.report": level,
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fatalf("error configuring tracing: %v", err)
	}
	tracing.SetTraceSelector(trace2go.Selector())
}

func traceLevel(verbose, quiet bool) string {
	switch {
	case quiet:
		return "Error"
	case verbose:
		return "Debug"
	}
	return "Info"
}

// mustLoadFont loads a font by path or name and positions it at its default
// location.
func mustLoadFont(name string) (*dfont.DFont, *fontload.ScalableFont) {
	name = strings.TrimSpace(name)
	if name == "" {
		fatalf("font is required")
	}
	sf, err := fontload.Load(name)
	if err != nil {
		fatalf("cannot load font %s: %v", name, err)
	}
	df, err := dfont.New(sf.Binary)
	if err != nil {
		fatalf("cannot parse font %s: %v", name, err)
	}
	tracer().Infof("loaded %s (%s %s)", sf.Fontname, df.FamilyName(), df.StyleName())
	return df, sf
}

func parseDirection(s string) (di.Direction, bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "-":
		return di.DirectionLTR, false, nil
	case "ltr", "left-to-right":
		return di.DirectionLTR, true, nil
	case "rtl", "right-to-left":
		return di.DirectionRTL, true, nil
	default:
		return di.DirectionLTR, false, fmt.Errorf("unsupported direction %q (expected ltr|rtl)", s)
	}
}

// parseScript accepts ISO 15924 codes as well as script names. An empty
// script yields 0, which lets the renderer guess the script from the text.
func parseScript(s string) (language.Script, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "-" {
		return 0, nil
	}
	scr, ok := otquery.ScriptByName(s)
	if !ok {
		return 0, fmt.Errorf("invalid script %q", s)
	}
	return scr, nil
}

// splitList splits a flag value at sep, dropping empty entries. "-" is the
// marker for an absent value.
func splitList(value string, sep string) []string {
	value = strings.TrimSpace(value)
	if value == "-" {
		return nil
	}
	var items []string
	for _, item := range strings.Split(value, sep) {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func mustFlagString(flag commando.FlagValue, name string) string {
	s, err := flag.GetString()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	s = strings.TrimSpace(s)
	if s == "-" {
		return ""
	}
	return s
}

func mustFlagInt(flag commando.FlagValue, name string) int {
	n, err := flag.GetInt()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return n
}

func mustFlagBool(flag commando.FlagValue, name string) bool {
	b, err := flag.GetBool()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return b
}

func fatalf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(os.Stderr, "diff-tools: "+format+"\n", args...)
	os.Exit(1)
}
