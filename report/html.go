package report

import (
	_ "embed"
	"fmt"
	"html/template"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"github.com/npillmayer/fontdiff/dfont"
	"github.com/npillmayer/fontdiff/otquery"
	"github.com/npillmayer/fontdiff/render"
)

//go:embed templates/fontdiff.html
var htmlTemplate string

var page = template.Must(template.New("fontdiff").Parse(htmlTemplate))

// HTMLReporter writes a report as an HTML page into a directory, together
// with copies of both fonts and PNG renderings of every glyph and word
// rendered differently.
type HTMLReporter struct {
	OutputDir string
	OldName   string // file name of the old font
	NewName   string // file name of the new font
}

// Write writes the page for a report on fonts a and b and returns the path
// of the page. Renderings are made at the coordinates of each location
// result, which leaves both fonts positioned at the last location.
func (hr HTMLReporter) Write(r *Report, a, b *dfont.DFont) (string, error) {
	if err := os.MkdirAll(hr.OutputDir, 0o755); err != nil {
		return "", err
	}
	data := pageData{
		Title:   fmt.Sprintf("%s %s", a.FamilyName(), a.StyleName()),
		OldFont: "old-" + nameOr(hr.OldName, "font.ttf"),
		NewFont: "new-" + nameOr(hr.NewName, "font.ttf"),
		Cmap:    r.CmapDiff,
	}
	if err := hr.writeFile(data.OldFont, a.Backing); err != nil {
		return "", err
	}
	if err := hr.writeFile(data.NewFont, b.Backing); err != nil {
		return "", err
	}
	if r.Tables != nil {
		data.Tables = r.Tables.Indent()
	}
	if r.Kerns != nil {
		data.Kerns = r.Kerns.Indent()
	}
	for i, lr := range r.Locations {
		view, err := hr.location(i, lr, a, b)
		if err != nil {
			return "", err
		}
		data.Locations = append(data.Locations, view)
	}
	path := filepath.Join(hr.OutputDir, "fontdiff.html")
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	if err := page.Execute(f, data); err != nil {
		return "", err
	}
	tracer().Infof("wrote report to %s", path)
	return path, nil
}

type pageData struct {
	Title            string
	OldFont, NewFont string
	Tables, Kerns    string
	Cmap             *render.CmapDiff
	Locations        []locationView
}

type locationView struct {
	Name      string
	Error     string
	Glyphs    []itemView
	Wordlists []wordlistView
}

type wordlistView struct {
	Name  string
	Words []itemView
}

type itemView struct {
	Text, Unicode, Name string
	Pixels              int
	ImageA, ImageB      string
	BufferA, BufferB    string
}

func (hr HTMLReporter) location(index int, lr LocationResult, a, b *dfont.DFont) (locationView, error) {
	view := locationView{Name: lr.Location, Error: lr.Error}
	if !lr.IsSomething() || lr.Error != "" {
		return view, nil
	}
	loc := make([]dfont.VariationSetting, 0, len(lr.Coords))
	for _, tag := range lr.AxisTags() {
		loc = append(loc, dfont.VariationSetting{Tag: tag, Value: lr.Coords[tag]})
	}
	if err := dfont.Location(loc).SetOnFonts(a, b); err != nil {
		return view, err
	}
	if len(lr.Glyphs) > 0 {
		ra, rb, err := renderers(a, b, render.DefaultGlyphsFontSize, "")
		if err != nil {
			return view, err
		}
		for i, g := range lr.Glyphs {
			item := itemView{Text: g.Char, Unicode: g.Unicode, Name: g.Name, Pixels: g.DifferingPixels}
			prefix := fmt.Sprintf("loc%d-glyph%d", index, i)
			if item.ImageA, item.ImageB, err = hr.renderPair(prefix, g.Char, ra, rb); err != nil {
				return view, err
			}
			view.Glyphs = append(view.Glyphs, item)
		}
	}
	for j, name := range lr.Wordlists() {
		ra, rb, err := renderers(a, b, render.DefaultWordsFontSize, name)
		if err != nil {
			return view, err
		}
		wl := wordlistView{Name: name}
		for i, d := range lr.Words[name] {
			item := itemView{Text: d.Word, Pixels: d.DifferingPixels, BufferA: d.BufferA}
			if d.BufferB != nil {
				item.BufferB = *d.BufferB
			}
			prefix := fmt.Sprintf("loc%d-list%d-word%d", index, j, i)
			if item.ImageA, item.ImageB, err = hr.renderPair(prefix, d.Word, ra, rb); err != nil {
				return view, err
			}
			wl.Words = append(wl.Words, item)
		}
		view.Wordlists = append(view.Wordlists, wl)
	}
	return view, nil
}

// renderers creates renderers for both fonts. Wordlists named after a script
// are shaped in that script.
func renderers(a, b *dfont.DFont, size float32, wordlist string) (*render.Renderer, *render.Renderer, error) {
	script, ok := otquery.ScriptByName(wordlist)
	if !ok {
		script = 0
	}
	dir := render.DirectionFromScript(wordlist)
	ra, err := render.NewRenderer(a, size, dir, script)
	if err != nil {
		return nil, nil, err
	}
	rb, err := render.NewRenderer(b, size, dir, script)
	return ra, rb, err
}

// renderPair writes PNG images of a text rendered with both renderers and
// returns the file names. Texts which cannot be shaped or have no ink
// yield no image.
func (hr HTMLReporter) renderPair(prefix, text string, ra, rb *render.Renderer) (string, string, error) {
	var names [2]string
	for i, r := range []*render.Renderer{ra, rb} {
		_, img, ok := r.RenderString(text)
		if !ok || img.Bounds().Empty() {
			continue
		}
		names[i] = fmt.Sprintf("%s-%c.png", prefix, 'a'+i)
		if err := hr.writePNG(names[i], img); err != nil {
			return "", "", err
		}
	}
	return names[0], names[1], nil
}

// writePNG writes a coverage image as black ink on white.
func (hr HTMLReporter) writePNG(name string, coverage *image.Alpha) error {
	bounds := coverage.Bounds()
	img := image.NewGray(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			img.SetGray(x, y, color.Gray{Y: 255 - coverage.AlphaAt(x, y).A})
		}
	}
	f, err := os.Create(filepath.Join(hr.OutputDir, name))
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (hr HTMLReporter) writeFile(name string, data []byte) error {
	return os.WriteFile(filepath.Join(hr.OutputDir, name), data, 0o644)
}

func nameOr(name, fallback string) string {
	if name == "" {
		return fallback
	}
	return filepath.Base(name)
}
