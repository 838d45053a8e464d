package render

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"math"
	"strconv"
	"strings"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"github.com/npillmayer/fontdiff/dfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// GlyphSeparator separates glyphs in a serialized glyph buffer.
const GlyphSeparator = "|"

// Renderer turns text into glyph outlines and bitmaps, for one font at the
// location in design space the font was positioned at when the renderer was
// created. A Renderer is not safe for concurrent use.
type Renderer struct {
	face      *font.Face
	shaper    shaping.HarfbuzzShaper
	size      float32
	direction di.Direction
	script    language.Script
	outlines  *OutlineCache
}

// NewRenderer creates a renderer for a font at a size in pixels. Direction
// and script are passed to the shaper as given. A zero script is guessed
// from the text to shape.
// Changing the location of df afterwards does not affect the renderer.
func NewRenderer(df *dfont.DFont, size float32, dir di.Direction, script language.Script) (*Renderer, error) {
	face, err := font.ParseTTF(bytes.NewReader(df.Backing))
	if err != nil {
		return nil, fmt.Errorf("cannot create renderer for %s: %w", df.FamilyName(), err)
	}
	if len(df.Location) > 0 {
		variations := make([]font.Variation, 0, len(df.Location))
		for _, vs := range df.Location {
			if len(vs.Tag) != 4 {
				tracer().Infof("ignoring invalid axis tag '%s'", vs.Tag)
				continue
			}
			variations = append(variations, font.Variation{
				Tag:   opentype.MustNewTag(vs.Tag),
				Value: float32(vs.Value),
			})
		}
		face.SetVariations(variations)
	}
	return &Renderer{
		face:      face,
		size:      size,
		direction: dir,
		script:    script,
		outlines:  NewOutlineCache(face, size),
	}, nil
}

// StringToPositionedGlyphs shapes a string and returns a serialized form of
// the glyph buffer together with the outlines of the glyphs at their
// positions. The serialized buffer lists glyph IDs, followed by
// "@xoffset,yoffset" for glyphs with an offset, separated by GlyphSeparator.
// If shaping results in no glyphs, ok is false.
func (r *Renderer) StringToPositionedGlyphs(text string) (buffer string, path Path, ok bool) {
	runes := []rune(text)
	if len(runes) == 0 {
		return "", nil, false
	}
	script := r.script
	if script == 0 {
		script = guessScript(runes)
	}
	out := r.shaper.Shape(shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: r.direction,
		Face:      r.face,
		Size:      fixed.Int26_6(math.Round(float64(r.size) * 64)),
		Script:    script,
	})
	if len(out.Glyphs) == 0 {
		return "", nil, false
	}
	var sb strings.Builder
	var cursorX, cursorY float32
	for i, g := range out.Glyphs {
		x := cursorX + fromFixed(g.XOffset)
		y := cursorY + fromFixed(g.YOffset)
		r.outlines.Draw(g.GlyphID, x, y, &path)
		if i > 0 {
			sb.WriteString(GlyphSeparator)
		}
		sb.WriteString(strconv.Itoa(int(g.GlyphID)))
		if g.XOffset != 0 || g.YOffset != 0 {
			fmt.Fprintf(&sb, "@%d,%d", int32(g.XOffset), int32(g.YOffset))
		}
		cursorX += fromFixed(g.XAdvance)
		cursorY += fromFixed(g.YAdvance)
	}
	return sb.String(), path, true
}

// RenderString shapes and rasterizes a string.
func (r *Renderer) RenderString(text string) (string, *image.Alpha, bool) {
	buffer, path, ok := r.StringToPositionedGlyphs(text)
	if !ok {
		return "", nil, false
	}
	return buffer, RenderPositionedGlyphs(path), true
}

// RenderPositionedGlyphs rasterizes a path into a coverage image. The image
// spans the bounding box of the path, which includes the origin. Its bounds
// are in pixel space relative to the pen origin: x grows to the right, y
// grows downwards, and the row above y = 0 is the lowest row of ink on or
// above the baseline. Renderings of different paths thus share a common
// baseline and origin.
func RenderPositionedGlyphs(path Path) *image.Alpha {
	lo, hi := path.BoundingBox()
	left := float32(math.Floor(float64(lo.X)))
	bottom := float32(math.Floor(float64(lo.Y)))
	top := float32(math.Ceil(float64(hi.Y)))
	w := int(math.Ceil(float64(hi.X - left)))
	h := int(top - bottom)
	img := image.NewAlpha(image.Rect(int(left), -int(top), int(left)+w, -int(top)+h))
	if w == 0 || h == 0 {
		return img
	}
	// image coordinates grow downwards
	pt := func(p Point) (float32, float32) {
		return p.X - left, top - p.Y
	}
	z := vector.NewRasterizer(w, h)
	z.DrawOp = draw.Src
	for _, c := range path {
		switch c.Op {
		case MoveTo:
			z.MoveTo(pt(c.Points[0]))
		case LineTo:
			z.LineTo(pt(c.Points[0]))
		case QuadTo:
			bx, by := pt(c.Points[0])
			cx, cy := pt(c.Points[1])
			z.QuadTo(bx, by, cx, cy)
		case CubeTo:
			bx, by := pt(c.Points[0])
			cx, cy := pt(c.Points[1])
			dx, dy := pt(c.Points[2])
			z.CubeTo(bx, by, cx, cy, dx, dy)
		case Close:
			z.ClosePath()
		}
	}
	z.Draw(img, img.Bounds(), image.Opaque, image.Point{})
	return img
}

// CountDifferences compares two coverage images and returns the number of
// pixels differing by more than fuzz. Pixels are matched by their position
// in pixel space, so renderings from RenderPositionedGlyphs are compared
// baseline to baseline. Outside of its bounds, an image has zero coverage.
func CountDifferences(a, b *image.Alpha, fuzz uint8) int {
	r := a.Bounds().Union(b.Bounds())
	count := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			d := int(a.AlphaAt(x, y).A) - int(b.AlphaAt(x, y).A)
			if d < 0 {
				d = -d
			}
			if d > int(fuzz) {
				count++
			}
		}
	}
	return count
}

// guessScript returns the script of the first character of a text belonging
// to a specific script, or Common.
func guessScript(runes []rune) language.Script {
	for _, r := range runes {
		if s := language.LookupScript(r); s.Strong() && s != language.Unknown {
			return s
		}
	}
	return language.Common
}

func fromFixed(v fixed.Int26_6) float32 {
	return float32(v) / 64
}
