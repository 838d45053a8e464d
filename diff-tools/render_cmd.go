package main

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/language"
	"github.com/npillmayer/fontdiff/otquery"
	"github.com/npillmayer/fontdiff/render"
	"github.com/thatisuday/commando"
)

// margin around a rendering, in pixels
const margin = 8

func runRenderCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	setupTracing(flags)
	df, _ := mustLoadFont(args["font"].Value)
	text := args["text"].Value
	if text == "" {
		fatalf("input text is empty")
	}
	if inst := mustFlagString(flags["instance"], "instance"); inst != "" {
		if err := df.SetInstance(inst); err != nil {
			fatalf("%v", err)
		}
	}
	if loc := mustFlagString(flags["location"], "location"); loc != "" {
		if err := df.SetLocation(loc); err != nil {
			fatalf("%v", err)
		}
	}
	script, err := parseScript(mustFlagString(flags["script"], "script"))
	if err != nil {
		fatalf("%v", err)
	}
	dir, explicit, err := parseDirection(mustFlagString(flags["direction"], "direction"))
	if err != nil {
		fatalf("%v", err)
	}
	if !explicit {
		dir = directionOf(text, script)
	}
	size := mustFlagInt(flags["size"], "size")
	if size <= 0 {
		fatalf("--size must be > 0")
	}
	outPath := mustFlagString(flags["output"], "output")
	if outPath == "" {
		fatalf("output path is empty")
	}
	r, err := render.NewRenderer(df, float32(size), dir, script)
	if err != nil {
		fatalf("%v", err)
	}
	buffer, coverage, ok := r.RenderString(text)
	if !ok {
		fatalf("shaping produced no glyphs")
	}
	if err := writeRenderingPNG(outPath, coverage); err != nil {
		fatalf("render failed: %v", err)
	}
	fmt.Printf("[%s]\n", buffer)
	fmt.Printf("wrote %s (%dx%d)\n", outPath, coverage.Bounds().Dx(), coverage.Bounds().Dy())
}

// directionOf derives the text direction from a script, or, if the script is
// not given, from the first character of the text with a distinct script.
func directionOf(text string, script language.Script) di.Direction {
	if script == 0 {
		for _, r := range text {
			if s := language.LookupScript(r); s.Strong() && s != language.Unknown {
				script = s
				break
			}
		}
	}
	if script == 0 {
		return di.DirectionLTR
	}
	return render.DirectionFromScript(otquery.ScriptName(script))
}

// writeRenderingPNG draws a coverage image in black onto a white canvas and
// saves it as a PNG file.
func writeRenderingPNG(outPath string, coverage *image.Alpha) error {
	cb := coverage.Bounds()
	img := image.NewRGBA(image.Rect(0, 0, cb.Dx()+2*margin, cb.Dy()+2*margin))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	dst := cb.Sub(cb.Min).Add(image.Pt(margin, margin))
	draw.DrawMask(img, dst, image.Black, image.Point{}, coverage, cb.Min, draw.Over)

	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("cannot create output directory: %w", err)
		}
	}
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("cannot create output file: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("cannot encode png: %w", err)
	}
	return nil
}
