/*
Package render shapes text with two fonts, rasterizes the results and
compares the bitmaps.

A Renderer is bound to one font at one location in design space, to a font
size, a text direction and a script. It turns a string into positioned glyph
outlines, which in turn may be rasterized into an 8-bit coverage image.
Outlines of glyphs are extracted once per Renderer and kept in an
OutlineCache.

DiffManyWords drives a pair of renderers over a list of words, using a pool
of workers, and collects the words whose renderings differ by more than a
threshold of pixels. Glyph sequences already compared for an earlier word
are skipped.

	results, err := render.DiffManyWords(a, b, words, render.DefaultOptions())

Above this, TestFontWords runs the word comparison for every script both
fonts support, and ModifiedEncodedGlyphs compares every shared encoded
character on its own.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package render

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fontdiff.render'
func tracer() tracing.Trace {
	return tracing.Select("fontdiff.render")
}
