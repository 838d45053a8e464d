/*
Package ot provides read-only access to OpenType font tables.

Package ot exposes the tables of a font to clients which need their
semantics, but it does not interpret them for any concrete purpose. For
example, it is not possible to ask package ot for a kerning distance between
two glyphs. Clients rather receive the GPOS lookup subtables and do with them
whatever they need to do. In the context of this module, the consumer is a
serializer which turns every table into a generic tree document.

Parsing is lazy. `Parse` checks the font header and the table directory, and
everything else is decoded on demand by one of the typed accessors, e.g.

	otf, err := ot.Parse(data)
	gpos, err := otf.GPos()
	cmap, err := otf.CMap()

A typed accessor returns ErrNoTable if a table is not present in the font.
Errors found while decoding a table are returned to the caller and recorded
with the font, see `Font.Errors`. A broken table never makes other tables
inaccessible.

Many fonts in the wild contain entries that, strictly speaking, infringe upon
the OpenType specification. Package ot tries to be lenient where a table is
still usable.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package ot

// Code comments often cite passages from the
// OpenType specification version 1.9;
// see https://docs.microsoft.com/en-us/typography/opentype/spec/.

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'font.opentype'
func tracer() tracing.Trace {
	return tracing.Select("font.opentype")
}
