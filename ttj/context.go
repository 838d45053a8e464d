package ttj

import (
	"math"

	"github.com/npillmayer/fontdiff/ot"
)

// SerializationContext bundles what serializers need besides a table: the
// glyph names to use and, for variable fonts, the regions of the GDEF item
// variation store. Regions are kept as peak tuples in normalized coordinates,
// together with their location in user space, formatted as "tag=value,...".
type SerializationContext struct {
	Font      *ot.Font
	Names     *NameMap
	Regions   [][]float64
	Locations []string
	varStore  *ot.ItemVariationStore
}

// NewSerializationContext prepares a context for serializing a font with a
// given set of glyph names. If names is nil, names are derived from the font.
func NewSerializationContext(otf *ot.Font, names *NameMap) *SerializationContext {
	if names == nil {
		names = NewNameMap(otf)
	}
	ctx := &SerializationContext{Font: otf, Names: names}
	gdef, err := otf.GDef()
	if err != nil || gdef.VarStore == nil {
		return ctx
	}
	ctx.varStore = gdef.VarStore
	fvar, fvarErr := otf.FVar()
	for _, region := range gdef.VarStore.Regions {
		peaks := make([]float64, len(region))
		for i, ra := range region {
			peaks[i] = ra.Peak
		}
		ctx.Regions = append(ctx.Regions, peaks)
		if fvarErr != nil || len(fvar.Axes) < len(peaks) {
			ctx.Locations = append(ctx.Locations, "Unknown")
			continue
		}
		ctx.Locations = append(ctx.Locations, ot.LocationString(fvar.DenormalizeLocation(peaks)))
	}
	tracer().Debugf("GDEF variation store has %d regions", len(ctx.Regions))
	return ctx
}

// Name is a shortcut for ctx.Names.Get(gid).
func (ctx *SerializationContext) Name(gid ot.GlyphIndex) string {
	return ctx.Names.Get(gid)
}

// variable serializes a value which may be varied by a delta-set of the GDEF
// item variation store. Without a variation index, the plain value is
// returned. Otherwise the result is a map from location to the value at that
// location, starting with "default". Only regions with a non-zero delta are
// listed.
func (ctx *SerializationContext) variable(value int16, device *ot.Device) Document {
	outer, inner, ok := device.VariationIndex()
	if !ok || ctx.varStore == nil {
		return Int(value)
	}
	m := NewMap()
	m.Set("default", Int(value))
	for i, peaks := range ctx.Regions {
		delta := math.Round(ctx.varStore.Delta(outer, inner, peaks))
		if delta == 0 {
			continue
		}
		m.Set(ctx.Locations[i], Number(float64(value)+delta))
	}
	return m
}
