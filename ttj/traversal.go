package ttj

import (
	"github.com/npillmayer/fontdiff/ot"
)

// Serializers for tables without glyph keyed content. They follow the field
// structure of the tables, using snake case field names.

func floats(values []float64) Document {
	arr := NewArray()
	for _, v := range values {
		arr.Append(Number(v))
	}
	return arr
}

func ints[T ~uint16 | ~int16 | ~uint32 | ~int32](values []T) Document {
	arr := NewArray()
	for _, v := range values {
		arr.Append(Int(v))
	}
	return arr
}

func serializeVMtx(otf *ot.Font) (Document, error) {
	vmtx, err := otf.VMetrics()
	if err != nil {
		return Null(), err
	}
	doc := NewMap()
	metrics := NewArray()
	for i, adv := range vmtx.Advances {
		m := NewMap()
		m.Set("advance", Int(adv))
		m.Set("side_bearing", Int(vmtx.SideBearing(ot.GlyphIndex(i))))
		metrics.Append(m)
	}
	doc.Set("v_metrics", metrics)
	if len(vmtx.SideBearings) > len(vmtx.Advances) {
		doc.Set("top_side_bearings", ints(vmtx.SideBearings[len(vmtx.Advances):]))
	}
	return doc, nil
}

func serializeFVar(otf *ot.Font) (Document, error) {
	fvar, err := otf.FVar()
	if err != nil {
		return Null(), err
	}
	doc := NewMap()
	doc.Set("version", Int(fvar.Version))
	axes := NewArray()
	for _, a := range fvar.Axes {
		axis := NewMap()
		axis.Set("axis_tag", String(a.Tag.String()))
		axis.Set("min_value", Number(a.Min))
		axis.Set("default_value", Number(a.Default))
		axis.Set("max_value", Number(a.Max))
		axis.Set("flags", Int(a.Flags))
		axis.Set("axis_name_id", Int(a.NameID))
		axes.Append(axis)
	}
	doc.Set("axes", axes)
	instances := NewArray()
	for _, inst := range fvar.Instances {
		m := NewMap()
		m.Set("subfamily_name_id", Int(inst.SubfamilyNameID))
		m.Set("flags", Int(inst.Flags))
		m.Set("coordinates", floats(inst.Coordinates))
		if inst.PostScriptNameID != 0xFFFF {
			m.Set("post_script_name_id", Int(inst.PostScriptNameID))
		}
		instances.Append(m)
	}
	doc.Set("instances", instances)
	return doc, nil
}

func serializeAVar(otf *ot.Font) (Document, error) {
	avar, err := otf.AVar()
	if err != nil {
		return Null(), err
	}
	doc := NewMap()
	doc.Set("version", Int(avar.Version))
	segmentMaps := NewArray()
	for _, maps := range avar.SegmentMaps {
		valueMaps := NewArray()
		for _, m := range maps {
			vm := NewMap()
			vm.Set("from_coordinate", Number(m.From))
			vm.Set("to_coordinate", Number(m.To))
			valueMaps.Append(vm)
		}
		sm := NewMap()
		sm.Set("axis_value_maps", valueMaps)
		segmentMaps.Append(sm)
	}
	doc.Set("axis_segment_maps", segmentMaps)
	return doc, nil
}

func serializeVarStore(ivs *ot.ItemVariationStore) Document {
	if ivs == nil {
		return Null()
	}
	doc := NewMap()
	doc.Set("format", Int(ivs.Format))
	regions := NewArray()
	for _, region := range ivs.Regions {
		axes := NewArray()
		for _, ra := range region {
			a := NewMap()
			a.Set("start_coord", Number(ra.Start))
			a.Set("peak_coord", Number(ra.Peak))
			a.Set("end_coord", Number(ra.End))
			axes.Append(a)
		}
		r := NewMap()
		r.Set("region_axes", axes)
		regions.Append(r)
	}
	doc.Set("variation_regions", regions)
	data := NewArray()
	for _, ivd := range ivs.Data {
		d := NewMap()
		d.Set("region_indexes", ints(ivd.RegionIndices))
		deltaSets := NewArray()
		for _, row := range ivd.Deltas {
			deltaSets.Append(ints(row))
		}
		d.Set("delta_sets", deltaSets)
		data.Append(d)
	}
	doc.Set("item_variation_data", data)
	return doc
}

func serializeDeltaSetIndexMap(m *ot.DeltaSetIndexMap) Document {
	if m == nil {
		return Null()
	}
	arr := NewArray()
	for i := range m.Outer {
		arr.Append(NewArray(Int(m.Outer[i]), Int(m.Inner[i])))
	}
	return arr
}

func serializeMetricsVariations(otf *ot.Font, tag ot.Tag) (Document, error) {
	var mv *ot.MetricsVariations
	var err error
	if tag == ot.T("VVAR") {
		mv, err = otf.VVar()
	} else {
		mv, err = otf.HVar()
	}
	if err != nil {
		return Null(), err
	}
	doc := NewMap()
	doc.Set("version", Int(mv.Version))
	doc.Set("item_variation_store", serializeVarStore(mv.VarStore))
	doc.Set("advance_mapping", serializeDeltaSetIndexMap(mv.AdvanceMapping))
	doc.Set("start_mapping", serializeDeltaSetIndexMap(mv.StartMapping))
	doc.Set("end_mapping", serializeDeltaSetIndexMap(mv.EndMapping))
	if tag == ot.T("VVAR") {
		doc.Set("origin_mapping", serializeDeltaSetIndexMap(mv.OriginMapping))
	}
	return doc, nil
}

func serializeMVar(otf *ot.Font) (Document, error) {
	mvar, err := otf.MVar()
	if err != nil {
		return Null(), err
	}
	doc := NewMap()
	doc.Set("version", Int(mvar.Version))
	records := NewArray()
	for _, rec := range mvar.Records {
		r := NewMap()
		r.Set("value_tag", String(rec.Tag.String()))
		r.Set("delta_set_outer_index", Int(rec.Outer))
		r.Set("delta_set_inner_index", Int(rec.Inner))
		records.Append(r)
	}
	doc.Set("value_records", records)
	doc.Set("item_variation_store", serializeVarStore(mvar.VarStore))
	return doc, nil
}

func serializeLoca(otf *ot.Font) (Document, error) {
	loca, err := otf.Loca()
	if err != nil {
		return Null(), err
	}
	return ints(loca), nil
}

// serializeGlyf lists the glyph descriptions by glyph ID. Glyphs without
// outlines are null, components refer to glyphs by name.
func serializeGlyf(otf *ot.Font, ctx *SerializationContext) (Document, error) {
	glyf, err := otf.Glyf()
	if err != nil {
		return Null(), err
	}
	glyphs := NewArray()
	for i := range glyf.NumGlyphs() {
		g, err := glyf.Glyph(ot.GlyphIndex(i))
		if err != nil {
			glyphs.Append(String(CouldNotParse))
			continue
		}
		if g == nil {
			glyphs.Append(Null())
			continue
		}
		doc := NewMap()
		doc.Set("number_of_contours", Int(g.NumberOfContours))
		doc.Set("x_min", Int(g.XMin))
		doc.Set("y_min", Int(g.YMin))
		doc.Set("x_max", Int(g.XMax))
		doc.Set("y_max", Int(g.YMax))
		if g.IsComposite() {
			components := NewArray()
			for _, c := range g.Components {
				comp := NewMap()
				comp.Set("glyph", String(ctx.Name(c.Glyph)))
				comp.Set("flags", Int(c.Flags))
				comp.Set("arg1", Int(c.Arg1))
				comp.Set("arg2", Int(c.Arg2))
				if c.Transform != [4]float64{1, 0, 0, 1} {
					comp.Set("transform", floats(c.Transform[:]))
				}
				components.Append(comp)
			}
			doc.Set("components", components)
		} else {
			doc.Set("end_pts_of_contours", ints(g.EndPoints))
			points := NewArray()
			for _, p := range g.Points {
				points.Append(NewArray(Int(p.X), Int(p.Y), Bool(p.OnCurve)))
			}
			doc.Set("points", points)
		}
		doc.Set("instruction_length", Int(g.InstructionLength))
		glyphs.Append(doc)
	}
	return glyphs, nil
}

func serializeGVar(otf *ot.Font) (Document, error) {
	gvar, err := otf.GVar()
	if err != nil {
		return Null(), err
	}
	doc := NewMap()
	doc.Set("version", Int(gvar.Version))
	doc.Set("axis_count", Int(gvar.AxisCount))
	shared := NewArray()
	for _, t := range gvar.SharedTuples {
		shared.Append(floats(t))
	}
	doc.Set("shared_tuples", shared)
	variations := NewArray()
	for i := range gvar.NumGlyphs() {
		tuples, err := gvar.GlyphVariations(ot.GlyphIndex(i))
		if err != nil {
			variations.Append(String(CouldNotParse))
			continue
		}
		arr := NewArray()
		for _, tv := range tuples {
			t := NewMap()
			t.Set("peak", floats(tv.Peak))
			if tv.Start != nil {
				t.Set("start", floats(tv.Start))
				t.Set("end", floats(tv.End))
			}
			if tv.SharedIndex >= 0 {
				t.Set("shared_tuple_index", Int(tv.SharedIndex))
			}
			t.Set("private_points", Bool(tv.PrivatePoints))
			t.Set("data_size", Int(tv.DataSize))
			arr.Append(t)
		}
		variations.Append(arr)
	}
	doc.Set("glyph_variations", variations)
	return doc, nil
}

func serializeColr(otf *ot.Font, ctx *SerializationContext) (Document, error) {
	colr, err := otf.Colr()
	if err != nil {
		return Null(), err
	}
	doc := NewMap()
	doc.Set("version", Int(colr.Version))
	bases := NewArray()
	for _, cg := range colr.BaseGlyphs {
		layers := NewArray()
		for _, l := range cg.Layers {
			layer := NewMap()
			layer.Set("glyph", String(ctx.Name(l.Glyph)))
			layer.Set("palette_index", Int(l.PaletteIndex))
			layers.Append(layer)
		}
		b := NewMap()
		b.Set("glyph", String(ctx.Name(cg.Glyph)))
		b.Set("layers", layers)
		bases.Append(b)
	}
	doc.Set("base_glyph_records", bases)
	if colr.Version >= 1 {
		paints := NewArray()
		for _, pg := range colr.PaintGlyphs {
			p := NewMap()
			p.Set("glyph", String(ctx.Name(pg.Glyph)))
			p.Set("paint_format", Int(pg.PaintFormat))
			paints.Append(p)
		}
		doc.Set("base_glyph_paint_records", paints)
		doc.Set("num_layers", Int(colr.NumLayers))
	}
	return doc, nil
}

func serializeCPal(otf *ot.Font) (Document, error) {
	cpal, err := otf.CPal()
	if err != nil {
		return Null(), err
	}
	doc := NewMap()
	doc.Set("version", Int(cpal.Version))
	doc.Set("num_palette_entries", Int(cpal.NumEntries))
	palettes := NewArray()
	for _, palette := range cpal.Palettes {
		colors := make([]string, len(palette))
		for i, c := range palette {
			colors[i] = c.String()
		}
		palettes.Append(StringArray(colors))
	}
	doc.Set("palettes", palettes)
	return doc, nil
}

func serializeStat(otf *ot.Font) (Document, error) {
	stat, err := otf.Stat()
	if err != nil {
		return Null(), err
	}
	doc := NewMap()
	doc.Set("version", Int(stat.Version))
	axes := NewArray()
	for _, a := range stat.DesignAxes {
		axis := NewMap()
		axis.Set("axis_tag", String(a.Tag.String()))
		axis.Set("axis_name_id", Int(a.NameID))
		axis.Set("axis_ordering", Int(a.Ordering))
		axes.Append(axis)
	}
	doc.Set("design_axes", axes)
	values := NewArray()
	for _, av := range stat.AxisValues {
		v := NewMap()
		v.Set("format", Int(av.Format))
		v.Set("flags", Int(av.Flags))
		v.Set("value_name_id", Int(av.ValueNameID))
		switch av.Format {
		case 4:
			locs := NewArray()
			for _, l := range av.Locations {
				loc := NewMap()
				loc.Set("axis_index", Int(l.AxisIndex))
				loc.Set("value", Number(l.Value))
				locs.Append(loc)
			}
			v.Set("axis_values", locs)
		default:
			v.Set("axis_index", Int(av.AxisIndex))
			v.Set("value", Number(av.Value))
			if av.Format == 2 {
				v.Set("range_min_value", Number(av.RangeMin))
				v.Set("range_max_value", Number(av.RangeMax))
			}
			if av.Format == 3 {
				v.Set("linked_value", Number(av.LinkedValue))
			}
		}
		values.Append(v)
	}
	doc.Set("axis_values", values)
	doc.Set("elided_fallback_name_id", Int(stat.ElidedFallbackNameID))
	return doc, nil
}
