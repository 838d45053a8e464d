package ttj

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/npillmayer/fontdiff/ot"
)

// CouldNotParse is the serialization of a table which failed to decode.
const CouldNotParse = "Could not parse"

// FontToJSON serializes every table of a font into one map, keyed by table
// tag. If names is nil, glyph names are derived from the font itself.
//
// Tables consisting of plain fields are serialized field by field. Tables
// name, cmap, hmtx, GDEF, GSUB and GPOS are serialized into glyph name keyed
// structures and are always present in the result, possibly empty. Tables
// this package does not know about are serialized as arrays of bytes. A table
// which fails to decode is serialized as the string "Could not parse".
func FontToJSON(otf *ot.Font, names *NameMap) Document {
	ctx := NewSerializationContext(otf, names)
	doc := NewMap()
	for _, tag := range otf.TableTags() {
		value, err := serializeTable(otf, tag, ctx)
		if err != nil {
			tracer().Infof("cannot serialize table %s: %v", tag, err)
			value = String(CouldNotParse)
		}
		doc.Set(tag.String(), value)
	}
	doc.Set("name", serializeName(otf))
	doc.Set("cmap", serializeCMap(otf, ctx))
	doc.Set("hmtx", serializeHMtx(otf, ctx))
	if gdef, err := otf.GDef(); err == nil {
		doc.Set("GDEF", serializeGDef(gdef, ctx))
	} else {
		doc.Set("GDEF", layoutFallback(err))
	}
	for _, tag := range []string{"GPOS", "GSUB"} {
		var table *ot.LayoutTable
		var err error
		if tag == "GPOS" {
			table, err = otf.GPos()
		} else {
			table, err = otf.GSub()
		}
		if err != nil {
			doc.Set(tag, layoutFallback(err))
			continue
		}
		doc.Set(tag, serializeLayout(table, ctx))
	}
	return doc
}

func layoutFallback(err error) Document {
	if err != ot.ErrNoTable {
		tracer().Infof("cannot serialize layout table: %v", err)
	}
	return NewMap()
}

// serializeTable serializes tables which are not glyph-keyed.
func serializeTable(otf *ot.Font, tag ot.Tag, ctx *SerializationContext) (Document, error) {
	if ot.IsFlatRecordTable(tag) {
		rec, err := otf.FlatRecord(tag)
		if err != nil {
			return Null(), err
		}
		return serializeRecord(rec), nil
	}
	switch tag.String() {
	case "name", "cmap", "hmtx", "GDEF", "GPOS", "GSUB":
		return Null(), nil // replaced by glyph-keyed serializations
	case "vmtx":
		return serializeVMtx(otf)
	case "fvar":
		return serializeFVar(otf)
	case "avar":
		return serializeAVar(otf)
	case "HVAR", "VVAR":
		return serializeMetricsVariations(otf, tag)
	case "MVAR":
		return serializeMVar(otf)
	case "loca":
		return serializeLoca(otf)
	case "glyf":
		return serializeGlyf(otf, ctx)
	case "gvar":
		return serializeGVar(otf)
	case "COLR":
		return serializeColr(otf, ctx)
	case "CPAL":
		return serializeCPal(otf)
	case "STAT":
		return serializeStat(otf)
	}
	return bytesDump(otf.Table(tag).Binary()), nil
}

func bytesDump(data []byte) Document {
	arr := NewArray()
	for _, b := range data {
		arr.Append(Int(b))
	}
	return arr
}

func serializeRecord(rec ot.Record) Document {
	doc := NewMap()
	for _, f := range rec {
		switch v := f.Value.(type) {
		case int64:
			doc.Set(f.Name, Int(v))
		case float64:
			doc.Set(f.Name, Number(v))
		case string:
			doc.Set(f.Name, String(v))
		case []int64:
			arr := NewArray()
			for _, n := range v {
				arr.Append(Int(n))
			}
			doc.Set(f.Name, arr)
		default:
			doc.Set(f.Name, String(fmt.Sprintf("%v", v)))
		}
	}
	return doc
}

// serializeName maps name IDs, in ascending order, to a map from language to
// string. Records without a known language are listed as "default".
func serializeName(otf *ot.Font) Document {
	doc := NewMap()
	names, err := otf.Names()
	if err != nil {
		return doc
	}
	var ids []uint16
	for _, nr := range names.Records {
		if !slices.Contains(ids, nr.NameID) {
			ids = append(ids, nr.NameID)
		}
	}
	slices.Sort(ids)
	for _, id := range ids {
		localized := NewMap()
		for lang, value := range names.Localized(id) {
			if lang == "" {
				lang = "default"
			}
			localized.Set(lang, String(value))
		}
		doc.Set(strconv.Itoa(int(id)), localized)
	}
	return doc
}

func serializeCMap(otf *ot.Font, ctx *SerializationContext) Document {
	doc := NewMap()
	cmap, err := otf.CMap()
	if err != nil {
		return doc
	}
	for r, gid := range cmap.Mappings() {
		doc.Set(fmt.Sprintf("U+%04X", r), String(ctx.Name(gid)))
	}
	return doc
}

// serializeHMtx maps glyph names to advance width and left side bearing.
// Only glyphs with a long metrics entry are listed.
func serializeHMtx(otf *ot.Font, ctx *SerializationContext) Document {
	doc := NewMap()
	hmtx, err := otf.HMetrics()
	if err != nil {
		return doc
	}
	n := min(otf.NumGlyphs(), len(hmtx.Advances))
	for g := range n {
		gid := ot.GlyphIndex(g)
		m := NewMap()
		m.Set("width", Int(hmtx.Advance(gid)))
		m.Set("lsb", Int(hmtx.SideBearing(gid)))
		doc.Set(ctx.Name(gid), m)
	}
	return doc
}
