package ttj

import (
	"strings"

	"github.com/npillmayer/fontdiff/ot"
)

func serializeSingleSubst(ss *ot.SingleSubst, ctx *SerializationContext) Document {
	doc := subtableMap("single")
	for i, g := range ss.Coverage.Glyphs {
		if after, ok := ss.Substitute(i, g); ok {
			doc.Set(ctx.Name(g), String(ctx.Name(after)))
		}
	}
	return doc
}

// serializeSequences serializes multiple and alternate substitutions, which
// both map a glyph to a list of glyphs.
func serializeSequences(typ string, cov ot.Coverage, seqs [][]ot.GlyphIndex, ctx *SerializationContext) Document {
	doc := subtableMap(typ)
	for i, g := range cov.Glyphs {
		if i >= len(seqs) {
			break
		}
		doc.Set(ctx.Name(g), StringArray(ctx.Names.Names(seqs[i])))
	}
	return doc
}

// serializeLigatureSubst maps space separated component sequences to
// ligature glyphs.
func serializeLigatureSubst(ls *ot.LigatureSubst, ctx *SerializationContext) Document {
	doc := subtableMap("ligature")
	for i, g := range ls.Coverage.Glyphs {
		if i >= len(ls.LigatureSets) {
			break
		}
		first := ctx.Name(g)
		for _, lig := range ls.LigatureSets[i] {
			before := append([]string{first}, ctx.Names.Names(lig.Components)...)
			doc.Set(strings.Join(before, " "), String(ctx.Name(lig.Glyph)))
		}
	}
	return doc
}

func serializeReverseChainSubst(rs *ot.ReverseChainSubst, ctx *SerializationContext) Document {
	doc := subtableMap("reverse")
	pre := NewArray()
	for i := len(rs.BacktrackCoverages) - 1; i >= 0; i-- {
		pre.Append(StringArray(ctx.Names.Names(rs.BacktrackCoverages[i].Glyphs)))
	}
	doc.Set("pre_context", pre)
	post := NewArray()
	for _, cov := range rs.LookaheadCoverages {
		post.Append(StringArray(ctx.Names.Names(cov.Glyphs)))
	}
	doc.Set("post_context", post)
	for i, g := range rs.Coverage.Glyphs {
		if i >= len(rs.Substitutes) {
			break
		}
		doc.Set(ctx.Name(g), String(ctx.Name(rs.Substitutes[i])))
	}
	return doc
}
