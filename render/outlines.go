package render

import (
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype"
)

// OutlineCache holds the outlines of glyphs of a face, scaled to a font
// size. The location in design space is the one the face is set to. A cache
// is not safe for concurrent use.
type OutlineCache struct {
	face  *font.Face
	scale float32
	cache map[font.GID]Path
}

// NewOutlineCache creates a cache for the outlines of a face at a font size
// given in pixels.
func NewOutlineCache(face *font.Face, size float32) *OutlineCache {
	upem := float32(face.Upem())
	if upem == 0 {
		upem = 1000
	}
	return &OutlineCache{
		face:  face,
		scale: size / upem,
		cache: make(map[font.GID]Path),
	}
}

// Get returns the outline of a glyph, positioned at the origin. Bitmap or
// SVG glyphs and glyphs without contours yield an empty path.
func (oc *OutlineCache) Get(gid font.GID) Path {
	if path, ok := oc.cache[gid]; ok {
		return path
	}
	var path Path
	if outline, ok := oc.face.GlyphData(gid).(font.GlyphOutline); ok {
		path = oc.convert(outline.Segments)
	}
	oc.cache[gid] = path
	return path
}

// Draw appends the outline of a glyph to a path, moved by (dx, dy).
func (oc *OutlineCache) Draw(gid font.GID, dx, dy float32, path *Path) {
	for _, c := range oc.Get(gid) {
		n := c.arity()
		for i := 0; i < n; i++ {
			c.Points[i].X += dx
			c.Points[i].Y += dy
		}
		*path = append(*path, c)
	}
}

// Len returns the number of glyphs in the cache.
func (oc *OutlineCache) Len() int {
	return len(oc.cache)
}

// convert scales segments to pixels. Contours are closed explicitly.
func (oc *OutlineCache) convert(segments []opentype.Segment) Path {
	path := make(Path, 0, len(segments)+4)
	open := false
	for _, seg := range segments {
		var c Command
		switch seg.Op {
		case opentype.SegmentOpMoveTo:
			if open {
				path = append(path, Command{Op: Close})
			}
			c.Op, open = MoveTo, true
		case opentype.SegmentOpLineTo:
			c.Op = LineTo
		case opentype.SegmentOpQuadTo:
			c.Op = QuadTo
		case opentype.SegmentOpCubeTo:
			c.Op = CubeTo
		default:
			tracer().Debugf("ignoring outline segment of type %d", seg.Op)
			continue
		}
		for i := 0; i < c.arity(); i++ {
			c.Points[i] = Point{X: seg.Args[i].X * oc.scale, Y: seg.Args[i].Y * oc.scale}
		}
		path = append(path, c)
	}
	if open {
		path = append(path, Command{Op: Close})
	}
	return path
}
