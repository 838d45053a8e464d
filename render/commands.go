package render

import (
	"fmt"
	"slices"
)

// Op is the kind of a path command.
type Op uint8

// Path operations
const (
	MoveTo Op = iota
	LineTo
	QuadTo
	CubeTo
	Close
)

func (op Op) String() string {
	switch op {
	case MoveTo:
		return "M"
	case LineTo:
		return "L"
	case QuadTo:
		return "Q"
	case CubeTo:
		return "C"
	case Close:
		return "Z"
	}
	return "?"
}

// Point is a point in pixel space, with y growing upwards.
type Point struct {
	X, Y float32
}

// Command is a single path command. Points holds the control points,
// followed by the end point; unused entries are zero.
type Command struct {
	Op     Op
	Points [3]Point
}

// arity returns the number of points used by a command.
func (c Command) arity() int {
	switch c.Op {
	case MoveTo, LineTo:
		return 1
	case QuadTo:
		return 2
	case CubeTo:
		return 3
	}
	return 0
}

func (c Command) String() string {
	s := c.Op.String()
	for _, p := range c.Points[:c.arity()] {
		s += fmt.Sprintf(" %g,%g", p.X, p.Y)
	}
	return s
}

// Path is a sequence of path commands, possibly of several contours.
type Path []Command

// BoundingBox returns the bounding box of all points of the path, including
// off-curve control points. Curves bulging out beyond their control points
// are not accounted for. The box always contains the origin.
func (p Path) BoundingBox() (lo, hi Point) {
	for _, c := range p {
		for _, pt := range c.Points[:c.arity()] {
			lo.X, hi.X = min(lo.X, pt.X), max(hi.X, pt.X)
			lo.Y, hi.Y = min(lo.Y, pt.Y), max(hi.Y, pt.Y)
		}
	}
	return
}

// Equal reports whether two paths consist of identical commands.
func (p Path) Equal(other Path) bool {
	return slices.Equal(p, other)
}
