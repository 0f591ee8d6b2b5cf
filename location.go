// Package planar builds labelled topology graphs from point, line and
// polygon geometries and computes the intersections between their edges. It
// provides the structure from which overlay results are assembled: nodes
// keyed by coordinate, directed edges ordered around each node, depth
// labelling on either side of each edge, and ring re-assembly from linked
// directed edges.
package planar

// Location classifies a graph component relative to one input geometry.
// The zero value is LocNone, the unlabelled state.
type Location int8

const (
	LocNone Location = iota
	LocInterior
	LocBoundary
	LocExterior
)

// Symbol returns the single-character notation for the location.
func (l Location) Symbol() byte {
	switch l {
	case LocInterior:
		return 'i'
	case LocBoundary:
		return 'b'
	case LocExterior:
		return 'e'
	}
	return '-'
}

func (l Location) String() string {
	return string(l.Symbol())
}

// Position selects one of the three topological positions relative to a
// directed component: on the component itself, or in the plane to its left
// or right.
type Position int8

const (
	On Position = iota
	Left
	Right
)

// Opposite returns the position on the other side. On is its own opposite.
func (p Position) Opposite() Position {
	switch p {
	case Left:
		return Right
	case Right:
		return Left
	}
	return On
}
