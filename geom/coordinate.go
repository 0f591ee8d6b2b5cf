// Package geom provides the coordinate, envelope and precision value types
// together with the robust geometric predicates used by the topology graph.
package geom

import (
	"fmt"
	"math"
)

// Coordinate is a location in the plane with an optional measure along Z.
// Topological equality and ordering are strictly 2D: Z never participates.
type Coordinate struct {
	X, Y, Z float64
}

// Coord returns a 2D coordinate.
func Coord(x, y float64) Coordinate {
	return Coordinate{X: x, Y: y}
}

// Equals2D returns true if both coordinates have exactly the same X and Y.
func (c Coordinate) Equals2D(o Coordinate) bool {
	return c.X == o.X && c.Y == o.Y
}

// Compare orders coordinates lexicographically, first by X and then by Y.
func (c Coordinate) Compare(o Coordinate) int {
	if c.X < o.X {
		return -1
	} else if o.X < c.X {
		return 1
	} else if c.Y < o.Y {
		return -1
	} else if o.Y < c.Y {
		return 1
	}
	return 0
}

// Distance returns the 2D Euclidean distance between both coordinates.
func (c Coordinate) Distance(o Coordinate) float64 {
	return math.Hypot(o.X-c.X, o.Y-c.Y)
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%g %g)", c.X, c.Y)
}

// RemoveRepeatedPoints returns coords with consecutive 2D-equal coordinates
// collapsed to a single occurrence. The input is not modified.
func RemoveRepeatedPoints(coords []Coordinate) []Coordinate {
	if len(coords) == 0 {
		return nil
	}
	unique := make([]Coordinate, 0, len(coords))
	unique = append(unique, coords[0])
	for _, c := range coords[1:] {
		if !c.Equals2D(unique[len(unique)-1]) {
			unique = append(unique, c)
		}
	}
	return unique
}
