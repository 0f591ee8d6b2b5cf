package planar

import "github.com/IBAS0742/iGeospatial-change-sub003/geom"

// Quadrant returns the quadrant of the directed vector (dx,dy):
//
//	0 northeast (dx >= 0, dy >= 0)
//	1 northwest
//	2 southwest
//	3 southeast
//
// The boundary axes belong to the counter-clockwise quadrant. The zero
// vector has no direction and faults.
func Quadrant(dx, dy float64) int {
	if dx == 0.0 && dy == 0.0 {
		panic("bug: cannot compute the quadrant of a zero-length vector")
	}
	if 0.0 <= dx {
		if 0.0 <= dy {
			return 0
		}
		return 3
	}
	if 0.0 <= dy {
		return 1
	}
	return 2
}

// QuadrantOf returns the quadrant of the vector from p0 to p1.
func QuadrantOf(p0, p1 geom.Coordinate) int {
	return Quadrant(p1.X-p0.X, p1.Y-p0.Y)
}
