package geom

import (
	"math"

	xygeom "github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/bigxy"
	"github.com/twpayne/go-geom/xy/orientation"
)

// OrientationIndex returns the position of q relative to the directed line
// p0-p1: 1 if q lies to the left (a counter-clockwise turn), -1 if it lies
// to the right, 0 if the three points are collinear. The computation uses
// extended-precision arithmetic and is exact.
func OrientationIndex(p0, p1, q Coordinate) int {
	switch bigxy.OrientationIndex(xyCoord(p0), xyCoord(p1), xyCoord(q)) {
	case orientation.CounterClockwise:
		return 1
	case orientation.Clockwise:
		return -1
	}
	return 0
}

func xyCoord(c Coordinate) xygeom.Coord {
	return xygeom.Coord{c.X, c.Y}
}

// SignedArea returns the area enclosed by the closed ring, positive if the
// ring is counter-clockwise. The first and last coordinates must coincide.
func SignedArea(ring []Coordinate) float64 {
	if len(ring) < 3 {
		return 0.0
	}
	sum := 0.0
	x0 := ring[0].X
	for i := 1; i < len(ring)-1; i++ {
		x := ring[i].X - x0
		y1 := ring[i+1].Y
		y2 := ring[i-1].Y
		sum += x * (y1 - y2)
	}
	return sum / 2.0
}

// IsCCW returns true if the closed ring is oriented counter-clockwise.
func IsCCW(ring []Coordinate) bool {
	return 0.0 < SignedArea(ring)
}

// PointInRing returns true if p lies inside the closed ring, by counting
// the crossings of a ray extending from p to positive X. Points exactly on
// the ring are classified arbitrarily.
func PointInRing(p Coordinate, ring []Coordinate) bool {
	crossings := 0
	for i := 1; i < len(ring); i++ {
		p1, p2 := ring[i-1], ring[i]
		if (p.Y < p1.Y) == (p.Y < p2.Y) {
			continue
		}
		// translate so that p is the origin
		x1 := p1.X - p.X
		y1 := p1.Y - p.Y
		x2 := p2.X - p.X
		y2 := p2.Y - p.Y
		// sign of the x-intersection of the segment with the ray
		xInt := (x1*y2 - x2*y1) / (y2 - y1)
		if 0.0 < xInt {
			crossings++
		}
	}
	return crossings%2 == 1
}

// PointOnSegment returns true if p lies exactly on the segment p0-p1.
func PointOnSegment(p, p0, p1 Coordinate) bool {
	if !EnvelopeOf(p0, p1).CoversCoordinate(p) {
		return false
	}
	return OrientationIndex(p0, p1, p) == 0
}

// EdgeDistance measures how far along the segment p0-p1 the point p lies,
// using the dominant axis of the segment. The result is only comparable
// between points on the same segment.
func EdgeDistance(p, p0, p1 Coordinate) float64 {
	dx := math.Abs(p1.X - p0.X)
	dy := math.Abs(p1.Y - p0.Y)
	dist := -1.0
	if p.Equals2D(p1) {
		dist = math.Max(dx, dy)
	} else {
		pdx := math.Abs(p.X - p0.X)
		pdy := math.Abs(p.Y - p0.Y)
		if dy < dx {
			dist = pdx
		} else {
			dist = pdy
		}
		// ensure points other than the start never measure zero,
		// even on degenerate segments
		if dist == 0.0 && !p.Equals2D(p0) {
			dist = math.Max(pdx, pdy)
		}
	}
	if dist == 0.0 && !p.Equals2D(p0) {
		panic("bug: invalid edge distance")
	}
	return dist
}
