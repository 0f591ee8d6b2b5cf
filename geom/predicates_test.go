package geom

import (
	"fmt"
	"testing"

	"github.com/tdewolff/test"
)

func TestOrientationIndex(t *testing.T) {
	var tts = []struct {
		p0, p1, q Coordinate
		index     int
	}{
		{Coord(0.0, 0.0), Coord(1.0, 0.0), Coord(0.5, 1.0), 1},
		{Coord(0.0, 0.0), Coord(1.0, 0.0), Coord(0.5, -1.0), -1},
		{Coord(0.0, 0.0), Coord(1.0, 0.0), Coord(2.0, 0.0), 0},
		{Coord(0.0, 0.0), Coord(1.0, 1.0), Coord(2.0, 2.0), 0},
		{Coord(10.0, 10.0), Coord(20.0, 20.0), Coord(10.0, 20.0), 1},
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			test.T(t, OrientationIndex(tt.p0, tt.p1, tt.q), tt.index)
		})
	}
}

func TestSignedArea(t *testing.T) {
	ccw := []Coordinate{Coord(0.0, 0.0), Coord(1.0, 0.0), Coord(1.0, 1.0), Coord(0.0, 1.0), Coord(0.0, 0.0)}
	cw := []Coordinate{Coord(0.0, 0.0), Coord(0.0, 1.0), Coord(1.0, 1.0), Coord(1.0, 0.0), Coord(0.0, 0.0)}
	test.Float(t, SignedArea(ccw), 1.0)
	test.Float(t, SignedArea(cw), -1.0)
	test.That(t, IsCCW(ccw))
	test.That(t, !IsCCW(cw))
}

func TestPointInRing(t *testing.T) {
	ring := []Coordinate{Coord(0.0, 0.0), Coord(4.0, 0.0), Coord(4.0, 4.0), Coord(0.0, 4.0), Coord(0.0, 0.0)}
	var tts = []struct {
		p  Coordinate
		in bool
	}{
		{Coord(2.0, 2.0), true},
		{Coord(0.5, 3.5), true},
		{Coord(5.0, 2.0), false},
		{Coord(-1.0, -1.0), false},
		{Coord(2.0, 5.0), false},
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			test.T(t, PointInRing(tt.p, ring), tt.in)
		})
	}
}

func TestPointOnSegment(t *testing.T) {
	test.That(t, PointOnSegment(Coord(1.0, 1.0), Coord(0.0, 0.0), Coord(2.0, 2.0)))
	test.That(t, PointOnSegment(Coord(0.0, 0.0), Coord(0.0, 0.0), Coord(2.0, 2.0)))
	test.That(t, !PointOnSegment(Coord(3.0, 3.0), Coord(0.0, 0.0), Coord(2.0, 2.0)))
	test.That(t, !PointOnSegment(Coord(1.0, 1.5), Coord(0.0, 0.0), Coord(2.0, 2.0)))
}

func TestEdgeDistance(t *testing.T) {
	p0, p1 := Coord(0.0, 0.0), Coord(10.0, 2.0)
	test.Float(t, EdgeDistance(p0, p0, p1), 0.0)
	test.Float(t, EdgeDistance(p1, p0, p1), 10.0)
	test.Float(t, EdgeDistance(Coord(5.0, 1.0), p0, p1), 5.0)

	// steep segment measures along y
	test.Float(t, EdgeDistance(Coord(1.0, 5.0), Coord(0.0, 0.0), Coord(2.0, 10.0)), 5.0)

	// edge distances order points along the segment
	d1 := EdgeDistance(Coord(2.0, 0.4), p0, p1)
	d2 := EdgeDistance(Coord(7.0, 1.4), p0, p1)
	test.That(t, d1 < d2)
}
