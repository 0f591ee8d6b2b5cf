package planar

import (
	"testing"

	"github.com/IBAS0742/iGeospatial-change-sub003/geom"
	"github.com/tdewolff/test"
)

func TestLineIntersectorProper(t *testing.T) {
	li := NewLineIntersector(geom.Floating())
	li.ComputeIntersection(pt(0.0, 0.0), pt(2.0, 2.0), pt(0.0, 2.0), pt(2.0, 0.0))
	test.That(t, li.HasIntersection())
	test.T(t, li.IntersectionNum(), 1)
	test.T(t, li.Intersection(0), pt(1.0, 1.0))
	test.That(t, li.IsProper())
	test.That(t, !li.IsCollinear())
}

func TestLineIntersectorEndpointTouch(t *testing.T) {
	li := NewLineIntersector(geom.Floating())
	li.ComputeIntersection(pt(0.0, 0.0), pt(1.0, 1.0), pt(1.0, 1.0), pt(2.0, 0.0))
	test.That(t, li.HasIntersection())
	test.T(t, li.IntersectionNum(), 1)
	test.T(t, li.Intersection(0), pt(1.0, 1.0))

	// touching at an endpoint is not proper
	test.That(t, !li.IsProper())
}

func TestLineIntersectorDisjoint(t *testing.T) {
	li := NewLineIntersector(geom.Floating())
	li.ComputeIntersection(pt(0.0, 0.0), pt(1.0, 0.0), pt(0.0, 1.0), pt(1.0, 1.0))
	test.That(t, !li.HasIntersection())
	test.T(t, li.IntersectionNum(), 0)
	test.That(t, !li.IsProper())
}

func TestLineIntersectorCollinear(t *testing.T) {
	li := NewLineIntersector(geom.Floating())
	li.ComputeIntersection(pt(0.0, 0.0), pt(3.0, 0.0), pt(1.0, 0.0), pt(2.0, 0.0))
	test.That(t, li.HasIntersection())
	test.That(t, li.IsCollinear())
	test.T(t, li.IntersectionNum(), 2)
	test.That(t, !li.IsProper())
}

func TestLineIntersectorEdgeDistance(t *testing.T) {
	li := NewLineIntersector(geom.Floating())
	li.ComputeIntersection(pt(0.0, 0.0), pt(4.0, 0.0), pt(1.0, -1.0), pt(1.0, 1.0))
	test.That(t, li.HasIntersection())
	test.Float(t, li.EdgeDistance(0, 0), 1.0)
	test.Float(t, li.EdgeDistance(1, 0), 1.0)
}

func TestLineIntersectorPrecision(t *testing.T) {
	li := NewLineIntersector(geom.Fixed(1.0))
	li.ComputeIntersection(pt(0.0, 0.0), pt(3.0, 3.0), pt(0.0, 2.4), pt(3.0, 2.4))
	test.That(t, li.HasIntersection())

	// the intersection snaps onto the precision grid
	test.T(t, li.Intersection(0), pt(2.0, 2.0))
}
