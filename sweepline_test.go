package planar

import (
	"fmt"
	"testing"

	"github.com/IBAS0742/iGeospatial-change-sub003/geom"
	"github.com/tdewolff/test"
)

func TestSweepLineEventOrder(t *testing.T) {
	insert := &SweepLineEvent{x: 1.0}
	remove := &SweepLineEvent{x: 1.0, insertEvent: insert}
	test.That(t, insert.IsInsert())
	test.That(t, remove.IsDelete())

	// inserts sort before deletes at equal x
	test.That(t, insert.Less(remove))
	test.That(t, !remove.Less(insert))
	test.That(t, (&SweepLineEvent{x: 0.5}).Less(insert))
}

func TestMonotoneChains(t *testing.T) {
	// a zigzag changes quadrant twice
	e := NewEdge(pts(0.0, 0.0, 2.0, 2.0, 4.0, 0.0, 6.0, 2.0), Label{})
	mce := e.MonotoneChainEdge()
	test.T(t, mce.ChainCount(), 3)
	test.Float(t, mce.MinX(0), 0.0)
	test.Float(t, mce.MaxX(0), 2.0)
	test.Float(t, mce.MinX(2), 4.0)
	test.T(t, mce.ChainEnvelope(1), geom.EnvelopeOf(pt(2.0, 2.0), pt(4.0, 0.0)))

	// a monotone edge is a single chain
	test.T(t, NewEdge(pts(0.0, 0.0, 1.0, 1.0, 2.0, 2.0), Label{}).MonotoneChainEdge().ChainCount(), 1)
}

func crossingEdges() []*Edge {
	return []*Edge{
		NewEdge(pts(0.0, 0.0, 4.0, 4.0), NewLabelFor(0, LocInterior)),
		NewEdge(pts(0.0, 4.0, 4.0, 0.0), NewLabelFor(0, LocInterior)),
		NewEdge(pts(0.0, 2.0, 4.0, 2.0), NewLabelFor(0, LocInterior)),
		NewEdge(pts(5.0, 0.0, 5.0, 4.0), NewLabelFor(0, LocInterior)),
	}
}

func intersectionCoords(e *Edge) []geom.Coordinate {
	var coords []geom.Coordinate
	for i := 0; i < e.Intersections().Count(); i++ {
		coords = append(coords, e.Intersections().At(i).Coord)
	}
	return coords
}

func TestEdgeSetIntersectorParity(t *testing.T) {
	var tts = []struct {
		name string
		esi  func() EdgeSetIntersector
	}{
		{"brute", func() EdgeSetIntersector { return NewSimpleEdgeSetIntersector() }},
		{"sweepline", func() EdgeSetIntersector { return NewSimpleMCSweepLineIntersector() }},
		{"indexed", func() EdgeSetIntersector { return NewIndexedEdgeSetIntersector() }},
	}
	for _, tt := range tts {
		t.Run(tt.name, func(t *testing.T) {
			edges := crossingEdges()
			li := NewLineIntersector(geom.Floating())
			si := NewSegmentIntersector(li, true, true)
			tt.esi().ComputeSelfIntersections(edges, si, false)

			test.That(t, si.HasIntersection())
			test.That(t, !edges[0].IsIsolated())
			test.T(t, intersectionCoords(edges[0]), []geom.Coordinate{pt(2.0, 2.0)})
			test.T(t, intersectionCoords(edges[1]), []geom.Coordinate{pt(2.0, 2.0)})
			test.T(t, intersectionCoords(edges[2]), []geom.Coordinate{pt(2.0, 2.0)})
			test.T(t, len(intersectionCoords(edges[3])), 0)
			test.That(t, edges[3].IsIsolated())
		})
	}
}

func TestEdgeSetIntersectorTwoSets(t *testing.T) {
	var tts = []struct {
		name string
		esi  func() EdgeSetIntersector
	}{
		{"brute", func() EdgeSetIntersector { return NewSimpleEdgeSetIntersector() }},
		{"sweepline", func() EdgeSetIntersector { return NewSimpleMCSweepLineIntersector() }},
		{"indexed", func() EdgeSetIntersector { return NewIndexedEdgeSetIntersector() }},
	}
	for _, tt := range tts {
		t.Run(tt.name, func(t *testing.T) {
			a := NewEdge(pts(0.0, 1.0, 4.0, 1.0), NewLabelFor(0, LocInterior))
			b := NewEdge(pts(1.0, 0.0, 1.0, 2.0), NewLabelFor(1, LocInterior))
			c := NewEdge(pts(3.0, 0.0, 3.0, 2.0), NewLabelFor(1, LocInterior))

			li := NewLineIntersector(geom.Floating())
			si := NewSegmentIntersector(li, true, true)
			tt.esi().ComputeIntersections([]*Edge{a}, []*Edge{b, c}, si)

			test.That(t, si.HasIntersection())
			test.That(t, si.HasProperIntersection())
			test.T(t, intersectionCoords(a), []geom.Coordinate{pt(1.0, 1.0), pt(3.0, 1.0)})
			test.T(t, intersectionCoords(b), []geom.Coordinate{pt(1.0, 1.0)})
			test.T(t, intersectionCoords(c), []geom.Coordinate{pt(3.0, 1.0)})
			test.That(t, !a.IsIsolated())
			test.That(t, !b.IsIsolated())
		})
	}
}

func TestSegmentIntersectorTrivial(t *testing.T) {
	// the closing vertex of a ring is not an intersection
	ring := NewEdge(unitSquare(), areaLabel0())
	li := NewLineIntersector(geom.Floating())
	si := NewSegmentIntersector(li, true, false)
	NewSimpleEdgeSetIntersector().ComputeSelfIntersections([]*Edge{ring}, si, true)
	test.That(t, !si.HasIntersection())
	test.T(t, ring.Intersections().Count(), 0)
}

func TestSegmentIntersectorSelfCrossing(t *testing.T) {
	for i, esi := range []EdgeSetIntersector{
		NewSimpleEdgeSetIntersector(),
		NewSimpleMCSweepLineIntersector(),
		NewIndexedEdgeSetIntersector(),
	} {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			// a line crossing itself at (1,1)
			e := NewEdge(pts(0.0, 0.0, 2.0, 2.0, 2.0, 0.0, 0.0, 2.0), NewLabelFor(0, LocInterior))
			li := NewLineIntersector(geom.Floating())
			si := NewSegmentIntersector(li, true, false)
			esi.ComputeSelfIntersections([]*Edge{e}, si, true)
			test.That(t, si.HasIntersection())
			test.That(t, e.Intersections().IsIntersection(pt(1.0, 1.0)))
		})
	}
}
