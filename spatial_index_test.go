package planar

import (
	"testing"

	"github.com/IBAS0742/iGeospatial-change-sub003/geom"
	"github.com/tdewolff/test"
)

func TestRTreeIndex(t *testing.T) {
	idx := NewRTreeIndex()
	idx.Insert(geom.EnvelopeOf(pt(0.0, 0.0), pt(1.0, 1.0)), "a")
	idx.Insert(geom.EnvelopeOf(pt(2.0, 2.0), pt(3.0, 3.0)), "b")
	idx.Insert(geom.EnvelopeOf(pt(0.5, 0.5), pt(2.5, 2.5)), "c")
	test.T(t, idx.Size(), 3)

	items := idx.Query(geom.EnvelopeOf(pt(0.0, 0.0), pt(0.6, 0.6)))
	test.T(t, len(items), 2)
	found := map[string]bool{}
	for _, item := range items {
		found[item.(string)] = true
	}
	test.That(t, found["a"])
	test.That(t, found["c"])

	test.T(t, len(idx.Query(geom.EnvelopeOf(pt(10.0, 10.0), pt(11.0, 11.0)))), 0)
}

func TestRTreeIndexDegenerate(t *testing.T) {
	// point and vertical-segment envelopes have zero extent
	idx := NewRTreeIndex()
	idx.Insert(geom.EnvelopeOf(pt(1.0, 1.0)), "point")
	idx.Insert(geom.EnvelopeOf(pt(3.0, 0.0), pt(3.0, 2.0)), "segment")

	items := idx.Query(geom.EnvelopeOf(pt(0.0, 0.0), pt(2.0, 2.0)))
	test.T(t, len(items), 1)
	test.T(t, items[0].(string), "point")

	items = idx.Query(geom.EnvelopeOf(pt(3.0, 1.0)))
	test.T(t, len(items), 1)
	test.T(t, items[0].(string), "segment")
}

func TestIndexedIntersectorCustomIndex(t *testing.T) {
	// the index implementation is pluggable
	calls := 0
	esi := NewIndexedEdgeSetIntersector()
	esi.NewIndex = func() SpatialIndex {
		calls++
		return NewRTreeIndex()
	}

	edges := crossingEdges()
	li := NewLineIntersector(geom.Floating())
	si := NewSegmentIntersector(li, true, false)
	esi.ComputeSelfIntersections(edges, si, false)

	test.T(t, calls, 1)
	test.That(t, si.HasIntersection())
	test.T(t, intersectionCoords(edges[0]), []geom.Coordinate{pt(2.0, 2.0)})
}
