package planar

import (
	"testing"

	"github.com/IBAS0742/iGeospatial-change-sub003/geom"
	"github.com/tdewolff/test"
)

func TestEdgeEquals(t *testing.T) {
	a := NewEdge(pts(0.0, 0.0, 1.0, 0.0, 2.0, 1.0), Label{})
	same := NewEdge(pts(0.0, 0.0, 1.0, 0.0, 2.0, 1.0), Label{})
	reversed := NewEdge(pts(2.0, 1.0, 1.0, 0.0, 0.0, 0.0), Label{})
	other := NewEdge(pts(0.0, 0.0, 1.0, 0.5, 2.0, 1.0), Label{})
	shorter := NewEdge(pts(0.0, 0.0, 1.0, 0.0), Label{})

	test.That(t, a.EqualsEdge(same))
	test.That(t, a.EqualsEdge(reversed))
	test.That(t, reversed.EqualsEdge(a))
	test.That(t, !a.EqualsEdge(other))
	test.That(t, !a.EqualsEdge(shorter))

	test.That(t, a.IsPointwiseEqual(same))
	test.That(t, !a.IsPointwiseEqual(reversed))
}

func TestEdgeClosed(t *testing.T) {
	ring := NewEdge(unitSquare(), areaLabel0())
	test.That(t, ring.IsClosed())
	test.That(t, !NewEdge(pts(0.0, 0.0, 1.0, 0.0), Label{}).IsClosed())
}

func TestEdgeCollapsed(t *testing.T) {
	collapsed := NewEdge(pts(0.0, 0.0, 1.0, 1.0, 0.0, 0.0), areaLabel0())
	test.That(t, collapsed.IsCollapsed())

	line := collapsed.CollapsedEdge()
	test.T(t, line.NumPoints(), 2)
	test.T(t, line.Coordinate(1), pt(1.0, 1.0))
	test.That(t, !line.Label().IsArea())

	test.That(t, !NewEdge(pts(0.0, 0.0, 1.0, 1.0, 0.0, 0.0), Label{}).IsCollapsed())
	test.That(t, !NewEdge(unitSquare(), areaLabel0()).IsCollapsed())
}

func TestEdgeEnvelope(t *testing.T) {
	e := NewEdge(pts(0.0, 1.0, 2.0, -1.0, 1.0, 3.0), Label{})
	test.T(t, e.Envelope(), geom.Envelope{MinX: 0.0, MinY: -1.0, MaxX: 2.0, MaxY: 3.0})
}

func TestEdgeList(t *testing.T) {
	a := NewEdge(pts(0.0, 0.0, 1.0, 0.0), Label{})
	b := NewEdge(pts(0.0, 0.0, 0.0, 1.0), Label{})
	var l EdgeList
	l.Add(a)
	l.Add(b)
	test.T(t, len(l.Edges()), 2)

	reversed := NewEdge(pts(1.0, 0.0, 0.0, 0.0), Label{})
	test.T(t, l.FindEqualEdge(reversed), a)
	test.T(t, l.FindEdgeIndex(b), 1)
	test.T(t, l.FindEdgeIndex(reversed), -1)
	test.That(t, l.FindEqualEdge(NewEdge(pts(5.0, 5.0, 6.0, 6.0), Label{})) == nil)
}
