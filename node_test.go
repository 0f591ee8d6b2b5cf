package planar

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestNodeMod2Boundary(t *testing.T) {
	n := NewNode(pt(0.0, 0.0))

	// one boundary occurrence: boundary
	n.SetLabelBoundary(0)
	test.T(t, n.Label().On(0), LocBoundary)

	// two: interior
	n.SetLabelBoundary(0)
	test.T(t, n.Label().On(0), LocInterior)

	// three: boundary again
	n.SetLabelBoundary(0)
	test.T(t, n.Label().On(0), LocBoundary)
}

func TestNodeMergeLabel(t *testing.T) {
	n := NewNode(pt(0.0, 0.0))
	n.MergeLabel(NewLabelFor(0, LocInterior))
	test.T(t, n.Label().On(0), LocInterior)

	// a boundary location is never demoted
	b := NewNode(pt(1.0, 0.0))
	b.SetLabelBoundary(0)
	b.MergeLabel(NewLabelFor(0, LocInterior))
	test.T(t, b.Label().On(0), LocBoundary)
}

func TestNodeIsIsolated(t *testing.T) {
	n := NewNode(pt(0.0, 0.0))
	n.SetLabelLocation(0, LocInterior)
	test.That(t, n.IsIsolated())
	n.SetLabelLocation(1, LocExterior)
	test.That(t, !n.IsIsolated())
}

func TestNodeMap(t *testing.T) {
	nm := NewNodeMap()
	a := nm.AddNode(pt(1.0, 1.0))
	b := nm.AddNode(pt(1.0, 1.0))
	test.T(t, a, b)
	nm.AddNode(pt(0.0, 5.0))
	nm.AddNode(pt(0.0, 1.0))

	nodes := nm.Nodes()
	test.T(t, len(nodes), 3)
	test.T(t, nodes[0].Coordinate(), pt(0.0, 1.0))
	test.T(t, nodes[1].Coordinate(), pt(0.0, 5.0))
	test.T(t, nodes[2].Coordinate(), pt(1.0, 1.0))

	test.That(t, nm.Find(pt(1.0, 1.0)) == a)
	test.That(t, nm.Find(pt(9.0, 9.0)) == nil)
}

func TestNodeMapBoundaryNodes(t *testing.T) {
	nm := NewNodeMap()
	nm.AddNode(pt(0.0, 0.0)).SetLabelBoundary(0)
	nm.AddNode(pt(1.0, 0.0)).SetLabelLocation(0, LocInterior)
	nm.AddNode(pt(2.0, 0.0)).SetLabelBoundary(0)

	bdy := nm.BoundaryNodes(0)
	test.T(t, len(bdy), 2)
	test.T(t, bdy[0].Coordinate(), pt(0.0, 0.0))
	test.T(t, bdy[1].Coordinate(), pt(2.0, 0.0))
	test.T(t, len(nm.BoundaryNodes(1)), 0)
}
