package planar

import (
	"fmt"

	"github.com/IBAS0742/iGeospatial-change-sub003/geom"
)

// EdgeEnd is the view of an edge from one of its endpoints, pointing along
// the first segment leaving that endpoint. Edge ends around a node sort by
// the angle their direction vector makes with the positive x-axis; the
// ordering is resolved from the quadrant of the vector and a robust
// orientation test, never from computed angles.
type EdgeEnd struct {
	edge     *Edge
	label    Label
	node     *Node
	p0, p1   geom.Coordinate
	dx, dy   float64
	quadrant int
}

func newEdgeEnd(e *Edge, p0, p1 geom.Coordinate, label Label) EdgeEnd {
	ee := EdgeEnd{edge: e, label: label, p0: p0, p1: p1}
	ee.dx = p1.X - p0.X
	ee.dy = p1.Y - p0.Y
	ee.quadrant = Quadrant(ee.dx, ee.dy)
	return ee
}

// Edge returns the parent edge.
func (ee *EdgeEnd) Edge() *Edge {
	return ee.edge
}

// Label returns the edge end's label.
func (ee *EdgeEnd) Label() Label {
	return ee.label
}

// SetLabel replaces the edge end's label.
func (ee *EdgeEnd) SetLabel(l Label) {
	ee.label = l
}

// Coordinate returns the endpoint the edge end originates at.
func (ee *EdgeEnd) Coordinate() geom.Coordinate {
	return ee.p0
}

// DirectedCoordinate returns the far end of the first segment.
func (ee *EdgeEnd) DirectedCoordinate() geom.Coordinate {
	return ee.p1
}

// QuadrantIndex returns the quadrant of the edge end's direction vector.
func (ee *EdgeEnd) QuadrantIndex() int {
	return ee.quadrant
}

// Node returns the node the edge end is attached to, or nil before
// insertion into a graph.
func (ee *EdgeEnd) Node() *Node {
	return ee.node
}

// CompareDirection orders edge ends counter-clockwise from the positive
// x-axis: -1 if ee points below o, 0 if they point the same way, 1 if ee
// points above o. Ends in different quadrants compare by quadrant; within
// a quadrant the orientation test decides exactly.
func (ee *EdgeEnd) CompareDirection(o *EdgeEnd) int {
	if ee.dx == o.dx && ee.dy == o.dy {
		return 0
	}
	if o.quadrant < ee.quadrant {
		return 1
	}
	if ee.quadrant < o.quadrant {
		return -1
	}
	return geom.OrientationIndex(o.p0, o.p1, ee.p1)
}

func (ee *EdgeEnd) String() string {
	return fmt.Sprintf("end %v-%v q%d %s", ee.p0, ee.p1, ee.quadrant, ee.label)
}
