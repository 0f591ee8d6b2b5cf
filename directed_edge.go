package planar

import "github.com/IBAS0742/iGeospatial-change-sub003/geom"

// DirectedEdge is one of the two directed views of an edge. Both views
// always exist and reference each other through Sym; the backward view has
// the side locations of its label swapped. Directed edges additionally
// carry the per-side depths and the linking pointers used to assemble
// result rings.
type DirectedEdge struct {
	EdgeEnd
	forward     bool
	inResult    bool
	visited     bool
	sym         *DirectedEdge
	next        *DirectedEdge
	nextMin     *DirectedEdge
	edgeRing    *EdgeRing
	minEdgeRing *EdgeRing
	depth       [3]int
}

// NewDirectedEdge returns the forward or backward view of e. The view
// originates at the corresponding end of the edge and points along its
// first segment.
func NewDirectedEdge(e *Edge, forward bool) *DirectedEdge {
	var p0, p1 geom.Coordinate
	if forward {
		p0, p1 = e.Coordinate(0), e.Coordinate(1)
	} else {
		n := e.NumPoints()
		p0, p1 = e.Coordinate(n-1), e.Coordinate(n-2)
	}
	label := e.Label()
	if !forward {
		label = label.Flip()
	}
	de := &DirectedEdge{
		EdgeEnd: newEdgeEnd(e, p0, p1, label),
		forward: forward,
		depth:   [3]int{0, depthNull, depthNull},
	}
	return de
}

// IsForward returns true for the view running in the edge's own
// direction.
func (de *DirectedEdge) IsForward() bool {
	return de.forward
}

// Sym returns the opposite view of the same edge.
func (de *DirectedEdge) Sym() *DirectedEdge {
	return de.sym
}

// Next returns the next directed edge in the linked result ring.
func (de *DirectedEdge) Next() *DirectedEdge {
	return de.next
}

func (de *DirectedEdge) SetNext(next *DirectedEdge) {
	de.next = next
}

// NextMin returns the next directed edge in the linked minimal ring.
func (de *DirectedEdge) NextMin() *DirectedEdge {
	return de.nextMin
}

func (de *DirectedEdge) SetNextMin(next *DirectedEdge) {
	de.nextMin = next
}

// EdgeRing returns the ring the directed edge has been built into, or
// nil.
func (de *DirectedEdge) EdgeRing() *EdgeRing {
	return de.edgeRing
}

func (de *DirectedEdge) SetEdgeRing(er *EdgeRing) {
	de.edgeRing = er
}

// MinEdgeRing returns the minimal ring the directed edge has been built
// into, or nil.
func (de *DirectedEdge) MinEdgeRing() *EdgeRing {
	return de.minEdgeRing
}

func (de *DirectedEdge) SetMinEdgeRing(er *EdgeRing) {
	de.minEdgeRing = er
}

// InResult reports whether the directed edge is part of the result.
func (de *DirectedEdge) InResult() bool {
	return de.inResult
}

func (de *DirectedEdge) SetInResult(inResult bool) {
	de.inResult = inResult
}

// IsVisited reports whether a traversal has seen the directed edge.
func (de *DirectedEdge) IsVisited() bool {
	return de.visited
}

func (de *DirectedEdge) SetVisited(visited bool) {
	de.visited = visited
}

// SetVisitedEdge marks both views of the edge as visited.
func (de *DirectedEdge) SetVisitedEdge(visited bool) {
	de.visited = visited
	de.sym.visited = visited
}

// Depth returns the depth on the given side of the directed edge, or -1
// if unassigned.
func (de *DirectedEdge) Depth(pos Position) int {
	return de.depth[pos]
}

// SetDepth assigns the depth on one side. Assigning a different value to
// an already assigned side means depth propagation around the node arrived
// at contradictory results, which indicates inconsistently noded input.
func (de *DirectedEdge) SetDepth(pos Position, depth int) error {
	if de.depth[pos] != depthNull && de.depth[pos] != depth {
		return topologyErrorf(de.p0, "assigned depths do not match")
	}
	de.depth[pos] = depth
	return nil
}

// DepthDelta returns the edge's depth delta as seen by this view: the
// backward view sees the negated delta.
func (de *DirectedEdge) DepthDelta() int {
	delta := de.edge.DepthDelta()
	if !de.forward {
		delta = -delta
	}
	return delta
}

// SetEdgeDepths assigns the depth on one side of the directed edge and
// derives the depth of the other side from the edge's depth delta.
func (de *DirectedEdge) SetEdgeDepths(pos Position, depth int) error {
	delta := de.DepthDelta()
	directionFactor := 1
	if pos == Left {
		directionFactor = -1
	}
	oppositeDepth := depth + delta*directionFactor
	if err := de.SetDepth(pos, depth); err != nil {
		return err
	}
	return de.SetDepth(pos.Opposite(), oppositeDepth)
}

// IsLineEdge returns true if the directed edge can only contribute a line
// to the result: at least one geometry labels it as a line, and no area
// geometry places it anywhere but the exterior.
func (de *DirectedEdge) IsLineEdge() bool {
	isLine := de.label.IsLine(0) || de.label.IsLine(1)
	isExteriorIfArea0 := !de.label.IsAreaAt(0) || de.label.AllPositionsEqual(0, LocExterior)
	isExteriorIfArea1 := !de.label.IsAreaAt(1) || de.label.AllPositionsEqual(1, LocExterior)
	return isLine && isExteriorIfArea0 && isExteriorIfArea1
}

// IsInteriorAreaEdge returns true if the directed edge lies in the
// interior of every area geometry, on both sides.
func (de *DirectedEdge) IsInteriorAreaEdge() bool {
	for g := 0; g < 2; g++ {
		if !de.label.IsAreaAt(g) ||
			de.label.Location(g, Left) != LocInterior ||
			de.label.Location(g, Right) != LocInterior {
			return false
		}
	}
	return true
}
