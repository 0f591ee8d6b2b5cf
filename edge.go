package planar

import (
	"fmt"
	"strings"

	"github.com/IBAS0742/iGeospatial-change-sub003/geom"
)

// Edge is a chain of coordinates carrying a topological label, together
// with the intersections recorded along it. The coordinate chain contains
// no repeated points; a closed chain represents a ring.
type Edge struct {
	pts        []geom.Coordinate
	label      Label
	env        geom.Envelope
	envValid   bool
	eiList     EdgeIntersectionList
	depth      Depth
	depthDelta int
	mce        *MonotoneChainEdge
	inResult   bool
	isolated   bool
	covered    bool
	coveredSet bool
}

// NewEdge returns an edge over pts with the given label. The coordinate
// slice is owned by the edge afterwards.
func NewEdge(pts []geom.Coordinate, label Label) *Edge {
	e := &Edge{pts: pts, label: label, depth: NewDepth(), isolated: true}
	e.eiList.edge = e
	return e
}

// NumPoints returns the number of coordinates in the edge.
func (e *Edge) NumPoints() int {
	return len(e.pts)
}

// Coordinate returns the i'th coordinate.
func (e *Edge) Coordinate(i int) geom.Coordinate {
	return e.pts[i]
}

// Coordinates returns the coordinate chain of the edge. The slice must not
// be modified.
func (e *Edge) Coordinates() []geom.Coordinate {
	return e.pts
}

// Envelope returns the bounding envelope of the edge.
func (e *Edge) Envelope() geom.Envelope {
	if !e.envValid {
		e.env = geom.EnvelopeOf(e.pts...)
		e.envValid = true
	}
	return e.env
}

// Label returns the edge's label.
func (e *Edge) Label() Label {
	return e.label
}

// SetLabel replaces the edge's label.
func (e *Edge) SetLabel(l Label) {
	e.label = l
}

// Intersections returns the intersections recorded along the edge.
func (e *Edge) Intersections() *EdgeIntersectionList {
	return &e.eiList
}

// Depth returns the accumulated side depths of the edge.
func (e *Edge) Depth() *Depth {
	return &e.depth
}

// DepthDelta returns how much the overall depth changes from the left side
// of the edge to the right side.
func (e *Edge) DepthDelta() int {
	return e.depthDelta
}

func (e *Edge) SetDepthDelta(delta int) {
	e.depthDelta = delta
}

// IsClosed returns true if the edge ends where it starts.
func (e *Edge) IsClosed() bool {
	return e.pts[0].Equals2D(e.pts[len(e.pts)-1])
}

// IsCollapsed returns true if the edge is an area edge whose chain doubles
// back onto itself, enclosing no area.
func (e *Edge) IsCollapsed() bool {
	if !e.label.IsArea() {
		return false
	}
	if len(e.pts) != 3 {
		return false
	}
	return e.pts[0].Equals2D(e.pts[2])
}

// CollapsedEdge returns the single-segment line edge a collapsed area edge
// reduces to.
func (e *Edge) CollapsedEdge() *Edge {
	pts := []geom.Coordinate{e.pts[0], e.pts[1]}
	return NewEdge(pts, e.label.ToLine(0).ToLine(1))
}

// IsIsolated returns true if no intersection with another edge has been
// found on the edge.
func (e *Edge) IsIsolated() bool {
	return e.isolated
}

func (e *Edge) SetIsolated(isolated bool) {
	e.isolated = isolated
}

// InResult reports whether the edge has been selected into the result.
func (e *Edge) InResult() bool {
	return e.inResult
}

func (e *Edge) SetInResult(inResult bool) {
	e.inResult = inResult
}

// IsCovered reports whether the edge lies inside an area of the result.
func (e *Edge) IsCovered() bool {
	return e.covered
}

// IsCoveredSet reports whether coveredness has been determined yet.
func (e *Edge) IsCoveredSet() bool {
	return e.coveredSet
}

func (e *Edge) SetCovered(covered bool) {
	e.covered = covered
	e.coveredSet = true
}

// MonotoneChainEdge returns the monotone chain decomposition of the edge,
// computing it on first use.
func (e *Edge) MonotoneChainEdge() *MonotoneChainEdge {
	if e.mce == nil {
		e.mce = NewMonotoneChainEdge(e)
	}
	return e.mce
}

// AddIntersections records all intersection points the intersector found
// on the given segment of this edge.
func (e *Edge) AddIntersections(li *LineIntersector, segmentIndex, geomIndex int) {
	for i := 0; i < li.IntersectionNum(); i++ {
		e.AddIntersection(li, segmentIndex, geomIndex, i)
	}
}

// AddIntersection records one intersection point on the given segment. An
// intersection falling on the shared vertex of two segments is normalized
// to lie at distance zero on the following segment, so every intersection
// has a single canonical position along the edge.
func (e *Edge) AddIntersection(li *LineIntersector, segmentIndex, geomIndex, intIndex int) {
	intPt := li.Intersection(intIndex)
	normalizedSegmentIndex := segmentIndex
	dist := li.EdgeDistance(geomIndex, intIndex)
	nextSegIndex := normalizedSegmentIndex + 1
	if nextSegIndex < len(e.pts) {
		nextPt := e.pts[nextSegIndex]
		if intPt.Equals2D(nextPt) {
			normalizedSegmentIndex = nextSegIndex
			dist = 0.0
		}
	}
	e.eiList.Add(intPt, normalizedSegmentIndex, dist)
}

// EqualsEdge returns true if o has the same coordinate chain as e, in the
// same or exactly reversed order.
func (e *Edge) EqualsEdge(o *Edge) bool {
	if len(e.pts) != len(o.pts) {
		return false
	}
	forward, backward := true, true
	n := len(e.pts)
	for i := 0; i < n; i++ {
		if !e.pts[i].Equals2D(o.pts[i]) {
			forward = false
		}
		if !e.pts[i].Equals2D(o.pts[n-1-i]) {
			backward = false
		}
		if !forward && !backward {
			return false
		}
	}
	return true
}

// IsPointwiseEqual returns true if o has the same coordinate chain as e in
// the same order.
func (e *Edge) IsPointwiseEqual(o *Edge) bool {
	if len(e.pts) != len(o.pts) {
		return false
	}
	for i := range e.pts {
		if !e.pts[i].Equals2D(o.pts[i]) {
			return false
		}
	}
	return true
}

func (e *Edge) String() string {
	var sb strings.Builder
	sb.WriteString("edge:")
	for _, p := range e.pts {
		fmt.Fprintf(&sb, " %v", p)
	}
	fmt.Fprintf(&sb, " %s %d", e.label, e.depthDelta)
	return sb.String()
}

// EdgeList is a registry of edges supporting lookup of a coincident edge
// regardless of direction.
type EdgeList struct {
	edges []*Edge
}

// Add appends e to the list.
func (l *EdgeList) Add(e *Edge) {
	l.edges = append(l.edges, e)
}

// AddAll appends all edges to the list.
func (l *EdgeList) AddAll(edges []*Edge) {
	l.edges = append(l.edges, edges...)
}

// Edges returns the underlying edge slice.
func (l *EdgeList) Edges() []*Edge {
	return l.edges
}

// Get returns the i'th edge.
func (l *EdgeList) Get(i int) *Edge {
	return l.edges[i]
}

// FindEqualEdge returns the first edge equal to e forward or reversed, or
// nil.
func (l *EdgeList) FindEqualEdge(e *Edge) *Edge {
	for _, cur := range l.edges {
		if cur.EqualsEdge(e) {
			return cur
		}
	}
	return nil
}

// FindEdgeIndex returns the index of the first edge pointwise equal to e,
// or -1.
func (l *EdgeList) FindEdgeIndex(e *Edge) int {
	for i, cur := range l.edges {
		if cur.IsPointwiseEqual(e) {
			return i
		}
	}
	return -1
}
