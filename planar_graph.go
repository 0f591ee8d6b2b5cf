package planar

import "github.com/IBAS0742/iGeospatial-change-sub003/geom"

// PlanarGraph is the node and directed-edge structure built from a set of
// labelled edges. Inserting an edge creates both directed views and
// attaches them to the nodes at the edge's endpoints.
type PlanarGraph struct {
	edges       []*Edge
	nodes       *NodeMap
	edgeEndList []*DirectedEdge
}

// NewPlanarGraph returns an empty graph.
func NewPlanarGraph() *PlanarGraph {
	return &PlanarGraph{nodes: NewNodeMap()}
}

// Edges returns the edges inserted into the graph.
func (g *PlanarGraph) Edges() []*Edge {
	return g.edges
}

// Nodes returns the graph's node map.
func (g *PlanarGraph) Nodes() *NodeMap {
	return g.nodes
}

// EdgeEnds returns all directed edges in the graph, in insertion order.
func (g *PlanarGraph) EdgeEnds() []*DirectedEdge {
	return g.edgeEndList
}

// Add inserts a directed edge into the node at its origin.
func (g *PlanarGraph) Add(de *DirectedEdge) {
	g.nodes.Add(de)
	g.edgeEndList = append(g.edgeEndList, de)
}

// AddNode returns the node at c, creating it if absent.
func (g *PlanarGraph) AddNode(c geom.Coordinate) *Node {
	return g.nodes.AddNode(c)
}

// Find returns the node at c, or nil.
func (g *PlanarGraph) Find(c geom.Coordinate) *Node {
	return g.nodes.Find(c)
}

// AddEdges inserts edges into the graph, creating for each the forward and
// backward directed views linked through Sym.
func (g *PlanarGraph) AddEdges(edges []*Edge) {
	for _, e := range edges {
		g.edges = append(g.edges, e)
		de1 := NewDirectedEdge(e, true)
		de2 := NewDirectedEdge(e, false)
		de1.sym = de2
		de2.sym = de1
		g.Add(de1)
		g.Add(de2)
	}
}

// LinkResultDirectedEdges links the result edges of every node into
// rings.
func (g *PlanarGraph) LinkResultDirectedEdges() error {
	for _, n := range g.nodes.Nodes() {
		if err := n.Edges().LinkResultDirectedEdges(); err != nil {
			return err
		}
	}
	return nil
}

// LinkAllDirectedEdges links every directed edge of every node.
func (g *PlanarGraph) LinkAllDirectedEdges() {
	for _, n := range g.nodes.Nodes() {
		n.Edges().LinkAllDirectedEdges()
	}
}

// IsBoundaryNode returns true if the graph has a node at c labelled
// Boundary for the given geometry.
func (g *PlanarGraph) IsBoundaryNode(geomIndex int, c geom.Coordinate) bool {
	n := g.nodes.Find(c)
	if n == nil {
		return false
	}
	return n.Label().On(geomIndex) == LocBoundary
}

// FindEdge returns the edge whose first two coordinates are p0 and p1, or
// nil.
func (g *PlanarGraph) FindEdge(p0, p1 geom.Coordinate) *Edge {
	for _, e := range g.edges {
		if e.Coordinate(0).Equals2D(p0) && e.Coordinate(1).Equals2D(p1) {
			return e
		}
	}
	return nil
}

// FindEdgeEnd returns the directed edge whose parent edge is e, or nil.
func (g *PlanarGraph) FindEdgeEnd(e *Edge) *DirectedEdge {
	for _, de := range g.edgeEndList {
		if de.Edge() == e {
			return de
		}
	}
	return nil
}

// FindEdgeInSameDirection returns an edge whose first or last segment
// starts at p0 and points collinearly towards p1, or nil.
func (g *PlanarGraph) FindEdgeInSameDirection(p0, p1 geom.Coordinate) *Edge {
	for _, e := range g.edges {
		if matchInSameDirection(p0, p1, e.Coordinate(0), e.Coordinate(1)) {
			return e
		}
		n := e.NumPoints()
		if matchInSameDirection(p0, p1, e.Coordinate(n-1), e.Coordinate(n-2)) {
			return e
		}
	}
	return nil
}

// matchInSameDirection returns true if the segment ep0-ep1 starts at p0
// and heads the same way as p0-p1.
func matchInSameDirection(p0, p1, ep0, ep1 geom.Coordinate) bool {
	if !p0.Equals2D(ep0) {
		return false
	}
	return geom.OrientationIndex(p0, p1, ep1) == 0 && QuadrantOf(p0, p1) == QuadrantOf(ep0, ep1)
}

// MaximalEdgeRings builds the rings formed by the next links of all result
// directed edges. LinkResultDirectedEdges must have been run first.
func (g *PlanarGraph) MaximalEdgeRings() ([]*EdgeRing, error) {
	var rings []*EdgeRing
	for _, de := range g.edgeEndList {
		if de.InResult() && de.Label().IsArea() && de.EdgeRing() == nil {
			er, err := NewEdgeRing(de, MaximalRingLinks)
			if err != nil {
				return nil, err
			}
			rings = append(rings, er)
		}
	}
	tracef("built %d maximal edge rings", len(rings))
	return rings, nil
}
