package planar

import (
	"sort"

	"github.com/IBAS0742/iGeospatial-change-sub003/geom"
)

// Node is the unique graph vertex at a coordinate. It owns the star of
// directed edges incident on it and a label describing the location of the
// point itself.
type Node struct {
	coord geom.Coordinate
	label Label
	star  *DirectedEdgeStar
}

// NewNode returns a node at c with an empty edge star.
func NewNode(c geom.Coordinate) *Node {
	return &Node{coord: c, star: NewDirectedEdgeStar()}
}

// Coordinate returns the node's location.
func (n *Node) Coordinate() geom.Coordinate {
	return n.coord
}

// Edges returns the star of directed edges around the node.
func (n *Node) Edges() *DirectedEdgeStar {
	return n.star
}

// Label returns the node's label.
func (n *Node) Label() Label {
	return n.label
}

// SetLabel replaces the node's label.
func (n *Node) SetLabel(l Label) {
	n.label = l
}

// SetLabelLocation sets the On location of one geometry in the node's
// label.
func (n *Node) SetLabelLocation(geomIndex int, loc Location) {
	n.label = n.label.WithOn(geomIndex, loc)
}

// MergeLabel fills unlabelled geometries of the node's label from o. A
// Boundary location already present is never demoted.
func (n *Node) MergeLabel(o Label) {
	for g := 0; g < 2; g++ {
		loc := n.computeMergedLocation(o, g)
		if n.label.On(g) == LocNone {
			n.label = n.label.WithOn(g, loc)
		}
	}
}

func (n *Node) computeMergedLocation(o Label, geomIndex int) Location {
	loc := n.label.On(geomIndex)
	if !o.IsNull(geomIndex) && loc != LocBoundary {
		loc = o.On(geomIndex)
	}
	return loc
}

// SetLabelBoundary records one more boundary component of a geometry
// passing through the node, applying the mod-2 rule: an odd number of
// occurrences makes the point a boundary point, an even number an interior
// one.
func (n *Node) SetLabelBoundary(geomIndex int) {
	var newLoc Location
	switch n.label.On(geomIndex) {
	case LocBoundary:
		newLoc = LocInterior
	case LocInterior:
		newLoc = LocBoundary
	default:
		newLoc = LocBoundary
	}
	n.label = n.label.WithOn(geomIndex, newLoc)
}

// IsIsolated returns true if the node belongs to a single geometry only.
func (n *Node) IsIsolated() bool {
	return n.label.GeometryCount() == 1
}

// Add inserts a directed edge originating at the node into its star.
func (n *Node) Add(de *DirectedEdge) {
	n.star.Insert(de)
	de.node = n
}

// NodeMap keeps exactly one node per distinct coordinate.
type NodeMap struct {
	m map[nodeKey]*Node
}

type nodeKey struct {
	x, y float64
}

// NewNodeMap returns an empty node map.
func NewNodeMap() *NodeMap {
	return &NodeMap{m: map[nodeKey]*Node{}}
}

// AddNode returns the node at c, creating it if absent.
func (nm *NodeMap) AddNode(c geom.Coordinate) *Node {
	key := nodeKey{c.X, c.Y}
	n, ok := nm.m[key]
	if !ok {
		n = NewNode(c)
		nm.m[key] = n
	}
	return n
}

// Add inserts a directed edge into the star of the node at its origin,
// creating the node if absent.
func (nm *NodeMap) Add(de *DirectedEdge) {
	n := nm.AddNode(de.Coordinate())
	n.Add(de)
}

// Find returns the node at c, or nil.
func (nm *NodeMap) Find(c geom.Coordinate) *Node {
	return nm.m[nodeKey{c.X, c.Y}]
}

// Nodes returns all nodes ordered by coordinate.
func (nm *NodeMap) Nodes() []*Node {
	nodes := make([]*Node, 0, len(nm.m))
	for _, n := range nm.m {
		nodes = append(nodes, n)
	}
	sort.Slice(nodes, func(i, j int) bool {
		return nodes[i].coord.Compare(nodes[j].coord) < 0
	})
	return nodes
}

// BoundaryNodes returns the nodes labelled Boundary for the given
// geometry, ordered by coordinate.
func (nm *NodeMap) BoundaryNodes(geomIndex int) []*Node {
	var nodes []*Node
	for _, n := range nm.Nodes() {
		if n.label.On(geomIndex) == LocBoundary {
			nodes = append(nodes, n)
		}
	}
	return nodes
}
