package planar

import (
	"sort"

	"github.com/IBAS0742/iGeospatial-change-sub003/geom"
)

// DirectedEdgeStar is the set of directed edges leaving a node, ordered
// counter-clockwise starting from the positive x-axis.
type DirectedEdgeStar struct {
	edges           []*DirectedEdge
	label           Label
	resultAreaEdges []*DirectedEdge
}

// NewDirectedEdgeStar returns an empty star.
func NewDirectedEdgeStar() *DirectedEdgeStar {
	return &DirectedEdgeStar{}
}

// Insert adds a directed edge at its position in the angular order.
func (s *DirectedEdgeStar) Insert(de *DirectedEdge) {
	i := sort.Search(len(s.edges), func(i int) bool {
		return 0 <= s.edges[i].CompareDirection(&de.EdgeEnd)
	})
	s.edges = append(s.edges, nil)
	copy(s.edges[i+1:], s.edges[i:])
	s.edges[i] = de
	s.resultAreaEdges = nil
}

// Degree returns the number of directed edges around the node.
func (s *DirectedEdgeStar) Degree() int {
	return len(s.edges)
}

// Edges returns the directed edges in counter-clockwise order. The slice
// must not be modified.
func (s *DirectedEdgeStar) Edges() []*DirectedEdge {
	return s.edges
}

// Coordinate returns the node coordinate the star surrounds.
func (s *DirectedEdgeStar) Coordinate() geom.Coordinate {
	if len(s.edges) == 0 {
		return geom.Coordinate{}
	}
	return s.edges[0].Coordinate()
}

// Label returns the union label computed by ComputeLabelling.
func (s *DirectedEdgeStar) Label() Label {
	return s.label
}

// OutgoingDegree returns the number of outgoing edges in the result.
func (s *DirectedEdgeStar) OutgoingDegree() int {
	degree := 0
	for _, de := range s.edges {
		if de.InResult() {
			degree++
		}
	}
	return degree
}

// OutgoingDegreeOf returns the number of outgoing edges built into er,
// following er's view of ring membership.
func (s *DirectedEdgeStar) OutgoingDegreeOf(er *EdgeRing) int {
	degree := 0
	for _, de := range s.edges {
		if er.links.ring(de) == er {
			degree++
		}
	}
	return degree
}

// ComputeLabelling completes the labels of all edge ends around the node:
// side locations propagate to neighbouring unlabelled ends, and geometries
// that touch nothing at this node are resolved by locating the node in the
// geometry. The star's own label becomes Interior for each geometry with
// an incident Interior or Boundary edge.
func (s *DirectedEdgeStar) ComputeLabelling(graphs [2]*GeometryGraph) error {
	if err := s.propagateSideLabels(0); err != nil {
		return err
	}
	if err := s.propagateSideLabels(1); err != nil {
		return err
	}

	// resolve edges of geometries with no edge at this node
	for _, de := range s.edges {
		for g := 0; g < 2; g++ {
			if de.label.IsAnyNull(g) && graphs[g] != nil {
				loc := graphs[g].Locate(de.Coordinate())
				de.label = de.label.WithAllLocationsIfNone(g, loc)
			}
		}
	}

	s.label = Label{}
	for _, de := range s.edges {
		eLabel := de.Edge().Label()
		for g := 0; g < 2; g++ {
			eLoc := eLabel.On(g)
			if eLoc == LocInterior || eLoc == LocBoundary {
				s.label = s.label.WithOn(g, LocInterior)
			}
		}
	}
	return nil
}

// propagateSideLabels spreads the known side locations of one geometry
// around the star. Walking counter-clockwise, the left side of each
// labelled edge becomes the right side of the next; a labelled right side
// that disagrees with the propagated location means the input was not
// correctly noded.
func (s *DirectedEdgeStar) propagateSideLabels(geomIndex int) error {
	startLoc := LocNone
	for _, de := range s.edges {
		if de.label.IsAreaAt(geomIndex) && de.label.Location(geomIndex, Left) != LocNone {
			startLoc = de.label.Location(geomIndex, Left)
		}
	}
	if startLoc == LocNone {
		return nil
	}

	currLoc := startLoc
	for _, de := range s.edges {
		label := de.label
		if label.On(geomIndex) == LocNone {
			label = label.WithOn(geomIndex, currLoc)
		}
		if label.IsAreaAt(geomIndex) {
			leftLoc := label.Location(geomIndex, Left)
			rightLoc := label.Location(geomIndex, Right)
			if rightLoc != LocNone {
				if rightLoc != currLoc {
					return topologyErrorf(de.Coordinate(), "side location conflict")
				}
				if leftLoc == LocNone {
					return topologyErrorf(de.Coordinate(), "single side of label is unlabelled")
				}
				currLoc = leftLoc
			} else {
				label = label.WithLocation(geomIndex, Right, currLoc)
				label = label.WithLocation(geomIndex, Left, currLoc)
			}
		}
		de.label = label
	}
	return nil
}

// MergeSymLabels merges into each directed edge the label of its opposite
// view, so both views carry the full knowledge about the edge.
func (s *DirectedEdgeStar) MergeSymLabels() {
	for _, de := range s.edges {
		de.label = de.label.Merge(de.Sym().label)
	}
}

// UpdateLabelling fills the remaining unlabelled positions of every edge
// end from the node's own label.
func (s *DirectedEdgeStar) UpdateLabelling(nodeLabel Label) {
	for _, de := range s.edges {
		de.label = de.label.WithAllLocationsIfNone(0, nodeLabel.On(0))
		de.label = de.label.WithAllLocationsIfNone(1, nodeLabel.On(1))
	}
}

// ComputeDepths propagates side depths around the node starting from de,
// whose depths must already be assigned. Walking the full circle must
// arrive back at de's right depth; a mismatch means the depths around the
// node are inconsistent.
func (s *DirectedEdgeStar) ComputeDepths(de *DirectedEdge) error {
	edgeIndex := s.findIndex(de)
	if edgeIndex < 0 {
		return topologyErrorf(de.Coordinate(), "directed edge not in star")
	}
	startDepth := de.Depth(Left)
	targetLastDepth := de.Depth(Right)
	nextDepth, err := s.computeDepthRange(edgeIndex+1, len(s.edges), startDepth)
	if err != nil {
		return err
	}
	lastDepth, err := s.computeDepthRange(0, edgeIndex, nextDepth)
	if err != nil {
		return err
	}
	if lastDepth != targetLastDepth {
		return topologyErrorf(de.Coordinate(), "depth mismatch")
	}
	return nil
}

func (s *DirectedEdgeStar) computeDepthRange(startIndex, endIndex, startDepth int) (int, error) {
	currDepth := startDepth
	for i := startIndex; i < endIndex; i++ {
		nextDe := s.edges[i]
		if err := nextDe.SetEdgeDepths(Right, currDepth); err != nil {
			return 0, err
		}
		currDepth = nextDe.Depth(Left)
	}
	return currDepth, nil
}

func (s *DirectedEdgeStar) findIndex(de *DirectedEdge) int {
	for i, cur := range s.edges {
		if cur == de {
			return i
		}
	}
	return -1
}

// ResultAreaEdges returns the directed edges around the node of which
// either view is in the result.
func (s *DirectedEdgeStar) ResultAreaEdges() []*DirectedEdge {
	if s.resultAreaEdges != nil {
		return s.resultAreaEdges
	}
	for _, de := range s.edges {
		if de.InResult() || de.Sym().InResult() {
			s.resultAreaEdges = append(s.resultAreaEdges, de)
		}
	}
	return s.resultAreaEdges
}

const (
	scanningForIncoming = iota
	linkingToOutgoing
)

// LinkResultDirectedEdges links the result edges around the node into
// rings: each incoming result edge is linked to the next outgoing result
// edge in counter-clockwise order. A node where an incoming edge finds no
// outgoing edge cannot be part of a closed ring.
func (s *DirectedEdgeStar) LinkResultDirectedEdges() error {
	resultEdges := s.ResultAreaEdges()
	var firstOut, incoming *DirectedEdge
	state := scanningForIncoming
	for _, nextOut := range resultEdges {
		nextIn := nextOut.Sym()
		if !nextOut.Label().IsArea() {
			continue
		}
		if firstOut == nil && nextOut.InResult() {
			firstOut = nextOut
		}
		switch state {
		case scanningForIncoming:
			if !nextIn.InResult() {
				continue
			}
			incoming = nextIn
			state = linkingToOutgoing
		case linkingToOutgoing:
			if !nextOut.InResult() {
				continue
			}
			incoming.SetNext(nextOut)
			state = scanningForIncoming
		}
	}
	if state == linkingToOutgoing {
		if firstOut == nil {
			return topologyErrorf(s.Coordinate(), "no outgoing directed edge found")
		}
		if !firstOut.InResult() {
			return topologyErrorf(s.Coordinate(), "unable to link last incoming directed edge")
		}
		incoming.SetNext(firstOut)
	}
	return nil
}

// LinkMinimalDirectedEdges links the edges of the maximal ring er around
// the node into minimal rings, scanning clockwise.
func (s *DirectedEdgeStar) LinkMinimalDirectedEdges(er *EdgeRing) error {
	resultEdges := s.ResultAreaEdges()
	var firstOut, incoming *DirectedEdge
	state := scanningForIncoming
	for i := len(resultEdges) - 1; 0 <= i; i-- {
		nextOut := resultEdges[i]
		nextIn := nextOut.Sym()
		if firstOut == nil && nextOut.EdgeRing() == er {
			firstOut = nextOut
		}
		switch state {
		case scanningForIncoming:
			if nextIn.EdgeRing() != er {
				continue
			}
			incoming = nextIn
			state = linkingToOutgoing
		case linkingToOutgoing:
			if nextOut.EdgeRing() != er {
				continue
			}
			incoming.SetNextMin(nextOut)
			state = scanningForIncoming
		}
	}
	if state == linkingToOutgoing {
		if firstOut == nil {
			return topologyErrorf(s.Coordinate(), "found no outgoing directed edge for ring")
		}
		if firstOut.EdgeRing() != er {
			return topologyErrorf(s.Coordinate(), "unable to link last incoming directed edge")
		}
		incoming.SetNextMin(firstOut)
	}
	return nil
}

// LinkAllDirectedEdges links every directed edge around the node,
// regardless of result membership, scanning clockwise.
func (s *DirectedEdgeStar) LinkAllDirectedEdges() {
	var prevOut, firstIn *DirectedEdge
	for i := len(s.edges) - 1; 0 <= i; i-- {
		nextOut := s.edges[i]
		nextIn := nextOut.Sym()
		if firstIn == nil {
			firstIn = nextIn
		}
		if prevOut != nil {
			nextIn.SetNext(prevOut)
		}
		prevOut = nextOut
	}
	firstIn.SetNext(prevOut)
}

// FindCoveredLineEdges marks every line edge around the node as covered or
// not, depending on whether it lies inside the result area. Since the
// edges are ordered counter-clockwise, crossing an outgoing result edge
// leaves the area and crossing an incoming one enters it.
func (s *DirectedEdgeStar) FindCoveredLineEdges() {
	startLoc := LocNone
	for _, nextOut := range s.edges {
		nextIn := nextOut.Sym()
		if !nextOut.IsLineEdge() {
			if nextOut.InResult() {
				startLoc = LocInterior
				break
			}
			if nextIn.InResult() {
				startLoc = LocExterior
				break
			}
		}
	}
	// no result area edges at this node
	if startLoc == LocNone {
		return
	}

	currLoc := startLoc
	for _, nextOut := range s.edges {
		nextIn := nextOut.Sym()
		if nextOut.IsLineEdge() {
			nextOut.Edge().SetCovered(currLoc == LocInterior)
		} else {
			if nextOut.InResult() {
				currLoc = LocExterior
			}
			if nextIn.InResult() {
				currLoc = LocInterior
			}
		}
	}
}
