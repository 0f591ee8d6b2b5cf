package planar

import "sort"

// EdgeSetIntersector finds all intersections within one set of edges, or
// between two sets, reporting them to a SegmentIntersector.
type EdgeSetIntersector interface {
	// ComputeSelfIntersections finds intersections within one edge set.
	// Unless testAllSegments is set, segments are not tested against
	// segments of their own edge.
	ComputeSelfIntersections(edges []*Edge, si *SegmentIntersector, testAllSegments bool)
	// ComputeIntersections finds intersections between two edge sets.
	ComputeIntersections(edges0, edges1 []*Edge, si *SegmentIntersector)
}

// SweepLineEvent marks one end of a monotone chain's x-extent during the
// sweep. At equal x, insert events sort before delete events, so a chain
// is still active when another chain starts exactly where it ends.
type SweepLineEvent struct {
	edgeSet          interface{}
	x                float64
	chain            *MonotoneChain
	insertEvent      *SweepLineEvent
	deleteEventIndex int
}

// IsInsert returns true for the event opening a chain's x-extent.
func (ev *SweepLineEvent) IsInsert() bool {
	return ev.insertEvent == nil
}

// IsDelete returns true for the event closing a chain's x-extent.
func (ev *SweepLineEvent) IsDelete() bool {
	return ev.insertEvent != nil
}

// Less orders events by x, inserts before deletes at equal x.
func (ev *SweepLineEvent) Less(o *SweepLineEvent) bool {
	if ev.x != o.x {
		return ev.x < o.x
	}
	return ev.IsInsert() && o.IsDelete()
}

// SimpleMCSweepLineIntersector finds intersections by sweeping the
// monotone chains of all edges along the x-axis: each chain is tested
// against exactly the chains whose x-extents overlap its own. This is the
// default intersection strategy.
type SimpleMCSweepLineIntersector struct {
	events    []*SweepLineEvent
	nOverlaps int
}

// NewSimpleMCSweepLineIntersector returns an empty sweep-line
// intersector. An instance performs a single computation.
func NewSimpleMCSweepLineIntersector() *SimpleMCSweepLineIntersector {
	return &SimpleMCSweepLineIntersector{}
}

func (s *SimpleMCSweepLineIntersector) ComputeSelfIntersections(edges []*Edge, si *SegmentIntersector, testAllSegments bool) {
	if testAllSegments {
		s.addEdges(edges, nil)
	} else {
		// group each edge into its own set, so its chains are never
		// tested against one another
		for _, e := range edges {
			s.addEdge(e, e)
		}
	}
	s.computeIntersections(si)
}

func (s *SimpleMCSweepLineIntersector) ComputeIntersections(edges0, edges1 []*Edge, si *SegmentIntersector) {
	s.addEdges(edges0, "set0")
	s.addEdges(edges1, "set1")
	s.computeIntersections(si)
}

func (s *SimpleMCSweepLineIntersector) addEdges(edges []*Edge, edgeSet interface{}) {
	for _, e := range edges {
		s.addEdge(e, edgeSet)
	}
}

func (s *SimpleMCSweepLineIntersector) addEdge(e *Edge, edgeSet interface{}) {
	mce := e.MonotoneChainEdge()
	for i := 0; i < mce.ChainCount(); i++ {
		mc := &MonotoneChain{mce: mce, chainIndex: i}
		insertEvent := &SweepLineEvent{edgeSet: edgeSet, x: mce.MinX(i), chain: mc}
		deleteEvent := &SweepLineEvent{edgeSet: edgeSet, x: mce.MaxX(i), insertEvent: insertEvent}
		s.events = append(s.events, insertEvent, deleteEvent)
	}
}

// prepareEvents sorts the events and records for each insert event the
// position of its delete event, bounding the range of chains it can
// overlap.
func (s *SimpleMCSweepLineIntersector) prepareEvents() {
	sort.Stable(byEventOrder(s.events))
	for i, ev := range s.events {
		if ev.IsDelete() {
			ev.insertEvent.deleteEventIndex = i
		}
	}
}

type byEventOrder []*SweepLineEvent

func (evs byEventOrder) Len() int           { return len(evs) }
func (evs byEventOrder) Swap(i, j int)      { evs[i], evs[j] = evs[j], evs[i] }
func (evs byEventOrder) Less(i, j int) bool { return evs[i].Less(evs[j]) }

func (s *SimpleMCSweepLineIntersector) computeIntersections(si *SegmentIntersector) {
	s.nOverlaps = 0
	s.prepareEvents()
	for i, ev := range s.events {
		if ev.IsInsert() {
			s.processOverlaps(i, ev, si)
		}
	}
}

func (s *SimpleMCSweepLineIntersector) processOverlaps(start int, ev0 *SweepLineEvent, si *SegmentIntersector) {
	for i := start; i < ev0.deleteEventIndex; i++ {
		ev1 := s.events[i]
		if !ev1.IsInsert() {
			continue
		}
		// chains of the same edge set never produce reportable
		// intersections, except in the nil set
		if ev0.edgeSet == nil || ev0.edgeSet != ev1.edgeSet {
			ev0.chain.ComputeIntersections(ev1.chain, si)
			s.nOverlaps++
		}
	}
}

// SimpleEdgeSetIntersector tests every segment pair directly, with no
// acceleration structure. It serves as the reference for the faster
// strategies.
type SimpleEdgeSetIntersector struct {
	nPairs int
}

// NewSimpleEdgeSetIntersector returns a brute-force intersector.
func NewSimpleEdgeSetIntersector() *SimpleEdgeSetIntersector {
	return &SimpleEdgeSetIntersector{}
}

func (s *SimpleEdgeSetIntersector) ComputeSelfIntersections(edges []*Edge, si *SegmentIntersector, testAllSegments bool) {
	for _, e0 := range edges {
		for _, e1 := range edges {
			if testAllSegments || e0 != e1 {
				s.computeIntersects(e0, e1, si)
			}
		}
	}
}

func (s *SimpleEdgeSetIntersector) ComputeIntersections(edges0, edges1 []*Edge, si *SegmentIntersector) {
	for _, e0 := range edges0 {
		for _, e1 := range edges1 {
			s.computeIntersects(e0, e1, si)
		}
	}
}

func (s *SimpleEdgeSetIntersector) computeIntersects(e0, e1 *Edge, si *SegmentIntersector) {
	s.nPairs++
	for i0 := 0; i0 < e0.NumPoints()-1; i0++ {
		for i1 := 0; i1 < e1.NumPoints()-1; i1++ {
			si.AddIntersections(e0, i0, e1, i1)
		}
	}
}
