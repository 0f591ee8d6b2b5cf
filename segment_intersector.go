package planar

import "github.com/IBAS0742/iGeospatial-change-sub003/geom"

// SegmentIntersector tests pairs of edge segments for intersection and
// records the intersections found on the edges they belong to. It also
// accumulates a report of what kinds of intersections were seen.
type SegmentIntersector struct {
	li             *LineIntersector
	includeProper  bool
	recordIsolated bool

	hasIntersection    bool
	hasProper          bool
	hasProperInterior  bool
	properIntersection geom.Coordinate
	numIntersections   int
	numTests           int
	bdyNodes           [2][]*Node
}

// NewSegmentIntersector returns a segment intersector over li.
// If includeProper is false, proper intersections are reported but not
// recorded on the edges. If recordIsolated is true, edges found to
// intersect are marked as not isolated.
func NewSegmentIntersector(li *LineIntersector, includeProper, recordIsolated bool) *SegmentIntersector {
	return &SegmentIntersector{li: li, includeProper: includeProper, recordIsolated: recordIsolated}
}

// SetBoundaryNodes provides the boundary nodes of both geometries, used to
// distinguish proper interior intersections from proper intersections at a
// boundary point.
func (si *SegmentIntersector) SetBoundaryNodes(bdyNodes0, bdyNodes1 []*Node) {
	si.bdyNodes[0] = bdyNodes0
	si.bdyNodes[1] = bdyNodes1
}

// HasIntersection returns true if any non-trivial intersection was found.
func (si *SegmentIntersector) HasIntersection() bool {
	return si.hasIntersection
}

// HasProperIntersection returns true if a proper intersection was found.
func (si *SegmentIntersector) HasProperIntersection() bool {
	return si.hasProper
}

// HasProperInteriorIntersection returns true if a proper intersection was
// found which is not a boundary point of either geometry.
func (si *SegmentIntersector) HasProperInteriorIntersection() bool {
	return si.hasProperInterior
}

// ProperIntersection returns a proper intersection point, if one was
// found.
func (si *SegmentIntersector) ProperIntersection() geom.Coordinate {
	return si.properIntersection
}

// IntersectionCount returns the number of intersecting segment pairs
// found, trivial ones included.
func (si *SegmentIntersector) IntersectionCount() int {
	return si.numIntersections
}

// TestCount returns the number of segment pairs tested.
func (si *SegmentIntersector) TestCount() int {
	return si.numTests
}

// isTrivialIntersection returns true for the expected single-point
// intersection of adjacent segments of the same edge, including the
// closing vertex of a ring. These shared vertices are part of the edge
// itself and are not recorded.
func (si *SegmentIntersector) isTrivialIntersection(e0 *Edge, segIndex0 int, e1 *Edge, segIndex1 int) bool {
	if e0 != e1 || si.li.IntersectionNum() != 1 {
		return false
	}
	if isAdjacentSegments(segIndex0, segIndex1) {
		return true
	}
	if e0.IsClosed() {
		maxSegIndex := e0.NumPoints() - 1
		if (segIndex0 == 0 && segIndex1 == maxSegIndex-1) ||
			(segIndex1 == 0 && segIndex0 == maxSegIndex-1) {
			return true
		}
	}
	return false
}

func isAdjacentSegments(i0, i1 int) bool {
	d := i0 - i1
	if d < 0 {
		d = -d
	}
	return d == 1
}

// AddIntersections tests one pair of segments and records any non-trivial
// intersection on both edges.
func (si *SegmentIntersector) AddIntersections(e0 *Edge, segIndex0 int, e1 *Edge, segIndex1 int) {
	if e0 == e1 && segIndex0 == segIndex1 {
		return
	}
	si.numTests++
	p00 := e0.Coordinate(segIndex0)
	p01 := e0.Coordinate(segIndex0 + 1)
	p10 := e1.Coordinate(segIndex1)
	p11 := e1.Coordinate(segIndex1 + 1)

	si.li.ComputeIntersection(p00, p01, p10, p11)
	if !si.li.HasIntersection() {
		return
	}
	if si.recordIsolated {
		e0.SetIsolated(false)
		e1.SetIsolated(false)
	}
	si.numIntersections++
	if si.isTrivialIntersection(e0, segIndex0, e1, segIndex1) {
		return
	}
	si.hasIntersection = true
	if si.includeProper || !si.li.IsProper() {
		e0.AddIntersections(si.li, segIndex0, 0)
		e1.AddIntersections(si.li, segIndex1, 1)
	}
	if si.li.IsProper() {
		si.properIntersection = si.li.Intersection(0)
		si.hasProper = true
		if !si.isBoundaryPoint() {
			si.hasProperInterior = true
		}
	}
}

func (si *SegmentIntersector) isBoundaryPoint() bool {
	pt := si.li.Intersection(0)
	for g := 0; g < 2; g++ {
		for _, n := range si.bdyNodes[g] {
			if pt.Equals2D(n.Coordinate()) {
				return true
			}
		}
	}
	return false
}
