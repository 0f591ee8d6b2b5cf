package planar

import (
	"fmt"
	"sort"

	"github.com/IBAS0742/iGeospatial-change-sub003/geom"
)

// EdgeIntersection is a point at which another edge meets an edge,
// addressed by the index of the segment it lies on and its edge distance
// along that segment.
type EdgeIntersection struct {
	Coord        geom.Coordinate
	SegmentIndex int
	Dist         float64
}

// Compare orders intersections along the edge, by segment index and then
// by distance along the segment.
func (ei EdgeIntersection) Compare(o EdgeIntersection) int {
	if ei.SegmentIndex < o.SegmentIndex {
		return -1
	} else if o.SegmentIndex < ei.SegmentIndex {
		return 1
	} else if ei.Dist < o.Dist {
		return -1
	} else if o.Dist < ei.Dist {
		return 1
	}
	return 0
}

// IsEndPoint returns true if the intersection lies at the very start or
// end of the edge.
func (ei EdgeIntersection) IsEndPoint(maxSegmentIndex int) bool {
	if ei.SegmentIndex == 0 && ei.Dist == 0.0 {
		return true
	}
	return ei.SegmentIndex == maxSegmentIndex
}

func (ei EdgeIntersection) String() string {
	return fmt.Sprintf("%v seg#=%d dist=%g", ei.Coord, ei.SegmentIndex, ei.Dist)
}

// EdgeIntersectionList holds the intersections recorded along one edge,
// kept sorted along the edge and unique per (segment, distance) position.
type EdgeIntersectionList struct {
	edge *Edge
	list []EdgeIntersection
}

// Add records an intersection point. Adding a point at a position already
// present leaves the list unchanged, so recording the same intersection
// from several segment pairs is harmless.
func (l *EdgeIntersectionList) Add(pt geom.Coordinate, segmentIndex int, dist float64) EdgeIntersection {
	ei := EdgeIntersection{Coord: pt, SegmentIndex: segmentIndex, Dist: dist}
	i := sort.Search(len(l.list), func(i int) bool {
		return 0 <= l.list[i].Compare(ei)
	})
	if i < len(l.list) && l.list[i].Compare(ei) == 0 {
		return l.list[i]
	}
	l.list = append(l.list, EdgeIntersection{})
	copy(l.list[i+1:], l.list[i:])
	l.list[i] = ei
	return ei
}

// Count returns the number of recorded intersections.
func (l *EdgeIntersectionList) Count() int {
	return len(l.list)
}

// At returns the i'th intersection in order along the edge.
func (l *EdgeIntersectionList) At(i int) EdgeIntersection {
	return l.list[i]
}

// IsIntersection returns true if pt is one of the recorded intersection
// points.
func (l *EdgeIntersectionList) IsIntersection(pt geom.Coordinate) bool {
	for _, ei := range l.list {
		if ei.Coord.Equals2D(pt) {
			return true
		}
	}
	return false
}

// AddEndpoints records both endpoints of the edge as intersections, so
// that splitting the edge at its intersections covers the whole edge.
func (l *EdgeIntersectionList) AddEndpoints() {
	maxSegIndex := len(l.edge.pts) - 1
	l.Add(l.edge.pts[0], 0, 0.0)
	l.Add(l.edge.pts[maxSegIndex], maxSegIndex, 0.0)
}

// AddSplitEdges appends to out one new edge for each stretch of the parent
// edge between consecutive intersections. The endpoints are added first,
// so the split edges concatenate back to the parent edge. Each split edge
// carries the parent's label.
func (l *EdgeIntersectionList) AddSplitEdges(out *[]*Edge) {
	l.AddEndpoints()
	for i := 1; i < len(l.list); i++ {
		*out = append(*out, l.createSplitEdge(l.list[i-1], l.list[i]))
	}
}

// createSplitEdge builds the edge running from ei0 to ei1. The end point
// is dropped when it coincides with the start of its segment, so vertices
// are never duplicated.
func (l *EdgeIntersectionList) createSplitEdge(ei0, ei1 EdgeIntersection) *Edge {
	npts := ei1.SegmentIndex - ei0.SegmentIndex + 2
	lastSegStart := l.edge.pts[ei1.SegmentIndex]
	useIntPt1 := 0.0 < ei1.Dist || !ei1.Coord.Equals2D(lastSegStart)
	if !useIntPt1 {
		npts--
	}
	pts := make([]geom.Coordinate, 0, npts)
	pts = append(pts, ei0.Coord)
	for i := ei0.SegmentIndex + 1; i <= ei1.SegmentIndex; i++ {
		pts = append(pts, l.edge.pts[i])
	}
	if useIntPt1 {
		pts = append(pts, ei1.Coord)
	}
	return NewEdge(pts, l.edge.Label())
}
