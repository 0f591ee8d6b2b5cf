package planar

import (
	"github.com/IBAS0742/iGeospatial-change-sub003/geom"
	xygeom "github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/xy/lineintersection"
	"github.com/twpayne/go-geom/xy/lineintersector"
)

// LineIntersector computes the intersection of two line segments and keeps
// the input segments around, so that each intersection point can afterwards
// be located along either segment. The arithmetic core is go-geom's robust
// segment intersector; results are snapped to the precision model.
type LineIntersector struct {
	precisionModel geom.PrecisionModel
	strategy       lineintersector.Strategy
	input          [2][2]geom.Coordinate
	pts            []geom.Coordinate
	collinear      bool
	proper         bool
}

// NewLineIntersector returns an intersector snapping results to pm.
func NewLineIntersector(pm geom.PrecisionModel) *LineIntersector {
	return &LineIntersector{
		precisionModel: pm,
		strategy:       &lineintersector.RobustLineIntersector{},
	}
}

// ComputeIntersection intersects segment p1-p2 with segment q1-q2 and
// stores the result for the accessor methods. Previous results are
// discarded.
func (li *LineIntersector) ComputeIntersection(p1, p2, q1, q2 geom.Coordinate) {
	li.input[0][0], li.input[0][1] = p1, p2
	li.input[1][0], li.input[1][1] = q1, q2
	li.pts = li.pts[:0]
	li.collinear = false
	li.proper = false

	res := lineintersector.LineIntersectsLine(li.strategy,
		xyCoord(p1), xyCoord(p2), xyCoord(q1), xyCoord(q2))
	if !res.HasIntersection() {
		return
	}
	for _, c := range res.Intersection() {
		pt := li.precisionModel.MakePrecise(geom.Coordinate{X: c[0], Y: c[1]})
		li.pts = append(li.pts, pt)
	}
	li.collinear = res.Type() == lineintersection.CollinearIntersection
	if len(li.pts) == 1 {
		pt := li.pts[0]
		li.proper = !pt.Equals2D(p1) && !pt.Equals2D(p2) && !pt.Equals2D(q1) && !pt.Equals2D(q2)
	}
}

func xyCoord(c geom.Coordinate) xygeom.Coord {
	return xygeom.Coord{c.X, c.Y}
}

// HasIntersection returns true if the last computed segments intersect.
func (li *LineIntersector) HasIntersection() bool {
	return 0 < len(li.pts)
}

// IntersectionNum returns the number of intersection points: 0, 1, or 2
// for a collinear overlap.
func (li *LineIntersector) IntersectionNum() int {
	return len(li.pts)
}

// Intersection returns the i'th intersection point.
func (li *LineIntersector) Intersection(i int) geom.Coordinate {
	return li.pts[i]
}

// IsCollinear returns true if the segments overlap along a common line.
func (li *LineIntersector) IsCollinear() bool {
	return li.collinear
}

// IsProper returns true if the intersection is a single point lying in the
// interior of both segments.
func (li *LineIntersector) IsProper() bool {
	return li.proper
}

// EdgeDistance returns the edge distance of the i'th intersection point
// along the given input segment (0 or 1).
func (li *LineIntersector) EdgeDistance(segIndex, i int) float64 {
	return geom.EdgeDistance(li.pts[i], li.input[segIndex][0], li.input[segIndex][1])
}
