package planar

import "github.com/IBAS0742/iGeospatial-change-sub003/geom"

// GeometryGraph is the topology graph of a single input geometry,
// identified within labels by its operand index (0 or 1). Edges are
// labelled with the location of the plane on either side; boundary points
// of lines follow the mod-2 rule.
type GeometryGraph struct {
	*PlanarGraph
	argIndex       int
	parentGeom     geom.Geometry
	precisionModel geom.PrecisionModel

	lineEdges []lineEdge
	esi       EdgeSetIntersector

	boundaryNodes   []*Node
	hasTooFewPoints bool
	invalidPoint    geom.Coordinate
}

type lineEdge struct {
	line geom.LineString
	e    *Edge
}

// NewGeometryGraph builds the graph of g as operand argIndex, snapping
// intersection results to pm. A nil geometry yields an empty graph.
func NewGeometryGraph(argIndex int, g geom.Geometry, pm geom.PrecisionModel) *GeometryGraph {
	gg := &GeometryGraph{
		PlanarGraph:    NewPlanarGraph(),
		argIndex:       argIndex,
		parentGeom:     g,
		precisionModel: pm,
	}
	if g != nil {
		gg.add(g)
	}
	return gg
}

// Geometry returns the geometry the graph was built from.
func (gg *GeometryGraph) Geometry() geom.Geometry {
	return gg.parentGeom
}

// PrecisionModel returns the precision model intersections snap to.
func (gg *GeometryGraph) PrecisionModel() geom.PrecisionModel {
	return gg.precisionModel
}

// HasTooFewPoints returns true if some component had too few distinct
// points to be built, together with a point on the offending component.
func (gg *GeometryGraph) HasTooFewPoints() (bool, geom.Coordinate) {
	return gg.hasTooFewPoints, gg.invalidPoint
}

// SetEdgeSetIntersector overrides the intersection search strategy. The
// default is the monotone-chain sweep line.
func (gg *GeometryGraph) SetEdgeSetIntersector(esi EdgeSetIntersector) {
	gg.esi = esi
}

func (gg *GeometryGraph) edgeSetIntersector() EdgeSetIntersector {
	if gg.esi != nil {
		return gg.esi
	}
	return NewSimpleMCSweepLineIntersector()
}

func (gg *GeometryGraph) add(g geom.Geometry) {
	switch t := g.(type) {
	case geom.Point:
		gg.addPoint(t.Coord)
	case geom.LineString:
		gg.addLineString(t)
	case geom.Polygon:
		gg.addPolygon(t)
	case geom.Collection:
		for _, sub := range t {
			gg.add(sub)
		}
	default:
		panic("bug: unknown geometry type")
	}
}

// addPoint adds a point, which is in the interior of itself.
func (gg *GeometryGraph) addPoint(c geom.Coordinate) {
	gg.insertPoint(gg.argIndex, c, LocInterior)
}

func (gg *GeometryGraph) addLineString(line geom.LineString) {
	coords := geom.RemoveRepeatedPoints(line.Coords)
	if len(coords) < 2 {
		gg.hasTooFewPoints = true
		if 0 < len(coords) {
			gg.invalidPoint = coords[0]
		}
		return
	}
	e := NewEdge(coords, NewLabelFor(gg.argIndex, LocInterior))
	gg.lineEdges = append(gg.lineEdges, lineEdge{line: line, e: e})
	gg.insertEdge(e)

	// add the endpoints as boundary candidates even for a closed line,
	// since the node may already be a boundary point of another line
	gg.insertBoundaryPoint(gg.argIndex, coords[0])
	gg.insertBoundaryPoint(gg.argIndex, coords[len(coords)-1])
}

func (gg *GeometryGraph) addPolygon(p geom.Polygon) {
	gg.addPolygonRing(p.Shell, LocExterior, LocInterior)
	for _, hole := range p.Holes {
		// holes are assigned the opposite side locations of the shell
		gg.addPolygonRing(hole, LocInterior, LocExterior)
	}
}

// addPolygonRing adds a ring edge labelled with cwLeft and cwRight as the
// side locations for a clockwise ring; a counter-clockwise ring gets them
// swapped.
func (gg *GeometryGraph) addPolygonRing(ring geom.LineString, cwLeft, cwRight Location) {
	coords := geom.RemoveRepeatedPoints(ring.Coords)
	if len(coords) < 4 {
		gg.hasTooFewPoints = true
		if 0 < len(coords) {
			gg.invalidPoint = coords[0]
		}
		return
	}
	left, right := cwLeft, cwRight
	if geom.IsCCW(coords) {
		left, right = cwRight, cwLeft
	}
	e := NewEdge(coords, NewAreaLabelFor(gg.argIndex, LocBoundary, left, right))
	gg.lineEdges = append(gg.lineEdges, lineEdge{line: ring, e: e})
	gg.insertEdge(e)
	gg.insertPoint(gg.argIndex, coords[0], LocBoundary)
}

func (gg *GeometryGraph) insertEdge(e *Edge) {
	gg.edges = append(gg.edges, e)
	tracef("graph %d: added edge with %d points", gg.argIndex, e.NumPoints())
}

// insertPoint sets the On location of the node at c, creating the node if
// absent.
func (gg *GeometryGraph) insertPoint(argIndex int, c geom.Coordinate, loc Location) {
	n := gg.nodes.AddNode(c)
	n.SetLabelLocation(argIndex, loc)
}

// insertBoundaryPoint records one more line endpoint at c, applying the
// mod-2 rule: an odd number of endpoints makes the point a boundary point,
// an even number an interior one.
func (gg *GeometryGraph) insertBoundaryPoint(argIndex int, c geom.Coordinate) {
	n := gg.nodes.AddNode(c)
	boundaryCount := 1
	if n.Label().On(argIndex) == LocBoundary {
		boundaryCount++
	}
	n.SetLabelLocation(argIndex, determineBoundary(boundaryCount))
}

// determineBoundary applies the mod-2 boundary rule to the number of
// component boundaries meeting at a point.
func determineBoundary(boundaryCount int) Location {
	if boundaryCount%2 == 1 {
		return LocBoundary
	}
	return LocInterior
}

// BoundaryNodes returns the nodes labelled Boundary for this graph's
// operand.
func (gg *GeometryGraph) BoundaryNodes() []*Node {
	if gg.boundaryNodes == nil {
		gg.boundaryNodes = gg.nodes.BoundaryNodes(gg.argIndex)
	}
	return gg.boundaryNodes
}

// BoundaryPoints returns the coordinates of the boundary nodes.
func (gg *GeometryGraph) BoundaryPoints() []geom.Coordinate {
	nodes := gg.BoundaryNodes()
	pts := make([]geom.Coordinate, len(nodes))
	for i, n := range nodes {
		pts[i] = n.Coordinate()
	}
	return pts
}

// FindLineEdge returns the edge built from the given line geometry, or
// nil.
func (gg *GeometryGraph) FindLineEdge(line geom.LineString) *Edge {
	for _, le := range gg.lineEdges {
		if coordsEqual(le.line.Coords, line.Coords) {
			return le.e
		}
	}
	return nil
}

func coordsEqual(a, b []geom.Coordinate) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equals2D(b[i]) {
			return false
		}
	}
	return true
}

// ComputeSelfNodes finds all self-intersections of the geometry's edges
// and inserts them as nodes of the graph. Unless computeRingSelfNodes is
// set, the self-intersection check is skipped for geometries made of
// rings, whose only self-intersections are their closing vertices.
func (gg *GeometryGraph) ComputeSelfNodes(li *LineIntersector, computeRingSelfNodes bool) *SegmentIntersector {
	si := NewSegmentIntersector(li, true, false)
	esi := gg.edgeSetIntersector()
	isRingsOnly := isRingOnly(gg.parentGeom)
	esi.ComputeSelfIntersections(gg.edges, si, computeRingSelfNodes || !isRingsOnly)
	tracef("graph %d: self-intersection search, %d tests, %d intersections",
		gg.argIndex, si.TestCount(), si.IntersectionCount())
	gg.addSelfIntersectionNodes(gg.argIndex)
	return si
}

func isRingOnly(g geom.Geometry) bool {
	switch t := g.(type) {
	case geom.Polygon:
		return true
	case geom.LineString:
		return t.IsRing()
	case geom.Collection:
		for _, sub := range t {
			if !isRingOnly(sub) {
				return false
			}
		}
		return 0 < len(t)
	}
	return false
}

// ComputeEdgeIntersections finds all intersections between the edges of
// this graph and those of other, recording them on the edges of both. If
// includeProper is false, proper intersections are reported in the result
// but not recorded.
func (gg *GeometryGraph) ComputeEdgeIntersections(other *GeometryGraph, li *LineIntersector, includeProper bool) *SegmentIntersector {
	si := NewSegmentIntersector(li, includeProper, true)
	si.SetBoundaryNodes(gg.BoundaryNodes(), other.BoundaryNodes())
	esi := gg.edgeSetIntersector()
	esi.ComputeIntersections(gg.edges, other.edges, si)
	tracef("graph %d/%d: edge intersection search, %d tests, %d intersections",
		gg.argIndex, other.argIndex, si.TestCount(), si.IntersectionCount())
	return si
}

// ComputeSplitEdges splits every edge at its recorded intersections and
// appends the pieces to edgelist.
func (gg *GeometryGraph) ComputeSplitEdges(edgelist *[]*Edge) {
	for _, e := range gg.edges {
		e.Intersections().AddSplitEdges(edgelist)
	}
}

// AddEdge inserts an externally built edge and its endpoints into the
// graph.
func (gg *GeometryGraph) AddEdge(e *Edge) {
	gg.insertEdge(e)
	gg.insertPoint(gg.argIndex, e.Coordinate(0), LocBoundary)
	gg.insertPoint(gg.argIndex, e.Coordinate(e.NumPoints()-1), LocBoundary)
}

// addSelfIntersectionNodes converts the recorded self-intersections into
// graph nodes. Intersections on a boundary edge count towards the mod-2
// rule unless the point is already a boundary node.
func (gg *GeometryGraph) addSelfIntersectionNodes(argIndex int) {
	for _, e := range gg.edges {
		eLoc := e.Label().On(argIndex)
		for i := 0; i < e.Intersections().Count(); i++ {
			gg.addSelfIntersectionNode(argIndex, e.Intersections().At(i).Coord, eLoc)
		}
	}
}

func (gg *GeometryGraph) addSelfIntersectionNode(argIndex int, c geom.Coordinate, loc Location) {
	if gg.IsBoundaryNode(argIndex, c) {
		return
	}
	if loc == LocBoundary {
		gg.insertBoundaryPoint(argIndex, c)
	} else {
		gg.insertPoint(argIndex, c, loc)
	}
}

// Locate returns the location of pt relative to the parent geometry.
func (gg *GeometryGraph) Locate(pt geom.Coordinate) Location {
	return locate(pt, gg.parentGeom)
}

func locate(pt geom.Coordinate, g geom.Geometry) Location {
	switch t := g.(type) {
	case nil:
		return LocExterior
	case geom.Point:
		if pt.Equals2D(t.Coord) {
			return LocInterior
		}
	case geom.LineString:
		if pointOnLine(pt, t.Coords) {
			if !t.IsClosed() && (pt.Equals2D(t.Coords[0]) || pt.Equals2D(t.Coords[len(t.Coords)-1])) {
				return LocBoundary
			}
			return LocInterior
		}
	case geom.Polygon:
		return locateInPolygon(pt, t)
	case geom.Collection:
		// boundary beats interior beats exterior
		loc := LocExterior
		for _, sub := range t {
			subLoc := locate(pt, sub)
			if subLoc == LocBoundary {
				return LocBoundary
			}
			if subLoc == LocInterior {
				loc = LocInterior
			}
		}
		return loc
	}
	return LocExterior
}

func pointOnLine(pt geom.Coordinate, coords []geom.Coordinate) bool {
	for i := 1; i < len(coords); i++ {
		if geom.PointOnSegment(pt, coords[i-1], coords[i]) {
			return true
		}
	}
	return false
}

func locateInPolygon(pt geom.Coordinate, p geom.Polygon) Location {
	shell := geom.RemoveRepeatedPoints(p.Shell.Coords)
	if pointOnLine(pt, shell) {
		return LocBoundary
	}
	if !geom.PointInRing(pt, shell) {
		return LocExterior
	}
	for _, hole := range p.Holes {
		ring := geom.RemoveRepeatedPoints(hole.Coords)
		if pointOnLine(pt, ring) {
			return LocBoundary
		}
		if geom.PointInRing(pt, ring) {
			return LocExterior
		}
	}
	return LocInterior
}
