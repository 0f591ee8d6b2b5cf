package planar

import "github.com/IBAS0742/iGeospatial-change-sub003/geom"

// RingLinks selects which link and ring-membership fields a ring walk
// follows: the full result linking or the minimal-ring linking.
type RingLinks struct {
	next    func(*DirectedEdge) *DirectedEdge
	ring    func(*DirectedEdge) *EdgeRing
	setRing func(*DirectedEdge, *EdgeRing)
}

// MaximalRingLinks follows the links produced by LinkResultDirectedEdges.
var MaximalRingLinks = RingLinks{
	next:    (*DirectedEdge).Next,
	ring:    (*DirectedEdge).EdgeRing,
	setRing: (*DirectedEdge).SetEdgeRing,
}

// MinimalRingLinks follows the links produced by
// LinkMinimalDirectedEdges.
var MinimalRingLinks = RingLinks{
	next:    (*DirectedEdge).NextMin,
	ring:    (*DirectedEdge).MinEdgeRing,
	setRing: (*DirectedEdge).SetMinEdgeRing,
}

// EdgeRing is a closed cycle of directed edges bounding one face: a shell
// if the cycle runs clockwise, a hole if it runs counter-clockwise. The
// right side of every edge in the cycle faces the ring's interior.
type EdgeRing struct {
	links         RingLinks
	startDe       *DirectedEdge
	edges         []*DirectedEdge
	pts           []geom.Coordinate
	label         Label
	hole          bool
	maxNodeDegree int
	shell         *EdgeRing
	holes         []*EdgeRing
}

// NewEdgeRing walks the cycle starting at start, following the given
// links, and returns the assembled ring. The walk fails if it runs into a
// missing link or revisits an edge before closing.
func NewEdgeRing(start *DirectedEdge, links RingLinks) (*EdgeRing, error) {
	er := &EdgeRing{links: links, maxNodeDegree: -1}
	if err := er.computePoints(start); err != nil {
		return nil, err
	}
	er.hole = geom.IsCCW(er.pts)
	return er, nil
}

func (er *EdgeRing) computePoints(start *DirectedEdge) error {
	er.startDe = start
	de := start
	isFirstEdge := true
	for {
		if de == nil {
			return topologyErrorf(er.startDe.Coordinate(), "found nil directed edge in ring")
		}
		if er.links.ring(de) == er {
			return topologyErrorf(de.Coordinate(), "directed edge visited twice during ring building")
		}
		er.edges = append(er.edges, de)
		label := de.Label()
		if !label.IsArea() {
			return topologyErrorf(de.Coordinate(), "found non-area edge in ring")
		}
		er.mergeLabel(label)
		er.addPoints(de.Edge(), de.IsForward(), isFirstEdge)
		isFirstEdge = false
		er.links.setRing(de, er)
		de = er.links.next(de)
		if de == start {
			break
		}
	}
	return nil
}

// mergeLabel folds the On locations of an edge label into the ring label.
// The right side of each edge faces the ring interior, so the right-side
// location is the ring's location.
func (er *EdgeRing) mergeLabel(deLabel Label) {
	for g := 0; g < 2; g++ {
		loc := deLabel.Location(g, Right)
		if loc == LocNone {
			continue
		}
		if er.label.On(g) == LocNone {
			er.label = er.label.WithOn(g, loc)
		}
	}
}

func (er *EdgeRing) addPoints(e *Edge, isForward, isFirstEdge bool) {
	if isForward {
		startIndex := 1
		if isFirstEdge {
			startIndex = 0
		}
		for i := startIndex; i < e.NumPoints(); i++ {
			er.pts = append(er.pts, e.Coordinate(i))
		}
	} else {
		startIndex := e.NumPoints() - 2
		if isFirstEdge {
			startIndex = e.NumPoints() - 1
		}
		for i := startIndex; 0 <= i; i-- {
			er.pts = append(er.pts, e.Coordinate(i))
		}
	}
}

// IsHole returns true if the ring is counter-clockwise and so bounds a
// hole.
func (er *EdgeRing) IsHole() bool {
	return er.hole
}

// Coordinates returns the closed coordinate ring.
func (er *EdgeRing) Coordinates() []geom.Coordinate {
	return er.pts
}

// Label returns the merged label of the ring's edges.
func (er *EdgeRing) Label() Label {
	return er.label
}

// Edges returns the directed edges of the cycle in walk order.
func (er *EdgeRing) Edges() []*DirectedEdge {
	return er.edges
}

// StartEdge returns the directed edge the walk started at.
func (er *EdgeRing) StartEdge() *DirectedEdge {
	return er.startDe
}

// Shell returns the shell ring a hole belongs to, or nil for a shell.
func (er *EdgeRing) Shell() *EdgeRing {
	return er.shell
}

// SetShell attaches a hole ring to its shell.
func (er *EdgeRing) SetShell(shell *EdgeRing) {
	er.shell = shell
	if shell != nil {
		shell.holes = append(shell.holes, er)
	}
}

// Holes returns the hole rings attached to a shell.
func (er *EdgeRing) Holes() []*EdgeRing {
	return er.holes
}

// IsIsolated returns true if the ring's label covers a single geometry.
func (er *EdgeRing) IsIsolated() bool {
	return er.label.GeometryCount() == 1
}

// MaxNodeDegree returns twice the largest number of the ring's outgoing
// edges at any node of the cycle. A maximal ring with degree above two
// passes through a node more than once and splits into minimal rings.
func (er *EdgeRing) MaxNodeDegree() int {
	if er.maxNodeDegree < 0 {
		er.computeMaxNodeDegree()
	}
	return er.maxNodeDegree
}

func (er *EdgeRing) computeMaxNodeDegree() {
	er.maxNodeDegree = 0
	de := er.startDe
	for {
		degree := de.Node().Edges().OutgoingDegreeOf(er)
		if er.maxNodeDegree < degree {
			er.maxNodeDegree = degree
		}
		de = er.links.next(de)
		if de == er.startDe {
			break
		}
	}
	er.maxNodeDegree *= 2
}

// SetInResult marks the parent edge of every edge in the cycle as in the
// result.
func (er *EdgeRing) SetInResult() {
	de := er.startDe
	for {
		de.Edge().SetInResult(true)
		de = er.links.next(de)
		if de == er.startDe {
			break
		}
	}
}

// ContainsPoint returns true if p lies inside the ring but outside its
// holes.
func (er *EdgeRing) ContainsPoint(p geom.Coordinate) bool {
	if !geom.EnvelopeOf(er.pts...).CoversCoordinate(p) {
		return false
	}
	if !geom.PointInRing(p, er.pts) {
		return false
	}
	for _, hole := range er.holes {
		if hole.ContainsPoint(p) {
			return false
		}
	}
	return true
}

// LinkDirectedEdgesForMinimalEdgeRings prepares a maximal ring for
// splitting, re-linking its edges node by node into minimal cycles.
func (er *EdgeRing) LinkDirectedEdgesForMinimalEdgeRings() error {
	de := er.startDe
	for {
		if err := de.Node().Edges().LinkMinimalDirectedEdges(er); err != nil {
			return err
		}
		de = er.links.next(de)
		if de == er.startDe {
			break
		}
	}
	return nil
}

// BuildMinimalRings walks the minimal links of a maximal ring and returns
// the minimal rings it decomposes into.
func (er *EdgeRing) BuildMinimalRings() ([]*EdgeRing, error) {
	var minRings []*EdgeRing
	de := er.startDe
	for {
		if de.MinEdgeRing() == nil {
			minEr, err := NewEdgeRing(de, MinimalRingLinks)
			if err != nil {
				return nil, err
			}
			minRings = append(minRings, minEr)
		}
		de = er.links.next(de)
		if de == er.startDe {
			break
		}
	}
	return minRings, nil
}
