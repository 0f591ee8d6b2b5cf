package planar

import "github.com/IBAS0742/iGeospatial-change-sub003/geom"

// A monotone chain is a maximal run of edge segments whose direction
// vectors stay within one quadrant. Within a chain no two segments can
// intersect each other, and the chain's envelope is spanned by its two end
// points, so chains prune intersection tests cheaply.

// MonotoneChainEdge is the decomposition of an edge into monotone chains.
type MonotoneChainEdge struct {
	e          *Edge
	pts        []geom.Coordinate
	startIndex []int
}

// NewMonotoneChainEdge decomposes e into monotone chains.
func NewMonotoneChainEdge(e *Edge) *MonotoneChainEdge {
	pts := e.Coordinates()
	return &MonotoneChainEdge{e: e, pts: pts, startIndex: chainStartIndexes(pts)}
}

// chainStartIndexes returns the point indexes at which the maximal
// quadrant-monotone runs of the chain start, followed by the final point
// index.
func chainStartIndexes(pts []geom.Coordinate) []int {
	start := 0
	startIndexes := []int{start}
	for start < len(pts)-1 {
		end := findChainEnd(pts, start)
		startIndexes = append(startIndexes, end)
		start = end
	}
	return startIndexes
}

// findChainEnd returns the index of the last point of the monotone chain
// starting at start.
func findChainEnd(pts []geom.Coordinate, start int) int {
	chainQuad := QuadrantOf(pts[start], pts[start+1])
	last := start + 1
	for last < len(pts) {
		quad := QuadrantOf(pts[last-1], pts[last])
		if quad != chainQuad {
			break
		}
		last++
	}
	return last - 1
}

// Edge returns the decomposed edge.
func (m *MonotoneChainEdge) Edge() *Edge {
	return m.e
}

// ChainCount returns the number of chains.
func (m *MonotoneChainEdge) ChainCount() int {
	return len(m.startIndex) - 1
}

// MinX returns the smaller x of the chain's two end points, which bounds
// the whole chain.
func (m *MonotoneChainEdge) MinX(chainIndex int) float64 {
	x1 := m.pts[m.startIndex[chainIndex]].X
	x2 := m.pts[m.startIndex[chainIndex+1]].X
	if x2 < x1 {
		return x2
	}
	return x1
}

// MaxX returns the larger x of the chain's two end points.
func (m *MonotoneChainEdge) MaxX(chainIndex int) float64 {
	x1 := m.pts[m.startIndex[chainIndex]].X
	x2 := m.pts[m.startIndex[chainIndex+1]].X
	if x1 < x2 {
		return x2
	}
	return x1
}

// ChainEnvelope returns the envelope of one chain, spanned by its end
// points.
func (m *MonotoneChainEdge) ChainEnvelope(chainIndex int) geom.Envelope {
	p0 := m.pts[m.startIndex[chainIndex]]
	p1 := m.pts[m.startIndex[chainIndex+1]]
	return geom.EnvelopeOf(p0, p1)
}

// ComputeIntersectsForChain finds the intersections between one chain of m
// and one chain of other, by recursively halving both chains and recursing
// only into halves whose envelopes overlap.
func (m *MonotoneChainEdge) ComputeIntersectsForChain(chainIndex0 int, other *MonotoneChainEdge, chainIndex1 int, si *SegmentIntersector) {
	m.computeIntersectsForChain(
		m.startIndex[chainIndex0], m.startIndex[chainIndex0+1],
		other,
		other.startIndex[chainIndex1], other.startIndex[chainIndex1+1],
		si)
}

func (m *MonotoneChainEdge) computeIntersectsForChain(start0, end0 int, other *MonotoneChainEdge, start1, end1 int, si *SegmentIntersector) {
	// down to a single segment pair
	if end0-start0 == 1 && end1-start1 == 1 {
		si.AddIntersections(m.e, start0, other.e, start1)
		return
	}
	if !geom.SegmentEnvelopesIntersect(m.pts[start0], m.pts[end0], other.pts[start1], other.pts[end1]) {
		return
	}
	mid0 := (start0 + end0) / 2
	mid1 := (start1 + end1) / 2
	if start0 < mid0 {
		if start1 < mid1 {
			m.computeIntersectsForChain(start0, mid0, other, start1, mid1, si)
		}
		if mid1 < end1 {
			m.computeIntersectsForChain(start0, mid0, other, mid1, end1, si)
		}
	}
	if mid0 < end0 {
		if start1 < mid1 {
			m.computeIntersectsForChain(mid0, end0, other, start1, mid1, si)
		}
		if mid1 < end1 {
			m.computeIntersectsForChain(mid0, end0, other, mid1, end1, si)
		}
	}
}

// MonotoneChain is a reference to one chain of a decomposed edge, the unit
// inserted into sweep lines and spatial indexes.
type MonotoneChain struct {
	mce        *MonotoneChainEdge
	chainIndex int
}

// ComputeIntersections finds the intersections between this chain and
// other.
func (mc *MonotoneChain) ComputeIntersections(other *MonotoneChain, si *SegmentIntersector) {
	mc.mce.ComputeIntersectsForChain(mc.chainIndex, other.mce, other.chainIndex, si)
}

// Envelope returns the chain's envelope.
func (mc *MonotoneChain) Envelope() geom.Envelope {
	return mc.mce.ChainEnvelope(mc.chainIndex)
}
