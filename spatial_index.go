package planar

import (
	"github.com/IBAS0742/iGeospatial-change-sub003/geom"
	"github.com/dhconnelly/rtreego"
)

// SpatialIndex is the insert/query surface consumed from a spatial index:
// items are inserted under an envelope and queried back by envelope
// overlap. Query may return false positives; callers re-test candidates.
type SpatialIndex interface {
	Insert(env geom.Envelope, item interface{})
	Query(env geom.Envelope) []interface{}
}

// RTreeIndex is an R-tree backed SpatialIndex.
type RTreeIndex struct {
	tree *rtreego.Rtree
}

// NewRTreeIndex returns an empty two-dimensional R-tree.
func NewRTreeIndex() *RTreeIndex {
	return &RTreeIndex{tree: rtreego.NewTree(2, 4, 16)}
}

type rtreeEntry struct {
	rect rtreego.Rect
	item interface{}
}

func (e *rtreeEntry) Bounds() rtreego.Rect {
	return e.rect
}

// the tree requires strictly positive extents, so degenerate envelopes
// are padded
const minRectExtent = 1e-10

func rtreeRect(env geom.Envelope) rtreego.Rect {
	w := env.Width()
	if w < minRectExtent {
		w = minRectExtent
	}
	h := env.Height()
	if h < minRectExtent {
		h = minRectExtent
	}
	rect, err := rtreego.NewRect(rtreego.Point{env.MinX, env.MinY}, []float64{w, h})
	if err != nil {
		panic("bug: invalid index rectangle: " + err.Error())
	}
	return rect
}

func (idx *RTreeIndex) Insert(env geom.Envelope, item interface{}) {
	idx.tree.Insert(&rtreeEntry{rect: rtreeRect(env), item: item})
}

func (idx *RTreeIndex) Query(env geom.Envelope) []interface{} {
	spatials := idx.tree.SearchIntersect(rtreeRect(env))
	items := make([]interface{}, len(spatials))
	for i, s := range spatials {
		items[i] = s.(*rtreeEntry).item
	}
	return items
}

// Size returns the number of items in the index.
func (idx *RTreeIndex) Size() int {
	return idx.tree.Size()
}

// IndexedEdgeSetIntersector finds intersections by loading the monotone
// chains of one edge set into a spatial index and querying it with the
// chains of the other.
type IndexedEdgeSetIntersector struct {
	// NewIndex, when set, supplies the index implementation; the
	// default is an R-tree.
	NewIndex func() SpatialIndex
}

// NewIndexedEdgeSetIntersector returns an R-tree backed intersector.
func NewIndexedEdgeSetIntersector() *IndexedEdgeSetIntersector {
	return &IndexedEdgeSetIntersector{}
}

func (s *IndexedEdgeSetIntersector) newIndex() SpatialIndex {
	if s.NewIndex != nil {
		return s.NewIndex()
	}
	return NewRTreeIndex()
}

type indexedChain struct {
	chain *MonotoneChain
	id    int
}

func (s *IndexedEdgeSetIntersector) ComputeSelfIntersections(edges []*Edge, si *SegmentIntersector, testAllSegments bool) {
	index := s.newIndex()
	id := 0
	for _, e := range edges {
		mce := e.MonotoneChainEdge()
		for i := 0; i < mce.ChainCount(); i++ {
			mc := &MonotoneChain{mce: mce, chainIndex: i}
			index.Insert(mc.Envelope(), &indexedChain{chain: mc, id: id})
			id++
		}
	}
	queryID := 0
	for _, e := range edges {
		mce := e.MonotoneChainEdge()
		for i := 0; i < mce.ChainCount(); i++ {
			mc := &MonotoneChain{mce: mce, chainIndex: i}
			for _, item := range index.Query(mc.Envelope()) {
				cand := item.(*indexedChain)
				// each unordered pair once
				if cand.id <= queryID {
					continue
				}
				if !testAllSegments && cand.chain.mce.Edge() == e {
					continue
				}
				mc.ComputeIntersections(cand.chain, si)
			}
			queryID++
		}
	}
}

func (s *IndexedEdgeSetIntersector) ComputeIntersections(edges0, edges1 []*Edge, si *SegmentIntersector) {
	index := s.newIndex()
	for _, e := range edges0 {
		mce := e.MonotoneChainEdge()
		for i := 0; i < mce.ChainCount(); i++ {
			mc := &MonotoneChain{mce: mce, chainIndex: i}
			index.Insert(mc.Envelope(), &indexedChain{chain: mc})
		}
	}
	for _, e := range edges1 {
		mce := e.MonotoneChainEdge()
		for i := 0; i < mce.ChainCount(); i++ {
			mc := &MonotoneChain{mce: mce, chainIndex: i}
			for _, item := range index.Query(mc.Envelope()) {
				item.(*indexedChain).chain.ComputeIntersections(mc, si)
			}
		}
	}
}
