package planar

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestLabelZeroValue(t *testing.T) {
	var l Label
	test.That(t, l.IsNull(0))
	test.That(t, l.IsNull(1))
	test.That(t, !l.IsArea())
	test.That(t, !l.IsLine(0))
	test.T(t, l.GeometryCount(), 0)
}

func TestLabelConstruction(t *testing.T) {
	l := NewLabelFor(0, LocInterior)
	test.T(t, l.On(0), LocInterior)
	test.That(t, l.IsLine(0))
	test.That(t, l.IsNull(1))

	a := NewAreaLabelFor(1, LocBoundary, LocExterior, LocInterior)
	test.That(t, a.IsAreaAt(1))
	test.That(t, !a.IsAreaAt(0))
	test.T(t, a.Location(1, Left), LocExterior)
	test.T(t, a.Location(1, Right), LocInterior)
	test.T(t, a.GeometryCount(), 1)
}

func TestLabelMerge(t *testing.T) {
	l := NewLabelFor(0, LocInterior)
	o := NewAreaLabelFor(1, LocBoundary, LocExterior, LocInterior)
	m := l.Merge(o)
	test.T(t, m.On(0), LocInterior)
	test.T(t, m.On(1), LocBoundary)
	test.T(t, m.Location(1, Left), LocExterior)
	test.That(t, m.IsAreaAt(1))
	test.T(t, m.GeometryCount(), 2)

	// labelled slots are never overwritten
	m2 := NewLabelFor(0, LocExterior).Merge(NewLabelFor(0, LocInterior))
	test.T(t, m2.On(0), LocExterior)

	// merging an area label promotes a line label to an area label
	m3 := NewLabelFor(0, LocBoundary).Merge(NewAreaLabelFor(0, LocInterior, LocExterior, LocInterior))
	test.That(t, m3.IsAreaAt(0))
	test.T(t, m3.On(0), LocBoundary)
	test.T(t, m3.Location(0, Right), LocInterior)
}

func TestLabelFlip(t *testing.T) {
	l := NewAreaLabelFor(0, LocBoundary, LocExterior, LocInterior)
	f := l.Flip()
	test.T(t, f.On(0), LocBoundary)
	test.T(t, f.Location(0, Left), LocInterior)
	test.T(t, f.Location(0, Right), LocExterior)
	test.T(t, f.Flip(), l)
}

func TestLabelToLine(t *testing.T) {
	l := NewAreaLabelFor(0, LocBoundary, LocExterior, LocInterior).ToLine(0)
	test.That(t, l.IsLine(0))
	test.That(t, !l.IsArea())
	test.T(t, l.On(0), LocBoundary)
	test.T(t, l.Location(0, Left), LocNone)
}

func TestLabelAllPositions(t *testing.T) {
	l := NewAreaLabelFor(0, LocExterior, LocExterior, LocExterior)
	test.That(t, l.AllPositionsEqual(0, LocExterior))
	test.That(t, !l.AllPositionsEqual(0, LocInterior))

	p := NewAreaLabelFor(0, LocBoundary, LocNone, LocInterior)
	test.That(t, p.IsAnyNull(0))
	p = p.WithAllLocationsIfNone(0, LocExterior)
	test.That(t, !p.IsAnyNull(0))
	test.T(t, p.Location(0, Left), LocExterior)
	test.T(t, p.Location(0, Right), LocInterior)

	// a line label has no sides to be unlabelled
	test.That(t, !NewLabelFor(0, LocInterior).IsAnyNull(0))
	test.That(t, Label{}.IsAnyNull(0))
}
