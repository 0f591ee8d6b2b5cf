package planar

import "strings"

// Label records the topological location of a graph component relative to
// up to two input geometries. For each geometry it holds the location On
// the component and, when the geometry is an area, the locations in the
// plane to the Left and Right of the component.
//
// Label is a value type: mutators return the updated label and never alias
// shared state. The zero value is fully unlabelled.
type Label struct {
	loc  [2][3]Location
	area [2]bool
}

// NewLabel returns a label with the On location of both geometries set.
func NewLabel(on Location) Label {
	var l Label
	l.loc[0][On] = on
	l.loc[1][On] = on
	return l
}

// NewLabelFor returns a label with the On location of one geometry set.
func NewLabelFor(geomIndex int, on Location) Label {
	var l Label
	l.loc[geomIndex][On] = on
	return l
}

// NewAreaLabel returns a label with all three locations of both geometries
// set.
func NewAreaLabel(on, left, right Location) Label {
	var l Label
	for g := 0; g < 2; g++ {
		l.loc[g] = [3]Location{on, left, right}
		l.area[g] = true
	}
	return l
}

// NewAreaLabelFor returns a label with all three locations of one geometry
// set.
func NewAreaLabelFor(geomIndex int, on, left, right Location) Label {
	var l Label
	l.loc[geomIndex] = [3]Location{on, left, right}
	l.area[geomIndex] = true
	return l
}

// Location returns the location for a geometry at a position.
func (l Label) Location(geomIndex int, pos Position) Location {
	return l.loc[geomIndex][pos]
}

// On returns the On location for a geometry.
func (l Label) On(geomIndex int) Location {
	return l.loc[geomIndex][On]
}

// WithLocation returns the label with one location set.
func (l Label) WithLocation(geomIndex int, pos Position, loc Location) Label {
	if pos != On {
		l.area[geomIndex] = true
	}
	l.loc[geomIndex][pos] = loc
	return l
}

// WithOn returns the label with the On location of a geometry set.
func (l Label) WithOn(geomIndex int, loc Location) Label {
	l.loc[geomIndex][On] = loc
	return l
}

// WithAllLocations returns the label with all three locations of a geometry
// set to loc.
func (l Label) WithAllLocations(geomIndex int, loc Location) Label {
	l.loc[geomIndex] = [3]Location{loc, loc, loc}
	return l
}

// WithAllLocationsIfNone returns the label with every unlabelled position
// of a geometry set to loc.
func (l Label) WithAllLocationsIfNone(geomIndex int, loc Location) Label {
	for pos := range l.loc[geomIndex] {
		if l.loc[geomIndex][pos] == LocNone {
			l.loc[geomIndex][pos] = loc
		}
	}
	return l
}

// Merge returns the label with every unlabelled slot filled from o.
// Labelled slots are never overwritten. A line label merged with an area
// label becomes an area label.
func (l Label) Merge(o Label) Label {
	for g := 0; g < 2; g++ {
		if o.area[g] && !l.area[g] {
			l.area[g] = true
		}
		for pos := range l.loc[g] {
			if l.loc[g][pos] == LocNone {
				l.loc[g][pos] = o.loc[g][pos]
			}
		}
	}
	return l
}

// Flip returns the label with the Left and Right locations of both
// geometries swapped, describing the same component traversed in the
// opposite direction.
func (l Label) Flip() Label {
	for g := 0; g < 2; g++ {
		l.loc[g][Left], l.loc[g][Right] = l.loc[g][Right], l.loc[g][Left]
	}
	return l
}

// ToLine returns the label with the side locations of a geometry dropped,
// leaving a pure On label.
func (l Label) ToLine(geomIndex int) Label {
	l.area[geomIndex] = false
	l.loc[geomIndex][Left] = LocNone
	l.loc[geomIndex][Right] = LocNone
	return l
}

// IsArea returns true if either geometry carries side locations.
func (l Label) IsArea() bool {
	return l.area[0] || l.area[1]
}

// IsAreaAt returns true if the given geometry carries side locations.
func (l Label) IsAreaAt(geomIndex int) bool {
	return l.area[geomIndex]
}

// IsLine returns true if the given geometry is labelled On only.
func (l Label) IsLine(geomIndex int) bool {
	return !l.area[geomIndex] && l.loc[geomIndex][On] != LocNone
}

// IsNull returns true if the given geometry has no location at all.
func (l Label) IsNull(geomIndex int) bool {
	for _, loc := range l.loc[geomIndex] {
		if loc != LocNone {
			return false
		}
	}
	return true
}

// IsAnyNull returns true if any position of the given geometry is
// unlabelled.
func (l Label) IsAnyNull(geomIndex int) bool {
	for pos := range l.loc[geomIndex] {
		if l.loc[geomIndex][pos] == LocNone {
			if Position(pos) == On || l.area[geomIndex] {
				return true
			}
		}
	}
	return false
}

// AllPositionsEqual returns true if every position of the given geometry
// has location loc.
func (l Label) AllPositionsEqual(geomIndex int, loc Location) bool {
	for _, cur := range l.loc[geomIndex] {
		if cur != loc {
			return false
		}
	}
	return true
}

// GeometryCount returns the number of geometries for which the label has
// any location.
func (l Label) GeometryCount() int {
	count := 0
	for g := 0; g < 2; g++ {
		if !l.IsNull(g) {
			count++
		}
	}
	return count
}

func (l Label) String() string {
	var sb strings.Builder
	for g := 0; g < 2; g++ {
		if g == 1 {
			sb.WriteByte('/')
		}
		sb.WriteByte(l.loc[g][On].Symbol())
		if l.area[g] {
			sb.WriteByte(l.loc[g][Left].Symbol())
			sb.WriteByte(l.loc[g][Right].Symbol())
		}
	}
	return sb.String()
}
