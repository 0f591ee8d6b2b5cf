package planar

import "fmt"

// depthNull marks a depth that has not been assigned yet.
const depthNull = -1

func depthAtLocation(loc Location) int {
	switch loc {
	case LocExterior:
		return 0
	case LocInterior:
		return 1
	}
	return depthNull
}

// Depth records, for each input geometry, the number of enclosing area
// interiors on the left and right side of an edge. Depths accumulate from
// the labels of coincident edges and are normalized to the 0/1 range that
// side labels can express.
type Depth struct {
	depth [2][3]int
}

// NewDepth returns a depth with every slot unassigned.
func NewDepth() Depth {
	var d Depth
	for g := 0; g < 2; g++ {
		for pos := range d.depth[g] {
			d.depth[g][pos] = depthNull
		}
	}
	return d
}

// Depth returns the depth for a geometry at a position, or -1 if
// unassigned.
func (d *Depth) Depth(geomIndex int, pos Position) int {
	return d.depth[geomIndex][pos]
}

// SetDepth assigns the depth for a geometry at a position.
func (d *Depth) SetDepth(geomIndex int, pos Position, depth int) {
	d.depth[geomIndex][pos] = depth
}

// Location returns the area location implied by the depth: interior for a
// positive depth, exterior otherwise.
func (d *Depth) Location(geomIndex int, pos Position) Location {
	if d.depth[geomIndex][pos] <= 0 {
		return LocExterior
	}
	return LocInterior
}

// IsNull returns true if no slot of any geometry has been assigned.
func (d *Depth) IsNull() bool {
	for g := 0; g < 2; g++ {
		for pos := range d.depth[g] {
			if d.depth[g][pos] != depthNull {
				return false
			}
		}
	}
	return true
}

// IsNullAt returns true if no slot of the given geometry has been
// assigned.
func (d *Depth) IsNullAt(geomIndex int) bool {
	return d.depth[geomIndex][1] == depthNull
}

// Add accumulates the side locations of a label: each Interior side
// deepens the corresponding slot by one, each Exterior side anchors an
// unassigned slot at zero.
func (d *Depth) Add(l Label) {
	for g := 0; g < 2; g++ {
		for pos := Left; pos <= Right; pos++ {
			loc := l.Location(g, pos)
			if loc != LocInterior && loc != LocExterior {
				continue
			}
			if d.depth[g][pos] == depthNull {
				d.depth[g][pos] = depthAtLocation(loc)
			} else {
				d.depth[g][pos] += depthAtLocation(loc)
			}
		}
	}
}

// AddLocation deepens one slot if loc is Interior.
func (d *Depth) AddLocation(geomIndex int, pos Position, loc Location) {
	if loc == LocInterior {
		d.depth[geomIndex][pos]++
	}
}

// Delta returns the difference between the left and right depth of a
// geometry.
func (d *Depth) Delta(geomIndex int) int {
	return d.depth[geomIndex][Right] - d.depth[geomIndex][Left]
}

// Normalize reduces all assigned depths to 0 or 1, preserving which side
// is deeper. A normalized depth can be read back as a side label via
// Location.
func (d *Depth) Normalize() {
	for g := 0; g < 2; g++ {
		if d.IsNullAt(g) {
			continue
		}
		minDepth := d.depth[g][1]
		if d.depth[g][2] < minDepth {
			minDepth = d.depth[g][2]
		}
		if minDepth < 0 {
			minDepth = 0
		}
		for pos := 1; pos < 3; pos++ {
			newDepth := 0
			if minDepth < d.depth[g][pos] {
				newDepth = 1
			}
			d.depth[g][pos] = newDepth
		}
	}
}

func (d *Depth) String() string {
	return fmt.Sprintf("A: %d,%d B: %d,%d",
		d.depth[0][1], d.depth[0][2], d.depth[1][1], d.depth[1][2])
}
