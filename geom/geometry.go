package geom

// Geometry is a point, line string, polygon or collection thereof. Only the
// structure needed to build topology graphs is modelled; rings are line
// strings whose first and last coordinates coincide.
type Geometry interface {
	Envelope() Envelope
}

// Point is a single coordinate.
type Point struct {
	Coord Coordinate
}

func (p Point) Envelope() Envelope {
	return EnvelopeOf(p.Coord)
}

// LineString is a chain of two or more coordinates.
type LineString struct {
	Coords []Coordinate
}

func (l LineString) Envelope() Envelope {
	return EnvelopeOf(l.Coords...)
}

// IsClosed returns true if the line ends where it starts.
func (l LineString) IsClosed() bool {
	if len(l.Coords) == 0 {
		return false
	}
	return l.Coords[0].Equals2D(l.Coords[len(l.Coords)-1])
}

// IsRing returns true if the line is closed and has enough points to
// enclose an area.
func (l LineString) IsRing() bool {
	return 4 <= len(l.Coords) && l.IsClosed()
}

// Polygon is a shell ring with zero or more hole rings.
type Polygon struct {
	Shell LineString
	Holes []LineString
}

func (p Polygon) Envelope() Envelope {
	return p.Shell.Envelope()
}

// Collection is an ordered set of geometries.
type Collection []Geometry

func (c Collection) Envelope() Envelope {
	env := NewEnvelope()
	for _, g := range c {
		env = env.Union(g.Envelope())
	}
	return env
}
