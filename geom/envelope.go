package geom

import "fmt"

// Envelope is an axis-aligned bounding rectangle. An envelope with
// MaxX < MinX is null and contains nothing; grow envelopes from
// NewEnvelope or EnvelopeOf, not from the zero value.
type Envelope struct {
	MinX, MinY, MaxX, MaxY float64
}

// NewEnvelope returns the null envelope.
func NewEnvelope() Envelope {
	return Envelope{MinX: 1.0, MinY: 1.0, MaxX: -1.0, MaxY: -1.0}
}

// EnvelopeOf returns the smallest envelope containing all coords.
func EnvelopeOf(coords ...Coordinate) Envelope {
	env := NewEnvelope()
	for _, c := range coords {
		env = env.ExtendedBy(c)
	}
	return env
}

// IsNull returns true if the envelope contains nothing.
func (e Envelope) IsNull() bool {
	return e.MaxX < e.MinX
}

func (e Envelope) Width() float64 {
	if e.IsNull() {
		return 0.0
	}
	return e.MaxX - e.MinX
}

func (e Envelope) Height() float64 {
	if e.IsNull() {
		return 0.0
	}
	return e.MaxY - e.MinY
}

// ExtendedBy returns the envelope grown to contain c.
func (e Envelope) ExtendedBy(c Coordinate) Envelope {
	if e.IsNull() {
		return Envelope{MinX: c.X, MinY: c.Y, MaxX: c.X, MaxY: c.Y}
	}
	if c.X < e.MinX {
		e.MinX = c.X
	} else if e.MaxX < c.X {
		e.MaxX = c.X
	}
	if c.Y < e.MinY {
		e.MinY = c.Y
	} else if e.MaxY < c.Y {
		e.MaxY = c.Y
	}
	return e
}

// Union returns the envelope grown to contain o.
func (e Envelope) Union(o Envelope) Envelope {
	if o.IsNull() {
		return e
	} else if e.IsNull() {
		return o
	}
	if o.MinX < e.MinX {
		e.MinX = o.MinX
	}
	if o.MinY < e.MinY {
		e.MinY = o.MinY
	}
	if e.MaxX < o.MaxX {
		e.MaxX = o.MaxX
	}
	if e.MaxY < o.MaxY {
		e.MaxY = o.MaxY
	}
	return e
}

// Intersects returns true if both envelopes share at least one point.
func (e Envelope) Intersects(o Envelope) bool {
	if e.IsNull() || o.IsNull() {
		return false
	}
	return o.MinX <= e.MaxX && e.MinX <= o.MaxX && o.MinY <= e.MaxY && e.MinY <= o.MaxY
}

// Covers returns true if (x,y) lies inside or on the envelope.
func (e Envelope) Covers(x, y float64) bool {
	if e.IsNull() {
		return false
	}
	return e.MinX <= x && x <= e.MaxX && e.MinY <= y && y <= e.MaxY
}

// CoversCoordinate returns true if c lies inside or on the envelope.
func (e Envelope) CoversCoordinate(c Coordinate) bool {
	return e.Covers(c.X, c.Y)
}

func (e Envelope) String() string {
	if e.IsNull() {
		return "[null]"
	}
	return fmt.Sprintf("[%g,%g %g,%g]", e.MinX, e.MinY, e.MaxX, e.MaxY)
}

// SegmentEnvelopesIntersect tests whether the envelope of segment p0-p1
// intersects the envelope of segment q0-q1, without building either
// envelope.
func SegmentEnvelopesIntersect(p0, p1, q0, q1 Coordinate) bool {
	if minf(p0.X, p1.X) > maxf(q0.X, q1.X) {
		return false
	}
	if maxf(p0.X, p1.X) < minf(q0.X, q1.X) {
		return false
	}
	if minf(p0.Y, p1.Y) > maxf(q0.Y, q1.Y) {
		return false
	}
	if maxf(p0.Y, p1.Y) < minf(q0.Y, q1.Y) {
		return false
	}
	return true
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float64) float64 {
	if a < b {
		return b
	}
	return a
}
