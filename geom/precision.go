package geom

import "math"

// PrecisionModel maps coordinates onto a precision grid. The zero value is
// the floating model, which leaves coordinates untouched.
type PrecisionModel struct {
	scale float64
}

// Floating returns the full double-precision model.
func Floating() PrecisionModel {
	return PrecisionModel{}
}

// Fixed returns a model that snaps coordinates to a grid of spacing
// 1/scale. Scale must be positive.
func Fixed(scale float64) PrecisionModel {
	if scale <= 0.0 {
		panic("bug: precision scale must be positive")
	}
	return PrecisionModel{scale: scale}
}

// IsFloating returns true if the model performs no snapping.
func (pm PrecisionModel) IsFloating() bool {
	return pm.scale == 0.0
}

// Scale returns the grid scale, or zero for the floating model.
func (pm PrecisionModel) Scale() float64 {
	return pm.scale
}

// MakePrecise returns c snapped onto the precision grid. Z is preserved.
func (pm PrecisionModel) MakePrecise(c Coordinate) Coordinate {
	if pm.scale == 0.0 {
		return c
	}
	c.X = math.Round(c.X*pm.scale) / pm.scale
	c.Y = math.Round(c.Y*pm.scale) / pm.scale
	return c
}
