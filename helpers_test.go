package planar

import "github.com/IBAS0742/iGeospatial-change-sub003/geom"

func pt(x, y float64) geom.Coordinate {
	return geom.Coordinate{X: x, Y: y}
}

func pts(xys ...float64) []geom.Coordinate {
	coords := make([]geom.Coordinate, 0, len(xys)/2)
	for i := 0; i < len(xys); i += 2 {
		coords = append(coords, geom.Coordinate{X: xys[i], Y: xys[i+1]})
	}
	return coords
}

func line(xys ...float64) geom.LineString {
	return geom.LineString{Coords: pts(xys...)}
}

// unitSquare is counter-clockwise and closed.
func unitSquare() []geom.Coordinate {
	return pts(0.0, 0.0, 1.0, 0.0, 1.0, 1.0, 0.0, 1.0, 0.0, 0.0)
}

func areaLabel0() Label {
	return NewAreaLabelFor(0, LocBoundary, LocExterior, LocInterior)
}
