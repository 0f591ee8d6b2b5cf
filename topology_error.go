package planar

import (
	"fmt"

	"github.com/IBAS0742/iGeospatial-change-sub003/geom"
)

// TopologyError indicates that the input was not correctly noded or is
// otherwise topologically inconsistent. The operation that detected it is
// aborted; no repair is attempted. Coord is the location at which the
// inconsistency was found.
type TopologyError struct {
	Msg   string
	Coord geom.Coordinate
}

func topologyErrorf(c geom.Coordinate, format string, args ...interface{}) *TopologyError {
	return &TopologyError{Msg: fmt.Sprintf(format, args...), Coord: c}
}

func (e *TopologyError) Error() string {
	return fmt.Sprintf("topology error at %v: %s", e.Coord, e.Msg)
}
