package harmonica

import (
	"fmt"

	vec3d "github.com/flywave/go3d/float64/vec3"
)

// Coordinates holds the easting, northing and upward coordinates of the
// observation points in meters, defined on a Cartesian coordinate
// system. The three sequences must have the same length, except that any
// of them may hold a single value, which is broadcast against the
// others.
type Coordinates struct {
	Easting  []float64
	Northing []float64
	Upward   []float64
}

// NewCoordinates builds observation point coordinates from the three
// coordinate sequences.
func NewCoordinates(easting, northing, upward []float64) Coordinates {
	return Coordinates{Easting: easting, Northing: northing, Upward: upward}
}

// ScatterCoordinates builds observation point coordinates from scattered
// points, one coordinate triple per point.
func ScatterCoordinates(points []vec3d.T) Coordinates {
	easting := make([]float64, len(points))
	northing := make([]float64, len(points))
	upward := make([]float64, len(points))
	for i, p := range points {
		easting[i] = p[0]
		northing[i] = p[1]
		upward[i] = p[2]
	}
	return Coordinates{Easting: easting, Northing: northing, Upward: upward}
}

// Size returns the broadcast number of observation points.
func (c Coordinates) Size() int {
	n := len(c.Easting)
	if len(c.Northing) > n {
		n = len(c.Northing)
	}
	if len(c.Upward) > n {
		n = len(c.Upward)
	}
	return n
}

// broadcast returns the three coordinate sequences expanded to a common
// length. Single-value sequences are repeated; any other length mismatch
// is an error.
func (c Coordinates) broadcast() (easting, northing, upward []float64, err error) {
	n := c.Size()
	if easting, err = broadcastTo(c.Easting, n, "easting"); err != nil {
		return nil, nil, nil, err
	}
	if northing, err = broadcastTo(c.Northing, n, "northing"); err != nil {
		return nil, nil, nil, err
	}
	if upward, err = broadcastTo(c.Upward, n, "upward"); err != nil {
		return nil, nil, nil, err
	}
	return easting, northing, upward, nil
}

func broadcastTo(values []float64, n int, name string) ([]float64, error) {
	switch len(values) {
	case n:
		return values, nil
	case 1:
		out := make([]float64, n)
		for i := range out {
			out[i] = values[0]
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: %s coordinates with %d values cannot be broadcast to %d points",
		ErrShapeMismatch, name, len(values), n)
}
