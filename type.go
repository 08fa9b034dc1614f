package harmonica

import (
	"fmt"

	vec3d "github.com/flywave/go3d/float64/vec3"
)

// Float constrains the storage and accumulation width of the results.
type Float interface {
	~float32 | ~float64
}

// Component names a single Cartesian component of the magnetic field.
type Component string

const (
	Easting  Component = "easting"
	Northing Component = "northing"
	Upward   Component = "upward"
)

// ForwardFunc computes one component of the magnetic field of a single
// prism at a single observation point, in tesla.
type ForwardFunc func(easting, northing, upward float64, prism Prism, magnetization vec3d.T) float64

// Forward returns the forward modelling function for the component.
func (c Component) Forward() (ForwardFunc, error) {
	switch c {
	case Easting:
		return MagneticEasting, nil
	case Northing:
		return MagneticNorthing, nil
	case Upward:
		return MagneticUpward, nil
	}
	return nil, fmt.Errorf("%w: %q, must be either %q, %q or %q",
		ErrInvalidComponent, string(c), Easting, Northing, Upward)
}
