package harmonica

import (
	"gonum.org/v1/gonum/mat"
)

// teslaToNanotesla converts the raw field values to the unit used by
// every returned result.
const teslaToNanotesla = 1e9

// PrismMagnetic computes the magnetic field of rectangular prisms on the
// observation points, in nanotesla.
//
// The prism table holds one prism per row with the boundaries west,
// east, south, north, bottom, top in meters; the magnetization table
// holds the row-aligned magnetization vectors in A/m with the components
// easting, northing, upward. The three field components are returned in
// that same order, one value per observation point.
//
// The computation runs in parallel across observation points unless the
// Serial option is given. The type parameter selects the storage and
// accumulation width of the results.
func PrismMagnetic[T Float](coordinates Coordinates, prisms, magnetization mat.Matrix, opts ...Option) (be, bn, bu []T, err error) {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	easting, northing, upward, err := coordinates.broadcast()
	if err != nil {
		return nil, nil, nil, err
	}
	if !cfg.disableChecks {
		if err := runSanityChecks(prisms, magnetization); err != nil {
			return nil, nil, nil, err
		}
	}
	model, vectors := discardNullPrisms(asPrisms(prisms), asVectors(magnetization))

	be = make([]T, len(easting))
	bn = make([]T, len(easting))
	bu = make([]T, len(easting))
	body := func(start, end int) {
		for l := start; l < end; l++ {
			for m := range model {
				ce, cn, cu := MagneticField(easting[l], northing[l], upward[l], model[m], vectors[m])
				be[l] += T(ce)
				bn[l] += T(cn)
				bu[l] += T(cu)
			}
			if cfg.progress != nil {
				cfg.progress.Update(1)
			}
		}
	}
	if cfg.parallel {
		parallelFor(cfg.workers, len(easting), body)
	} else {
		body(0, len(easting))
	}

	scale(be, teslaToNanotesla)
	scale(bn, teslaToNanotesla)
	scale(bu, teslaToNanotesla)
	return be, bn, bu, nil
}

// PrismMagneticComponent computes a single component of the magnetic
// field of rectangular prisms on the observation points, in nanotesla.
//
// Use this function only to compute a single component; PrismMagnetic
// computes the three components more efficiently than three separate
// calls.
func PrismMagneticComponent[T Float](coordinates Coordinates, prisms, magnetization mat.Matrix, component Component, opts ...Option) ([]T, error) {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	easting, northing, upward, err := coordinates.broadcast()
	if err != nil {
		return nil, err
	}
	forward, err := component.Forward()
	if err != nil {
		return nil, err
	}
	if !cfg.disableChecks {
		if err := runSanityChecks(prisms, magnetization); err != nil {
			return nil, err
		}
	}
	model, vectors := discardNullPrisms(asPrisms(prisms), asVectors(magnetization))

	result := make([]T, len(easting))
	body := func(start, end int) {
		for l := start; l < end; l++ {
			for m := range model {
				result[l] += T(forward(easting[l], northing[l], upward[l], model[m], vectors[m]))
			}
			if cfg.progress != nil {
				cfg.progress.Update(1)
			}
		}
	}
	if cfg.parallel {
		parallelFor(cfg.workers, len(easting), body)
	} else {
		body(0, len(easting))
	}

	scale(result, teslaToNanotesla)
	return result, nil
}

func scale[T Float](values []T, factor float64) {
	f := T(factor)
	for i := range values {
		values[i] *= f
	}
}
