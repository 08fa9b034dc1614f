package harmonica

import "errors"

var (
	// ErrShapeMismatch reports prism and magnetization tables whose
	// dimensions disagree, or coordinate arrays that cannot be broadcast.
	ErrShapeMismatch = errors.New("harmonica: shape mismatch")

	// ErrInvalidGeometry reports a prism whose boundaries are inverted.
	ErrInvalidGeometry = errors.New("harmonica: invalid prism geometry")

	// ErrInvalidComponent reports a magnetic field component name outside
	// the set accepted by PrismMagneticComponent.
	ErrInvalidComponent = errors.New("harmonica: invalid component")
)
