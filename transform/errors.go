package transform

import "errors"

var (
	// ErrUnknownDirection is returned when a Direction is neither ChebyshevToLegendre nor LegendreToChebyshev.
	ErrUnknownDirection = errors.New("unknown direction")
	// ErrUnsupportedBasis is returned when a polynomial is neither in the Chebyshev nor in the Legendre basis.
	ErrUnsupportedBasis = errors.New("unsupported basis")
)
