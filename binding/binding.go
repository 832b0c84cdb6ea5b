// Package binding connects the coefficient conversions to a host environment.
//
// A host environment is abstracted as an Adapter that supplies a flat sequence of
// input coefficients and receives the flat sequence of converted coefficients.
// The conversions themselves are not aware of the adapters.
package binding

import (
	"errors"
	"fmt"
	"io"

	"github.com/polybasis/leg2cheb/transform"
	"github.com/polybasis/leg2cheb/utils/structs"
)

// DefaultMaxCoefficients is the default bound on the number of coefficients an
// adapter accepts to read.
const DefaultMaxCoefficients = 1 << 24

var (
	// ErrUnknownFormat is returned by NewAdapter for an unsupported format name.
	ErrUnknownFormat = errors.New("unknown format")
	// ErrTooLarge is returned when the input holds more coefficients than an adapter accepts.
	ErrTooLarge = structs.ErrTooLarge
)

// Adapter is the interface of the host side of a conversion.
type Adapter interface {
	// ReadInput returns the input coefficients.
	ReadInput() ([]float64, error)
	// WriteOutput hands the converted coefficients to the host.
	WriteOutput(c []float64) error
}

// Formats lists the names accepted by NewAdapter.
var Formats = []string{"binary", "text", "yaml"}

// NewAdapter returns the Adapter for the given format reading on r and writing on w.
func NewAdapter(format string, r io.Reader, w io.Writer) (Adapter, error) {
	switch format {
	case "binary":
		return NewBinaryAdapter(r, w), nil
	case "text":
		return NewTextAdapter(r, w), nil
	case "yaml":
		return NewYAMLAdapter(r, w), nil
	default:
		return nil, fmt.Errorf("cannot NewAdapter: %q: %w", format, ErrUnknownFormat)
	}
}

// Run reads the input coefficients from a, converts them along d and writes the
// result back to a.
func Run(a Adapter, d transform.Direction) (err error) {

	var x []float64
	if x, err = a.ReadInput(); err != nil {
		return fmt.Errorf("%T.ReadInput: %w", a, err)
	}

	var c []float64
	if c, err = transform.Convert(d, x); err != nil {
		return fmt.Errorf("transform.Convert: %w", err)
	}

	if err = a.WriteOutput(c); err != nil {
		return fmt.Errorf("%T.WriteOutput: %w", a, err)
	}

	return
}
