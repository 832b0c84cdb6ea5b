package binding

import (
	"io"

	"github.com/polybasis/leg2cheb/utils/structs"
)

// BinaryAdapter reads and writes coefficients in the binary format of
// structs.Vector[float64]: the number of coefficients followed by the
// coefficients, each as a little-endian 64-bit word.
type BinaryAdapter struct {
	r io.Reader
	w io.Writer

	// MaxCoefficients bounds the declared length of the input.
	// The bound is checked before the input is allocated.
	MaxCoefficients int
}

// NewBinaryAdapter returns a new BinaryAdapter reading on r and writing on w.
func NewBinaryAdapter(r io.Reader, w io.Writer) *BinaryAdapter {
	return &BinaryAdapter{r: r, w: w, MaxCoefficients: DefaultMaxCoefficients}
}

// ReadInput reads a vector of coefficients.
func (a *BinaryAdapter) ReadInput() (x []float64, err error) {
	var v structs.Vector[float64]
	if _, err = v.ReadFromLimit(a.r, a.MaxCoefficients); err != nil {
		return nil, err
	}
	return v, nil
}

// WriteOutput writes c as a vector of coefficients.
func (a *BinaryAdapter) WriteOutput(c []float64) (err error) {
	_, err = structs.Vector[float64](c).WriteTo(a.w)
	return
}
