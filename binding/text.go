package binding

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// TextAdapter reads coefficients as whitespace separated decimal numbers and writes
// them one per line in the shortest representation that parses back to the same value.
// NaN, Inf, +Inf and -Inf are accepted.
type TextAdapter struct {
	r io.Reader
	w io.Writer

	// MaxCoefficients bounds the number of coefficients read.
	MaxCoefficients int
}

// NewTextAdapter returns a new TextAdapter reading on r and writing on w.
func NewTextAdapter(r io.Reader, w io.Writer) *TextAdapter {
	return &TextAdapter{r: r, w: w, MaxCoefficients: DefaultMaxCoefficients}
}

// ReadInput reads all the coefficients until EOF.
func (a *TextAdapter) ReadInput() (x []float64, err error) {

	scanner := bufio.NewScanner(a.r)
	scanner.Split(bufio.ScanWords)

	x = []float64{}

	for scanner.Scan() {

		if len(x) == a.MaxCoefficients {
			return nil, fmt.Errorf("cannot ReadInput: more than %d coefficients: %w", a.MaxCoefficients, ErrTooLarge)
		}

		var v float64
		if v, err = strconv.ParseFloat(scanner.Text(), 64); err != nil {
			return nil, fmt.Errorf("cannot ReadInput: coefficient %d: %w", len(x), err)
		}

		x = append(x, v)
	}

	if err = scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot ReadInput: %w", err)
	}

	return
}

// WriteOutput writes c, one coefficient per line.
func (a *TextAdapter) WriteOutput(c []float64) (err error) {

	w := bufio.NewWriter(a.w)

	buf := make([]byte, 0, 32)
	for _, v := range c {
		buf = strconv.AppendFloat(buf[:0], v, 'g', -1, 64)
		buf = append(buf, '\n')
		if _, err = w.Write(buf); err != nil {
			return
		}
	}

	return w.Flush()
}
