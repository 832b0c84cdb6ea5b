package binding

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLAdapter reads and writes coefficients as a YAML sequence of floats.
// Since YAML is a superset of JSON, a JSON array is also accepted as input.
// Non-finite values are written as .nan, .inf and -.inf.
type YAMLAdapter struct {
	r io.Reader
	w io.Writer

	// MaxCoefficients bounds the number of coefficients read.
	MaxCoefficients int
}

// NewYAMLAdapter returns a new YAMLAdapter reading on r and writing on w.
func NewYAMLAdapter(r io.Reader, w io.Writer) *YAMLAdapter {
	return &YAMLAdapter{r: r, w: w, MaxCoefficients: DefaultMaxCoefficients}
}

// ReadInput decodes the first YAML document of the input. An empty input
// is decoded as an empty sequence. The length of the sequence is checked
// against MaxCoefficients before its values are decoded.
func (a *YAMLAdapter) ReadInput() (x []float64, err error) {

	var doc yaml.Node
	if err = yaml.NewDecoder(a.r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return []float64{}, nil
		}
		return nil, fmt.Errorf("yaml.Decoder.Decode: %w", err)
	}

	seq := &doc
	if seq.Kind == yaml.DocumentNode && len(seq.Content) == 1 {
		seq = seq.Content[0]
	}

	if seq.Kind == yaml.SequenceNode && len(seq.Content) > a.MaxCoefficients {
		return nil, fmt.Errorf("cannot ReadInput: %d coefficients: %w", len(seq.Content), ErrTooLarge)
	}

	x = []float64{}
	if err = seq.Decode(&x); err != nil {
		return nil, fmt.Errorf("yaml.Node.Decode: %w", err)
	}

	return
}

// WriteOutput encodes c as a YAML sequence.
func (a *YAMLAdapter) WriteOutput(c []float64) (err error) {
	enc := yaml.NewEncoder(a.w)
	if err = enc.Encode(c); err != nil {
		return fmt.Errorf("yaml.Encoder.Encode: %w", err)
	}
	return enc.Close()
}
