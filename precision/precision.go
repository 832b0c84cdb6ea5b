// Package precision computes statistics on the error between reference and computed coefficients.
package precision

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
)

// Stats is a struct storing statistics about the absolute error between two
// slices of coefficients, and the corresponding precision in bits (-log2 of the error).
type Stats struct {
	N int

	MaxDelta    float64
	MinDelta    float64
	MeanDelta   float64
	MedianDelta float64
	STDDelta    float64

	MinPrecision    float64
	MaxPrecision    float64
	MeanPrecision   float64
	MedianPrecision float64
}

func (prec Stats) String() string {
	return fmt.Sprintf(`
┌─────────┬─────────┐
│    Log2 │ N=%-6d│
├─────────┼─────────┤
│MIN Prec │ %7.2f │
│MAX Prec │ %7.2f │
│AVG Prec │ %7.2f │
│MED Prec │ %7.2f │
└─────────┴─────────┘
Err STD : %5.2f Log2
`,
		prec.N,
		prec.MinPrecision,
		prec.MaxPrecision,
		prec.MeanPrecision,
		prec.MedianPrecision,
		math.Log2(prec.STDDelta))
}

// GetStats generates a Stats struct from the reference values want and the computed values have.
// The method panics if the two slices have different lengths.
// NaN errors are propagated to all the statistics.
func GetStats(want, have []float64) (prec Stats, err error) {

	if len(want) != len(have) {
		panic(fmt.Errorf("cannot GetStats: len(want)=%d != len(have)=%d", len(want), len(have)))
	}

	prec.N = len(want)

	if prec.N == 0 {
		return
	}

	delta := make(stats.Float64Data, prec.N)
	for i := range want {
		delta[i] = math.Abs(want[i] - have[i])
	}

	for i := range delta {
		if math.IsNaN(delta[i]) {
			nan := math.NaN()
			return Stats{N: prec.N,
				MaxDelta: nan, MinDelta: nan, MeanDelta: nan, MedianDelta: nan, STDDelta: nan,
				MinPrecision: nan, MaxPrecision: nan, MeanPrecision: nan, MedianPrecision: nan}, nil
		}
	}

	if prec.MaxDelta, err = delta.Max(); err != nil {
		return prec, fmt.Errorf("stats.Max: %w", err)
	}

	if prec.MinDelta, err = delta.Min(); err != nil {
		return prec, fmt.Errorf("stats.Min: %w", err)
	}

	if prec.MeanDelta, err = delta.Mean(); err != nil {
		return prec, fmt.Errorf("stats.Mean: %w", err)
	}

	if prec.MedianDelta, err = delta.Median(); err != nil {
		return prec, fmt.Errorf("stats.Median: %w", err)
	}

	if prec.STDDelta, err = delta.StandardDeviation(); err != nil {
		return prec, fmt.Errorf("stats.StandardDeviation: %w", err)
	}

	prec.MinPrecision = deltaToPrecision(prec.MaxDelta)
	prec.MaxPrecision = deltaToPrecision(prec.MinDelta)
	prec.MeanPrecision = deltaToPrecision(prec.MeanDelta)
	prec.MedianPrecision = deltaToPrecision(prec.MedianDelta)

	return
}

func deltaToPrecision(c float64) float64 {
	return math.Log2(1 / c)
}
