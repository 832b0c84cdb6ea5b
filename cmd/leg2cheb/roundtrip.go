package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/polybasis/leg2cheb/binding"
	"github.com/polybasis/leg2cheb/precision"
	"github.com/polybasis/leg2cheb/transform"
	"github.com/polybasis/leg2cheb/utils/sampling"
)

func (a *app) newRoundTripCmd() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "roundtrip",
		Short: "Measure the precision of Leg2Cheb(Cheb2Leg(x)) and Cheb2Leg(Leg2Cheb(x)) on random coefficients",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {

			if a.cfg.Size < 0 || a.cfg.Size > binding.DefaultMaxCoefficients {
				return fmt.Errorf("invalid size %d: must be between 0 and %d", a.cfg.Size, binding.DefaultMaxCoefficients)
			}

			seed := a.cfg.Seed
			if seed == 0 {
				if seed, err = sampling.RandUint64(sampling.NewPRNG()); err != nil {
					return
				}
			}

			var prng *sampling.KeyedPRNG
			if prng, err = sampling.NewSeededPRNG(seed); err != nil {
				return fmt.Errorf("sampling.NewSeededPRNG: %w", err)
			}

			var x []float64
			if x, err = sampling.RandFloat64Slice(prng, -1, 1, a.cfg.Size); err != nil {
				return
			}

			a.log.Debugw("sampled coefficients", "n", a.cfg.Size, "seed", seed)

			for _, d := range []transform.Direction{transform.ChebyshevToLegendre, transform.LegendreToChebyshev} {

				var y, z []float64
				if y, err = transform.Convert(d, x); err != nil {
					return
				}
				if z, err = transform.Convert(d.Inverse(), y); err != nil {
					return
				}

				var prec precision.Stats
				if prec, err = precision.GetStats(x, z); err != nil {
					return
				}

				fmt.Fprintf(cmd.OutOrStdout(), "%s then %s:%s", d, d.Inverse(), prec.String())

				a.log.Infow("round trip", "direction", d, "n", prec.N, "seed", seed, "max_delta", prec.MaxDelta, "min_precision", prec.MinPrecision)
			}

			return
		},
	}

	cmd.Flags().Int("size", 1024, "number of coefficients")
	cmd.Flags().Uint64("seed", 0, "seed of the coefficients (0 draws a random seed)")

	return cmd
}
