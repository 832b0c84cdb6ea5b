package main

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/spf13/cobra"

	"github.com/polybasis/leg2cheb/binding"
	"github.com/polybasis/leg2cheb/transform"
	"github.com/polybasis/leg2cheb/utils/bignum"
)

// approxPrecision is the precision, in bits, of the interpolation.
const approxPrecision = 128

var approxFunctionNames = []string{"exp", "cos", "sin", "log"}

var approxFunctions = map[string]func(x *big.Float) *big.Float{
	"exp": bignum.Exp,
	"cos": bignum.Cos,
	"sin": bignum.Sin,
	// ln(x+2), which is analytic on [-1, 1]
	"log": func(x *big.Float) *big.Float {
		y := new(big.Float).SetPrec(x.Prec()).Add(x, bignum.NewFloat(2, x.Prec()))
		return bignum.Log(y)
	},
}

func (a *app) newApproxCmd() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "approx",
		Short: "Write the coefficients of the Chebyshev interpolant of a function on [-1, 1]",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {

			f, ok := approxFunctions[a.cfg.Function]
			if !ok {
				return fmt.Errorf("invalid function %q: must be one of %s", a.cfg.Function, strings.Join(approxFunctionNames, ", "))
			}

			if a.cfg.Degree < 0 {
				return fmt.Errorf("invalid degree %d: must be non-negative", a.cfg.Degree)
			}

			p := bignum.ChebyshevApproximation(f, bignum.NewInterval(-1, 1, a.cfg.Degree, approxPrecision))

			switch strings.ToLower(a.cfg.Basis) {
			case "chebyshev":
			case "legendre":
				if p, err = transform.ConvertPolynomial(p); err != nil {
					return
				}
			default:
				return fmt.Errorf("invalid basis %q: must be chebyshev or legendre", a.cfg.Basis)
			}

			var adapter binding.Adapter
			if adapter, err = binding.NewAdapter(a.cfg.Format, nil, cmd.OutOrStdout()); err != nil {
				return
			}

			a.log.Infow("approximated function", "function", a.cfg.Function, "degree", a.cfg.Degree, "basis", basisName(p.Basis))

			return adapter.WriteOutput(p.Float64s())
		},
	}

	cmd.Flags().String("function", "exp", "function to approximate: "+strings.Join(approxFunctionNames, ", "))
	cmd.Flags().Int("degree", 32, "degree of the interpolant")
	cmd.Flags().String("basis", "legendre", "basis of the output coefficients: chebyshev or legendre")

	return cmd
}
