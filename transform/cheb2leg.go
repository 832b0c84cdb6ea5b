package transform

// Cheb2LegNew returns a newly allocated slice with the Legendre coefficients of the
// polynomial whose Chebyshev coefficients are x. The output has the length of x.
func Cheb2LegNew(x []float64) (c []float64) {
	c = make([]float64, len(x))
	cheb2leg(x, c)
	return
}

// Cheb2Leg writes on c the Legendre coefficients of the polynomial whose Chebyshev
// coefficients are x. The method panics if len(c) != len(x). c may overlap x.
func Cheb2Leg(x, c []float64) {
	apply(cheb2leg, x, c)
}

// cheb2leg evaluates c = L * x. The rows of L are computed scaled by 1/(i+0.5),
// which is applied at the end of each row.
//
// The explicit float64 conversions on the accumulated products prevent their fusion
// with the addition, so that the output is bit-identical on all architectures.
// The other products of the recurrence are exact integers.
func cheb2leg(x, c []float64) {

	N := len(x)

	if N == 0 {
		return
	}

	// First coefficient: L[0][j] = -1/(j^2-1) for even j.
	c[0] = x[0]
	for j := 2; j < N; j += 2 {
		Lij := -1. / (float64(j*j) - 1.)
		c[0] += float64(Lij * x[j])
	}

	// Remaining coefficients.
	Lii := 1.
	for i := 1; i < N; i++ {

		fi := float64(i)

		// Diagonal is updated before being used.
		Lii = fi / (fi + .5) * Lii

		Lij := Lii
		c[i] = 0

		for j := i; j < N; j += 2 {

			c[i] += float64(Lij * x[j])

			fj := float64(j)
			Lij = (1 - 2.*(2.*fj*(fj+2.)+fi*(fi+1.))/((fj-fi+2.)*(fi+fj+3.))/fj) * Lij
		}

		c[i] *= fi + 0.5
	}
}
