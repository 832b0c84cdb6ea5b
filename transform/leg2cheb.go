package transform

// Leg2ChebNew returns a newly allocated slice with the Chebyshev coefficients of the
// polynomial whose Legendre coefficients are x. The output has the length of x.
func Leg2ChebNew(x []float64) (c []float64) {
	c = make([]float64, len(x))
	leg2cheb(x, c)
	return
}

// Leg2Cheb writes on c the Chebyshev coefficients of the polynomial whose Legendre
// coefficients are x. The method panics if len(c) != len(x). c may overlap x.
func Leg2Cheb(x, c []float64) {
	apply(leg2cheb, x, c)
}

// leg2cheb evaluates c = M * x. The diagonal of M is carried over from one row
// to the next and updated after each row.
func leg2cheb(x, c []float64) {

	N := len(x)

	var Mii float64
	for i := 0; i < N; i++ {

		if i <= 1 {
			Mii = 1.
		}

		fi := float64(i)

		Mij := Mii
		c[i] = 0

		for j := i; j < N; j += 2 {

			c[i] += float64(Mij * x[j])

			fj := float64(j)
			Mij = (1. - ((2.*fj+3.)/(fj-fi+2.))/(fj+fi+2.)) * Mij
		}

		Mii = (fi + .5) / (fi + 1.) * Mii
	}
}
