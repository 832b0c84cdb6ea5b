/*
Package leg2cheb converts polynomial coefficients between the Chebyshev (first kind) and the
Legendre bases. The conversions live in the transform package. The binding package connects
them to host environments. The cmd/leg2cheb command exposes them on the command line.
*/
package leg2cheb
