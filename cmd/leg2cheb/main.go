// Command leg2cheb converts polynomial coefficients between the Chebyshev and the Legendre bases.
//
// Usage:
//
//	leg2cheb cheb2leg [--format binary|text|yaml] [--in file] [--out file] [--digest]
//	leg2cheb leg2cheb [--format binary|text|yaml] [--in file] [--out file] [--digest]
//	leg2cheb roundtrip [--size N] [--seed S]
//	leg2cheb approx [--function exp|cos|sin|log] [--degree N] [--basis legendre|chebyshev]
//
// Every flag can also be set through a LEG2CHEB_ prefixed environment variable
// (e.g. LEG2CHEB_LOG_LEVEL=debug) or a configuration file given with --config.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
