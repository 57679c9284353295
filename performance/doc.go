// Package performance measures solver effort on instances by running the
// clp and scip command-line solvers as subprocesses and parsing their
// output.
//
// The binaries must be on PATH (or configured explicitly). Output parsing is
// separated into pure functions so it can be tested without the solvers.
package performance
