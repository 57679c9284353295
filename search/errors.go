// SPDX-License-Identifier: MIT
// Package: lpgen/search

package search

import "errors"

var (
	// ErrNilStart is returned by New when Config.Start is nil.
	ErrNilStart = errors.New("search: nil start instance")

	// ErrNilObjective is returned by New when Config.Objective is nil.
	ErrNilObjective = errors.New("search: nil objective")

	// ErrNilNeighbour is returned by New when Config.Neighbour is nil.
	ErrNilNeighbour = errors.New("search: nil neighbour operator")

	// ErrBadSteps is returned by New when Config.Steps < 0.
	ErrBadSteps = errors.New("search: steps must be >= 0")

	// ErrBadSense is returned by New for an unknown Sense.
	ErrBadSense = errors.New("search: unknown sense")

	// ErrObjectiveNaN is reported through Err when the objective returns NaN.
	ErrObjectiveNaN = errors.New("search: objective returned NaN")
)
