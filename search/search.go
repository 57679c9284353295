// SPDX-License-Identifier: MIT
// Package: lpgen/search
//
// search.go — greedy accept-if-strictly-better loop.
//
// Contract:
//   • Step 0 scores Config.Start and is always StateImproved.
//   • Step k ≥ 1 scores Neighbour(best, rng); the candidate becomes best only
//     on strict improvement in Config.Sense.
//   • Each step is paired with the accepted instance after that step, so
//     Objective(in) == step.Objective for every yielded pair.
//   • Exactly Config.Steps steps are yielded unless the consumer stops early
//     or an error occurs. Steps == 0 yields nothing.
//   • The iterator is single-use; a second Steps() call yields nothing.
//
// Determinism: all randomness flows from Config.Rand, consumed only by the
// neighbour operator.
//
// Complexity: Steps × (cost(Neighbour) + cost(Objective)).

package search

import (
	"fmt"
	"iter"
	"math"
	"math/rand"

	"github.com/katalvlaran/lpgen/instance"
	"github.com/katalvlaran/lpgen/neighbour"
)

const defaultSeed = 1

// Search is a configured, not yet consumed local search.
type Search struct {
	start     *instance.Instance
	objective Objective
	sense     Sense
	next      neighbour.Operator
	steps     int
	rng       *rand.Rand

	log       Logger
	observers []Observer

	used  bool
	best  *instance.Instance
	value float64
	err   error
}

// New validates cfg and returns a ready Search.
func New(cfg Config, opts ...Option) (*Search, error) {
	switch {
	case cfg.Start == nil:
		return nil, fmt.Errorf("New: %w", ErrNilStart)
	case cfg.Objective == nil:
		return nil, fmt.Errorf("New: %w", ErrNilObjective)
	case cfg.Neighbour == nil:
		return nil, fmt.Errorf("New: %w", ErrNilNeighbour)
	case cfg.Steps < 0:
		return nil, fmt.Errorf("New: steps=%d: %w", cfg.Steps, ErrBadSteps)
	case cfg.Sense != Minimize && cfg.Sense != Maximize:
		return nil, fmt.Errorf("New: %v: %w", cfg.Sense, ErrBadSense)
	}

	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(defaultSeed))
	}
	s := &Search{
		start:     cfg.Start,
		objective: cfg.Objective,
		sense:     cfg.Sense,
		next:      cfg.Neighbour,
		steps:     cfg.Steps,
		rng:       rng,
		log:       noopLogger{},
		value:     cfg.Sense.worst(),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Steps returns the lazy search trace.
func (s *Search) Steps() iter.Seq2[Step, *instance.Instance] {
	return func(yield func(Step, *instance.Instance) bool) {
		if s.used {
			return
		}
		s.used = true

		candidate := s.start
		for k := 0; k < s.steps; k++ {
			if k > 0 {
				var err error
				candidate, err = s.next(s.best, s.rng)
				if err != nil {
					s.err = fmt.Errorf("step %d: neighbour: %w", k, err)
					return
				}
			}

			v, err := s.objective(candidate)
			if err != nil {
				s.err = fmt.Errorf("step %d: objective: %w", k, err)
				return
			}
			if math.IsNaN(v) {
				s.err = fmt.Errorf("step %d: %w", k, ErrObjectiveNaN)
				return
			}

			state := StateRejectPoor
			if k == 0 || s.sense.better(v, s.value) {
				state = StateImproved
				s.best, s.value = candidate, v
			}
			step := Step{Index: k, Objective: s.value, Candidate: v, State: state, Label: state.String()}
			s.log.Print(fmt.Sprintf("search step %d: %s candidate=%g best=%g", k, state, v, s.value))

			for _, o := range s.observers {
				if err = o(step, s.best); err != nil {
					s.err = fmt.Errorf("step %d: observer: %w", k, err)
					return
				}
			}
			if !yield(step, s.best) {
				return
			}
		}
	}
}

// Err returns the error that stopped the iteration, if any.
func (s *Search) Err() error { return s.err }

// Best returns the incumbent instance and its objective value. Before any
// step has run it returns (nil, worst value for the sense).
func (s *Search) Best() (*instance.Instance, float64) { return s.best, s.value }

// Run drains the iterator and returns the collected trace and the best
// instance.
func Run(cfg Config, opts ...Option) ([]Step, *instance.Instance, error) {
	s, err := New(cfg, opts...)
	if err != nil {
		return nil, nil, err
	}
	trace := make([]Step, 0, cfg.Steps)
	for step := range s.Steps() {
		trace = append(trace, step)
	}
	if err = s.Err(); err != nil {
		return trace, nil, err
	}
	best, _ := s.Best()

	return trace, best, nil
}
