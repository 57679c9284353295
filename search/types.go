// SPDX-License-Identifier: MIT
// Package: lpgen/search

package search

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/lpgen/instance"
	"github.com/katalvlaran/lpgen/neighbour"
)

// Sense selects the optimisation direction.
type Sense int

const (
	// Minimize accepts candidates with a strictly smaller objective.
	Minimize Sense = iota
	// Maximize accepts candidates with a strictly larger objective.
	Maximize
)

// ParseSense maps "min"/"minimize" and "max"/"maximize" to a Sense.
func ParseSense(s string) (Sense, error) {
	switch s {
	case "min", "minimize":
		return Minimize, nil
	case "max", "maximize":
		return Maximize, nil
	default:
		return 0, fmt.Errorf("ParseSense: %q: %w", s, ErrBadSense)
	}
}

// String implements fmt.Stringer.
func (s Sense) String() string {
	switch s {
	case Minimize:
		return "min"
	case Maximize:
		return "max"
	default:
		return fmt.Sprintf("sense(%d)", int(s))
	}
}

// worst is the incumbent value before step 0.
func (s Sense) worst() float64 {
	if s == Maximize {
		return math.Inf(-1)
	}
	return math.Inf(1)
}

// better reports whether candidate strictly beats incumbent.
func (s Sense) better(candidate, incumbent float64) bool {
	if s == Maximize {
		return candidate > incumbent
	}
	return candidate < incumbent
}

// State classifies one search step.
type State int

const (
	// StateInitial is never yielded; it marks an engine that has not run.
	StateInitial State = iota
	// StateImproved marks an accepted candidate.
	StateImproved
	// StateRejectPoor marks a candidate that did not strictly improve.
	StateRejectPoor
)

// String implements fmt.Stringer. The values match the trace labels written
// by the CLI.
func (s State) String() string {
	switch s {
	case StateInitial:
		return "initial"
	case StateImproved:
		return "improved"
	case StateRejectPoor:
		return "reject_poor"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Step describes one evaluated candidate.
//
// Objective is the incumbent value after the step: the candidate's value
// when State is StateImproved, the previous best otherwise.
type Step struct {
	Index     int     `json:"search_step"`
	Objective float64 `json:"search_objective"`
	Candidate float64 `json:"candidate_objective"`
	State     State   `json:"-"`
	Label     string  `json:"search_update"`
}

// Objective scores an instance.
type Objective func(in *instance.Instance) (float64, error)

// Config holds the mandatory search inputs.
type Config struct {
	Start     *instance.Instance
	Objective Objective
	Sense     Sense
	Neighbour neighbour.Operator
	Steps     int        // total evaluations including the start instance
	Rand      *rand.Rand // nil means a fixed-seed stream
}

// Logger receives progress lines. *log.Logger and glog adapters satisfy it.
type Logger interface {
	Print(v ...any)
}

type noopLogger struct{}

func (noopLogger) Print(...any) {}

// Observer is called for every yielded step before the consumer sees it.
// A non-nil error stops the search and is reported through Err.
type Observer func(step Step, in *instance.Instance) error

// Option customises a Search.
type Option func(*Search)

// WithLogger installs l for per-step progress lines. Panics on nil.
func WithLogger(l Logger) Option {
	if l == nil {
		panic("search: WithLogger(nil)")
	}
	return func(s *Search) { s.log = l }
}

// WithObserver appends an observer. Observers run in registration order.
// Panics on nil.
func WithObserver(o Observer) Option {
	if o == nil {
		panic("search: WithObserver(nil)")
	}
	return func(s *Search) { s.observers = append(s.observers, o) }
}

// ImprovedOnly wraps o so it only sees improved steps (the usual "write the
// accepted instances" hook).
func ImprovedOnly(o Observer) Observer {
	return func(step Step, in *instance.Instance) error {
		if step.State != StateImproved {
			return nil
		}
		return o(step, in)
	}
}
