// Package search runs a greedy local search over LP instances.
//
// A Search starts from one instance, scores it with an Objective, and then
// repeatedly asks a neighbour.Operator for a candidate derived from the best
// instance accepted so far. A candidate replaces the incumbent only when it
// is strictly better in the configured Sense.
//
// The trace is exposed as a range-over-func iterator:
//
//	s, err := search.New(search.Config{...})
//	for step, in := range s.Steps() {
//		...
//	}
//	if err := s.Err(); err != nil { ... }
//
// One step is yielded per evaluated candidate, improved or not, paired with
// the instance accepted after that step; the candidate's own value is in
// Step.Candidate. Breaking out of the loop stops the search
// with no further evaluation.
package search
