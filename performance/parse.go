// SPDX-License-Identifier: MIT
// Package: lpgen/performance

package performance

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// ErrNoStatistics is returned when solver output lacks the expected
// statistics block.
var ErrNoStatistics = errors.New("performance: statistics not found in solver output")

var (
	clpOptimal = regexp.MustCompile(`Optimal objective +([0-9eE\-.+]+) +- +([0-9]+) +iterations +time +([0-9.]+)`)
	clpFlops   = regexp.MustCompile(`flop count +([0-9]+)`)
	scipStrong = regexp.MustCompile(`strong branching +: +([0-9.]+) +([0-9]+) +([0-9]+) +([0-9.]+)`)
)

// ClpResult is the outcome of one clp run. When Solved is false Iterations
// and Time are -1 and Objective is meaningless.
type ClpResult struct {
	Solved     bool
	Objective  float64
	Iterations int
	Time       float64
	Flops      int // -1 when clp did not report a flop count
}

// ParseClp extracts the optimal objective, iteration count, time and
// optional flop count from clp's stdout. Output without an optimal line
// (infeasible or unbounded runs) yields Solved == false.
func ParseClp(out string) ClpResult {
	res := ClpResult{Iterations: -1, Time: -1, Flops: -1}
	m := clpOptimal.FindStringSubmatch(out)
	if m == nil {
		return res
	}
	obj, err1 := strconv.ParseFloat(m[1], 64)
	it, err2 := strconv.Atoi(m[2])
	tm, err3 := strconv.ParseFloat(m[3], 64)
	if err1 != nil || err2 != nil || err3 != nil {
		return res
	}
	res = ClpResult{Solved: true, Objective: obj, Iterations: it, Time: tm, Flops: -1}
	if f := clpFlops.FindStringSubmatch(out); f != nil {
		if n, err := strconv.Atoi(f[1]); err == nil {
			res.Flops = n
		}
	}
	return res
}

// StrongBranchResult holds SCIP's root strong branching statistics.
type StrongBranchResult struct {
	Time       float64
	Calls      int
	Iterations int
	PerCall    float64
}

// ParseStrongBranch extracts the "strong branching" statistics row from
// SCIP's "display statistics" output.
func ParseStrongBranch(out string) (StrongBranchResult, error) {
	m := scipStrong.FindStringSubmatch(out)
	if m == nil {
		return StrongBranchResult{}, fmt.Errorf("ParseStrongBranch: %w", ErrNoStatistics)
	}
	var (
		res  StrongBranchResult
		errs [4]error
	)
	res.Time, errs[0] = strconv.ParseFloat(m[1], 64)
	res.Calls, errs[1] = strconv.Atoi(m[2])
	res.Iterations, errs[2] = strconv.Atoi(m[3])
	res.PerCall, errs[3] = strconv.ParseFloat(m[4], 64)
	if err := errors.Join(errs[:]...); err != nil {
		return StrongBranchResult{}, fmt.Errorf("ParseStrongBranch: %w", err)
	}
	return res, nil
}
