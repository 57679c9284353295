// SPDX-License-Identifier: MIT
// Package: lpgen/instance
//
// data.go — free-form annotations (features, solver statistics) attached to
// an instance. Annotations are not structural: operators never carry them
// over to neighbours and validators never look at them.

package instance

import (
	"fmt"
	"maps"
)

// Calculator computes annotations for an instance. Returned keys are merged
// into the instance data by Calculate.
type Calculator func(in *Instance) (map[string]any, error)

// Set stores value under key.
func (in *Instance) Set(key string, value any) {
	if in.data == nil {
		in.data = make(map[string]any)
	}
	in.data[key] = value
}

// Get returns the value stored under key.
func (in *Instance) Get(key string) (any, bool) {
	v, ok := in.data[key]
	return v, ok
}

// Float returns the value under key as float64. Integer values are converted;
// anything else reports false.
func (in *Instance) Float(key string) (float64, bool) {
	switch v := in.data[key].(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case bool:
		if v {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}

// Data returns a shallow copy of the annotation map (never nil).
func (in *Instance) Data() map[string]any {
	out := make(map[string]any, len(in.data))
	maps.Copy(out, in.data)

	return out
}

// Annotate merges kv into the annotation map, overwriting existing keys.
func (in *Instance) Annotate(kv map[string]any) {
	if len(kv) == 0 {
		return
	}
	if in.data == nil {
		in.data = make(map[string]any, len(kv))
	}
	maps.Copy(in.data, kv)
}

// Calculate runs every calculator on in, in order, and merges the results into
// its annotations. The first failing calculator aborts; annotations from the
// calculators before it are kept.
func Calculate(in *Instance, calcs ...Calculator) error {
	for i, calc := range calcs {
		kv, err := calc(in)
		if err != nil {
			return fmt.Errorf("Calculate: calculator %d: %w", i, err)
		}
		in.Annotate(kv)
	}

	return nil
}
