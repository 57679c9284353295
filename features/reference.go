// SPDX-License-Identifier: MIT
// Package: lpgen/features

package features

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
)

var (
	// ErrNotNumeric is returned when a feature value is missing or not a
	// number.
	ErrNotNumeric = errors.New("features: value is not numeric")

	// ErrNoMatch is returned when no reference record satisfies a condition.
	ErrNoMatch = errors.New("features: no reference record matches")

	// ErrEmptyReference is returned when a reference dataset has no records.
	ErrEmptyReference = errors.New("features: empty reference dataset")
)

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case json.Number:
		f, err := x.Float64()
		return f, err == nil
	case bool:
		if x {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}

// Record is one row of a reference dataset: the features of one generated
// instance plus its "seed".
type Record map[string]any

// Float returns the numeric value stored under key.
func (r Record) Float(key string) (float64, bool) { return toFloat(r[key]) }

// Bool reports whether key holds boolean true.
func (r Record) Bool(key string) bool {
	b, ok := r[key].(bool)
	return ok && b
}

// Seed returns the integer seed the record was generated from.
func (r Record) Seed() (int64, error) {
	if n, ok := r["seed"].(json.Number); ok {
		return n.Int64()
	}
	f, ok := r.Float("seed")
	if !ok {
		return 0, fmt.Errorf("seed: %w", ErrNotNumeric)
	}
	return int64(f), nil
}

// Reference is a read-only dataset of feature records. It is loaded once and
// passed explicitly to whatever needs it.
type Reference struct {
	records []Record
}

// NewReference wraps records. The slice is copied.
func NewReference(records []Record) *Reference {
	return &Reference{records: append([]Record(nil), records...)}
}

// LoadReference decodes a JSON array of objects. Numbers keep full
// precision through json.Number.
func LoadReference(r io.Reader) (*Reference, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var records []Record
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("LoadReference: %w", err)
	}
	return &Reference{records: records}, nil
}

// LoadReferenceFile is LoadReference on the named file.
func LoadReferenceFile(path string) (*Reference, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadReference(f)
}

// Len returns the number of records.
func (ref *Reference) Len() int { return len(ref.records) }

// Sample draws records uniformly until one satisfies cond (nil accepts all).
func (ref *Reference) Sample(rng *rand.Rand, cond func(Record) bool) (Record, error) {
	if len(ref.records) == 0 {
		return nil, fmt.Errorf("Sample: %w", ErrEmptyReference)
	}
	eligible := ref.records
	if cond != nil {
		eligible = nil
		for _, rec := range ref.records {
			if cond(rec) {
				eligible = append(eligible, rec)
			}
		}
		if len(eligible) == 0 {
			return nil, fmt.Errorf("Sample: %w", ErrNoMatch)
		}
	}
	return eligible[rng.Intn(len(eligible))], nil
}

// Best draws count samples and returns the one with the lowest score.
// Ties keep the earliest draw.
func (ref *Reference) Best(rng *rand.Rand, count int, cond func(Record) bool, score func(Record) float64) (Record, error) {
	if count < 1 {
		return nil, fmt.Errorf("Best: count=%d: %w", count, ErrNoMatch)
	}
	var (
		best  Record
		value float64
	)
	for k := 0; k < count; k++ {
		rec, err := ref.Sample(rng, cond)
		if err != nil {
			return nil, fmt.Errorf("Best: %w", err)
		}
		if v := score(rec); best == nil || v < value {
			best, value = rec, v
		}
	}
	return best, nil
}
