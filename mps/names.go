// SPDX-License-Identifier: MIT
// Package: lpgen/mps
//
// names.go — row and column naming schemes.
//
// A NameFn must be pure and deterministic: the same index always yields the
// same name. Names must be non-empty, free of whitespace and unique within
// their section; Write checks this.

package mps

import (
	"fmt"
	"strconv"
	"strings"
)

// NameFn maps a zero-based row or column index to its MPS name.
type NameFn func(idx int) string

// IndexName returns prefix + decimal index, e.g. "C0", "C1", ...
func IndexName(prefix string) NameFn {
	return func(idx int) string { return prefix + strconv.Itoa(idx) }
}

// PaddedName returns prefix + index zero-padded to width, e.g. with
// ("C", 7): "C0000000". Matches the COIN-OR default naming.
func PaddedName(prefix string, width int) NameFn {
	return func(idx int) string { return fmt.Sprintf("%s%0*d", prefix, width, idx) }
}

// LetterName returns spreadsheet-style column letters: 0→"A", 25→"Z",
// 26→"AA". Panics on a negative index.
func LetterName(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("mps: LetterName index %d < 0", idx))
	}
	var b []byte
	for i := idx; i >= 0; i = i/26 - 1 {
		b = append(b, byte('A'+i%26))
	}
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}

// Base36Name returns prefix + index in base 36, e.g. "x0", "xa", "x10".
func Base36Name(prefix string) NameFn {
	return func(idx int) string { return prefix + strconv.FormatInt(int64(idx), 36) }
}

// WithRowNames sets the constraint naming scheme. Panics on nil.
func WithRowNames(fn NameFn) Option {
	if fn == nil {
		panic("mps: WithRowNames(nil)")
	}
	return func(c *config) { c.rowName = fn }
}

// WithColumnNames sets the variable naming scheme. Panics on nil.
func WithColumnNames(fn NameFn) Option {
	if fn == nil {
		panic("mps: WithColumnNames(nil)")
	}
	return func(c *config) { c.colName = fn }
}

// names materialises count names from fn and checks them.
func names(fn NameFn, count int, reserved string) ([]string, error) {
	out := make([]string, count)
	seen := make(map[string]struct{}, count+1)
	seen[reserved] = struct{}{}
	for i := range out {
		name := fn(i)
		if name == "" || strings.ContainsAny(name, " \t\n") {
			return nil, fmt.Errorf("name %d %q: %w", i, name, ErrBadName)
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("name %d %q repeated: %w", i, name, ErrBadName)
		}
		seen[name] = struct{}{}
		out[i] = name
	}
	return out, nil
}
