// SPDX-License-Identifier: MIT
// Package: lpgen/mps

package mps

import (
	"bufio"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/lpgen/instance"
)

const (
	defaultName = "LPGEN"
	objRow      = "OBJ"
)

var (
	// ErrVarTypes is returned when the variable type string does not have
	// one 'C' or 'I' per column.
	ErrVarTypes = errors.New("mps: variable types must be one 'C' or 'I' per column")

	// ErrBadName is returned when a naming scheme yields an empty, spaced or
	// repeated name.
	ErrBadName = errors.New("mps: invalid row or column name")
)

type config struct {
	name     string
	vtypes   string
	integral bool
	rowName  NameFn
	colName  NameFn
}

// Option customises the written model.
type Option func(*config)

// WithName sets the NAME card. Panics on an empty name or one containing
// whitespace.
func WithName(name string) Option {
	if name == "" || strings.ContainsAny(name, " \t\n") {
		panic(fmt.Sprintf("mps: invalid model name %q", name))
	}
	return func(c *config) { c.name = name }
}

// WithVarTypes marks column j integer when vtypes[j] == 'I'. Panics on
// characters other than 'C' and 'I'; the length is checked against the
// instance at write time.
func WithVarTypes(vtypes string) Option {
	if strings.Trim(vtypes, "CI") != "" {
		panic(fmt.Sprintf("mps: invalid variable types %q", vtypes))
	}
	return func(c *config) { c.vtypes = vtypes; c.integral = false }
}

// AllInteger marks every column integer.
func AllInteger() Option {
	return func(c *config) { c.integral = true; c.vtypes = "" }
}

func num(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

// neg negates v without producing -0.
func neg(v float64) float64 {
	if v == 0 {
		return 0
	}
	return -v
}

// Write writes in as an MPS model to w.
func Write(w io.Writer, in *instance.Instance, opts ...Option) error {
	cfg := config{name: defaultName, rowName: IndexName("R"), colName: IndexName("C")}
	for _, opt := range opts {
		opt(&cfg)
	}

	n, m := in.Variables(), in.Constraints()
	integer := make([]bool, n)
	switch {
	case cfg.integral:
		for j := range integer {
			integer[j] = true
		}
	case cfg.vtypes != "":
		if len(cfg.vtypes) != n {
			return fmt.Errorf("Write: %d types for %d columns: %w", len(cfg.vtypes), n, ErrVarTypes)
		}
		for j := range integer {
			integer[j] = cfg.vtypes[j] == 'I'
		}
	}

	rhs, err := in.Rhs()
	if err != nil {
		return fmt.Errorf("Write: %w", err)
	}
	obj, err := in.Objective()
	if err != nil {
		return fmt.Errorf("Write: %w", err)
	}
	a := in.Lhs()
	rows, err := names(cfg.rowName, m, objRow)
	if err != nil {
		return fmt.Errorf("Write: rows: %w", err)
	}
	cols, err := names(cfg.colName, n, "")
	if err != nil {
		return fmt.Errorf("Write: columns: %w", err)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "NAME %s\n", cfg.name)
	fmt.Fprintf(bw, "ROWS\n N %s\n", objRow)
	for _, r := range rows {
		fmt.Fprintf(bw, " L %s\n", r)
	}

	bw.WriteString("COLUMNS\n")
	inInt, marker := false, 0
	for j := 0; j < n; j++ {
		if integer[j] != inInt {
			kind := "'INTORG'"
			if inInt {
				kind = "'INTEND'"
			}
			fmt.Fprintf(bw, " MARKER%d 'MARKER' %s\n", marker, kind)
			marker++
			inInt = integer[j]
		}
		// the objective entry is always written so empty columns are declared
		fmt.Fprintf(bw, " %s %s %s\n", cols[j], objRow, num(neg(obj[j])))
		for i := 0; i < m; i++ {
			if v := a.At(i, j); v != 0 {
				fmt.Fprintf(bw, " %s %s %s\n", cols[j], rows[i], num(v))
			}
		}
	}
	if inInt {
		fmt.Fprintf(bw, " MARKER%d 'MARKER' 'INTEND'\n", marker)
	}

	bw.WriteString("RHS\n")
	for i, v := range rhs {
		if v != 0 {
			fmt.Fprintf(bw, " RHS %s %s\n", rows[i], num(v))
		}
	}

	bounds := false
	for j := 0; j < n; j++ {
		if !integer[j] {
			continue
		}
		if !bounds {
			bw.WriteString("BOUNDS\n")
			bounds = true
		}
		fmt.Fprintf(bw, " PL BND %s\n", cols[j])
	}
	bw.WriteString("ENDATA\n")

	return bw.Flush()
}

// WriteIP writes in with every column integer.
func WriteIP(w io.Writer, in *instance.Instance) error {
	return Write(w, in, AllInteger())
}

// WriteMIP writes in with per-column types vtypes ('C' or 'I').
func WriteMIP(w io.Writer, in *instance.Instance, vtypes string) error {
	return Write(w, in, WithVarTypes(vtypes))
}

// WriteFile writes in to path, gzip-compressed when path ends in ".gz".
func WriteFile(path string, in *instance.Instance, opts ...Option) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if !strings.HasSuffix(path, ".gz") {
		return Write(f, in, opts...)
	}
	zw := gzip.NewWriter(f)
	if err = Write(zw, in, opts...); err != nil {
		return err
	}
	return zw.Close()
}
