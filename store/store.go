// SPDX-License-Identifier: MIT
// Package: lpgen/store

package store

import (
	"archive/tar"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/lpgen/instance"
	"github.com/sbinet/npyio"
	"gonum.org/v1/gonum/mat"
)

// Archive member names.
const (
	MemberLhs       = "canonical_lhs.npy"
	MemberAlpha     = "canonical_alpha.npy"
	MemberBeta      = "canonical_beta.npy"
	MemberRhs       = "canonical_rhs.npy"
	MemberObjective = "canonical_objective.npy"
)

// ErrMissingMember is returned when a required member is absent.
var ErrMissingMember = errors.New("store: archive member missing")

type member struct {
	name string
	val  any // mat.Matrix or []float64
}

// writeArchive writes members in order as a tar stream.
func writeArchive(w io.Writer, members []member) error {
	tw := tar.NewWriter(w)
	var buf bytes.Buffer
	for _, mb := range members {
		buf.Reset()
		if err := npyio.Write(&buf, mb.val); err != nil {
			return fmt.Errorf("write %s: %w", mb.name, err)
		}
		hdr := &tar.Header{
			Name:     mb.name,
			Mode:     0o644,
			Size:     int64(buf.Len()),
			Typeflag: tar.TypeReg,
		}
		if err := tw.WriteHeader(hdr); err != nil {
			return fmt.Errorf("write %s: %w", mb.name, err)
		}
		if _, err := tw.Write(buf.Bytes()); err != nil {
			return fmt.Errorf("write %s: %w", mb.name, err)
		}
	}

	return tw.Close()
}

// readArchive loads every regular member of the tar stream into memory.
func readArchive(r io.Reader) (map[string][]byte, error) {
	tr := tar.NewReader(r)
	out := make(map[string][]byte)
	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read archive: %w", err)
		}
		if hdr.Typeflag != tar.TypeReg {
			continue
		}
		data, err := io.ReadAll(tr)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", hdr.Name, err)
		}
		out[hdr.Name] = data
	}
}

func blob(members map[string][]byte, name string) ([]byte, error) {
	data, ok := members[name]
	if !ok {
		return nil, fmt.Errorf("%s: %w", name, ErrMissingMember)
	}
	return data, nil
}

func readMatrix(members map[string][]byte, name string) (*mat.Dense, error) {
	data, err := blob(members, name)
	if err != nil {
		return nil, err
	}
	var m mat.Dense
	if err = npyio.Read(bytes.NewReader(data), &m); err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return &m, nil
}

// readVector flattens the blob; rank mismatches surface as length errors in
// the instance constructors.
func readVector(members map[string][]byte, name string) ([]float64, error) {
	data, err := blob(members, name)
	if err != nil {
		return nil, err
	}
	var v []float64
	if err = npyio.Read(bytes.NewReader(data), &v); err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return v, nil
}

// WriteEncoded writes (A, alpha, beta) of in. Any Kind is accepted; alpha
// and beta are derived when in is not Encoded.
func WriteEncoded(w io.Writer, in *instance.Instance) error {
	alpha, err := in.Alpha()
	if err != nil {
		return fmt.Errorf("WriteEncoded: %w", err)
	}
	beta, err := in.Beta()
	if err != nil {
		return fmt.Errorf("WriteEncoded: %w", err)
	}

	return writeArchive(w, []member{
		{MemberLhs, in.Lhs()},
		{MemberAlpha, alpha},
		{MemberBeta, beta},
	})
}

// ReadEncoded reads an Encoded archive and validates it via
// instance.NewEncoded.
func ReadEncoded(r io.Reader, opts ...instance.Option) (*instance.Instance, error) {
	members, err := readArchive(r)
	if err != nil {
		return nil, fmt.Errorf("ReadEncoded: %w", err)
	}
	lhs, err := readMatrix(members, MemberLhs)
	if err != nil {
		return nil, fmt.Errorf("ReadEncoded: %w", err)
	}
	alpha, err := readVector(members, MemberAlpha)
	if err != nil {
		return nil, fmt.Errorf("ReadEncoded: %w", err)
	}
	beta, err := readVector(members, MemberBeta)
	if err != nil {
		return nil, fmt.Errorf("ReadEncoded: %w", err)
	}

	return instance.NewEncoded(lhs, alpha, beta, opts...)
}

// WriteLP writes (A, b, c) of in.
func WriteLP(w io.Writer, in *instance.Instance) error {
	rhs, err := in.Rhs()
	if err != nil {
		return fmt.Errorf("WriteLP: %w", err)
	}
	obj, err := in.Objective()
	if err != nil {
		return fmt.Errorf("WriteLP: %w", err)
	}

	return writeArchive(w, []member{
		{MemberLhs, in.Lhs()},
		{MemberRhs, rhs},
		{MemberObjective, obj},
	})
}

// ReadLP reads an LP archive as an Unsolved instance. Pass
// instance.WithSolver to make its solution derivable.
func ReadLP(r io.Reader, opts ...instance.Option) (*instance.Instance, error) {
	members, err := readArchive(r)
	if err != nil {
		return nil, fmt.Errorf("ReadLP: %w", err)
	}
	lhs, err := readMatrix(members, MemberLhs)
	if err != nil {
		return nil, fmt.Errorf("ReadLP: %w", err)
	}
	rhs, err := readVector(members, MemberRhs)
	if err != nil {
		return nil, fmt.Errorf("ReadLP: %w", err)
	}
	obj, err := readVector(members, MemberObjective)
	if err != nil {
		return nil, fmt.Errorf("ReadLP: %w", err)
	}

	return instance.NewUnsolved(lhs, rhs, obj, opts...)
}

// writeFile creates path and streams write into it.
func writeFile(path string, in *instance.Instance, write func(io.Writer, *instance.Instance) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return write(f, in)
}

func readFile(path string, read func(io.Reader, ...instance.Option) (*instance.Instance, error), opts []instance.Option) (*instance.Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return read(f, opts...)
}

// WriteEncodedFile writes an Encoded archive to path.
func WriteEncodedFile(path string, in *instance.Instance) error {
	return writeFile(path, in, WriteEncoded)
}

// ReadEncodedFile reads an Encoded archive from path.
func ReadEncodedFile(path string, opts ...instance.Option) (*instance.Instance, error) {
	return readFile(path, ReadEncoded, opts)
}

// WriteLPFile writes an LP archive to path.
func WriteLPFile(path string, in *instance.Instance) error {
	return writeFile(path, in, WriteLP)
}

// ReadLPFile reads an LP archive from path.
func ReadLPFile(path string, opts ...instance.Option) (*instance.Instance, error) {
	return readFile(path, ReadLP, opts)
}
