// Package lpgen generates linear programming test instances with controlled
// structure and known optimal solutions, and searches the space of such
// instances for ones with chosen properties.
//
// An instance is max cᵀx s.t. Ax ≤ b, x ≥ 0. Instances are built in the
// encoded form (A, α, β), where α holds the magnitudes of the optimal primal,
// slack, dual and reduced-cost values and β marks the optimal basis. b and c
// follow from the constructor relation b = Ax + s, c = Aᵀy − r, so every
// encoded instance is optimal by construction.
//
// Layout:
//
//	instance/    — Encoded / Solved / Unsolved forms, annotations, solver contract
//	builder/     — bipartite degree generator, coefficient and solution samplers
//	neighbour/   — neighbourhood operators for local search
//	search/      — greedy local search engine (range-over-func trace)
//	simplex/     — in-process LP solver over gonum's simplex
//	store/       — tar archives of .npy blobs
//	mps/         — MPS writer (LP, IP, MIP; optional gzip)
//	features/    — coefficient and solution features, reference datasets
//	performance/ — clp and SCIP measurements via os/exec
//	cmd/lpgen/   — generate, naive, search and plot commands
//
// Quick start:
//
//	p := builder.DefaultEncodedParams()
//	in, err := builder.GenerateEncoded(p, builder.NewRand(42))
//	if err != nil { ... }
//	b, _ := in.Rhs()
//	c, _ := in.Objective()
//
//	go install github.com/katalvlaran/lpgen/cmd/lpgen@latest
package lpgen
