// Package builder samples the random ingredients of LP test instances and
// assembles them into instances.
//
// The package offers the following key components:
//
//   - Sparsity pattern (bipartite graph between variables and constraints):
//     – DegreeDist:              degree sequence with tunable skew.
//     – ExpectedBipartiteDegree: Chung-Lu pairwise Bernoulli trials.
//     – GenerateByDegree:        both of the above for a target density.
//     – ConnectRemaining:        repair of isolated rows/columns.
//     – GenerateEdges:           sorted, de-duplicated union; no empty row or column.
//   - Coefficients (CoeffFn implementations):
//     – NormalCoeffFn (default), ConstantCoeffFn, UniformCoeffFn.
//   - Solution samplers:
//     – GenerateBeta:  basis indicator with exactly m ones.
//     – GenerateAlpha: integer-minus-fraction primal magnitudes, log-normal duals.
//   - Naive samplers: GenerateRhs, GenerateObjective.
//   - Pipelines: GenerateLHS, GenerateEncoded, GenerateNaive, with parameter
//     bundles (EncodedParams, NaiveParams) and their random draws
//     (RandomEncodedParams, RandomNaiveParams).
//   - Randomness: NewRand, DeriveRand, StreamRand, SystemSeeds.
//
// Guarantees:
//
//   - Deterministic: a fixed seed and call order fix every draw. All
//     distributions (gonum distuv) read from the caller's *rand.Rand.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Sentinel runtime errors for invalid parameters, wrapped with the
//     method name (ErrBadSize, ErrInvalidProbability, ErrDegreeCapacity, ...).
//   - The pairwise sampler is quadratic in n·m; intended sizes are tens to low
//     hundreds of rows and columns.
package builder
