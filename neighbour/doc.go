// Package neighbour produces randomly perturbed copies of LP instances for
// local search.
//
// Two layers:
//
//   - Modifier[T]: an elementary in-place change of a vector or matrix the
//     caller owns (SwapBasisPair, ScaleVectorEntry, RemoveMatrixEntry,
//     AddMatrixEntry, ScaleMatrixEntry). Repeat applies one count times.
//   - Operator: an instance-to-instance function. The Encoded family works on
//     (A, alpha, beta) and always yields instances with a known optimum; the
//     Unsolved family works on (A, b, c) and needs a Solver downstream.
//
// Operators never modify their input. Each result is rebuilt through the
// instance constructors, so a modification that would break an invariant
// surfaces as an error instead of an invalid instance.
//
// Randomness comes only from the *rand.Rand passed to each call.
package neighbour
