// Package store persists instances as tar archives of NumPy .npy blobs.
//
// Encoded archives hold canonical_lhs.npy, canonical_alpha.npy and
// canonical_beta.npy; LP archives hold canonical_lhs.npy, canonical_rhs.npy
// and canonical_objective.npy. Blobs are little-endian float64 in C order,
// so the files load directly with numpy.load. Round trips are bit-identical.
package store
