// SPDX-License-Identifier: MIT

// Package exchange projects a quiver onto its exchange matrix B: a square
// integer matrix indexed by cluster vertices only, with
// B[i][j] = net signed arc weight from cluster vertex i to cluster vertex j.
//
// # What
//
//   - Build(q, opts...) — a pure, deterministic projection of the current
//     edge multiset. It holds no state: rebuild after every edge change.
//     Frozen vertices never materialize rows or columns, although their
//     arcs persist in the quiver and transform under mutation.
//   - WithShearRows(...) — appends one labeled row per lamination under the
//     cluster rows, reproducing the extended matrix of the
//     triangulated-polygon model (cluster rows x_{i}, lamination rows u_{j}).
//   - Matrix helpers — At, Equal, Clone, IsSkewSymmetric, and an aligned
//     String rendering for reporting collaborators.
//
// # Determinism
//
//	Rows and columns follow the cluster insertion-index order of the quiver;
//	building twice from the same quiver yields identical matrices, and the
//	order of AddEdge calls with equal net contributions is irrelevant.
//
// # Errors
//
//   - ErrNilQuiver    — nil quiver passed to Build.
//   - ErrShearRowSize — an appended shear row does not match the cluster count.
package exchange
