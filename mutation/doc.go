// Package mutation implements one-step cluster-algebra seed mutation over a
// quiver: the sign/magnitude update rule applied at a chosen cluster vertex.
//
// # What
//
//   - Mutate(q, at) — applies the standard rule at cluster vertex k = at:
//
//     b'_ij = -b_ij                                   if i = k or j = k
//     b'_ij = b_ij + sign(b_ik) · max(b_ik·b_kj, 0)   otherwise
//
//     uniformly over the full directed edge multiset, so arcs incident to
//     frozen vertices are updated too even though frozen rows never appear
//     in the materialized exchange matrix. Arcs whose new net weight is
//     zero are pruned; a sign flip of a net weight reverses the stored arc
//     direction. The frozen/cluster partition is untouched; the pivot's
//     flip counter advances, appending a prime to its variable label.
//   - Apply(q, names...) — a mutation sequence, left to right.
//   - Hooks — WithOnReverse and WithOnAdjust observe arc rewrites, in the
//     manner of traversal hooks.
//
// # Invariants
//
//   - All new weights derive from the pre-mutation snapshot, never from
//     partially updated state: the update is simultaneous by construction,
//     since Mutate returns a fresh quiver and leaves its input untouched.
//   - Mutation is an involution: mutating twice at the same vertex
//     restores the original edge multiset and exchange matrix exactly.
//   - Skew-symmetry of the cluster block survives any mutation sequence.
//
// # Determinism
//
//	The result is a pure function of (quiver, vertex); evaluation order over
//	vertex pairs is unobservable.
//
// # Complexity
//
//	O(V²) pairwise pass over the vertex set; memory O(V + E) for the result.
//
// # Errors
//
//   - ErrQuiverNil           — nil quiver pointer.
//   - quiver.ErrUnknownVertex — the pivot name is not registered.
//   - ErrFrozenMutation      — the pivot is a frozen vertex; the input
//     quiver is left untouched (it always is).
package mutation
