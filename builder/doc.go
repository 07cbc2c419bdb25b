// SPDX-License-Identifier: MIT

// Package builder constructs canonical cluster-algebra seeds
// deterministically: triangulated convex polygons (with their embeddings
// and optional principal laminations) and linear type-A quivers.
//
// # What
//
//   - Build(opts, cons...) — single orchestrator: resolves functional
//     options into an immutable config, then applies the constructors in
//     order to one shared Result.
//   - Polygon(n) — the quiver of a triangulated convex n-gon: boundary
//     edges become frozen vertices e0..e{n-1}, diagonals become cluster
//     vertices x1..x{n-3}, and each triangle contributes a cycle of arrows
//     between its arcs. The triangulation defaults to the fan from corner 0
//     and can be overridden with WithChords. The polygon's combinatorial
//     embedding is returned alongside the quiver, ready for shear
//     computations; WithPrincipal adds one elementary lamination per
//     cluster vertex.
//   - Linear(n) — the type A_n path seed x1 → x2 → ... → xn (no embedding).
//
// # Determinism
//
//	Same options and constructor order ⇒ identical quivers, embeddings, and
//	laminations. Vertex names are emitted in ascending index order and arcs
//	in ascending triangle order; there is no randomness anywhere.
//
// # Errors
//
//   - ErrTooFewCorners   — Polygon(n) with n < 3.
//   - ErrTooFewVertices  — Linear(n) with n < 1.
//   - ErrChordCount      — a custom triangulation without exactly n-3 chords.
//   - ErrBadChord        — a chord that is degenerate, out of range, a
//     boundary edge, or a duplicate.
//   - ErrCrossingChords  — two chords that cross; not a triangulation.
//   - ErrConstructFailed — a nil constructor was passed to Build.
package builder
