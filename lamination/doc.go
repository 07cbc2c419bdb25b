// Package lamination computes shear coordinates: for a curve joining two
// frozen vertices of a quiver, one integer per cluster vertex measuring how
// the curve crosses the corresponding arc of the underlying triangulated
// surface.
//
// # What
//
//   - Lamination — a curve named by its two frozen endpoint vertices.
//   - Embedding  — the explicit combinatorial embedding the crossing rule
//     depends on: the quiver of a triangulated convex polygon, mapping every
//     quiver vertex to an arc between two boundary corners. The rule is
//     never inferred from the quiver alone; there is no canonical planar
//     order to fall back on.
//   - Shear      — the shear vector of one lamination, aligned with the
//     cluster column order of the exchange matrix (+1 for a crossing in one
//     orientation, -1 for the opposite, 0 where the curve does not interact).
//   - Principal  — the elementary lamination whose shear vector is the unit
//     vector of one cluster vertex, used for principal coefficients.
//
// # Crossing rule
//
//	The curve enters through the midpoint of the starting boundary edge and
//	leaves through the midpoint of the ending one. Arcs separating the two
//	midpoints are crossed; they are ordered along the curve by fan order
//	around the starting corner, and consecutive crossings in the window
//	bounded by the two boundary edges alternate in sign. Whether the window
//	opens on +1 or -1 depends on whether the first windowed arc shares a
//	corner with a twice-visited endpoint of the boundary. Boundary arcs that
//	fall inside the window contribute no coordinate.
//
// # Determinism
//
//	Shear is a pure function of (quiver, embedding, lamination); repeated
//	calls yield identical vectors.
//
// # Errors
//
//   - ErrQuiverNil              — nil quiver.
//   - ErrEndpointNotFrozen      — a lamination endpoint is not a frozen vertex.
//   - ErrDisconnectedLamination — no edge-path joins the two endpoints
//     through the current edge set.
//   - ErrEmbeddingIncomplete    — a quiver vertex has no arc in the embedding.
//   - ErrBadArc                 — an embedding arc is degenerate, out of
//     range, or a frozen endpoint is not mapped to a boundary edge.
package lamination
