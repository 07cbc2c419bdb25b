// Package quiver provides the core Quiver aggregate: a registry of named
// frozen and cluster vertices plus a signed directed edge multiset whose net
// weights encode a cluster-algebra exchange matrix.
//
// # What
//
//   - Vertices carry a Kind tag (Frozen or Cluster) and a stable per-kind
//     Index assigned in insertion order. Names are unique across both kinds.
//   - Edges are directed and weighted. Multiple arcs between the same ordered
//     pair accumulate into a single net signed weight; an arc u→v with net
//     weight w is the same datum as v→u with weight -w, and only the positive
//     orientation is materialized. Self-loops are rejected.
//   - A net weight that accumulates to zero is equivalent to no arc at all
//     and is removed from storage immediately.
//   - Read-only snapshots (Vertices, Arcs, NetWeight) feed the exchange,
//     mutation, and lamination packages as well as rendering collaborators.
//
// # Why
//
//	The quiver of a cluster-algebra seed is exactly this structure: cluster
//	vertices index the rows and columns of the exchange matrix B, frozen
//	vertices contribute coefficient arcs that never appear in B but still
//	transform under mutation.
//
// # Determinism
//
//	Vertices() and Arcs() return stable orders (cluster vertices first, each
//	kind by insertion index; arcs by endpoint order). The same sequence of
//	AddVertex/AddEdge calls — or any reordering of AddEdge calls with the
//	same net contributions — produces an identical quiver.
//
// # Concurrency
//
//	A Quiver is a single logical resource owned by one caller at a time.
//	No internal locking is performed: concurrent mutation of the same
//	instance is undefined behavior and must be serialized by the caller.
//	Pure queries on a quiescent quiver are safe from any goroutine.
//
// # Errors
//
//   - ErrQuiverNil      — nil *Quiver passed to a package function.
//   - ErrEmptyName      — vertex name is the empty string.
//   - ErrDuplicateName  — vertex name already registered.
//   - ErrUnknownVertex  — operation referenced an unregistered name.
//   - ErrSelfLoop       — edge endpoints coincide.
//   - ErrBadWeight      — zero edge weight supplied (a zero arc is no arc).
package quiver
