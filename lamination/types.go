// Package lamination defines laminations, combinatorial embeddings, and
// shear vectors over a quiver.
//
// This file declares the data types, sentinel errors, and embedding
// validation.
package lamination

import (
	"errors"

	"github.com/eunsung-lim/cluster-algebra/quiver"
)

// Sentinel errors for shear computation.
var (
	// ErrQuiverNil is returned if a nil quiver pointer is passed.
	ErrQuiverNil = errors.New("lamination: quiver is nil")

	// ErrEndpointNotFrozen is returned when a lamination endpoint is not a
	// frozen vertex of the quiver.
	ErrEndpointNotFrozen = errors.New("lamination: endpoint is not a frozen vertex")

	// ErrDisconnectedLamination is returned when no edge-path joins the two
	// frozen endpoints through the current edge set.
	ErrDisconnectedLamination = errors.New("lamination: endpoints not connected by the edge set")

	// ErrEmbeddingIncomplete is returned when the embedding does not map
	// every vertex of the quiver to an arc.
	ErrEmbeddingIncomplete = errors.New("lamination: embedding does not cover the quiver")

	// ErrBadArc is returned for degenerate or out-of-range embedding arcs,
	// or when a frozen vertex is not mapped to a boundary edge.
	ErrBadArc = errors.New("lamination: bad embedding arc")
)

// Lamination is a curve on the underlying surface, specified by the names
// of the two frozen vertices (boundary edges of the polygon) it runs
// between. Its only observable effect is the shear vector it induces.
type Lamination struct {
	// From is the starting frozen vertex name.
	From string

	// To is the ending frozen vertex name.
	To string
}

// Arc is one arc of the embedding: an unordered pair of boundary-corner
// indices of the triangulated polygon. Boundary edges join adjacent
// corners; diagonals join non-adjacent ones.
type Arc struct {
	// A and B are corner indices in [0, Corners).
	A, B int
}

// Embedding is the explicit combinatorial embedding of a quiver: the
// triangulated convex polygon whose arcs the quiver's vertices stand for.
// The shear crossing rule is defined relative to it and is never guessed
// from the quiver's edge set alone.
type Embedding struct {
	// Corners is the number of boundary corners of the polygon.
	Corners int

	// Arcs maps every quiver vertex name to its polygon arc.
	Arcs map[string]Arc
}

// ShearVector is one integer per cluster vertex, aligned with the cluster
// column order of the exchange matrix.
type ShearVector []int64

// Validate checks the embedding against a quiver: at least three corners,
// every quiver vertex mapped, all arcs in range and non-degenerate, and
// every frozen vertex mapped to a boundary edge (adjacent corners).
//
// Errors: ErrQuiverNil, ErrEmbeddingIncomplete, ErrBadArc.
// Complexity: O(V).
func (e Embedding) Validate(q *quiver.Quiver) error {
	if q == nil {
		return ErrQuiverNil
	}
	if e.Corners < 3 {
		return ErrBadArc
	}
	for _, v := range q.Vertices() {
		arc, ok := e.Arcs[v.Name]
		if !ok {
			return ErrEmbeddingIncomplete
		}
		if arc.A < 0 || arc.A >= e.Corners || arc.B < 0 || arc.B >= e.Corners || arc.A == arc.B {
			return ErrBadArc
		}
		if v.Kind == quiver.Frozen && !e.adjacent(arc) {
			return ErrBadArc
		}
	}

	return nil
}

// adjacent reports whether an arc joins two neighboring boundary corners.
func (e Embedding) adjacent(a Arc) bool {
	d := a.A - a.B
	if d < 0 {
		d = -d
	}

	return d == 1 || d == e.Corners-1
}

// boundaryStart returns the lower corner s of a boundary edge (s, s+1 mod n).
func (e Embedding) boundaryStart(a Arc) int {
	if (a.A+1)%e.Corners == a.B {
		return a.A
	}

	return a.B
}

// normalize returns the arc with ascending corner order; the fan-order sort
// behind the crossing rule depends on this orientation.
func normalize(a Arc) Arc {
	if a.A > a.B {
		return Arc{A: a.B, B: a.A}
	}

	return a
}
