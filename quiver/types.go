// Package quiver defines the Quiver, Vertex, and Arc types and the
// sentinel errors shared by every package of this module.
//
// This file declares the vertex kind tag, the aggregate storage layout,
// and the New constructor.
package quiver

import "errors"

// Sentinel errors for quiver construction and queries.
var (
	// ErrQuiverNil is returned when a nil *Quiver is passed in.
	ErrQuiverNil = errors.New("quiver: quiver is nil")

	// ErrEmptyName indicates a vertex name was the empty string.
	ErrEmptyName = errors.New("quiver: vertex name is empty")

	// ErrDuplicateName indicates a vertex name was already registered.
	ErrDuplicateName = errors.New("quiver: duplicate vertex name")

	// ErrUnknownVertex indicates an operation referenced an unregistered name.
	ErrUnknownVertex = errors.New("quiver: unknown vertex")

	// ErrSelfLoop indicates an edge whose endpoints coincide.
	ErrSelfLoop = errors.New("quiver: self-loop not allowed")

	// ErrBadWeight indicates a zero edge weight; a zero arc is no arc.
	ErrBadWeight = errors.New("quiver: zero edge weight")
)

// VertexKind tags a vertex as frozen or cluster.
//
// Frozen vertices contribute arcs but never pivot: they are excluded from
// the exchange matrix and mutation may not be performed at them.
// Cluster vertices index the rows and columns of the exchange matrix.
type VertexKind uint8

const (
	// Frozen marks a coefficient vertex, excluded from mutation.
	Frozen VertexKind = iota

	// Cluster marks a mutable vertex.
	Cluster
)

// String returns "frozen" or "cluster".
func (k VertexKind) String() string {
	if k == Cluster {
		return "cluster"
	}

	return "frozen"
}

// Vertex is one registered vertex of a Quiver.
//
// Index is the insertion order within the vertex's kind and is stable for
// the lifetime of the quiver: mutation relabels arcs, never vertices.
// Flips counts mutations performed at a cluster vertex and drives the
// x_{i'} variable label scheme; it is always zero for frozen vertices.
type Vertex struct {
	// Name uniquely identifies this vertex across both kinds.
	Name string

	// Kind is the frozen/cluster tag.
	Kind VertexKind

	// Index is the per-kind insertion order (0-based).
	Index int

	// Flips is the number of mutations performed at this cluster vertex.
	Flips int
}

// Arc is a read-only snapshot of one materialized arc: the positive
// orientation of a net signed weight (Weight > 0 always holds).
type Arc struct {
	// From is the source vertex name.
	From string

	// To is the target vertex name.
	To string

	// Weight is the net multiplicity of the arc, strictly positive.
	Weight int64
}

// pair keys the net-weight table by global vertex ids (insertion order
// across both kinds). Only positively-weighted orientations are stored.
type pair struct{ from, to int }

// Quiver owns its vertex registry and edge multiset exclusively; no state
// is shared between instances and none is process-wide, so independent
// quivers coexist safely.
//
// Vertices live in a dense slice addressed by global id; net arc weights
// live in a map keyed by (from,to) global-id pairs holding only the
// positive orientation. See package docs for the ownership contract.
type Quiver struct {
	verts  []Vertex       // dense storage, addressed by global id
	byName map[string]int // vertex name → global id

	nCluster int // next cluster Index
	nFrozen  int // next frozen Index

	net map[pair]int64 // positive-orientation net weights only
}

// New creates an empty Quiver.
// Complexity: O(1).
func New() *Quiver {
	return &Quiver{
		byName: make(map[string]int),
		net:    make(map[pair]int64),
	}
}
