// File: vertices.go
// Role: Vertex registry: AddVertex/IndexOf/KindOf/HasVertex, kind-partitioned
//       snapshots, counts, and variable labels.
// Determinism:
//   - Vertices() returns cluster vertices first, each kind ordered by Index.
// Concurrency:
//   - No internal locking; see package docs for the ownership contract.

package quiver

import (
	"strconv"
	"strings"
)

// AddVertex registers a new vertex under the given kind and returns its
// per-kind index. Names must be unique across both kinds; there is no
// removal operation — vertices persist for the quiver's lifetime.
//
// Errors: ErrEmptyName, ErrDuplicateName.
// Complexity: O(1) amortized.
func (q *Quiver) AddVertex(name string, kind VertexKind) (int, error) {
	if name == "" {
		return 0, ErrEmptyName
	}
	if _, dup := q.byName[name]; dup {
		return 0, ErrDuplicateName
	}

	v := Vertex{Name: name, Kind: kind}
	if kind == Cluster {
		v.Index = q.nCluster
		q.nCluster++
	} else {
		v.Index = q.nFrozen
		q.nFrozen++
	}

	q.byName[name] = len(q.verts)
	q.verts = append(q.verts, v)

	return v.Index, nil
}

// IndexOf returns the per-kind index assigned to name.
// Errors: ErrUnknownVertex.
// Complexity: O(1).
func (q *Quiver) IndexOf(name string) (int, error) {
	gid, ok := q.byName[name]
	if !ok {
		return 0, ErrUnknownVertex
	}

	return q.verts[gid].Index, nil
}

// KindOf returns the kind tag of name.
// Errors: ErrUnknownVertex.
// Complexity: O(1).
func (q *Quiver) KindOf(name string) (VertexKind, error) {
	gid, ok := q.byName[name]
	if !ok {
		return Frozen, ErrUnknownVertex
	}

	return q.verts[gid].Kind, nil
}

// HasVertex reports whether name is registered.
// Complexity: O(1).
func (q *Quiver) HasVertex(name string) bool {
	_, ok := q.byName[name]

	return ok
}

// VertexCount returns the total number of registered vertices.
func (q *Quiver) VertexCount() int { return len(q.verts) }

// ClusterCount returns the number of cluster vertices; this is the order of
// the exchange matrix.
func (q *Quiver) ClusterCount() int { return q.nCluster }

// FrozenCount returns the number of frozen vertices.
func (q *Quiver) FrozenCount() int { return q.nFrozen }

// Vertices returns a snapshot of all vertices: cluster vertices first, each
// kind ordered by insertion index. The slice is freshly allocated; mutating
// it does not affect the quiver.
// Complexity: O(V).
func (q *Quiver) Vertices() []Vertex {
	out := make([]Vertex, 0, len(q.verts))
	out = append(out, q.ClusterVertices()...)
	out = append(out, q.FrozenVertices()...)

	return out
}

// ClusterVertices returns the cluster vertices ordered by Index. This order
// defines the row/column order of the exchange matrix and the alignment of
// shear vectors.
// Complexity: O(V).
func (q *Quiver) ClusterVertices() []Vertex {
	return q.kindSlice(Cluster, q.nCluster)
}

// FrozenVertices returns the frozen vertices ordered by Index.
// Complexity: O(V).
func (q *Quiver) FrozenVertices() []Vertex {
	return q.kindSlice(Frozen, q.nFrozen)
}

// kindSlice assembles the vertices of one kind in Index order.
func (q *Quiver) kindSlice(kind VertexKind, n int) []Vertex {
	out := make([]Vertex, n)
	for _, v := range q.verts {
		if v.Kind == kind {
			out[v.Index] = v
		}
	}

	return out
}

// MarkFlip records one mutation performed at the named cluster vertex,
// appending a prime to its variable label. It is intended for the mutation
// engine; arbitrary callers gain nothing from forging flip counts.
//
// Errors: ErrUnknownVertex if name is absent or not a cluster vertex.
// Complexity: O(1).
func (q *Quiver) MarkFlip(name string) error {
	gid, ok := q.byName[name]
	if !ok || q.verts[gid].Kind != Cluster {
		return ErrUnknownVertex
	}
	q.verts[gid].Flips++

	return nil
}

// VarName returns the cluster-variable label of a vertex: x_{i} for the
// cluster vertex with Index i-1, gaining one prime per mutation performed
// at it (x_{3'}, x_{3''}, ...). Frozen vertices keep their plain name.
//
// Errors: ErrUnknownVertex.
// Complexity: O(Flips) for the prime suffix.
func (q *Quiver) VarName(name string) (string, error) {
	gid, ok := q.byName[name]
	if !ok {
		return "", ErrUnknownVertex
	}
	v := q.verts[gid]
	if v.Kind == Frozen {
		return v.Name, nil
	}

	var sb strings.Builder
	sb.WriteString("x_{")
	sb.WriteString(strconv.Itoa(v.Index + 1))
	sb.WriteString(strings.Repeat("'", v.Flips))
	sb.WriteByte('}')

	return sb.String(), nil
}
