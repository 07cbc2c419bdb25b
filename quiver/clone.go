// File: clone.go
// Role: Snapshot copies: CloneEmpty (vertices only) and Clone (deep copy).
// Determinism:
//   - Clones preserve names, kinds, per-kind indices, flip counts, and nets.
// Concurrency:
//   - Reads the source only; the result is an independent instance.

package quiver

// CloneEmpty returns a new Quiver with the same vertex registry (names,
// kinds, indices, flip counts) and no arcs. Mutation engines build their
// post-mutation arc set on top of such a copy so that all new weights are
// derived from the untouched pre-mutation snapshot.
// Complexity: O(V).
func (q *Quiver) CloneEmpty() *Quiver {
	out := &Quiver{
		verts:    make([]Vertex, len(q.verts)),
		byName:   make(map[string]int, len(q.byName)),
		nCluster: q.nCluster,
		nFrozen:  q.nFrozen,
		net:      make(map[pair]int64),
	}
	copy(out.verts, q.verts)
	for name, gid := range q.byName {
		out.byName[name] = gid
	}

	return out
}

// Clone returns a deep copy of the Quiver: registry and arc multiset.
// The copy shares no state with the source.
// Complexity: O(V + E).
func (q *Quiver) Clone() *Quiver {
	out := q.CloneEmpty()
	for k, w := range q.net {
		out.net[k] = w
	}

	return out
}

// Equal reports whether two quivers have identical registries (names,
// kinds, indices, flip counts) and identical net arc weights. Useful for
// involution checks: mutating twice at the same vertex restores equality
// up to the flip counter, which EqualArcs ignores.
// Complexity: O(V + E).
func (q *Quiver) Equal(other *Quiver) bool {
	if other == nil || len(q.verts) != len(other.verts) {
		return false
	}
	for i, v := range q.verts {
		if other.verts[i] != v {
			return false
		}
	}

	return q.EqualArcs(other)
}

// EqualArcs reports whether two quivers carry identical net arc weights
// over identically named vertices, ignoring flip counts.
// Complexity: O(V + E).
func (q *Quiver) EqualArcs(other *Quiver) bool {
	if other == nil || len(q.net) != len(other.net) {
		return false
	}
	for k, w := range q.net {
		src, sok := other.byName[q.verts[k.from].Name]
		dst, dok := other.byName[q.verts[k.to].Name]
		if !sok || !dok || other.netByID(src, dst) != w {
			return false
		}
	}

	return true
}
