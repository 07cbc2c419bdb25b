// File: edges.go
// Role: Edge multiset: AddEdge/AddArc accumulation, NetWeight queries,
//       deterministic Arcs snapshot, undirected neighbor iteration.
// Determinism:
//   - Arcs() is ordered by (source, target) global insertion id.
//   - NeighborNames() is ordered by neighbor global insertion id.
// Concurrency:
//   - No internal locking; see package docs for the ownership contract.

package quiver

import "sort"

// AddEdge accumulates a directed arc from→to into the net signed weight of
// the ordered pair. Adding u→v with weight w and later v→u with weight w
// cancels both; the pair then holds no arc at all and contributes nothing
// to matrix builds or shear computations. Storage is purely additive:
// querying never mutates.
//
// Validation precedes any state change, so a failed call leaves the quiver
// exactly as it was.
//
// Errors: ErrUnknownVertex, ErrSelfLoop, ErrBadWeight (weight == 0).
// Complexity: O(1).
func (q *Quiver) AddEdge(from, to string, weight int64) error {
	src, ok := q.byName[from]
	if !ok {
		return ErrUnknownVertex
	}
	dst, ok := q.byName[to]
	if !ok {
		return ErrUnknownVertex
	}
	if src == dst {
		return ErrSelfLoop
	}
	if weight == 0 {
		return ErrBadWeight
	}

	q.accumulate(src, dst, weight)

	return nil
}

// AddArc is AddEdge with the default multiplicity of one.
func (q *Quiver) AddArc(from, to string) error {
	return q.AddEdge(from, to, 1)
}

// accumulate folds a signed contribution into the net weight of (src,dst),
// rewriting storage so that only the positive orientation remains and a
// zero net drops out entirely.
func (q *Quiver) accumulate(src, dst int, weight int64) {
	w := q.netByID(src, dst) + weight
	delete(q.net, pair{src, dst})
	delete(q.net, pair{dst, src})
	switch {
	case w > 0:
		q.net[pair{src, dst}] = w
	case w < 0:
		q.net[pair{dst, src}] = -w
	}
}

// netByID returns the signed net weight from one global id to another.
func (q *Quiver) netByID(src, dst int) int64 {
	if w, ok := q.net[pair{src, dst}]; ok {
		return w
	}
	if w, ok := q.net[pair{dst, src}]; ok {
		return -w
	}

	return 0
}

// NetWeight returns the accumulated signed weight from u to v: the sum of
// arcs added u→v minus the sum added v→u. Zero means no arc between the
// pair in either orientation.
//
// Errors: ErrUnknownVertex.
// Complexity: O(1).
func (q *Quiver) NetWeight(u, v string) (int64, error) {
	src, ok := q.byName[u]
	if !ok {
		return 0, ErrUnknownVertex
	}
	dst, ok := q.byName[v]
	if !ok {
		return 0, ErrUnknownVertex
	}

	return q.netByID(src, dst), nil
}

// HasArc reports whether a non-zero net weight connects the named pair in
// either orientation.
// Complexity: O(1).
func (q *Quiver) HasArc(u, v string) bool {
	src, aok := q.byName[u]
	dst, bok := q.byName[v]
	if !aok || !bok {
		return false
	}

	return q.netByID(src, dst) != 0
}

// ArcCount returns the number of materialized arcs (ordered pairs with a
// non-zero net weight, counted once per pair).
// Complexity: O(1).
func (q *Quiver) ArcCount() int { return len(q.net) }

// Arcs returns a snapshot of every materialized arc in its positive
// orientation, sorted by source then target insertion id. The slice is
// freshly allocated.
// Complexity: O(E log E).
func (q *Quiver) Arcs() []Arc {
	keys := make([]pair, 0, len(q.net))
	for k := range q.net {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].from != keys[j].from {
			return keys[i].from < keys[j].from
		}

		return keys[i].to < keys[j].to
	})

	out := make([]Arc, 0, len(keys))
	for _, k := range keys {
		out = append(out, Arc{
			From:   q.verts[k.from].Name,
			To:     q.verts[k.to].Name,
			Weight: q.net[k],
		})
	}

	return out
}

// NeighborNames returns the names of all vertices joined to name by an arc
// in either orientation, sorted by insertion id. This is the undirected
// adjacency used for lamination connectivity checks.
//
// Errors: ErrUnknownVertex.
// Complexity: O(E + d log d) for degree d.
func (q *Quiver) NeighborNames(name string) ([]string, error) {
	gid, ok := q.byName[name]
	if !ok {
		return nil, ErrUnknownVertex
	}

	seen := make(map[int]struct{})
	for k := range q.net {
		switch gid {
		case k.from:
			seen[k.to] = struct{}{}
		case k.to:
			seen[k.from] = struct{}{}
		}
	}

	ids := make([]int, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = q.verts[id].Name
	}

	return out, nil
}
