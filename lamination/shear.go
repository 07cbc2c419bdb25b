// Package lamination: shear-coordinate computation.
//
// Shear ports the crossing rule of the triangulated-polygon model: chords
// separating the two boundary-edge midpoints are crossed, ordered by fan
// order around the starting corner, and the windowed crossings alternate
// in sign.
package lamination

import (
	"sort"

	"github.com/eunsung-lim/cluster-algebra/quiver"
)

// crossing pairs an embedding arc with the cluster column it belongs to;
// idx is -1 for boundary edges riding along in the window.
type crossing struct {
	arc Arc
	idx int
}

// Shear computes the shear vector of lam over q relative to emb: one
// integer per cluster vertex, aligned with the cluster column order of the
// exchange matrix. A lamination that does not interact with an arc leaves
// a zero at that position; a lamination whose endpoints coincide yields
// the zero vector.
//
// Errors: ErrQuiverNil, quiver.ErrUnknownVertex, ErrEndpointNotFrozen,
// ErrEmbeddingIncomplete, ErrBadArc, ErrDisconnectedLamination.
// Complexity: O(V + E) for validation and connectivity, O(C log C) for the
// crossing order over C cluster vertices.
func Shear(q *quiver.Quiver, emb Embedding, lam Lamination) (ShearVector, error) {
	if q == nil {
		return nil, ErrQuiverNil
	}
	if err := frozenEndpoint(q, lam.From); err != nil {
		return nil, err
	}
	if err := frozenEndpoint(q, lam.To); err != nil {
		return nil, err
	}
	if err := emb.Validate(q); err != nil {
		return nil, err
	}
	if !connected(q, lam.From, lam.To) {
		return nil, ErrDisconnectedLamination
	}

	clusters := q.ClusterVertices()
	vec := make(ShearVector, len(clusters))
	if lam.From == lam.To {
		return vec, nil
	}

	n := emb.Corners
	s := emb.boundaryStart(emb.Arcs[lam.From])
	e := emb.boundaryStart(emb.Arcs[lam.To])

	// Midpoints of the two boundary edges, in doubled coordinates so the
	// separation test stays in integers: edge (s, s+1) has midpoint 2s+1.
	sm, em := 2*s+1, 2*e+1
	between := func(corner int) bool {
		c := 2 * corner
		return (sm < c && c < em) || (em < c && c < sm)
	}

	// Chords with exactly one endpoint strictly between the midpoints are
	// crossed by the curve.
	crossed := make([]crossing, 0, len(clusters))
	for i, cv := range clusters {
		arc := normalize(emb.Arcs[cv.Name])
		if between(arc.A) != between(arc.B) {
			crossed = append(crossed, crossing{arc: arc, idx: i})
		}
	}

	// Fan order around the starting corner: nearer first corner wins, the
	// farther second corner breaks ties.
	sort.SliceStable(crossed, func(i, j int) bool {
		ai, aj := crossed[i].arc, crossed[j].arc
		ki, kj := mod(ai.A-s, n), mod(aj.A-s, n)
		if ki != kj {
			return ki < kj
		}

		return mod(s-ai.B, n) < mod(s-aj.B, n)
	})

	// The crossing sequence bounded by the two boundary edges.
	seq := make([]crossing, 0, len(crossed)+2)
	seq = append(seq, crossing{arc: Arc{A: s, B: (s + 1) % n}, idx: -1})
	seq = append(seq, crossed...)
	seq = append(seq, crossing{arc: Arc{A: e, B: (e + 1) % n}, idx: -1})

	count := make(map[int]int, len(seq)*2)
	for _, c := range seq {
		count[c.arc.A]++
		count[c.arc.B]++
	}

	// Keep only arcs both of whose corners are visited at least twice along
	// the sequence; these form the alternating window.
	window := make([]crossing, 0, len(seq))
	window = append(window, seq[0])
	for _, c := range seq {
		if count[c.arc.A] >= 2 && count[c.arc.B] >= 2 {
			window = append(window, c)
		}
	}
	window = append(window, seq[len(seq)-1])
	if len(window) <= 2 {
		return vec, nil
	}

	// The window opens on -1 when its first arc shares a twice-visited
	// corner with either boundary edge, on +1 otherwise.
	first := window[1].arc
	sign := int64(1)
	if (count[s] >= 2 && (first.A == s || first.B == s)) ||
		(count[e] >= 2 && (first.A == e || first.B == e)) {
		sign = -1
	}
	for _, c := range window[1 : len(window)-1] {
		if c.idx >= 0 {
			vec[c.idx] = sign
		}
		sign = -sign
	}

	return vec, nil
}

// Principal returns the elementary lamination of one cluster vertex: the
// curve between the boundary edges clockwise-adjacent to the vertex's arc
// endpoints. Its shear vector is the unit vector at that cluster column,
// which is what principal coefficients require.
//
// Errors: ErrQuiverNil, quiver.ErrUnknownVertex (absent or non-cluster
// name), ErrEmbeddingIncomplete, ErrBadArc.
// Complexity: O(V).
func Principal(q *quiver.Quiver, emb Embedding, clusterName string) (Lamination, error) {
	if q == nil {
		return Lamination{}, ErrQuiverNil
	}
	kind, err := q.KindOf(clusterName)
	if err != nil {
		return Lamination{}, err
	}
	if kind != quiver.Cluster {
		return Lamination{}, quiver.ErrUnknownVertex
	}
	if err = emb.Validate(q); err != nil {
		return Lamination{}, err
	}

	arc := normalize(emb.Arcs[clusterName])
	n := emb.Corners
	from, err := frozenAt(q, emb, mod(arc.A-1, n))
	if err != nil {
		return Lamination{}, err
	}
	to, err := frozenAt(q, emb, mod(arc.B-1, n))
	if err != nil {
		return Lamination{}, err
	}

	return Lamination{From: from, To: to}, nil
}

// frozenAt finds the frozen vertex mapped to the boundary edge (s, s+1).
func frozenAt(q *quiver.Quiver, emb Embedding, s int) (string, error) {
	want := normalize(Arc{A: s, B: (s + 1) % emb.Corners})
	for _, v := range q.FrozenVertices() {
		if normalize(emb.Arcs[v.Name]) == want {
			return v.Name, nil
		}
	}

	return "", ErrEmbeddingIncomplete
}

// frozenEndpoint validates one lamination endpoint.
func frozenEndpoint(q *quiver.Quiver, name string) error {
	kind, err := q.KindOf(name)
	if err != nil {
		return err
	}
	if kind != quiver.Frozen {
		return ErrEndpointNotFrozen
	}

	return nil
}

// connected reports whether an undirected edge-path joins from and to,
// walking the current edge set breadth-first.
func connected(q *quiver.Quiver, from, to string) bool {
	if from == to {
		return true
	}
	visited := map[string]bool{from: true}
	queue := []string{from}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		nbrs, err := q.NeighborNames(cur)
		if err != nil {
			return false
		}
		for _, nbr := range nbrs {
			if nbr == to {
				return true
			}
			if !visited[nbr] {
				visited[nbr] = true
				queue = append(queue, nbr)
			}
		}
	}

	return false
}

// mod is the non-negative remainder.
func mod(a, n int) int {
	a %= n
	if a < 0 {
		a += n
	}

	return a
}
