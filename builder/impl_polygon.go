// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_polygon.go — Polygon(n): quiver of a triangulated convex n-gon.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewCorners).
//   - cfg.chords, when set, must list exactly n-3 pairwise non-crossing
//     diagonals; the default is the fan (0,2), (0,3), ..., (0,n-2).
//   - Frozen vertices e0..e{n-1} stand for boundary edges (i, i+1 mod n);
//     cluster vertices x1..x{n-3} stand for the chords, in chord order.
//   - Every corner triple (a,b,c) whose three connecting arcs are present
//     contributes the arrow cycle (b,c)→(a,b), (c,a)→(b,c), (a,b)→(c,a);
//     arrows between any two arcs accumulate, frozen or not.
//   - Result.Embedding is set for shear computations; WithPrincipal emits
//     one elementary lamination per cluster vertex.
//
// Determinism:
//   - Vertices in ascending corner/chord order, triangles in ascending
//     (a,b,c) order, laminations in cluster order.

package builder

import (
	"fmt"
	"strconv"

	"github.com/eunsung-lim/cluster-algebra/lamination"
	"github.com/eunsung-lim/cluster-algebra/quiver"
)

const (
	methodPolygon  = "Polygon"
	minCorners     = 3
	chordDeficit   = 3 // a triangulation of an n-gon has n-3 diagonals
	boundaryOffset = 1
)

// Polygon returns a Constructor that builds the quiver of a triangulated
// convex n-gon, with its embedding and optional principal laminations.
func Polygon(n int) Constructor {
	return func(r *Result, cfg config) error {
		if n < minCorners {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPolygon, n, minCorners, ErrTooFewCorners)
		}

		chords := cfg.chords
		if chords == nil {
			chords = fanChords(n)
		}
		if err := validateChords(n, chords); err != nil {
			return fmt.Errorf("%s: %w", methodPolygon, err)
		}

		emb := lamination.Embedding{
			Corners: n,
			Arcs:    make(map[string]lamination.Arc, n+len(chords)),
		}

		// Arc name lookup keyed by normalized corner pair.
		names := make(map[lamination.Arc]string, n+len(chords))

		// Boundary edges become frozen vertices.
		for i := 0; i < n; i++ {
			name := cfg.frozenPrefix + strconv.Itoa(i)
			arc := lamination.Arc{A: i, B: (i + boundaryOffset) % n}
			if _, err := r.Quiver.AddVertex(name, quiver.Frozen); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodPolygon, name, err)
			}
			emb.Arcs[name] = arc
			names[sortArc(arc)] = name
		}

		// Chords become cluster vertices, in chord order.
		for i, ch := range chords {
			name := cfg.clusterPrefix + strconv.Itoa(i+1)
			if _, err := r.Quiver.AddVertex(name, quiver.Cluster); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodPolygon, name, err)
			}
			emb.Arcs[name] = ch
			names[sortArc(ch)] = name
		}

		// Each triangle contributes a cycle of arrows between its arcs.
		for a := 0; a < n; a++ {
			for b := a + 1; b < n; b++ {
				for c := b + 1; c < n; c++ {
					ab, okAB := names[sortArc(lamination.Arc{A: a, B: b})]
					bc, okBC := names[sortArc(lamination.Arc{A: b, B: c})]
					ca, okCA := names[sortArc(lamination.Arc{A: c, B: a})]
					if !okAB || !okBC || !okCA {
						continue
					}
					for _, arrow := range [][2]string{{bc, ab}, {ca, bc}, {ab, ca}} {
						if err := r.Quiver.AddArc(arrow[0], arrow[1]); err != nil {
							return fmt.Errorf("%s: AddArc(%s,%s): %w", methodPolygon, arrow[0], arrow[1], err)
						}
					}
				}
			}
		}

		r.Embedding = emb

		if cfg.principal {
			for _, cv := range r.Quiver.ClusterVertices() {
				lam, err := lamination.Principal(r.Quiver, emb, cv.Name)
				if err != nil {
					return fmt.Errorf("%s: Principal(%s): %w", methodPolygon, cv.Name, err)
				}
				r.Laminations = append(r.Laminations, lam)
			}
		}

		return nil
	}
}

// fanChords returns the fan triangulation from corner 0.
func fanChords(n int) []lamination.Arc {
	out := make([]lamination.Arc, 0, n-chordDeficit)
	for i := 2; i <= n-2; i++ {
		out = append(out, lamination.Arc{A: 0, B: i})
	}

	return out
}

// validateChords checks count, range, non-boundary, uniqueness, and
// pairwise non-crossing.
func validateChords(n int, chords []lamination.Arc) error {
	if len(chords) != n-chordDeficit {
		return fmt.Errorf("got %d chords for n=%d: %w", len(chords), n, ErrChordCount)
	}
	seen := make(map[lamination.Arc]struct{}, len(chords))
	norm := make([]lamination.Arc, len(chords))
	for i, ch := range chords {
		if ch.A < 0 || ch.A >= n || ch.B < 0 || ch.B >= n || ch.A == ch.B {
			return fmt.Errorf("chord (%d,%d): %w", ch.A, ch.B, ErrBadChord)
		}
		s := sortArc(ch)
		if s.B-s.A == boundaryOffset || s.B-s.A == n-boundaryOffset {
			return fmt.Errorf("chord (%d,%d) is a boundary edge: %w", ch.A, ch.B, ErrBadChord)
		}
		if _, dup := seen[s]; dup {
			return fmt.Errorf("chord (%d,%d) duplicated: %w", ch.A, ch.B, ErrBadChord)
		}
		seen[s] = struct{}{}
		norm[i] = s
	}
	for i := 0; i < len(norm); i++ {
		for j := i + 1; j < len(norm); j++ {
			if crossing(norm[i], norm[j]) {
				return fmt.Errorf("chords (%d,%d) and (%d,%d): %w",
					chords[i].A, chords[i].B, chords[j].A, chords[j].B, ErrCrossingChords)
			}
		}
	}

	return nil
}

// crossing reports whether two ascending chords cross in the polygon
// interior.
func crossing(p, q lamination.Arc) bool {
	return (p.A < q.A && q.A < p.B && p.B < q.B) ||
		(q.A < p.A && p.A < q.B && q.B < p.B)
}

// sortArc returns the arc with ascending corners.
func sortArc(a lamination.Arc) lamination.Arc {
	if a.A > a.B {
		return lamination.Arc{A: a.B, B: a.A}
	}

	return a
}
