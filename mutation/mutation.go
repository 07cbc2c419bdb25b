// Package mutation implements the exchange-matrix mutation rule over the
// full directed edge multiset of a quiver.
package mutation

import (
	"github.com/eunsung-lim/cluster-algebra/quiver"
)

// Mutate applies seed mutation at cluster vertex at and returns the
// resulting quiver. The input quiver is never modified: every new weight is
// computed from the pre-mutation snapshot and committed into a fresh copy,
// so a failed call cannot leave partial state anywhere.
//
// Returns ErrQuiverNil for a nil quiver, quiver.ErrUnknownVertex if at is
// not registered, and ErrFrozenMutation if at names a frozen vertex.
func Mutate(q *quiver.Quiver, at string, opts ...Option) (*quiver.Quiver, error) {
	if q == nil {
		return nil, ErrQuiverNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	kind, err := q.KindOf(at)
	if err != nil {
		return nil, err
	}
	if kind == quiver.Frozen {
		return nil, ErrFrozenMutation
	}

	// Snapshot order: cluster vertices then frozen, both by index. The rule
	// is applied once per unordered pair; the reverse orientation is the
	// negation and needs no second pass.
	verts := q.Vertices()
	out := q.CloneEmpty()
	for i := 0; i < len(verts); i++ {
		u := verts[i].Name
		for j := i + 1; j < len(verts); j++ {
			v := verts[j].Name

			b, err := q.NetWeight(u, v)
			if err != nil {
				return nil, err
			}

			var next int64
			if u == at || v == at {
				next = -b
				if b != 0 {
					if b > 0 {
						o.OnReverse(u, v, b)
					} else {
						o.OnReverse(v, u, -b)
					}
				}
			} else {
				buk, err := q.NetWeight(u, at)
				if err != nil {
					return nil, err
				}
				bkv, err := q.NetWeight(at, v)
				if err != nil {
					return nil, err
				}
				next = b
				if p := buk * bkv; p > 0 {
					next += sign(buk) * p
				}
				if next != b {
					o.OnAdjust(u, v, b, next)
				}
			}

			switch {
			case next > 0:
				if err = out.AddEdge(u, v, next); err != nil {
					return nil, err
				}
			case next < 0:
				if err = out.AddEdge(v, u, -next); err != nil {
					return nil, err
				}
			}
		}
	}

	if err = out.MarkFlip(at); err != nil {
		return nil, err
	}

	return out, nil
}

// Apply performs a mutation sequence left to right, returning the final
// quiver. An empty sequence returns a deep copy of the input.
func Apply(q *quiver.Quiver, names ...string) (*quiver.Quiver, error) {
	if q == nil {
		return nil, ErrQuiverNil
	}
	cur := q.Clone()
	for _, name := range names {
		next, err := Mutate(cur, name)
		if err != nil {
			return nil, err
		}
		cur = next
	}

	return cur, nil
}

// sign returns -1, 0, or 1.
func sign(x int64) int64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
