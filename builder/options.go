// SPDX-License-Identifier: MIT
// Package: builder
//
// options.go — functional options and the immutable resolved config.
//
// Deterministic defaults (no surprises):
//   - frozenPrefix  = "e"   (frozen names "e0", "e1", ...)
//   - clusterPrefix = "x"   (cluster names "x1", "x2", ...)
//   - chords        = nil   (Polygon falls back to the fan from corner 0)
//   - principal     = false (no laminations generated)

package builder

import "github.com/eunsung-lim/cluster-algebra/lamination"

// Default vertex name prefixes.
const (
	defaultFrozenPrefix  = "e"
	defaultClusterPrefix = "x"
)

// Option configures the builder before construction.
type Option func(*config)

// config aggregates all knobs used by constructors. It is passed by value
// to constructors (immutable to callers).
type config struct {
	frozenPrefix  string
	clusterPrefix string
	chords        []lamination.Arc
	principal     bool
}

// newConfig resolves deterministic defaults, then applies options in order
// (later overrides earlier).
// Complexity: O(len(opts)).
func newConfig(opts ...Option) config {
	cfg := config{
		frozenPrefix:  defaultFrozenPrefix,
		clusterPrefix: defaultClusterPrefix,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithChords overrides the default fan triangulation of Polygon with an
// explicit chord list. Chord order fixes the cluster vertex order and
// therefore the exchange-matrix row/column order.
func WithChords(chords ...lamination.Arc) Option {
	return func(c *config) { c.chords = append([]lamination.Arc(nil), chords...) }
}

// WithPrincipal makes Polygon emit one elementary lamination per cluster
// vertex, in cluster order; the resulting shear rows form the identity
// block of a principal-coefficient seed.
func WithPrincipal() Option {
	return func(c *config) { c.principal = true }
}

// WithVertexPrefix overrides the frozen and cluster name prefixes. Empty
// strings keep the defaults.
func WithVertexPrefix(frozen, cluster string) Option {
	return func(c *config) {
		if frozen != "" {
			c.frozenPrefix = frozen
		}
		if cluster != "" {
			c.clusterPrefix = cluster
		}
	}
}
