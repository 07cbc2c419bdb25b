// SPDX-License-Identifier: MIT
// Package: builder
//
// api.go — thin public entry-point for the builder package.
//
// Design contract (strict):
//   - One orchestrator: Build(opts, cons...). Creates the Result, resolves
//     the config, runs the constructors in order.
//   - Constructors validate parameters early and return sentinel errors;
//     they never panic.
//   - Determinism: same options and constructor order ⇒ identical Results.

package builder

import (
	"fmt"

	"github.com/eunsung-lim/cluster-algebra/lamination"
	"github.com/eunsung-lim/cluster-algebra/quiver"
)

// Result is the outcome of one Build run: the assembled quiver, the
// combinatorial embedding when an embedding-aware constructor ran
// (Embedding.Arcs is nil otherwise), and any generated laminations.
type Result struct {
	Quiver      *quiver.Quiver
	Embedding   lamination.Embedding
	Laminations []lamination.Lamination
}

// Constructor applies one deterministic construction step to the shared
// Result using the resolved config.
type Constructor func(r *Result, cfg config) error

// Build creates an empty quiver, resolves the builder configuration from
// opts, and applies all constructors in order. The first constructor error
// is wrapped with "Build: %w" and returned; no partial cleanup is
// attempted.
//
// Errors: ErrConstructFailed for a nil constructor, plus any sentinel the
// constructors return (branch with errors.Is).
func Build(opts []Option, cons ...Constructor) (*Result, error) {
	r := &Result{Quiver: quiver.New()}
	cfg := newConfig(opts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(r, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return r, nil
}
