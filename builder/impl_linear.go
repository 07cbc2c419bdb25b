// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_linear.go — Linear(n): the type A_n path seed.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Emits cluster vertices x1..xn in ascending index order and unit
//     arrows xi → x(i+1).
//   - Sets no embedding: a path seed carries no polygon combinatorics, so
//     shear computations over it require an explicit embedding from the
//     caller.

package builder

import (
	"fmt"
	"strconv"

	"github.com/eunsung-lim/cluster-algebra/quiver"
)

const (
	methodLinear   = "Linear"
	minLinearNodes = 1
)

// Linear returns a Constructor that builds the linear type A_n quiver
// x1 → x2 → ... → xn.
func Linear(n int) Constructor {
	return func(r *Result, cfg config) error {
		if n < minLinearNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodLinear, n, minLinearNodes, ErrTooFewVertices)
		}

		prev := ""
		for i := 1; i <= n; i++ {
			name := cfg.clusterPrefix + strconv.Itoa(i)
			if _, err := r.Quiver.AddVertex(name, quiver.Cluster); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodLinear, name, err)
			}
			if prev != "" {
				if err := r.Quiver.AddArc(prev, name); err != nil {
					return fmt.Errorf("%s: AddArc(%s,%s): %w", methodLinear, prev, name, err)
				}
			}
			prev = name
		}

		return nil
	}
}
