// SPDX-License-Identifier: MIT
// Package: exchange
//
// builder.go — Build: quiver → exchange matrix projection, plus the
// functional options controlling shear-row extension.
//
// Design contract (strict):
//   - Build is pure: it reads the quiver snapshot and retains nothing.
//   - Row/column order is the cluster insertion-index order of the quiver.
//   - Shear rows are appended in the order given and labeled u_{1}, u_{2}, ...
//   - All validation happens before any allocation-visible output.
package exchange

import (
	"strconv"

	"github.com/eunsung-lim/cluster-algebra/lamination"
	"github.com/eunsung-lim/cluster-algebra/quiver"
)

// Option configures a single Build call.
type Option func(*options)

// options is the resolved Build configuration.
type options struct {
	shear []lamination.ShearVector
}

// WithShearRows appends one row per shear vector under the cluster block.
// Each vector must be aligned with the cluster column order (one entry per
// cluster vertex), as produced by lamination.Shear.
func WithShearRows(vectors ...lamination.ShearVector) Option {
	return func(o *options) { o.shear = append(o.shear, vectors...) }
}

// Build projects q onto its exchange matrix: for every ordered pair (i, j)
// of cluster vertices, B[i][j] is the net signed arc weight from vertex i
// to vertex j. Frozen vertices are excluded from the matrix but remain in
// the quiver. The result is a fresh snapshot; rebuild after edge changes.
//
// Errors: ErrNilQuiver, ErrShearRowSize.
// Complexity: O(C²) over C cluster vertices, plus O(S·C) for S shear rows.
func Build(q *quiver.Quiver, opts ...Option) (*Matrix, error) {
	if q == nil {
		return nil, ErrNilQuiver
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	clusters := q.ClusterVertices()
	n := len(clusters)
	for _, row := range o.shear {
		if len(row) != n {
			return nil, ErrShearRowSize
		}
	}

	m := &Matrix{
		Rows: make([]string, 0, n+len(o.shear)),
		Cols: make([]string, n),
		Data: make([][]int64, 0, n+len(o.shear)),
	}
	for j, cv := range clusters {
		label, err := q.VarName(cv.Name)
		if err != nil {
			return nil, err
		}
		m.Cols[j] = label
	}
	m.Rows = append(m.Rows, m.Cols...)

	for _, ri := range clusters {
		row := make([]int64, n)
		for j, cj := range clusters {
			w, err := q.NetWeight(ri.Name, cj.Name)
			if err != nil {
				return nil, err
			}
			row[j] = w
		}
		m.Data = append(m.Data, row)
	}

	for k, sv := range o.shear {
		m.Rows = append(m.Rows, "u_{"+strconv.Itoa(k+1)+"}")
		m.Data = append(m.Data, append([]int64(nil), sv...))
	}

	return m, nil
}

// itoa formats a signed matrix entry.
func itoa(v int64) string { return strconv.FormatInt(v, 10) }

// pad left-pads s with spaces to width w.
func pad(s string, w int) string {
	for len(s) < w {
		s = " " + s
	}

	return s
}
