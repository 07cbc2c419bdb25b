// SPDX-License-Identifier: MIT
// Package: exchange
//
// matrix.go — the Matrix value type and its helpers.
//
// Contract:
//   - Data is row-major; the leading len(Cols) rows are the cluster block,
//     any further rows are appended shear rows.
//   - A Matrix is a plain value snapshot: mutating it never touches the
//     quiver it was built from.
package exchange

import (
	"errors"
	"strings"
)

// Sentinel errors for matrix construction.
var (
	// ErrNilQuiver is returned when Build receives a nil quiver.
	ErrNilQuiver = errors.New("exchange: quiver is nil")

	// ErrShearRowSize is returned when an appended shear row length does
	// not equal the cluster count.
	ErrShearRowSize = errors.New("exchange: shear row length mismatch")
)

// Matrix is an exchange matrix snapshot, optionally extended with shear
// rows. Rows carries one label per row (x_{i} for cluster rows, u_{j} for
// shear rows); Cols carries the cluster column labels.
type Matrix struct {
	// Rows holds the row labels: cluster labels first, then shear labels.
	Rows []string

	// Cols holds the cluster column labels.
	Cols []string

	// Data is the row-major matrix body, len(Rows) × len(Cols).
	Data [][]int64
}

// Order returns the number of cluster columns.
func (m *Matrix) Order() int { return len(m.Cols) }

// At returns Data[i][j]; callers index within bounds.
func (m *Matrix) At(i, j int) int64 { return m.Data[i][j] }

// Equal reports element-wise and label-wise equality.
// Complexity: O(rows × cols).
func (m *Matrix) Equal(other *Matrix) bool {
	if other == nil || len(m.Rows) != len(other.Rows) || len(m.Cols) != len(other.Cols) {
		return false
	}
	for i, label := range m.Rows {
		if other.Rows[i] != label {
			return false
		}
	}
	for j, label := range m.Cols {
		if other.Cols[j] != label {
			return false
		}
	}
	for i, row := range m.Data {
		for j, v := range row {
			if other.Data[i][j] != v {
				return false
			}
		}
	}

	return true
}

// EqualData reports element-wise equality of the cluster block against a
// plain integer grid, ignoring labels and shear rows. Handy in tests.
func (m *Matrix) EqualData(grid [][]int64) bool {
	if len(grid) != len(m.Cols) {
		return false
	}
	for i, row := range grid {
		if len(row) != len(m.Cols) {
			return false
		}
		for j, v := range row {
			if m.Data[i][j] != v {
				return false
			}
		}
	}

	return true
}

// Clone returns a deep copy of the matrix.
// Complexity: O(rows × cols).
func (m *Matrix) Clone() *Matrix {
	out := &Matrix{
		Rows: append([]string(nil), m.Rows...),
		Cols: append([]string(nil), m.Cols...),
		Data: make([][]int64, len(m.Data)),
	}
	for i, row := range m.Data {
		out.Data[i] = append([]int64(nil), row...)
	}

	return out
}

// IsSkewSymmetric reports whether the cluster block satisfies
// B[i][j] == -B[j][i]. Shear rows are exempt; arcs through frozen vertices
// never enter the block, so the property must hold after any sequence of
// mutations at cluster vertices.
// Complexity: O(cols²).
func (m *Matrix) IsSkewSymmetric() bool {
	n := len(m.Cols)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if m.Data[i][j] != -m.Data[j][i] {
				return false
			}
		}
	}

	return true
}

// String renders the matrix as an aligned table with row and column
// labels, one row per line. The layout is deterministic and stable across
// calls, so it is safe to assert on in golden tests.
func (m *Matrix) String() string {
	rowW := 0
	for _, label := range m.Rows {
		if len(label) > rowW {
			rowW = len(label)
		}
	}
	colW := make([]int, len(m.Cols))
	for j, label := range m.Cols {
		colW[j] = len(label)
		for i := range m.Data {
			if n := len(itoa(m.Data[i][j])); n > colW[j] {
				colW[j] = n
			}
		}
	}

	var sb strings.Builder
	sb.WriteString(pad("", rowW))
	for j, label := range m.Cols {
		sb.WriteByte(' ')
		sb.WriteString(pad(label, colW[j]))
	}
	sb.WriteByte('\n')
	for i, row := range m.Data {
		sb.WriteString(pad(m.Rows[i], rowW))
		for j, v := range row {
			sb.WriteByte(' ')
			sb.WriteString(pad(itoa(v), colW[j]))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
