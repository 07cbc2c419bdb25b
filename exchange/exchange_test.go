package exchange_test

import (
	"testing"

	"github.com/eunsung-lim/cluster-algebra/exchange"
	"github.com/eunsung-lim/cluster-algebra/lamination"
	"github.com/eunsung-lim/cluster-algebra/quiver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// octagonB is the published exchange matrix of the 5-cluster-vertex
// octagon seed used throughout these tests.
var octagonB = [][]int64{
	{0, 0, 1, 0, -1},
	{0, 0, 1, -1, 0},
	{-1, -1, 0, 1, 0},
	{0, 1, -1, 0, 0},
	{1, 0, 0, 0, 0},
}

// octagonArcs is the full arc multiset of that seed, frozen-incident
// arrows included.
var octagonArcs = [][2]string{
	{"e0", "x5"}, {"e1", "e0"}, {"e2", "x5"}, {"e3", "x1"},
	{"e4", "x2"}, {"e5", "e4"}, {"e6", "x4"}, {"e7", "e6"},
	{"x1", "e2"}, {"x1", "x3"}, {"x2", "e5"}, {"x2", "x3"},
	{"x3", "e3"}, {"x3", "x4"}, {"x4", "e7"}, {"x4", "x2"},
	{"x5", "e1"}, {"x5", "x1"},
}

// octagonQuiver assembles the seed, optionally reversing arc insertion
// order to probe determinism.
func octagonQuiver(t *testing.T, reversed bool) *quiver.Quiver {
	t.Helper()
	q := quiver.New()
	for _, name := range []string{"x1", "x2", "x3", "x4", "x5"} {
		_, err := q.AddVertex(name, quiver.Cluster)
		require.NoError(t, err)
	}
	for _, name := range []string{"e0", "e1", "e2", "e3", "e4", "e5", "e6", "e7"} {
		_, err := q.AddVertex(name, quiver.Frozen)
		require.NoError(t, err)
	}
	arcs := octagonArcs
	if reversed {
		arcs = make([][2]string, len(octagonArcs))
		for i, a := range octagonArcs {
			arcs[len(arcs)-1-i] = a
		}
	}
	for _, a := range arcs {
		require.NoError(t, q.AddArc(a[0], a[1]))
	}

	return q
}

// TestBuild_PublishedMatrix verifies that the octagon seed reproduces the
// published exchange matrix exactly, with x_{i} labels in cluster order.
func TestBuild_PublishedMatrix(t *testing.T) {
	q := octagonQuiver(t, false)

	m, err := exchange.Build(q)
	require.NoError(t, err)

	assert.True(t, m.EqualData(octagonB), "matrix must match the published seed:\n%s", m)
	assert.Equal(t, []string{"x_{1}", "x_{2}", "x_{3}", "x_{4}", "x_{5}"}, m.Cols)
	assert.Equal(t, m.Cols, m.Rows, "without shear rows, row labels equal column labels")
	assert.Equal(t, 5, m.Order())
	assert.True(t, m.IsSkewSymmetric())
}

// TestBuild_Deterministic checks rebuild identity and insertion-order
// independence.
func TestBuild_Deterministic(t *testing.T) {
	q := octagonQuiver(t, false)

	m1, err := exchange.Build(q)
	require.NoError(t, err)
	m2, err := exchange.Build(q)
	require.NoError(t, err)
	assert.True(t, m1.Equal(m2), "building twice from an unmutated quiver must agree")

	m3, err := exchange.Build(octagonQuiver(t, true))
	require.NoError(t, err)
	assert.True(t, m1.Equal(m3), "AddEdge order with equal net contributions must not matter")
}

// TestBuild_ShearRows verifies appended lamination rows and their labels.
func TestBuild_ShearRows(t *testing.T) {
	q := octagonQuiver(t, false)
	sv := lamination.ShearVector{0, 0, -1, 0, 1}

	m, err := exchange.Build(q, exchange.WithShearRows(sv))
	require.NoError(t, err)

	require.Len(t, m.Rows, 6)
	assert.Equal(t, "u_{1}", m.Rows[5])
	assert.Equal(t, []int64{0, 0, -1, 0, 1}, m.Data[5])
	assert.True(t, m.EqualData(octagonB), "cluster block is unaffected by shear rows")

	// Shear rows are copied, not aliased.
	sv[0] = 42
	assert.Equal(t, int64(0), m.Data[5][0])
}

// TestBuild_Errors covers the nil quiver and mismatched shear rows.
func TestBuild_Errors(t *testing.T) {
	_, err := exchange.Build(nil)
	assert.ErrorIs(t, err, exchange.ErrNilQuiver)

	q := octagonQuiver(t, false)
	_, err = exchange.Build(q, exchange.WithShearRows(lamination.ShearVector{1, 2}))
	assert.ErrorIs(t, err, exchange.ErrShearRowSize)
}

// TestMatrix_CloneEqual exercises the value-snapshot helpers.
func TestMatrix_CloneEqual(t *testing.T) {
	m, err := exchange.Build(octagonQuiver(t, false))
	require.NoError(t, err)

	c := m.Clone()
	assert.True(t, m.Equal(c))

	c.Data[0][2] = 9
	assert.False(t, m.Equal(c), "clones share no backing storage")
	assert.Equal(t, int64(1), m.At(0, 2))
}

// TestMatrix_String checks the aligned golden rendering on a small seed.
func TestMatrix_String(t *testing.T) {
	q := quiver.New()
	_, err := q.AddVertex("a", quiver.Cluster)
	require.NoError(t, err)
	_, err = q.AddVertex("b", quiver.Cluster)
	require.NoError(t, err)
	require.NoError(t, q.AddEdge("a", "b", 2))

	m, err := exchange.Build(q)
	require.NoError(t, err)

	want := "" +
		"      x_{1} x_{2}\n" +
		"x_{1}     0     2\n" +
		"x_{2}    -2     0\n"
	assert.Equal(t, want, m.String())
}

// TestBuild_EmptyCluster verifies a quiver with no cluster vertices yields
// an order-zero matrix rather than an error.
func TestBuild_EmptyCluster(t *testing.T) {
	q := quiver.New()
	_, err := q.AddVertex("e0", quiver.Frozen)
	require.NoError(t, err)

	m, err := exchange.Build(q)
	require.NoError(t, err)
	assert.Zero(t, m.Order())
	assert.Empty(t, m.Data)
}
