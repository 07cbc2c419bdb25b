package quiver_test

import (
	"testing"

	"github.com/eunsung-lim/cluster-algebra/quiver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAddVertex_IndexAssignment verifies per-kind insertion-order indices.
func TestAddVertex_IndexAssignment(t *testing.T) {
	q := quiver.New()

	i, err := q.AddVertex("x1", quiver.Cluster)
	require.NoError(t, err)
	assert.Equal(t, 0, i, "first cluster vertex gets index 0")

	i, err = q.AddVertex("e0", quiver.Frozen)
	require.NoError(t, err)
	assert.Equal(t, 0, i, "frozen indices are namespaced separately")

	i, err = q.AddVertex("x2", quiver.Cluster)
	require.NoError(t, err)
	assert.Equal(t, 1, i, "second cluster vertex gets index 1")

	assert.Equal(t, 2, q.ClusterCount())
	assert.Equal(t, 1, q.FrozenCount())
	assert.Equal(t, 3, q.VertexCount())
}

// TestAddVertex_Errors covers empty and duplicate names, across kinds.
func TestAddVertex_Errors(t *testing.T) {
	q := quiver.New()

	_, err := q.AddVertex("", quiver.Cluster)
	assert.ErrorIs(t, err, quiver.ErrEmptyName, "empty name must error")

	_, err = q.AddVertex("a", quiver.Cluster)
	require.NoError(t, err)
	_, err = q.AddVertex("a", quiver.Frozen)
	assert.ErrorIs(t, err, quiver.ErrDuplicateName,
		"names are unique across the whole vertex set, not per kind")
}

// TestIndexOf_KindOf verifies lookups and the unknown-vertex sentinel.
func TestIndexOf_KindOf(t *testing.T) {
	q := quiver.New()
	_, err := q.AddVertex("x1", quiver.Cluster)
	require.NoError(t, err)

	i, err := q.IndexOf("x1")
	require.NoError(t, err)
	assert.Equal(t, 0, i)

	k, err := q.KindOf("x1")
	require.NoError(t, err)
	assert.Equal(t, quiver.Cluster, k)

	_, err = q.IndexOf("nope")
	assert.ErrorIs(t, err, quiver.ErrUnknownVertex)
	_, err = q.KindOf("nope")
	assert.ErrorIs(t, err, quiver.ErrUnknownVertex)
}

// TestAddEdge_Errors covers unknown endpoints, self-loops, and zero weight,
// and checks that a failed call leaves the quiver untouched.
func TestAddEdge_Errors(t *testing.T) {
	q := quiver.New()
	_, err := q.AddVertex("u", quiver.Cluster)
	require.NoError(t, err)
	_, err = q.AddVertex("v", quiver.Cluster)
	require.NoError(t, err)

	assert.ErrorIs(t, q.AddEdge("u", "ghost", 1), quiver.ErrUnknownVertex)
	assert.ErrorIs(t, q.AddEdge("ghost", "v", 1), quiver.ErrUnknownVertex)
	assert.ErrorIs(t, q.AddEdge("u", "u", 1), quiver.ErrSelfLoop)
	assert.ErrorIs(t, q.AddEdge("u", "v", 0), quiver.ErrBadWeight)
	assert.Zero(t, q.ArcCount(), "failed adds must not leave partial state")
}

// TestNetWeight_Accumulation checks that opposite arcs fold into one signed
// net and that a zero net drops the pair from storage entirely.
func TestNetWeight_Accumulation(t *testing.T) {
	q := quiver.New()
	_, err := q.AddVertex("u", quiver.Cluster)
	require.NoError(t, err)
	_, err = q.AddVertex("v", quiver.Cluster)
	require.NoError(t, err)

	require.NoError(t, q.AddEdge("u", "v", 2))
	require.NoError(t, q.AddEdge("v", "u", 3))

	w, err := q.NetWeight("u", "v")
	require.NoError(t, err)
	assert.Equal(t, int64(-1), w, "2 forward minus 3 backward nets to -1")

	w, err = q.NetWeight("v", "u")
	require.NoError(t, err)
	assert.Equal(t, int64(1), w, "reverse query flips the sign")

	// Cancel to zero: the arc must vanish.
	require.NoError(t, q.AddEdge("u", "v", 1))
	w, err = q.NetWeight("u", "v")
	require.NoError(t, err)
	assert.Zero(t, w)
	assert.Zero(t, q.ArcCount(), "zero net weight means no stored arc")
	assert.False(t, q.HasArc("u", "v"))
}

// TestArcs_DeterministicOrder verifies the snapshot order and that the order
// of AddEdge calls with the same net contributions is irrelevant.
func TestArcs_DeterministicOrder(t *testing.T) {
	build := func(edges [][2]string) *quiver.Quiver {
		q := quiver.New()
		for _, n := range []string{"a", "b", "c"} {
			_, err := q.AddVertex(n, quiver.Cluster)
			require.NoError(t, err)
		}
		for _, e := range edges {
			require.NoError(t, q.AddArc(e[0], e[1]))
		}

		return q
	}

	q1 := build([][2]string{{"a", "b"}, {"b", "c"}, {"c", "a"}})
	q2 := build([][2]string{{"c", "a"}, {"a", "b"}, {"b", "c"}})

	want := []quiver.Arc{
		{From: "a", To: "b", Weight: 1},
		{From: "b", To: "c", Weight: 1},
		{From: "c", To: "a", Weight: 1},
	}
	assert.Equal(t, want, q1.Arcs())
	assert.Equal(t, want, q2.Arcs(), "insertion order must not matter")
	assert.True(t, q1.EqualArcs(q2))
}

// TestNeighborNames checks undirected adjacency in both orientations.
func TestNeighborNames(t *testing.T) {
	q := quiver.New()
	for _, n := range []string{"a", "b", "c", "d"} {
		_, err := q.AddVertex(n, quiver.Cluster)
		require.NoError(t, err)
	}
	require.NoError(t, q.AddArc("a", "b"))
	require.NoError(t, q.AddArc("c", "a"))

	nbrs, err := q.NeighborNames("a")
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c"}, nbrs, "both orientations count; insertion order")

	nbrs, err = q.NeighborNames("d")
	require.NoError(t, err)
	assert.Empty(t, nbrs)

	_, err = q.NeighborNames("ghost")
	assert.ErrorIs(t, err, quiver.ErrUnknownVertex)
}

// TestClone_Independence ensures clones share no arc state.
func TestClone_Independence(t *testing.T) {
	q := quiver.New()
	_, err := q.AddVertex("u", quiver.Cluster)
	require.NoError(t, err)
	_, err = q.AddVertex("v", quiver.Frozen)
	require.NoError(t, err)
	require.NoError(t, q.AddArc("u", "v"))

	c := q.Clone()
	assert.True(t, q.Equal(c))

	require.NoError(t, c.AddEdge("u", "v", 1))
	w, err := q.NetWeight("u", "v")
	require.NoError(t, err)
	assert.Equal(t, int64(1), w, "source must not observe clone writes")
	assert.False(t, q.Equal(c))

	empty := q.CloneEmpty()
	assert.Zero(t, empty.ArcCount())
	assert.Equal(t, q.VertexCount(), empty.VertexCount())
}

// TestVarName covers the x_{i} label scheme with flip primes.
func TestVarName(t *testing.T) {
	q := quiver.New()
	_, err := q.AddVertex("alpha", quiver.Cluster)
	require.NoError(t, err)
	_, err = q.AddVertex("e0", quiver.Frozen)
	require.NoError(t, err)

	label, err := q.VarName("alpha")
	require.NoError(t, err)
	assert.Equal(t, "x_{1}", label)

	require.NoError(t, q.MarkFlip("alpha"))
	require.NoError(t, q.MarkFlip("alpha"))
	label, err = q.VarName("alpha")
	require.NoError(t, err)
	assert.Equal(t, "x_{1''}", label, "one prime per flip")

	label, err = q.VarName("e0")
	require.NoError(t, err)
	assert.Equal(t, "e0", label, "frozen vertices keep their plain name")

	assert.ErrorIs(t, q.MarkFlip("e0"), quiver.ErrUnknownVertex,
		"flips are defined for cluster vertices only")
	_, err = q.VarName("ghost")
	assert.ErrorIs(t, err, quiver.ErrUnknownVertex)
}

// TestVertices_Partition verifies the snapshot ordering contract.
func TestVertices_Partition(t *testing.T) {
	q := quiver.New()
	_, err := q.AddVertex("e0", quiver.Frozen)
	require.NoError(t, err)
	_, err = q.AddVertex("x1", quiver.Cluster)
	require.NoError(t, err)
	_, err = q.AddVertex("e1", quiver.Frozen)
	require.NoError(t, err)
	_, err = q.AddVertex("x2", quiver.Cluster)
	require.NoError(t, err)

	names := func(vs []quiver.Vertex) []string {
		out := make([]string, len(vs))
		for i, v := range vs {
			out[i] = v.Name
		}

		return out
	}

	assert.Equal(t, []string{"x1", "x2"}, names(q.ClusterVertices()))
	assert.Equal(t, []string{"e0", "e1"}, names(q.FrozenVertices()))
	assert.Equal(t, []string{"x1", "x2", "e0", "e1"}, names(q.Vertices()),
		"cluster vertices precede frozen vertices")
}
