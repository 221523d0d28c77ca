package store_test

import (
	"testing"

	"github.com/dominikbraun/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-postpipeline/internal/store"
)

func newWiring(t *testing.T, vertices ...string) (graph.Graph[string, string], store.ConnectionStore[string, string]) {
	t.Helper()

	s := store.NewMemoryStore[string, string]()
	g := graph.NewWithStore(graph.StringHash, s, graph.Directed(), graph.PreventCycles())

	for _, v := range vertices {
		require.NoError(t, g.AddVertex(v))
	}

	return g, s
}

func TestRemoveInEdges(t *testing.T) {
	t.Parallel()

	g, s := newWiring(t, "source", "a", "b")
	require.NoError(t, g.AddEdge("source", "a"))
	require.NoError(t, g.AddEdge("a", "b"))

	s.RemoveInEdges("b")

	assert.Empty(t, s.Upstream("b"))
	assert.Empty(t, s.Downstream("a"))
	assert.Equal(t, []string{"source"}, s.Upstream("a"))

	_, err := g.Edge("a", "b")
	require.ErrorIs(t, err, graph.ErrEdgeNotFound)
}

func TestIsolateAllowsVertexRemoval(t *testing.T) {
	t.Parallel()

	g, s := newWiring(t, "source", "a", "b")
	require.NoError(t, g.AddEdge("source", "a"))
	require.NoError(t, g.AddEdge("a", "b"))

	require.ErrorIs(t, g.RemoveVertex("a"), graph.ErrVertexHasEdges)

	s.Isolate("a")
	require.NoError(t, g.RemoveVertex("a"))

	assert.Empty(t, s.Downstream("source"))
	assert.Empty(t, s.Upstream("b"))

	count, err := s.VertexCount()
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestPreventCycles(t *testing.T) {
	t.Parallel()

	g, _ := newWiring(t, "source", "a", "b")
	require.NoError(t, g.AddEdge("source", "a"))
	require.NoError(t, g.AddEdge("a", "b"))

	require.Error(t, g.AddEdge("b", "source"))
}

func TestCreatesCycle(t *testing.T) {
	t.Parallel()

	g, s := newWiring(t, "source", "a", "b")
	require.NoError(t, g.AddEdge("source", "a"))
	require.NoError(t, g.AddEdge("a", "b"))

	mem, ok := s.(*store.MemoryStore[string, string])
	require.True(t, ok)

	cycle, err := mem.CreatesCycle("b", "source")
	require.NoError(t, err)
	assert.True(t, cycle)

	cycle, err = mem.CreatesCycle("source", "b")
	require.NoError(t, err)
	assert.False(t, cycle)

	_, err = mem.CreatesCycle("missing", "a")
	require.ErrorIs(t, err, graph.ErrVertexNotFound)
}
