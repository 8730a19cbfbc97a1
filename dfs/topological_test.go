package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fcafm/core"
	"github.com/katalvlaran/fcafm/dfs"
)

func TestTopologicalSort_Diamond(t *testing.T) {
	order, err := dfs.TopologicalSort(diamond(t))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 1, 3}, order)
}

// TestTopologicalSort_RespectsEdges checks the ordering contract on a wider DAG.
func TestTopologicalSort_RespectsEdges(t *testing.T) {
	g := core.NewDigraph(7)
	for _, e := range []core.Edge{
		{From: 6, To: 0}, {From: 5, To: 0}, {From: 0, To: 3}, {From: 4, To: 3}, {From: 3, To: 1}, {From: 2, To: 1},
	} {
		require.NoError(t, g.AddEdge(e.From, e.To))
	}

	order, err := dfs.TopologicalSort(g)
	require.NoError(t, err)
	require.Len(t, order, 7)

	pos := make([]int, 7)
	for i, v := range order {
		pos[v] = i
	}
	for _, e := range g.Edges() {
		assert.Less(t, pos[e.From], pos[e.To], "edge %d->%d", e.From, e.To)
	}
}

func TestTopologicalSort_Errors(t *testing.T) {
	_, err := dfs.TopologicalSort(nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	g := core.NewDigraph(3)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(2, 0))
	_, err = dfs.TopologicalSort(g)
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)
}

func TestTopologicalSort_Empty(t *testing.T) {
	order, err := dfs.TopologicalSort(core.NewDigraph(0))
	require.NoError(t, err)
	assert.Empty(t, order)
}
