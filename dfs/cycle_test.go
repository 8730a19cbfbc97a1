package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fcafm/core"
	"github.com/katalvlaran/fcafm/dfs"
)

func TestFindCycle(t *testing.T) {
	cycle, ok, err := dfs.FindCycle(diamond(t))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, cycle)

	g := core.NewDigraph(4)
	require.NoError(t, g.AddEdge(3, 0))
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(2, 0))

	cycle, ok, err = dfs.FindCycle(g)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []int{0, 1, 2}, cycle)

	_, _, err = dfs.FindCycle(nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestFindCycle_SelfLoop(t *testing.T) {
	g := core.NewDigraph(2, core.WithLoops())
	require.NoError(t, g.AddEdge(1, 1))

	cycle, ok, err := dfs.FindCycle(g)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []int{1}, cycle)
}
