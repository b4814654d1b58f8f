package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glowgrid/akari/internal/board"
)

func TestBuildLinksFirstBlankPerRay(t *testing.T) {
	g := Build(board.MustFromString("___\n"))
	require.Equal(t, 3, g.Size())
	assert.Equal(t, []int{1}, g.Nodes[0].Neighbors)
	assert.ElementsMatch(t, []int{0, 2}, g.Nodes[1].Neighbors)
	assert.Equal(t, []int{1}, g.Nodes[2].Neighbors)
	assert.Equal(t, 2, g.Nodes[1].Degree)
}

func TestBuildWallsBlockEdges(t *testing.T) {
	g := Build(board.MustFromString("_X_\n"))
	require.Equal(t, 2, g.Size())
	assert.Empty(t, g.Nodes[0].Neighbors)
	assert.Empty(t, g.Nodes[1].Neighbors)
	assert.Equal(t, 0, g.NodeAt(0, 0))
	assert.Equal(t, -1, g.NodeAt(0, 1))
	assert.Equal(t, 1, g.NodeAt(0, 2))
}

func TestBuildSkipsInterveningBulbCells(t *testing.T) {
	// edges depend only on walls, never on bulbs or marks
	withBulb := Build(board.MustFromString("_*_\n"))
	require.Equal(t, 3, withBulb.Size())
	assert.Equal(t, []int{1}, withBulb.Nodes[0].Neighbors,
		"a bulb cell is still a blank node, and still the first blank on the ray")
}

func TestCentralityAccumulatesPathCounts(t *testing.T) {
	// 2x2 open square: every node reaches its opposite corner by two
	// shortest paths, each adjacent corner by one
	g := Build(board.MustFromString("__\n__\n"))
	scores := g.Centrality()
	require.Len(t, scores, 4)
	for i, s := range scores {
		assert.Equal(t, 4.0, s, "node %d", i)
	}
}

func TestRankNodesTieOrderIsStable(t *testing.T) {
	// star graph: every score ties, so rank order must match id order
	g := Build(board.MustFromString("___\nX_X\n"))
	rk := g.RankNodes()
	assert.Equal(t, []int{0, 1, 2, 3}, rk.Order)
	for id, pos := range rk.Rank {
		assert.Equal(t, id, rk.Order[pos])
	}
}

func TestRankNodesAscendingWithTiesStable(t *testing.T) {
	// square with a pendant tail below (1,0); the junction node (0,1)'s
	// opposite-corner paths double through it
	g := Build(board.MustFromString("__\n__\n_X\n"))
	rk := g.RankNodes()
	require.Len(t, rk.Scores, 5)

	assert.Equal(t, []float64{5, 6, 5, 5, 5}, rk.Scores)
	assert.Equal(t, []int{0, 2, 3, 4, 1}, rk.Order)
	assert.Equal(t, 4, rk.Rank[1], "highest-centrality node ranks last")
}

func TestRankNodesDeterministic(t *testing.T) {
	b := board.MustFromString(`
__X__
_____
X_1__
`)
	g := Build(b)
	first := g.RankNodes()
	for i := 0; i < 5; i++ {
		again := g.RankNodes()
		assert.Equal(t, first.Order, again.Order)
		assert.Equal(t, first.Scores, again.Scores)
	}
}
