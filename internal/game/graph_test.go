package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func players(a, b Position) [PlayerCount]Position { return [PlayerCount]Position{a, b} }

func TestBuildGraphOpenBoard(t *testing.T) {
	g := BuildGraph(players(Pos(1, 1), Pos(9, 9)), nil, nil)

	assert.ElementsMatch(t, []Position{Pos(4, 5), Pos(6, 5), Pos(5, 4), Pos(5, 6)}, g.Successors(Pos(5, 5)))
	assert.ElementsMatch(t, []Position{Pos(2, 1), Pos(1, 2)}, g.Successors(Pos(1, 1)))
	assert.ElementsMatch(t, []Position{Pos(8, 9), Pos(9, 8)}, g.Successors(Pos(9, 9)))
	assert.Nil(t, g.Successors(Pos(0, 5)))
}

func TestBuildGraphHorizontalWall(t *testing.T) {
	g := BuildGraph(players(Pos(1, 1), Pos(9, 9)), []Position{Pos(4, 4)}, nil)

	for _, x := range []int{4, 5} {
		assert.False(t, g.HasEdge(Pos(x, 3), Pos(x, 4)), "column %d up", x)
		assert.False(t, g.HasEdge(Pos(x, 4), Pos(x, 3)), "column %d down", x)
	}
	assert.True(t, g.HasEdge(Pos(3, 3), Pos(3, 4)))
	assert.True(t, g.HasEdge(Pos(6, 3), Pos(6, 4)))
	assert.True(t, g.HasEdge(Pos(4, 4), Pos(5, 4)))
}

func TestBuildGraphVerticalWall(t *testing.T) {
	g := BuildGraph(players(Pos(1, 1), Pos(9, 9)), nil, []Position{Pos(4, 4)})

	for _, y := range []int{4, 5} {
		assert.False(t, g.HasEdge(Pos(3, y), Pos(4, y)), "row %d right", y)
		assert.False(t, g.HasEdge(Pos(4, y), Pos(3, y)), "row %d left", y)
	}
	assert.True(t, g.HasEdge(Pos(3, 3), Pos(4, 3)))
	assert.True(t, g.HasEdge(Pos(3, 6), Pos(4, 6)))
	assert.True(t, g.HasEdge(Pos(4, 4), Pos(4, 5)))
}

func TestBuildGraphStraightJump(t *testing.T) {
	g := BuildGraph(players(Pos(5, 5), Pos(5, 6)), nil, nil)

	succ := g.Successors(Pos(5, 5))
	assert.Contains(t, succ, Pos(5, 7))
	assert.NotContains(t, succ, Pos(5, 6))
	assert.ElementsMatch(t, []Position{Pos(4, 5), Pos(6, 5), Pos(5, 4), Pos(5, 7)}, succ)

	// The opponent jumps the other way.
	assert.Contains(t, g.Successors(Pos(5, 6)), Pos(5, 4))
	assert.NotContains(t, g.Successors(Pos(5, 6)), Pos(5, 5))

	// Nobody may land on a token.
	assert.False(t, g.HasEdge(Pos(4, 6), Pos(5, 6)))
	assert.False(t, g.HasEdge(Pos(4, 5), Pos(5, 5)))
}

func TestBuildGraphDiagonalJumpBehindWall(t *testing.T) {
	// The wall sits between rows 6 and 7 over columns 5 and 6.
	g := BuildGraph(players(Pos(5, 5), Pos(5, 6)), []Position{Pos(5, 7)}, nil)

	succ := g.Successors(Pos(5, 5))
	assert.Contains(t, succ, Pos(4, 6))
	assert.Contains(t, succ, Pos(6, 6))
	assert.NotContains(t, succ, Pos(5, 7))
	assert.NotContains(t, succ, Pos(5, 6))
}

func TestBuildGraphDiagonalJumpAtEdge(t *testing.T) {
	g := BuildGraph(players(Pos(5, 8), Pos(5, 9)), nil, nil)

	succ := g.Successors(Pos(5, 8))
	assert.ElementsMatch(t, []Position{Pos(4, 8), Pos(6, 8), Pos(5, 7), Pos(4, 9), Pos(6, 9)}, succ)
}

func TestBuildGraphDiagonalRespectsSideWall(t *testing.T) {
	// Straight jump blocked by the edge; the opponent's right side is walled.
	g := BuildGraph(players(Pos(5, 8), Pos(5, 9)), nil, []Position{Pos(6, 8)})

	succ := g.Successors(Pos(5, 8))
	assert.Contains(t, succ, Pos(4, 9))
	assert.NotContains(t, succ, Pos(6, 9))
}

func TestBuildGraphGoalSinks(t *testing.T) {
	g := BuildGraph(players(Pos(5, 1), Pos(5, 9)), nil, nil)

	d, ok := g.Distance(Pos(5, 1), 1)
	require.True(t, ok)
	assert.Equal(t, 9, d)

	d, ok = g.Distance(Pos(5, 9), 2)
	require.True(t, ok)
	assert.Equal(t, 9, d)

	d, ok = g.Distance(Pos(3, 9), 1)
	require.True(t, ok)
	assert.Equal(t, 1, d)
}

func TestJumpShortensDistance(t *testing.T) {
	g := BuildGraph(players(Pos(5, 2), Pos(5, 9)), nil, nil)

	d, ok := g.Distance(Pos(5, 9), 2)
	require.True(t, ok)
	assert.Equal(t, 8, d)
	assert.Contains(t, g.ShortestPath(Pos(5, 9), 2), Pos(5, 1))
	assert.NotContains(t, g.ShortestPath(Pos(5, 9), 2), Pos(5, 2))

	d, ok = g.Distance(Pos(5, 2), 1)
	require.True(t, ok)
	assert.Equal(t, 8, d)
}

func TestShortestPathIsDeterministic(t *testing.T) {
	g := BuildGraph(players(Pos(5, 1), Pos(5, 9)), []Position{Pos(5, 2)}, nil)

	first := g.ShortestPath(Pos(5, 1), 1)
	require.NotEmpty(t, first)
	assert.Equal(t, 9, first[len(first)-1].Y)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, g.ShortestPath(Pos(5, 1), 1))
	}

	d, ok := g.Distance(Pos(5, 1), 1)
	require.True(t, ok)
	assert.Len(t, first, d-1)

	step, ok := g.NextStep(Pos(5, 1), 1)
	require.True(t, ok)
	assert.Equal(t, first[0], step)
	assert.True(t, g.HasEdge(Pos(5, 1), step))
}

func TestNextStepOnGoalRow(t *testing.T) {
	g := BuildGraph(players(Pos(5, 9), Pos(1, 1)), nil, nil)

	_, ok := g.NextStep(Pos(5, 9), 1)
	assert.False(t, ok)
	assert.Empty(t, g.ShortestPath(Pos(5, 9), 1))
}

func TestHasPathSealed(t *testing.T) {
	// Every edge between rows 1 and 2 is cut.
	h := []Position{Pos(1, 2), Pos(3, 2), Pos(5, 2), Pos(7, 2), Pos(8, 2)}
	g := BuildGraph(players(Pos(9, 1), Pos(5, 9)), h, nil)

	assert.False(t, g.HasPath(Pos(9, 1), 1))
	assert.False(t, g.HasPath(Pos(5, 9), 2))
	assert.True(t, g.HasPath(Pos(5, 9), 1))
}
