package assess

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/chess"
)

func TestCollectWallStatistics(t *testing.T) {
	b := chess.NewBoard(2, 1)
	clickAll(t, b, chess.Player1, Move{0, 0}, Move{1, 0}, Move{1, 1})

	walls := CollectWallStatistics(b)
	require.Len(t, walls, b.FreeWallsCount())

	counters := make(map[Move]int)
	for _, ws := range walls {
		counters[ws.Move] = ws.MaxAdjacentCounter
	}
	assert.Equal(t, map[Move]int{
		{0, 1}: 1,
		{1, 2}: 1,
		{2, 0}: 3,
		{2, 1}: 1,
	}, counters)
}

func TestWallPriority(t *testing.T) {
	assert.Equal(t, 0, WallPriority(3))
	assert.Equal(t, 1, WallPriority(0))
	assert.Equal(t, 1, WallPriority(1))
	assert.Equal(t, 2, WallPriority(2))
	assert.Panics(t, func() { WallPriority(4) })
}

func TestChooseWall(t *testing.T) {
	walls := []WallStatistics{
		{Move: Move{0, 0}, MaxAdjacentCounter: 2},
		{Move: Move{1, 0}, MaxAdjacentCounter: 0},
		{Move: Move{1, 1}, MaxAdjacentCounter: 1},
	}
	r := rand.New(rand.NewSource(5))

	_, ok := chooseWall(r, walls, closesBox)
	assert.False(t, ok)

	ws, ok := chooseWall(r, walls, givesBox)
	require.True(t, ok)
	assert.Equal(t, Move{0, 0}, ws.Move)

	seen := make(map[Move]bool)
	for range 100 {
		ws, ok := chooseWall(r, walls, isSafe)
		require.True(t, ok)
		seen[ws.Move] = true
	}
	assert.Equal(t, map[Move]bool{{1, 0}: true, {1, 1}: true}, seen)
}

func TestOrderedMoves(t *testing.T) {
	b := chess.NewBoard(2, 2)
	clickAll(t, b, chess.Player1, Move{0, 0}, Move{1, 0}, Move{1, 1}, Move{0, 1})

	moves := orderedMoves(b)
	require.Len(t, moves, b.FreeWallsCount())
	assert.Equal(t, Move{2, 0}, moves[0])

	last := 0
	for _, m := range moves {
		p := WallPriority(b.MaxAdjacentCounter(m.Row, m.Col))
		assert.GreaterOrEqual(t, p, last)
		last = p
	}
}
