package assess

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/chess"
)

// chainsBoard builds a 3x3 board where every cell has two walls clicked: four
// single cells and a long chain through the rest.
func chainsBoard(t *testing.T, extra ...Move) *chess.Board {
	b := chess.NewBoard(3, 3)
	walls := append([]Move{
		{0, 2}, {1, 0}, {1, 1}, {1, 3}, {2, 1}, {3, 0},
		{3, 2}, {4, 2}, {5, 0}, {5, 1}, {5, 3}, {6, 1},
	}, extra...)
	for _, w := range walls {
		_, _ = b.Click(w.Row, w.Col, chess.CPU)
	}
	return b
}

func TestRegionSize(t *testing.T) {
	b := chainsBoard(t)
	rc := NewRegionCounting(WithSeed(1))

	tests := []struct {
		wall     Move
		expected int
	}{
		{Move{0, 0}, 1},
		{Move{0, 1}, 3},
		{Move{1, 2}, 3},
		{Move{2, 0}, 1},
		{Move{2, 2}, 3},
		{Move{3, 1}, 3},
		{Move{3, 3}, 3},
		{Move{4, 0}, 1},
		{Move{4, 1}, 3},
		{Move{5, 2}, 3},
		{Move{6, 0}, 1},
		{Move{6, 2}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.wall.String(), func(t *testing.T) {
			size := rc.RegionSize(b, WallStatistics{Move: tt.wall, MaxAdjacentCounter: 2})
			assert.Equal(t, tt.expected, size)
		})
	}
}

func TestRegionSizeLeavesBoardUntouched(t *testing.T) {
	b := chainsBoard(t)
	before := b.Clone()

	NewRegionCounting(WithSeed(1)).RegionSize(b, WallStatistics{Move: Move{0, 1}, MaxAdjacentCounter: 2})
	assert.Equal(t, before, b)
}

func TestRegionSizeOfAlmostClosedCell(t *testing.T) {
	b := chainsBoard(t, Move{0, 0})

	size := NewRegionCounting(WithSeed(1)).RegionSize(b, WallStatistics{Move: Move{2, 0}, MaxAdjacentCounter: 3})
	assert.Equal(t, 1, size)
}

func TestRegionSizeOfLoop(t *testing.T) {
	b := chess.NewBoard(3, 3)
	for _, w := range []Move{{0, 0}, {0, 1}, {1, 0}, {1, 2}, {3, 0}, {3, 2}, {4, 0}, {4, 1}} {
		_, err := b.Click(w.Row, w.Col, chess.CPU)
		require.NoError(t, err)
	}

	size := NewRegionCounting(WithSeed(1)).RegionSize(b, WallStatistics{Move: Move{1, 1}, MaxAdjacentCounter: 2})
	assert.Equal(t, 4, size)
}

func TestRegionCountingOpensSmallestRegion(t *testing.T) {
	b := chainsBoard(t)
	expected := []Move{{0, 0}, {2, 0}, {4, 0}, {6, 0}}

	for seed := range int64(10) {
		m, ok := NewRegionCounting(WithSeed(seed)).NextMove(b)
		require.True(t, ok)
		assert.Contains(t, expected, m)
	}
}

func TestRegionCountingClosesIntoBiggestRegion(t *testing.T) {
	b := chainsBoard(t, Move{0, 1}, Move{2, 0})
	expected := []Move{{0, 0}, {1, 2}, {2, 2}, {3, 3}}

	for seed := range int64(10) {
		m, ok := NewRegionCounting(WithSeed(seed)).NextMove(b)
		require.True(t, ok)
		assert.Contains(t, expected, m)
	}
}

func TestRegionCountingOnFullBoard(t *testing.T) {
	b := chess.NewBoard(1, 1)
	clickAll(t, b, chess.Player1, Move{0, 0}, Move{1, 0}, Move{1, 1}, Move{2, 0})

	_, ok := NewRegionCounting().NextMove(b)
	assert.False(t, ok)
}
