package assess

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/chess"
)

func TestTranspositionKeyCoversNodeState(t *testing.T) {
	tt := newTranspositionTable()
	b := chess.NewBoard(1, 1)
	clickAll(t, b, chess.Player1, Move{0, 0}, Move{1, 0}, Move{1, 1})

	base := tt.key(b, 3, true, chess.CPU)
	assert.Equal(t, base, tt.key(b.Clone(), 3, true, chess.CPU))
	assert.NotEqual(t, base, tt.key(b, 2, true, chess.CPU))
	assert.NotEqual(t, base, tt.key(b, 3, false, chess.CPU))
	assert.NotEqual(t, base, tt.key(b, 3, true, chess.Player1))

	byPlayer1, byCPU := b.Clone(), b.Clone()
	_, err := byPlayer1.Click(2, 0, chess.Player1)
	require.NoError(t, err)
	_, err = byCPU.Click(2, 0, chess.CPU)
	require.NoError(t, err)

	assert.NotEqual(t, base, tt.key(byCPU, 3, true, chess.CPU))
	assert.NotEqual(t, tt.key(byPlayer1, 3, true, chess.CPU), tt.key(byCPU, 3, true, chess.CPU))
}

func TestTranspositionKeyIgnoresMoveOrder(t *testing.T) {
	tt := newTranspositionTable()
	a, b := chess.NewBoard(2, 2), chess.NewBoard(2, 2)
	clickAll(t, a, chess.Player1, Move{0, 0}, Move{3, 2})
	clickAll(t, b, chess.CPU, Move{3, 2}, Move{0, 0})

	assert.Equal(t, tt.key(a, 1, false, chess.Player1), tt.key(b, 1, false, chess.Player1))
}

func TestTranspositionProbeRespectsBounds(t *testing.T) {
	tt := newTranspositionTable()

	tt.store(1, searchResult{Score: 2}, 0, 5)
	tt.store(2, searchResult{Score: 7}, 0, 5)
	tt.store(3, searchResult{Score: -1}, 0, 5)

	r, ok := tt.probe(1, -100, 100)
	assert.True(t, ok)
	assert.Equal(t, 2, r.Score)

	_, ok = tt.probe(2, 0, 10)
	assert.False(t, ok)
	r, ok = tt.probe(2, 0, 6)
	assert.True(t, ok)
	assert.Equal(t, 7, r.Score)

	_, ok = tt.probe(3, -5, 5)
	assert.False(t, ok)
	_, ok = tt.probe(3, 0, 5)
	assert.True(t, ok)

	_, ok = tt.probe(4, 0, 5)
	assert.False(t, ok)
	assert.Equal(t, 3, tt.hits)
	assert.Equal(t, 3, tt.len())
}
