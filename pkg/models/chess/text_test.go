package chess

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const almostFullBoard = ` XXXXX XXXXX XXXXX
X     |     X     |
X     |     X     |
X     |     X     |
X     |     X     |
X     |     X     |
 ----- ----- -----
X     |     X     X
X     |     X     X
X     |     X     X
X     |     X     X
X     |     X     X
 XXXXX XXXXX -----
XAAAAAXCCCCCX     X
XAAAAAXCCCCCX     X
XAAAAAXCCCCCX     X
XAAAAAXCCCCCX     X
XAAAAAXCCCCCX     X
 XXXXX XXXXX XXXXX`

func TestStringOfEmptyBoard(t *testing.T) {
	expected := " ----- -----\n" +
		strings.Repeat("|     |     |\n", RepeatCount) +
		" ----- -----\n"

	assert.Equal(t, expected, NewBoard(2, 1).String())
}

func TestStringOfOwnedCell(t *testing.T) {
	b := NewBoard(1, 1)
	for _, m := range []WallID{{0, 0}, {1, 0}, {1, 1}} {
		_, err := b.Click(m.Row, m.Col, Player1)
		require.NoError(t, err)
	}
	_, err := b.Click(2, 0, Player2)
	require.NoError(t, err)

	expected := " XXXXX\n" +
		strings.Repeat("XBBBBBX\n", RepeatCount) +
		" XXXXX\n"
	assert.Equal(t, expected, b.String())
}

func TestParseBoard(t *testing.T) {
	b, err := ParseBoard(almostFullBoard)
	require.NoError(t, err)

	assert.Equal(t, 3, b.Width())
	assert.Equal(t, 3, b.Height())
	assert.Equal(t, Cell{Counter: 4, Owner: Player1}, b.Cell(2, 0))
	assert.Equal(t, Cell{Counter: 4, Owner: CPU}, b.Cell(2, 1))
	assert.Equal(t, Cell{Counter: 3}, b.Cell(2, 2))
	assert.Equal(t, Cell{Counter: 2}, b.Cell(0, 0))
	assert.Equal(t, Statistics{Player1Points: 1, CPUPoints: 1}, b.Statistics())

	assert.True(t, b.IsClicked(0, 0))
	assert.False(t, b.IsClicked(1, 3))
	assert.False(t, b.IsClicked(4, 2))
	assert.Equal(t, Joint{North: true, East: true, West: true}, b.Joint(3, 1))

	assert.Equal(t, almostFullBoard+"\n", b.String())
}

func TestParseBoardMatchesClickedBoard(t *testing.T) {
	r := rand.New(rand.NewSource(11))

	for range 30 {
		b := NewBoard(1+r.Intn(5), 1+r.Intn(5))
		players := []Player{Player1, Player2, CPU}
		steps := r.Intn(b.WallsCount() + 1)

		for range steps {
			free := b.FreeWalls()
			w := free[r.Intn(len(free))]
			_, err := b.Click(w.Row, w.Col, players[r.Intn(len(players))])
			require.NoError(t, err)
		}

		text := b.String()
		decoded, err := ParseBoard(text)
		require.NoError(t, err)

		assert.Equal(t, b, decoded)
		assert.Equal(t, b.Statistics(), decoded.Statistics())
		assert.Equal(t, text, decoded.String())
	}
}

func TestParseBoardAcceptsCRLF(t *testing.T) {
	b, err := ParseBoard(strings.ReplaceAll(almostFullBoard, "\n", "\r\n"))
	require.NoError(t, err)
	assert.Equal(t, almostFullBoard+"\n", b.String())
}

func TestParseBoardErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"single line", " -----"},
		{"missing lines", " -----\n|     |\n -----"},
		{"bad horizontal glyph", " --X--\n" + strings.Repeat("|     |\n", RepeatCount) + " -----"},
		{"bad vertical glyph", " -----\n" + strings.Repeat("-     |\n", RepeatCount) + " -----"},
		{"unknown owner", " -----\n" + strings.Repeat("|DDDDD|\n", RepeatCount) + " -----"},
		{"owner of open cell", " -----\n" + strings.Repeat("|AAAAA|\n", RepeatCount) + " -----"},
		{"closed cell without owner", " XXXXX\n" + strings.Repeat("X     X\n", RepeatCount) + " XXXXX"},
		{"repeated lines differ", " -----\n" + strings.Repeat("|     |\n", RepeatCount-1) + "X     |\n -----"},
		{"short vertical line", " -----\n" + strings.Repeat("|    |\n", RepeatCount) + " -----"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseBoard(tt.text)
			assert.ErrorIs(t, err, ErrMalformedBoard)
		})
	}
}
