package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/chess"
)

func TestSaveAndLoadBoard(t *testing.T) {
	b := chess.NewBoard(3, 2)
	for _, w := range []chess.WallID{{0, 0}, {1, 0}, {1, 1}, {2, 0}, {3, 3}} {
		_, err := b.Click(w.Row, w.Col, chess.Player1)
		require.NoError(t, err)
	}

	path := filepath.Join(t.TempDir(), "dumps", "game")
	require.NoError(t, SaveBoard(path, b))

	loaded, err := LoadBoard(path + BoardExt)
	require.NoError(t, err)
	assert.Equal(t, b, loaded)
	assert.Equal(t, chess.Player1, loaded.Cell(0, 0).Owner)
}

func TestLoadBoardErrors(t *testing.T) {
	_, err := LoadBoard("")
	assert.ErrorIs(t, err, ErrEmptyPath)
	assert.ErrorIs(t, SaveBoard("", chess.NewBoard(1, 1)), ErrEmptyPath)

	_, err = LoadBoard(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "broken.txt")
	require.NoError(t, os.WriteFile(path, []byte("not a board"), 0o644))
	_, err = LoadBoard(path)
	assert.ErrorIs(t, err, chess.ErrMalformedBoard)
}

type line string

func (l line) String() string { return string(l) }

func TestAppendLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.jsonl")

	require.NoError(t, AppendLines(path, line("a"), line("b\n")))
	require.NoError(t, AppendLines[line](path))
	require.NoError(t, AppendLines(path, line("c")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a\nb\nc\n", string(data))
}
