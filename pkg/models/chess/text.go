package chess

import (
	"errors"
	"fmt"
	"strings"
)

// RepeatCount is how many times a glyph is repeated per logical column in the
// text form of a board.
const RepeatCount = 5

var ErrMalformedBoard = errors.New("malformed board text")

const (
	clickedGlyph      = 'X'
	horizontalGlyph   = '-'
	verticalGlyph     = '|'
	unownedGlyph      = ' '
	horizontalLineLen = RepeatCount + 1
)

var ownerGlyphs = map[Player]byte{
	NoPlayer: unownedGlyph,
	Player1:  'A',
	Player2:  'B',
	CPU:      'C',
}

var glyphOwners = map[byte]Player{
	unownedGlyph: NoPlayer,
	'A':          Player1,
	'B':          Player2,
	'C':          CPU,
}

// String renders the board as text. Horizontal wall rows take one line, vertical
// wall rows take RepeatCount identical lines holding the walls and cell owners.
func (b *Board) String() string {
	var builder strings.Builder

	for row := range b.WallRows() {
		if row%2 == 0 {
			for col := range b.width {
				glyph := byte(horizontalGlyph)
				if b.clicked[b.rowOffset[row]+col] {
					glyph = clickedGlyph
				}
				builder.WriteByte(' ')
				builder.WriteString(strings.Repeat(string(glyph), RepeatCount))
			}
			builder.WriteByte('\n')
			continue
		}

		var line strings.Builder
		for col := range b.width + 1 {
			if b.clicked[b.rowOffset[row]+col] {
				line.WriteByte(clickedGlyph)
			} else {
				line.WriteByte(verticalGlyph)
			}
			if col < b.width {
				owner := b.cells[b.cellIndex(row/2, col)].Owner
				line.WriteString(strings.Repeat(string(ownerGlyphs[owner]), RepeatCount))
			}
		}
		line.WriteByte('\n')
		builder.WriteString(strings.Repeat(line.String(), RepeatCount))
	}

	return builder.String()
}

// ParseBoard is the inverse of Board.String. Runs are collapsed, clicked walls are
// replayed in scan order, owners are assigned from their glyphs and the scores
// are rebuilt from the owners.
func ParseBoard(s string) (*Board, error) {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i := range lines {
		lines[i] = strings.TrimSuffix(lines[i], "\r")
	}
	if len(lines) == 0 || lines[0] == "" {
		return nil, fmt.Errorf("%w: input is empty", ErrMalformedBoard)
	}

	if (len(lines)-1)%(RepeatCount+1) != 0 || len(lines) == 1 {
		return nil, fmt.Errorf("%w: %d lines", ErrMalformedBoard, len(lines))
	}
	if len(lines[0])%horizontalLineLen != 0 {
		return nil, fmt.Errorf("%w: line 1 has length %d", ErrMalformedBoard, len(lines[0]))
	}

	height := (len(lines) - 1) / (RepeatCount + 1)
	width := len(lines[0]) / horizontalLineLen
	b := NewBoard(width, height)
	owners := make([]Player, width*height)

	for row := range b.WallRows() {
		lineNumber := row / 2 * (RepeatCount + 1)
		if row%2 == 1 {
			lineNumber++
		}

		var (
			glyphs []byte
			err    error
		)
		if row%2 == 0 {
			glyphs, err = collapseHorizontal(lines[lineNumber], width)
		} else {
			glyphs, err = collapseVertical(lines[lineNumber:lineNumber+RepeatCount], width)
		}
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedBoard, lineNumber+1, err)
		}

		for col := range b.wallRowLength(row) {
			glyph := glyphs[col]
			if row%2 == 1 {
				glyph = glyphs[2*col]
			}

			switch {
			case glyph == clickedGlyph:
				b.markWall(b.rowOffset[row] + col)
			case row%2 == 0 && glyph == horizontalGlyph, row%2 == 1 && glyph == verticalGlyph:
			default:
				return nil, fmt.Errorf("%w: line %d: unexpected wall glyph %q", ErrMalformedBoard, lineNumber+1, glyph)
			}

			if row%2 == 1 && col < width {
				owner, c := glyphOwners[glyphs[2*col+1]]
				if !c {
					return nil, fmt.Errorf("%w: line %d: unexpected owner glyph %q", ErrMalformedBoard, lineNumber+1, glyphs[2*col+1])
				}
				owners[b.cellIndex(row/2, col)] = owner
			}
		}
	}

	for idx, owner := range owners {
		if (owner != NoPlayer) != b.cells[idx].Closed() {
			id := b.cellID(idx)
			return nil, fmt.Errorf("%w: cell (%d, %d) has owner %v with %d walls", ErrMalformedBoard, id.Row, id.Col, owner, b.cells[idx].Counter)
		}
		b.cells[idx].Owner = owner
		b.statistics.addPoint(owner)
	}

	return b, nil
}

// collapseHorizontal turns " XXXXX -----" into "X-".
func collapseHorizontal(line string, width int) ([]byte, error) {
	if len(line) != width*horizontalLineLen {
		return nil, fmt.Errorf("length %d, want %d", len(line), width*horizontalLineLen)
	}

	glyphs := make([]byte, 0, width)
	for col := range width {
		chunk := line[col*horizontalLineLen : (col+1)*horizontalLineLen]
		if chunk[0] != ' ' {
			return nil, fmt.Errorf("column %d does not start with a space", col)
		}
		glyph, err := collapseRun(chunk[1:])
		if err != nil {
			return nil, fmt.Errorf("column %d: %w", col, err)
		}
		glyphs = append(glyphs, glyph)
	}
	return glyphs, nil
}

// collapseVertical turns the RepeatCount lines of "X     |AAAAA|" into "X |A|".
func collapseVertical(lines []string, width int) ([]byte, error) {
	for i := 1; i < len(lines); i++ {
		if lines[i] != lines[0] {
			return nil, fmt.Errorf("repeated line %d differs", i+1)
		}
	}

	line := lines[0]
	if len(line) != width*horizontalLineLen+1 {
		return nil, fmt.Errorf("length %d, want %d", len(line), width*horizontalLineLen+1)
	}

	glyphs := make([]byte, 0, 2*width+1)
	for col := range width {
		chunk := line[col*horizontalLineLen : (col+1)*horizontalLineLen]
		glyph, err := collapseRun(chunk[1:])
		if err != nil {
			return nil, fmt.Errorf("column %d: %w", col, err)
		}
		glyphs = append(glyphs, chunk[0], glyph)
	}
	glyphs = append(glyphs, line[len(line)-1])
	return glyphs, nil
}

func collapseRun(run string) (byte, error) {
	if strings.Count(run, run[:1]) != len(run) {
		return 0, fmt.Errorf("run %q is not %d identical glyphs", run, RepeatCount)
	}
	return run[0], nil
}
