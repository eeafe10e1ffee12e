package chess

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCoordinates = errors.New("wrong coordinates of wall")
	ErrAlreadyClicked     = errors.New("wall is already clicked")
)

// Board is the authoritative game state. It is not safe for concurrent use;
// searches work on clones.
type Board struct {
	*layout
	clicked    []bool
	cells      []Cell
	joints     []Joint
	statistics Statistics
}

func NewBoard(width, height int) *Board {
	if width < 1 || height < 1 {
		panic(fmt.Sprintf("chess: board size %dx%d is out of range", width, height))
	}

	l := getLayout(width, height)
	return &Board{
		layout:  l,
		clicked: make([]bool, len(l.walls)),
		cells:   make([]Cell, width*height),
		joints:  make([]Joint, (width+1)*(height+1)),
	}
}

func (b *Board) Width() int { return b.width }

func (b *Board) Height() int { return b.height }

func (b *Board) WallRows() int { return 2*b.height + 1 }

func (b *Board) WallRowLength(row int) int { return b.wallRowLength(row) }

func (b *Board) WallsCount() int { return len(b.walls) }

// Click applies one wall click for player. The result reports whether a cell was
// closed, which entitles the player to move again. The board is left untouched
// when an error is returned.
func (b *Board) Click(row, col int, player Player) (bonus bool, err error) {
	if !player.Valid() {
		panic(fmt.Sprintf("chess: click by unknown player %d", player))
	}

	idx, ok := b.wallIndex(row, col)
	if !ok {
		return false, fmt.Errorf("%w: (%d, %d)", ErrInvalidCoordinates, row, col)
	}
	if b.clicked[idx] {
		return false, fmt.Errorf("%w: (%d, %d)", ErrAlreadyClicked, row, col)
	}

	for _, cell := range b.markWall(idx) {
		b.cells[cell].Owner = player
		b.statistics.addPoint(player)
		bonus = true
	}

	return bonus, nil
}

// markWall sets the wall, its counters and joints and returns the cells it closed.
func (b *Board) markWall(idx int) (closed []int) {
	w := &b.walls[idx]
	b.clicked[idx] = true

	for _, cell := range w.cells {
		c := &b.cells[cell]
		if c.Counter < 4 {
			c.Counter++
			if c.Counter == 4 {
				closed = append(closed, cell)
			}
		}
	}

	for _, j := range w.joints {
		b.joints[j.joint].SetWallClicked(j.direction)
	}

	return
}

func (b *Board) AllIsClicked() bool {
	for _, c := range b.clicked {
		if !c {
			return false
		}
	}
	return true
}

func (b *Board) IsClicked(row, col int) bool {
	idx, ok := b.wallIndex(row, col)
	return ok && b.clicked[idx]
}

func (b *Board) FreeWallsCount() (count int) {
	for _, c := range b.clicked {
		if !c {
			count++
		}
	}
	return
}

// FreeWalls lists the unclicked walls in scan order.
func (b *Board) FreeWalls() (freeWalls []WallID) {
	for idx, c := range b.clicked {
		if !c {
			freeWalls = append(freeWalls, b.walls[idx].id)
		}
	}
	return
}

// MaxAdjacentCounter is the highest counter among the cells next to the wall.
func (b *Board) MaxAdjacentCounter(row, col int) int {
	idx, ok := b.wallIndex(row, col)
	if !ok {
		panic(fmt.Sprintf("chess: wall (%d, %d) is not on the board", row, col))
	}

	maxCounter := 0
	for _, cell := range b.walls[idx].cells {
		maxCounter = max(maxCounter, b.cells[cell].Counter)
	}
	return maxCounter
}

func (b *Board) Wall(row, col int) (Wall, bool) {
	idx, ok := b.wallIndex(row, col)
	if !ok {
		return Wall{}, false
	}

	w := b.walls[idx]
	wall := Wall{WallID: w.id, Clicked: b.clicked[idx]}
	for _, cell := range w.cells {
		wall.AdjacentCells = append(wall.AdjacentCells, b.cellID(cell))
	}
	for _, j := range w.joints {
		wall.AdjacentJoints = append(wall.AdjacentJoints, JointLink{Direction: j.direction, JointID: b.jointID(j.joint)})
	}
	return wall, true
}

func (b *Board) Cell(row, col int) Cell {
	return b.cells[b.cellIndex(row, col)]
}

func (b *Board) Joint(row, col int) Joint {
	return b.joints[b.jointIndex(row, col)]
}

// ClosedCells counts the cells whose four walls are clicked.
func (b *Board) ClosedCells() (count int) {
	for _, c := range b.cells {
		if c.Closed() {
			count++
		}
	}
	return
}

func (b *Board) Statistics() Statistics {
	return b.statistics.withWinner()
}

// Clone copies the mutable state; the layout is shared.
func (b *Board) Clone() *Board {
	return &Board{
		layout:     b.layout,
		clicked:    append([]bool(nil), b.clicked...),
		cells:      append([]Cell(nil), b.cells...),
		joints:     append([]Joint(nil), b.joints...),
		statistics: b.statistics,
	}
}

// AppendKey appends one byte per wall clicked flag followed by one byte per
// cell owner, in scan order.
func (b *Board) AppendKey(key []byte) []byte {
	for _, c := range b.clicked {
		if c {
			key = append(key, 1)
		} else {
			key = append(key, 0)
		}
	}
	for _, c := range b.cells {
		key = append(key, byte(c.Owner))
	}
	return key
}
