package chess

import "sync"

type wallLayout struct {
	id     WallID
	cells  []int
	joints []jointLink
}

type jointLink struct {
	direction Direction
	joint     int
}

// layout is the immutable part of a board. Boards of the same size share it.
type layout struct {
	width     int
	height    int
	rowOffset []int
	walls     []wallLayout
}

type layoutKey struct {
	width  int
	height int
}

type layoutStore struct {
	mu      sync.Mutex
	layouts map[layoutKey]*layout
}

var layouts = &layoutStore{layouts: make(map[layoutKey]*layout)}

func getLayout(width, height int) *layout {
	layouts.mu.Lock()
	defer layouts.mu.Unlock()

	key := layoutKey{width: width, height: height}
	if l, c := layouts.layouts[key]; c {
		return l
	}

	l := newLayout(width, height)
	layouts.layouts[key] = l
	return l
}

func newLayout(width, height int) *layout {
	l := &layout{
		width:     width,
		height:    height,
		rowOffset: make([]int, 2*height+2),
	}

	for row := range 2*height + 1 {
		l.rowOffset[row] = len(l.walls)
		if row%2 == 0 {
			for col := range width {
				l.walls = append(l.walls, wallLayout{
					id:    WallID{Row: row, Col: col},
					cells: l.clipCells(CellID{row/2 - 1, col}, CellID{row / 2, col}),
					joints: []jointLink{
						{direction: East, joint: l.jointIndex(row/2, col)},
						{direction: West, joint: l.jointIndex(row/2, col+1)},
					},
				})
			}
		} else {
			for col := range width + 1 {
				l.walls = append(l.walls, wallLayout{
					id:    WallID{Row: row, Col: col},
					cells: l.clipCells(CellID{row / 2, col - 1}, CellID{row / 2, col}),
					joints: []jointLink{
						{direction: South, joint: l.jointIndex(row/2, col)},
						{direction: North, joint: l.jointIndex(row/2+1, col)},
					},
				})
			}
		}
	}
	l.rowOffset[2*height+1] = len(l.walls)

	return l
}

func (l *layout) clipCells(ids ...CellID) (cells []int) {
	for _, id := range ids {
		if 0 <= id.Row && id.Row < l.height && 0 <= id.Col && id.Col < l.width {
			cells = append(cells, l.cellIndex(id.Row, id.Col))
		}
	}
	return
}

func (l *layout) cellIndex(row, col int) int {
	return row*l.width + col
}

func (l *layout) cellID(index int) CellID {
	return CellID{Row: index / l.width, Col: index % l.width}
}

func (l *layout) jointIndex(row, col int) int {
	return row*(l.width+1) + col
}

func (l *layout) jointID(index int) JointID {
	return JointID{Row: index / (l.width + 1), Col: index % (l.width + 1)}
}

func (l *layout) wallRowLength(row int) int {
	if row%2 == 0 {
		return l.width
	}
	return l.width + 1
}

func (l *layout) wallIndex(row, col int) (int, bool) {
	if row < 0 || row > 2*l.height || col < 0 || col >= l.wallRowLength(row) {
		return 0, false
	}
	return l.rowOffset[row] + col, true
}
