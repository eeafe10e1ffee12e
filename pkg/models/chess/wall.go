package chess

import "fmt"

type WallID struct {
	Row int
	Col int
}

func (w WallID) String() string {
	return fmt.Sprintf("(%d, %d)", w.Row, w.Col)
}

// Horizontal reports whether the wall lies on an even (horizontal) wall row.
func (w WallID) Horizontal() bool {
	return w.Row%2 == 0
}

type JointLink struct {
	Direction
	JointID
}

type Wall struct {
	WallID
	Clicked        bool
	AdjacentCells  []CellID
	AdjacentJoints []JointLink
}
