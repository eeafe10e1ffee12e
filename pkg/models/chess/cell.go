package chess

type CellID struct {
	Row int
	Col int
}

// Cell counts how many of its four walls are clicked. Owner is set once, by the
// player that clicks the fourth wall.
type Cell struct {
	Counter int
	Owner   Player
}

func (c Cell) Closed() bool {
	return c.Counter == 4
}
