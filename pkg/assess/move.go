package assess

import (
	"fmt"

	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/chess"
)

// Move addresses one wall of a board.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (m Move) String() string {
	return fmt.Sprintf("(%d, %d)", m.Row, m.Col)
}

func (m Move) Wall() chess.WallID {
	return chess.WallID{Row: m.Row, Col: m.Col}
}
