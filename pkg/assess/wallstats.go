package assess

import (
	"fmt"
	"math/rand"

	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/chess"
)

// WallStatistics classifies an unclicked wall by the fullest cell next to it:
// 3 closes a box, 0 or 1 is safe, 2 hands the opponent a box.
type WallStatistics struct {
	Move
	MaxAdjacentCounter int
}

func CollectWallStatistics(b *chess.Board) (walls []WallStatistics) {
	for _, w := range b.FreeWalls() {
		walls = append(walls, WallStatistics{
			Move:               Move{Row: w.Row, Col: w.Col},
			MaxAdjacentCounter: b.MaxAdjacentCounter(w.Row, w.Col),
		})
	}
	return
}

// WallPriority orders walls for the search: completions, safe walls, then
// walls that give a box away.
func WallPriority(maxAdjacentCounter int) int {
	switch maxAdjacentCounter {
	case 3:
		return 0
	case 0, 1:
		return 1
	case 2:
		return 2
	}
	panic(fmt.Sprintf("assess: unclicked wall next to a cell with counter %d", maxAdjacentCounter))
}

func filterWalls(walls []WallStatistics, condition func(WallStatistics) bool) (filtered []WallStatistics) {
	for _, ws := range walls {
		if condition(ws) {
			filtered = append(filtered, ws)
		}
	}
	return
}

func chooseWall(r *rand.Rand, walls []WallStatistics, condition func(WallStatistics) bool) (WallStatistics, bool) {
	filtered := filterWalls(walls, condition)
	if len(filtered) == 0 {
		return WallStatistics{}, false
	}
	return filtered[r.Intn(len(filtered))], true
}

func closesBox(ws WallStatistics) bool { return ws.MaxAdjacentCounter == 3 }

func isSafe(ws WallStatistics) bool { return ws.MaxAdjacentCounter <= 1 }

func givesBox(ws WallStatistics) bool { return ws.MaxAdjacentCounter == 2 }
