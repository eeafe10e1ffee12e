package assess

import (
	"math/rand"
	"time"

	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/chess"
)

// Greedy closes a box whenever it can, otherwise plays a safe wall, and only
// gives a box away when nothing else is left.
type Greedy struct {
	rand *rand.Rand
}

func NewGreedy(opts ...Option) *Greedy {
	o := newOptions(opts...)
	return &Greedy{rand: o.rand}
}

func (g *Greedy) NextMove(b *chess.Board) (Move, bool) {
	if b.AllIsClicked() {
		return Move{}, false
	}

	start := time.Now()
	defer observeMove(greedyPolicy, start)

	walls := CollectWallStatistics(b)
	return pickByTier(g.rand, walls), true
}

func pickByTier(r *rand.Rand, walls []WallStatistics) Move {
	if ws, c := chooseWall(r, walls, closesBox); c {
		return ws.Move
	}

	if ws, c := chooseWall(r, walls, isSafe); c {
		return ws.Move
	}

	if ws, c := chooseWall(r, walls, givesBox); c {
		return ws.Move
	}

	panic("assess: no wall found in any priority tier")
}
