package assess

import (
	"math/rand"
	"time"

	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/chess"
)

// RegionCounting plays like Greedy but simulates the chain behind each
// candidate: it closes into the largest region and, when forced to give boxes
// away, opens the smallest one.
type RegionCounting struct {
	rand *rand.Rand
}

func NewRegionCounting(opts ...Option) *RegionCounting {
	o := newOptions(opts...)
	return &RegionCounting{rand: o.rand}
}

func (rc *RegionCounting) NextMove(b *chess.Board) (Move, bool) {
	if b.AllIsClicked() {
		return Move{}, false
	}

	start := time.Now()
	defer observeMove(regionPolicy, start)

	walls := CollectWallStatistics(b)

	if regions := rc.regionSizeMap(b, walls, closesBox); len(regions) > 0 {
		ws, _ := chooseWall(rc.rand, regions[maxKey(regions)], closesBox)
		return ws.Move, true
	}

	if ws, c := chooseWall(rc.rand, walls, isSafe); c {
		return ws.Move, true
	}

	if regions := rc.regionSizeMap(b, walls, givesBox); len(regions) > 0 {
		ws, _ := chooseWall(rc.rand, regions[minKey(regions)], givesBox)
		return ws.Move, true
	}

	panic("assess: no wall found in any priority tier")
}

// RegionSize counts the boxes CPU collects on a copy of the board when it starts
// from ws and keeps clicking the walls Greedy suggests for as long as it earns
// bonus moves. A wall that gives a box away is clicked first, then Greedy picks
// the wall that starts the run.
func (rc *RegionCounting) RegionSize(b *chess.Board, ws WallStatistics) int {
	board := b.Clone()
	player := chess.CPU
	move := ws.Move
	startingPoints := board.Statistics().CPUPoints

	if ws.MaxAdjacentCounter == 2 {
		if _, err := board.Click(move.Row, move.Col, player); err == nil {
			if !board.AllIsClicked() {
				move = pickByTier(rc.rand, CollectWallStatistics(board))
			}
		}
	}

	for {
		bonus, err := board.Click(move.Row, move.Col, player)
		if err != nil || !bonus {
			break
		}
		if board.AllIsClicked() {
			break
		}
		move = pickByTier(rc.rand, CollectWallStatistics(board))
	}

	return board.Statistics().CPUPoints - startingPoints
}

func (rc *RegionCounting) regionSizeMap(b *chess.Board, walls []WallStatistics, condition func(WallStatistics) bool) map[int][]WallStatistics {
	regions := make(map[int][]WallStatistics)
	for _, ws := range filterWalls(walls, condition) {
		size := rc.RegionSize(b, ws)
		regions[size] = append(regions[size], ws)
	}
	return regions
}

func maxKey(m map[int][]WallStatistics) (key int) {
	first := true
	for k := range m {
		if first || k > key {
			key = k
			first = false
		}
	}
	return
}

func minKey(m map[int][]WallStatistics) (key int) {
	first := true
	for k := range m {
		if first || k < key {
			key = k
			first = false
		}
	}
	return
}
