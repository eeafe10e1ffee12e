package assess

import (
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/chess"
)

// DefaultSearchDepth is the number of turns Hard looks ahead. A turn ends with
// a click that closes nothing, so chains of completions are searched in full.
const DefaultSearchDepth = 3

// Minimax searches the game tree with alpha-beta pruning, playing CPU against
// Player1. A completing click keeps the same player on move at the same depth.
type Minimax struct {
	rand     *rand.Rand
	maxDepth int
}

func NewMinimax(opts ...Option) *Minimax {
	o := newOptions(opts...)
	return &Minimax{
		rand:     o.rand,
		maxDepth: o.depth,
	}
}

func (m *Minimax) Depth() int {
	return m.maxDepth
}

func (m *Minimax) NextMove(b *chess.Board) (Move, bool) {
	if b.AllIsClicked() {
		return Move{}, false
	}

	start := time.Now()
	defer observeMove(minimaxPolicy, start)

	s := &search{
		maxDepth: m.maxDepth,
		table:    newTranspositionTable(),
	}
	best := s.minimax(b, m.maxDepth, true, chess.CPU, math.MinInt, math.MaxInt)

	searchNodes.Add(float64(s.nodes))
	searchCacheHits.Add(float64(s.table.hits))
	searchCacheSize.Observe(float64(s.table.len()))
	logx.Debugf("minimax: best %v score %d, %d nodes, %d cached", best.Moves, best.Score, s.nodes, s.table.len())

	return best.Moves[m.rand.Intn(len(best.Moves))], true
}

type search struct {
	maxDepth int
	table    *transpositionTable
	nodes    int
}

func (s *search) minimax(b *chess.Board, depth int, maximizing bool, mover chess.Player, alpha, beta int) searchResult {
	key := s.table.key(b, depth, maximizing, mover)
	if r, ok := s.table.probe(key, alpha, beta); ok {
		return r
	}

	alphaOrig, betaOrig := alpha, beta
	s.nodes++

	if depth == 0 || b.AllIsClicked() {
		r := searchResult{Score: evaluate(b)}
		s.table.store(key, r, alphaOrig, betaOrig)
		return r
	}

	best := searchResult{Score: math.MaxInt}
	if maximizing {
		best.Score = math.MinInt
	}

	for _, move := range orderedMoves(b) {
		next := b.Clone()
		bonus, err := next.Click(move.Row, move.Col, mover)
		if err != nil {
			panic(err)
		}

		var child searchResult
		if bonus {
			child = s.minimax(next, depth, maximizing, mover, alpha, beta)
		} else {
			child = s.minimax(next, depth-1, !maximizing, mover.Opponent(), alpha, beta)
		}

		if depth == s.maxDepth && mover == chess.CPU {
			logx.Debugf("minimax: evaluating move %v: score = %d", move, child.Score)
		}

		if child.Score == best.Score {
			best.Moves = append(best.Moves, move)
		}

		if maximizing {
			if child.Score > best.Score {
				best.Score = child.Score
				best.Moves = []Move{move}
				alpha = max(alpha, best.Score)
				if beta < alpha {
					break
				}
			}
		} else if child.Score < best.Score {
			best.Score = child.Score
			best.Moves = []Move{move}
			beta = min(beta, best.Score)
			if beta < alpha {
				break
			}
		}
	}

	s.table.store(key, best, alphaOrig, betaOrig)
	return best
}

// orderedMoves lists the free walls with completions first, safe walls next and
// walls that give a box away last.
func orderedMoves(b *chess.Board) []Move {
	walls := CollectWallStatistics(b)
	sort.SliceStable(walls, func(i, j int) bool {
		return WallPriority(walls[i].MaxAdjacentCounter) < WallPriority(walls[j].MaxAdjacentCounter)
	})

	moves := make([]Move, len(walls))
	for i, ws := range walls {
		moves[i] = ws.Move
	}
	return moves
}

func evaluate(b *chess.Board) int {
	s := b.Statistics()
	return s.CPUPoints - s.Player1Points
}
