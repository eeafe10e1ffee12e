package assess

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/chess"
)

// MoveGenerator picks the next wall to click. NextMove reports false only when
// every wall of the board is clicked. Implementations own their random source
// and are not safe for concurrent use.
type MoveGenerator interface {
	NextMove(b *chess.Board) (Move, bool)
}

type options struct {
	rand  *rand.Rand
	depth int
}

type Option func(*options)

// WithRand sets the random source used to break ties.
func WithRand(r *rand.Rand) Option {
	return func(o *options) {
		o.rand = r
	}
}

func WithSeed(seed int64) Option {
	return WithRand(rand.New(rand.NewSource(seed)))
}

// WithDepth sets how many turns the minimax search looks ahead.
func WithDepth(depth int) Option {
	return func(o *options) {
		o.depth = depth
	}
}

func newOptions(opts ...Option) *options {
	o := &options{depth: DefaultSearchDepth}
	for _, opt := range opts {
		opt(o)
	}

	if o.rand == nil {
		o.rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if o.depth < 1 {
		o.depth = DefaultSearchDepth
	}

	return o
}

type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "Easy"
	case Medium:
		return "Medium"
	case Hard:
		return "Hard"
	}
	return fmt.Sprintf("Difficulty(%d)", int(d))
}

var difficultyName = map[string]Difficulty{
	"easy":   Easy,
	"greedy": Easy,

	"medium": Medium,
	"region": Medium,

	"hard":    Hard,
	"minimax": Hard,
}

func ParseDifficulty(s string) (Difficulty, error) {
	if d, c := difficultyName[strings.ToLower(strings.TrimSpace(s))]; c {
		return d, nil
	}
	return Easy, fmt.Errorf("unknown difficulty %q", s)
}

// NewMoveGenerator maps a difficulty to its playing policy.
func NewMoveGenerator(d Difficulty, opts ...Option) MoveGenerator {
	switch d {
	case Easy:
		return NewGreedy(opts...)
	case Medium:
		return NewRegionCounting(opts...)
	case Hard:
		return NewMinimax(opts...)
	}
	panic(fmt.Sprintf("assess: unknown difficulty %d", int(d)))
}
