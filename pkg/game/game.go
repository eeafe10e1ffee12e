package game

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/HuXin0817/dots-and-boxes-engine/pkg/assess"
	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/chess"
	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/message"
)

var (
	ErrGameOver      = errors.New("game is over")
	ErrHumanSeat     = errors.New("seat has no move generator")
	ErrUnsupported   = errors.New("move generator cannot play this seat")
	ErrInvalidPlayer = errors.New("player cannot sit at this game")
)

// Game alternates two seats over one board: Player1 and an opponent, either
// CPU or Player2. A seat with a move generator is played by it.
type Game struct {
	logx.Logger
	uid        message.GameUid
	board      *chess.Board
	seats      [2]seat
	turn       int
	steps      int
	records    []message.MoveRecord
	onMove     func(message.MoveRecord)
	keepRecord bool
}

type seat struct {
	player    chess.Player
	generator assess.MoveGenerator
}

func New(ctx context.Context, width, height int, options ...Option) (*Game, error) {
	o := &gameOptions{opponent: chess.CPU, keepRecord: true}
	for _, option := range options {
		option(o)
	}

	if o.opponent != chess.CPU && o.opponent != chess.Player2 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPlayer, o.opponent)
	}

	g := &Game{
		Logger:     logx.WithContext(ctx),
		uid:        o.uid,
		board:      o.board,
		seats:      [2]seat{{player: chess.Player1}, {player: o.opponent}},
		onMove:     o.onMove,
		keepRecord: o.keepRecord,
	}
	if g.uid == "" {
		g.uid = message.NewGameUid()
	}
	if g.board == nil {
		g.board = chess.NewBoard(width, height)
	}

	for player, generator := range o.generators {
		i, ok := g.seatOf(player)
		if !ok {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPlayer, player)
		}
		if _, minimax := generator.(*assess.Minimax); minimax && player != chess.CPU {
			return nil, fmt.Errorf("%w: minimax only plays %v", ErrUnsupported, chess.CPU)
		}
		g.seats[i].generator = generator
	}

	g.Infof("game %s started on a %dx%d board", g.uid.Short(), g.board.Width(), g.board.Height())
	return g, nil
}

func (g *Game) seatOf(player chess.Player) (int, bool) {
	for i, s := range g.seats {
		if s.player == player {
			return i, true
		}
	}
	return 0, false
}

func (g *Game) Uid() message.GameUid {
	return g.uid
}

// Board returns a copy of the current board.
func (g *Game) Board() *chess.Board {
	return g.board.Clone()
}

func (g *Game) Current() chess.Player {
	return g.seats[g.turn].player
}

// HumanToMove reports whether the player to move has no move generator.
func (g *Game) HumanToMove() bool {
	return !g.Over() && g.seats[g.turn].generator == nil
}

func (g *Game) Over() bool {
	return g.board.AllIsClicked()
}

func (g *Game) Statistics() chess.Statistics {
	return g.board.Statistics()
}

func (g *Game) Steps() int {
	return g.steps
}

func (g *Game) Records() []message.MoveRecord {
	return append([]message.MoveRecord(nil), g.records...)
}

// Click plays one wall for the player to move. A rejected click leaves the game
// unchanged; a click that closes no box passes the turn.
func (g *Game) Click(row, col int) (bonus bool, err error) {
	if g.Over() {
		return false, ErrGameOver
	}

	player := g.Current()
	bonus, err = g.board.Click(row, col, player)
	if err != nil {
		g.Errorf("game %s: %v rejected (%d, %d): %v", g.uid.Short(), player, row, col, err)
		return false, err
	}

	record := message.MoveRecord{
		TimeStamp:  message.Now(),
		GameUid:    g.uid,
		Step:       g.steps + 1,
		Player:     player,
		Row:        row,
		Col:        col,
		Bonus:      bonus,
		Statistics: g.board.Statistics(),
	}
	g.steps++
	g.Infof("game %s step %d: %v clicked (%d, %d), bonus %t", g.uid.Short(), record.Step, player, row, col, bonus)

	if g.keepRecord {
		g.records = append(g.records, record)
	}
	if g.onMove != nil {
		g.onMove(record)
	}

	if !bonus {
		g.turn = 1 - g.turn
	}
	if g.Over() {
		g.Infof("game %s over: %+v", g.uid.Short(), record.Statistics)
	}

	return bonus, nil
}

// PlayTurn lets the generator of the player to move click until it closes no
// box or the game ends.
func (g *Game) PlayTurn() error {
	if g.Over() {
		return ErrGameOver
	}

	s := g.seats[g.turn]
	if s.generator == nil {
		return fmt.Errorf("%w: %v", ErrHumanSeat, s.player)
	}

	for {
		start := time.Now()
		m, ok := s.generator.NextMove(g.board)
		if !ok {
			return nil
		}
		g.Debugf("game %s: %v chose %v in %v", g.uid.Short(), s.player, m, time.Since(start))

		bonus, err := g.Click(m.Row, m.Col)
		if err != nil {
			return err
		}
		if !bonus || g.Over() {
			return nil
		}
	}
}

// Run plays generator turns until the game ends or a human has to move.
func (g *Game) Run() error {
	for !g.Over() && !g.HumanToMove() {
		if err := g.PlayTurn(); err != nil {
			return err
		}
	}
	return nil
}

func (g *Game) EndRecord() message.GameEndRecord {
	return message.GameEndRecord{
		TimeStamp:  message.Now(),
		GameUid:    g.uid,
		Width:      g.board.Width(),
		Height:     g.board.Height(),
		Steps:      g.Steps(),
		Statistics: g.board.Statistics(),
		Board:      g.board.String(),
	}
}
