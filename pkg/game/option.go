package game

import (
	"github.com/HuXin0817/dots-and-boxes-engine/pkg/assess"
	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/chess"
	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/message"
)

type gameOptions struct {
	opponent   chess.Player
	generators map[chess.Player]assess.MoveGenerator
	onMove     func(message.MoveRecord)
	uid        message.GameUid
	board      *chess.Board
	keepRecord bool
}

type Option func(*gameOptions)

// WithOpponent seats Player2 instead of CPU against Player1.
func WithOpponent(player chess.Player) Option {
	return func(o *gameOptions) {
		o.opponent = player
	}
}

func WithGenerator(player chess.Player, generator assess.MoveGenerator) Option {
	return func(o *gameOptions) {
		if o.generators == nil {
			o.generators = make(map[chess.Player]assess.MoveGenerator)
		}
		o.generators[player] = generator
	}
}

func WithOnMove(onMove func(message.MoveRecord)) Option {
	return func(o *gameOptions) {
		o.onMove = onMove
	}
}

func WithGameUid(uid message.GameUid) Option {
	return func(o *gameOptions) {
		o.uid = uid
	}
}

// WithBoard resumes a game from b. The game owns b afterwards.
func WithBoard(b *chess.Board) Option {
	return func(o *gameOptions) {
		o.board = b
	}
}

// WithoutRecords stops the game from keeping its move history in memory.
func WithoutRecords() Option {
	return func(o *gameOptions) {
		o.keepRecord = false
	}
}
