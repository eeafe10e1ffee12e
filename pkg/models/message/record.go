package message

import (
	"github.com/bytedance/sonic"

	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/chess"
)

// MoveRecord is one accepted click of a game.
type MoveRecord struct {
	TimeStamp  TimeStamp        `json:"time"`
	GameUid    GameUid          `json:"game_uid"`
	Step       int              `json:"step"`
	Player     chess.Player     `json:"player"`
	Row        int              `json:"row"`
	Col        int              `json:"col"`
	Bonus      bool             `json:"bonus"`
	Statistics chess.Statistics `json:"statistics"`
}

func ParseMoveRecord(str string) (record MoveRecord, err error) {
	err = sonic.UnmarshalString(str, &record)
	return
}

func (m MoveRecord) String() string {
	str, _ := sonic.MarshalString(m)
	return str
}

// GameEndRecord closes the record stream of a game.
type GameEndRecord struct {
	TimeStamp  TimeStamp        `json:"time"`
	GameUid    GameUid          `json:"game_uid"`
	Width      int              `json:"width"`
	Height     int              `json:"height"`
	Steps      int              `json:"steps"`
	Statistics chess.Statistics `json:"statistics"`
	Board      string           `json:"board,omitempty"`
}

func ParseGameEndRecord(str string) (record GameEndRecord, err error) {
	err = sonic.UnmarshalString(str, &record)
	return
}

func (g GameEndRecord) String() string {
	str, _ := sonic.MarshalString(g)
	return str
}

func (g GameEndRecord) Winner() chess.Player {
	return g.Statistics.Winner
}
