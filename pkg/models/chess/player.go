package chess

import "fmt"

type Player int8

const (
	NoPlayer Player = iota
	Player1
	Player2
	CPU
)

func (p Player) String() string {
	switch p {
	case Player1:
		return "Player1"
	case Player2:
		return "Player2"
	case CPU:
		return "CPU"
	}
	return "None"
}

var playerName = map[string]Player{
	"None":    NoPlayer,
	"Player1": Player1,
	"Player2": Player2,
	"CPU":     CPU,
}

func ParsePlayer(s string) (Player, error) {
	if p, c := playerName[s]; c {
		return p, nil
	}
	return NoPlayer, fmt.Errorf("chess: unknown player %q", s)
}

func (p Player) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Player) UnmarshalText(text []byte) (err error) {
	*p, err = ParsePlayer(string(text))
	return
}

func (p Player) Valid() bool {
	return p == Player1 || p == Player2 || p == CPU
}

// Opponent is only defined for the one-player framing, Player1 against CPU.
func (p Player) Opponent() Player {
	switch p {
	case Player1:
		return CPU
	case CPU:
		return Player1
	}
	panic(fmt.Sprintf("chess: %v has no opponent in a one player game", p))
}

// Statistics is the score summary of a board. Winner is NoPlayer on a tie.
type Statistics struct {
	Player1Points int    `json:"player1_points"`
	Player2Points int    `json:"player2_points"`
	CPUPoints     int    `json:"cpu_points"`
	Winner        Player `json:"winner"`
}

func (s Statistics) Total() int {
	return s.Player1Points + s.Player2Points + s.CPUPoints
}

func (s Statistics) Points(p Player) int {
	switch p {
	case Player1:
		return s.Player1Points
	case Player2:
		return s.Player2Points
	case CPU:
		return s.CPUPoints
	}
	return 0
}

func (s *Statistics) addPoint(p Player) {
	switch p {
	case Player1:
		s.Player1Points++
	case Player2:
		s.Player2Points++
	case CPU:
		s.CPUPoints++
	}
}

// withWinner decides the winner from the current points. Player2 only wins by
// beating Player1 outright; every other case is settled between Player1 and CPU.
func (s Statistics) withWinner() Statistics {
	switch {
	case s.Player1Points < s.Player2Points:
		s.Winner = Player2
	case s.Player1Points > s.CPUPoints:
		s.Winner = Player1
	case s.Player1Points < s.CPUPoints:
		s.Winner = CPU
	default:
		s.Winner = NoPlayer
	}
	return s
}
