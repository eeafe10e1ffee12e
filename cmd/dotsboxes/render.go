package main

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"

	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/chess"
)

// renderBoard prints the text dump of b with row numbers on the wall rows and,
// when colors is set, owners and clicked walls highlighted.
func renderBoard(b *chess.Board, colors bool) string {
	au := aurora.NewAurora(colors)
	lines := strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n")

	var builder strings.Builder
	row := 0
	for i, line := range lines {
		label := "   "
		if i == 0 || (i-1)%(chess.RepeatCount+1) == chess.RepeatCount || (i-1)%(chess.RepeatCount+1) == chess.RepeatCount/2 {
			label = fmt.Sprintf("%2d ", row)
			row++
		}

		builder.WriteString(label)
		for _, r := range line {
			builder.WriteString(colorGlyph(au, r))
		}
		builder.WriteByte('\n')
	}
	return builder.String()
}

func colorGlyph(au aurora.Aurora, r rune) string {
	switch r {
	case 'X':
		return au.Bold(au.Yellow("X")).String()
	case 'A':
		return au.BgBlue("A").String()
	case 'B':
		return au.BgGreen("B").String()
	case 'C':
		return au.BgRed("C").String()
	}
	return string(r)
}

func renderStatistics(s chess.Statistics, twoPlayers bool) string {
	if twoPlayers {
		return fmt.Sprintf("Player1 %d : %d Player2", s.Player1Points, s.Player2Points)
	}
	return fmt.Sprintf("Player1 %d : %d CPU", s.Player1Points, s.CPUPoints)
}
