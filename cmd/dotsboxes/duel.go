package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/HuXin0817/dots-and-boxes-engine/pkg/assess"
	"github.com/HuXin0817/dots-and-boxes-engine/pkg/game"
	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/chess"
	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/message"
	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/model"
)

var (
	duelGames   int
	duelPlayer1 string

	duelCmd = &cobra.Command{
		Use:   "duel",
		Short: "Let two policies play a series of games, the configured difficulty playing CPU",
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := duel(cmd, config, duelPlayer1, duelGames)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), summary)
			return nil
		},
	}
)

func init() {
	duelCmd.Flags().IntVarP(&duelGames, "games", "n", 10, "number of games")
	duelCmd.Flags().StringVar(&duelPlayer1, "player1", "Easy", "difficulty of Player1, Easy or Medium")
}

type duelSummary struct {
	Player1 assess.Difficulty
	CPU     assess.Difficulty
	Games   int
	Wins    map[chess.Player]int
	Points  chess.Statistics
}

func (s duelSummary) String() string {
	return fmt.Sprintf("%v (Player1) %d wins, %v (CPU) %d wins, %d draws, points %d : %d",
		s.Player1, s.Wins[chess.Player1],
		s.CPU, s.Wins[chess.CPU],
		s.Wins[chess.NoPlayer],
		s.Points.Player1Points, s.Points.CPUPoints)
}

func duel(cmd *cobra.Command, c Config, player1 string, games int) (duelSummary, error) {
	first, err := assess.ParseDifficulty(player1)
	if err != nil {
		return duelSummary{}, err
	}
	second, err := c.difficulty()
	if err != nil {
		return duelSummary{}, err
	}

	summary := duelSummary{
		Player1: first,
		CPU:     second,
		Wins:    make(map[chess.Player]int),
	}

	records := newRecordLog(c.RecordFile)
	defer records.Close()

	bar := model.NewBarTo(cmd.ErrOrStderr(), games, fmt.Sprintf("%v vs %v", first, second))
	defer bar.Close()

	for i := range games {
		g, err := game.New(cmd.Context(), c.Width, c.Height,
			game.WithGenerator(chess.Player1, assess.NewMoveGenerator(first, seeded(c, 2*i)...)),
			game.WithGenerator(chess.CPU, assess.NewMoveGenerator(second, seeded(c, 2*i+1)...)),
			game.WithOnMove(func(r message.MoveRecord) { records.Add(r) }),
			game.WithoutRecords(),
		)
		if err != nil {
			return summary, err
		}

		if err := g.Run(); err != nil {
			return summary, err
		}

		end := g.EndRecord()
		records.Add(end)

		summary.Games++
		summary.Wins[end.Winner()]++
		summary.Points.Player1Points += end.Statistics.Player1Points
		summary.Points.CPUPoints += end.Statistics.CPUPoints
		bar.Add(1)
	}

	return summary, nil
}

// seeded derives a distinct seed per game and seat when a seed is configured.
func seeded(c Config, offset int) []assess.Option {
	if c.Seed != 0 {
		c.Seed += int64(offset)
	}
	return c.generatorOptions()
}
