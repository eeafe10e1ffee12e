package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/HuXin0817/dots-and-boxes-engine/pkg/assess"
	"github.com/HuXin0817/dots-and-boxes-engine/pkg/game"
	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/chess"
	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/file"
	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/message"
)

var errQuit = errors.New("quit")

var playCmd = &cobra.Command{
	Use:   "play [board file]",
	Short: "Play a game on the terminal, optionally resuming a saved board",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var options []game.Option
		if len(args) == 1 {
			b, err := file.LoadBoard(args[0])
			if err != nil {
				return err
			}
			options = append(options, game.WithBoard(b))
		}
		return play(cmd, config, options...)
	},
}

func play(cmd *cobra.Command, c Config, options ...game.Option) error {
	out := cmd.OutOrStdout()
	records := newRecordLog(c.RecordFile)
	defer records.Close()

	options = append(options, game.WithOnMove(func(r message.MoveRecord) { records.Add(r) }))
	if c.twoPlayers() {
		options = append(options, game.WithOpponent(chess.Player2))
	} else {
		d, err := c.difficulty()
		if err != nil {
			return err
		}
		options = append(options, game.WithGenerator(chess.CPU, assess.NewMoveGenerator(d, c.generatorOptions()...)))
	}

	g, err := game.New(cmd.Context(), c.Width, c.Height, options...)
	if err != nil {
		return err
	}

	in := bufio.NewScanner(cmd.InOrStdin())
	for {
		if err := g.Run(); err != nil {
			return err
		}

		fmt.Fprint(out, renderBoard(g.Board(), !noColor))
		fmt.Fprintln(out, renderStatistics(g.Statistics(), c.twoPlayers()))
		if g.Over() {
			break
		}

		err := prompt(out, in, g)
		if errors.Is(err, errQuit) || errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			fmt.Fprintln(out, err)
		}
	}

	end := g.EndRecord()
	records.Add(end)
	fmt.Fprintf(out, "Winner: %v\n", end.Winner())
	return nil
}

// prompt reads commands until one click was accepted.
func prompt(out io.Writer, in *bufio.Scanner, g *game.Game) error {
	for {
		fmt.Fprintf(out, "%v> ", g.Current())
		if !in.Scan() {
			if err := in.Err(); err != nil {
				return err
			}
			return io.EOF
		}

		fields := strings.Fields(in.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "quit", "exit":
			return errQuit
		case "help":
			fmt.Fprintln(out, "commands: <row> <col> | hint | save <file> | quit")
		case "hint":
			m, ok := assess.NewGreedy().NextMove(g.Board())
			if ok {
				fmt.Fprintln(out, "try", m)
			}
		case "save":
			if len(fields) < 2 {
				fmt.Fprintln(out, "save needs a file name")
				continue
			}
			if err := file.SaveBoard(fields[1], g.Board()); err != nil {
				return err
			}
		default:
			m, err := parseMove(fields)
			if err != nil {
				return err
			}
			_, err = g.Click(m.Row, m.Col)
			return err
		}
	}
}

func parseMove(fields []string) (m assess.Move, err error) {
	if len(fields) != 2 {
		return m, fmt.Errorf("want <row> <col>, got %q", strings.Join(fields, " "))
	}
	if m.Row, err = strconv.Atoi(fields[0]); err != nil {
		return m, fmt.Errorf("row: %w", err)
	}
	if m.Col, err = strconv.Atoi(fields[1]); err != nil {
		return m, fmt.Errorf("col: %w", err)
	}
	return m, nil
}
