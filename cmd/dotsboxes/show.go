package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/HuXin0817/dots-and-boxes-engine/pkg/assess"
	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/file"
)

var showCmd = &cobra.Command{
	Use:   "show <board file>",
	Short: "Print a saved board with its score and the move CPU would play",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return show(cmd, config, args[0])
	},
}

func show(cmd *cobra.Command, c Config, path string) error {
	out := cmd.OutOrStdout()

	b, err := file.LoadBoard(path)
	if err != nil {
		return err
	}

	fmt.Fprint(out, renderBoard(b, !noColor))
	s := b.Statistics()
	fmt.Fprintln(out, renderStatistics(s, s.Player2Points > 0))

	if b.AllIsClicked() {
		fmt.Fprintf(out, "Winner: %v\n", s.Winner)
		return nil
	}

	d, err := c.difficulty()
	if err != nil {
		return err
	}
	if m, ok := assess.NewMoveGenerator(d, c.generatorOptions()...).NextMove(b); ok {
		fmt.Fprintf(out, "%v suggests %v\n", d, m)
	}
	return nil
}
