package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/zeromicro/go-zero/core/logx"

	"github.com/HuXin0817/dots-and-boxes-engine/pkg/pprof"
)

var (
	configFile string
	noColor    bool
	config     Config

	rootCmd = &cobra.Command{
		Use:           "dotsboxes",
		Short:         "Play dots and boxes against the computer",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
			if config, err = loadConfig(configFile); err != nil {
				return err
			}
			if err = applyFlags(cmd, &config); err != nil {
				return err
			}
			if err = config.validate(); err != nil {
				return err
			}

			logx.MustSetup(config.Log)
			logx.DisableStat()

			if config.debugEnabled() {
				if _, err = pprof.Start(config.Debug.Addr); err != nil {
					return err
				}
			}
			return nil
		},
	}
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configFile, "file", "f", defaultConfigFile, "the config file")
	flags.Int("width", 0, "board width, overrides the config file")
	flags.Int("height", 0, "board height, overrides the config file")
	flags.StringP("difficulty", "d", "", "Easy, Medium or Hard, overrides the config file")
	flags.Int64("seed", 0, "random seed, overrides the config file")
	flags.BoolVar(&noColor, "no-color", false, "print boards without colors")

	rootCmd.AddCommand(playCmd, duelCmd, showCmd)
}

func applyFlags(cmd *cobra.Command, c *Config) error {
	flags := cmd.Flags()

	if flags.Changed("width") {
		width, err := flags.GetInt("width")
		if err != nil {
			return err
		}
		c.Width = width
	}
	if flags.Changed("height") {
		height, err := flags.GetInt("height")
		if err != nil {
			return err
		}
		c.Height = height
	}
	if flags.Changed("difficulty") {
		difficulty, err := flags.GetString("difficulty")
		if err != nil {
			return err
		}
		c.Difficulty = difficulty
	}
	if flags.Changed("seed") {
		seed, err := flags.GetInt64("seed")
		if err != nil {
			return err
		}
		c.Seed = seed
	}

	if c.Width < 1 || c.Height < 1 {
		return errBoardSize
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
