package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/logx"

	"github.com/HuXin0817/dots-and-boxes-engine/pkg/assess"
	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/model"
)

const defaultConfigFile = "etc/dotsboxes.yaml"

type Config struct {
	Name       string `json:",default=dotsboxes"`
	Log        logx.LogConf
	Width      int    `json:",default=5,range=[1:20]"`
	Height     int    `json:",default=5,range=[1:20]"`
	Difficulty string `json:",default=Hard"`
	Depth      int    `json:",default=3,range=[1:8]"`
	Seed       int64  `json:",optional"`
	TwoPlayers string `json:",default=Off"`
	RecordFile string `json:",optional"`
	Debug      struct {
		Enable string `json:",default=Off"`
		Addr   string `json:",optional"`
	}
}

// loadConfig reads path, falling back to the built in defaults when the
// default file is missing.
func loadConfig(path string) (c Config, err error) {
	if _, statErr := os.Stat(path); errors.Is(statErr, os.ErrNotExist) && path == defaultConfigFile {
		err = conf.LoadFromYamlBytes([]byte("Name: dotsboxes\n"), &c)
		return
	}

	err = conf.Load(path, &c)
	return
}

func (c Config) difficulty() (assess.Difficulty, error) {
	return assess.ParseDifficulty(c.Difficulty)
}

func (c Config) generatorOptions() []assess.Option {
	options := []assess.Option{assess.WithDepth(c.Depth)}
	if c.Seed != 0 {
		options = append(options, assess.WithSeed(c.Seed))
	}
	return options
}

func (c Config) twoPlayers() bool {
	return bool(model.NewConfig(c.TwoPlayers))
}

func (c Config) debugEnabled() bool {
	return bool(model.NewConfig(c.Debug.Enable))
}

func (c Config) validate() error {
	if _, err := model.ParseConfig(c.TwoPlayers); err != nil {
		return fmt.Errorf("TwoPlayers: %w", err)
	}
	if _, err := model.ParseConfig(c.Debug.Enable); err != nil {
		return fmt.Errorf("Debug.Enable: %w", err)
	}
	if _, err := c.difficulty(); err != nil {
		return err
	}
	return nil
}
