package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const defaultTimeout = 30 * time.Second

// fileConfig is the layout of the --config file.
type fileConfig struct {
	Token   string        `yaml:"token,omitempty"`
	BaseURL string        `yaml:"base_url,omitempty"`
	Timeout time.Duration `yaml:"timeout,omitempty"`
	Rate    float64       `yaml:"rate,omitempty"`
}

// load fills settings not given on the command line or in the environment
// from the config file, then applies defaults.
func (g *Globals) load() error {
	if g.Config != "" {
		f, err := os.Open(g.Config)
		if err != nil {
			return fmt.Errorf("opening config: %w", err)
		}
		defer f.Close()

		var cfg fileConfig
		if err := yaml.NewDecoder(f).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("parsing config %s: %w", g.Config, err)
		}
		g.merge(cfg)
	}
	if g.Timeout == 0 {
		g.Timeout = defaultTimeout
	}
	return nil
}

func (g *Globals) merge(cfg fileConfig) {
	if g.Token == "" {
		g.Token = cfg.Token
	}
	if g.BaseURL == "" {
		g.BaseURL = cfg.BaseURL
	}
	if g.Timeout == 0 {
		g.Timeout = cfg.Timeout
	}
	if g.Rate == 0 {
		g.Rate = cfg.Rate
	}
}
