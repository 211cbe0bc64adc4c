package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tonewave/diffuse"
)

// runConfig mirrors the flags of the run command so a whole simulation
// can live in one YAML file. Flags explicitly set on the command line
// override file values.
type runConfig struct {
	Graph      string  `yaml:"graph"`
	States     string  `yaml:"states"`
	OutStates  string  `yaml:"out_states"`
	History    string  `yaml:"history"`
	Steps      int     `yaml:"steps"`
	Alpha      float64 `yaml:"alpha"`
	Workers    int     `yaml:"workers"`
	Sequential bool    `yaml:"sequential"`
}

// defaultRunConfig matches the engine defaults plus the conventional
// file layout of a run directory.
func defaultRunConfig() runConfig {
	return runConfig{
		Graph:     "data/graph.txt",
		States:    "data/states.txt",
		OutStates: "results/final_states.txt",
		History:   "results/history.txt",
		Steps:     diffuse.DefaultSteps,
		Alpha:     diffuse.DefaultAlpha,
		Workers:   0,
	}
}

// loadRunConfig overlays the YAML file at path onto cfg.
func loadRunConfig(path string, cfg *runConfig) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	return nil
}
