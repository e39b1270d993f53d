package app

import (
	"consoleapp/internal/demo"
	"consoleapp/internal/menu"
)

// Wire bundles the loaded demo data and the menu built on it.
type Wire struct {
	Samples demo.Samples
	Menu    *menu.Menu
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	samples, err := demo.LoadSamples(cfg.SamplesPath)
	if err != nil {
		return nil, err
	}
	return &Wire{
		Samples: samples,
		Menu:    menu.New(cfg.Quiet, Actions(samples)...),
	}, nil
}
