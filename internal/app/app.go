package app

import (
	"io"

	"consoleapp/internal/demo"
	"consoleapp/internal/menu"
)

// Menu keys for the two demos.
const (
	BuildingsKey = "1"
	FractionsKey = "2"
)

// Actions returns the menu entries for the demos over s.
func Actions(s demo.Samples) []menu.Action {
	return []menu.Action{
		{
			Key:   BuildingsKey,
			Label: "Buildings: Building, ApartmentBuilding, Warehouse",
			Run:   func(w io.Writer) error { return demo.Buildings(w, s) },
		},
		{
			Key:   FractionsKey,
			Label: "Fractions",
			Run:   func(w io.Writer) error { return demo.Fractions(w, s) },
		},
	}
}
