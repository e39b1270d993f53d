package demo

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"consoleapp/internal/building"
	"consoleapp/internal/fraction"
)

// Samples is the data the two demos run on.
type Samples struct {
	A          fraction.Fraction
	B          fraction.Fraction
	Apartments []building.ApartmentBuilding
	Warehouses []building.Warehouse
}

// DefaultSamples returns the built-in demo data.
func DefaultSamples() Samples {
	return Samples{
		A: fraction.MustNew(1, 2),
		B: fraction.MustNew(3, 4),
		Apartments: []building.ApartmentBuilding{
			building.NewApartmentBuilding("Main St", "Brick", 5, 20),
		},
		Warehouses: []building.Warehouse{
			building.NewWarehouse("Industrial Zone", "Concrete", 1, "Open"),
		},
	}
}

// samplesFile mirrors the TOML layout; nil means "keep the default".
type samplesFile struct {
	Fractions struct {
		A *fraction.Fraction `toml:"a"`
		B *fraction.Fraction `toml:"b"`
	} `toml:"fractions"`
	Apartments []building.ApartmentBuilding `toml:"apartments"`
	Warehouses []building.Warehouse         `toml:"warehouses"`
}

// LoadSamples reads demo data from a TOML file at path, filling anything the
// file leaves out from DefaultSamples. An empty path yields the defaults; a
// path that cannot be read is an error.
func LoadSamples(path string) (Samples, error) {
	s := DefaultSamples()
	if path == "" {
		return s, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Samples{}, fmt.Errorf("samples: %w", err)
	}

	var f samplesFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return Samples{}, fmt.Errorf("samples %s: %w", path, err)
	}

	if f.Fractions.A != nil {
		s.A = *f.Fractions.A
	}
	if f.Fractions.B != nil {
		s.B = *f.Fractions.B
	}
	if f.Apartments != nil {
		s.Apartments = f.Apartments
	}
	if f.Warehouses != nil {
		s.Warehouses = f.Warehouses
	}
	return s, nil
}

// Buildings returns the sample buildings in display order: apartments first,
// then warehouses.
func (s Samples) Buildings() []building.Describer {
	out := make([]building.Describer, 0, len(s.Apartments)+len(s.Warehouses))
	for _, a := range s.Apartments {
		out = append(out, a)
	}
	for _, w := range s.Warehouses {
		out = append(out, w)
	}
	return out
}
