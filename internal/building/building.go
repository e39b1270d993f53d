package building

import "fmt"

// Describer is implemented by every building kind.
type Describer interface {
	Describe() string
}

// Building holds the fields shared by all building kinds.
//
// No field is validated: empty text and negative counts are accepted as given.
type Building struct {
	Address      string `toml:"address"`
	WallMaterial string `toml:"wall_material"`
	Floors       int    `toml:"floors"`
}

// New returns a Building with the given fields.
func New(address, wallMaterial string, floors int) Building {
	return Building{Address: address, WallMaterial: wallMaterial, Floors: floors}
}

// Copy returns an independent copy of b.
func (b Building) Copy() Building { return b }

// SetWallMaterial replaces the wall material.
func (b *Building) SetWallMaterial(material string) { b.WallMaterial = material }

// SetFloors replaces the floor count.
func (b *Building) SetFloors(floors int) { b.Floors = floors }

// Describe renders the shared fields on one line.
func (b Building) Describe() string {
	return fmt.Sprintf("Address: %s, Wall Material: %s, Floors: %d", b.Address, b.WallMaterial, b.Floors)
}

// ApartmentBuilding is a Building divided into apartments.
type ApartmentBuilding struct {
	Building
	Apartments int `toml:"apartments"`
}

// NewApartmentBuilding returns an ApartmentBuilding with the given fields.
func NewApartmentBuilding(address, wallMaterial string, floors, apartments int) ApartmentBuilding {
	return ApartmentBuilding{Building: New(address, wallMaterial, floors), Apartments: apartments}
}

// Copy returns an independent copy of a.
func (a ApartmentBuilding) Copy() ApartmentBuilding { return a }

// SetApartments replaces the apartment count.
func (a *ApartmentBuilding) SetApartments(apartments int) { a.Apartments = apartments }

// Describe renders the Building line followed by the apartment count.
func (a ApartmentBuilding) Describe() string {
	return a.Building.Describe() + fmt.Sprintf("\nApartments: %d", a.Apartments)
}

// Warehouse is a Building used for storage.
type Warehouse struct {
	Building
	LayoutType string `toml:"layout_type"`
}

// NewWarehouse returns a Warehouse with the given fields.
func NewWarehouse(address, wallMaterial string, floors int, layoutType string) Warehouse {
	return Warehouse{Building: New(address, wallMaterial, floors), LayoutType: layoutType}
}

// Copy returns an independent copy of w.
func (w Warehouse) Copy() Warehouse { return w }

// SetLayoutType replaces the layout type.
func (w *Warehouse) SetLayoutType(layoutType string) { w.LayoutType = layoutType }

// Describe renders the Building line followed by the layout type.
func (w Warehouse) Describe() string {
	return w.Building.Describe() + "\nLayout Type: " + w.LayoutType
}

// Compile-time assertions that every kind implements Describer.
var (
	_ Describer = Building{}
	_ Describer = ApartmentBuilding{}
	_ Describer = Warehouse{}
)
