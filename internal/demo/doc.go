// Package demo holds the two routines the menu dispatches to and the data
// they run on.
//
//   - Buildings  describes each sample building
//   - Fractions  prints every arithmetic and comparison result for a pair
//
// The data comes from DefaultSamples, optionally overridden by a TOML file
// (LoadSamples):
//
//	[fractions]
//	a = "1/2"
//	b = "3/4"
//
//	[[apartments]]
//	address = "Main St"
//	wall_material = "Brick"
//	floors = 5
//	apartments = 20
//
//	[[warehouses]]
//	address = "Industrial Zone"
//	wall_material = "Concrete"
//	floors = 1
//	layout_type = "Open"
package demo
