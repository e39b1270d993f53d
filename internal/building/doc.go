// Package building models buildings and their descriptions.
//
// Building carries the shared fields. ApartmentBuilding and Warehouse embed
// it and add one field each; their Describe output is always the Building
// line followed by their own line.
package building
