// Package app wires application dependencies for the CLI.
//
// It loads the demo data from Config, builds the menu actions around it and
// exposes both via the Wire struct for commands to use.
package app
