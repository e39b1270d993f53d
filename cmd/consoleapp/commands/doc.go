// Package commands defines the consoleapp CLI and wires dependencies for subcommands.
//
// Commands
//
//   - (root)      Interactive menu: 1 buildings, 2 fractions, 0 exit
//   - buildings   Describe the sample buildings once
//   - fractions   Print arithmetic and comparison results once (--a, --b)
//
// # Implementation
//
// The root command loads the sample data (built-in, or --samples TOML) and
// builds the menu before any subcommand runs, so handlers share one Wire.
package commands
