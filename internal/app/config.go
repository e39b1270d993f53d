package app

// Config holds runtime wiring options for building the app.
type Config struct {
	SamplesPath string // optional TOML file overriding the demo data
	Quiet       bool   // hide the option list before each prompt
}
