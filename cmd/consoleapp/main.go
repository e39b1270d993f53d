package main

import (
	"os"

	"consoleapp/cmd/consoleapp/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
