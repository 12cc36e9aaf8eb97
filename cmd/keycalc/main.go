package main

import (
	"os"

	"keycalc/cmd/keycalc/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
