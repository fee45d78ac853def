package main

import (
	"os"

	"keywarden/cmd/keywarden/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
