package main

import (
	"os"

	"github.com/solde-app/solde/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
