package main

import (
	"os"

	"github.com/contas-dev/contas/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
