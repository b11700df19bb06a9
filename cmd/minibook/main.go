package main

import (
	"os"

	"github.com/minibook-dev/minibook/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
