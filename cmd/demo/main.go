package main

import (
	"os"

	"github.com/idilsaglam/demo/cmd/demo/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
