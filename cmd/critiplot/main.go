package main

import (
	"os"

	"critiplot/cmd/critiplot/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
