package main

import (
	"os"

	"github.com/erininge/Time-Game/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
