package main

import (
	"os"

	"github.com/GreatValueCreamSoda/gonpp/cmd/gonpp/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
