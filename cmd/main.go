package main

import (
	"os"

	"github.com/VladPetriv/currency_bot/cmd/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
