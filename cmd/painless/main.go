package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/moasq/painless/internal/commands"
	"github.com/moasq/painless/terminal"
)

func main() {
	if err := commands.Execute(); err != nil {
		if errors.Is(err, terminal.ErrInterrupted) {
			fmt.Fprintln(os.Stderr)
			os.Exit(130)
		}
		commands.Error(err.Error())
		os.Exit(1)
	}
}
