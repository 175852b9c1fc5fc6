package main

import (
	"os"

	"github.com/sellorm/rgear/internal/commands"
)

func main() {
	rootCmd := commands.RootCmd()

	if err := commands.Execute(rootCmd, os.Args[1:]); err != nil {
		os.Exit(commands.ExitCode(err))
	}
}
