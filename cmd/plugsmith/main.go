package main

import (
	"os"

	"github.com/plugsmith/plugsmith/internal/commands"
)

func main() {
	rootCmd := commands.RootCmd()
	rootCmd.AddCommand(commands.InitCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
