package main

import (
	"os"

	"github.com/spf13/cobra"

	"studium/internal/interfaces/cli/migrate"
	"studium/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "studium",
		Short: "Studium - school library and enrollment service",
		Long:  `Studium manages a school's book lending and class enrollment through a shared request and allocation workflow.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
