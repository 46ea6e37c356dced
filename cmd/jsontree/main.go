package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "jsontree",
		Short: "Parse, reformat, and lint JSON documents",
	}

	rootCmd.AddCommand(newFmtCmd())
	rootCmd.AddCommand(newLintCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
