// Package main is the entry point for the rune manager server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rune-api",
	Short: "PF2e rune manager",
	Long:  `rune-api runs the rune rules engine behind the game event bus, with actor documents persisted in Redis.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
}
