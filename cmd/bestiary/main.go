// Package main is the entry point for the bestiary CLI
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "bestiary",
	Short: "Monster knowledge checks and a shared bestiary",
	Long: `Bestiary lets players roll knowledge checks against monsters, posts the
revealed information to a shared chat log, and lets the GM commit posted
checks into persistent per-monster journal records.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(commitCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(journalCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(monstersCmd)
}
