// Package main is the entry point for the arena CLI
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "arena",
	Short: "Pokemon battle arena",
	Long:  `Arena simulates pokemon battles between trainers: single battles in set, rotate or optimise mode, and full battle tower runs.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(battleCmd)
	rootCmd.AddCommand(towerCmd)
	rootCmd.AddCommand(standingsCmd)
}
