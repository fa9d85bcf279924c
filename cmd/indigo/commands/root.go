// Package commands wires the indigo CLI.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "indigo",
	Short: "Print shop pricing engine",
	Long: `indigo computes retail quotes for the shop's digital press products:
flat prints, folded prints, booklets, notebooks, notepads, large-format
posters and perfect-bound books.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
