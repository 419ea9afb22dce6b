package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cube",
	Short: "A two-phase 3x3x3 Rubik's cube solver",
	Long: `Cube solves a scrambled 3x3x3 Rubik's cube from a sticker grid file
using Kociemba's two-phase algorithm.`,
	Version: "1.0.0",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(kociembaCmd)
}
