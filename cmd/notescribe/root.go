package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "notescribe",
	Short: "Extract and classify isolated notes from annotated scores",
	Long: `notescribe processes annotated music-notation documents: it extracts
notehead-stem pairs that form isolated quarter and half notes, rasterizes
each pair into a fixed-size binary image, and classifies the images with a
nearest-neighbor model.`,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("notescribe %s\n", Version)
		fmt.Printf("  Build time: %s\n", BuildTime)
		fmt.Printf("  Git commit: %s\n", GitCommit)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
