package main

import (
	"github.com/mangohow/specification/internal/log"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "specgen",
	Short:        "specgen is a cli tool for entity descriptors",
	Long:         "specgen generates schema descriptors from Go models and explains how attribute paths resolve against them",
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(genCmd)
	rootCmd.AddCommand(explainCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}
