package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "arbor",
	Short: "Arbor is a coordinator-based navigation engine",
	Long:  `Arbor drives hierarchical navigation trees declared in YAML manifests: simulate flows interactively, validate configurations, render graphs, or serve a live tree for inspection.`,
}

// Execute runs the root command and exits with status 1 on error. Child
// commands and flags are registered by the init functions.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("manifest", "arbor.yaml", "Path to the navigation manifest")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
}
