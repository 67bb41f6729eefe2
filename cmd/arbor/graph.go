package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arborui/arbor/internal/presentation/graph"
	"github.com/arborui/arbor/pkg/manifest"
)

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Render the coordinator tree as a Mermaid flowchart",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := manifest.Load(manifestPath(cmd))
		if err != nil {
			return err
		}
		root, err := m.Build()
		if err != nil {
			return err
		}
		fmt.Print(graph.GenerateMermaid(root.Snapshot()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
