package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/arborui/arbor/internal/cli"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Drive the navigation tree interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := loggerFromFlags(cmd)
		if err != nil {
			return err
		}
		engine, m, err := cli.BuildEngine(manifestPath(cmd), logger, nil)
		if err != nil {
			return err
		}
		sim := cli.NewSimulator(engine, m.Descriptions(), cmd.InOrStdin(), os.Stdout)
		return sim.Run()
	},
}

func init() {
	rootCmd.AddCommand(simulateCmd)
}
