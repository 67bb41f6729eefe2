package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arborui/arbor/pkg/manifest"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Statically check a navigation manifest",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := manifest.Load(manifestPath(cmd))
		if err != nil {
			return err
		}
		errs := m.Validate()
		if len(errs) == 0 {
			fmt.Printf("%s: ok\n", manifestPath(cmd))
			return nil
		}
		for _, e := range errs {
			fmt.Printf("  - %v\n", e)
		}
		return fmt.Errorf("%d configuration error(s)", len(errs))
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
