package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/arborui/arbor/internal/logging"
)

func loggerFromFlags(cmd *cobra.Command) (*slog.Logger, error) {
	levelStr, _ := cmd.Flags().GetString("log-level")
	level, err := logging.ParseLevel(levelStr)
	if err != nil {
		return nil, err
	}
	return logging.New(level), nil
}

func manifestPath(cmd *cobra.Command) string {
	path, _ := cmd.Flags().GetString("manifest")
	return path
}
