// Package cli assembles engines from manifests and hosts the interactive
// simulator shared by the cobra commands.
package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/arborui/arbor"
	"github.com/arborui/arbor/internal/metrics"
	"github.com/arborui/arbor/pkg/manifest"
)

// BuildEngine loads, validates and builds the manifest at path and wraps
// the resulting tree in an Engine.
func BuildEngine(path string, logger *slog.Logger, collector *metrics.Collector) (*arbor.Engine, *manifest.Manifest, error) {
	m, err := manifest.Load(path)
	if err != nil {
		return nil, nil, err
	}
	if errs := m.Validate(); len(errs) > 0 {
		return nil, nil, fmt.Errorf("invalid manifest %s: %w", path, errors.Join(errs...))
	}
	root, err := m.Build()
	if err != nil {
		return nil, nil, err
	}
	opts := []arbor.Option{arbor.WithLogger(logger)}
	if collector != nil {
		opts = append(opts, arbor.WithMetrics(collector))
	}
	return arbor.New(root, opts...), m, nil
}
