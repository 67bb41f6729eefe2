// Package arbor is the high-level entry point for the navigation engine.
// It wraps a coordinator tree built with pkg/coordinator and wires the
// ambient concerns around it: structured logging, the central error
// reporter, lifecycle hooks and optional metrics.
//
// The engine itself is a reactive state machine: embedders request
// navigation to typed routes, the coordinator tree validates the plan
// without side effects, and only on success mutates and publishes router
// state. See pkg/coordinator for the protocol.
package arbor

import (
	"log/slog"

	"github.com/arborui/arbor/internal/logging"
	"github.com/arborui/arbor/internal/metrics"
	"github.com/arborui/arbor/pkg/coordinator"
	"github.com/arborui/arbor/pkg/navigation"
	"github.com/arborui/arbor/pkg/route"
)

// Engine ties a coordinator tree to the embedder-facing plumbing.
type Engine struct {
	root    coordinator.Node
	logger  *slog.Logger
	hooks   Hooks
	metrics *metrics.Collector
}

// Option configures the Engine.
type Option func(*Engine)

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// WithHooks registers observability hooks.
func WithHooks(hooks Hooks) Option {
	return func(e *Engine) { e.hooks = hooks }
}

// WithMetrics attaches a metrics collector. Navigation outcomes and
// reported errors are counted on it.
func WithMetrics(c *metrics.Collector) Option {
	return func(e *Engine) { e.metrics = c }
}

// New wraps root. The first engine constructed in a process installs
// itself as the central error reporter; embedders that want a bespoke
// reporter call navigation.SetReporter before constructing engines.
func New(root coordinator.Node, opts ...Option) *Engine {
	e := &Engine{root: root}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = logging.New(slog.LevelInfo)
	}
	if e.metrics != nil {
		e.root.SubscribeRoutes(func([]route.Route) { e.metrics.ObserveStateChange() })
	}
	navigation.SetReporter(e.report)
	return e
}

// Root returns the tree root coordinator.
func (e *Engine) Root() coordinator.Node { return e.root }

// Navigate requests navigation to r from the tree root and reports the
// outcome to hooks and metrics.
func (e *Engine) Navigate(r route.Route) bool {
	ok := e.root.Navigate(r)
	if e.hooks.OnNavigate != nil {
		e.hooks.OnNavigate(r, ok)
	}
	if e.metrics != nil {
		e.metrics.ObserveNavigation(ok)
	}
	return ok
}

// NavigateTo is a convenience for identifier-only routes.
func (e *Engine) NavigateTo(id string) bool {
	return e.Navigate(route.Name(id))
}

// Snapshot dumps the current tree.
func (e *Engine) Snapshot() coordinator.Snapshot { return e.root.Snapshot() }

func (e *Engine) report(err *navigation.Error) {
	e.logger.Warn("navigation error",
		"code", string(err.Code),
		"coordinator", err.Coordinator,
		"route", err.RouteID,
		"err", err.Message,
	)
	if e.hooks.OnError != nil {
		e.hooks.OnError(err)
	}
	if e.metrics != nil {
		e.metrics.ObserveError(string(err.Code))
	}
}
