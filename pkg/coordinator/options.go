package coordinator

import (
	"github.com/arborui/arbor/pkg/navigation"
	"github.com/arborui/arbor/pkg/route"
)

// TabItem is the visual metadata a tab coordinator renders for a child.
type TabItem struct {
	Text  string
	Image string
}

// Handle is the typed view of a coordinator. Registered modal coordinators
// must share the registering coordinator's route type; taking a Handle[R]
// enforces that at compile time. Detours carry no such constraint and go
// through the erased Node.
type Handle[R route.Route] interface {
	Node
	base() *Coordinator[R]
}

// Option configures a coordinator at construction time. The options are
// the embedder's override points: everything left unset keeps the
// documented default.
type Option[R route.Route] func(*Coordinator[R])

// WithCanHandle sets the route-claiming predicate. It must be pure: the
// engine calls it freely during validation. Default: claim nothing.
func WithCanHandle[R route.Route](fn func(R) bool) Option[R] {
	return func(c *Coordinator[R]) { c.canHandleFn = fn }
}

// WithNavigationType sets how each claimed route presents.
// Default: push.
func WithNavigationType[R route.Route](fn func(R) navigation.Type) Option[R] {
	return func(c *Coordinator[R]) { c.navTypeFn = fn }
}

// WithNavigationPath sets the declarative deep-link prerequisites for a
// route. Entries must present as push or replace; that is enforced when
// the path is built. Default: no path.
func WithNavigationPath[R route.Route](fn func(R) []route.Route) Option[R] {
	return func(c *Coordinator[R]) { c.navPathFn = fn }
}

// WithFlowChangeHandler sets the two-phase flow-change hook consulted when
// bubbling reaches the tree root: can is the validation half, handle the
// execution half. Defaults: both reject.
func WithFlowChangeHandler[R route.Route](can func(route.Route) bool, handle func(route.Route) bool) Option[R] {
	return func(c *Coordinator[R]) {
		c.canFlowFn = can
		c.flowFn = handle
	}
}

// WithCleanStateForBubbling sets the policy deciding whether this
// coordinator clears its presentation state before bubbling a route to its
// parent. Default: never.
func WithCleanStateForBubbling[R route.Route](fn func(route.Route) bool) Option[R] {
	return func(c *Coordinator[R]) { c.cleanBubbleFn = fn }
}

// WithDismissModalPolicy sets the policy deciding whether an active modal
// that did not handle a route is dismissed before navigation continues.
// Default: always dismiss.
func WithDismissModalPolicy[R route.Route](fn func(route.Route) bool) Option[R] {
	return func(c *Coordinator[R]) { c.dismissModalFn = fn }
}

// WithModalDetentConfiguration sets the detent configuration supplier for
// modal-presented routes. Default: none (the platform default applies).
func WithModalDetentConfiguration[R route.Route](fn func(R) *navigation.DetentConfiguration) Option[R] {
	return func(c *Coordinator[R]) { c.detentsFn = fn }
}

// WithTabItem sets the tab metadata rendered when this coordinator is a
// tab child.
func WithTabItem[R route.Route](text, image string) Option[R] {
	return func(c *Coordinator[R]) { c.tabMeta = &TabItem{Text: text, Image: image} }
}

// WithModalCoordinators registers modal coordinators eagerly at
// construction time. Registration is permanent; activation is transient.
func WithModalCoordinators[R route.Route](ms ...Handle[R]) Option[R] {
	return func(c *Coordinator[R]) {
		for _, m := range ms {
			c.modals = append(c.modals, m.base().self)
		}
	}
}
