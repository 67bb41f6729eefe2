package coordinator

import (
	"github.com/arborui/arbor/pkg/navigation"
	"github.com/arborui/arbor/pkg/route"
)

// Node is the type-erased coordinator trait. Coordinators of different
// route types interact exclusively through it: parent links, modal and
// detour activation, delegation and bubbling never downcast a route beyond
// its identifier.
//
// The unexported methods keep the engine surface inside this package;
// embedders construct coordinators through New, NewTab and
// NewFlowOrchestrator and drive them through the exported surface.
type Node interface {
	// Name is the coordinator's diagnostic name, carried on errors.
	Name() string
	// ID is the stable per-instance identifier.
	ID() string
	// Parent is the presenting or owning coordinator, nil at the tree root.
	Parent() Node
	// PresentationContext reports how this coordinator is currently
	// presented.
	PresentationContext() Context
	// Children returns the permanent child coordinators.
	Children() []Node
	// ModalCoordinators returns the registered modal coordinators.
	ModalCoordinators() []Node
	// ActiveModal returns the active modal coordinator, if any.
	ActiveModal() Node
	// ActiveDetour returns the active detour coordinator, if any.
	ActiveDetour() Node
	// TabItem returns the tab metadata supplied for this coordinator.
	TabItem() *TabItem

	// CanHandle reports whether this coordinator itself claims the route.
	// Pure; never mutates.
	CanHandle(r route.Route) bool
	// CanNavigate reports whether this coordinator or any pushed, modal or
	// detour descendant can handle the route. Pure; never mutates.
	CanNavigate(r route.Route) bool
	// Navigate runs the two-phase navigate protocol from this coordinator.
	// It returns false, after reporting the error, when validation fails.
	Navigate(r route.Route) bool

	// Pop performs the context-aware back action.
	Pop()
	// DismissModal deactivates the active modal coordinator, if any.
	DismissModal()
	// DismissDetour deactivates the active detour coordinator, if any.
	DismissDetour()
	// ResetToCleanState clears stack, modal and detour state, recursively
	// through children.
	ResetToCleanState()

	// AllRoutes returns root + stack for flattened rendering.
	AllRoutes() []route.Route
	// SubscribeRoutes registers for flattened-route changes.
	SubscribeRoutes(fn func([]route.Route)) (cancel func())
	// PresentedRoute returns the presented modal route, if any.
	PresentedRoute() route.Route
	// DetourRoute returns the presented detour route, if any.
	DetourRoute() route.Route
	// Snapshot returns a recursive, serializable dump of this subtree.
	Snapshot() Snapshot

	// engine-internal surface
	setParent(Node)
	setPresentationContext(Context)
	canReach(r route.Route) bool
	navigationTypeFor(r route.Route) (navigation.Type, bool)
	validate(r route.Route, caller Node) *navigation.Error
	execute(r route.Route, caller Node) bool
	navigateNow(r route.Route) bool
	cleanStateForBubbling()
	tree() *treeState
}

// phases is the overridable part of the navigate protocol. The base
// coordinator implements the generic decision tree; TabCoordinator
// substitutes tab-aware passes. Dispatch goes through Coordinator.impl so
// recursive engine calls reach the outermost type.
type phases interface {
	validatePhase(r route.Route, caller Node) *navigation.Error
	executePhase(r route.Route, caller Node) bool
}

// treeState carries the per-tree reentrancy guard. Top-level navigation is
// atomic: a navigate issued from a state-change subscriber is deferred and
// run after the outer call returns.
type treeState struct {
	navigating bool
	deferred   []deferredNav
}

type deferredNav struct {
	node Node
	r    route.Route
}

// rootOf walks parent links to the tree root. The walk tolerates the
// transient parent reassignment of active modals and detours by refusing
// to revisit a node.
func rootOf(n Node) Node {
	seen := map[string]bool{}
	for {
		p := n.Parent()
		if p == nil || seen[n.ID()] {
			return n
		}
		seen[n.ID()] = true
		n = p
	}
}

func containsNode(ns []Node, target Node) bool {
	if target == nil {
		return false
	}
	for _, n := range ns {
		if n == target {
			return true
		}
	}
	return false
}

// subtreeContains reports whether target is reachable from n through
// children, registered modals and active presentations.
func subtreeContains(n, target Node) bool {
	return subtreeSearch(n, target, map[string]bool{})
}

func subtreeSearch(n, target Node, seen map[string]bool) bool {
	if n == nil || seen[n.ID()] {
		return false
	}
	if n == target {
		return true
	}
	seen[n.ID()] = true
	for _, ch := range n.Children() {
		if subtreeSearch(ch, target, seen) {
			return true
		}
	}
	for _, m := range n.ModalCoordinators() {
		if subtreeSearch(m, target, seen) {
			return true
		}
	}
	if subtreeSearch(n.ActiveModal(), target, seen) {
		return true
	}
	return subtreeSearch(n.ActiveDetour(), target, seen)
}
