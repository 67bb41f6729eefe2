// Package coordinator implements the orchestration core of the navigation
// engine: a tree of coordinators, each owning a router, with a two-phase
// navigate protocol. Validation walks the reachable subtree without side
// effects; only on success does execution walk the same logical path and
// mutate routers.
//
// Coordinators are configured through functional options (the override
// points a subclass would supply elsewhere) and composed through AddChild,
// modal registration and explicit detour presentation. TabCoordinator and
// FlowOrchestrator specialize the protocol.
package coordinator

import (
	"github.com/google/uuid"

	"github.com/arborui/arbor/pkg/navigation"
	"github.com/arborui/arbor/pkg/route"
)

// Coordinator is a node in the navigation tree. It owns a router, a
// permanent list of children, a registry of modal coordinators, at most one
// active modal and at most one active detour.
type Coordinator[R route.Route] struct {
	name string
	uid  string

	router *navigation.Router[R]

	// self is the outermost node (this coordinator, or the specialization
	// embedding it); impl is its phase implementation. All identity
	// comparisons and recursive engine calls go through them.
	self Node
	impl phases

	parent       Node
	children     []Node
	modals       []Node
	currentModal Node
	detour       Node
	context      Context

	ts treeState

	canHandleFn   func(R) bool
	navTypeFn     func(R) navigation.Type
	navPathFn     func(R) []route.Route
	canFlowFn     func(route.Route) bool
	flowFn        func(route.Route) bool
	cleanBubbleFn func(route.Route) bool
	dismissModalFn func(route.Route) bool
	detentsFn     func(R) *navigation.DetentConfiguration
	tabMeta       *TabItem
}

// New creates a coordinator rooted at root. The factory may be nil when the
// embedder never builds views through this router (headless use, tests).
func New[R route.Route](name string, root R, factory navigation.ViewFactory[R], opts ...Option[R]) *Coordinator[R] {
	c := &Coordinator[R]{}
	c.init(name, root, factory, opts)
	c.self = c
	c.impl = c
	return c
}

func (c *Coordinator[R]) init(name string, root R, factory navigation.ViewFactory[R], opts []Option[R]) {
	c.name = name
	c.uid = uuid.NewString()
	c.router = navigation.NewRouter(root, factory)
	c.router.SetOwner(name)
	c.context = ContextRoot
	for _, opt := range opts {
		opt(c)
	}
}

func (c *Coordinator[R]) base() *Coordinator[R] { return c }

// Name returns the coordinator's diagnostic name.
func (c *Coordinator[R]) Name() string { return c.name }

// ID returns the stable per-instance identifier.
func (c *Coordinator[R]) ID() string { return c.uid }

// Router returns the typed router. Embedders read state and subscribe;
// mutation stays with the engine.
func (c *Coordinator[R]) Router() *navigation.Router[R] { return c.router }

// Parent returns the presenting or owning coordinator, nil at the root.
func (c *Coordinator[R]) Parent() Node { return c.parent }

// PresentationContext reports how this coordinator is presented.
func (c *Coordinator[R]) PresentationContext() Context { return c.context }

// Children returns a copy of the permanent child list.
func (c *Coordinator[R]) Children() []Node { return append([]Node(nil), c.children...) }

// ModalCoordinators returns a copy of the modal registry.
func (c *Coordinator[R]) ModalCoordinators() []Node { return append([]Node(nil), c.modals...) }

// ActiveModal returns the active modal coordinator, if any.
func (c *Coordinator[R]) ActiveModal() Node { return c.currentModal }

// ActiveDetour returns the active detour coordinator, if any.
func (c *Coordinator[R]) ActiveDetour() Node { return c.detour }

// TabItem returns the tab metadata supplied for this coordinator.
func (c *Coordinator[R]) TabItem() *TabItem { return c.tabMeta }

// AllRoutes returns root + stack for flattened rendering.
func (c *Coordinator[R]) AllRoutes() []route.Route { return c.router.AllRoutes() }

// SubscribeRoutes registers for flattened-route changes.
func (c *Coordinator[R]) SubscribeRoutes(fn func([]route.Route)) (cancel func()) {
	return c.router.SubscribeRoutes(fn)
}

// PresentedRoute returns the presented modal route, if any.
func (c *Coordinator[R]) PresentedRoute() route.Route {
	st := c.router.State()
	if st.Presented == nil {
		return nil
	}
	return *st.Presented
}

// DetourRoute returns the presented detour route, if any.
func (c *Coordinator[R]) DetourRoute() route.Route {
	return c.router.State().Detour
}

func (c *Coordinator[R]) setParent(p Node)             { c.parent = p }
func (c *Coordinator[R]) setPresentationContext(x Context) { c.context = x }
func (c *Coordinator[R]) tree() *treeState             { return &c.ts }

// --- policy accessors with defaults ---

func (c *Coordinator[R]) policyCanHandle(rr R) bool {
	return c.canHandleFn != nil && c.canHandleFn(rr)
}

func (c *Coordinator[R]) policyNavType(rr R) navigation.Type {
	if c.navTypeFn == nil {
		return navigation.Push
	}
	return c.navTypeFn(rr)
}

func (c *Coordinator[R]) policyNavPath(rr R) []route.Route {
	if c.navPathFn == nil {
		return nil
	}
	return c.navPathFn(rr)
}

func (c *Coordinator[R]) policyCanFlowChange(r route.Route) bool {
	return c.canFlowFn != nil && c.canFlowFn(r)
}

func (c *Coordinator[R]) policyHandleFlowChange(r route.Route) bool {
	return c.flowFn != nil && c.flowFn(r)
}

func (c *Coordinator[R]) policyCleanStateForBubbling(r route.Route) bool {
	return c.cleanBubbleFn != nil && c.cleanBubbleFn(r)
}

func (c *Coordinator[R]) policyShouldDismissModalFor(r route.Route) bool {
	if c.dismissModalFn == nil {
		return true
	}
	return c.dismissModalFn(r)
}

func (c *Coordinator[R]) policyDetents(rr R) *navigation.DetentConfiguration {
	if c.detentsFn == nil {
		return nil
	}
	return c.detentsFn(rr)
}

// --- erased capability queries ---

// CanHandle reports whether this coordinator itself claims the route.
func (c *Coordinator[R]) CanHandle(r route.Route) bool {
	rr, ok := r.(R)
	return ok && c.policyCanHandle(rr)
}

// navigationTypeFor returns the navigation type for a claimed route; the
// second result is false when the route is unclaimed or type-mismatched.
func (c *Coordinator[R]) navigationTypeFor(r route.Route) (navigation.Type, bool) {
	rr, ok := r.(R)
	if !ok || !c.policyCanHandle(rr) {
		return navigation.Type{}, false
	}
	return c.policyNavType(rr), true
}

// CanNavigate is the transitive capability check: this coordinator, or any
// pushed, modal or detour descendant, can handle the route. Siblings are
// not consulted.
func (c *Coordinator[R]) CanNavigate(r route.Route) bool {
	if c.CanHandle(r) {
		return true
	}
	for _, ch := range c.children {
		if ch.Parent() == c.self && ch.CanNavigate(r) {
			return true
		}
	}
	for _, m := range c.modals {
		if m.CanNavigate(r) {
			return true
		}
	}
	if c.currentModal != nil && !containsNode(c.modals, c.currentModal) && c.currentModal.CanNavigate(r) {
		return true
	}
	return c.detour != nil && c.detour.CanNavigate(r)
}

func (c *Coordinator[R]) isChildNode(n Node) bool {
	return containsNode(c.children, n)
}

// --- tree maintenance ---

// AddChild attaches child to this coordinator's permanent children. It
// rejects children that already have a parent (duplicateChild) and
// children whose subtree contains this coordinator (circularReference);
// rejections mutate nothing and are reported centrally.
func (c *Coordinator[R]) AddChild(child Node) error {
	if child.Parent() != nil {
		err := navigation.NewDuplicateChild(c.name, child.Name())
		navigation.Report(err)
		return err
	}
	if subtreeContains(child, c.self) {
		err := navigation.NewCircularReference(c.name)
		navigation.Report(err)
		return err
	}
	child.setParent(c.self)
	c.children = append(c.children, child)
	return nil
}

// RemoveChild detaches child and clears its parent pointer. No-op when
// child is not attached here.
func (c *Coordinator[R]) RemoveChild(child Node) {
	for i, ch := range c.children {
		if ch == child {
			c.children = append(c.children[:i], c.children[i+1:]...)
			child.setParent(nil)
			return
		}
	}
}

// AddModalCoordinator registers a modal coordinator. Registration is
// permanent; the coordinator only becomes active through modal navigation.
func (c *Coordinator[R]) AddModalCoordinator(m Handle[R]) {
	n := m.base().self
	if containsNode(c.modals, n) {
		return
	}
	c.modals = append(c.modals, n)
}

// RemoveModalCoordinator removes m from the registry, dismissing it first
// if it is active.
func (c *Coordinator[R]) RemoveModalCoordinator(m Handle[R]) {
	n := m.base().self
	if c.currentModal == n {
		c.DismissModal()
	}
	for i, reg := range c.modals {
		if reg == n {
			c.modals = append(c.modals[:i], c.modals[i+1:]...)
			return
		}
	}
}

// --- presentation lifecycle ---

// PresentDetour presents d as a detour rooted at this coordinator, leaving
// all underlying navigation state untouched. presenting is the type-erased
// route stored in the detour slot.
func (c *Coordinator[R]) PresentDetour(d Node, presenting route.Route) {
	c.detour = d
	d.setParent(c.self)
	d.setPresentationContext(ContextDetour)
	c.router.PresentDetour(presenting)
}

// DismissModal deactivates the active modal coordinator and clears the
// router's modal slot. The modal's parent pointer is cleared; its
// registration survives.
func (c *Coordinator[R]) DismissModal() {
	if m := c.currentModal; m != nil {
		m.setParent(nil)
		m.setPresentationContext(ContextRoot)
		c.currentModal = nil
	}
	c.router.DismissModal()
}

// DismissDetour deactivates the active detour coordinator and clears the
// router's detour slot, restoring the pre-presentation state.
func (c *Coordinator[R]) DismissDetour() {
	if d := c.detour; d != nil {
		d.setParent(nil)
		d.setPresentationContext(ContextRoot)
		c.detour = nil
	}
	c.router.DismissDetour()
}

// Pop is the context-aware back action: pop the stack when non-empty,
// otherwise ask the presenter to dismiss this coordinator's modal or
// detour presentation. No-op at a bare root.
func (c *Coordinator[R]) Pop() {
	st := c.router.State()
	switch {
	case len(st.Stack) > 0:
		c.router.Pop()
	case c.context == ContextModal && c.parent != nil:
		c.parent.DismissModal()
	case c.context == ContextDetour && c.parent != nil:
		c.parent.DismissDetour()
	}
}

// ResetToCleanState clears the router's stack, modal and detour state and
// recurses into attached children.
func (c *Coordinator[R]) ResetToCleanState() {
	c.DismissModal()
	c.DismissDetour()
	c.router.PopToRoot()
	for n := len(c.router.State().PushedChildren); n > 0; n-- {
		c.router.PopChild()
	}
	for _, ch := range c.children {
		if ch.Parent() == c.self {
			ch.ResetToCleanState()
		}
	}
}

// TransitionToNewFlow rewrites the router root and clears every derived
// slot, releasing any active modal or detour coordinator.
func (c *Coordinator[R]) TransitionToNewFlow(root R) {
	if m := c.currentModal; m != nil {
		m.setParent(nil)
		m.setPresentationContext(ContextRoot)
		c.currentModal = nil
	}
	if d := c.detour; d != nil {
		d.setParent(nil)
		d.setPresentationContext(ContextRoot)
		c.detour = nil
	}
	c.router.SetRoot(root)
}

// cleanStateForBubbling clears presentation state before a route bubbles
// to the parent. The base behavior dismisses the active modal.
func (c *Coordinator[R]) cleanStateForBubbling() {
	c.DismissModal()
}

// --- top-level entry ---

// Navigate runs the two-phase navigate protocol. Only the top-level call
// validates; on validation failure the error is reported and no router
// mutates. A navigate issued while another is in progress on the same tree
// (a subscriber reacting to a state change) is deferred until the outer
// call returns, and reports true for "accepted".
func (c *Coordinator[R]) Navigate(r route.Route) bool {
	ts := rootOf(c.self).tree()
	if ts.navigating {
		ts.deferred = append(ts.deferred, deferredNav{node: c.self, r: r})
		return true
	}
	ts.navigating = true
	ok := c.navigateNow(r)
	for len(ts.deferred) > 0 {
		next := ts.deferred[0]
		ts.deferred = ts.deferred[1:]
		next.node.navigateNow(next.r)
	}
	ts.navigating = false
	return ok
}

func (c *Coordinator[R]) navigateNow(r route.Route) bool {
	if err := c.impl.validatePhase(r, nil); err != nil {
		navigation.Report(err)
		return false
	}
	return c.impl.executePhase(r, nil)
}

// validate and execute dispatch through impl so specializations substitute
// their own passes in recursive engine calls.
func (c *Coordinator[R]) validate(r route.Route, caller Node) *navigation.Error {
	return c.impl.validatePhase(r, caller)
}

func (c *Coordinator[R]) execute(r route.Route, caller Node) bool {
	return c.impl.executePhase(r, caller)
}

var (
	_ Node             = (*Coordinator[route.Name])(nil)
	_ phases           = (*Coordinator[route.Name])(nil)
	_ Handle[route.Name] = (*Coordinator[route.Name])(nil)
	_ navigation.Child = (*Coordinator[route.Name])(nil)
)
