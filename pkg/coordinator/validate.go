package coordinator

import (
	"github.com/arborui/arbor/pkg/navigation"
	"github.com/arborui/arbor/pkg/route"
)

// smartAction is the smart-navigation decision shared by both phases.
// Validation only needs to know an action applies; execution replays it.
type smartAction int

const (
	smartNone smartAction = iota // already at the route
	smartPopTo
	smartPopToRoot
)

// smartTarget decides whether smart navigation settles the route at this
// coordinator without delegation: already-at, pop-to-existing, or
// pop-to-root. Tie-break order: already-at, then first stack occurrence,
// then root. Pure.
func (c *Coordinator[R]) smartTarget(r route.Route) (smartAction, bool) {
	st := c.router.State()
	if st.Detour != nil && route.Equal(st.Detour, r) {
		return smartNone, true
	}
	rr, ok := r.(R)
	if !ok {
		return smartNone, false
	}
	if c.isAlreadyAt(rr, st) {
		return smartNone, true
	}
	if route.Contains(st.Stack, rr) {
		return smartPopTo, true
	}
	if route.Equal(st.Root, rr) {
		return smartPopToRoot, true
	}
	return smartNone, false
}

// isAlreadyAt compares against the slot the route's navigation type
// targets: the selected tab for tabSwitch, the presented slot for modal,
// the derived current route otherwise.
func (c *Coordinator[R]) isAlreadyAt(rr R, st navigation.State[R]) bool {
	switch t := c.policyNavType(rr); t.Kind {
	case navigation.KindTabSwitch:
		return st.SelectedTab == t.Tab
	case navigation.KindModal:
		return st.Presented != nil && route.Equal(*st.Presented, rr)
	default:
		return route.Equal(st.CurrentRoute(), rr)
	}
}

// validatePhase is the side-effect-free half of the navigate protocol for
// a generic coordinator. It mirrors executePhase decision for decision.
func (c *Coordinator[R]) validatePhase(r route.Route, caller Node) *navigation.Error {
	if _, ok := c.smartTarget(r); ok {
		return nil
	}
	if c.validatePresentations(r, caller) {
		return nil
	}
	if err, claimed := c.validateDirect(r); claimed {
		return err
	}
	for _, ch := range c.children {
		if ch == caller || ch.Parent() != c.self || !ch.CanNavigate(r) {
			continue
		}
		if ch.validate(r, c.self) == nil {
			return nil
		}
	}
	if c.validateModalRegistry(r, caller) {
		return nil
	}
	return c.validateBubble(r)
}

// canReach reports whether this coordinator settles the route itself:
// through smart navigation or through its transitive subtree. It gates
// delegation into active presentations, where an unconditional delegate
// would bubble straight back into the presenter.
func (c *Coordinator[R]) canReach(r route.Route) bool {
	if _, ok := c.smartTarget(r); ok {
		return true
	}
	return c.CanNavigate(r)
}

// validatePresentations runs the modal and detour delegation checks.
// Failures are ignored: execution would dismiss the presentation and
// continue down the decision tree. The caller-skip rule prevents the
// presenting coordinator from delegating back into its own caller.
func (c *Coordinator[R]) validatePresentations(r route.Route, caller Node) bool {
	callerIsChild := c.isChildNode(caller)
	if m := c.currentModal; m != nil && m != caller && !callerIsChild && m.canReach(r) {
		if m.validate(r, c.self) == nil {
			return true
		}
	}
	if d := c.detour; d != nil && d != caller && !callerIsChild && d.canReach(r) {
		if d.validate(r, c.self) == nil {
			return true
		}
	}
	return false
}

// validateDirect checks direct handling. claimed is false when this
// coordinator does not claim the route at all.
func (c *Coordinator[R]) validateDirect(r route.Route) (err *navigation.Error, claimed bool) {
	t, ok := c.navigationTypeFor(r)
	if !ok {
		return nil, false
	}
	switch t.Kind {
	case navigation.KindPush, navigation.KindReplace, navigation.KindTabSwitch:
		return nil, true
	case navigation.KindModal:
		if m := c.currentModal; m != nil && m.CanHandle(r) {
			return nil, true
		}
		for _, m := range c.modals {
			if m.CanHandle(r) {
				return nil, true
			}
		}
		return navigation.NewModalNotConfigured(c.name, r), true
	default:
		return navigation.NewInvalidDetourNavigation(c.name, r), true
	}
}

// validateModalRegistry checks whether the route is reachable only through
// a registered, inactive modal coordinator's subtree. Presenting requires
// the route to match this coordinator's route type.
func (c *Coordinator[R]) validateModalRegistry(r route.Route, caller Node) bool {
	if _, ok := r.(R); !ok {
		return false
	}
	for _, m := range c.modals {
		if m == caller || m == c.currentModal || !m.CanNavigate(r) {
			continue
		}
		if m.validate(r, c.self) == nil {
			return true
		}
	}
	return false
}

// validateBubble terminates the pass: flow-change check at the tree root,
// recursion into the parent otherwise.
func (c *Coordinator[R]) validateBubble(r route.Route) *navigation.Error {
	if c.parent == nil {
		if c.policyCanFlowChange(r) {
			return nil
		}
		return navigation.NewNavigationFailed(c.name, r, "no coordinator handles the route and no flow change applies")
	}
	return c.parent.validate(r, c.self)
}
