package coordinator

import (
	"fmt"

	"github.com/arborui/arbor/pkg/navigation"
	"github.com/arborui/arbor/pkg/route"
)

// executePhase is the mutating half of the navigate protocol. It is only
// entered after validatePhase succeeded from the top-level entry and
// replays the same decision tree with side effects.
func (c *Coordinator[R]) executePhase(r route.Route, caller Node) bool {
	if action, ok := c.smartTarget(r); ok {
		return c.executeSmart(r, caller, action)
	}
	if done, res := c.executePresentations(r, caller); done {
		return res
	}
	if t, ok := c.navigationTypeFor(r); ok {
		return c.executeDirect(r, t)
	}
	for _, ch := range c.children {
		if ch == caller || ch.Parent() != c.self || !ch.CanNavigate(r) {
			continue
		}
		if ch.validate(r, c.self) != nil {
			continue
		}
		return c.executeChildDelegation(r, ch)
	}
	if done, res := c.executeModalRegistry(r, caller); done {
		return res
	}
	return c.executeBubble(r, caller)
}

// executeSmart replays the smart-navigation decision. When the call came
// out of a pushed child, the child is also torn out of the flattened
// stack.
func (c *Coordinator[R]) executeSmart(r route.Route, caller Node, action smartAction) bool {
	switch action {
	case smartPopTo:
		c.router.PopTo(r.(R))
	case smartPopToRoot:
		c.router.PopToRoot()
	}
	if caller != nil && c.isPushedChild(caller) {
		c.router.PopChild()
		caller.setPresentationContext(ContextRoot)
	}
	return true
}

func (c *Coordinator[R]) isPushedChild(n Node) bool {
	for _, pc := range c.router.State().PushedChildren {
		if pc == navigation.Child(n) {
			return true
		}
	}
	return false
}

// executePresentations delegates into the active modal and detour. done is
// true when a presentation handled the route; otherwise the presentation
// is dismissed per policy and the decision tree continues.
func (c *Coordinator[R]) executePresentations(r route.Route, caller Node) (done, res bool) {
	callerIsChild := c.isChildNode(caller)
	if m := c.currentModal; m != nil && m != caller && !callerIsChild {
		if m.canReach(r) {
			if m.execute(r, c.self) && c.currentModal == m {
				return true, true
			}
		}
		if c.currentModal == m && c.policyShouldDismissModalFor(r) {
			c.DismissModal()
		}
	}
	if d := c.detour; d != nil && d != caller && !callerIsChild {
		if d.canReach(r) {
			if d.execute(r, c.self) && c.detour == d {
				return true, true
			}
		}
		if c.detour == d {
			c.DismissDetour()
		}
	}
	return false, false
}

// executeDirect performs this coordinator's own handling: deep-link path
// building when the stack is empty, then the navigation-type switch.
func (c *Coordinator[R]) executeDirect(r route.Route, t navigation.Type) bool {
	rr := r.(R)
	if path := c.policyNavPath(rr); len(path) > 0 && len(c.router.State().Stack) == 0 {
		if !c.buildPath(path) {
			return false
		}
		if route.Contains(path, r) {
			return true
		}
	}
	switch t.Kind {
	case navigation.KindPush:
		c.router.Push(rr)
		return true
	case navigation.KindReplace:
		c.router.Replace(rr)
		return true
	case navigation.KindTabSwitch:
		c.router.SelectTab(t.Tab)
		return true
	case navigation.KindModal:
		return c.presentModalFor(rr)
	default:
		// validation rejects detour-typed routes; defensive
		navigation.Report(navigation.NewInvalidDetourNavigation(c.name, r))
		return false
	}
}

// buildPath pushes or replaces each prerequisite path entry in order.
// Entries must match the coordinator's route type and present as push or
// replace; anything else is a configuration error reported at runtime.
// Every entry is checked before any is applied, so a rejected path leaves
// the stack untouched.
func (c *Coordinator[R]) buildPath(path []route.Route) bool {
	typed := make([]R, 0, len(path))
	for _, p := range path {
		pr, ok := p.(R)
		if !ok {
			navigation.Report(navigation.NewConfigurationError(c.name,
				fmt.Sprintf("navigation path element %q does not match the coordinator route type", p.Identifier())))
			return false
		}
		switch t := c.policyNavType(pr); t.Kind {
		case navigation.KindPush, navigation.KindReplace:
			typed = append(typed, pr)
		default:
			navigation.Report(navigation.NewConfigurationError(c.name,
				fmt.Sprintf("navigation path element %q presents as %s; only push and replace are allowed", pr.Identifier(), t)))
			return false
		}
	}
	for _, pr := range typed {
		if c.policyNavType(pr).Kind == navigation.KindReplace {
			c.router.Replace(pr)
		} else {
			c.router.Push(pr)
		}
	}
	return true
}

// presentModalFor activates the modal coordinator for rr: the current one
// if it handles the route, otherwise the first capable registered one.
func (c *Coordinator[R]) presentModalFor(rr R) bool {
	m := c.currentModal
	if m == nil || !m.CanHandle(rr) {
		m = nil
		for _, cand := range c.modals {
			if cand.CanHandle(rr) {
				m = cand
				break
			}
		}
	}
	if m == nil {
		// validation catches this; defensive
		navigation.Report(navigation.NewModalNotConfigured(c.name, rr))
		return false
	}
	c.activateModal(m, rr)
	return m.execute(rr, c.self)
}

func (c *Coordinator[R]) activateModal(m Node, rr R) {
	c.currentModal = m
	m.setParent(c.self)
	m.setPresentationContext(ContextModal)
	c.router.Present(rr, c.policyDetents(rr))
}

// executeChildDelegation activates a child that can reach the route. Push
// children are entered into the parent's flattened stack first; the
// execution order (push child, set parent, set context, delegate) is
// observable by subscribers and deliberate.
func (c *Coordinator[R]) executeChildDelegation(r route.Route, child Node) bool {
	t := navigation.Push
	if ct, ok := child.navigationTypeFor(r); ok {
		t = ct
	}
	if t.Kind != navigation.KindPush {
		// replace, tabSwitch and modal resolve inside the child
		return child.execute(r, c.self)
	}
	if rr, ok := r.(R); ok && len(c.router.State().Stack) == 0 {
		if path := c.policyNavPath(rr); len(path) > 0 {
			if !c.buildPath(path) {
				return false
			}
		}
	}
	c.router.PushChild(child)
	child.setParent(c.self)
	child.setPresentationContext(ContextPushed)
	return child.execute(r, c.self)
}

// executeModalRegistry covers routes reachable only through a registered,
// inactive modal coordinator's subtree: build this coordinator's
// prerequisite path if declared, present the modal, delegate.
func (c *Coordinator[R]) executeModalRegistry(r route.Route, caller Node) (done, res bool) {
	rr, ok := r.(R)
	if !ok {
		return false, false
	}
	for _, m := range c.modals {
		if m == caller || m == c.currentModal || !m.CanNavigate(r) {
			continue
		}
		if m.validate(r, c.self) != nil {
			continue
		}
		if path := c.policyNavPath(rr); len(path) > 0 && len(c.router.State().Stack) == 0 {
			if !c.buildPath(path) {
				return true, false
			}
		}
		c.activateModal(m, rr)
		return true, m.execute(r, c.self)
	}
	return false, false
}

// executeBubble terminates the pass: flow change at the tree root,
// otherwise optional state cleanup and recursion into the parent.
func (c *Coordinator[R]) executeBubble(r route.Route, caller Node) bool {
	if c.parent == nil {
		if c.policyHandleFlowChange(r) {
			return true
		}
		// unreachable when validation ran; defensive
		navigation.Report(navigation.NewNavigationFailed(c.name, r, "flow change rejected at tree root"))
		return false
	}
	if c.policyCleanStateForBubbling(r) {
		c.self.cleanStateForBubbling()
	}
	return c.parent.execute(r, c.self)
}
