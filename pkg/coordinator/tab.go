package coordinator

import (
	"github.com/arborui/arbor/pkg/navigation"
	"github.com/arborui/arbor/pkg/route"
)

// TabCoordinator specializes the navigate protocol for a coordinator whose
// children are tabs. Mismatched routes are tried against the currently
// selected tab first, then the remaining tabs (switching on success);
// when no tab can reach the route, it bubbles directly to the parent
// instead of re-entering the generic child loop.
type TabCoordinator[R route.Route] struct {
	Coordinator[R]
}

var (
	_ Node               = (*TabCoordinator[route.Name])(nil)
	_ phases             = (*TabCoordinator[route.Name])(nil)
	_ Handle[route.Name] = (*TabCoordinator[route.Name])(nil)
)

// NewTab creates a tab coordinator rooted at root.
func NewTab[R route.Route](name string, root R, factory navigation.ViewFactory[R], opts ...Option[R]) *TabCoordinator[R] {
	t := &TabCoordinator[R]{}
	t.Coordinator.init(name, root, factory, opts)
	t.self = t
	t.impl = t
	return t
}

// AddChild registers a tab. Tab children default to the tab presentation
// context; a child without tab metadata is a configuration diagnostic but
// still attaches.
func (t *TabCoordinator[R]) AddChild(child Node) error {
	if err := t.Coordinator.AddChild(child); err != nil {
		return err
	}
	child.setPresentationContext(ContextTab)
	if child.TabItem() == nil {
		navigation.Report(navigation.NewConfigurationError(t.name,
			"tab child "+child.Name()+" did not supply a tab item"))
	}
	return nil
}

// SelectedTab returns the currently selected tab index.
func (t *TabCoordinator[R]) SelectedTab() int {
	return t.router.State().SelectedTab
}

func (t *TabCoordinator[R]) selectedChild() Node {
	i := t.router.State().SelectedTab
	if i < 0 || i >= len(t.children) {
		return nil
	}
	return t.children[i]
}

// validatePhase mirrors the tab execution order identically: smart
// navigation, active presentations, direct handling with tab-range
// enforcement, selected tab, remaining tabs, registered modals, then the
// parent.
func (t *TabCoordinator[R]) validatePhase(r route.Route, caller Node) *navigation.Error {
	if _, ok := t.smartTarget(r); ok {
		return nil
	}
	if t.validatePresentations(r, caller) {
		return nil
	}
	if err, claimed := t.validateDirectTab(r); claimed {
		return err
	}
	if sel := t.selectedChild(); sel != nil && sel != caller && sel.Parent() == t.self && sel.CanNavigate(r) {
		if sel.validate(r, t.self) == nil {
			return nil
		}
	}
	selected := t.router.State().SelectedTab
	for i, ch := range t.children {
		if i == selected || ch == caller || ch.Parent() != t.self || !ch.CanNavigate(r) {
			continue
		}
		if ch.validate(r, t.self) == nil {
			return nil
		}
	}
	if t.validateModalRegistry(r, caller) {
		return nil
	}
	return t.validateBubble(r)
}

// validateDirectTab wraps the generic direct check with the tab-range
// invariant for tabSwitch routes.
func (t *TabCoordinator[R]) validateDirectTab(r route.Route) (*navigation.Error, bool) {
	if nt, ok := t.navigationTypeFor(r); ok && nt.Kind == navigation.KindTabSwitch {
		if nt.Tab < 0 || nt.Tab >= len(t.children) {
			return navigation.NewInvalidTabIndex(t.name, nt.Tab, len(t.children)), true
		}
	}
	return t.validateDirect(r)
}

// executePhase replays the validated decision tree, switching tabs as
// needed. Tabs other than the caller are candidates; the caller is skipped
// to keep tab-by-tab delegation from looping.
func (t *TabCoordinator[R]) executePhase(r route.Route, caller Node) bool {
	if action, ok := t.smartTarget(r); ok {
		return t.executeSmart(r, caller, action)
	}
	if done, res := t.executePresentations(r, caller); done {
		return res
	}
	if nt, ok := t.navigationTypeFor(r); ok {
		if nt.Kind == navigation.KindTabSwitch && (nt.Tab < 0 || nt.Tab >= len(t.children)) {
			// validation rejects this; defensive
			navigation.Report(navigation.NewInvalidTabIndex(t.name, nt.Tab, len(t.children)))
			return false
		}
		return t.executeDirect(r, nt)
	}
	if sel := t.selectedChild(); sel != nil && sel != caller && sel.Parent() == t.self && sel.CanNavigate(r) {
		if sel.validate(r, t.self) == nil {
			return sel.execute(r, t.self)
		}
	}
	selected := t.router.State().SelectedTab
	for i, ch := range t.children {
		if i == selected || ch == caller || ch.Parent() != t.self || !ch.CanNavigate(r) {
			continue
		}
		if ch.validate(r, t.self) != nil {
			continue
		}
		t.router.SelectTab(i)
		return ch.execute(r, t.self)
	}
	if done, res := t.executeModalRegistry(r, caller); done {
		return res
	}
	return t.executeBubble(r, caller)
}
