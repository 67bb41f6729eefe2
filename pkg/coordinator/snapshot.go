package coordinator

import "github.com/arborui/arbor/pkg/route"

// Snapshot is a recursive, serializable dump of a coordinator subtree. It
// backs the CLI tree renderer, the mermaid generator, the debug server and
// golden tests; it is a read model, not engine state.
type Snapshot struct {
	Name             string     `json:"name"`
	Context          string     `json:"context"`
	Routes           []string   `json:"routes"`
	SelectedTab      int        `json:"selected_tab,omitempty"`
	Presented        string     `json:"presented,omitempty"`
	Detour           string     `json:"detour,omitempty"`
	PushedChildren   []string   `json:"pushed_children,omitempty"`
	RegisteredModals []string   `json:"registered_modals,omitempty"`
	Children         []Snapshot `json:"children,omitempty"`
	Modal            *Snapshot  `json:"modal,omitempty"`
	DetourChild      *Snapshot  `json:"detour_coordinator,omitempty"`
}

// Snapshot implements Node.
func (c *Coordinator[R]) Snapshot() Snapshot {
	st := c.router.State()
	snap := Snapshot{
		Name:        c.name,
		Context:     c.context.String(),
		Routes:      route.Identifiers(st.AllRoutes()),
		SelectedTab: st.SelectedTab,
	}
	if st.Presented != nil {
		snap.Presented = (*st.Presented).Identifier()
	}
	if st.Detour != nil {
		snap.Detour = st.Detour.Identifier()
	}
	for _, pc := range st.PushedChildren {
		snap.PushedChildren = append(snap.PushedChildren, pc.Name())
	}
	for _, m := range c.modals {
		snap.RegisteredModals = append(snap.RegisteredModals, m.Name())
	}
	for _, ch := range c.children {
		if ch.Parent() == c.self {
			snap.Children = append(snap.Children, ch.Snapshot())
		}
	}
	if c.currentModal != nil {
		m := c.currentModal.Snapshot()
		snap.Modal = &m
	}
	if c.detour != nil {
		d := c.detour.Snapshot()
		snap.DetourChild = &d
	}
	return snap
}
