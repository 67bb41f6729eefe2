package navigation

import "github.com/arborui/arbor/pkg/route"

// Router owns one State and is its only mutator. Mutators are owned by the
// coordinator layer; embedders read State, subscribe to changes, and build
// views through the factory. Every mutation publishes the new state to
// subscribers synchronously, in mutation order, before the mutator returns.
//
// The router is single-threaded by contract: all operations run on the
// embedder's view-update thread. It holds no locks.
type Router[R route.Route] struct {
	owner   string
	state   State[R]
	factory ViewFactory[R]

	subs    []subscription[R]
	nextSub int
}

type subscription[R route.Route] struct {
	id int
	fn func(State[R])
}

// NewRouter creates a router rooted at root.
func NewRouter[R route.Route](root R, factory ViewFactory[R]) *Router[R] {
	return &Router[R]{
		state:   State[R]{Root: root},
		factory: factory,
	}
}

// SetOwner labels the router with its coordinator's name for error
// reporting. Engine-internal.
func (r *Router[R]) SetOwner(name string) { r.owner = name }

// State returns a snapshot of the current navigation state.
func (r *Router[R]) State() State[R] { return r.state.clone() }

// AllRoutes returns root + stack for flattened rendering.
func (r *Router[R]) AllRoutes() []route.Route { return r.state.AllRoutes() }

// Subscribe registers fn to receive every published state. Subscribers are
// invoked synchronously in registration order. The returned func cancels
// the subscription.
func (r *Router[R]) Subscribe(fn func(State[R])) (cancel func()) {
	id := r.nextSub
	r.nextSub++
	r.subs = append(r.subs, subscription[R]{id: id, fn: fn})
	return func() {
		for i, s := range r.subs {
			if s.id == id {
				r.subs = append(r.subs[:i], r.subs[i+1:]...)
				return
			}
		}
	}
}

// SubscribeRoutes registers fn to receive the flattened route sequence
// (root + stack) on every state change. Used by the view layer when this
// router's coordinator is pushed into a parent stack.
func (r *Router[R]) SubscribeRoutes(fn func([]route.Route)) (cancel func()) {
	return r.Subscribe(func(s State[R]) { fn(s.AllRoutes()) })
}

func (r *Router[R]) publish() {
	snapshot := r.state.clone()
	for _, s := range append([]subscription[R](nil), r.subs...) {
		s.fn(snapshot)
	}
}

// Push appends rt to the stack.
func (r *Router[R]) Push(rt R) {
	r.state.Stack = append(r.state.Stack, rt)
	r.publish()
}

// Pop removes the last element of the stack, if any.
func (r *Router[R]) Pop() {
	if n := len(r.state.Stack); n > 0 {
		r.state.Stack = r.state.Stack[:n-1]
		r.publish()
	}
}

// PopTo truncates the stack to the first occurrence of rt, inclusive.
// No-op if rt is not on the stack. Publishes a single state change.
func (r *Router[R]) PopTo(rt R) {
	idx := route.IndexOf(r.state.Stack, rt)
	if idx < 0 || idx == len(r.state.Stack)-1 {
		return
	}
	r.state.Stack = r.state.Stack[:idx+1]
	r.publish()
}

// PopToRoot clears the stack. Publishes a single state change.
func (r *Router[R]) PopToRoot() {
	if len(r.state.Stack) == 0 {
		return
	}
	r.state.Stack = r.state.Stack[:0]
	r.publish()
}

// Replace swaps the last stack element for rt, or pushes when the stack is
// empty.
func (r *Router[R]) Replace(rt R) {
	if n := len(r.state.Stack); n > 0 {
		r.state.Stack[n-1] = rt
	} else {
		r.state.Stack = append(r.state.Stack, rt)
	}
	r.publish()
}

// Present sets the modal route and stores its detent configuration.
func (r *Router[R]) Present(rt R, cfg *DetentConfiguration) {
	r.state.Presented = &rt
	r.state.ModalDetents = cfg.clone()
	r.publish()
}

// DismissModal clears the modal route and its detent configuration.
func (r *Router[R]) DismissModal() {
	if r.state.Presented == nil && r.state.ModalDetents == nil {
		return
	}
	r.state.Presented = nil
	r.state.ModalDetents = nil
	r.publish()
}

// PresentDetour sets the type-erased detour route.
func (r *Router[R]) PresentDetour(rt route.Route) {
	r.state.Detour = rt
	r.publish()
}

// DismissDetour clears the detour route.
func (r *Router[R]) DismissDetour() {
	if r.state.Detour == nil {
		return
	}
	r.state.Detour = nil
	r.publish()
}

// PushChild appends a pushed-child handle.
func (r *Router[R]) PushChild(c Child) {
	r.state.PushedChildren = append(r.state.PushedChildren, c)
	r.publish()
}

// PopChild removes the last pushed-child handle, if any.
func (r *Router[R]) PopChild() {
	if n := len(r.state.PushedChildren); n > 0 {
		r.state.PushedChildren = r.state.PushedChildren[:n-1]
		r.publish()
	}
}

// SelectTab sets the selected tab index.
func (r *Router[R]) SelectTab(i int) {
	if r.state.SelectedTab == i {
		return
	}
	r.state.SelectedTab = i
	r.publish()
}

// SetRoot rewrites the root and clears all derived state: stack, modal,
// detour, pushed children and detent configuration.
func (r *Router[R]) SetRoot(rt R) {
	r.state = State[R]{Root: rt, SelectedTab: r.state.SelectedTab}
	r.publish()
}

// UpdateModalIdealHeight records the measured ideal content height for the
// active modal. No-op without an active modal.
func (r *Router[R]) UpdateModalIdealHeight(h float64) {
	if r.state.ModalDetents == nil {
		return
	}
	r.state.ModalDetents.IdealHeight = &h
	r.publish()
}

// UpdateModalMinHeight records the measured minimum content height for the
// active modal. No-op without an active modal.
func (r *Router[R]) UpdateModalMinHeight(h float64) {
	if r.state.ModalDetents == nil {
		return
	}
	r.state.ModalDetents.MinHeight = &h
	r.publish()
}

// UpdateModalSelectedDetent records a user-driven detent change. No-op
// without an active modal.
func (r *Router[R]) UpdateModalSelectedDetent(d Detent) {
	if r.state.ModalDetents == nil {
		return
	}
	r.state.ModalDetents.Selected = &d
	r.publish()
}

// View builds the view for rt through the factory. A nil factory or a nil
// view reports CodeViewCreationFailed for slot and returns the fallback
// ErrorView so the UI never blanks.
func (r *Router[R]) View(rt R, slot ViewSlot) any {
	if r.factory != nil {
		if v := r.factory(rt); v != nil {
			return v
		}
	}
	Report(NewViewCreationFailed(r.owner, rt, slot))
	return ErrorView{RouteID: rt.Identifier(), Slot: slot}
}
