// Package navigation holds the value model of the engine: the navigation
// state owned by each router, the navigation types, modal detent
// configuration, the router itself (the sole mutator of its state), the
// view factory contract, and the error taxonomy with its central reporter.
//
// The package is kept free of orchestration logic; pkg/coordinator drives
// it. Embedders read state and subscribe; they never mutate.
package navigation

import "github.com/arborui/arbor/pkg/route"

// Child is the erased handle a router keeps for coordinators pushed into
// its stack. The view layer flattens each child's routes into the parent's
// navigation path; pkg/coordinator nodes satisfy it.
type Child interface {
	Name() string
	AllRoutes() []route.Route
}

// State is the complete navigation state of one router.
//
// It is a value: routers hand out snapshots, and subscribers receive
// snapshots. Routes (root, stack, presented, detour) are compared by
// identifier, PushedChildren entries by reference, everything else by value.
type State[R route.Route] struct {
	// Root is the base route. Immutable per flow transition; only
	// rewritten through SetRoot.
	Root R
	// Stack holds the pushed routes; the last element is visible unless a
	// modal or detour is active.
	Stack []R
	// SelectedTab is only meaningful for tab coordinators.
	SelectedTab int
	// Presented is the current modal route, if any.
	Presented *R
	// Detour is the type-erased route presented as a detour rooted here,
	// if any.
	Detour route.Route
	// PushedChildren are the child coordinators pushed into this stack,
	// ordered by push time.
	PushedChildren []Child
	// ModalDetents is the detent configuration of the active modal.
	ModalDetents *DetentConfiguration
}

// CurrentRoute derives the visible route: the presented modal if any,
// otherwise the top of the stack, otherwise the root.
func (s State[R]) CurrentRoute() route.Route {
	if s.Presented != nil {
		return *s.Presented
	}
	if n := len(s.Stack); n > 0 {
		return s.Stack[n-1]
	}
	return s.Root
}

// AllRoutes returns the root followed by the stack, the sequence the view
// layer flattens when this router's coordinator is pushed into a parent.
func (s State[R]) AllRoutes() []route.Route {
	out := make([]route.Route, 0, len(s.Stack)+1)
	out = append(out, s.Root)
	for _, r := range s.Stack {
		out = append(out, r)
	}
	return out
}

// Equal reports field-wise equality: routes (root, stack, presented,
// detour) by identifier, pushed children by reference, the remaining fields
// by value.
func (s State[R]) Equal(o State[R]) bool {
	if !route.Equal(s.Root, o.Root) || s.SelectedTab != o.SelectedTab {
		return false
	}
	if len(s.Stack) != len(o.Stack) {
		return false
	}
	for i := range s.Stack {
		if !route.Equal(s.Stack[i], o.Stack[i]) {
			return false
		}
	}
	switch {
	case s.Presented == nil && o.Presented != nil,
		s.Presented != nil && o.Presented == nil:
		return false
	case s.Presented != nil && !route.Equal(*s.Presented, *o.Presented):
		return false
	}
	if !route.Equal(s.Detour, o.Detour) {
		return false
	}
	if len(s.PushedChildren) != len(o.PushedChildren) {
		return false
	}
	for i := range s.PushedChildren {
		if s.PushedChildren[i] != o.PushedChildren[i] {
			return false
		}
	}
	return s.ModalDetents.equal(o.ModalDetents)
}

// clone deep-copies the slices so a snapshot cannot alias router-owned
// storage.
func (s State[R]) clone() State[R] {
	out := s
	out.Stack = append([]R(nil), s.Stack...)
	out.PushedChildren = append([]Child(nil), s.PushedChildren...)
	out.ModalDetents = s.ModalDetents.clone()
	return out
}
