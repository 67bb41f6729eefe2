package coordinator

import (
	"github.com/arborui/arbor/pkg/navigation"
	"github.com/arborui/arbor/pkg/route"
)

// FlowOrchestrator owns at most one active flow coordinator at a time and
// swaps it atomically. It claims no routes itself; it is the
// bubble-termination point where a flow-change handler (typically wired to
// TransitionToFlow) replaces one root-level flow with another.
type FlowOrchestrator[R route.Route] struct {
	Coordinator[R]
	currentFlow Node
}

var _ Node = (*FlowOrchestrator[route.Name])(nil)

// NewFlowOrchestrator creates a flow orchestrator rooted at root.
func NewFlowOrchestrator[R route.Route](name string, root R, factory navigation.ViewFactory[R], opts ...Option[R]) *FlowOrchestrator[R] {
	f := &FlowOrchestrator[R]{}
	f.Coordinator.init(name, root, factory, opts)
	f.self = f
	f.impl = &f.Coordinator
	return f
}

// CurrentFlow returns the active flow coordinator, if any.
func (f *FlowOrchestrator[R]) CurrentFlow() Node { return f.currentFlow }

// TransitionToFlow removes the previous flow child (clearing its parent so
// it can be released once the embedder drops its reference), installs flow
// as the single active flow, and resets the orchestrator's router to root.
func (f *FlowOrchestrator[R]) TransitionToFlow(flow Node, root R) error {
	if f.currentFlow != nil {
		f.RemoveChild(f.currentFlow)
		f.currentFlow = nil
	}
	if err := f.AddChild(flow); err != nil {
		return err
	}
	f.currentFlow = flow
	f.TransitionToNewFlow(root)
	return nil
}
