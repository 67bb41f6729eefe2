package coordinator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arborui/arbor/pkg/coordinator"
	"github.com/arborui/arbor/pkg/navigation"
	"github.com/arborui/arbor/pkg/route"
)

func TestFlowOrchestrator_TransitionToFlow(t *testing.T) {
	orchestrator := coordinator.NewFlowOrchestrator[route.Name]("app", "launch", nil)
	onboarding := newPlain("onboarding", "welcome", map[string]navigation.Type{"signup": navigation.Push})
	main := newPlain("main", "home", map[string]navigation.Type{"feed": navigation.Push})

	require.NoError(t, orchestrator.TransitionToFlow(onboarding, "welcome"))
	assert.Same(t, onboarding, orchestrator.CurrentFlow().(*coordinator.Coordinator[route.Name]))
	require.True(t, orchestrator.Navigate(route.Name("signup")))

	require.NoError(t, orchestrator.TransitionToFlow(main, "home"))

	// previous flow is fully detached
	assert.Nil(t, onboarding.Parent())
	assert.Len(t, orchestrator.Children(), 1)
	assert.Same(t, main, orchestrator.CurrentFlow().(*coordinator.Coordinator[route.Name]))

	// orchestrator state is reset
	st := orchestrator.Router().State()
	assert.Equal(t, "home", st.Root.Identifier())
	assert.Empty(t, st.Stack)
	assert.Nil(t, st.Presented)
	assert.Nil(t, st.Detour)
	assert.Empty(t, st.PushedChildren)
}

func TestFlowOrchestrator_OnlyOneActiveFlow(t *testing.T) {
	orchestrator := coordinator.NewFlowOrchestrator[route.Name]("app", "launch", nil)
	flows := []*coordinator.Coordinator[route.Name]{
		newPlain("flowA", "a", nil),
		newPlain("flowB", "b", nil),
		newPlain("flowC", "c", nil),
	}

	for _, f := range flows {
		require.NoError(t, orchestrator.TransitionToFlow(f, route.Name(f.Name())))
		assert.Len(t, orchestrator.Children(), 1)
	}
	assert.Nil(t, flows[0].Parent())
	assert.Nil(t, flows[1].Parent())
	assert.Same(t, orchestrator, flows[2].Parent().(*coordinator.FlowOrchestrator[route.Name]))
}

func TestFlowOrchestrator_FlowChangeHandlerSwapsFlows(t *testing.T) {
	login := newPlain("login", "loginRoot", map[string]navigation.Type{"loginRoot": navigation.Push})
	main := newPlain("main", "home", map[string]navigation.Type{"home": navigation.Push})

	var orchestrator *coordinator.FlowOrchestrator[route.Name]
	orchestrator = coordinator.NewFlowOrchestrator("app", route.Name("launch"), nil,
		coordinator.WithFlowChangeHandler[route.Name](
			func(r route.Route) bool {
				return r.Identifier() == "home" || r.Identifier() == "loginRoot"
			},
			func(r route.Route) bool {
				switch r.Identifier() {
				case "home":
					return orchestrator.TransitionToFlow(main, "home") == nil
				case "loginRoot":
					return orchestrator.TransitionToFlow(login, "loginRoot") == nil
				}
				return false
			},
		))

	require.NoError(t, orchestrator.TransitionToFlow(login, "loginRoot"))

	// "home" is handled by no coordinator in the login flow; it bubbles to
	// the orchestrator and swaps flows
	require.True(t, orchestrator.Navigate(route.Name("home")))

	assert.Same(t, main, orchestrator.CurrentFlow().(*coordinator.Coordinator[route.Name]))
	assert.Nil(t, login.Parent())
	assert.Equal(t, "home", orchestrator.Router().State().Root.Identifier())
}
