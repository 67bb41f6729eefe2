package coordinator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arborui/arbor/pkg/coordinator"
	"github.com/arborui/arbor/pkg/navigation"
	"github.com/arborui/arbor/pkg/route"
)

func TestDetour_PreservesUnderlyingState(t *testing.T) {
	// tab 1 selected, with a stack built inside it
	tabs := newTabs("tabs", "tabsRoot", nil)
	first := newPlain("firstTab", "firstRoot", nil, coordinator.WithTabItem[route.Name]("First", ""))
	second := newPlain("secondTab", "enterCode",
		map[string]navigation.Type{
			"loading": navigation.Push,
			"failure": navigation.Push,
		},
		coordinator.WithTabItem[route.Name]("Second", ""))
	require.NoError(t, tabs.AddChild(first))
	require.NoError(t, tabs.AddChild(second))

	require.True(t, tabs.Navigate(route.Name("loading")))
	require.True(t, tabs.Navigate(route.Name("failure")))
	require.Equal(t, 1, tabs.SelectedTab())
	require.Equal(t, []string{"loading", "failure"}, stackOf(second))

	tabsBefore := tabs.Router().State()
	secondBefore := second.Router().State()

	profile := newPlain("profileDetour", "profile", map[string]navigation.Type{"profile": navigation.Push})
	tabs.PresentDetour(profile, route.Name("profile"))

	st := tabs.Router().State()
	require.NotNil(t, st.Detour)
	assert.Equal(t, "profile", st.Detour.Identifier())
	assert.Equal(t, coordinator.ContextDetour, profile.PresentationContext())
	assert.Same(t, tabs, profile.Parent().(*coordinator.TabCoordinator[route.Name]))
	assert.Equal(t, secondBefore, second.Router().State(), "detour leaves the underlying stack untouched")
	assert.Equal(t, "failure", second.Router().State().CurrentRoute().Identifier())

	tabs.DismissDetour()

	assert.True(t, tabsBefore.Equal(tabs.Router().State()), "dismissal restores the exact prior state")
	assert.True(t, secondBefore.Equal(second.Router().State()))
	assert.Nil(t, profile.Parent())
	assert.Nil(t, tabs.ActiveDetour())
}

func TestDetour_HandlesRoutesWhileActive(t *testing.T) {
	root := newPlain("root", "home", nil)
	detour := newPlain("detour", "detourRoot", map[string]navigation.Type{"detourDetail": navigation.Push})
	root.PresentDetour(detour, route.Name("detourRoot"))

	require.True(t, root.Navigate(route.Name("detourDetail")))

	assert.Equal(t, []string{"detourDetail"}, stackOf(detour))
	assert.NotNil(t, root.ActiveDetour(), "detour stays active while handling its own routes")
}

func TestDetour_DismissedWhenRouteGoesElsewhere(t *testing.T) {
	root := newPlain("root", "home", map[string]navigation.Type{"plain": navigation.Push})
	detour := newPlain("detour", "detourRoot", nil)
	root.PresentDetour(detour, route.Name("detourRoot"))

	require.True(t, root.Navigate(route.Name("plain")))

	assert.Nil(t, root.ActiveDetour(), "detours are always dismissed when navigation passes them by")
	assert.Nil(t, root.Router().State().Detour)
	assert.Equal(t, []string{"plain"}, stackOf(root))
	assert.Nil(t, detour.Parent())
}

func TestDetour_AlreadyAtDetourRoute(t *testing.T) {
	root := newPlain("root", "home", nil)
	detour := newPlain("detour", "detourRoot", nil)
	root.PresentDetour(detour, route.Name("detourRoot"))

	var published int
	cancel := root.Router().Subscribe(func(navigation.State[route.Name]) { published++ })
	defer cancel()

	// identifier equality on the opaque detour slot: no-op success
	assert.True(t, root.Navigate(route.Name("detourRoot")))
	assert.Zero(t, published)
	assert.NotNil(t, root.ActiveDetour())
}

func TestDetour_ClearedByFlowTransition(t *testing.T) {
	root := newPlain("root", "home", nil)
	detour := newPlain("detour", "detourRoot", nil)
	root.PresentDetour(detour, route.Name("detourRoot"))

	root.TransitionToNewFlow(route.Name("freshRoot"))

	assert.Nil(t, root.ActiveDetour())
	assert.Nil(t, root.Router().State().Detour)
	assert.Nil(t, detour.Parent())
	assert.Equal(t, "freshRoot", root.Router().State().Root.Identifier())
}
