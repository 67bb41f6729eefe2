package navigation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arborui/arbor/pkg/navigation"
	"github.com/arborui/arbor/pkg/route"
)

func newTestRouter() *navigation.Router[route.Name] {
	return navigation.NewRouter[route.Name]("home", nil)
}

func TestRouter_StackOperations(t *testing.T) {
	r := newTestRouter()

	r.Push("a")
	r.Push("b")
	r.Push("c")
	assert.Equal(t, []route.Name{"a", "b", "c"}, r.State().Stack)

	r.Pop()
	assert.Equal(t, []route.Name{"a", "b"}, r.State().Stack)

	r.Replace("z")
	assert.Equal(t, []route.Name{"a", "z"}, r.State().Stack)

	r.PopToRoot()
	assert.Empty(t, r.State().Stack)

	// replace on an empty stack pushes
	r.Replace("solo")
	assert.Equal(t, []route.Name{"solo"}, r.State().Stack)
}

func TestRouter_PopTo(t *testing.T) {
	t.Run("Truncates To First Occurrence", func(t *testing.T) {
		r := newTestRouter()
		r.Push("a")
		r.Push("b")
		r.Push("a")
		r.Push("c")

		r.PopTo("a")
		assert.Equal(t, []route.Name{"a"}, r.State().Stack)
	})

	t.Run("Missing Route Is A No-Op", func(t *testing.T) {
		r := newTestRouter()
		r.Push("a")

		var published int
		cancel := r.Subscribe(func(navigation.State[route.Name]) { published++ })
		defer cancel()

		r.PopTo("zzz")
		assert.Equal(t, []route.Name{"a"}, r.State().Stack)
		assert.Zero(t, published)
	})

	t.Run("Single Notification", func(t *testing.T) {
		r := newTestRouter()
		r.Push("a")
		r.Push("b")
		r.Push("c")

		var published int
		cancel := r.Subscribe(func(navigation.State[route.Name]) { published++ })
		defer cancel()

		r.PopTo("a")
		assert.Equal(t, 1, published)
	})
}

func TestRouter_PublishOrder(t *testing.T) {
	r := newTestRouter()

	var tops []string
	cancel := r.Subscribe(func(s navigation.State[route.Name]) {
		tops = append(tops, s.CurrentRoute().Identifier())
	})
	defer cancel()

	r.Push("a")
	r.Push("b")
	r.Pop()

	assert.Equal(t, []string{"a", "b", "a"}, tops, "notifications arrive in mutation order")
}

func TestRouter_ModalSlot(t *testing.T) {
	r := newTestRouter()

	cfg := &navigation.DetentConfiguration{Detents: []navigation.Detent{navigation.DetentMedium, navigation.DetentLarge}}
	r.Present("sheet", cfg)

	st := r.State()
	require.NotNil(t, st.Presented)
	assert.Equal(t, "sheet", st.Presented.Identifier())
	require.NotNil(t, st.ModalDetents)
	assert.Equal(t, cfg.Detents, st.ModalDetents.Detents)

	r.UpdateModalSelectedDetent(navigation.DetentLarge)
	r.UpdateModalIdealHeight(420)
	r.UpdateModalMinHeight(120)

	st = r.State()
	require.NotNil(t, st.ModalDetents.Selected)
	assert.Equal(t, navigation.DetentLarge, *st.ModalDetents.Selected)
	assert.Equal(t, 420.0, *st.ModalDetents.IdealHeight)
	assert.Equal(t, 120.0, *st.ModalDetents.MinHeight)

	r.DismissModal()
	st = r.State()
	assert.Nil(t, st.Presented)
	assert.Nil(t, st.ModalDetents)
}

func TestRouter_ModalUpdatesWithoutActiveModal(t *testing.T) {
	r := newTestRouter()

	var published int
	cancel := r.Subscribe(func(navigation.State[route.Name]) { published++ })
	defer cancel()

	r.UpdateModalIdealHeight(100)
	r.UpdateModalMinHeight(50)
	r.UpdateModalSelectedDetent(navigation.DetentSmall)

	assert.Zero(t, published, "detent updates without an active modal are no-ops")
}

func TestRouter_DetourSlot(t *testing.T) {
	r := newTestRouter()
	r.Push("a")

	r.PresentDetour(route.Name("profile"))
	st := r.State()
	require.NotNil(t, st.Detour)
	assert.Equal(t, "profile", st.Detour.Identifier())
	assert.Equal(t, []route.Name{"a"}, st.Stack, "detour leaves the stack untouched")
	assert.Equal(t, "a", st.CurrentRoute().Identifier(), "detour does not change the derived current route")

	r.DismissDetour()
	assert.Nil(t, r.State().Detour)
}

func TestRouter_SetRoot(t *testing.T) {
	r := newTestRouter()
	r.Push("a")
	r.Present("sheet", nil)
	r.PresentDetour(route.Name("d"))

	r.SetRoot("fresh")

	st := r.State()
	assert.Equal(t, "fresh", st.Root.Identifier())
	assert.Empty(t, st.Stack)
	assert.Nil(t, st.Presented)
	assert.Nil(t, st.Detour)
	assert.Empty(t, st.PushedChildren)
	assert.Nil(t, st.ModalDetents)
}

func TestRouter_SnapshotIsolation(t *testing.T) {
	r := newTestRouter()
	r.Push("a")

	snap := r.State()
	r.Push("b")

	assert.Equal(t, []route.Name{"a"}, snap.Stack, "snapshots do not alias router storage")
}

func TestRouter_ViewFallback(t *testing.T) {
	restore := navigation.SwapReporterForTesting(nil)
	defer restore()

	t.Run("Factory Supplies View", func(t *testing.T) {
		r := navigation.NewRouter[route.Name]("home", func(rt route.Name) any {
			return "view:" + string(rt)
		})
		assert.Equal(t, "view:home", r.View("home", navigation.SlotRoot))
	})

	t.Run("Nil Factory Reports And Falls Back", func(t *testing.T) {
		var reported []*navigation.Error
		restore := navigation.SwapReporterForTesting(func(e *navigation.Error) { reported = append(reported, e) })
		defer restore()

		r := navigation.NewRouter[route.Name]("home", nil)
		v := r.View("home", navigation.SlotModal)

		ev, ok := v.(navigation.ErrorView)
		require.True(t, ok)
		assert.Equal(t, "home", ev.RouteID)
		assert.Equal(t, navigation.SlotModal, ev.Slot)
		require.Len(t, reported, 1)
		assert.Equal(t, navigation.CodeViewCreationFailed, reported[0].Code)
	})
}
