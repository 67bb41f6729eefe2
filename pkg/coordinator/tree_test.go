package coordinator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arborui/arbor/pkg/coordinator"
	"github.com/arborui/arbor/pkg/navigation"
	"github.com/arborui/arbor/pkg/route"
)

func TestAddChild_DuplicateRejected(t *testing.T) {
	errs := captureErrors(t)
	a := newPlain("a", "aRoot", nil)
	b := newPlain("b", "bRoot", nil)
	child := newPlain("child", "childRoot", nil)

	require.NoError(t, a.AddChild(child))

	err := b.AddChild(child)
	require.Error(t, err)
	navErr, ok := err.(*navigation.Error)
	require.True(t, ok)
	assert.Equal(t, navigation.CodeDuplicateChild, navErr.Code)
	assert.Equal(t, "child", navErr.Child)
	assert.Empty(t, b.Children(), "rejection mutates nothing")
	assert.Same(t, a, child.Parent().(*coordinator.Coordinator[route.Name]))
	require.Len(t, *errs, 1)
}

func TestAddChild_CycleRejected(t *testing.T) {
	errs := captureErrors(t)
	parent := newPlain("parent", "pRoot", nil)
	child := newPlain("child", "cRoot", nil)
	grandchild := newPlain("grandchild", "gRoot", nil)

	require.NoError(t, parent.AddChild(child))
	require.NoError(t, child.AddChild(grandchild))

	// re-parenting upward: grandchild's subtree would contain parent
	grandchild2 := newPlain("other", "oRoot", nil)
	require.NoError(t, grandchild.AddChild(grandchild2))

	// direct cycle
	parentBefore := parent.Router().State()
	err := grandchild.AddChild(parent)
	require.Error(t, err)
	navErr, ok := err.(*navigation.Error)
	require.True(t, ok)
	assert.Equal(t, navigation.CodeCircularReference, navErr.Code)
	assert.Nil(t, parent.Parent())
	assert.Len(t, grandchild.Children(), 1)
	assert.True(t, parentBefore.Equal(parent.Router().State()))
	require.Len(t, *errs, 1)
}

func TestAddChild_SelfRejected(t *testing.T) {
	captureErrors(t)
	c := newPlain("self", "root", nil)

	err := c.AddChild(c)
	require.Error(t, err)
	assert.Equal(t, navigation.CodeCircularReference, err.(*navigation.Error).Code)
	assert.Empty(t, c.Children())
}

func TestAddChild_CycleThroughModalRegistry(t *testing.T) {
	captureErrors(t)
	parent := newPlain("parent", "pRoot", nil)
	modal := newPlain("modal", "mRoot", nil)
	parent.AddModalCoordinator(modal)

	// parent -> modal is reachable through the registry, so attaching the
	// registering parent under its own modal coordinator closes a cycle
	err := modal.AddChild(parent)
	require.Error(t, err)
	assert.Equal(t, navigation.CodeCircularReference, err.(*navigation.Error).Code)
	assert.Empty(t, modal.Children())
}

func TestRemoveChild(t *testing.T) {
	parent := newPlain("parent", "pRoot", nil)
	child := newPlain("child", "cRoot", nil)
	require.NoError(t, parent.AddChild(child))

	parent.RemoveChild(child)

	assert.Empty(t, parent.Children())
	assert.Nil(t, child.Parent())

	// re-attachment is allowed after removal
	other := newPlain("other", "oRoot", nil)
	require.NoError(t, other.AddChild(child))
}

func TestNoSimultaneousDoubleParenting(t *testing.T) {
	parent := newPlain("parent", "home", nil)
	childA := newPlain("childA", "aRoot", map[string]navigation.Type{"a": navigation.Push})
	childB := newPlain("childB", "bRoot", map[string]navigation.Type{"b": navigation.Push})
	require.NoError(t, parent.AddChild(childA))
	require.NoError(t, parent.AddChild(childB))

	require.True(t, parent.Navigate(route.Name("a")))
	require.True(t, parent.Navigate(route.Name("b")))

	seen := map[string]int{}
	for _, pc := range parent.Router().State().PushedChildren {
		seen[pc.Name()]++
	}
	assert.Equal(t, 1, seen["childA"])
	assert.Equal(t, 1, seen["childB"])
}

func TestSnapshot(t *testing.T) {
	modal := newPlain("sheet", "sheetRoot", map[string]navigation.Type{"sheetRoot": navigation.Push})
	parent := newPlain("parent", "home",
		map[string]navigation.Type{
			"a":         navigation.Push,
			"sheetRoot": navigation.Modal,
		},
		coordinator.WithModalCoordinators[route.Name](modal))
	child := newPlain("child", "childRoot", nil)
	require.NoError(t, parent.AddChild(child))

	require.True(t, parent.Navigate(route.Name("a")))
	require.True(t, parent.Navigate(route.Name("sheetRoot")))

	snap := parent.Snapshot()
	assert.Equal(t, "parent", snap.Name)
	assert.Equal(t, []string{"home", "a"}, snap.Routes)
	assert.Equal(t, "sheetRoot", snap.Presented)
	assert.Equal(t, []string{"sheet"}, snap.RegisteredModals)
	require.Len(t, snap.Children, 1)
	assert.Equal(t, "child", snap.Children[0].Name)
	require.NotNil(t, snap.Modal)
	assert.Equal(t, "sheet", snap.Modal.Name)
	assert.Equal(t, "modal", snap.Modal.Context)
}
