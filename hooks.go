package arbor

import (
	"github.com/arborui/arbor/pkg/navigation"
	"github.com/arborui/arbor/pkg/route"
)

// Hooks defines callbacks for engine observability. All hooks are invoked
// synchronously on the navigation call chain; keep them cheap and never
// navigate from inside one. OnError can fire while a navigation is still in
// progress, where a nested navigate is deferred (see pkg/coordinator);
// OnNavigate fires after the navigation has returned, so a navigate issued
// from it runs immediately.
type Hooks struct {
	// OnNavigate fires after every top-level navigation with its outcome.
	OnNavigate func(r route.Route, ok bool)
	// OnError fires for every error dispatched through the central
	// reporter.
	OnError func(err *navigation.Error)
}
