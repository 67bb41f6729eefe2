package coordinator_test

import (
	"testing"

	"github.com/arborui/arbor/pkg/coordinator"
	"github.com/arborui/arbor/pkg/navigation"
	"github.com/arborui/arbor/pkg/route"
)

// captureErrors swaps the central reporter for the duration of the test and
// returns the accumulating error slice.
func captureErrors(t *testing.T) *[]*navigation.Error {
	t.Helper()
	var errs []*navigation.Error
	restore := navigation.SwapReporterForTesting(func(e *navigation.Error) {
		errs = append(errs, e)
	})
	t.Cleanup(restore)
	return &errs
}

func errorCodes(errs []*navigation.Error) []navigation.ErrorCode {
	out := make([]navigation.ErrorCode, len(errs))
	for i, e := range errs {
		out[i] = e.Code
	}
	return out
}

// newPlain builds a coordinator claiming the given routes with their
// navigation types.
func newPlain(name, root string, claims map[string]navigation.Type, opts ...coordinator.Option[route.Name]) *coordinator.Coordinator[route.Name] {
	all := append(claimOptions(claims), opts...)
	return coordinator.New(name, route.Name(root), nil, all...)
}

func newTabs(name, root string, claims map[string]navigation.Type, opts ...coordinator.Option[route.Name]) *coordinator.TabCoordinator[route.Name] {
	all := append(claimOptions(claims), opts...)
	return coordinator.NewTab(name, route.Name(root), nil, all...)
}

func claimOptions(claims map[string]navigation.Type) []coordinator.Option[route.Name] {
	return []coordinator.Option[route.Name]{
		coordinator.WithCanHandle(func(r route.Name) bool {
			_, ok := claims[string(r)]
			return ok
		}),
		coordinator.WithNavigationType(func(r route.Name) navigation.Type {
			return claims[string(r)]
		}),
	}
}

func names(rs []route.Route) []string {
	return route.Identifiers(rs)
}

// stackOf returns the identifiers of the coordinator's stack.
func stackOf(c *coordinator.Coordinator[route.Name]) []string {
	return route.Identifiers(c.Router().State().Stack)
}
