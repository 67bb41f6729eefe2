package navigation

import (
	"fmt"

	"github.com/arborui/arbor/pkg/route"
)

// ErrorCode categorizes engine errors.
type ErrorCode string

const (
	// CodeNavigationFailed means bubbling reached the root with no handler
	// and no flow change.
	CodeNavigationFailed ErrorCode = "NAVIGATION_FAILED"
	// CodeViewCreationFailed means the view factory returned no view for a
	// slot that is being displayed.
	CodeViewCreationFailed ErrorCode = "VIEW_CREATION_FAILED"
	// CodeModalNotConfigured means a coordinator claimed a route as modal
	// without a capable registered modal coordinator.
	CodeModalNotConfigured ErrorCode = "MODAL_COORDINATOR_NOT_CONFIGURED"
	// CodeInvalidDetourNavigation means a navigation-type policy returned
	// detour, which is illegal; detours are presented explicitly.
	CodeInvalidDetourNavigation ErrorCode = "INVALID_DETOUR_NAVIGATION"
	// CodeCircularReference means adding a child whose subtree already
	// contains the would-be parent.
	CodeCircularReference ErrorCode = "CIRCULAR_REFERENCE"
	// CodeDuplicateChild means adding a child that already has a parent.
	CodeDuplicateChild ErrorCode = "DUPLICATE_CHILD"
	// CodeInvalidTabIndex means a tab switch outside [0, tab count).
	CodeInvalidTabIndex ErrorCode = "INVALID_TAB_INDEX"
	// CodeConfiguration is the catch-all for configuration diagnostics.
	CodeConfiguration ErrorCode = "CONFIGURATION_ERROR"
)

// Error is the typed error value every engine failure is reported as.
// Fields beyond Code and Message are populated where they apply.
type Error struct {
	Code        ErrorCode
	Coordinator string
	RouteID     string
	RouteType   string
	Child       string
	Slot        ViewSlot
	TabIndex    int
	TabCount    int
	Message     string
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e.RouteID != "" && e.Coordinator != "":
		return fmt.Sprintf("%s: %s (coordinator=%s, route=%s)", e.Code, e.Message, e.Coordinator, e.RouteID)
	case e.Coordinator != "":
		return fmt.Sprintf("%s: %s (coordinator=%s)", e.Code, e.Message, e.Coordinator)
	default:
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
}

func routeType(r route.Route) string {
	if r == nil {
		return ""
	}
	return fmt.Sprintf("%T", r)
}

// NewNavigationFailed builds a CodeNavigationFailed error.
func NewNavigationFailed(coordinator string, r route.Route, context string) *Error {
	return &Error{
		Code:        CodeNavigationFailed,
		Coordinator: coordinator,
		RouteID:     r.Identifier(),
		RouteType:   routeType(r),
		Message:     context,
	}
}

// NewViewCreationFailed builds a CodeViewCreationFailed error for slot.
func NewViewCreationFailed(coordinator string, r route.Route, slot ViewSlot) *Error {
	return &Error{
		Code:        CodeViewCreationFailed,
		Coordinator: coordinator,
		RouteID:     r.Identifier(),
		RouteType:   routeType(r),
		Slot:        slot,
		Message:     "view factory returned no view",
	}
}

// NewModalNotConfigured builds a CodeModalNotConfigured error.
func NewModalNotConfigured(coordinator string, r route.Route) *Error {
	return &Error{
		Code:        CodeModalNotConfigured,
		Coordinator: coordinator,
		RouteID:     r.Identifier(),
		RouteType:   routeType(r),
		Message:     "route claimed as modal but no registered modal coordinator can handle it",
	}
}

// NewInvalidDetourNavigation builds a CodeInvalidDetourNavigation error.
func NewInvalidDetourNavigation(coordinator string, r route.Route) *Error {
	return &Error{
		Code:        CodeInvalidDetourNavigation,
		Coordinator: coordinator,
		RouteID:     r.Identifier(),
		RouteType:   routeType(r),
		Message:     "detour returned from navigation-type policy; detours are presented explicitly",
	}
}

// NewCircularReference builds a CodeCircularReference error.
func NewCircularReference(coordinator string) *Error {
	return &Error{
		Code:        CodeCircularReference,
		Coordinator: coordinator,
		Message:     "child subtree already contains the would-be parent",
	}
}

// NewDuplicateChild builds a CodeDuplicateChild error.
func NewDuplicateChild(coordinator, child string) *Error {
	return &Error{
		Code:        CodeDuplicateChild,
		Coordinator: coordinator,
		Child:       child,
		Message:     "child already has a parent",
	}
}

// NewInvalidTabIndex builds a CodeInvalidTabIndex error.
func NewInvalidTabIndex(coordinator string, index, count int) *Error {
	return &Error{
		Code:        CodeInvalidTabIndex,
		Coordinator: coordinator,
		TabIndex:    index,
		TabCount:    count,
		Message:     fmt.Sprintf("tab index %d outside [0, %d)", index, count),
	}
}

// NewConfigurationError builds a CodeConfiguration error.
func NewConfigurationError(coordinator, message string) *Error {
	return &Error{
		Code:        CodeConfiguration,
		Coordinator: coordinator,
		Message:     message,
	}
}
