package navigation

// ViewFactory builds the view for a route. It is pure, supplied by the
// embedder, and called synchronously through Router.View. The engine never
// interprets the returned value; a nil view is the defined failure case.
type ViewFactory[R any] func(r R) any

// ViewSlot names the presentation slot a view is being built for. It is
// carried on view-creation failures so embedders know which surface would
// have blanked.
type ViewSlot string

const (
	SlotRoot   ViewSlot = "root"
	SlotPushed ViewSlot = "pushed"
	SlotModal  ViewSlot = "modal"
	SlotDetour ViewSlot = "detour"
)

// ErrorView is the fallback the engine substitutes when a factory returns
// no view, so the UI never blanks. The view layer may render it however it
// likes.
type ErrorView struct {
	RouteID string
	Slot    ViewSlot
}
