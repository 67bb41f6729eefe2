package navigation

import "fmt"

// Kind enumerates how a claimed route is brought on screen.
type Kind int

const (
	// KindPush appends the route to the owning router's stack.
	KindPush Kind = iota
	// KindReplace swaps the top of the stack (or pushes onto an empty one).
	KindReplace
	// KindModal presents the route through a registered modal coordinator.
	KindModal
	// KindTabSwitch selects the tab carried in Type.Tab.
	KindTabSwitch
	// KindDetour is not a navigation type. Detours are presented explicitly
	// via Coordinator.PresentDetour; returning it from a navigation-type
	// policy is a configuration error the validation pass rejects.
	KindDetour
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindPush:
		return "push"
	case KindReplace:
		return "replace"
	case KindModal:
		return "modal"
	case KindTabSwitch:
		return "tabSwitch"
	case KindDetour:
		return "detour"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Type pairs a Kind with its payload. Only KindTabSwitch carries one.
type Type struct {
	Kind Kind
	Tab  int
}

// The payload-free navigation types.
var (
	Push    = Type{Kind: KindPush}
	Replace = Type{Kind: KindReplace}
	Modal   = Type{Kind: KindModal}
)

// TabSwitch returns a navigation type selecting the tab at index.
func TabSwitch(index int) Type {
	return Type{Kind: KindTabSwitch, Tab: index}
}

// String implements fmt.Stringer.
func (t Type) String() string {
	if t.Kind == KindTabSwitch {
		return fmt.Sprintf("tabSwitch(%d)", t.Tab)
	}
	return t.Kind.String()
}
