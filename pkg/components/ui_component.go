package components

// UIState represents the current state of a UI element (e.g., button).
type UIState int

const (
	// UINormal indicates the UI element is in its default state.
	UINormal UIState = iota
	// UIHovered indicates the mouse cursor is hovering over the UI element.
	UIHovered
	// UIClicked indicates the UI element is being pressed.
	UIClicked
	// UIDisabled indicates the UI element is disabled and cannot be interacted with.
	UIDisabled
)

// UIComponent is a component that marks an entity as a UI element
// and tracks its interaction state.
// ClickSystem updates it every frame; render systems use it for press feedback.
type UIComponent struct {
	// State is the current interaction state of the UI element.
	State UIState
}
