package profile

// ActionEventKind is the tag of the closed ActionEvent union. Wire-stable:
// the numeric values and the shape of ActionEvent must not change across
// reimplementations, since a host driver downstream may depend on the
// encoded form.
type ActionEventKind uint8

const (
	EventNone ActionEventKind = iota
	EventKeyboard
	EventMouse
	EventLayer
)

// KeyTransition distinguishes a key press from a key release within a
// KeyboardEvent.
type KeyTransition uint8

const (
	KeyDown KeyTransition = iota
	KeyUp
)

// KeyboardKey enumerates the keyboard keys a macro can emit.
type KeyboardKey uint8

const (
	KeyA KeyboardKey = iota
	KeyB
	KeyC
)

// KeyboardEvent is the payload of an EventKeyboard ActionEvent.
type KeyboardEvent struct {
	Transition KeyTransition
	Key        KeyboardKey
}

// MouseEventKind enumerates the mouse gestures a macro can emit.
type MouseEventKind uint8

const (
	MouseButtonDown MouseEventKind = iota
	MouseButtonUp
	MouseScrollUp
	MouseScrollDown
	MouseScrollLeft
	MouseScrollRight
	MouseMove
)

// MouseButton enumerates the mouse buttons a macro can emit.
type MouseButton uint8

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
	MouseBack
	MouseForward
)

// MouseEvent is the payload of an EventMouse ActionEvent. Only the fields
// relevant to Kind are meaningful: Button for ButtonDown/ButtonUp, Scroll
// for the four scroll kinds, DX/DY for Move.
type MouseEvent struct {
	Kind   MouseEventKind
	Button MouseButton
	Scroll int32
	DX     int32
	DY     int32
}

// LayerEventKind distinguishes setting a tag from clearing it.
type LayerEventKind uint8

const (
	LayerSet LayerEventKind = iota
	LayerClear
)

// LayerEvent is the payload of an EventLayer ActionEvent. The engine
// emits it like any other event and does not apply it to its own tag
// set; the internal tag bucket changes only through
// KeyboardState.AddInternalTags/RemoveInternalTags.
type LayerEvent struct {
	Kind LayerEventKind
	Tag  LayerTag
}

// ActionEvent is the closed tagged union emitted by a tick. Exactly one
// of Keyboard/Mouse/Layer is meaningful, selected by Kind; for
// Kind == EventNone none of them are.
//
// Represented as a flat struct rather than an interface so that emitting
// an event never boxes — action events are copied by value straight out
// of profile-owned Action slices on a hot tick path.
type ActionEvent struct {
	Kind     ActionEventKind
	Keyboard KeyboardEvent
	Mouse    MouseEvent
	Layer    LayerEvent
}

// NoneEvent is the zero-value ActionEvent, used for timing-only actions
// (a predelay with no effect).
var NoneEvent = ActionEvent{Kind: EventNone}

// KeyboardDown builds an ActionEvent for a keyboard key-down.
func KeyboardDown(key KeyboardKey) ActionEvent {
	return ActionEvent{Kind: EventKeyboard, Keyboard: KeyboardEvent{Transition: KeyDown, Key: key}}
}

// KeyboardUp builds an ActionEvent for a keyboard key-up.
func KeyboardUp(key KeyboardKey) ActionEvent {
	return ActionEvent{Kind: EventKeyboard, Keyboard: KeyboardEvent{Transition: KeyUp, Key: key}}
}
