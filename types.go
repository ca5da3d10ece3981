// Package keypad is the runtime core of a programmable input-device
// macro engine: it turns a declarative Profile plus a stream of key
// presses/releases and timer ticks into an ordered stream of output
// ActionEvents.
//
// The package is single-threaded and synchronous by design: there is no
// internal scheduler, no timer, and no I/O. Time is injected by the
// caller via KeyboardState.Tick.
package keypad

import "github.com/acrankyturtle/keypad-test/profile"

// Identifiers and tags. Aliased from package profile so that the
// profile model can be shared, unmodified, between this package's
// public surface and internal/runner without either depending on the
// other's full API.
type (
	KeyID    = profile.KeyID
	LayerID  = profile.LayerID
	MacroID  = profile.MacroID
	Channel  = profile.Channel
	LayerTag = profile.LayerTag
)

// Profile model.
type (
	Profile              = profile.Profile
	DeviceKey            = profile.DeviceKey
	TaggedDeviceKeyLayer = profile.TaggedDeviceKeyLayer
	DeviceKeyLayer       = profile.DeviceKeyLayer
	Macro                = profile.Macro
	Sequence             = profile.Sequence
	Action               = profile.Action
	TagMatchType         = profile.TagMatchType
)

const (
	MatchAll = profile.MatchAll
	MatchAny = profile.MatchAny
)

// Action events: a closed tagged union of what a single action can
// produce, represented as a flat struct rather than an interface so
// emitting one never allocates.
type (
	ActionEvent     = profile.ActionEvent
	ActionEventKind = profile.ActionEventKind
	KeyboardEvent   = profile.KeyboardEvent
	KeyTransition   = profile.KeyTransition
	KeyboardKey     = profile.KeyboardKey
	MouseEvent      = profile.MouseEvent
	MouseEventKind  = profile.MouseEventKind
	MouseButton     = profile.MouseButton
	LayerEvent      = profile.LayerEvent
	LayerEventKind  = profile.LayerEventKind
)

const (
	EventNone     = profile.EventNone
	EventKeyboard = profile.EventKeyboard
	EventMouse    = profile.EventMouse
	EventLayer    = profile.EventLayer

	KeyDown = profile.KeyDown
	KeyUp   = profile.KeyUp

	KeyA = profile.KeyA
	KeyB = profile.KeyB
	KeyC = profile.KeyC

	MouseButtonDown  = profile.MouseButtonDown
	MouseButtonUp    = profile.MouseButtonUp
	MouseScrollUp    = profile.MouseScrollUp
	MouseScrollDown  = profile.MouseScrollDown
	MouseScrollLeft  = profile.MouseScrollLeft
	MouseScrollRight = profile.MouseScrollRight
	MouseMove        = profile.MouseMove

	MouseLeft    = profile.MouseLeft
	MouseRight   = profile.MouseRight
	MouseMiddle  = profile.MouseMiddle
	MouseBack    = profile.MouseBack
	MouseForward = profile.MouseForward

	LayerSet   = profile.LayerSet
	LayerClear = profile.LayerClear
)

// NoneEvent is the zero-value ActionEvent used for timing-only actions.
var NoneEvent = profile.NoneEvent

// KeyboardDown and KeyboardUp build an ActionEvent for a keyboard
// transition, for convenience when authoring a Profile in Go source.
func KeyboardDown(key KeyboardKey) ActionEvent { return profile.KeyboardDown(key) }
func KeyboardUp(key KeyboardKey) ActionEvent   { return profile.KeyboardUp(key) }
