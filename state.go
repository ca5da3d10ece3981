package keypad

import "github.com/acrankyturtle/keypad-test/internal/runner"

// KeyboardState is the engine's public orchestration surface: it binds
// keys to running macros, resolves each key's active layer from the
// current tag set, and advances every live macro runner on each Tick.
//
// KeyboardState is not safe for concurrent use: the core has no
// internal scheduler or locking of its own and expects a single caller
// to serialize press/release/tag/tick calls.
type KeyboardState struct {
	engine *runner.Engine
}

// NewKeyboardState builds a KeyboardState from profile: every key starts
// on its default layer, the tag set starts empty, and no macros are
// live. Uses DefaultConfig.
func NewKeyboardState(p *Profile) *KeyboardState {
	return NewKeyboardStateWithConfig(p, DefaultConfig())
}

// NewKeyboardStateWithConfig is NewKeyboardState with an explicit Config
// for ambient logging, metrics, and capacity tuning.
func NewKeyboardStateWithConfig(p *Profile, cfg Config) *KeyboardState {
	return &KeyboardState{
		engine: runner.New(p, cfg.toEngineConfig(), cfg.Logger, cfg.Observer),
	}
}

// UpdateProfile rebuilds the engine's key states from a new profile.
// Every live macro runner is told to stop (its trigger becomes
// Stopping) but is not dropped: it continues running against its
// original macro reference, which must therefore outlive the runner,
// winding down through its End phase on subsequent Tick calls.
func (s *KeyboardState) UpdateProfile(p *Profile) {
	s.engine.UpdateProfile(p)
}

// PressKey spawns one macro runner for every macro on keyID's current
// active layer, applying channel cuts to pre-existing runners first (the
// new runners are exempt from their own cuts). An unknown keyID is
// silently ignored.
func (s *KeyboardState) PressKey(keyID KeyID) {
	s.engine.PressKey(keyID)
}

// ReleaseKey sets trigger=Stopping on every live runner sourced at
// keyID. Each such runner finishes its current phase (Start runs to
// completion even if released mid-Start) before entering End. An
// unknown keyID is silently ignored.
func (s *KeyboardState) ReleaseKey(keyID KeyID) {
	s.engine.ReleaseKey(keyID)
}

// Tick advances every live macro runner by elapsedMs, in insertion
// order, appending emitted ActionEvents to events, then prunes runners
// that finished during this tick. elapsedMs == 0 is valid and advances
// nothing.
//
// Ordering is part of the contract: events from runner i appear before
// events from runner j whenever i was inserted before j; within one
// runner, events appear in pre-delay order; within one runner's single
// tick, a Start-to-End transition emits Start's trailing events before
// End's leading events.
func (s *KeyboardState) Tick(elapsedMs uint32, events *[]ActionEvent) {
	s.engine.Tick(elapsedMs, events)
}

// AddInternalTags appends tags to the internal bucket (duplicates are
// allowed) and re-resolves every key's active layer, stopping any
// runner whose source layer no longer matches.
func (s *KeyboardState) AddInternalTags(tags []LayerTag) {
	s.engine.AddInternalTags(tags)
}

// RemoveInternalTags removes the first occurrence of each tag in tags
// from the internal bucket and re-resolves every key's active layer.
// Removing an absent tag is a no-op.
func (s *KeyboardState) RemoveInternalTags(tags []LayerTag) {
	s.engine.RemoveInternalTags(tags)
}

// SetExternalTags atomically replaces the external tag bucket and
// re-resolves every key's active layer.
func (s *KeyboardState) SetExternalTags(tags []LayerTag) {
	s.engine.SetExternalTags(tags)
}

// LiveMacroCount reports the number of macro runners currently retained
// (phase not Finished). Exposed for host drivers that want to cap
// concurrent macro execution or report engine load.
func (s *KeyboardState) LiveMacroCount() int {
	return len(s.engine.Macros())
}
