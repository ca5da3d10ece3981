// Package runner implements the tick-driven execution machinery: a
// SequenceRunner advances one sequence of timed actions, a MacroRunner
// drives a macro's Start/Loop/End phases through a sequence of
// SequenceRunners, and Engine owns the live MacroRunners for a profile
// and is what keypad.KeyboardState delegates to.
//
// Each runner is a per-unit loop that advances a small state machine
// (sequence/phase state across elapsed milliseconds) and reports back
// how much work is left to do, rather than blocking until done.
package runner

import "github.com/acrankyturtle/keypad-test/profile"

// SequenceRunner advances a single Sequence against elapsed
// milliseconds, emitting action events as their pre-delays are consumed.
//
// Implemented as a cursor over the sequence's action slice rather than a
// popped, reversed stack: equivalent semantics, one fewer allocation on
// the hot tick path.
type SequenceRunner struct {
	actions   []profile.Action
	idx       int
	elapsedMs uint32
}

// NewSequenceRunner starts a runner over seq, pre-seeded with
// elapsedMs of already-accumulated time. MacroRunner always passes 0:
// it hands a finished phase's leftover to the next sequence through
// Tick instead.
func NewSequenceRunner(seq *profile.Sequence, elapsedMs uint32) *SequenceRunner {
	return &SequenceRunner{actions: seq.Actions, elapsedMs: elapsedMs}
}

// Tick advances the runner by deltaMs. Every pending action whose
// pre-delay is now covered by the accumulator is popped and its event
// appended to events, in order. It returns:
//   - 0, if the runner is now blocked on a future action (time is
//     retained inside the runner for the next Tick call), or
//   - the leftover accumulator, if the sequence is now fully consumed
//     (time not spent is returned to the caller to carry into whatever
//     comes next).
func (r *SequenceRunner) Tick(deltaMs uint32, events *[]profile.ActionEvent) uint32 {
	r.elapsedMs += deltaMs

	for r.idx < len(r.actions) {
		action := r.actions[r.idx]
		if action.PredelayMs > r.elapsedMs {
			return 0
		}
		*events = append(*events, action.Event)
		r.elapsedMs -= action.PredelayMs
		r.idx++
	}

	return r.elapsedMs
}

// IsFinished reports whether every action has been consumed. An empty
// sequence is born finished.
func (r *SequenceRunner) IsFinished() bool {
	return r.idx >= len(r.actions)
}
