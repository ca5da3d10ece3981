package runner

import "github.com/acrankyturtle/keypad-test/profile"

// PhaseKind is the tag of a MacroRunner's current phase. Grounded on the
// teacher's TagState enum (internal/queue/runner.go): a small closed set
// tracked alongside the payload it gates, here the active SequenceRunner
// instead of an in-flight io_uring operation.
type PhaseKind uint8

const (
	PhaseStart PhaseKind = iota
	PhaseLoop
	PhaseEnd
	PhaseFinished
)

// Trigger is the Running/Stopping flag a MacroRunner consults at every
// phase boundary to decide whether to continue (Loop) or wind down (End).
type Trigger uint8

const (
	TriggerRunning Trigger = iota
	TriggerStopping
)

// MacroSource identifies the (key, layer) pair a MacroRunner was spawned
// under. Used by Engine to decide which runners a layer change or
// release_key should stop.
type MacroSource struct {
	Key   profile.KeyID
	Layer profile.LayerID
}

// MacroRunner is a live execution instance of a Macro: phase as a sum
// type (Start/Loop/End each carrying a SequenceRunner, or Finished
// carrying nothing), a cooperative Trigger, and the source it was
// spawned from.
type MacroRunner struct {
	macro   *profile.Macro
	phase   PhaseKind
	seq     *SequenceRunner
	trigger Trigger
	source  MacroSource
}

// NewMacroRunner constructs a runner for macro sourced at source. It
// begins in PhaseStart with Trigger Running.
func NewMacroRunner(macro *profile.Macro, source MacroSource) *MacroRunner {
	return &MacroRunner{
		macro:   macro,
		phase:   PhaseStart,
		seq:     NewSequenceRunner(&macro.Start, 0),
		trigger: TriggerRunning,
		source:  source,
	}
}

// Macro returns the profile macro this runner is executing.
func (m *MacroRunner) Macro() *profile.Macro { return m.macro }

// Source returns the (key, layer) this runner was spawned under.
func (m *MacroRunner) Source() MacroSource { return m.source }

// Phase returns the runner's current phase, for observability.
func (m *MacroRunner) Phase() PhaseKind { return m.phase }

// IsFinished reports whether the runner has completed its End phase.
func (m *MacroRunner) IsFinished() bool { return m.phase == PhaseFinished }

// Stop sets the trigger to Stopping. The runner still completes its
// current phase (including Start) before winding down to End: there is
// no hard abort.
func (m *MacroRunner) Stop() { m.trigger = TriggerStopping }

// Tick advances the runner by deltaMs, appending every emitted action
// event to events in order, and returns the leftover time this runner
// did not consume (0 if it is still mid-sequence; the remaining elapsed
// time once Finished or when it stops at an empty Loop sequence).
func (m *MacroRunner) Tick(deltaMs uint32, events *[]profile.ActionEvent) uint32 {
	elapsed := deltaMs

	for m.phase != PhaseFinished && elapsed > 0 {
		elapsed = m.seq.Tick(elapsed, events)

		if m.seq.IsFinished() {
			m.advancePhase()

			// An empty Loop sequence is immediately finished again; without
			// this guard the runner would spin rebuilding empty Loop
			// runners forever within a single Tick call whenever Trigger
			// stays Running. Exiting here is the sole termination
			// guarantee for degenerate loops.
			if m.phase == PhaseLoop && m.seq.IsFinished() {
				break
			}
		}
	}

	return elapsed
}

// advancePhase switches to the next phase once the current one's
// sequence is finished. The new SequenceRunner always starts with a
// zero accumulator: whatever time is left over from the phase that just
// finished is not seeded here but fed to the new sequence by Tick's own
// loop on its very next iteration, via the ordinary deltaMs path. Seeding
// it here too would count that leftover twice.
func (m *MacroRunner) advancePhase() {
	switch m.phase {
	case PhaseStart, PhaseLoop:
		if m.trigger == TriggerRunning {
			m.phase = PhaseLoop
			m.seq = NewSequenceRunner(&m.macro.LoopSequence, 0)
		} else {
			m.phase = PhaseEnd
			m.seq = NewSequenceRunner(&m.macro.End, 0)
		}
	case PhaseEnd:
		m.phase = PhaseFinished
		m.seq = nil
	case PhaseFinished:
		// no-op
	}
}
