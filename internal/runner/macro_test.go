package runner

import (
	"testing"

	"github.com/acrankyturtle/keypad-test/profile"
	"github.com/stretchr/testify/require"
)

func testMacro() *profile.Macro {
	return &profile.Macro{
		ID:   1,
		Name: "test",
		Start: profile.Sequence{Actions: []profile.Action{
			{PredelayMs: 10, Event: evt(0)},
		}},
		LoopSequence: profile.Sequence{Actions: []profile.Action{
			{PredelayMs: 10, Event: evt(1)},
		}},
		End: profile.Sequence{Actions: []profile.Action{
			{PredelayMs: 10, Event: evt(2)},
		}},
	}
}

func TestMacroRunnerStartsInPhaseStart(t *testing.T) {
	r := NewMacroRunner(testMacro(), MacroSource{Key: 1, Layer: 1})
	require.Equal(t, PhaseStart, r.Phase())
	require.False(t, r.IsFinished())
}

func TestMacroRunnerMovesFromStartToLoop(t *testing.T) {
	r := NewMacroRunner(testMacro(), MacroSource{Key: 1, Layer: 1})

	var events []profile.ActionEvent
	r.Tick(10, &events)

	require.Equal(t, PhaseLoop, r.Phase())
	require.Equal(t, []profile.ActionEvent{evt(0)}, events)
}

func TestMacroRunnerLoopsWhileRunning(t *testing.T) {
	r := NewMacroRunner(testMacro(), MacroSource{Key: 1, Layer: 1})

	var events []profile.ActionEvent
	r.Tick(10, &events) // Start -> Loop, emits evt(0)
	r.Tick(10, &events) // Loop iteration 1, emits evt(1)
	r.Tick(10, &events) // Loop iteration 2, emits evt(1) again

	require.Equal(t, PhaseLoop, r.Phase())
	require.Equal(t, []profile.ActionEvent{evt(0), evt(1), evt(1)}, events)
}

func TestMacroRunnerEmptyLoopSequenceDoesNotSpin(t *testing.T) {
	m := testMacro()
	m.LoopSequence = profile.Sequence{}
	r := NewMacroRunner(m, MacroSource{Key: 1, Layer: 1})

	var events []profile.ActionEvent
	// A huge elapsed delta must not hang even though Loop is perpetually
	// finished and the trigger stays Running.
	r.Tick(1_000_000, &events)

	require.Equal(t, PhaseLoop, r.Phase())
	require.Equal(t, []profile.ActionEvent{evt(0)}, events)
}

func TestMacroRunnerGoesToEndWhenStopped(t *testing.T) {
	r := NewMacroRunner(testMacro(), MacroSource{Key: 1, Layer: 1})

	var events []profile.ActionEvent
	r.Tick(10, &events) // Start -> Loop
	r.Stop()
	r.Tick(10, &events) // Loop -> End (stopping), emits evt(1) then transitions

	require.Equal(t, PhaseEnd, r.Phase())
}

func TestMacroRunnerFinishesAfterEnd(t *testing.T) {
	r := NewMacroRunner(testMacro(), MacroSource{Key: 1, Layer: 1})
	r.Stop()

	var events []profile.ActionEvent
	r.Tick(10, &events) // Start -> End (stopped before loop), emits evt(0)
	r.Tick(10, &events) // End -> Finished, emits evt(2)

	require.True(t, r.IsFinished())
	require.Equal(t, []profile.ActionEvent{evt(0), evt(2)}, events)
}

func TestMacroRunnerStartAlwaysCompletesEvenIfStoppedMidStart(t *testing.T) {
	m := testMacro()
	m.Start = profile.Sequence{Actions: []profile.Action{
		{PredelayMs: 10, Event: evt(0)},
		{PredelayMs: 10, Event: evt(5)},
	}}
	r := NewMacroRunner(m, MacroSource{Key: 1, Layer: 1})

	var events []profile.ActionEvent
	r.Stop() // stop arrives before Start has even ticked once
	r.Tick(10, &events)

	require.Equal(t, []profile.ActionEvent{evt(0)}, events, "Start's first action still ran despite an early Stop")
	require.Equal(t, PhaseStart, r.Phase(), "Start sequence is not abandoned mid-way by Stop")
}

func TestMacroRunnerFinishedTickIsNoOp(t *testing.T) {
	m := testMacro()
	m.Start = profile.Sequence{}
	m.LoopSequence = profile.Sequence{}
	m.End = profile.Sequence{}
	r := NewMacroRunner(m, MacroSource{Key: 1, Layer: 1})
	r.Stop()

	var events []profile.ActionEvent
	leftover := r.Tick(100, &events)

	require.True(t, r.IsFinished())
	require.Empty(t, events)
	require.Equal(t, uint32(100), leftover)

	leftover = r.Tick(50, &events)
	require.Equal(t, uint32(50), leftover)
	require.True(t, r.IsFinished())
}

func TestMacroRunnerSourceAndMacroAccessors(t *testing.T) {
	m := testMacro()
	src := MacroSource{Key: 7, Layer: 3}
	r := NewMacroRunner(m, src)

	require.Equal(t, m, r.Macro())
	require.Equal(t, src, r.Source())
}
