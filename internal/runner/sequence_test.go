package runner

import (
	"testing"

	"github.com/acrankyturtle/keypad-test/profile"
	"github.com/stretchr/testify/require"
)

func evt(n uint8) profile.ActionEvent {
	return profile.KeyboardDown(profile.KeyboardKey(n))
}

func TestSequenceRunnerAccumulatesElapsedTime(t *testing.T) {
	seq := &profile.Sequence{Actions: []profile.Action{{PredelayMs: 100, Event: evt(0)}}}
	r := NewSequenceRunner(seq, 0)

	var events []profile.ActionEvent
	leftover := r.Tick(40, &events)

	require.Equal(t, uint32(0), leftover)
	require.Empty(t, events)
	require.False(t, r.IsFinished())
}

func TestSequenceRunnerDoesNotPopWhileAccumulating(t *testing.T) {
	seq := &profile.Sequence{Actions: []profile.Action{{PredelayMs: 100, Event: evt(0)}}}
	r := NewSequenceRunner(seq, 0)

	var events []profile.ActionEvent
	r.Tick(40, &events)
	r.Tick(40, &events)

	require.Empty(t, events)
	require.False(t, r.IsFinished())
}

func TestSequenceRunnerPopsActionOnceDelayCovered(t *testing.T) {
	seq := &profile.Sequence{Actions: []profile.Action{{PredelayMs: 100, Event: evt(0)}}}
	r := NewSequenceRunner(seq, 0)

	var events []profile.ActionEvent
	leftover := r.Tick(100, &events)

	require.Equal(t, uint32(0), leftover)
	require.Equal(t, []profile.ActionEvent{evt(0)}, events)
	require.True(t, r.IsFinished())
}

func TestSequenceRunnerFinishesAndReturnsLeftover(t *testing.T) {
	seq := &profile.Sequence{Actions: []profile.Action{{PredelayMs: 100, Event: evt(0)}}}
	r := NewSequenceRunner(seq, 0)

	var events []profile.ActionEvent
	leftover := r.Tick(150, &events)

	require.Equal(t, uint32(50), leftover)
	require.True(t, r.IsFinished())
}

func TestSequenceRunnerPopsZeroDelayActionImmediately(t *testing.T) {
	seq := &profile.Sequence{Actions: []profile.Action{{PredelayMs: 0, Event: evt(0)}}}
	r := NewSequenceRunner(seq, 0)

	var events []profile.ActionEvent
	leftover := r.Tick(0, &events)

	require.Equal(t, uint32(0), leftover)
	require.Equal(t, []profile.ActionEvent{evt(0)}, events)
	require.True(t, r.IsFinished())
}

func TestSequenceRunnerPopsMultipleActionsInOneTick(t *testing.T) {
	seq := &profile.Sequence{Actions: []profile.Action{
		{PredelayMs: 10, Event: evt(0)},
		{PredelayMs: 10, Event: evt(1)},
		{PredelayMs: 10, Event: evt(2)},
	}}
	r := NewSequenceRunner(seq, 0)

	var events []profile.ActionEvent
	leftover := r.Tick(1000, &events)

	require.Equal(t, uint32(970), leftover)
	require.Equal(t, []profile.ActionEvent{evt(0), evt(1), evt(2)}, events)
	require.True(t, r.IsFinished())
}

func TestSequenceRunnerEventsAreInOrder(t *testing.T) {
	seq := &profile.Sequence{Actions: []profile.Action{
		{PredelayMs: 5, Event: evt(2)},
		{PredelayMs: 5, Event: evt(1)},
		{PredelayMs: 5, Event: evt(0)},
	}}
	r := NewSequenceRunner(seq, 0)

	var events []profile.ActionEvent
	r.Tick(15, &events)

	require.Equal(t, []profile.ActionEvent{evt(2), evt(1), evt(0)}, events)
}

func TestSequenceRunnerEmptySequenceIsBornFinished(t *testing.T) {
	seq := &profile.Sequence{}
	r := NewSequenceRunner(seq, 0)
	require.True(t, r.IsFinished())

	var events []profile.ActionEvent
	leftover := r.Tick(50, &events)
	require.Equal(t, uint32(50), leftover)
	require.Empty(t, events)
}

func TestSequenceRunnerCarriesForwardSeedElapsed(t *testing.T) {
	seq := &profile.Sequence{Actions: []profile.Action{{PredelayMs: 10, Event: evt(0)}}}
	r := NewSequenceRunner(seq, 10)

	var events []profile.ActionEvent
	leftover := r.Tick(0, &events)

	require.Equal(t, uint32(0), leftover)
	require.Equal(t, []profile.ActionEvent{evt(0)}, events)
}
