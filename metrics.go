package keypad

import "sync/atomic"

// Metrics tracks engine activity using atomic counters, grounded on the
// teacher's metrics.go (same sync/atomic-counter shape, no locking
// needed since each field is independently atomic). Pass *Metrics as
// Config.Observer to wire it into a KeyboardState.
type Metrics struct {
	MacroStarts   atomic.Uint64 // macro runners spawned by PressKey
	MacroStops    atomic.Uint64 // runners told to Stop (release, layer switch, channel cut, or profile update)
	MacroFinishes atomic.Uint64 // runners that completed their End phase and were pruned
	LayerSwitches atomic.Uint64 // keys whose active layer changed
	ChannelCuts   atomic.Uint64 // individual channel-cut stops applied
	Ticks         atomic.Uint64 // Tick calls processed
	EventsEmitted atomic.Uint64 // ActionEvents appended across all ticks

	// LiveMacroHighWater is the largest live-runner count observed across
	// any single Tick call.
	LiveMacroHighWater atomic.Uint64
}

// NewMetrics returns a zeroed Metrics ready to be wired in as a
// Config.Observer.
func NewMetrics() *Metrics {
	return &Metrics{}
}

// ObserveMacroStart implements Observer.
func (m *Metrics) ObserveMacroStart(keyID int64, macroID int64) {
	m.MacroStarts.Add(1)
}

// ObserveMacroStop implements Observer.
func (m *Metrics) ObserveMacroStop(macroID int64) {
	m.MacroStops.Add(1)
}

// ObserveMacroFinish implements Observer.
func (m *Metrics) ObserveMacroFinish(macroID int64) {
	m.MacroFinishes.Add(1)
}

// ObserveLayerSwitch implements Observer.
func (m *Metrics) ObserveLayerSwitch(keyID int64) {
	m.LayerSwitches.Add(1)
}

// ObserveChannelCut implements Observer.
func (m *Metrics) ObserveChannelCut(channel int64) {
	m.ChannelCuts.Add(1)
	m.MacroStops.Add(1)
}

// ObserveTick implements Observer.
func (m *Metrics) ObserveTick(activeRunners int) {
	m.Ticks.Add(1)
	for {
		current := m.LiveMacroHighWater.Load()
		if uint64(activeRunners) <= current {
			return
		}
		if m.LiveMacroHighWater.CompareAndSwap(current, uint64(activeRunners)) {
			return
		}
	}
}

// ObserveEventEmitted implements Observer.
func (m *Metrics) ObserveEventEmitted() {
	m.EventsEmitted.Add(1)
}
