package runner

import (
	"github.com/acrankyturtle/keypad-test/internal/assert"
	"github.com/acrankyturtle/keypad-test/internal/ctrl"
	"github.com/acrankyturtle/keypad-test/internal/interfaces"
	"github.com/acrankyturtle/keypad-test/profile"
)

// keyState is the runtime record for one profile key: a reference to its
// profile key and its currently-active layer body.
type keyState struct {
	key          *profile.DeviceKey
	currentLayer *profile.DeviceKeyLayer
}

// Engine is the orchestration layer binding keys to running macros and
// advancing them on each tick. It is what keypad.KeyboardState delegates
// to; kept in internal/runner so the profile model stays free of any
// dependency on the tick machinery it does not need to expose.
type Engine struct {
	keys     []keyState
	tags     profile.TagSet
	macros   []*MacroRunner
	cfg      ctrl.EngineConfig
	logger   interfaces.Logger
	observer interfaces.Observer
}

// New constructs an Engine from profile. Every key starts on its default
// layer, the tag set starts empty, and no macros are live.
func New(p *profile.Profile, cfg ctrl.EngineConfig, logger interfaces.Logger, observer interfaces.Observer) *Engine {
	cfg = cfg.WithDefaults()
	return &Engine{
		keys:     mapKeysFromProfile(p),
		tags:     profile.NewTagSet(),
		macros:   make([]*MacroRunner, 0, cfg.InitialMacroCapacity),
		cfg:      cfg,
		logger:   logger,
		observer: observer,
	}
}

func mapKeysFromProfile(p *profile.Profile) []keyState {
	keys := make([]keyState, len(p.Keys))
	for i := range p.Keys {
		keys[i] = keyState{key: &p.Keys[i], currentLayer: &p.Keys[i].Default}
	}
	return keys
}

// UpdateProfile rebuilds key-states from the new profile (losing prior
// active-layer memory) and sets every live runner to Stopping. Runners
// are not dropped: they continue running against their original macro
// references and wind down through their End phases on subsequent ticks.
func (e *Engine) UpdateProfile(p *profile.Profile) {
	e.keys = mapKeysFromProfile(p)
	for _, m := range e.macros {
		m.Stop()
		if e.observer != nil {
			e.observer.ObserveMacroStop(int64(m.Macro().ID))
		}
	}
	e.updateLayers()
}

// PressKey spawns one MacroRunner per macro on key_id's current layer,
// cutting any pre-existing runner whose channel is cut by one of the new
// runners' CutChannels first. Unknown key IDs are silently ignored.
func (e *Engine) PressKey(keyID profile.KeyID) {
	idx := e.findKey(keyID)
	if idx < 0 {
		return
	}
	ks := &e.keys[idx]

	newRunners := make([]*MacroRunner, 0, len(ks.currentLayer.Macros))
	cutSet := getChannelSet()
	defer putChannelSet(cutSet)

	for i := range ks.currentLayer.Macros {
		m := &ks.currentLayer.Macros[i]
		runner := NewMacroRunner(m, MacroSource{Key: keyID, Layer: ks.currentLayer.ID})
		newRunners = append(newRunners, runner)
		cutSet = append(cutSet, m.CutChannels...)
		if e.observer != nil {
			e.observer.ObserveMacroStart(int64(keyID), int64(m.ID))
		}
	}

	// Cuts are applied to the existing macro list before the new runners
	// are appended, so a macro that cuts its own channel stops its prior
	// instances while the freshly spawned ones survive.
	e.cutChannels(cutSet)
	e.macros = append(e.macros, newRunners...)

	if e.logger != nil {
		e.logger.Debugf("press_key key=%d spawned=%d", keyID, len(newRunners))
	}
}

// ReleaseKey sets trigger=Stopping on every live runner sourced at
// key_id. Unknown key IDs are silently ignored (there is simply nothing
// to stop).
func (e *Engine) ReleaseKey(keyID profile.KeyID) {
	for _, m := range e.macros {
		if m.Source().Key == keyID {
			m.Stop()
			if e.observer != nil {
				e.observer.ObserveMacroStop(int64(m.Macro().ID))
			}
		}
	}
}

// Tick advances every live runner by deltaMs, in insertion order, then
// prunes runners whose phase is now Finished. Pruning is stable: it
// preserves the relative order of surviving runners, since inter-runner
// event ordering within a tick is part of the contract.
func (e *Engine) Tick(deltaMs uint32, events *[]profile.ActionEvent) {
	before := len(*events)
	for _, m := range e.macros {
		m.Tick(deltaMs, events)
	}
	if e.observer != nil {
		for range (*events)[before:] {
			e.observer.ObserveEventEmitted()
		}
	}

	live := e.macros[:0]
	for _, m := range e.macros {
		if m.IsFinished() {
			if e.observer != nil {
				e.observer.ObserveMacroFinish(int64(m.Macro().ID))
			}
			continue
		}
		live = append(live, m)
	}
	e.macros = live

	for _, m := range e.macros {
		assert.Invariant(!m.IsFinished(), "runner-pruned", "finished runner survived Tick's prune (macro=%d)", m.Macro().ID)
	}

	if e.observer != nil {
		e.observer.ObserveTick(len(e.macros))
	}
}

// AddInternalTags appends tags to the internal bucket and re-resolves
// every key's active layer.
func (e *Engine) AddInternalTags(tags []profile.LayerTag) {
	e.tags.AddManyInternal(tags)
	e.updateLayers()
}

// RemoveInternalTags removes the first occurrence of each tag from the
// internal bucket and re-resolves every key's active layer.
func (e *Engine) RemoveInternalTags(tags []profile.LayerTag) {
	e.tags.RemoveManyInternal(tags)
	e.updateLayers()
}

// SetExternalTags atomically replaces the external bucket and
// re-resolves every key's active layer.
func (e *Engine) SetExternalTags(tags []profile.LayerTag) {
	e.tags.SetExternal(tags)
	e.updateLayers()
}

// updateLayers recomputes each key's active layer from the current tag
// set. Any live runner whose source layer no longer matches a changed
// key's new active layer is set to Stopping.
func (e *Engine) updateLayers() {
	for i := range e.keys {
		ks := &e.keys[i]
		newLayer := ks.key.ActiveLayer(&e.tags)

		if ks.currentLayer.ID == newLayer.ID {
			continue
		}

		for _, m := range e.macros {
			if m.Source().Key == ks.key.KeyID && m.Source().Layer != newLayer.ID {
				m.Stop()
				if e.observer != nil {
					e.observer.ObserveMacroStop(int64(m.Macro().ID))
				}
			}
		}
		if e.observer != nil {
			e.observer.ObserveLayerSwitch(int64(ks.key.KeyID))
		}
		ks.currentLayer = newLayer
	}
}

// cutChannels stops every live runner whose macro plays on one of
// channels. Runners with no PlayChannel are never cut.
func (e *Engine) cutChannels(channels []profile.Channel) {
	for _, m := range e.macros {
		playChannel := m.Macro().PlayChannel
		if playChannel == nil {
			continue
		}
		if !containsChannel(channels, *playChannel) {
			continue
		}
		m.Stop()
		if e.observer != nil {
			e.observer.ObserveChannelCut(int64(*playChannel))
		}
	}
}

func (e *Engine) findKey(keyID profile.KeyID) int {
	for i := range e.keys {
		if e.keys[i].key.KeyID == keyID {
			return i
		}
	}
	return -1
}

func containsChannel(channels []profile.Channel, c profile.Channel) bool {
	for _, existing := range channels {
		if existing == c {
			return true
		}
	}
	return false
}

// Macros exposes the live runner list for tests and for KeyboardState's
// observability helpers. Callers must not mutate the returned slice.
func (e *Engine) Macros() []*MacroRunner { return e.macros }
