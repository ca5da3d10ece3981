package keypad

// Builder helpers for assembling Profiles in test code and small demo
// programs without hand-nesting the full struct literal tree every
// time. Each function fills in only what it's asked for and leaves the
// rest at its zero value.

// NewAction builds an Action with the given pre-delay and event.
func NewAction(predelayMs uint32, event ActionEvent) Action {
	return Action{PredelayMs: predelayMs, Event: event}
}

// NewSequence builds a Sequence from a list of actions.
func NewSequence(actions ...Action) Sequence {
	return Sequence{Actions: actions}
}

// NewMacro builds a Macro with no channel play/cut wiring. Use the
// WithPlayChannel/WithCutChannels helpers to add those.
func NewMacro(id MacroID, name string, start, loop, end Sequence) Macro {
	return Macro{
		ID:           id,
		Name:         name,
		Start:        start,
		LoopSequence: loop,
		End:          end,
	}
}

// WithPlayChannel returns a copy of m with PlayChannel set.
func WithPlayChannel(m Macro, ch Channel) Macro {
	m.PlayChannel = &ch
	return m
}

// WithCutChannels returns a copy of m with CutChannels set.
func WithCutChannels(m Macro, channels ...Channel) Macro {
	m.CutChannels = channels
	return m
}

// NewDeviceKeyLayer builds a DeviceKeyLayer from a list of macros.
func NewDeviceKeyLayer(id LayerID, macros ...Macro) DeviceKeyLayer {
	return DeviceKeyLayer{ID: id, Macros: macros}
}

// NewTaggedLayer builds a TaggedDeviceKeyLayer requiring all of tags to
// be present (MatchAll).
func NewTaggedLayer(layer DeviceKeyLayer, tags ...LayerTag) TaggedDeviceKeyLayer {
	return TaggedDeviceKeyLayer{Layer: layer, Tags: tags, Match: MatchAll}
}

// NewTaggedLayerAny builds a TaggedDeviceKeyLayer matching if any of
// tags is present (MatchAny).
func NewTaggedLayerAny(layer DeviceKeyLayer, tags ...LayerTag) TaggedDeviceKeyLayer {
	return TaggedDeviceKeyLayer{Layer: layer, Tags: tags, Match: MatchAny}
}

// NewDeviceKey builds a DeviceKey with a default layer and, optionally,
// a set of tagged layers checked before it.
func NewDeviceKey(keyID KeyID, defaultLayer DeviceKeyLayer, tagged ...TaggedDeviceKeyLayer) DeviceKey {
	return DeviceKey{KeyID: keyID, Layers: tagged, Default: defaultLayer}
}

// NewTestProfile builds a Profile from a list of keys.
func NewTestProfile(keys ...DeviceKey) *Profile {
	return &Profile{Keys: keys}
}
