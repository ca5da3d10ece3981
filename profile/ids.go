// Package profile holds the declarative, read-only description of a
// keyboard: keys, their tagged layers, and the macros those layers run.
// Values in this package are built once by the firmware integrator and
// then only read — nothing here mutates after construction.
package profile

// KeyID identifies a physical or logical device key. It is opaque: two
// IDs are either exactly equal or unrelated, there is no ordering.
type KeyID int64

// LayerID identifies a layer body, unique within the DeviceKey that owns
// it (not globally unique).
type LayerID int64

// MacroID identifies a macro, unique within the DeviceKeyLayer that owns
// it.
type MacroID int64

// Channel groups macros for mutual-exclusion cuts. See Macro.PlayChannel
// and Macro.CutChannels.
type Channel int64

// LayerTag is an opaque, host- or engine-defined label used in layer
// match predicates.
type LayerTag string
