// Package interfaces holds small internal-only contracts shared between
// the root keypad package and internal/runner, broken out to avoid an
// import cycle (the root package wires a Logger/Observer into the
// runner engine it owns).
package interfaces

// Logger is the subset of internal/logging.Logger's surface the runner
// engine needs. A nil Logger is valid and must never be called.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Observer receives engine lifecycle events for metrics collection.
// Implementations must be safe to call from Engine.Tick, which is not
// itself concurrency-safe but may be invoked from different goroutines
// across the engine's lifetime (never concurrently). A nil Observer is
// valid and must never be called.
type Observer interface {
	ObserveMacroStart(keyID int64, macroID int64)
	ObserveMacroStop(macroID int64)
	ObserveMacroFinish(macroID int64)
	ObserveLayerSwitch(keyID int64)
	ObserveChannelCut(channel int64)
	ObserveTick(activeRunners int)
	ObserveEventEmitted()
}
