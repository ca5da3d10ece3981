package keypad

import "github.com/acrankyturtle/keypad-test/internal/ctrl"

// Config carries KeyboardState's ambient, optional collaborators and
// capacity tunables. The zero Config is valid: NewKeyboardStateWithConfig
// treats a nil Logger/Observer as "disabled" and a zero
// InitialMacroCapacity as "use the engine's default".
type Config struct {
	// Logger receives one Debug message per PressKey on a known key
	// (key ID and number of runners spawned). Stops, finishes and
	// ignored unknown IDs are not logged. Optional.
	Logger Logger

	// Observer receives lifecycle events for metrics collection. A
	// *Metrics satisfies this. Optional.
	Observer Observer

	// InitialMacroCapacity sizes the initial allocation of the live
	// macro-runner slice. Zero means "use the default".
	InitialMacroCapacity int
}

// DefaultConfig returns the zero Config: no logger, no observer, default
// capacities.
func DefaultConfig() Config {
	return Config{}
}

func (c Config) toEngineConfig() ctrl.EngineConfig {
	return ctrl.EngineConfig{InitialMacroCapacity: c.InitialMacroCapacity}.WithDefaults()
}
