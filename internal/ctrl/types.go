// Package ctrl holds the engine's control-plane configuration: the
// handful of tunables a firmware integrator can adjust, separate from
// the hot-path runner logic in internal/runner.
package ctrl

import "github.com/acrankyturtle/keypad-test/internal/constants"

// EngineConfig carries the capacity hints an Engine is constructed with.
// There is no notion of required fields: a zero-valued EngineConfig is
// replaced field-by-field with DefaultEngineConfig's values wherever a
// field is left at zero.
type EngineConfig struct {
	// InitialMacroCapacity sizes the initial allocation of the live
	// macro-runner slice.
	InitialMacroCapacity int
}

// DefaultEngineConfig returns the engine's default tunables.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		InitialMacroCapacity: constants.DefaultMacroCapacity,
	}
}

// WithDefaults fills any zero-valued field of cfg from
// DefaultEngineConfig, returning the merged result.
func (cfg EngineConfig) WithDefaults() EngineConfig {
	defaults := DefaultEngineConfig()
	if cfg.InitialMacroCapacity <= 0 {
		cfg.InitialMacroCapacity = defaults.InitialMacroCapacity
	}
	return cfg
}
