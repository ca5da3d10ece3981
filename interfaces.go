package keypad

import "github.com/acrankyturtle/keypad-test/internal/interfaces"

// Logger is the diagnostic sink KeyboardState logs to. internal/logging.Logger
// satisfies it; so does any other leveled logger with this shape. A nil
// Logger is valid (the default) and disables logging entirely.
type Logger = interfaces.Logger

// Observer receives engine lifecycle events for metrics collection.
// *Metrics satisfies it. A nil Observer is valid (the default) and
// disables metrics collection entirely.
type Observer = interfaces.Observer
