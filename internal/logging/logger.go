// Package logging provides simple, leveled logging for the keypad engine.
// It exists purely for diagnostics: the engine never consults its own
// logger to make a decision, and a nil/default logger must stay on the
// zero-allocation path during tick().
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
)

// LogLevel represents the available log levels.
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

// Config holds logging configuration.
type Config struct {
	Level   LogLevel
	Format  string // "text" (default) or "json"
	Output  io.Writer
	Sync    bool // reserved for parity with the pack's logging configs; this logger is always synchronous
	NoColor bool
}

// DefaultConfig returns a sensible default configuration.
func DefaultConfig() *Config {
	return &Config{
		Level:  LevelInfo,
		Format: "text",
		Output: os.Stderr,
	}
}

// Logger wraps stdlib log with level support and a small set of
// structured fields carried via With* chaining.
type Logger struct {
	logger *log.Logger
	level  LogLevel
	format string
	fields []field
	mu     *sync.Mutex
}

type field struct {
	key   string
	value any
}

var (
	defaultLogger *Logger
	defaultMu     sync.RWMutex
)

// NewLogger creates a new logger from config, filling in defaults for any
// zero-valued field.
func NewLogger(config *Config) *Logger {
	if config == nil {
		config = DefaultConfig()
	}
	output := config.Output
	if output == nil {
		output = os.Stderr
	}
	format := config.Format
	if format == "" {
		format = "text"
	}
	return &Logger{
		logger: log.New(output, "", log.LstdFlags),
		level:  config.Level,
		format: format,
		mu:     &sync.Mutex{},
	}
}

// Default returns the default logger, creating it if necessary.
func Default() *Logger {
	defaultMu.RLock()
	if defaultLogger != nil {
		defer defaultMu.RUnlock()
		return defaultLogger
	}
	defaultMu.RUnlock()

	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultLogger == nil {
		defaultLogger = NewLogger(nil)
	}
	return defaultLogger
}

// SetDefault overrides the package-level default logger.
func SetDefault(logger *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = logger
}

// WithField returns a derived logger carrying an additional structured
// field. The receiver is left unmodified.
func (l *Logger) WithField(key string, value any) *Logger {
	derived := *l
	derived.fields = append(append([]field{}, l.fields...), field{key, value})
	return &derived
}

// WithKey is a convenience wrapper for WithField("key_id", ...).
func (l *Logger) WithKey(keyID int64) *Logger { return l.WithField("key_id", keyID) }

// WithMacro is a convenience wrapper for WithField("macro_id", ...).
func (l *Logger) WithMacro(macroID int64) *Logger { return l.WithField("macro_id", macroID) }

// WithError is a convenience wrapper for WithField("error", ...).
func (l *Logger) WithError(err error) *Logger { return l.WithField("error", err) }

func (l *Logger) formatFields() string {
	if len(l.fields) == 0 {
		return ""
	}
	var b strings.Builder
	for _, f := range l.fields {
		b.WriteByte(' ')
		if l.format == "json" {
			fmt.Fprintf(&b, "%q:%q", f.key, fmt.Sprintf("%v", f.value))
		} else {
			fmt.Fprintf(&b, "%s=%v", f.key, f.value)
		}
	}
	return b.String()
}

func formatArgs(args []any) string {
	if len(args) == 0 {
		return ""
	}
	var result string
	for i := 0; i < len(args); i += 2 {
		if i+1 < len(args) {
			if result != "" {
				result += " "
			}
			result += fmt.Sprintf("%v=%v", args[i], args[i+1])
		}
	}
	if result != "" {
		return " " + result
	}
	return ""
}

func (l *Logger) log(level LogLevel, prefix, msg string, args ...any) {
	if level < l.level {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logger.Printf("%s %s%s%s", prefix, msg, formatArgs(args), l.formatFields())
}

func (l *Logger) Debug(msg string, args ...any) { l.log(LevelDebug, "[DEBUG]", msg, args...) }
func (l *Logger) Info(msg string, args ...any)  { l.log(LevelInfo, "[INFO]", msg, args...) }
func (l *Logger) Warn(msg string, args ...any)  { l.log(LevelWarn, "[WARN]", msg, args...) }
func (l *Logger) Error(msg string, args ...any) { l.log(LevelError, "[ERROR]", msg, args...) }

// Debugf/Infof/Warnf/Errorf give printf-style logging, matching
// internal/interfaces.Logger.
func (l *Logger) Debugf(format string, args ...any) {
	l.log(LevelDebug, "[DEBUG]", fmt.Sprintf(format, args...))
}
func (l *Logger) Infof(format string, args ...any) {
	l.log(LevelInfo, "[INFO]", fmt.Sprintf(format, args...))
}
func (l *Logger) Warnf(format string, args ...any) {
	l.log(LevelWarn, "[WARN]", fmt.Sprintf(format, args...))
}
func (l *Logger) Errorf(format string, args ...any) {
	l.log(LevelError, "[ERROR]", fmt.Sprintf(format, args...))
}

// Global convenience functions against the package default logger.
func Debug(msg string, args ...any) { Default().Debug(msg, args...) }
func Info(msg string, args ...any)  { Default().Info(msg, args...) }
func Warn(msg string, args ...any)  { Default().Warn(msg, args...) }
func Error(msg string, args ...any) { Default().Error(msg, args...) }
