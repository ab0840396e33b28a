package logger

import (
	"io"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options describes logger configuration supplied at creation time.
type Options struct {
	Level         string
	HumanReadable bool
	Writer        io.Writer
	// Component is stamped on every entry when set.
	Component string
	// NoTimestamp omits the time field, which keeps output stable in tests.
	NoTimestamp bool
	// NoColor disables ANSI colors in human readable output.
	NoColor bool
}

// Logger wraps zerolog for widgets and the CLI. A nil *Logger is valid and discards
// everything, so widgets can take an optional logger without guarding each call.
type Logger struct {
	base zerolog.Logger
}

// New creates a configured Logger instance based on Options.
func New(opts Options) (*Logger, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, err
		}
		level = parsed
	}

	var output io.Writer = writer
	if opts.HumanReadable {
		console := zerolog.NewConsoleWriter()
		console.Out = writer
		console.TimeFormat = time.Kitchen
		console.NoColor = opts.NoColor
		output = console
	}

	ctx := zerolog.New(output).Level(level).With()
	if !opts.NoTimestamp {
		ctx = ctx.Timestamp()
	}
	if opts.Component != "" {
		ctx = ctx.Str("component", opts.Component)
	}
	return &Logger{base: ctx.Logger()}, nil
}

// Nop returns a logger that writes nothing.
func Nop() *Logger {
	return &Logger{base: zerolog.Nop()}
}

// WithFields returns a derived logger that always writes the supplied fields.
// Fields are added in key order.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	if l == nil {
		return nil
	}

	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	builder := l.base.With()
	for _, key := range keys {
		builder = builder.Interface(key, fields[key])
	}

	derived := Logger{base: builder.Logger()}
	return &derived
}

// With returns a derived logger carrying a single extra field.
func (l *Logger) With(key string, value any) *Logger {
	if l == nil {
		return nil
	}
	derived := Logger{base: l.base.With().Interface(key, value).Logger()}
	return &derived
}

// Component tags entries with the widget or command producing them.
func (l *Logger) Component(name string) *Logger {
	return l.With("component", name)
}

// DebugEnabled reports whether debug entries are written.
func (l *Logger) DebugEnabled() bool {
	if l == nil {
		return false
	}
	return l.base.GetLevel() <= zerolog.DebugLevel
}

// Info writes an informational log entry.
func (l *Logger) Info(msg string) {
	if l == nil {
		return
	}
	l.base.Info().Msg(msg)
}

// Debug writes a debug-level log entry if enabled.
func (l *Logger) Debug(msg string) {
	if l == nil {
		return
	}
	l.base.Debug().Msg(msg)
}

// Warn writes a warning level log entry.
func (l *Logger) Warn(msg string) {
	if l == nil {
		return
	}
	l.base.Warn().Msg(msg)
}

// Error writes an error log entry including the supplied error context.
func (l *Logger) Error(err error, msg string) {
	if l == nil {
		return
	}
	event := l.base.Error()
	if err != nil {
		event = event.Err(err)
	}
	event.Msg(msg)
}
