// Package logging builds leveled zap loggers from an explicit Config and
// carries them through a context.Context. There is no mutable global
// verbosity: the only process-wide state is a default logger that
// SetDefault installs once at startup.
package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Level int8

const (
	ErrorLevel Level = iota
	WarningLevel
	InfoLevel
	DebugLevel
	TraceLevel
)

// TraceZapLevel is the zap level used for TraceLevel; zap has nothing below
// Debug.
const TraceZapLevel = zapcore.DebugLevel - 1

func (l Level) String() string {
	switch l {
	case ErrorLevel:
		return "error"
	case WarningLevel:
		return "warning"
	case InfoLevel:
		return "info"
	case DebugLevel:
		return "debug"
	case TraceLevel:
		return "trace"
	}
	return fmt.Sprintf("Level(%d)", int8(l))
}

// ParseLevel accepts the names produced by Level.String, case-insensitively.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "error", "e":
		return ErrorLevel, nil
	case "warning", "warn", "w":
		return WarningLevel, nil
	case "info", "i":
		return InfoLevel, nil
	case "debug", "d":
		return DebugLevel, nil
	case "trace", "t":
		return TraceLevel, nil
	}
	return 0, fmt.Errorf("unknown log level %q", s)
}

func (l Level) zap() zapcore.Level {
	switch l {
	case ErrorLevel:
		return zapcore.ErrorLevel
	case WarningLevel:
		return zapcore.WarnLevel
	case InfoLevel:
		return zapcore.InfoLevel
	case DebugLevel:
		return zapcore.DebugLevel
	}
	return TraceZapLevel
}

// Config describes a logger. Errors go to ErrOutput, everything else to
// Output.
type Config struct {
	// Level is the most verbose level that is emitted.
	Level Level
	// Silent discards everything.
	Silent    bool
	Color     bool
	Output    io.Writer
	ErrOutput io.Writer
}

func DefaultConfig() Config {
	return Config{
		Level:     DebugLevel,
		Output:    os.Stdout,
		ErrOutput: os.Stderr,
	}
}

// Build returns a logger for c. Lines look like
//
//	18/10/2026 14:03:07.123456 [I] worker.go:42: started
func (c Config) Build() *zap.SugaredLogger {
	if c.Silent {
		return zap.NewNop().Sugar()
	}

	out, errOut := c.Output, c.ErrOutput
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}

	encoder := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		TimeKey:          "T",
		LevelKey:         "L",
		CallerKey:        "C",
		MessageKey:       "M",
		LineEnding:       zapcore.DefaultLineEnding,
		EncodeTime:       zapcore.TimeEncoderOfLayout("02/01/2006 15:04:05.000000"),
		EncodeLevel:      letterLevelEncoder(c.Color),
		EncodeCaller:     baseCallerEncoder,
		EncodeDuration:   zapcore.StringDurationEncoder,
		ConsoleSeparator: " ",
	})

	minLevel := c.Level.zap()
	core := zapcore.NewTee(
		zapcore.NewCore(encoder, zapcore.Lock(zapcore.AddSync(errOut)),
			zap.LevelEnablerFunc(func(l zapcore.Level) bool {
				return l >= zapcore.ErrorLevel && l >= minLevel
			})),
		zapcore.NewCore(encoder, zapcore.Lock(zapcore.AddSync(out)),
			zap.LevelEnablerFunc(func(l zapcore.Level) bool {
				return l < zapcore.ErrorLevel && l >= minLevel
			})),
	)
	return zap.New(core, zap.AddCaller()).Sugar()
}

var letters = map[zapcore.Level]struct{ letter, color string }{
	zapcore.ErrorLevel: {"E", "\x1b[31m"},
	zapcore.WarnLevel:  {"W", "\x1b[33m"},
	zapcore.InfoLevel:  {"I", "\x1b[32m"},
	zapcore.DebugLevel: {"D", "\x1b[36m"},
	TraceZapLevel:      {"T", ""},
}

func letterLevelEncoder(color bool) zapcore.LevelEncoder {
	return func(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
		m, ok := letters[l]
		if !ok {
			m.letter, m.color = "U", "\x1b[35m"
		}
		if color && m.color != "" {
			enc.AppendString("[" + m.color + m.letter + "\x1b[0m]")
			return
		}
		enc.AppendString("[" + m.letter + "]")
	}
}

func baseCallerEncoder(caller zapcore.EntryCaller, enc zapcore.PrimitiveArrayEncoder) {
	if !caller.Defined {
		enc.AppendString("undefined:")
		return
	}
	enc.AppendString(fmt.Sprintf("%s:%d:", filepath.Base(caller.File), caller.Line))
}

type ctxKey struct{}

// WithLogger returns a copy of ctx carrying l.
func WithLogger(ctx context.Context, l *zap.SugaredLogger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext returns the logger carried by ctx, or the default logger.
func FromContext(ctx context.Context) *zap.SugaredLogger {
	if l, ok := ctx.Value(ctxKey{}).(*zap.SugaredLogger); ok && l != nil {
		return l
	}
	return Default()
}

var (
	defaultOnce   sync.Once
	defaultLogger atomic.Pointer[zap.SugaredLogger]
)

// Default returns the process-wide logger; DefaultConfig until SetDefault.
func Default() *zap.SugaredLogger {
	if l := defaultLogger.Load(); l != nil {
		return l
	}
	l := DefaultConfig().Build()
	defaultLogger.CompareAndSwap(nil, l)
	return defaultLogger.Load()
}

// SetDefault installs the process-wide logger. Only the first call has an
// effect; it reports whether this call was the one applied.
func SetDefault(l *zap.SugaredLogger) bool {
	applied := false
	defaultOnce.Do(func() {
		defaultLogger.Store(l)
		applied = true
	})
	return applied
}

// Tracef logs at TraceLevel.
func Tracef(l *zap.SugaredLogger, template string, args ...interface{}) {
	if ce := l.Desugar().WithOptions(zap.AddCallerSkip(1)).Check(TraceZapLevel, fmt.Sprintf(template, args...)); ce != nil {
		ce.Write()
	}
}
