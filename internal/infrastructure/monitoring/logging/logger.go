// Package logging defines the structured logging contract the compliance
// engine's components are built against, backed by zap.  Services, stores
// and the HTTP layer receive a Logger by constructor injection; zap types
// stay confined to this package.
package logging

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Field is a typed key-value pair attached to a log entry.  The engine logs
// a small, fixed vocabulary of value kinds (markets, scores, latencies,
// errors), so only constructors for those kinds are provided.
type Field struct {
	Key   string
	Value interface{}
}

// String builds a string-valued Field (market names, rule IDs, risk levels).
func String(key, val string) Field { return Field{Key: key, Value: val} }

// Int builds an int-valued Field (scores, counts, ports, HTTP status).
func Int(key string, val int) Field { return Field{Key: key, Value: val} }

// Duration builds a duration-valued Field (validation and request latency).
func Duration(key string, val time.Duration) Field { return Field{Key: key, Value: val} }

// Err builds the canonical "error" Field.  A nil err is rendered as "<nil>"
// so degraded-path log lines stay greppable.
func Err(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: "<nil>"}
	}
	return Field{Key: "error", Value: err.Error()}
}

// Logger is the logging contract injected into every engine component.
// Implementations must be safe for concurrent use.
type Logger interface {
	// Debug records high-volume diagnostic detail (per-rule matches,
	// cache hits).  Disabled in production by running at info level.
	Debug(msg string, fields ...Field)

	// Info records routine operational events (validations completed,
	// server lifecycle).
	Info(msg string, fields ...Field)

	// Warn records recoverable degradation (a market that could not be
	// evaluated, a publish that was skipped).
	Warn(msg string, fields ...Field)

	// Error records failures that abort a request or operation.
	Error(msg string, fields ...Field)

	// With returns a child Logger carrying the given fields on every
	// entry.  The receiver is unchanged.
	With(fields ...Field) Logger

	// Named returns a child Logger with name appended to the receiver's
	// name ("engine" becomes "engine.realtime").
	Named(name string) Logger
}

// LogConfig holds the logger construction parameters, populated from the
// log section of the engine configuration.
type LogConfig struct {
	// Level is the minimum severity emitted: "debug", "info", "warn" or
	// "error".  Unrecognized or empty values mean "info".
	Level string

	// Format is "json" for aggregation pipelines or "console" for local
	// development.  Anything else means "json".
	Format string

	// OutputPaths lists sinks for log entries; "stdout" and "stderr" are
	// special values.  Nil means stdout.
	OutputPaths []string

	// ErrorOutputPaths lists sinks for zap's own internal errors.  Nil
	// means stderr.
	ErrorOutputPaths []string
}

// zapLogger adapts a *zap.Logger to the Logger interface, translating the
// Field slice on each call.
type zapLogger struct {
	z *zap.Logger
}

func toZapFields(fields []Field) []zap.Field {
	out := make([]zap.Field, 0, len(fields))
	for _, f := range fields {
		switch v := f.Value.(type) {
		case string:
			out = append(out, zap.String(f.Key, v))
		case int:
			out = append(out, zap.Int(f.Key, v))
		case time.Duration:
			out = append(out, zap.Duration(f.Key, v))
		case error:
			out = append(out, zap.NamedError(f.Key, v))
		default:
			out = append(out, zap.Any(f.Key, v))
		}
	}
	return out
}

func (l *zapLogger) Debug(msg string, fields ...Field) { l.z.Debug(msg, toZapFields(fields)...) }
func (l *zapLogger) Info(msg string, fields ...Field)  { l.z.Info(msg, toZapFields(fields)...) }
func (l *zapLogger) Warn(msg string, fields ...Field)  { l.z.Warn(msg, toZapFields(fields)...) }
func (l *zapLogger) Error(msg string, fields ...Field) { l.z.Error(msg, toZapFields(fields)...) }

func (l *zapLogger) With(fields ...Field) Logger {
	return &zapLogger{z: l.z.With(toZapFields(fields)...)}
}

func (l *zapLogger) Named(name string) Logger {
	return &zapLogger{z: l.z.Named(name)}
}

// parseLevel maps a config level string to a zap level, defaulting to info
// so a typo in config never silences the engine.
func parseLevel(s string) zapcore.Level {
	switch s {
	case "debug", "DEBUG":
		return zapcore.DebugLevel
	case "warn", "WARN":
		return zapcore.WarnLevel
	case "error", "ERROR":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// NewLogger builds a zap-backed Logger from cfg.  Unset fields fall back to
// info level, JSON encoding, stdout and stderr.
func NewLogger(cfg LogConfig) (Logger, error) {
	if len(cfg.OutputPaths) == 0 {
		cfg.OutputPaths = []string{"stdout"}
	}
	if len(cfg.ErrorOutputPaths) == 0 {
		cfg.ErrorOutputPaths = []string{"stderr"}
	}

	encoding := "json"
	encCfg := zap.NewProductionEncoderConfig()
	if cfg.Format == "console" {
		encoding = "console"
		encCfg = zap.NewDevelopmentEncoderConfig()
	}
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	zapCfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(parseLevel(cfg.Level)),
		Development:      cfg.Format == "console",
		Encoding:         encoding,
		EncoderConfig:    encCfg,
		OutputPaths:      cfg.OutputPaths,
		ErrorOutputPaths: cfg.ErrorOutputPaths,
	}

	z, err := zapCfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, fmt.Errorf("logging: build logger: %w", err)
	}
	return &zapLogger{z: z}, nil
}

// NewLoggerFromCore wraps an existing zapcore.Core.  Tests use this with
// zaptest/observer to assert on emitted entries.
func NewLoggerFromCore(core zapcore.Core) Logger {
	return &zapLogger{z: zap.New(core, zap.AddCallerSkip(1))}
}

type nopLogger struct{}

func (nopLogger) Debug(_ string, _ ...Field) {}
func (nopLogger) Info(_ string, _ ...Field)  {}
func (nopLogger) Warn(_ string, _ ...Field)  {}
func (nopLogger) Error(_ string, _ ...Field) {}
func (n nopLogger) With(_ ...Field) Logger   { return n }
func (n nopLogger) Named(_ string) Logger    { return n }

// NewNopLogger returns a Logger that discards everything.  Unit tests and
// the offline CLI use it.
func NewNopLogger() Logger { return nopLogger{} }

var (
	defaultMu     sync.RWMutex
	defaultLogger Logger = nopLogger{}
)

// SetDefault replaces the process-wide default Logger.  Called once from
// main after configuration is loaded; nil is ignored.
func SetDefault(l Logger) {
	if l == nil {
		return
	}
	defaultMu.Lock()
	defaultLogger = l
	defaultMu.Unlock()
}

// Default returns the process-wide default Logger.  Constructor injection
// is preferred; Default exists for code with no injection path.
func Default() Logger {
	defaultMu.RLock()
	l := defaultLogger
	defaultMu.RUnlock()
	return l
}
