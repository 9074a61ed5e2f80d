package logger

import (
	"fmt"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

// Logger is the logging surface used across the playgrounds. It is
// satisfied by a wrapped *zap.SugaredLogger.
//
// Loggers should be injected and Named per component, e.g. lggr.Named("parser").
// Tests should use [Test] or [TestObserved]; [New] is for the CLI.
type Logger interface {
	// Name returns the fully qualified name of the logger.
	Name() string
	// Named returns a child logger with name appended.
	Named(name string) Logger
	// With returns a child logger carrying the given key/value pairs.
	With(keysAndValues ...any) Logger

	Debug(args ...any)
	Info(args ...any)
	Warn(args ...any)
	Error(args ...any)

	Debugf(format string, values ...any)
	Infof(format string, values ...any)
	Warnf(format string, values ...any)
	Errorf(format string, values ...any)

	Debugw(msg string, keysAndValues ...any)
	Infow(msg string, keysAndValues ...any)
	Warnw(msg string, keysAndValues ...any)
	Errorw(msg string, keysAndValues ...any)

	// Sync flushes any buffered log entries.
	Sync() error
}

// Config selects level and encoding ("console" or "json").
type Config struct {
	Level    string
	Encoding string
}

// New returns a Logger writing to stderr.
func New(c Config) (Logger, error) {
	lvl := zapcore.WarnLevel
	if c.Level != "" {
		parsed, err := zapcore.ParseLevel(c.Level)
		if err != nil {
			return nil, fmt.Errorf("log level: %w", err)
		}
		lvl = parsed
	}
	enc := c.Encoding
	if enc == "" {
		enc = "console"
	}
	if enc != "console" && enc != "json" {
		return nil, fmt.Errorf("log encoding: unknown %q", enc)
	}

	return NewWith(func(cfg *zap.Config) {
		cfg.Level.SetLevel(lvl)
		cfg.Encoding = enc
		if enc == "console" {
			cfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
		}
	})
}

// NewWith returns a new Logger from a modified [zap.Config].
func NewWith(cfgFn func(*zap.Config)) (Logger, error) {
	cfg := zap.NewProductionConfig()
	cfgFn(&cfg)
	core, err := cfg.Build()
	if err != nil {
		return nil, err
	}

	return &logger{core.Sugar()}, nil
}

// Test returns a new test Logger for tb.
func Test(tb testing.TB) Logger {
	tb.Helper()
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000000000")
	lggr := zap.New(
		zapcore.NewCore(
			zapcore.NewConsoleEncoder(cfg),
			zaptest.NewTestingWriter(tb),
			zapcore.DebugLevel,
		),
	)

	return &logger{lggr.Sugar()}
}

// TestObserved returns a new test Logger for tb and ObservedLogs at the given Level.
func TestObserved(tb testing.TB, lvl zapcore.Level) (Logger, *observer.ObservedLogs) {
	tb.Helper()
	oCore, logs := observer.New(lvl)
	observe := zap.WrapCore(func(c zapcore.Core) zapcore.Core {
		return zapcore.NewTee(c, oCore)
	})

	return &logger{zaptest.NewLogger(tb, zaptest.WrapOptions(observe, zap.AddCaller())).Sugar()}, logs
}

// Nop returns a no-op Logger.
func Nop() Logger {
	return &logger{zap.New(zapcore.NewNopCore()).Sugar()}
}

type logger struct {
	*zap.SugaredLogger
}

func (l *logger) Name() string {
	return l.Desugar().Name()
}

func (l *logger) Named(name string) Logger {
	return &logger{l.SugaredLogger.Named(name)}
}

func (l *logger) With(keysAndValues ...any) Logger {
	return &logger{l.SugaredLogger.With(keysAndValues...)}
}
