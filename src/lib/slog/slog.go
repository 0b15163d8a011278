package slog

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DebugLevel controls how chatty the debug logs are. Higher levels
// include the lower ones.
type DebugLevel int

const (
	DL1 DebugLevel = iota + 1
	DL2
	DL3
)

// Config is the logger configuration.
type Config struct {
	// Disabled turns off all logs. Used in tests.
	Disabled bool

	// Colorful switches to a human readable console encoder.
	Colorful bool

	// Debug is the maximum debug level that is printed. Zero disables
	// debug logs entirely.
	Debug DebugLevel
}

// LogOpts are the options for a debug log.
type LogOpts struct {
	Msg     string
	Level   DebugLevel
	Payload []zap.Field
}

var mu sync.RWMutex
var logger *zap.Logger
var cnf = &Config{Debug: debugLevelFromEnv()}

func debugLevelFromEnv() DebugLevel {
	lvl, _ := strconv.Atoi(strings.TrimSpace(os.Getenv("STOREFRONT_DEBUG")))
	return DebugLevel(lvl)
}

// SetConfig rebuilds the logger with the given configuration.
func SetConfig(c *Config) {
	mu.Lock()
	defer mu.Unlock()

	if c == nil {
		c = &Config{}
	}

	if c.Debug == 0 {
		c.Debug = debugLevelFromEnv()
	}

	cnf = c
	logger = build(c)
}

// Replace swaps the underlying logger and returns a function that
// restores the previous one. Tests use it together with zaptest/observer.
func Replace(l *zap.Logger) func() {
	mu.Lock()
	defer mu.Unlock()

	prevLogger, prevConfig := logger, cnf
	logger = l
	cnf = &Config{Debug: DL3}

	return func() {
		mu.Lock()
		defer mu.Unlock()
		logger, cnf = prevLogger, prevConfig
	}
}

func build(c *Config) *zap.Logger {
	if c.Disabled {
		return zap.NewNop()
	}

	var zc zap.Config

	if c.Colorful {
		zc = zap.NewDevelopmentConfig()
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		zc = zap.NewProductionConfig()
	}

	zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	zc.DisableStacktrace = true

	l, err := zc.Build(zap.AddCallerSkip(1))

	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot build logger: %s\n", err.Error())
		return zap.NewNop()
	}

	return l
}

func current() *zap.Logger {
	mu.RLock()
	l := logger
	mu.RUnlock()

	if l != nil {
		return l
	}

	mu.Lock()
	defer mu.Unlock()

	if logger == nil {
		logger = build(cnf)
	}

	return logger
}

// Debug prints the message when the configured debug level allows it.
func Debug(opts LogOpts) {
	mu.RLock()
	max := cnf.Debug
	mu.RUnlock()

	if opts.Level > max {
		return
	}

	current().Debug(opts.Msg, opts.Payload...)
}

func Info(msg string, fields ...zap.Field) {
	current().Info(msg, fields...)
}

func Infof(format string, args ...any) {
	current().Info(fmt.Sprintf(format, args...))
}

func Warn(msg string, fields ...zap.Field) {
	current().Warn(msg, fields...)
}

func Warnf(format string, args ...any) {
	current().Warn(fmt.Sprintf(format, args...))
}

func Error(msg string, fields ...zap.Field) {
	current().Error(msg, fields...)
}

func Errorf(format string, args ...any) {
	current().Error(fmt.Sprintf(format, args...))
}

// Fatal logs the error and exits the program.
func Fatal(msg string, fields ...zap.Field) {
	current().Fatal(msg, fields...)
}

// Sync flushes buffered entries.
func Sync() {
	_ = current().Sync()
}
