// Package logging contains the zap-backed logger used by the planning packages.
package logging

import (
	"os"

	"go.uber.org/zap/zapcore"
)

// consoleEncoderConfig prints one line per entry with colored levels and no stacktraces.
func consoleEncoderConfig() zapcore.EncoderConfig {
	cfg := zapcore.EncoderConfig{
		TimeKey:       "ts",
		LevelKey:      "level",
		NameKey:       "logger",
		CallerKey:     "caller",
		MessageKey:    "msg",
		StacktraceKey: zapcore.OmitKey,
		FunctionKey:   zapcore.OmitKey,
		LineEnding:    zapcore.DefaultLineEnding,
	}
	cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncodeDuration = zapcore.StringDurationEncoder
	cfg.EncodeCaller = zapcore.ShortCallerEncoder
	return cfg
}

func stdoutCore() zapcore.Core {
	return zapcore.NewCore(zapcore.NewConsoleEncoder(consoleEncoderConfig()), zapcore.Lock(os.Stdout), zapcore.DebugLevel)
}

// NewLogger returns a logger printing Info+ entries to stdout.
func NewLogger(name string) Logger {
	return newImpl(name, INFO, stdoutCore())
}

// NewDebugLogger returns a logger printing Debug+ entries to stdout.
func NewDebugLogger(name string) Logger {
	return newImpl(name, DEBUG, stdoutCore())
}

// NewBlankLogger returns a logger that drops everything.
func NewBlankLogger(name string) Logger {
	return newImpl(name, DEBUG)
}
