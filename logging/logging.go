// Package logging sets up the process-wide zap logger. Until Init is called
// every logger is a no-op, which keeps tests quiet.
package logging

import (
	"os"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var root atomic.Pointer[zap.SugaredLogger]

func init() {
	root.Store(zap.NewNop().Sugar())
}

// Init logs to stderr and, when path is set, to a rolling file. Debug lowers
// the level from Info to Debug.
func Init(path string, debug bool) {
	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}

	encCfg := zapcore.EncoderConfig{
		TimeKey:       "ts",
		LevelKey:      "level",
		NameKey:       "logger",
		CallerKey:     "caller",
		MessageKey:    "msg",
		StacktraceKey: "stack",
		LineEnding:    zapcore.DefaultLineEnding,
		EncodeLevel:   zapcore.CapitalLevelEncoder,
		EncodeTime:    zapcore.ISO8601TimeEncoder,
		EncodeCaller:  zapcore.ShortCallerEncoder,
		EncodeName:    zapcore.FullNameEncoder,
	}

	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.Lock(os.Stderr), level),
	}
	if path != "" {
		lj := &lumberjack.Logger{
			Filename:   path,
			MaxSize:    10, // MB
			MaxBackups: 3,
			MaxAge:     7, // days
		}
		cores = append(cores, zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(lj), level))
	}

	logger := zap.New(zapcore.NewTee(cores...), zap.AddCaller())
	root.Store(logger.Sugar())
}

// Named returns a child logger, e.g. Named("client") for network messages.
// Loggers obtained before Init stay no-ops.
func Named(name string) *zap.SugaredLogger {
	return root.Load().Named(name)
}

// L returns the root logger.
func L() *zap.SugaredLogger {
	return root.Load()
}

// Sync flushes buffered entries.
func Sync() {
	_ = root.Load().Sync()
}
