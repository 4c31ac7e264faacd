// Package logger holds the process-wide zap logger.
package logger

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	sugar *zap.SugaredLogger
	once  sync.Once
)

// Init builds the global logger for env. "production" logs JSON at info,
// "test" discards everything, and anything else gets the console encoder.
func Init(env string) {
	once.Do(func() {
		sugar = build(env).Sugar()
	})
}

func build(env string) *zap.Logger {
	var (
		base *zap.Logger
		err  error
	)

	switch env {
	case "production":
		cfg := zap.NewProductionConfig()
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		base, err = cfg.Build()
	case "test":
		return zap.NewNop()
	default:
		base, err = zap.NewDevelopment()
	}

	if err != nil {
		return zap.NewNop()
	}
	return base
}

// Get returns the global sugared logger.
// If Init has not been called, it initializes a development logger.
func Get() *zap.SugaredLogger {
	if sugar == nil {
		Init("development")
	}
	return sugar
}

// Sync flushes any buffered log entries. Call this before application exit.
func Sync() {
	if sugar != nil {
		_ = sugar.Sync()
	}
}
