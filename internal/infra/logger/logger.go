// Package logger holds the process-wide zap logger.
package logger

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu     sync.RWMutex
	global = zap.NewNop()
)

type Config struct {
	Debug bool
}

// Setup builds the global logger. Debug switches to the development config
// with colored levels; otherwise output is production JSON on stderr.
func Setup(cfg Config) (func() error, error) {
	var zcfg zap.Config
	if cfg.Debug {
		zcfg = zap.NewDevelopmentConfig()
		zcfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		zcfg = zap.NewProductionConfig()
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	}

	l, err := zcfg.Build()
	if err != nil {
		return nil, err
	}

	mu.Lock()
	global = l
	mu.Unlock()

	cleanup := func() error {
		mu.Lock()
		defer mu.Unlock()
		err := global.Sync()
		global = zap.NewNop()
		return err
	}
	return cleanup, nil
}

// L returns the current global logger.
func L() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}
