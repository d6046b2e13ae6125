package scheduler

import (
	"sync"

	"go.uber.org/zap"
)

var (
	pkgLogger   *zap.Logger
	pkgLoggerMu sync.RWMutex
)

// logger returns the package logger, a no-op logger by default.
func logger() *zap.Logger {
	pkgLoggerMu.RLock()
	defer pkgLoggerMu.RUnlock()
	if pkgLogger == nil {
		return zap.NewNop()
	}
	return pkgLogger
}

// SetLogger installs a logger for lifecycle tracing. Pass nil to restore
// the no-op default.
func SetLogger(l *zap.Logger) {
	pkgLoggerMu.Lock()
	defer pkgLoggerMu.Unlock()
	pkgLogger = l
}
