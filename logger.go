package flatfield

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the package logger. It defaults to a no-op logger, so
// the package is silent unless a caller installs one with SetLogger.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger installs l as the package logger. Parse and Format report
// their lossy paths at debug level, such as tolerant coercion to zero
// and truncation of over-width values. Call it before the first Parse
// or Format.
func SetLogger(l *zap.Logger) {
	logger = l
}
