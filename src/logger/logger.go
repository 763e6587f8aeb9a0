package logger

import (
	"sync"

	"go.uber.org/zap"
)

// Logger wraps a zap sugared logger with key-value helpers.
type Logger struct {
	SugaredLogger *zap.SugaredLogger
}

var (
	defaultMu sync.RWMutex
	defaultLg = &Logger{SugaredLogger: zap.NewNop().Sugar()}
)

// New - production = JSON ระดับ info, ไม่งั้นใช้ development config
func New(production bool) (*Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	if production {
		cfg = zap.NewProductionConfig()
	}
	zapLogger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return &Logger{SugaredLogger: zapLogger.Sugar()}, nil
}

// Nop returns a logger that discards everything. Handy in tests.
func Nop() *Logger {
	return &Logger{SugaredLogger: zap.NewNop().Sugar()}
}

// SetDefault replaces the process-wide logger used by L.
func SetDefault(l *Logger) {
	if l == nil {
		return
	}
	defaultMu.Lock()
	defaultLg = l
	defaultMu.Unlock()
}

// L returns the process-wide logger.
func L() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLg
}

func (l *Logger) Sync() {
	_ = l.SugaredLogger.Sync()
}

func (l *Logger) Debug(msg string, keysAndValues ...interface{}) {
	l.SugaredLogger.Debugw(msg, keysAndValues...)
}
func (l *Logger) Info(msg string, keysAndValues ...interface{}) {
	l.SugaredLogger.Infow(msg, keysAndValues...)
}
func (l *Logger) Warn(msg string, keysAndValues ...interface{}) {
	l.SugaredLogger.Warnw(msg, keysAndValues...)
}
func (l *Logger) Error(msg string, keysAndValues ...interface{}) {
	l.SugaredLogger.Errorw(msg, keysAndValues...)
}
func (l *Logger) With(keysAndValues ...interface{}) *Logger {
	return &Logger{SugaredLogger: l.SugaredLogger.With(keysAndValues...)}
}
