package logger

import (
	"fmt"
	"sync"

	"github.com/treelog/treelog/core"
)

var (
	defaultLogger *Logger
	defaultOnce   sync.Once
	defaultMu     sync.RWMutex
)

// Default returns the process-wide root logger, creating it on first use
// with category "root", InfoLevel and no sinks.
func Default() *Logger {
	defaultOnce.Do(func() {
		defaultMu.Lock()
		if defaultLogger == nil {
			defaultLogger = New("root", core.InfoLevel, nil)
		}
		defaultMu.Unlock()
	})
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault replaces the process-wide root logger
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defaultLogger = l
	defaultMu.Unlock()
}

// Package-level convenience functions using the default logger

// Trace emits at TraceLevel on the default logger
func Trace(msg string) error {
	return Default().emit(core.TraceLevel, core.Capture(1), "", func() string { return msg }, nil)
}

// Debug emits at DebugLevel on the default logger
func Debug(msg string) error {
	return Default().emit(core.DebugLevel, core.Capture(1), "", func() string { return msg }, nil)
}

// Info emits at InfoLevel on the default logger
func Info(msg string) error {
	return Default().emit(core.InfoLevel, core.Capture(1), "", func() string { return msg }, nil)
}

// Warning emits at WarningLevel on the default logger
func Warning(msg string) error {
	return Default().emit(core.WarningLevel, core.Capture(1), "", func() string { return msg }, nil)
}

// Error emits at ErrorLevel on the default logger
func Error(msg string) error {
	return Default().emit(core.ErrorLevel, core.Capture(1), "", func() string { return msg }, nil)
}

// Fatal emits at FatalLevel on the default logger
func Fatal(msg string) error {
	return Default().emit(core.FatalLevel, core.Capture(1), "", func() string { return msg }, nil)
}

// Tracef emits a formatted message at TraceLevel on the default logger
func Tracef(format string, args ...interface{}) error {
	return Default().emit(core.TraceLevel, core.Capture(1), "", func() string { return fmt.Sprintf(format, args...) }, nil)
}

// Debugf emits a formatted message at DebugLevel on the default logger
func Debugf(format string, args ...interface{}) error {
	return Default().emit(core.DebugLevel, core.Capture(1), "", func() string { return fmt.Sprintf(format, args...) }, nil)
}

// Infof emits a formatted message at InfoLevel on the default logger
func Infof(format string, args ...interface{}) error {
	return Default().emit(core.InfoLevel, core.Capture(1), "", func() string { return fmt.Sprintf(format, args...) }, nil)
}

// Warningf emits a formatted message at WarningLevel on the default logger
func Warningf(format string, args ...interface{}) error {
	return Default().emit(core.WarningLevel, core.Capture(1), "", func() string { return fmt.Sprintf(format, args...) }, nil)
}

// Errorf emits a formatted message at ErrorLevel on the default logger
func Errorf(format string, args ...interface{}) error {
	return Default().emit(core.ErrorLevel, core.Capture(1), "", func() string { return fmt.Sprintf(format, args...) }, nil)
}

// Fatalf emits a formatted message at FatalLevel on the default logger
func Fatalf(format string, args ...interface{}) error {
	return Default().emit(core.FatalLevel, core.Capture(1), "", func() string { return fmt.Sprintf(format, args...) }, nil)
}
