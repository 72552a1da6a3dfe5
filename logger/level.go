package logger

import (
	"strings"

	"github.com/treelog/treelog/core"
)

// Level is re-exported from core so most programs only import this package.
type Level = core.Level

const (
	FatalLevel   = core.FatalLevel
	ErrorLevel   = core.ErrorLevel
	WarningLevel = core.WarningLevel
	InfoLevel    = core.InfoLevel
	DebugLevel   = core.DebugLevel
	TraceLevel   = core.TraceLevel
)

// ParseLevel converts a string to a Level. Unknown strings map to InfoLevel.
func ParseLevel(s string) Level {
	switch strings.ToUpper(s) {
	case "FATAL":
		return FatalLevel
	case "ERROR":
		return ErrorLevel
	case "WARN", "WARNING":
		return WarningLevel
	case "INFO":
		return InfoLevel
	case "DEBUG":
		return DebugLevel
	case "TRACE":
		return TraceLevel
	default:
		return InfoLevel
	}
}
