package core

// Level represents the severity of a log event. Lower ordinals are more
// severe: Fatal admits the least, Trace admits the most.
type Level int8

const (
	// FatalLevel for unrecoverable failures
	FatalLevel Level = iota
	// ErrorLevel for error messages
	ErrorLevel
	// WarningLevel for warning messages
	WarningLevel
	// InfoLevel for general informational messages (default)
	InfoLevel
	// DebugLevel for detailed debugging information
	DebugLevel
	// TraceLevel for the most verbose diagnostics
	TraceLevel

	// LevelCount is the number of defined levels.
	LevelCount = int(TraceLevel) + 1
)

// DefaultLevelNames holds the default display name for each level, indexed
// by ordinal.
var DefaultLevelNames = [LevelCount]string{
	FatalLevel:   "FATAL",
	ErrorLevel:   "ERROR",
	WarningLevel: "WARN",
	InfoLevel:    "INFO",
	DebugLevel:   "DEBUG",
	TraceLevel:   "TRACE",
}

// String returns the default display name of the level
func (l Level) String() string {
	if !l.Valid() {
		return "UNKNOWN"
	}
	return DefaultLevelNames[l]
}

// Valid reports whether l is one of the defined levels
func (l Level) Valid() bool {
	return l >= FatalLevel && l <= TraceLevel
}

// Admits reports whether a threshold of l admits an event at level event:
// events at or more severe than the threshold pass.
func (l Level) Admits(event Level) bool {
	return event <= l
}
