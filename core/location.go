package core

import (
	"path/filepath"
	"runtime"
)

// Location identifies the call site of a log statement. The zero value
// means "unknown".
type Location struct {
	File     string
	Function string
	Line     int
}

// Known reports whether the location was successfully captured
func (loc Location) Known() bool {
	return loc.File != ""
}

// Capture retrieves the location of a caller. skip has the same meaning as
// in runtime.Caller: 0 is the caller of Capture itself.
func Capture(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Location{}
	}

	var funcName string
	if fn := runtime.FuncForPC(pc); fn != nil {
		funcName = fn.Name()
	}

	return Location{
		File:     filepath.Base(file),
		Function: funcName,
		Line:     line,
	}
}
