// Package pattern implements the template compiler and renderer that turns
// a log record into its textual form.
//
// A template is literal text interspersed with {name} or {name:spec}
// placeholders. Recognized names: category, level, file, line, function,
// message, time, msec, usec, nsec, thread. Unknown names are a
// configuration error and fail compilation; "{{" and "}}" escape literal
// braces.
//
// Compile scans the template exactly once into an ordered list of typed
// steps; Format walks that list with a single dispatch per step, so the
// per-record cost is independent of parsing. Integer and time fields keep a
// per-step CachedFormatter, which means a timestamp second or goroutine id
// repeated across many lines is rendered only once.
//
// String fields accept an alignment spec [[fill]align][width] with align
// one of '<', '>', '^'. Width counts codepoints, not bytes. Under-length
// fields are padded with the fill character; over-length fields pass
// through untouched. Integer fields accept [[fill]align][width] plus a
// base suffix (d, x, X, o, b) and the "0N" zero-pad shorthand; the time
// field takes a Go reference layout (default "2006-01-02 15:04:05").
//
// A compiled Pattern is immutable apart from SetLevels, which swaps the
// level display-name table wholesale.
package pattern
