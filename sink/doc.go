// Package sink provides the Sink contract and its built-in
// implementations for delivering formatted records to an output.
//
// Every concrete sink accepts trailing Options with an optional pattern
// template and level display-name overrides; omitting the pattern uses the
// full default (timestamp, level, goroutine id, category, call site,
// message). Each delivered line ends with a newline.
//
// Delivery is synchronous on the emitting goroutine. A sink guards its own
// buffer and transport with a sink-local lock, never a logger's lock, so a
// logger tree mutation is never held up by sink I/O.
//
// Built-in sinks:
//
//   - Stream writes to any io.Writer (default: stdout).
//   - File appends to a file, optionally transcoded to UTF-16/UTF-32 via
//     golang.org/x/text with a byte-order mark on first creation.
//   - Callback hands (level, location, message) to a user function.
//   - Null formats and discards, for benchmarking.
//
// Transport errors are wrapped and returned to the logging call site;
// nothing is retried or swallowed.
package sink
