// Package logger is the public API of treelog. Most users only need to
// import this package and the sink package.
//
// Loggers form a category tree. Each node owns a severity threshold, a set
// of locally attached sinks (each independently enable/disable-able), and a
// propagation flag deciding whether the node inherits its parent's sinks.
// From those inputs every node keeps a materialized effective-sink list:
// the attachments a message emitted here is tested against, each paired
// with the logger whose level governs that attachment. The list is
// recomputed for a node and all of its descendants whenever a sink is
// attached or detached, an enable flag or the propagation flag toggles, or
// the node is reparented, and swapped atomically per node so emitting
// goroutines never observe a partial list.
//
// The emit path is lazy: the cheap record fields (level, call site,
// category, goroutine id, timestamp) are captured eagerly, but the message
// payload — a literal, a fmt operation, or a callback — is materialized
// exactly once, on the first attachment whose owner's level admits the
// event. If no attachment admits it, no formatting work happens at all.
// Sink failures surface to the logging call site; the logger never
// swallows an error to keep logging "best-effort".
//
// Loggers are constructed with New or via the fluent Builder:
//
//	root := logger.NewBuilder().
//	    WithCategory("app").
//	    WithLevel(logger.DebugLevel).
//	    WithSink(console).
//	    Build()
//	db := logger.New("app.db", logger.TraceLevel, root)
//
// Reparenting is supported at runtime via SetParent, which rejects cycles.
// Close detaches a node and splices its children onto their grandparent,
// preserving the rest of the tree.
//
// The threading policy is chosen at construction: under the default
// MultiThreaded policy every node carries a readers-writer lock and all
// operations are safe to call concurrently with ongoing emits; under
// SingleThreaded all locking is elided and any concurrent use is undefined
// behavior.
package logger
