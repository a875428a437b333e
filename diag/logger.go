// Package diag provides the planner's diagnostic/logging collaborator. It
// is grounded on go-detour's rcContext/rcContexter pair: a small interface
// injected by the caller, never package-level mutable state (the planner
// must never reintroduce the original Lua source's global `marks`
// collection).
package diag

import "fmt"

// Logger receives diagnostic messages at three severities as the planner
// runs. Implementations should be safe to call from a single goroutine;
// the planner itself makes no concurrent calls.
type Logger interface {
	Progress(format string, args ...interface{})
	Warning(format string, args ...interface{})
	Error(format string, args ...interface{})
}

// NoopLogger discards every message. It is the default when a caller does
// not supply a Logger.
type NoopLogger struct{}

func (NoopLogger) Progress(string, ...interface{}) {}
func (NoopLogger) Warning(string, ...interface{}) {}
func (NoopLogger) Error(string, ...interface{})   {}

// CollectingLogger accumulates every message it receives, in order. Useful
// for tests.
type CollectingLogger struct {
	Entries []string
}

func (c *CollectingLogger) Progress(format string, args ...interface{}) {
	c.Entries = append(c.Entries, "progress: "+fmt.Sprintf(format, args...))
}

func (c *CollectingLogger) Warning(format string, args ...interface{}) {
	c.Entries = append(c.Entries, "warning: "+fmt.Sprintf(format, args...))
}

func (c *CollectingLogger) Error(format string, args ...interface{}) {
	c.Entries = append(c.Entries, "error: "+fmt.Sprintf(format, args...))
}
