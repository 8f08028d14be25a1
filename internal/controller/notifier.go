// ABOUTME: Notifier is the transient user-facing notification sink.
// ABOUTME: Errors are surfaced here and never crash the session.

package controller

// Notifier receives the outcome of lifecycle operations, rendered by
// the frontends as transient status messages.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// NopNotifier discards notifications; useful in tests.
type NopNotifier struct{}

func (NopNotifier) Success(string) {}
func (NopNotifier) Error(string)   {}
