// Package notify defines the user-facing notification capability used by the
// core services. Keeping it behind an interface lets state-transition logic
// run and be tested without a UI.
package notify

import "fmt"

// Notifier delivers short user-facing messages. Implementations must not
// block; delivery is best-effort and carries no state.
type Notifier interface {
	// Success reports a completed action, e.g. a login or a new bookmark.
	Success(msg string)
	// Info reports a neutral outcome, e.g. a logout or a removed bookmark.
	Info(msg string)
	// Error reports a failed action, e.g. rejected credentials.
	Error(msg string)
}

// Console writes notifications to standard output, prefixed by kind.
// It is the shell's Notifier.
type Console struct{}

func (Console) Success(msg string) { fmt.Println("[ok] " + msg) }
func (Console) Info(msg string)    { fmt.Println("[info] " + msg) }
func (Console) Error(msg string)   { fmt.Println("[error] " + msg) }

// Nop discards all notifications.
type Nop struct{}

func (Nop) Success(string) {}
func (Nop) Info(string)    {}
func (Nop) Error(string)   {}
