// Package domain holds the core types of the jw workflow tool.
package domain

import "context"

// Action is the body of a task. It either completes or fails; there is no
// partial result.
type Action func(ctx context.Context) error

// Task is one operator-invocable unit of work.
type Task struct {
	// Name is the unique registry key and CLI command name.
	Name string

	// Summary is the one-line description shown in the CLI usage.
	Summary string

	// Tools lists the external programs the action shells out to, in the
	// order they are used. Every entry must resolve on the execution path
	// before the action may start.
	Tools []string

	// Interruptible marks tasks that can leave transient build state
	// behind. The runner installs cleanup-on-signal for these.
	Interruptible bool

	// Action performs the work.
	Action Action
}

// Invocation describes a single external tool call.
type Invocation struct {
	Tool string
	Args []string
	Dir  string
}
