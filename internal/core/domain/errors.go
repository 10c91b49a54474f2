package domain

import "go.trai.ch/zerr"

var (
	// ErrUnknownCommand is returned when the requested command is not registered.
	ErrUnknownCommand = zerr.New("unknown command")

	// ErrMissingTool is returned when one or more required external tools are
	// absent from the execution path.
	ErrMissingTool = zerr.New("missing tool")

	// ErrToolFailed is returned when an invoked external tool exits non-zero.
	ErrToolFailed = zerr.New("tool failed")

	// ErrInterrupted is returned when a task was cancelled by a termination
	// signal and its cleanup has run.
	ErrInterrupted = zerr.New("interrupted")

	// ErrTaskAlreadyExists is returned when registering a duplicate task name.
	ErrTaskAlreadyExists = zerr.New("task already exists")
)
