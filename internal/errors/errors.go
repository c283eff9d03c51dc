package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ExecError is the base interface for all execstream errors.
type ExecError interface {
	error
	IsExecError() bool
}

// Compile-time verification that all error types implement ExecError.
var (
	_ ExecError = (*LaunchError)(nil)
	_ ExecError = (*ProcessError)(nil)
)

// Sentinel errors for commonly checked conditions.
var (
	// ErrEmptyCommand indicates Launch was called with an empty command.
	// This is a caller bug and is never retried.
	ErrEmptyCommand = errors.New("command is empty")

	// ErrStdinClosed indicates a write to stdin after CloseStdin.
	ErrStdinClosed = errors.New("stdin closed")
)

// LaunchError indicates the OS rejected process creation, for example
// because the binary does not exist or is not executable.
type LaunchError struct {
	Path string
	Err  error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("failed to launch %q: %v", e.Path, e.Err)
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}

// IsExecError implements ExecError.
func (e *LaunchError) IsExecError() bool { return true }

// ProcessError indicates the process ran to completion but exited
// non-zero while fail-tolerance was not requested. It carries the full
// captured output so callers can diagnose the failure without re-running.
type ProcessError struct {
	Command  []string
	ExitCode int
	Pid      int
	Stdout   string
	Stderr   string
}

func (e *ProcessError) Error() string {
	var b strings.Builder

	fmt.Fprintf(&b, "command %q failed (exit %d, pid %d)",
		strings.Join(e.Command, " "), e.ExitCode, e.Pid)

	if e.Stdout != "" {
		fmt.Fprintf(&b, "\nstdout:\n%s", e.Stdout)
	}

	if e.Stderr != "" {
		fmt.Fprintf(&b, "\nstderr:\n%s", e.Stderr)
	}

	return b.String()
}

// IsExecError implements ExecError.
func (e *ProcessError) IsExecError() bool { return true }
