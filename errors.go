package execstream

import "github.com/wagiedev/execstream-go/internal/errors"

// Re-export error types from internal package

// ExecError is the base interface for all execstream errors.
type ExecError = errors.ExecError

// LaunchError indicates the OS rejected process creation.
type LaunchError = errors.LaunchError

// ProcessError indicates a non-zero exit without fail-tolerance. It
// carries the command line, exit code, pid and both captured streams.
type ProcessError = errors.ProcessError

// Re-export sentinel errors from internal package.
var (
	// ErrEmptyCommand indicates Launch was called with an empty command.
	ErrEmptyCommand = errors.ErrEmptyCommand

	// ErrStdinClosed indicates a write to stdin after CloseStdin.
	ErrStdinClosed = errors.ErrStdinClosed
)
