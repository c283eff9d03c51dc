package config

import "log/slog"

// Options configures process launch and the blocking Run facade.
type Options struct {
	// Logger is the slog logger for debug output.
	// If nil, logging is disabled (silent operation).
	Logger *slog.Logger

	// Env provides additional environment variables for the child
	// process. Entries override inherited variables of the same name.
	// The caller's own environment is never modified.
	Env map[string]string

	// Cwd sets the working directory for the child process.
	// Empty means the child inherits the caller's working directory.
	Cwd string

	// StdinPayload is written to the child's stdin in the background
	// after launch. When set, stdin is closed once the write completes.
	StdinPayload []byte

	// CanFail makes Run return the Result normally on a non-zero exit
	// code instead of returning a ProcessError.
	CanFail bool

	// EchoStdout mirrors drained stdout increments to the caller's
	// os.Stdout in real time. Only honored by Run.
	EchoStdout bool

	// EchoStderr mirrors drained stderr increments to the caller's
	// os.Stderr in real time. Only honored by Run.
	EchoStderr bool
}
