package execstream

import (
	"log/slog"

	"github.com/wagiedev/execstream-go/internal/config"
)

// Option configures Launch and Run using the functional options pattern.
type Option func(*config.Options)

// applyOptions applies functional options to a fresh Options struct.
func applyOptions(opts []Option) *config.Options {
	options := &config.Options{}
	for _, opt := range opts {
		opt(options)
	}

	return options
}

// WithLogger sets the logger for debug output.
// If not set, logging is disabled (silent operation).
func WithLogger(logger *slog.Logger) Option {
	return func(o *config.Options) {
		o.Logger = logger
	}
}

// WithEnv provides additional environment variables for the child
// process. Entries override inherited variables of the same name; the
// caller's own environment is never modified.
func WithEnv(env map[string]string) Option {
	return func(o *config.Options) {
		o.Env = env
	}
}

// WithCwd sets the working directory for the child process. The
// caller's working directory is unaffected.
func WithCwd(cwd string) Option {
	return func(o *config.Options) {
		o.Cwd = cwd
	}
}

// WithStdin supplies an initial stdin payload. It is written to the
// child in the background after launch, and stdin is closed once the
// write completes.
func WithStdin(payload []byte) Option {
	return func(o *config.Options) {
		o.StdinPayload = payload
	}
}

// WithCanFail makes Run tolerate non-zero exit codes: the Result is
// returned normally instead of a ProcessError.
func WithCanFail() Option {
	return func(o *config.Options) {
		o.CanFail = true
	}
}

// WithEchoStdout mirrors drained stdout to the caller's os.Stdout in
// real time. Only honored by Run.
func WithEchoStdout() Option {
	return func(o *config.Options) {
		o.EchoStdout = true
	}
}

// WithEchoStderr mirrors drained stderr to the caller's os.Stderr in
// real time. Only honored by Run.
func WithEchoStderr() Option {
	return func(o *config.Options) {
		o.EchoStderr = true
	}
}
