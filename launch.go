package execstream

import (
	"context"
	"log/slog"

	"github.com/wagiedev/execstream-go/internal/config"
	"github.com/wagiedev/execstream-go/internal/subprocess"
)

// Launch starts the command as a child process and returns a Handle
// immediately. Both output pipes are drained in the background from
// this point on, whether or not the caller ever reads them.
//
// command is a program path plus argument vector; no shell is
// involved. Returns ErrEmptyCommand if command has no entries, or a
// *LaunchError if the OS rejects process creation.
func Launch(ctx context.Context, command []string, opts ...Option) (*Handle, error) {
	options := applyOptions(opts)

	return subprocess.Launch(ctx, getLogger(options), command, options)
}

// getLogger returns the configured logger, or a silent one.
func getLogger(options *config.Options) *slog.Logger {
	if options.Logger == nil {
		return NopLogger()
	}

	return options.Logger
}
