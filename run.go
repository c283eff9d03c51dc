package execstream

import (
	"context"
	"os"

	"github.com/wagiedev/execstream-go/internal/errors"
	"github.com/wagiedev/execstream-go/internal/subprocess"
)

// Run launches the command, drains it to completion and returns the
// Result. It is the blocking convenience over Launch and Wait.
//
// With WithEchoStdout or WithEchoStderr, drained increments are
// mirrored to the caller's own standard streams as they arrive, in
// addition to being captured.
//
// A non-zero exit code produces a *ProcessError carrying the full
// Result unless WithCanFail is set; the Result is returned alongside
// the error so callers can still inspect it.
func Run(ctx context.Context, command []string, opts ...Option) (*Result, error) {
	options := applyOptions(opts)

	h, err := subprocess.Launch(ctx, getLogger(options), command, options)
	if err != nil {
		return nil, err
	}

	if options.EchoStdout {
		h.SubscribeStdout(SubscriberFunc(func(p []byte) {
			_, _ = os.Stdout.Write(p)
		}))
	}

	if options.EchoStderr {
		h.SubscribeStderr(SubscriberFunc(func(p []byte) {
			_, _ = os.Stderr.Write(p)
		}))
	}

	res, err := h.Wait()
	if err != nil {
		return nil, err
	}

	if res.ExitCode() != 0 && !options.CanFail {
		return res, &errors.ProcessError{
			Command:  h.Command(),
			ExitCode: res.ExitCode(),
			Pid:      res.Pid(),
			Stdout:   res.Stdout(),
			Stderr:   res.Stderr(),
		}
	}

	return res, nil
}
