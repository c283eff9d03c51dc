package subprocess

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"sync"

	"github.com/oklog/ulid/v2"
	"golang.org/x/sync/errgroup"

	"github.com/wagiedev/execstream-go/internal/config"
	"github.com/wagiedev/execstream-go/internal/errors"
	"github.com/wagiedev/execstream-go/internal/stream"
)

// Handle represents one in-flight or completed child process
// invocation. It owns the background draining of both output pipes for
// its lifetime. Handles are single-use: once Wait has returned, the
// process is gone and the handle only serves the cached Result.
type Handle struct {
	log     *slog.Logger
	id      string
	command []string

	cmd         *exec.Cmd
	stdout      *stream.Channel
	stderr      *stream.Channel
	drain       *errgroup.Group
	payloadDone chan struct{}

	mu          sync.Mutex // protects stdin writes and close state
	stdin       io.WriteCloser
	stdinClosed bool

	waitOnce sync.Once
	result   *Result
	waitErr  error
}

// Launch validates the command, starts the child process and begins
// draining both output pipes in the background.
//
// Returns ErrEmptyCommand if command has no entries, or a LaunchError
// if the OS rejects process creation. Environment and working
// directory overrides are scoped to the child only.
//
// ctx is threaded into process creation; cancelling it kills a child
// that is still running. Wait itself does not observe ctx.
func Launch(
	ctx context.Context,
	log *slog.Logger,
	command []string,
	options *config.Options,
) (*Handle, error) {
	if len(command) == 0 {
		return nil, errors.ErrEmptyCommand
	}

	id := ulid.Make().String()
	log = log.With("component", "subprocess", "handle_id", id)

	//nolint:gosec // G204: launching caller-supplied commands is this library's purpose
	cmd := exec.CommandContext(ctx, command[0], command[1:]...)
	cmd.Dir = options.Cwd
	cmd.Env = BuildEnvironment(options)

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, &errors.LaunchError{Path: command[0], Err: fmt.Errorf("stdin pipe: %w", err)}
	}

	stdoutPipe, err := cmd.StdoutPipe()
	if err != nil {
		return nil, &errors.LaunchError{Path: command[0], Err: fmt.Errorf("stdout pipe: %w", err)}
	}

	stderrPipe, err := cmd.StderrPipe()
	if err != nil {
		return nil, &errors.LaunchError{Path: command[0], Err: fmt.Errorf("stderr pipe: %w", err)}
	}

	if err := cmd.Start(); err != nil {
		log.Debug("process start rejected", "command", command[0], "error", err)

		return nil, &errors.LaunchError{Path: command[0], Err: err}
	}

	h := &Handle{
		log:     log,
		id:      id,
		command: command,
		cmd:     cmd,
		stdin:   stdin,
		stdout:  stream.NewChannel(log, "stdout"),
		stderr:  stream.NewChannel(log, "stderr"),
	}

	g := new(errgroup.Group)
	g.Go(func() error {
		h.stdout.DrainFrom(stdoutPipe)

		return nil
	})
	g.Go(func() error {
		h.stderr.DrainFrom(stderrPipe)

		return nil
	})

	h.payloadDone = make(chan struct{})

	if len(options.StdinPayload) > 0 {
		payload := options.StdinPayload

		go func() {
			defer close(h.payloadDone)

			// A child that exits without reading stdin makes this
			// write fail with EPIPE. That is not our error to report.
			if err := h.WriteStdin(payload); err != nil {
				log.Debug("stdin payload write failed", "error", err)
			}

			if err := h.CloseStdin(); err != nil {
				log.Debug("stdin close failed", "error", err)
			}
		}()
	} else {
		close(h.payloadDone)
	}

	h.drain = g

	log.Info("process started", "pid", cmd.Process.Pid, "command", command[0])

	return h, nil
}

// ID returns the handle's unique identifier, as used in log fields.
func (h *Handle) ID() string { return h.id }

// Pid returns the child's OS process id.
func (h *Handle) Pid() int { return h.cmd.Process.Pid }

// Command returns the command vector the handle was launched with.
func (h *Handle) Command() []string { return h.command }

// WriteStdin writes p to the child's stdin. Safe for concurrent use.
// Returns ErrStdinClosed after CloseStdin.
func (h *Handle) WriteStdin(p []byte) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.stdinClosed {
		return errors.ErrStdinClosed
	}

	if _, err := h.stdin.Write(p); err != nil {
		return fmt.Errorf("write stdin: %w", err)
	}

	return nil
}

// CloseStdin closes the child's stdin, signalling end of input. Most
// children treat this as the cue to finish producing output. Idempotent.
func (h *Handle) CloseStdin() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.stdinClosed {
		return nil
	}

	h.stdinClosed = true

	return h.stdin.Close()
}

// SubscribeStdout registers s on the stdout channel: a synchronous
// replay of everything drained so far, then every future increment.
// Increments are raw chunks as produced by pipe reads.
func (h *Handle) SubscribeStdout(s stream.Subscriber) {
	h.stdout.Subscribe(s)
}

// SubscribeStderr registers s on the stderr channel with the same
// semantics as SubscribeStdout.
func (h *Handle) SubscribeStderr(s stream.Subscriber) {
	h.stderr.Subscribe(s)
}

// SubscribeStdoutLines registers a line-granularity subscriber on
// stdout: fn is invoked once per complete line with the terminator
// stripped, and a trailing partial line is flushed when the stream
// closes.
func (h *Handle) SubscribeStdoutLines(fn func(line string)) {
	h.stdout.Subscribe(stream.Lines(fn))
}

// SubscribeStderrLines registers a line-granularity subscriber on
// stderr.
func (h *Handle) SubscribeStderrLines(fn func(line string)) {
	h.stderr.Subscribe(stream.Lines(fn))
}

// ReadStdoutChunk blocks until unread stdout data is available and
// returns it. Returns io.EOF forever once stdout has closed and all
// buffered data has been consumed.
func (h *Handle) ReadStdoutChunk() ([]byte, error) {
	return h.stdout.ReadChunk()
}

// ReadStderrChunk is ReadStdoutChunk for stderr.
func (h *Handle) ReadStderrChunk() ([]byte, error) {
	return h.stderr.ReadChunk()
}

// Wait blocks until the process has exited and both output channels
// have drained to end-of-stream, then returns the immutable Result.
// Process exit and drain completion race independently; Wait observes
// both before finalizing. Stdin is closed first if still open.
//
// The result is computed once and cached: repeat calls return the same
// value without re-waiting. Wait never fails on a non-zero exit code;
// inspect Result.ExitCode. The error return covers OS-level wait
// failures only.
//
// Wait is not cancellable. A caller needing a timeout must race Wait
// against a timer and terminate the process independently.
func (h *Handle) Wait() (*Result, error) {
	h.waitOnce.Do(func() {
		// The payload writer owns stdin until it finishes; closing
		// under it would drop input the caller asked us to deliver.
		<-h.payloadDone

		if err := h.CloseStdin(); err != nil {
			h.log.Debug("stdin close before wait failed", "error", err)
		}

		// Pipes must be fully read before cmd.Wait, which closes them.
		// g.Wait doubles as the "both streams drained" barrier.
		_ = h.drain.Wait()

		pid := h.cmd.Process.Pid
		exitCode := 0

		if err := h.cmd.Wait(); err != nil {
			var exitErr *exec.ExitError
			if !stderrors.As(err, &exitErr) {
				h.waitErr = fmt.Errorf("wait for process: %w", err)

				return
			}

			exitCode = exitErr.ExitCode()
		}

		h.log.Info("process finished", "pid", pid, "exit_code", exitCode)

		h.result = &Result{
			stdout:   h.stdout.Bytes(),
			stderr:   h.stderr.Bytes(),
			exitCode: exitCode,
			pid:      pid,
		}
	})

	return h.result, h.waitErr
}
