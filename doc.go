// Package execstream launches child processes and multiplexes their
// output streams.
//
// The library drains a child's stdout and stderr concurrently, so the
// child can never deadlock writing to a full pipe buffer, and exposes
// the captured output either as a final immutable Result or as live
// increments while the process is still running.
//
// # Blocking Usage
//
// For the common run-and-capture case, use Run:
//
//	ctx := context.Background()
//	res, err := execstream.Run(ctx, []string{"git", "status", "--short"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(res.Stdout())
//
// A non-zero exit code is returned as a *ProcessError carrying the
// full Result, unless WithCanFail is set:
//
//	res, err := execstream.Run(ctx, []string{"grep", "needle", "haystack"},
//	    execstream.WithCanFail(),
//	)
//	if err == nil && res.ExitCode() == 1 {
//	    // no match, not a failure
//	}
//
// # Asynchronous Usage
//
// Launch returns immediately with a Handle. Callers can write stdin,
// subscribe to live output, or pull chunks, then block for the result:
//
//	h, err := execstream.Launch(ctx, []string{"make", "test"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	h.SubscribeStdoutLines(func(line string) {
//	    fmt.Println("make:", line)
//	})
//
//	res, err := h.Wait()
//
// Subscribing replays everything already produced exactly once before
// live delivery begins, so no output is missed regardless of when the
// subscription is registered. The Handle never fails on a non-zero
// exit; inspect Result.ExitCode.
//
// # Logging
//
// For operation tracking, pass a logger with WithLogger:
//
//	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
//	res, err := execstream.Run(ctx, command, execstream.WithLogger(logger))
//
// # Limitations
//
// The core provides no timeout or cancellation of a running wait. A
// caller needing a deadline must race Wait against a timer and
// terminate the process independently. No shell is involved: commands
// are program path plus argument vector, with no interpretation,
// globbing or TTY emulation.
package execstream
