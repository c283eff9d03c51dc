package subprocess

// Result is an immutable snapshot of a completed process invocation:
// the fully captured output of both streams, the numeric exit code and
// the process id. It reflects output up to and including process exit;
// no bytes arrive after construction.
type Result struct {
	stdout   []byte
	stderr   []byte
	exitCode int
	pid      int
}

// Stdout returns the full captured stdout as a string.
func (r *Result) Stdout() string { return string(r.stdout) }

// Stderr returns the full captured stderr as a string.
func (r *Result) Stderr() string { return string(r.stderr) }

// StdoutBytes returns the captured stdout. The returned slice is the
// stored capture and must not be modified.
func (r *Result) StdoutBytes() []byte { return r.stdout }

// StderrBytes returns the captured stderr. The returned slice is the
// stored capture and must not be modified.
func (r *Result) StderrBytes() []byte { return r.stderr }

// ExitCode returns the child's exit status as reported by the OS.
func (r *Result) ExitCode() int { return r.exitCode }

// Pid returns the child's OS process id.
func (r *Result) Pid() int { return r.pid }
