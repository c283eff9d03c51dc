//go:build unix

package stream

import (
	"errors"

	"golang.org/x/sys/unix"
)

// isTransient reports whether a read error should be retried rather
// than treated as terminal. The Go runtime already restarts most
// interrupted pipe reads, but errors surfaced from descriptors in
// non-blocking mode can still carry these errnos.
func isTransient(err error) bool {
	return errors.Is(err, unix.EINTR) || errors.Is(err, unix.EAGAIN)
}
