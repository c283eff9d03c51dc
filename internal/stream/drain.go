package stream

import (
	"errors"
	"io"
)

// readBufSize is the scratch buffer for pipe reads. 32KB comfortably
// covers the default pipe buffer on Linux and macOS, so a single read
// can empty a full pipe.
const readBufSize = 32 * 1024

// DrainFrom reads r until end-of-stream, appending every increment to
// the channel as it arrives. It is the half of the backpressure story
// that keeps the child from ever blocking on a full pipe: the loop
// reads regardless of whether any consumer currently wants the data.
//
// Transient read errors (interrupted calls) are retried and never
// surfaced. io.EOF closes the channel cleanly. Any other error closes
// the channel for this stream only; the peer stream keeps draining.
func (c *Channel) DrainFrom(r io.Reader) {
	buf := make([]byte, readBufSize)

	for {
		n, err := r.Read(buf)
		if n > 0 {
			c.Append(buf[:n])
		}

		if err == nil {
			continue
		}

		if errors.Is(err, io.EOF) {
			c.log.Debug("stream drained to end", "stream", c.name)
			c.Close(nil)

			return
		}

		if isTransient(err) {
			c.log.Debug("retrying interrupted read", "stream", c.name, "error", err)

			continue
		}

		c.log.Debug("stream read failed", "stream", c.name, "error", err)
		c.Close(err)

		return
	}
}
