package stream

import (
	"io"
	"log/slog"
	"sync"
)

// Channel is the single source of truth for one output stream of a
// child process. It accumulates every drained increment into an
// append-only buffer and supports two consumption views over that
// buffer: blocking pull reads via ReadChunk, and push subscriptions
// via Subscribe.
//
// One mutex guards the buffer, the read cursor, and the subscriber
// list. Append holds it across "append + notify" and Subscribe holds
// it across "snapshot + register", which is what guarantees a
// subscriber sees every byte exactly once.
type Channel struct {
	name string
	log  *slog.Logger

	mu     sync.Mutex
	cond   *sync.Cond
	buf    []byte
	cursor int
	subs   []Subscriber
	closed bool
	err    error
}

// NewChannel creates a channel for the named stream ("stdout" or
// "stderr"). The name only appears in log fields.
func NewChannel(log *slog.Logger, name string) *Channel {
	c := &Channel{name: name, log: log}
	c.cond = sync.NewCond(&c.mu)

	return c
}

// Append records a drained increment, then synchronously notifies every
// registered subscriber with the new increment in registration order.
// Increments arriving after Close are dropped: a finalized channel
// never grows.
//
// The slice passed to subscribers is only valid for the duration of
// the OnData call.
func (c *Channel) Append(p []byte) {
	if len(p) == 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		c.log.Warn("increment dropped on closed stream", "stream", c.name, "len", len(p))

		return
	}

	c.buf = append(c.buf, p...)

	for _, s := range c.subs {
		s.OnData(p)
	}

	c.cond.Broadcast()
}

// Subscribe registers s with replay semantics: everything buffered so
// far is delivered immediately as one OnData call, then s receives
// every future increment. No byte is delivered twice and none skipped,
// even under concurrent Appends.
//
// Subscribing to a closed channel delivers the replay (and the flush,
// for line subscribers) without registering, since no further data can
// arrive.
func (c *Channel) Subscribe(s Subscriber) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.buf) > 0 {
		s.OnData(c.buf)
	}

	if c.closed {
		if f, ok := s.(flusher); ok {
			f.flush()
		}

		return
	}

	c.subs = append(c.subs, s)
}

// ReadChunk blocks until data beyond the current read position is
// available and returns the next unread increment as a fresh slice.
// After the channel has closed and all buffered data has been
// consumed, it returns io.EOF forever.
func (c *Channel) ReadChunk() ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for c.cursor == len(c.buf) && !c.closed {
		c.cond.Wait()
	}

	if c.cursor < len(c.buf) {
		p := make([]byte, len(c.buf)-c.cursor)
		copy(p, c.buf[c.cursor:])
		c.cursor = len(c.buf)

		return p, nil
	}

	return nil, io.EOF
}

// Close marks end-of-stream. err is the terminal read error, or nil
// for a clean EOF. Line subscribers holding a trailing partial line
// have it flushed. Close is idempotent.
func (c *Channel) Close(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}

	c.closed = true
	c.err = err

	for _, s := range c.subs {
		if f, ok := s.(flusher); ok {
			f.flush()
		}
	}

	c.cond.Broadcast()
}

// Closed reports whether end-of-stream has been reached.
func (c *Channel) Closed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.closed
}

// Err returns the terminal read error recorded at Close, if any.
// A clean end-of-stream leaves it nil.
func (c *Channel) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.err
}

// Bytes returns a copy of everything buffered so far.
func (c *Channel) Bytes() []byte {
	c.mu.Lock()
	defer c.mu.Unlock()

	p := make([]byte, len(c.buf))
	copy(p, c.buf)

	return p
}
