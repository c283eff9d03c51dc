package stream

import "bytes"

// Subscriber receives output increments from one channel. OnData is
// invoked under the channel's lock, so implementations must not call
// back into the channel and should return quickly.
type Subscriber interface {
	OnData(p []byte)
}

// SubscriberFunc adapts a plain function to the Subscriber interface.
type SubscriberFunc func(p []byte)

// OnData implements Subscriber.
func (f SubscriberFunc) OnData(p []byte) { f(p) }

// flusher is implemented by subscribers that hold partial state which
// must be emitted when the stream closes.
type flusher interface {
	flush()
}

// lineSubscriber reassembles raw increments into discrete lines,
// invoking fn once per complete line with the terminator stripped. A
// trailing partial line is held until more data arrives or the stream
// closes, at which point whatever is pending is flushed as-is.
//
// All state is mutated under the owning channel's lock: Append,
// Subscribe and Close are the only callers of OnData and flush.
type lineSubscriber struct {
	fn      func(line string)
	pending []byte
}

// Lines wraps fn in a line-splitting subscriber.
func Lines(fn func(line string)) Subscriber {
	return &lineSubscriber{fn: fn}
}

// OnData implements Subscriber.
func (l *lineSubscriber) OnData(p []byte) {
	l.pending = append(l.pending, p...)

	for {
		i := bytes.IndexByte(l.pending, '\n')
		if i < 0 {
			return
		}

		line := l.pending[:i]
		// Strip a CR left by CRLF terminators
		if len(line) > 0 && line[len(line)-1] == '\r' {
			line = line[:len(line)-1]
		}

		l.fn(string(line))
		l.pending = l.pending[i+1:]
	}
}

func (l *lineSubscriber) flush() {
	if len(l.pending) == 0 {
		return
	}

	l.fn(string(l.pending))
	l.pending = nil
}
