package execstream

import (
	"github.com/wagiedev/execstream-go/internal/stream"
	"github.com/wagiedev/execstream-go/internal/subprocess"
)

// Handle represents one in-flight or completed child process
// invocation. Handles are single-use.
type Handle = subprocess.Handle

// Result is an immutable snapshot of a completed invocation: captured
// stdout and stderr, exit code, and process id.
type Result = subprocess.Result

// Subscriber receives output increments from one channel. OnData is
// invoked synchronously under the channel's lock and must not block.
type Subscriber = stream.Subscriber

// SubscriberFunc adapts a plain function to the Subscriber interface.
type SubscriberFunc = stream.SubscriberFunc
