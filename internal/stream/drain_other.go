//go:build !unix

package stream

// isTransient reports whether a read error should be retried. Outside
// unix there is no errno to inspect, so every error is terminal.
func isTransient(err error) bool {
	return false
}
