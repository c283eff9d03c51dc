// Package subprocess launches child processes and aggregates their
// results.
//
// Launch wires a started process to two stream.Channels, one per
// output pipe, each drained by a background goroutine so the child can
// never block on a full pipe buffer. Wait joins process exit with
// drain completion and produces the cached, immutable Result.
package subprocess
