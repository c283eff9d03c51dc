// Package stream implements the concurrent draining, buffering and
// subscriber fan-out for one output pipe of a child process.
//
// Each pipe gets a Channel: an append-only buffer fed by a background
// drain loop, consumed either by blocking pull reads (ReadChunk) or by
// push subscriptions (Subscribe) with replay-on-register semantics.
// Draining both pipes of a process concurrently is what prevents the
// classic deadlock where the child blocks writing to a full pipe
// buffer that nobody is reading.
package stream
