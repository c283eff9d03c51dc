package stream

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

// chunkReader delivers data in controlled chunks to simulate the
// arbitrary read sizes a pipe produces.
type chunkReader struct {
	chunks [][]byte
	index  int
}

func newChunkReader(chunks ...string) *chunkReader {
	byteChunks := make([][]byte, len(chunks))
	for i, chunk := range chunks {
		byteChunks[i] = []byte(chunk)
	}

	return &chunkReader{chunks: byteChunks}
}

func (r *chunkReader) Read(p []byte) (int, error) {
	if r.index >= len(r.chunks) {
		return 0, io.EOF
	}

	chunk := r.chunks[r.index]
	r.index++

	n := copy(p, chunk)

	return n, nil
}

// failingReader yields some data, then a terminal non-EOF error.
type failingReader struct {
	data []byte
	err  error
	done bool
}

func (r *failingReader) Read(p []byte) (int, error) {
	if r.done {
		return 0, r.err
	}

	r.done = true
	n := copy(p, r.data)

	return n, nil
}

func TestDrainFromAccumulatesAllChunks(t *testing.T) {
	ch := NewChannel(nopLogger(), "stdout")
	ch.DrainFrom(newChunkReader("first ", "second ", "third"))

	require.True(t, ch.Closed())
	require.NoError(t, ch.Err())
	require.Equal(t, []byte("first second third"), ch.Bytes())
}

func TestDrainFromDeliversIncrementsToSubscribers(t *testing.T) {
	ch := NewChannel(nopLogger(), "stdout")

	c := &collector{}
	ch.Subscribe(c)

	ch.DrainFrom(newChunkReader("a", "bb", "ccc"))

	require.Equal(t, [][]byte{[]byte("a"), []byte("bb"), []byte("ccc")}, c.calls)
}

func TestDrainFromClosesChannelOnReadError(t *testing.T) {
	readErr := errors.New("pipe broke")

	ch := NewChannel(nopLogger(), "stdout")
	ch.DrainFrom(&failingReader{data: []byte("partial"), err: readErr})

	require.True(t, ch.Closed())
	require.ErrorIs(t, ch.Err(), readErr)
	// Data read before the failure is kept.
	require.Equal(t, []byte("partial"), ch.Bytes())
}

func TestDrainFromEmptyStream(t *testing.T) {
	ch := NewChannel(nopLogger(), "stdout")
	ch.DrainFrom(newChunkReader())

	require.True(t, ch.Closed())
	require.Empty(t, ch.Bytes())

	_, err := ch.ReadChunk()
	require.ErrorIs(t, err, io.EOF)
}
