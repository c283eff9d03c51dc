package stream

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLinesSplitsCompleteLines(t *testing.T) {
	var lines []string

	s := Lines(func(line string) {
		lines = append(lines, line)
	})

	s.OnData([]byte("one\ntwo\nthr"))
	require.Equal(t, []string{"one", "two"}, lines)

	s.OnData([]byte("ee\n"))
	require.Equal(t, []string{"one", "two", "three"}, lines)
}

func TestLinesReassemblesAcrossChunks(t *testing.T) {
	var lines []string

	s := Lines(func(line string) {
		lines = append(lines, line)
	})

	for _, b := range []byte("split byte by byte\n") {
		s.OnData([]byte{b})
	}

	require.Equal(t, []string{"split byte by byte"}, lines)
}

func TestLinesStripsCRLF(t *testing.T) {
	var lines []string

	s := Lines(func(line string) {
		lines = append(lines, line)
	})

	s.OnData([]byte("windows\r\nunix\n"))
	require.Equal(t, []string{"windows", "unix"}, lines)
}

func TestLinesFlushesTrailingPartialOnClose(t *testing.T) {
	ch := NewChannel(nopLogger(), "stdout")

	var lines []string

	ch.Subscribe(Lines(func(line string) {
		lines = append(lines, line)
	}))

	ch.Append([]byte("complete\nno newline at end"))
	require.Equal(t, []string{"complete"}, lines)

	ch.Close(nil)
	require.Equal(t, []string{"complete", "no newline at end"}, lines)
}

func TestLinesNoFlushWhenNothingPending(t *testing.T) {
	ch := NewChannel(nopLogger(), "stdout")

	var lines []string

	ch.Subscribe(Lines(func(line string) {
		lines = append(lines, line)
	}))

	ch.Append([]byte("tidy\n"))
	ch.Close(nil)

	require.Equal(t, []string{"tidy"}, lines)
}

func TestLinesEmitsBlankLines(t *testing.T) {
	var lines []string

	s := Lines(func(line string) {
		lines = append(lines, line)
	})

	s.OnData([]byte("a\n\nb\n"))
	require.Equal(t, []string{"a", "", "b"}, lines)
}

func TestSubscriberFuncAdapter(t *testing.T) {
	var got []byte

	var s Subscriber = SubscriberFunc(func(p []byte) {
		got = append(got, p...)
	})

	s.OnData([]byte("via func"))
	require.Equal(t, []byte("via func"), got)
}
