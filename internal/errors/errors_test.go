package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLaunchError(t *testing.T) {
	root := errors.New("no such file or directory")
	err := &LaunchError{Path: "/usr/bin/definitely-missing", Err: root}

	require.Equal(
		t,
		`failed to launch "/usr/bin/definitely-missing": no such file or directory`,
		err.Error(),
	)
	require.ErrorIs(t, err, root)
	require.True(t, err.IsExecError())
}

func TestProcessError_WithOutput(t *testing.T) {
	err := &ProcessError{
		Command:  []string{"sh", "-c", "exit 3"},
		ExitCode: 3,
		Pid:      4711,
		Stdout:   "partial progress",
		Stderr:   "fatal: something broke",
	}

	msg := err.Error()
	require.Contains(t, msg, `command "sh -c exit 3" failed (exit 3, pid 4711)`)
	require.Contains(t, msg, "stdout:\npartial progress")
	require.Contains(t, msg, "stderr:\nfatal: something broke")
	require.True(t, err.IsExecError())
}

func TestProcessError_NoOutput(t *testing.T) {
	err := &ProcessError{
		Command:  []string{"false"},
		ExitCode: 1,
		Pid:      1234,
	}

	require.Equal(t, `command "false" failed (exit 1, pid 1234)`, err.Error())
	require.NotContains(t, err.Error(), "stdout")
	require.NotContains(t, err.Error(), "stderr")
}
