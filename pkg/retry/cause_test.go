package retry_test

import (
	"errors"
	"testing"

	"github.com/gorpipe/gor-source/pkg/failure"
	"github.com/gorpipe/gor-source/pkg/retry"
	"github.com/stretchr/testify/require"
)

func TestCause(t *testing.T) {
	root := errors.New("connection reset by peer")

	t.Run("Plain", func(t *testing.T) {
		require.Same(t, root, retry.Cause(root))
	})

	t.Run("Nested", func(t *testing.T) {
		err := &failure.ExecutionError{
			Err: failure.Wrap(
				&failure.ExecutionError{Err: root},
				failure.Resource,
				"mybucket/mykey",
				"Request failed"),
		}
		require.Same(t, root, retry.Cause(err))
	})

	t.Run("StopsAtTerminalError", func(t *testing.T) {
		terminal := failure.Wrap(root, failure.AccessDenied, "mybucket/mykey", "Access Denied")
		require.Same(t, terminal, retry.Cause(&failure.ExecutionError{Err: terminal}))
	})

	t.Run("StopsAtErrorWithoutCause", func(t *testing.T) {
		terminal := failure.New(failure.Unclassified, "", "Something went wrong")
		require.Same(t, terminal, retry.Cause(terminal))
	})
}
