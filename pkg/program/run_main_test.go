package program

import (
	"context"
	"os"
	"syscall"
	"testing"

	"github.com/stretchr/testify/require"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestRunUntilDone(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		require.Equal(t, exitStatus{}, runUntilDone(ctx, func(ctx context.Context, siblingsGroup, dependenciesGroup Group) error {
			return nil
		}, make(chan os.Signal)))
	})

	t.Run("Failure", func(t *testing.T) {
		require.Equal(t, exitStatus{code: 1}, runUntilDone(ctx, func(ctx context.Context, siblingsGroup, dependenciesGroup Group) error {
			return status.Error(codes.NotFound, "Object not found")
		}, make(chan os.Signal)))
	})

	t.Run("Signal", func(t *testing.T) {
		// Reads canceled by the signal may still report errors. The
		// signal remains the reason for exiting.
		signals := make(chan os.Signal, 1)
		signals <- syscall.SIGTERM
		require.Equal(t, exitStatus{signal: syscall.SIGTERM}, runUntilDone(ctx, func(ctx context.Context, siblingsGroup, dependenciesGroup Group) error {
			<-ctx.Done()
			return status.Error(codes.Canceled, "Read interrupted")
		}, signals))
	})
}
