package program_test

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/gorpipe/gor-source/pkg/program"
	"github.com/stretchr/testify/require"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestRunLocal(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		var completed atomic.Int32
		require.NoError(t, program.RunLocal(ctx, func(ctx context.Context, siblingsGroup, dependenciesGroup program.Group) error {
			for i := 0; i < 3; i++ {
				siblingsGroup.Go(func(ctx context.Context, siblingsGroup, dependenciesGroup program.Group) error {
					completed.Add(1)
					return nil
				})
			}
			return nil
		}))
		require.Equal(t, int32(3), completed.Load())
	})

	t.Run("FailureCancelsSiblings", func(t *testing.T) {
		err := program.RunLocal(ctx, func(ctx context.Context, siblingsGroup, dependenciesGroup program.Group) error {
			siblingsGroup.Go(func(ctx context.Context, siblingsGroup, dependenciesGroup program.Group) error {
				<-ctx.Done()
				return nil
			})
			return status.Error(codes.NotFound, "Object not found")
		})
		require.Equal(t, status.Error(codes.NotFound, "Object not found"), err)
	})

	t.Run("DependenciesOutliveSiblings", func(t *testing.T) {
		siblingDone := make(chan struct{})
		require.NoError(t, program.RunLocal(ctx, func(ctx context.Context, siblingsGroup, dependenciesGroup program.Group) error {
			dependenciesGroup.Go(func(ctx context.Context, siblingsGroup, dependenciesGroup program.Group) error {
				<-ctx.Done()
				select {
				case <-siblingDone:
					return nil
				default:
					return status.Error(codes.Internal, "Dependency canceled before its siblings completed")
				}
			})
			close(siblingDone)
			return nil
		}))
	})
}
