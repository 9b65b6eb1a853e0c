package source_test

import (
	"context"
	"testing"
	"time"

	"github.com/gorpipe/gor-source/internal/mock"
	eviction_pb "github.com/gorpipe/gor-source/pkg/proto/configuration/eviction"
	pb "github.com/gorpipe/gor-source/pkg/proto/configuration/source"
	"github.com/gorpipe/gor-source/pkg/source"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/durationpb"
)

func TestNewMetadataCacheFromConfiguration(t *testing.T) {
	ctrl, ctx := gomock.WithContext(context.Background(), t)

	t.Run("Expiration", func(t *testing.T) {
		clock := mock.NewMockClock(ctrl)
		cache, err := source.NewMetadataCacheFromConfiguration(&pb.MetadataCacheConfiguration{
			Expiration:        durationpb.New(time.Minute),
			ReplacementPolicy: eviction_pb.CacheReplacementPolicy_FIRST_IN_FIRST_OUT,
		}, clock)
		require.NoError(t, err)

		fetches := 0
		fetch := func(ctx context.Context) (source.Attributes, error) {
			fetches++
			return source.Attributes{Length: int64(fetches)}, nil
		}

		clock.EXPECT().Now().Return(time.Unix(1000, 0))
		attributes, err := cache.Get(ctx, "gs://bucket/key", fetch)
		require.NoError(t, err)
		require.Equal(t, int64(1), attributes.Length)

		// Entries expire after the configured duration instead of
		// the default.
		clock.EXPECT().Now().Return(time.Unix(1060, 0)).Times(2)
		attributes, err = cache.Get(ctx, "gs://bucket/key", fetch)
		require.NoError(t, err)
		require.Equal(t, int64(2), attributes.Length)
	})

	t.Run("NegativeShards", func(t *testing.T) {
		_, err := source.NewMetadataCacheFromConfiguration(&pb.MetadataCacheConfiguration{
			Shards: -1,
		}, mock.NewMockClock(ctrl))
		require.Equal(t, status.Error(codes.InvalidArgument, "Metadata cache parameters cannot be negative"), err)
	})

	t.Run("UnknownReplacementPolicy", func(t *testing.T) {
		_, err := source.NewMetadataCacheFromConfiguration(&pb.MetadataCacheConfiguration{
			ReplacementPolicy: eviction_pb.CacheReplacementPolicy(42),
		}, mock.NewMockClock(ctrl))
		require.Equal(t, status.Error(codes.InvalidArgument, "Failed to create eviction set: Unknown cache replacement policy 42"), err)
	})
}
