package util_test

import (
	"testing"
	"time"

	"github.com/gorpipe/gor-source/pkg/util"
	"github.com/stretchr/testify/require"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/durationpb"
)

func TestOptionalDuration(t *testing.T) {
	t.Run("Unset", func(t *testing.T) {
		d, err := util.OptionalDuration(nil, "expiration")
		require.NoError(t, err)
		require.Equal(t, time.Duration(0), d)
	})

	t.Run("Set", func(t *testing.T) {
		d, err := util.OptionalDuration(durationpb.New(90*time.Second), "expiration")
		require.NoError(t, err)
		require.Equal(t, 90*time.Second, d)
	})

	t.Run("Negative", func(t *testing.T) {
		_, err := util.OptionalDuration(durationpb.New(-time.Second), "expiration")
		require.Equal(t, status.Error(codes.InvalidArgument, "Invalid expiration: Duration cannot be negative"), err)
	})

	t.Run("Malformed", func(t *testing.T) {
		_, err := util.OptionalDuration(&durationpb.Duration{Seconds: 1, Nanos: -1}, "expiration")
		require.Equal(t, codes.InvalidArgument, status.Code(err))
	})
}
