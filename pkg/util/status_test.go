package util_test

import (
	"testing"

	"github.com/gorpipe/gor-source/pkg/failure"
	"github.com/gorpipe/gor-source/pkg/util"
	"github.com/stretchr/testify/require"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestStatusWrap(t *testing.T) {
	t.Run("Status", func(t *testing.T) {
		require.Equal(
			t,
			status.Error(codes.NotFound, "Failed to open s3://bucket/a.gorz: Object not found"),
			util.StatusWrapf(status.Error(codes.NotFound, "Object not found"), "Failed to open %s", "s3://bucket/a.gorz"))
	})

	t.Run("Failure", func(t *testing.T) {
		err := util.StatusWrap(failure.New(failure.AccessDenied, "s3://bucket/a.gorz", "Forbidden"), "Read failed")
		require.Equal(t, codes.PermissionDenied, status.Code(err))
		require.Contains(t, status.Convert(err).Message(), "Read failed: ")
	})

	t.Run("PlainError", func(t *testing.T) {
		require.Equal(
			t,
			status.Error(codes.Unknown, "Read failed: EOF"),
			util.StatusWrap(errorString("EOF"), "Read failed"))
	})

	t.Run("WithCode", func(t *testing.T) {
		require.Equal(
			t,
			status.Error(codes.InvalidArgument, "Invalid retry configuration: Unknown policy"),
			util.StatusWrapWithCode(status.Error(codes.Internal, "Unknown policy"), codes.InvalidArgument, "Invalid retry configuration"))
		require.Equal(
			t,
			status.Error(codes.Unavailable, "Attempt 3: Service unavailable"),
			util.StatusWrapfWithCode(status.Error(codes.Internal, "Service unavailable"), codes.Unavailable, "Attempt %d", 3))
	})
}

type errorString string

func (e errorString) Error() string { return string(e) }
