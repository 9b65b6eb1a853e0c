package util_test

import (
	"testing"
	"time"

	pb "github.com/gorpipe/gor-source/pkg/proto/configuration/retry"
	"github.com/gorpipe/gor-source/pkg/util"
	"github.com/stretchr/testify/require"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestUnmarshalConfigurationFromSnippet(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		var configuration pb.Configuration
		require.NoError(t, util.UnmarshalConfigurationFromSnippet(
			"example.jsonnet",
			`{ fixedRetries: { initialSleep: std.extVar("INITIAL_SLEEP"), retries: 2 + 3 } }`,
			[]string{"INITIAL_SLEEP=2.5s"},
			&configuration))
		fixedRetries := configuration.GetFixedRetries()
		require.Equal(t, 2500*time.Millisecond, fixedRetries.GetInitialSleep().AsDuration())
		require.Equal(t, int32(5), fixedRetries.GetRetries())
	})

	t.Run("UnknownField", func(t *testing.T) {
		var configuration pb.Configuration
		err := util.UnmarshalConfigurationFromSnippet(
			"example.jsonnet",
			`{ fixedRetriez: {} }`,
			nil,
			&configuration)
		require.Equal(t, codes.InvalidArgument, status.Code(err))
		require.Contains(t, status.Convert(err).Message(), "Failed to unmarshal configuration")
	})

	t.Run("InvalidEnvironment", func(t *testing.T) {
		var configuration pb.Configuration
		err := util.UnmarshalConfigurationFromSnippet("example.jsonnet", `{}`, []string{"INITIAL_SLEEP"}, &configuration)
		require.Equal(t, status.Error(codes.InvalidArgument, "Invalid environment variable: \"INITIAL_SLEEP\""), err)
	})
}
