package retry

import (
	"github.com/gorpipe/gor-source/pkg/clock"
	pb "github.com/gorpipe/gor-source/pkg/proto/configuration/retry"
	"github.com/gorpipe/gor-source/pkg/util"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// NewPolicyFromConfiguration creates a Policy based on parameters
// provided in a configuration file.
func NewPolicyFromConfiguration(configuration *pb.Configuration) (Policy, error) {
	if configuration == nil {
		return nil, status.Error(codes.InvalidArgument, "No retry configuration provided")
	}
	switch policyConfiguration := configuration.Policy.(type) {
	case *pb.Configuration_FixedWait:
		initialDuration, err := util.OptionalDuration(policyConfiguration.FixedWait.GetInitialDuration(), "initial duration")
		if err != nil {
			return nil, err
		}
		totalDuration, err := util.OptionalDuration(policyConfiguration.FixedWait.GetTotalDuration(), "total duration")
		if err != nil {
			return nil, err
		}
		return NewFixedWaitPolicy(initialDuration, totalDuration), nil
	case *pb.Configuration_FixedRetries:
		fixedRetries := policyConfiguration.FixedRetries
		if fixedRetries.GetRetries() < 0 {
			return nil, status.Errorf(codes.InvalidArgument, "Invalid number of retries: %d", fixedRetries.GetRetries())
		}
		initialSleep, err := util.OptionalDuration(fixedRetries.GetInitialSleep(), "initial sleep")
		if err != nil {
			return nil, err
		}
		maximumSleep, err := util.OptionalDuration(fixedRetries.GetMaximumSleep(), "maximum sleep")
		if err != nil {
			return nil, err
		}
		return NewFixedRetriesPolicy(
			initialSleep,
			maximumSleep,
			fixedRetries.GetBackoffFactor(),
			int(fixedRetries.GetRetries())), nil
	default:
		return nil, status.Error(codes.InvalidArgument, "No retry policy provided")
	}
}

// NewHandlerFactoryFromConfiguration creates a HandlerFactory based on
// parameters provided in a configuration file. Handlers created by the
// factory classify failures using failure.Classify().
func NewHandlerFactoryFromConfiguration(configuration *pb.Configuration, clock clock.Clock) (HandlerFactory, error) {
	policy, err := NewPolicyFromConfiguration(configuration)
	if err != nil {
		return nil, err
	}
	attemptTimeout, err := util.OptionalDuration(configuration.GetAttemptTimeout(), "attempt timeout")
	if err != nil {
		return nil, err
	}
	return func(path string) Handler {
		return NewHandler(clock, policy, path, ClassifyingHook(path), attemptTimeout)
	}, nil
}
