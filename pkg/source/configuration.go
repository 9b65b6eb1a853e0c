package source

import (
	"time"

	"github.com/gorpipe/gor-source/pkg/clock"
	"github.com/gorpipe/gor-source/pkg/eviction"
	pb "github.com/gorpipe/gor-source/pkg/proto/configuration/source"
	"github.com/gorpipe/gor-source/pkg/util"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	// DefaultMetadataCacheShards is the number of shards of a
	// MetadataCache if none is configured.
	DefaultMetadataCacheShards = 4
	// DefaultMetadataCacheExpiration is the amount of time after
	// which metadata cache entries expire, if none is configured.
	DefaultMetadataCacheExpiration = 5 * time.Minute
	// DefaultMetadataCacheMaximumEntries bounds the size of a
	// MetadataCache if no bound is configured.
	DefaultMetadataCacheMaximumEntries = 100000
)

// NewMetadataCacheFromConfiguration creates a MetadataCache based on
// parameters provided in a configuration file. A nil configuration
// yields a cache with default parameters.
func NewMetadataCacheFromConfiguration(configuration *pb.MetadataCacheConfiguration, clock clock.Clock) (*MetadataCache, error) {
	if configuration.GetShards() < 0 || configuration.GetMaximumEntries() < 0 {
		return nil, status.Error(codes.InvalidArgument, "Metadata cache parameters cannot be negative")
	}
	shards := int(configuration.GetShards())
	if shards == 0 {
		shards = DefaultMetadataCacheShards
	}
	expiration, err := util.OptionalDuration(configuration.GetExpiration(), "metadata cache expiration")
	if err != nil {
		return nil, err
	}
	if expiration == 0 {
		expiration = DefaultMetadataCacheExpiration
	}
	maximumEntries := int(configuration.GetMaximumEntries())
	if maximumEntries == 0 {
		maximumEntries = DefaultMetadataCacheMaximumEntries
	}

	// Validate the policy once, so that creating the sets of the
	// individual shards cannot fail.
	if _, err := eviction.NewSetFromConfiguration[string](configuration.GetReplacementPolicy()); err != nil {
		return nil, util.StatusWrap(err, "Failed to create eviction set")
	}
	return NewMetadataCache(clock, shards, maximumEntries, expiration, func() eviction.Set[string] {
		set, _ := eviction.NewSetFromConfiguration[string](configuration.GetReplacementPolicy())
		return eviction.NewMetricsSet(set, "MetadataCache")
	}), nil
}
