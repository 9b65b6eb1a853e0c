package util

import (
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/durationpb"
)

// OptionalDuration converts a Protobuf duration stored in a
// configuration file. Unset durations yield zero. Malformed and
// negative durations are rejected.
func OptionalDuration(d *durationpb.Duration, name string) (time.Duration, error) {
	if d == nil {
		return 0, nil
	}
	if err := d.CheckValid(); err != nil {
		return 0, StatusWrapfWithCode(err, codes.InvalidArgument, "Invalid %s", name)
	}
	duration := d.AsDuration()
	if duration < 0 {
		return 0, status.Errorf(codes.InvalidArgument, "Invalid %s: Duration cannot be negative", name)
	}
	return duration, nil
}
