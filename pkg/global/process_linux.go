//go:build linux

package global

import (
	pb "github.com/gorpipe/gor-source/pkg/proto/configuration/global"

	"golang.org/x/sys/unix"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Resources that are worth adjusting for processes that keep many
// object store connections and decompression buffers open.
var resourceLimitNames = map[string]int{
	"AS":      unix.RLIMIT_AS,
	"DATA":    unix.RLIMIT_DATA,
	"NOFILE":  unix.RLIMIT_NOFILE,
	"NPROC":   unix.RLIMIT_NPROC,
	"MEMLOCK": unix.RLIMIT_MEMLOCK,
}

func setUmask(umask uint32) error {
	unix.Umask(int(umask))
	return nil
}

func rlimitValue(limit *wrapperspb.UInt64Value) uint64 {
	if limit == nil {
		return unix.RLIM_INFINITY
	}
	return limit.Value
}

func setResourceLimit(name string, resourceLimit *pb.ResourceLimit) error {
	resource, ok := resourceLimitNames[name]
	if !ok {
		return status.Error(codes.InvalidArgument, "Resource name is not supported by this operating system")
	}
	if err := unix.Setrlimit(resource, &unix.Rlimit{
		Cur: rlimitValue(resourceLimit.GetSoftLimit()),
		Max: rlimitValue(resourceLimit.GetHardLimit()),
	}); err != nil {
		return status.Errorf(codes.PermissionDenied, "setrlimit: %s", err)
	}
	return nil
}
