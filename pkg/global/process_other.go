//go:build !linux

package global

import (
	pb "github.com/gorpipe/gor-source/pkg/proto/configuration/global"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func setUmask(umask uint32) error {
	return status.Error(codes.Unimplemented, "Setting the umask is only supported on Linux")
}

func setResourceLimit(name string, resourceLimit *pb.ResourceLimit) error {
	return status.Error(codes.Unimplemented, "Setting resource limits is only supported on Linux")
}
