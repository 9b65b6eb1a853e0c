package failure

import (
	"google.golang.org/grpc/codes"
)

// Kind is the terminal error taxonomy exposed to callers of this
// module. Callers should branch on the kind of an error, as opposed to
// inspecting status codes returned by a specific transport.
type Kind int

const (
	// Unclassified errors are fatal errors that could not be mapped
	// onto any of the other kinds, such as an exhausted retry budget.
	Unclassified Kind = iota
	// NotFound indicates that the resource does not exist.
	NotFound
	// Unauthorized indicates that credentials were missing or invalid.
	Unauthorized
	// AccessDenied indicates that the credentials do not permit
	// access to the resource.
	AccessDenied
	// BadRequest indicates that the request was rejected as invalid.
	BadRequest
	// Resource is a generic, path carrying I/O error.
	Resource
	// Transport indicates that the client failed to issue the
	// request, without obtaining a status code from the server.
	Transport
	// DataFormat indicates that data is not in the expected framing.
	DataFormat
	// System indicates codec setup failures and interrupted retries.
	System
)

var kindNames = [...]string{
	Unclassified: "Unclassified",
	NotFound:     "NotFound",
	Unauthorized: "Unauthorized",
	AccessDenied: "AccessDenied",
	BadRequest:   "BadRequest",
	Resource:     "Resource",
	Transport:    "Transport",
	DataFormat:   "DataFormat",
	System:       "System",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Unknown"
	}
	return kindNames[k]
}

// Code returns the gRPC status code that corresponds to the kind.
func (k Kind) Code() codes.Code {
	switch k {
	case NotFound:
		return codes.NotFound
	case Unauthorized:
		return codes.Unauthenticated
	case AccessDenied:
		return codes.PermissionDenied
	case BadRequest:
		return codes.InvalidArgument
	case Resource, Transport:
		return codes.Unavailable
	case DataFormat:
		return codes.DataLoss
	case System:
		return codes.Internal
	default:
		return codes.Unknown
	}
}
