package util

import (
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func prependToStatus(err error, code *codes.Code, msg string) error {
	p := status.Convert(err).Proto()
	if code != nil {
		p.Code = int32(*code)
	}
	p.Message = msg + ": " + p.Message
	return status.ErrorProto(p)
}

// StatusWrap prepends a string to the message of an existing error.
// The code of the error is retained. This also holds for errors that
// implement GRPCStatus(), such as the ones created by package failure.
func StatusWrap(err error, msg string) error {
	return prependToStatus(err, nil, msg)
}

// StatusWrapf is identical to StatusWrap, except that it formats the
// prepended string.
func StatusWrapf(err error, format string, args ...any) error {
	return prependToStatus(err, nil, fmt.Sprintf(format, args...))
}

// StatusWrapWithCode prepends a string to the message of an existing
// error, while replacing its code. This can be used when an error
// returned by a lower layer needs to be reported under a different
// code, such as InvalidArgument for configuration errors.
func StatusWrapWithCode(err error, code codes.Code, msg string) error {
	return prependToStatus(err, &code, msg)
}

// StatusWrapfWithCode is identical to StatusWrapWithCode, except that
// it formats the prepended string.
func StatusWrapfWithCode(err error, code codes.Code, format string, args ...any) error {
	return prependToStatus(err, &code, fmt.Sprintf(format, args...))
}
