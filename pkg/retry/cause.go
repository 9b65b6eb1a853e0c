package retry

import (
	"github.com/gorpipe/gor-source/pkg/failure"
)

// maximumCauseDepth bounds the number of wrappers that Cause() is
// willing to look through.
const maximumCauseDepth = 8

// Cause returns the error that should be inspected to decide whether
// a failed attempt may be retried. It looks through the following
// wrappers, stopping at the first error that is none of them:
//
//   - failure.ExecutionError, created when an action is executed on
//     behalf of the caller, such as by a cache loader.
//   - failure.Error of kind Resource or Unclassified. These are the
//     generic wrappers around failures that have not been classified
//     as terminal.
//
// Terminal errors of any other kind are returned as is.
func Cause(err error) error {
	cause := err
	for i := 0; i < maximumCauseDepth; i++ {
		var next error
		switch e := cause.(type) {
		case *failure.ExecutionError:
			next = e.Err
		case *failure.Error:
			if e.Kind != failure.Resource && e.Kind != failure.Unclassified {
				return cause
			}
			next = e.Err
		default:
			return cause
		}
		if next == nil {
			return cause
		}
		cause = next
	}
	return cause
}

// ClassifyingHook returns an ErrorHook that uses failure.Classify() to
// decide whether a failure is terminal. Failures that don't carry a
// path of their own are annotated with the path provided.
func ClassifyingHook(path string) ErrorHook {
	return func(cause error) (error, bool) {
		return failure.Classify(cause, path)
	}
}
