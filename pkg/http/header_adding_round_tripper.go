package http

import (
	"net/http"

	pb "github.com/gorpipe/gor-source/pkg/proto/configuration/http/client"
)

type headerAddingRoundTripper struct {
	base         http.RoundTripper
	headerValues []*pb.HeaderValues
}

// NewHeaderAddingRoundTripper is a decorator for RoundTripper that adds
// additional HTTP header values to all outgoing requests.
func NewHeaderAddingRoundTripper(base http.RoundTripper, headerValues []*pb.HeaderValues) http.RoundTripper {
	return &headerAddingRoundTripper{
		base:         base,
		headerValues: headerValues,
	}
}

func (rt *headerAddingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	newReq := *req
	newReq.Header = req.Header.Clone()
	if newReq.Header == nil {
		newReq.Header = http.Header{}
	}
	for _, headerValues := range rt.headerValues {
		for _, value := range headerValues.GetValues() {
			newReq.Header.Add(headerValues.GetHeader(), value)
		}
	}
	return rt.base.RoundTrip(&newReq)
}
