package http

import (
	"net/http"

	pb "github.com/gorpipe/gor-source/pkg/proto/configuration/http/client"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Client is an interface around Go's standard HTTP client type.
// It has been added to aid unit testing.
type Client interface {
	Do(req *http.Request) (*http.Response, error)
}

var _ Client = &http.Client{}

// NewClientFromConfiguration creates an HTTP client based on
// parameters provided in a configuration file. Requests performed by
// the client are reported through Prometheus under the provided name,
// and are traced using OpenTelemetry.
func NewClientFromConfiguration(configuration *pb.Configuration, name string) (*http.Client, error) {
	roundTripper, err := NewRoundTripperFromConfiguration(configuration)
	if err != nil {
		return nil, err
	}
	return &http.Client{
		Transport: otelhttp.NewTransport(NewMetricsRoundTripper(roundTripper, name)),
	}, nil
}
