package http

import (
	"context"
	"net/http"

	pb "github.com/gorpipe/gor-source/pkg/proto/configuration/http/client"
	"github.com/gorpipe/gor-source/pkg/util"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// NewOAuth2AddingRoundTripper is a decorator for RoundTripper that
// requests OAuth2 tokens and adds them to the HTTP headers of all
// outgoing requests.
func NewOAuth2AddingRoundTripper(base http.RoundTripper, configuration *pb.OAuth2Configuration) (http.RoundTripper, error) {
	source, err := NewOAuth2TokenSourceFromConfiguration(configuration)
	if err != nil {
		return nil, err
	}
	return &oauth2.Transport{
		Source: source,
		Base:   base,
	}, nil
}

// NewOAuth2TokenSourceFromConfiguration uses the given configuration to
// create a token source for HTTP clients.
func NewOAuth2TokenSourceFromConfiguration(configuration *pb.OAuth2Configuration) (oauth2.TokenSource, error) {
	credentials := configuration.GetClientCredentials()
	if credentials == nil {
		return nil, status.Error(codes.InvalidArgument, "No OAuth2 credentials provided")
	}
	roundTripper, err := NewRoundTripperFromConfiguration(credentials.GetHttpClient())
	if err != nil {
		return nil, util.StatusWrap(err, "Failed to create HTTP client")
	}
	httpClient := &http.Client{
		Transport: NewMetricsRoundTripper(roundTripper, "OAuth2ClientCredentials"),
	}
	config := &clientcredentials.Config{
		ClientID:     credentials.GetClientId(),
		ClientSecret: credentials.GetClientSecret(),
		TokenURL:     credentials.GetTokenEndpointUrl(),
		Scopes:       configuration.GetScopes(),
	}
	return config.TokenSource(
		context.WithValue(context.Background(), oauth2.HTTPClient, httpClient),
	), nil
}
