package gcp

import (
	"context"
	"net/http"
	"os"

	"cloud.google.com/go/storage"
	gor_http "github.com/gorpipe/gor-source/pkg/http"
	pb "github.com/gorpipe/gor-source/pkg/proto/configuration/cloud/gcp"
	"github.com/gorpipe/gor-source/pkg/util"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// NewClientOptionsFromConfiguration creates a list of Google Cloud SDK
// client options based on options specified in a configuration file.
// The resulting client options can be used to access GCP services such
// as GCS.
func NewClientOptionsFromConfiguration(configuration *pb.ClientOptionsConfiguration, name string) ([]option.ClientOption, error) {
	if configuration == nil {
		return nil, nil
	}
	var options []option.ClientOption
	if endpoint := configuration.GetEndpoint(); endpoint != "" {
		options = append(options, option.WithEndpoint(endpoint))
	}

	if configuration.GetWithoutAuthentication() {
		options = append(options, option.WithoutAuthentication())
	} else if path := configuration.GetCredentialsFile(); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, util.StatusWrapfWithCode(err, codes.InvalidArgument, "Failed to read credentials file %#v", path)
		}
		credentials, err := google.CredentialsFromJSON(context.Background(), data, storage.ScopeReadWrite)
		if err != nil {
			return nil, util.StatusWrapfWithCode(err, codes.InvalidArgument, "Failed to parse credentials file %#v", path)
		}
		options = append(options, option.WithCredentials(credentials))
	}

	// Providing an HTTP client disables the SDK's own transport,
	// including authentication. Only do so if no authentication is
	// needed.
	if configuration.GetHttpClient() != nil {
		if !configuration.GetWithoutAuthentication() {
			return nil, status.Error(codes.InvalidArgument, "A custom HTTP client can only be used without authentication")
		}
		roundTripper, err := gor_http.NewRoundTripperFromConfiguration(configuration.GetHttpClient())
		if err != nil {
			return nil, util.StatusWrap(err, "Failed to create HTTP client")
		}
		options = append(options, option.WithHTTPClient(&http.Client{
			Transport: gor_http.NewMetricsRoundTripper(roundTripper, name),
		}))
	}
	return options, nil
}
