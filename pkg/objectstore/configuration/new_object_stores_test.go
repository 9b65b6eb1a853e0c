package configuration_test

import (
	"context"
	"testing"

	"github.com/gorpipe/gor-source/pkg/objectstore/configuration"
	aws_pb "github.com/gorpipe/gor-source/pkg/proto/configuration/cloud/aws"
	gcp_pb "github.com/gorpipe/gor-source/pkg/proto/configuration/cloud/gcp"
	http_pb "github.com/gorpipe/gor-source/pkg/proto/configuration/http/client"
	pb "github.com/gorpipe/gor-source/pkg/proto/configuration/objectstore"
	"github.com/stretchr/testify/require"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestNewObjectStoresFromConfiguration(t *testing.T) {
	ctx := context.Background()

	t.Run("Default", func(t *testing.T) {
		stores, err := configuration.NewObjectStoresFromConfiguration(ctx, nil)
		require.NoError(t, err)
		require.Len(t, stores, 1)
		require.Contains(t, stores, "file")
	})

	t.Run("AllStores", func(t *testing.T) {
		stores, err := configuration.NewObjectStoresFromConfiguration(ctx, &pb.Configuration{
			S3: &aws_pb.SessionConfiguration{
				Region:           "eu-west-1",
				Endpoint:         "http://localhost:9000",
				S3ForcePathStyle: true,
				StaticCredentials: &aws_pb.StaticCredentials{
					AccessKeyId:     "minioadmin",
					SecretAccessKey: "minioadmin",
				},
			},
			Gcs: &gcp_pb.ClientOptionsConfiguration{
				Endpoint:              "http://localhost:4443/storage/v1/",
				WithoutAuthentication: true,
			},
			Http:         &http_pb.Configuration{},
			DisableLocal: true,
		})
		require.NoError(t, err)
		require.Len(t, stores, 4)
		for _, scheme := range []string{"s3", "gs", "http", "https"} {
			require.Contains(t, stores, scheme)
		}
		require.Same(t, stores["http"], stores["https"])
	})

	t.Run("InvalidHTTPClient", func(t *testing.T) {
		_, err := configuration.NewObjectStoresFromConfiguration(ctx, &pb.Configuration{
			Http: &http_pb.Configuration{
				ProxyUrl: "://invalid",
			},
		})
		require.Error(t, err)
		require.Contains(t, status.Convert(err).Message(), "Failed to create HTTP client")
	})

	t.Run("GCSHTTPClientWithAuthentication", func(t *testing.T) {
		_, err := configuration.NewObjectStoresFromConfiguration(ctx, &pb.Configuration{
			Gcs: &gcp_pb.ClientOptionsConfiguration{
				HttpClient: &http_pb.Configuration{},
			},
		})
		require.Equal(t, codes.InvalidArgument, status.Code(err))
	})
}
