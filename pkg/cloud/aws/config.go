package aws

import (
	"context"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/credentials/stscreds"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	gor_http "github.com/gorpipe/gor-source/pkg/http"
	pb "github.com/gorpipe/gor-source/pkg/proto/configuration/cloud/aws"
	"github.com/gorpipe/gor-source/pkg/util"
)

// NewConfigFromConfiguration creates a new AWS SDK config object based
// on options specified in a session configuration. The resulting
// config object can be used to access AWS services such as S3.
func NewConfigFromConfiguration(configuration *pb.SessionConfiguration, name string) (aws.Config, error) {
	roundTripper, err := gor_http.NewRoundTripperFromConfiguration(configuration.GetHttpClient())
	if err != nil {
		return aws.Config{}, util.StatusWrap(err, "Failed to create HTTP client")
	}
	loadOptions := []func(*config.LoadOptions) error{
		config.WithHTTPClient(&http.Client{
			Transport: gor_http.NewMetricsRoundTripper(roundTripper, name),
		}),
	}
	if region := configuration.GetRegion(); region != "" {
		loadOptions = append(loadOptions, config.WithRegion(region))
	}
	if endpoint := configuration.GetEndpoint(); endpoint != "" {
		loadOptions = append(loadOptions, config.WithBaseEndpoint(endpoint))
	}
	if staticCredentials := configuration.GetStaticCredentials(); staticCredentials != nil {
		loadOptions = append(loadOptions,
			config.WithCredentialsProvider(
				credentials.NewStaticCredentialsProvider(
					staticCredentials.GetAccessKeyId(),
					staticCredentials.GetSecretAccessKey(),
					staticCredentials.GetSessionToken())))
	}
	cfg, err := config.LoadDefaultConfig(context.Background(), loadOptions...)
	if err != nil {
		return aws.Config{}, util.StatusWrap(err, "Failed to load AWS configuration")
	}
	if roleArn := configuration.GetAssumeRoleArn(); roleArn != "" {
		cfg.Credentials = aws.NewCredentialsCache(
			stscreds.NewAssumeRoleProvider(sts.NewFromConfig(cfg), roleArn))
	}
	return cfg, nil
}

// NewS3ClientFromConfiguration creates an S3 client based on options
// specified in a session configuration.
func NewS3ClientFromConfiguration(configuration *pb.SessionConfiguration, name string) (*s3.Client, error) {
	cfg, err := NewConfigFromConfiguration(configuration, name)
	if err != nil {
		return nil, err
	}
	forcePathStyle := configuration.GetS3ForcePathStyle()
	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.UsePathStyle = forcePathStyle
	}), nil
}
