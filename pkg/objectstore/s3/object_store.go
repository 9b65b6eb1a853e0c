package s3

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	smithyhttp "github.com/aws/smithy-go/transport/http"
	cloud_aws "github.com/gorpipe/gor-source/pkg/cloud/aws"
	"github.com/gorpipe/gor-source/pkg/failure"
	"github.com/gorpipe/gor-source/pkg/source"
)

// convertError converts an error returned by the AWS SDK to a raw
// failure that can be classified.
func convertError(err error, path string) error {
	var responseErr *smithyhttp.ResponseError
	if errors.As(err, &responseErr) {
		statusCode := responseErr.HTTPStatusCode()
		message := http.StatusText(statusCode)
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) {
			if m := apiErr.ErrorMessage(); m != "" {
				message = m
			} else if c := apiErr.ErrorCode(); c != "" {
				message = c
			}
		}
		return failure.NewStatusFailure(statusCode, message, path, err)
	}

	var invalidParamsErr smithy.InvalidParamsError
	var serializationErr *smithy.SerializationError
	if errors.As(err, &invalidParamsErr) || errors.As(err, &serializationErr) {
		return failure.NewClientFailure(path, err)
	}

	// Operations that failed without receiving a response have
	// already been retried by the SDK. Timeouts of individual
	// attempts are left to the caller.
	var operationErr *smithy.OperationError
	if errors.As(err, &operationErr) && !errors.Is(err, context.DeadlineExceeded) && !errors.Is(err, context.Canceled) {
		return failure.NewClientFailure(path, err)
	}
	return failure.NewOtherFailure(path, err)
}

type objectStore struct {
	client cloud_aws.S3Client
}

// NewObjectStore creates an ObjectStore that is backed by S3, or any
// other service that implements the S3 API.
func NewObjectStore(client cloud_aws.S3Client) source.ObjectStore {
	return &objectStore{
		client: client,
	}
}

func (s *objectStore) GetRange(ctx context.Context, location source.Location, r source.RequestRange) (io.ReadCloser, error) {
	input := &s3.GetObjectInput{
		Bucket: aws.String(location.Bucket),
		Key:    aws.String(location.Key),
	}
	if !r.IsFull() {
		input.Range = aws.String(r.HTTPHeader())
	}
	output, err := s.client.GetObject(ctx, input)
	if err != nil {
		return nil, convertError(err, location.String())
	}
	return output.Body, nil
}

func (s *objectStore) GetAttributes(ctx context.Context, location source.Location) (source.Attributes, error) {
	output, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(location.Bucket),
		Key:    aws.String(location.Key),
	})
	if err != nil {
		return source.Attributes{}, convertError(err, location.String())
	}
	return source.Attributes{
		Length:       aws.ToInt64(output.ContentLength),
		LastModified: aws.ToTime(output.LastModified),
		ETag:         aws.ToString(output.ETag),
		ContentType:  aws.ToString(output.ContentType),
	}, nil
}

func (s *objectStore) Put(ctx context.Context, location source.Location, body io.ReadSeeker, size int64) error {
	if _, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(location.Bucket),
		Key:           aws.String(location.Key),
		Body:          body,
		ContentLength: aws.Int64(size),
	}); err != nil {
		return convertError(err, location.String())
	}
	return nil
}

func (s *objectStore) Delete(ctx context.Context, bucket string, keys []string) error {
	if len(keys) == 0 {
		return nil
	}
	objects := make([]types.ObjectIdentifier, 0, len(keys))
	for _, key := range keys {
		objects = append(objects, types.ObjectIdentifier{Key: aws.String(key)})
	}
	output, err := s.client.DeleteObjects(ctx, &s3.DeleteObjectsInput{
		Bucket: aws.String(bucket),
		Delete: &types.Delete{
			Objects: objects,
			Quiet:   aws.Bool(true),
		},
	})
	if err != nil {
		return convertError(err, bucket)
	}

	// Failures of individual keys are reported in the response
	// body. Absent keys are not reported as failures by S3.
	if len(output.Errors) > 0 {
		deleteErr := output.Errors[0]
		path := (source.Location{Bucket: bucket, Key: aws.ToString(deleteErr.Key)}).String()
		statusCode := http.StatusInternalServerError
		if aws.ToString(deleteErr.Code) == "AccessDenied" {
			statusCode = http.StatusForbidden
		}
		return failure.NewStatusFailure(statusCode, aws.ToString(deleteErr.Message), path, nil)
	}
	return nil
}

func (s *objectStore) List(ctx context.Context, bucket, prefix, delimiter, continuationToken string, maxKeys int) (source.ListPage, error) {
	input := &s3.ListObjectsV2Input{
		Bucket:  aws.String(bucket),
		Prefix:  aws.String(prefix),
		MaxKeys: aws.Int32(int32(maxKeys)),
	}
	if delimiter != "" {
		input.Delimiter = aws.String(delimiter)
	}
	if continuationToken != "" {
		input.ContinuationToken = aws.String(continuationToken)
	}
	output, err := s.client.ListObjectsV2(ctx, input)
	if err != nil {
		return source.ListPage{}, convertError(err, (source.Location{Bucket: bucket, Key: prefix}).String())
	}

	var page source.ListPage
	for _, object := range output.Contents {
		page.Keys = append(page.Keys, aws.ToString(object.Key))
	}
	for _, commonPrefix := range output.CommonPrefixes {
		page.CommonPrefixes = append(page.CommonPrefixes, aws.ToString(commonPrefix.Prefix))
	}
	if aws.ToBool(output.IsTruncated) {
		page.NextContinuationToken = aws.ToString(output.NextContinuationToken)
	}
	return page, nil
}
