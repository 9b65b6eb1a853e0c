package s3_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	aws_s3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	smithyhttp "github.com/aws/smithy-go/transport/http"
	"github.com/gorpipe/gor-source/internal/mock"
	"github.com/gorpipe/gor-source/pkg/failure"
	"github.com/gorpipe/gor-source/pkg/objectstore/s3"
	"github.com/gorpipe/gor-source/pkg/source"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newResponseError(operationName string, statusCode int, code, message string) error {
	return &smithy.OperationError{
		ServiceID:     "S3",
		OperationName: operationName,
		Err: &smithyhttp.ResponseError{
			Response: &smithyhttp.Response{Response: &http.Response{StatusCode: statusCode}},
			Err:      &smithy.GenericAPIError{Code: code, Message: message},
		},
	}
}

func TestObjectStoreGetRange(t *testing.T) {
	ctrl, ctx := gomock.WithContext(context.Background(), t)

	client := mock.NewMockS3Client(ctrl)
	objectStore := s3.NewObjectStore(client)
	location := source.Location{Bucket: "mybucket", Key: "dir/file.gorz"}

	t.Run("FullRange", func(t *testing.T) {
		client.EXPECT().GetObject(ctx, &aws_s3.GetObjectInput{
			Bucket: aws.String("mybucket"),
			Key:    aws.String("dir/file.gorz"),
		}).Return(&aws_s3.GetObjectOutput{
			Body: io.NopCloser(strings.NewReader("Hello")),
		}, nil)

		r, err := objectStore.GetRange(ctx, location, source.FullRange())
		require.NoError(t, err)
		data, err := io.ReadAll(r)
		require.NoError(t, err)
		require.Equal(t, "Hello", string(data))
	})

	t.Run("PartialRange", func(t *testing.T) {
		client.EXPECT().GetObject(ctx, &aws_s3.GetObjectInput{
			Bucket: aws.String("mybucket"),
			Key:    aws.String("dir/file.gorz"),
			Range:  aws.String("bytes=100-119"),
		}).Return(&aws_s3.GetObjectOutput{
			Body: io.NopCloser(strings.NewReader("01234567890123456789")),
		}, nil)

		r, err := objectStore.GetRange(ctx, location, source.RangeFromFirstLength(100, 20))
		require.NoError(t, err)
		require.NoError(t, r.Close())
	})

	t.Run("NotFound", func(t *testing.T) {
		client.EXPECT().GetObject(ctx, gomock.Any()).
			Return(nil, newResponseError("GetObject", 404, "NoSuchKey", "The specified key does not exist."))

		_, err := objectStore.GetRange(ctx, location, source.FullRange())
		var raw *failure.RawFailure
		require.ErrorAs(t, err, &raw)
		require.Equal(t, failure.RawStatus, raw.Kind)
		require.Equal(t, 404, raw.StatusCode)
		require.Equal(t, "The specified key does not exist.", raw.Message)
		require.Equal(t, "mybucket/dir/file.gorz", raw.Path)

		mapped, terminal := failure.Classify(err, "")
		require.True(t, terminal)
		require.True(t, failure.IsKind(mapped, failure.NotFound))
	})

	t.Run("ServiceUnavailable", func(t *testing.T) {
		client.EXPECT().GetObject(ctx, gomock.Any()).
			Return(nil, newResponseError("GetObject", 503, "SlowDown", ""))

		_, err := objectStore.GetRange(ctx, location, source.FullRange())
		var raw *failure.RawFailure
		require.ErrorAs(t, err, &raw)
		require.Equal(t, 503, raw.StatusCode)
		require.Equal(t, "SlowDown", raw.Message)

		_, terminal := failure.Classify(err, "")
		require.False(t, terminal)
	})

	t.Run("SerializationFailure", func(t *testing.T) {
		client.EXPECT().GetObject(ctx, gomock.Any()).
			Return(nil, &smithy.OperationError{
				ServiceID:     "S3",
				OperationName: "GetObject",
				Err:           &smithy.SerializationError{Err: errors.New("invalid header")},
			})

		_, err := objectStore.GetRange(ctx, location, source.FullRange())
		var raw *failure.RawFailure
		require.ErrorAs(t, err, &raw)
		require.Equal(t, failure.RawClient, raw.Kind)

		mapped, terminal := failure.Classify(err, "")
		require.True(t, terminal)
		require.True(t, failure.IsKind(mapped, failure.Transport))
	})

	t.Run("OperationFailureWithoutResponse", func(t *testing.T) {
		client.EXPECT().GetObject(ctx, gomock.Any()).
			Return(nil, &smithy.OperationError{
				ServiceID:     "S3",
				OperationName: "GetObject",
				Err:           errors.New("dial tcp: connection refused"),
			})

		_, err := objectStore.GetRange(ctx, location, source.FullRange())
		var raw *failure.RawFailure
		require.ErrorAs(t, err, &raw)
		require.Equal(t, failure.RawClient, raw.Kind)

		mapped, terminal := failure.Classify(err, "")
		require.True(t, terminal)
		require.True(t, failure.IsKind(mapped, failure.Transport))
	})

	t.Run("AttemptTimeout", func(t *testing.T) {
		client.EXPECT().GetObject(ctx, gomock.Any()).
			Return(nil, &smithy.OperationError{
				ServiceID:     "S3",
				OperationName: "GetObject",
				Err:           context.DeadlineExceeded,
			})

		_, err := objectStore.GetRange(ctx, location, source.FullRange())
		var raw *failure.RawFailure
		require.ErrorAs(t, err, &raw)
		require.Equal(t, failure.RawOther, raw.Kind)
	})

	t.Run("ConnectionFailure", func(t *testing.T) {
		client.EXPECT().GetObject(ctx, gomock.Any()).
			Return(nil, errors.New("connection reset by peer"))

		_, err := objectStore.GetRange(ctx, location, source.FullRange())
		var raw *failure.RawFailure
		require.ErrorAs(t, err, &raw)
		require.Equal(t, failure.RawOther, raw.Kind)
	})
}

func TestObjectStoreGetAttributes(t *testing.T) {
	ctrl, ctx := gomock.WithContext(context.Background(), t)

	client := mock.NewMockS3Client(ctrl)
	objectStore := s3.NewObjectStore(client)
	location := source.Location{Bucket: "mybucket", Key: "file.gorz"}

	t.Run("Success", func(t *testing.T) {
		client.EXPECT().HeadObject(ctx, &aws_s3.HeadObjectInput{
			Bucket: aws.String("mybucket"),
			Key:    aws.String("file.gorz"),
		}).Return(&aws_s3.HeadObjectOutput{
			ContentLength: aws.Int64(120),
			LastModified:  aws.Time(time.Unix(1700000000, 0)),
			ETag:          aws.String("\"d41d8cd98f00b204e9800998ecf8427e\""),
			ContentType:   aws.String("application/octet-stream"),
		}, nil)

		attributes, err := objectStore.GetAttributes(ctx, location)
		require.NoError(t, err)
		require.Equal(t, source.Attributes{
			Length:       120,
			LastModified: time.Unix(1700000000, 0),
			ETag:         "\"d41d8cd98f00b204e9800998ecf8427e\"",
			ContentType:  "application/octet-stream",
		}, attributes)
	})

	t.Run("Forbidden", func(t *testing.T) {
		// HEAD responses carry no body, so only the status
		// code is available.
		client.EXPECT().HeadObject(ctx, gomock.Any()).
			Return(nil, newResponseError("HeadObject", 403, "", ""))

		_, err := objectStore.GetAttributes(ctx, location)
		var raw *failure.RawFailure
		require.ErrorAs(t, err, &raw)
		require.Equal(t, "Forbidden", raw.Message)

		mapped, terminal := failure.Classify(err, "")
		require.True(t, terminal)
		require.True(t, failure.IsKind(mapped, failure.AccessDenied))
	})
}

func TestObjectStorePut(t *testing.T) {
	ctrl, ctx := gomock.WithContext(context.Background(), t)

	client := mock.NewMockS3Client(ctrl)
	objectStore := s3.NewObjectStore(client)

	body := strings.NewReader("Hello")
	client.EXPECT().PutObject(ctx, &aws_s3.PutObjectInput{
		Bucket:        aws.String("mybucket"),
		Key:           aws.String("out.gor"),
		Body:          body,
		ContentLength: aws.Int64(5),
	}).Return(&aws_s3.PutObjectOutput{}, nil)

	require.NoError(t, objectStore.Put(ctx, source.Location{Bucket: "mybucket", Key: "out.gor"}, body, 5))
}

func TestObjectStoreDelete(t *testing.T) {
	ctrl, ctx := gomock.WithContext(context.Background(), t)

	client := mock.NewMockS3Client(ctrl)
	objectStore := s3.NewObjectStore(client)

	t.Run("NoKeys", func(t *testing.T) {
		require.NoError(t, objectStore.Delete(ctx, "mybucket", nil))
	})

	t.Run("Success", func(t *testing.T) {
		client.EXPECT().DeleteObjects(ctx, &aws_s3.DeleteObjectsInput{
			Bucket: aws.String("mybucket"),
			Delete: &types.Delete{
				Objects: []types.ObjectIdentifier{
					{Key: aws.String("a.gor")},
					{Key: aws.String("b.gor")},
				},
				Quiet: aws.Bool(true),
			},
		}).Return(&aws_s3.DeleteObjectsOutput{}, nil)

		require.NoError(t, objectStore.Delete(ctx, "mybucket", []string{"a.gor", "b.gor"}))
	})

	t.Run("KeyAccessDenied", func(t *testing.T) {
		client.EXPECT().DeleteObjects(ctx, gomock.Any()).Return(&aws_s3.DeleteObjectsOutput{
			Errors: []types.Error{{
				Code:    aws.String("AccessDenied"),
				Key:     aws.String("b.gor"),
				Message: aws.String("Access Denied"),
			}},
		}, nil)

		err := objectStore.Delete(ctx, "mybucket", []string{"a.gor", "b.gor"})
		var raw *failure.RawFailure
		require.ErrorAs(t, err, &raw)
		require.Equal(t, 403, raw.StatusCode)
		require.Equal(t, "mybucket/b.gor", raw.Path)
	})
}

func TestObjectStoreList(t *testing.T) {
	ctrl, ctx := gomock.WithContext(context.Background(), t)

	client := mock.NewMockS3Client(ctrl)
	objectStore := s3.NewObjectStore(client)

	t.Run("Truncated", func(t *testing.T) {
		client.EXPECT().ListObjectsV2(ctx, &aws_s3.ListObjectsV2Input{
			Bucket:    aws.String("mybucket"),
			Prefix:    aws.String("dir/"),
			Delimiter: aws.String("/"),
			MaxKeys:   aws.Int32(1000),
		}).Return(&aws_s3.ListObjectsV2Output{
			Contents:              []types.Object{{Key: aws.String("dir/a.gor")}},
			CommonPrefixes:        []types.CommonPrefix{{Prefix: aws.String("dir/sub/")}},
			IsTruncated:           aws.Bool(true),
			NextContinuationToken: aws.String("token1"),
		}, nil)

		page, err := objectStore.List(ctx, "mybucket", "dir/", "/", "", 1000)
		require.NoError(t, err)
		require.Equal(t, source.ListPage{
			Keys:                  []string{"dir/a.gor"},
			CommonPrefixes:        []string{"dir/sub/"},
			NextContinuationToken: "token1",
		}, page)
	})

	t.Run("LastPage", func(t *testing.T) {
		client.EXPECT().ListObjectsV2(ctx, &aws_s3.ListObjectsV2Input{
			Bucket:            aws.String("mybucket"),
			Prefix:            aws.String("dir/"),
			ContinuationToken: aws.String("token1"),
			MaxKeys:           aws.Int32(1000),
		}).Return(&aws_s3.ListObjectsV2Output{
			Contents:              []types.Object{{Key: aws.String("dir/sub/b.gor")}},
			IsTruncated:           aws.Bool(false),
			NextContinuationToken: aws.String("ignored"),
		}, nil)

		page, err := objectStore.List(ctx, "mybucket", "dir/", "", "token1", 1000)
		require.NoError(t, err)
		require.Equal(t, source.ListPage{Keys: []string{"dir/sub/b.gor"}}, page)
	})
}
