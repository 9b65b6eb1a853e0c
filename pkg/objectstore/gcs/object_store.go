package gcs

import (
	"context"
	"errors"
	"io"
	"net/http"

	"cloud.google.com/go/storage"
	"github.com/gorpipe/gor-source/pkg/cloud/gcp"
	"github.com/gorpipe/gor-source/pkg/failure"
	"github.com/gorpipe/gor-source/pkg/source"

	"google.golang.org/api/googleapi"
)

func convertError(err error, path string) error {
	if errors.Is(err, storage.ErrObjectNotExist) || errors.Is(err, storage.ErrBucketNotExist) {
		return failure.NewStatusFailure(http.StatusNotFound, err.Error(), path, err)
	}
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		message := apiErr.Message
		if message == "" {
			message = http.StatusText(apiErr.Code)
		}
		return failure.NewStatusFailure(apiErr.Code, message, path, err)
	}
	return failure.NewOtherFailure(path, err)
}

type objectStore struct {
	client gcp.StorageClient
}

// NewObjectStore creates an ObjectStore that is backed by Google
// Cloud Storage.
func NewObjectStore(client gcp.StorageClient) source.ObjectStore {
	return &objectStore{
		client: client,
	}
}

func (s *objectStore) object(location source.Location) gcp.StorageObjectHandle {
	return s.client.Bucket(location.Bucket).Object(location.Key)
}

func (s *objectStore) GetRange(ctx context.Context, location source.Location, r source.RequestRange) (io.ReadCloser, error) {
	length := gcp.ReadUntilEOF
	if r.Length != source.ToEnd {
		length = r.Length
	}
	body, err := s.object(location).NewRangeReader(ctx, r.First, length)
	if err != nil {
		return nil, convertError(err, location.String())
	}
	return body, nil
}

func (s *objectStore) GetAttributes(ctx context.Context, location source.Location) (source.Attributes, error) {
	attrs, err := s.object(location).Attrs(ctx)
	if err != nil {
		return source.Attributes{}, convertError(err, location.String())
	}
	return source.Attributes{
		Length:       attrs.Size,
		LastModified: attrs.Updated,
		ETag:         attrs.Etag,
		ContentType:  attrs.ContentType,
	}, nil
}

func (s *objectStore) Put(ctx context.Context, location source.Location, body io.ReadSeeker, size int64) error {
	// Canceling the context is the only way to abandon an upload
	// without committing a partially written object.
	ctxWithCancel, cancel := context.WithCancel(ctx)
	defer cancel()

	w := s.object(location).NewWriter(ctxWithCancel)
	if _, err := io.CopyN(w, body, size); err != nil {
		cancel()
		w.Close()
		return convertError(err, location.String())
	}
	if err := w.Close(); err != nil {
		return convertError(err, location.String())
	}
	return nil
}

func (s *objectStore) Delete(ctx context.Context, bucket string, keys []string) error {
	bucketHandle := s.client.Bucket(bucket)
	for _, key := range keys {
		if err := bucketHandle.Object(key).Delete(ctx); err != nil && !errors.Is(err, storage.ErrObjectNotExist) {
			return convertError(err, (source.Location{Bucket: bucket, Key: key}).String())
		}
	}
	return nil
}

func (s *objectStore) List(ctx context.Context, bucket, prefix, delimiter, continuationToken string, maxKeys int) (source.ListPage, error) {
	objects, nextPageToken, err := s.client.Bucket(bucket).ListObjects(
		ctx,
		&storage.Query{
			Prefix:    prefix,
			Delimiter: delimiter,
		},
		continuationToken,
		maxKeys)
	if err != nil {
		return source.ListPage{}, convertError(err, (source.Location{Bucket: bucket, Key: prefix}).String())
	}

	page := source.ListPage{NextContinuationToken: nextPageToken}
	for _, object := range objects {
		// Objects sharing a prefix up to the delimiter are
		// returned as synthetic entries that only have their
		// prefix set.
		if object.Prefix != "" {
			page.CommonPrefixes = append(page.CommonPrefixes, object.Prefix)
		} else {
			page.Keys = append(page.Keys, object.Name)
		}
	}
	return page, nil
}
