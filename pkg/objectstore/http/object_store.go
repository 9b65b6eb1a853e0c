package http

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gorpipe/gor-source/pkg/failure"
	gor_http "github.com/gorpipe/gor-source/pkg/http"
	"github.com/gorpipe/gor-source/pkg/source"
)

// maximumErrorBodySize is the number of bytes of a response body that
// are included in failure messages.
const maximumErrorBodySize = 1024

type objectStore struct {
	client gor_http.Client
}

// NewObjectStore creates a read-only ObjectStore that fetches objects
// from HTTP servers. The bucket of a location holds the scheme and
// authority of the URL.
func NewObjectStore(client gor_http.Client) source.ObjectStore {
	return &objectStore{
		client: client,
	}
}

func (s *objectStore) do(ctx context.Context, method string, location source.Location, header http.Header) (*http.Response, error) {
	path := location.String()
	req, err := http.NewRequestWithContext(ctx, method, path, nil)
	if err != nil {
		return nil, failure.NewClientFailure(path, err)
	}
	for key, values := range header {
		req.Header[key] = values
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, failure.NewOtherFailure(path, err)
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusPartialContent {
		message := http.StatusText(resp.StatusCode)
		if body, err := io.ReadAll(io.LimitReader(resp.Body, maximumErrorBodySize)); err == nil && len(body) > 0 {
			message = string(body)
		}
		resp.Body.Close()
		return nil, failure.NewStatusFailure(resp.StatusCode, message, path, nil)
	}
	return resp, nil
}

type readCloser struct {
	io.Reader
	io.Closer
}

func (s *objectStore) GetRange(ctx context.Context, location source.Location, r source.RequestRange) (io.ReadCloser, error) {
	header := http.Header{}
	if !r.IsFull() {
		header.Set("Range", r.HTTPHeader())
	}
	resp, err := s.do(ctx, http.MethodGet, location, header)
	if err != nil {
		return nil, err
	}
	if r.IsFull() || resp.StatusCode == http.StatusPartialContent {
		return resp.Body, nil
	}

	// The server ignored the Range header and returned the full
	// object. Skip the leading part of it.
	if _, err := io.CopyN(io.Discard, resp.Body, r.First); err != nil && err != io.EOF {
		resp.Body.Close()
		return nil, failure.NewOtherFailure(location.String(), err)
	}
	var body io.Reader = resp.Body
	if r.Length != source.ToEnd {
		body = io.LimitReader(resp.Body, r.Length)
	}
	return readCloser{Reader: body, Closer: resp.Body}, nil
}

func (s *objectStore) GetAttributes(ctx context.Context, location source.Location) (source.Attributes, error) {
	resp, err := s.do(ctx, http.MethodHead, location, nil)
	if err != nil {
		return source.Attributes{}, err
	}
	resp.Body.Close()

	if resp.ContentLength < 0 {
		return source.Attributes{}, failure.NewClientFailure(location.String(), errors.New("server did not report the length of the object"))
	}
	attributes := source.Attributes{
		Length:      resp.ContentLength,
		ETag:        resp.Header.Get("ETag"),
		ContentType: resp.Header.Get("Content-Type"),
	}
	if lastModified, err := http.ParseTime(resp.Header.Get("Last-Modified")); err == nil {
		attributes.LastModified = lastModified
	}
	return attributes, nil
}

func (s *objectStore) Put(ctx context.Context, location source.Location, body io.ReadSeeker, size int64) error {
	return failure.New(failure.BadRequest, location.String(), "Objects cannot be written over HTTP")
}

func (s *objectStore) Delete(ctx context.Context, bucket string, keys []string) error {
	return failure.New(failure.BadRequest, bucket, "Objects cannot be deleted over HTTP")
}

// List returns no results, as HTTP provides no way of enumerating
// resources. Every URL is thus considered not to be a directory.
func (s *objectStore) List(ctx context.Context, bucket, prefix, delimiter, continuationToken string, maxKeys int) (source.ListPage, error) {
	return source.ListPage{}, nil
}
