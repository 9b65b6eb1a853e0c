package source

import (
	"bytes"
	"context"
	"io"
	"os"
	"strings"

	"github.com/gorpipe/gor-source/pkg/failure"
	"github.com/gorpipe/gor-source/pkg/retry"
	"github.com/gorpipe/gor-source/pkg/util"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// maximumDeleteBatchSize is the maximum number of keys removed by a
// single call to ObjectStore.Delete().
const maximumDeleteBatchSize = 1000

type objectStoreSource struct {
	reference   Reference
	location    Location
	cacheKey    string
	urlPrefix   string
	store       ObjectStore
	cache       *MetadataCache
	retry       retry.Handler
	errorLogger util.ErrorLogger

	metadata *Metadata
	current  io.ReadCloser
}

// NewObjectStoreSource creates a StreamSource for an object stored in
// an ObjectStore. All calls against the store are performed through
// the retry handler. Metadata is obtained through the cache, which may
// be shared by stores for multiple schemes.
func NewObjectStoreSource(reference Reference, scheme string, location Location, store ObjectStore, cache *MetadataCache, retryHandler retry.Handler, errorLogger util.ErrorLogger) StreamSource {
	return &objectStoreSource{
		reference:   reference,
		location:    location,
		cacheKey:    scheme + "://" + location.String(),
		urlPrefix:   strings.TrimSuffix(reference.URL, location.Key),
		store:       store,
		cache:       cache,
		retry:       retryHandler,
		errorLogger: errorLogger,
	}
}

// startSpan creates a span covering all attempts of a single call
// against the object store.
func (s *objectStoreSource) startSpan(ctx context.Context, operation string) (context.Context, trace.Span) {
	return otel.Tracer("github.com/gorpipe/gor-source/pkg/source").Start(
		ctx,
		"ObjectStore."+operation,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("gor.url", s.reference.URL),
			attribute.String("gor.bucket", s.location.Bucket),
			attribute.String("gor.key", s.location.Key)))
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func (s *objectStoreSource) Name() string {
	return s.reference.URL
}

func (s *objectStoreSource) Reference() Reference {
	return s.reference
}

func (s *objectStoreSource) Open(ctx context.Context) (io.ReadCloser, error) {
	return s.open(ctx, FullRange(), false)
}

func (s *objectStoreSource) OpenFrom(ctx context.Context, start int64) (io.ReadCloser, error) {
	metadata, err := s.Metadata(ctx)
	if err != nil {
		return nil, err
	}
	return s.open(ctx, RangeFromFirstLength(start, metadata.Length), true)
}

func (s *objectStoreSource) OpenRange(ctx context.Context, start, minLength int64) (io.ReadCloser, error) {
	return s.open(ctx, RangeFromFirstLength(start, minLength), true)
}

func (s *objectStoreSource) closeCurrent() {
	if s.current != nil {
		if err := s.current.Close(); err != nil {
			s.errorLogger.Log(failure.Wrap(err, failure.Unclassified, s.reference.URL, "Failed to close previous stream"))
		}
		s.current = nil
	}
}

func (s *objectStoreSource) open(ctx context.Context, r RequestRange, clamp bool) (io.ReadCloser, error) {
	s.closeCurrent()
	if clamp {
		metadata, err := s.Metadata(ctx)
		if err != nil {
			return nil, err
		}
		if r = r.LimitTo(metadata.Length); r.IsEmpty() {
			return io.NopCloser(bytes.NewReader(nil)), nil
		}
	}

	ctx, span := s.startSpan(ctx, "GetRange")
	span.SetAttributes(
		attribute.Int64("gor.range.first", r.First),
		attribute.Int64("gor.range.length", r.Length))
	body, err := retry.Do(ctx, s.retry, func(context.Context) (io.ReadCloser, error) {
		// Streams outlive the attempt that opened them, so they
		// are bound to the caller's context.
		return s.store.GetRange(ctx, s.location, r)
	})
	endSpan(span, err)
	if err != nil {
		return nil, err
	}
	s.current = body
	return body, nil
}

func (s *objectStoreSource) Metadata(ctx context.Context) (*Metadata, error) {
	if s.metadata != nil {
		return s.metadata, nil
	}
	ctx, span := s.startSpan(ctx, "GetAttributes")
	attributes, err := retry.Do(ctx, s.retry, func(ctx context.Context) (Attributes, error) {
		return s.cache.Get(ctx, s.cacheKey, func(ctx context.Context) (Attributes, error) {
			return s.store.GetAttributes(ctx, s.location)
		})
	})
	endSpan(span, err)
	if err != nil {
		return nil, err
	}
	s.metadata = newMetadata(s.reference, attributes)
	return s.metadata, nil
}

// isMissing returns whether an error indicates that an object either
// does not exist, or cannot be accessed.
func isMissing(err error) bool {
	return failure.IsNotFound(err) || failure.IsKind(err, failure.Unauthorized, failure.AccessDenied)
}

func (s *objectStoreSource) Exists(ctx context.Context) (bool, error) {
	if _, err := s.Metadata(ctx); err == nil {
		return true, nil
	} else if !isMissing(err) {
		return false, err
	}
	isDirectory, err := s.IsDirectory(ctx)
	if err != nil {
		if isMissing(err) {
			return false, nil
		}
		return false, err
	}
	return isDirectory, nil
}

func (s *objectStoreSource) list(ctx context.Context, prefix, delimiter, continuationToken string, maxKeys int) (ListPage, error) {
	ctx, span := s.startSpan(ctx, "List")
	page, err := retry.Do(ctx, s.retry, func(ctx context.Context) (ListPage, error) {
		return s.store.List(ctx, s.location.Bucket, prefix, delimiter, continuationToken, maxKeys)
	})
	endSpan(span, err)
	return page, err
}

func (s *objectStoreSource) delete(ctx context.Context, keys []string) error {
	ctx, span := s.startSpan(ctx, "Delete")
	span.SetAttributes(attribute.Int("gor.keys", len(keys)))
	err := s.retry.Perform(ctx, func(ctx context.Context) error {
		return s.store.Delete(ctx, s.location.Bucket, keys)
	})
	endSpan(span, err)
	return err
}

func (s *objectStoreSource) IsDirectory(ctx context.Context) (bool, error) {
	if strings.HasSuffix(s.location.Key, "/") {
		return true, nil
	}
	page, err := s.list(ctx, s.location.DirectoryPrefix(), "/", "", 1)
	if err != nil {
		return false, err
	}
	return len(page.Keys)+len(page.CommonPrefixes) > 0, nil
}

func (s *objectStoreSource) invalidate() {
	s.metadata = nil
	s.cache.Invalidate(s.cacheKey)
}

func (s *objectStoreSource) Delete(ctx context.Context) error {
	defer s.invalidate()
	s.closeCurrent()
	if err := s.delete(ctx, []string{s.location.Key}); err != nil && !failure.IsNotFound(err) {
		return err
	}
	return nil
}

func (s *objectStoreSource) DeleteDirectory(ctx context.Context) error {
	defer s.invalidate()
	prefix := s.location.DirectoryPrefix()
	continuationToken := ""
	for first := true; ; first = false {
		page, err := s.list(ctx, prefix, "", continuationToken, maximumDeleteBatchSize)
		if err != nil {
			return err
		}
		if first && len(page.Keys) == 0 {
			return failure.New(failure.NotFound, s.reference.URL, "Directory does not exist")
		}
		for keys := page.Keys; len(keys) > 0; {
			batch := keys[:min(len(keys), maximumDeleteBatchSize)]
			keys = keys[len(batch):]
			if err := s.delete(ctx, batch); err != nil {
				return err
			}
		}
		if page.NextContinuationToken == "" {
			return nil
		}
		continuationToken = page.NextContinuationToken
	}
}

// listURLs returns the URLs of all entries matching the directory
// prefix of the source, following continuation tokens.
func (s *objectStoreSource) listURLs(ctx context.Context, delimiter string) ([]string, error) {
	var children []string
	continuationToken := ""
	for {
		page, err := s.list(ctx, s.location.DirectoryPrefix(), delimiter, continuationToken, maximumDeleteBatchSize)
		if err != nil {
			return nil, err
		}
		for _, key := range page.CommonPrefixes {
			children = append(children, s.urlPrefix+key)
		}
		for _, key := range page.Keys {
			children = append(children, s.urlPrefix+key)
		}
		if page.NextContinuationToken == "" {
			return children, nil
		}
		continuationToken = page.NextContinuationToken
	}
}

func (s *objectStoreSource) List(ctx context.Context) ([]string, error) {
	return s.listURLs(ctx, "/")
}

func (s *objectStoreSource) Walk(ctx context.Context) ([]string, error) {
	return s.listURLs(ctx, "")
}

func (s *objectStoreSource) Copy(ctx context.Context, destination StreamSource) error {
	r, err := s.Open(ctx)
	if err != nil {
		return err
	}
	defer s.closeCurrent()

	w, err := destination.Create(ctx)
	if err != nil {
		return err
	}
	if _, err := io.Copy(w, r); err != nil {
		w.Abort()
		return err
	}
	return w.Close()
}

func (s *objectStoreSource) Create(ctx context.Context) (Writer, error) {
	s.invalidate()
	f, err := os.CreateTemp("", "gor-upload-*")
	if err != nil {
		return nil, failure.Wrap(err, failure.System, s.reference.URL, "Failed to create upload buffer")
	}
	return &uploadingWriter{
		ctx:    ctx,
		source: s,
		buffer: f,
	}, nil
}

// uploadingWriter buffers data written to it in a temporary file, and
// stores it in the object store when closed. Aborting the writer
// discards the buffer without storing anything.
type uploadingWriter struct {
	ctx    context.Context
	source *objectStoreSource
	buffer *os.File
	size   int64
	closed bool
}

func (w *uploadingWriter) Write(p []byte) (int, error) {
	if w.closed {
		return 0, os.ErrClosed
	}
	n, err := w.buffer.Write(p)
	w.size += int64(n)
	return n, err
}

func (w *uploadingWriter) removeBuffer() {
	s := w.source
	name := w.buffer.Name()
	if err := w.buffer.Close(); err != nil {
		s.errorLogger.Log(failure.Wrap(err, failure.System, s.reference.URL, "Failed to close upload buffer"))
	}
	if err := os.Remove(name); err != nil {
		s.errorLogger.Log(failure.Wrap(err, failure.System, s.reference.URL, "Failed to remove upload buffer"))
	}
}

func (w *uploadingWriter) Abort() {
	if !w.closed {
		w.closed = true
		w.removeBuffer()
	}
}

func (w *uploadingWriter) Close() error {
	if w.closed {
		return os.ErrClosed
	}
	w.closed = true
	s := w.source
	defer func() {
		w.removeBuffer()
		s.invalidate()
	}()

	ctx, span := s.startSpan(w.ctx, "Put")
	span.SetAttributes(attribute.Int64("gor.size", w.size))
	err := s.retry.Perform(ctx, func(ctx context.Context) error {
		if _, err := w.buffer.Seek(0, io.SeekStart); err != nil {
			return failure.Wrap(err, failure.System, s.reference.URL, "Failed to rewind upload buffer")
		}
		return s.store.Put(ctx, s.location, w.buffer, w.size)
	})
	endSpan(span, err)
	return err
}
