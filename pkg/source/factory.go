package source

import (
	"github.com/gorpipe/gor-source/pkg/failure"
	"github.com/gorpipe/gor-source/pkg/retry"
	"github.com/gorpipe/gor-source/pkg/util"
)

// Factory creates StreamSources for references, selecting the
// ObjectStore based on the scheme of the URL. Sources created by the
// same factory share a MetadataCache.
type Factory struct {
	stores              map[string]ObjectStore
	cache               *MetadataCache
	retryHandlerFactory retry.HandlerFactory
	errorLogger         util.ErrorLogger
}

// NewFactory creates a Factory. Stores are keyed by URL scheme, where
// "file" is used for references without a scheme.
func NewFactory(stores map[string]ObjectStore, cache *MetadataCache, retryHandlerFactory retry.HandlerFactory, errorLogger util.ErrorLogger) *Factory {
	return &Factory{
		stores:              stores,
		cache:               cache,
		retryHandlerFactory: retryHandlerFactory,
		errorLogger:         errorLogger,
	}
}

// NewSource creates a StreamSource for a reference.
func (f *Factory) NewSource(reference Reference) (StreamSource, error) {
	scheme, location, err := ParseLocation(reference.URL)
	if err != nil {
		return nil, err
	}
	store, ok := f.stores[scheme]
	if !ok {
		return nil, failure.Newf(failure.BadRequest, reference.URL, "No object store configured for scheme %#v", scheme)
	}
	return NewObjectStoreSource(
		reference,
		scheme,
		location,
		store,
		f.cache,
		f.retryHandlerFactory(location.String()),
		f.errorLogger), nil
}
