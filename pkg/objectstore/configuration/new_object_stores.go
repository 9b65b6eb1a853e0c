package configuration

import (
	"context"

	"cloud.google.com/go/storage"
	"github.com/gorpipe/gor-source/pkg/cloud/aws"
	"github.com/gorpipe/gor-source/pkg/cloud/gcp"
	gor_http "github.com/gorpipe/gor-source/pkg/http"
	"github.com/gorpipe/gor-source/pkg/objectstore/gcs"
	http_objectstore "github.com/gorpipe/gor-source/pkg/objectstore/http"
	"github.com/gorpipe/gor-source/pkg/objectstore/local"
	"github.com/gorpipe/gor-source/pkg/objectstore/s3"
	pb "github.com/gorpipe/gor-source/pkg/proto/configuration/objectstore"
	"github.com/gorpipe/gor-source/pkg/source"
	"github.com/gorpipe/gor-source/pkg/util"
)

// NewObjectStoresFromConfiguration creates the object stores declared
// in a configuration file, keyed by the URL scheme that they serve.
// Object stores that are not configured cannot be used. The local file
// system serves paths and file:// URLs unless it is disabled.
func NewObjectStoresFromConfiguration(ctx context.Context, configuration *pb.Configuration) (map[string]source.ObjectStore, error) {
	stores := map[string]source.ObjectStore{}
	if !configuration.GetDisableLocal() {
		stores["file"] = local.NewObjectStore()
	}

	if s3Configuration := configuration.GetS3(); s3Configuration != nil {
		client, err := aws.NewS3ClientFromConfiguration(s3Configuration, "S3")
		if err != nil {
			return nil, util.StatusWrap(err, "Failed to create S3 client")
		}
		stores["s3"] = s3.NewObjectStore(client)
	}

	if gcsConfiguration := configuration.GetGcs(); gcsConfiguration != nil {
		clientOptions, err := gcp.NewClientOptionsFromConfiguration(gcsConfiguration, "GCS")
		if err != nil {
			return nil, util.StatusWrap(err, "Failed to create GCS client options")
		}
		client, err := storage.NewClient(ctx, clientOptions...)
		if err != nil {
			return nil, util.StatusWrap(err, "Failed to create GCS client")
		}
		stores["gs"] = gcs.NewObjectStore(gcp.NewWrappedStorageClient(client))
	}

	if httpConfiguration := configuration.GetHttp(); httpConfiguration != nil {
		client, err := gor_http.NewClientFromConfiguration(httpConfiguration, "HTTP")
		if err != nil {
			return nil, util.StatusWrap(err, "Failed to create HTTP client")
		}
		objectStore := http_objectstore.NewObjectStore(client)
		stores["http"] = objectStore
		stores["https"] = objectStore
	}
	return stores, nil
}
