package mock

//go:generate mockgen -destination aliases.go -package mock github.com/gorpipe/gor-source/internal/mock/aliases ReadCloser,WriteCloser
//go:generate mockgen -destination aws.go -package mock github.com/gorpipe/gor-source/pkg/cloud/aws S3Client
//go:generate mockgen -destination clock.go -package mock github.com/gorpipe/gor-source/pkg/clock Clock,Timer
//go:generate mockgen -destination gcp.go -package mock github.com/gorpipe/gor-source/pkg/cloud/gcp StorageClient,StorageBucketHandle,StorageObjectHandle
//go:generate mockgen -destination http.go -package mock -mock_names Client=MockHTTPClient github.com/gorpipe/gor-source/pkg/http Client
//go:generate mockgen -destination source.go -package mock github.com/gorpipe/gor-source/pkg/source ObjectStore
//go:generate mockgen -destination util.go -package mock github.com/gorpipe/gor-source/pkg/util ErrorLogger
