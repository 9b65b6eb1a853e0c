package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gorpipe/gor-source/pkg/clock"
	"github.com/gorpipe/gor-source/pkg/global"
	objectstore_configuration "github.com/gorpipe/gor-source/pkg/objectstore/configuration"
	"github.com/gorpipe/gor-source/pkg/program"
	pb "github.com/gorpipe/gor-source/pkg/proto/configuration/gor_cat"
	retry_pb "github.com/gorpipe/gor-source/pkg/proto/configuration/retry"
	"github.com/gorpipe/gor-source/pkg/retry"
	"github.com/gorpipe/gor-source/pkg/source"
	"github.com/gorpipe/gor-source/pkg/unzip"
	"github.com/gorpipe/gor-source/pkg/util"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/durationpb"
)

// A utility for reading resources through the streaming source layer.
// Resources are referenced by URL, and may be stored in S3, GCS, on
// HTTP servers or on the local file system. All accesses are retried
// according to the configured retry policy.
//
// Block compressed .gorz files can be expanded to the rows they
// contain, which makes this tool useful for inspecting them.

func main() {
	program.RunMain(func(ctx context.Context, siblingsGroup, dependenciesGroup program.Group) error {
		if len(os.Args) != 2 {
			return status.Error(codes.InvalidArgument, "Usage: gor_cat gor_cat.jsonnet")
		}
		var configuration pb.ApplicationConfiguration
		if err := util.UnmarshalConfigurationFromFile(os.Args[1], &configuration); err != nil {
			return util.StatusWrapf(err, "Failed to read configuration from %s", os.Args[1])
		}
		lifecycleState, err := global.ApplyConfiguration(configuration.GetGlobal())
		if err != nil {
			return util.StatusWrap(err, "Failed to apply global configuration options")
		}

		stores, err := objectstore_configuration.NewObjectStoresFromConfiguration(ctx, configuration.GetStores())
		if err != nil {
			return util.StatusWrap(err, "Failed to create object stores")
		}
		retryConfiguration := configuration.GetRetry()
		if retryConfiguration == nil {
			retryConfiguration = &retry_pb.Configuration{
				Policy: &retry_pb.Configuration_FixedWait{
					FixedWait: &retry_pb.FixedWaitPolicy{
						InitialDuration: durationpb.New(time.Second),
						TotalDuration:   durationpb.New(30 * time.Second),
					},
				},
			}
		}
		retryHandlerFactory, err := retry.NewHandlerFactoryFromConfiguration(retryConfiguration, clock.SystemClock)
		if err != nil {
			return util.StatusWrap(err, "Failed to create retry handler")
		}
		metadataCache, err := source.NewMetadataCacheFromConfiguration(configuration.GetMetadataCache(), clock.SystemClock)
		if err != nil {
			return util.StatusWrap(err, "Failed to create metadata cache")
		}
		factory := source.NewFactory(stores, metadataCache, retryHandlerFactory, util.DefaultErrorLogger)

		lifecycleState.Start(dependenciesGroup)

		for i, read := range configuration.GetReads() {
			if err := performRead(ctx, factory, read, os.Stdout); err != nil {
				return util.StatusWrapf(err, "Read at index %d of %#v failed", i, read.GetUrl())
			}
		}
		return nil
	})
}

func performRead(ctx context.Context, factory *source.Factory, read *pb.ReadConfiguration, stdout io.Writer) error {
	s, err := factory.NewSource(source.NewReference(read.GetUrl()))
	if err != nil {
		return err
	}

	switch read.GetOperation() {
	case pb.Operation_READ:
		return copyContents(ctx, factory, s, read, stdout)
	case pb.Operation_METADATA:
		metadata, err := s.Metadata(ctx)
		if err != nil {
			return err
		}
		encoder := json.NewEncoder(stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(struct {
			*source.Metadata
			UniqueID string
		}{metadata, metadata.UniqueID()})
	case pb.Operation_EXISTS:
		exists, err := s.Exists(ctx)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(stdout, "%s\t%t\n", s.Name(), exists)
		return err
	case pb.Operation_LIST:
		children, err := s.List(ctx)
		if err != nil {
			return err
		}
		return printURLs(stdout, children)
	case pb.Operation_WALK:
		descendants, err := s.Walk(ctx)
		if err != nil {
			return err
		}
		return printURLs(stdout, descendants)
	default:
		return status.Errorf(codes.InvalidArgument, "Unknown operation %d", read.GetOperation())
	}
}

func printURLs(stdout io.Writer, urls []string) error {
	for _, url := range urls {
		if _, err := fmt.Fprintln(stdout, url); err != nil {
			return err
		}
	}
	return nil
}

func copyContents(ctx context.Context, factory *source.Factory, s source.StreamSource, read *pb.ReadConfiguration, stdout io.Writer) error {
	var destination source.StreamSource
	if destinationURL := read.GetDestination(); destinationURL != "" {
		var err error
		destination, err = factory.NewSource(source.NewReference(destinationURL))
		if err != nil {
			return util.StatusWrap(err, "Invalid destination")
		}
		if read.GetLength() == nil && read.GetOffset() == 0 && !read.GetDecompressBlocks() {
			return s.Copy(ctx, destination)
		}
	}

	var r io.ReadCloser
	var err error
	if length := read.GetLength(); length != nil {
		r, err = s.OpenRange(ctx, read.GetOffset(), length.GetValue())
	} else if read.GetOffset() > 0 {
		r, err = s.OpenFrom(ctx, read.GetOffset())
	} else {
		r, err = s.Open(ctx)
	}
	if err != nil {
		return err
	}
	if read.GetDecompressBlocks() {
		r = unzip.NewBlockReader(r, s.Name())
	}
	defer r.Close()

	if destination == nil {
		_, err := io.Copy(stdout, r)
		return err
	}
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
