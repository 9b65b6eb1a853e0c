package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/gorpipe/gor-source/pkg/clock"
	"github.com/gorpipe/gor-source/pkg/failure"
	"github.com/gorpipe/gor-source/pkg/objectstore/local"
	pb "github.com/gorpipe/gor-source/pkg/proto/configuration/gor_cat"
	retry_pb "github.com/gorpipe/gor-source/pkg/proto/configuration/retry"
	"github.com/gorpipe/gor-source/pkg/retry"
	"github.com/gorpipe/gor-source/pkg/source"
	"github.com/gorpipe/gor-source/pkg/unzip"
	"github.com/gorpipe/gor-source/pkg/util"
	"github.com/stretchr/testify/require"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

func newTestFactory(t *testing.T) *source.Factory {
	retryHandlerFactory, err := retry.NewHandlerFactoryFromConfiguration(&retry_pb.Configuration{
		Policy: &retry_pb.Configuration_FixedRetries{
			FixedRetries: &retry_pb.FixedRetriesPolicy{},
		},
	}, clock.SystemClock)
	require.NoError(t, err)
	metadataCache, err := source.NewMetadataCacheFromConfiguration(nil, clock.SystemClock)
	require.NoError(t, err)
	return source.NewFactory(
		map[string]source.ObjectStore{"file": local.NewObjectStore()},
		metadataCache,
		retryHandlerFactory,
		util.DefaultErrorLogger)
}

func TestPerformRead(t *testing.T) {
	ctx := context.Background()
	root := filepath.ToSlash(t.TempDir())
	require.NoError(t, os.WriteFile(root+"/rows.gor", []byte("chrom\tpos\nchr1\t100\nchr1\t200\n"), 0o666))
	factory := newTestFactory(t)

	t.Run("Full", func(t *testing.T) {
		var stdout bytes.Buffer
		require.NoError(t, performRead(ctx, factory, &pb.ReadConfiguration{Url: root + "/rows.gor"}, &stdout))
		require.Equal(t, "chrom\tpos\nchr1\t100\nchr1\t200\n", stdout.String())
	})

	t.Run("Range", func(t *testing.T) {
		var stdout bytes.Buffer
		require.NoError(t, performRead(ctx, factory, &pb.ReadConfiguration{
			Url:    root + "/rows.gor",
			Offset: 10,
			Length: wrapperspb.Int64(9),
		}, &stdout))
		require.Equal(t, "chr1\t100\n", stdout.String())
	})

	t.Run("Offset", func(t *testing.T) {
		var stdout bytes.Buffer
		require.NoError(t, performRead(ctx, factory, &pb.ReadConfiguration{
			Url:    root + "/rows.gor",
			Offset: 19,
		}, &stdout))
		require.Equal(t, "chr1\t200\n", stdout.String())
	})

	t.Run("DecompressBlocks", func(t *testing.T) {
		var compressed bytes.Buffer
		bw, err := unzip.NewBlockWriter(&compressed, unzip.CodecZlib)
		require.NoError(t, err)
		require.NoError(t, bw.WriteHeader("chrom\tpos"))
		require.NoError(t, bw.WriteBlock("chr1", 200, []byte("chr1\t100\nchr1\t200\n")))
		require.NoError(t, bw.Close())
		require.NoError(t, os.WriteFile(root+"/rows.gorz", compressed.Bytes(), 0o666))

		var stdout bytes.Buffer
		require.NoError(t, performRead(ctx, factory, &pb.ReadConfiguration{
			Url:              root + "/rows.gorz",
			DecompressBlocks: true,
		}, &stdout))
		require.Equal(t, "#chrom\tpos\nchr1\t100\nchr1\t200\n", stdout.String())
	})

	t.Run("Destination", func(t *testing.T) {
		var stdout bytes.Buffer
		require.NoError(t, performRead(ctx, factory, &pb.ReadConfiguration{
			Url:         root + "/rows.gor",
			Destination: root + "/copy/rows.gor",
		}, &stdout))
		require.Empty(t, stdout.String())

		data, err := os.ReadFile(root + "/copy/rows.gor")
		require.NoError(t, err)
		require.Equal(t, "chrom\tpos\nchr1\t100\nchr1\t200\n", string(data))
	})

	t.Run("DestinationCorruptBlock", func(t *testing.T) {
		// A block that fails to decompress halfway through the
		// file leaves nothing behind at the destination.
		var compressed bytes.Buffer
		bw, err := unzip.NewBlockWriter(&compressed, unzip.CodecZlib)
		require.NoError(t, err)
		require.NoError(t, bw.WriteHeader("chrom\tpos"))
		require.NoError(t, bw.WriteBlock("chr1", 200, []byte("chr1\t100\nchr1\t200\n")))
		require.NoError(t, bw.Close())
		compressed.WriteString("garbage-without-tabs\n")
		require.NoError(t, os.WriteFile(root+"/corrupt.gorz", compressed.Bytes(), 0o666))

		var stdout bytes.Buffer
		err = performRead(ctx, factory, &pb.ReadConfiguration{
			Url:              root + "/corrupt.gorz",
			DecompressBlocks: true,
			Destination:      root + "/copy/corrupt.gor",
		}, &stdout)
		require.True(t, failure.IsKind(err, failure.DataFormat))
		require.ErrorContains(t, err, "Could not find zipped block")

		_, err = os.Stat(root + "/copy/corrupt.gor")
		require.True(t, os.IsNotExist(err))
	})

	t.Run("ListAndWalk", func(t *testing.T) {
		require.NoError(t, os.MkdirAll(root+"/tree/sub", 0o777))
		require.NoError(t, os.WriteFile(root+"/tree/a.gor", []byte("chrom\tpos\n"), 0o666))
		require.NoError(t, os.WriteFile(root+"/tree/sub/b.gor", []byte("chrom\tpos\n"), 0o666))

		// Listing stops at the first level, while walking
		// descends into subdirectories.
		var stdout bytes.Buffer
		require.NoError(t, performRead(ctx, factory, &pb.ReadConfiguration{
			Url:       root + "/tree",
			Operation: pb.Operation_LIST,
		}, &stdout))
		require.Equal(t, root+"/tree/sub/\n"+root+"/tree/a.gor\n", stdout.String())

		stdout.Reset()
		require.NoError(t, performRead(ctx, factory, &pb.ReadConfiguration{
			Url:       root + "/tree",
			Operation: pb.Operation_WALK,
		}, &stdout))
		require.Equal(t, root+"/tree/a.gor\n"+root+"/tree/sub/b.gor\n", stdout.String())
	})

	t.Run("Exists", func(t *testing.T) {
		var stdout bytes.Buffer
		require.NoError(t, performRead(ctx, factory, &pb.ReadConfiguration{
			Url:       root + "/missing.gor",
			Operation: pb.Operation_EXISTS,
		}, &stdout))
		require.Equal(t, root+"/missing.gor\tfalse\n", stdout.String())
	})

	t.Run("Metadata", func(t *testing.T) {
		var stdout bytes.Buffer
		require.NoError(t, performRead(ctx, factory, &pb.ReadConfiguration{
			Url:       root + "/rows.gor",
			Operation: pb.Operation_METADATA,
		}, &stdout))
		require.Contains(t, stdout.String(), "\"Length\": 28")
		require.Contains(t, stdout.String(), "\"UniqueID\": \""+root+"/rows.gor-")
	})

	t.Run("NotFound", func(t *testing.T) {
		var stdout bytes.Buffer
		err := performRead(ctx, factory, &pb.ReadConfiguration{Url: root + "/missing.gor"}, &stdout)
		require.Error(t, err)
	})

	t.Run("UnknownOperation", func(t *testing.T) {
		var stdout bytes.Buffer
		require.Equal(
			t,
			status.Error(codes.InvalidArgument, "Unknown operation 42"),
			performRead(ctx, factory, &pb.ReadConfiguration{
				Url:       root + "/rows.gor",
				Operation: pb.Operation(42),
			}, &stdout))
	})
}
