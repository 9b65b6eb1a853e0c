package global_test

import (
	"context"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gorpipe/gor-source/pkg/global"
	"github.com/gorpipe/gor-source/pkg/program"
	pb "github.com/gorpipe/gor-source/pkg/proto/configuration/global"
	"github.com/stretchr/testify/require"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace/noop"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/durationpb"
	"google.golang.org/protobuf/types/known/emptypb"
)

func TestApplyConfiguration(t *testing.T) {
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	t.Run("Default", func(t *testing.T) {
		_, err := global.ApplyConfiguration(nil)
		require.NoError(t, err)
	})

	t.Run("LogPaths", func(t *testing.T) {
		logPath := filepath.Join(t.TempDir(), "gor.log")
		_, err := global.ApplyConfiguration(&pb.Configuration{
			LogPaths: []string{logPath},
		})
		require.NoError(t, err)

		log.Print("Reading s3://mybucket/file.gorz")
		data, err := os.ReadFile(logPath)
		require.NoError(t, err)
		require.Contains(t, string(data), "Reading s3://mybucket/file.gorz")
	})

	t.Run("InvalidLogPath", func(t *testing.T) {
		_, err := global.ApplyConfiguration(&pb.Configuration{
			LogPaths: []string{filepath.Join(t.TempDir(), "nonexistent", "gor.log")},
		})
		require.Error(t, err)
		require.Contains(t, status.Convert(err).Message(), "Failed to open log path")
	})

	t.Run("InvalidPushInterval", func(t *testing.T) {
		_, err := global.ApplyConfiguration(&pb.Configuration{
			PrometheusPushgateway: &pb.PrometheusPushgatewayConfiguration{
				Url: "http://localhost:9091",
				Job: "gor_cat",
			},
		})
		require.Equal(t, status.Error(codes.InvalidArgument, "Prometheus Pushgateway push interval must be positive"), err)
	})

	t.Run("InvalidMetricNamePattern", func(t *testing.T) {
		_, err := global.ApplyConfiguration(&pb.Configuration{
			PrometheusPushgateway: &pb.PrometheusPushgatewayConfiguration{
				Url:               "http://localhost:9091",
				Job:               "gor_cat",
				PushInterval:      durationpb.New(time.Minute),
				MetricNamePattern: "gor_(",
			},
		})
		require.Equal(t, codes.InvalidArgument, status.Code(err))
		require.Contains(t, status.Convert(err).Message(), "Invalid metric name pattern")
	})

	t.Run("UnknownResourceLimit", func(t *testing.T) {
		_, err := global.ApplyConfiguration(&pb.Configuration{
			SetResourceLimits: map[string]*pb.ResourceLimit{
				"FOO": {},
			},
		})
		require.Error(t, err)
		require.Contains(t, status.Convert(err).Message(), "Failed to set resource limit \"FOO\"")
	})
}

func TestLifecycleStatePushgateway(t *testing.T) {
	// Metrics should be pushed once more when the routines that
	// depend on the Pushgateway client complete.
	var pushes atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/metrics/job/gor_cat/instance/test", r.URL.Path)
		pushes.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	lifecycleState, err := global.ApplyConfiguration(&pb.Configuration{
		PrometheusPushgateway: &pb.PrometheusPushgatewayConfiguration{
			Url:               server.URL,
			Job:               "gor_cat",
			Grouping:          map[string]string{"instance": "test"},
			PushInterval:      durationpb.New(time.Hour),
			MetricNamePattern: "^gor_",
		},
	})
	require.NoError(t, err)

	require.NoError(t, program.RunLocal(context.Background(), func(ctx context.Context, siblingsGroup, dependenciesGroup program.Group) error {
		lifecycleState.Start(dependenciesGroup)
		return nil
	}))
	require.Equal(t, int32(1), pushes.Load())
}

func TestLifecycleStatePushgatewayRandomInstance(t *testing.T) {
	paths := make(chan string, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths <- r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	lifecycleState, err := global.ApplyConfiguration(&pb.Configuration{
		PrometheusPushgateway: &pb.PrometheusPushgatewayConfiguration{
			Url:          server.URL,
			Job:          "gor_cat",
			PushInterval: durationpb.New(time.Hour),
		},
	})
	require.NoError(t, err)

	require.NoError(t, program.RunLocal(context.Background(), func(ctx context.Context, siblingsGroup, dependenciesGroup program.Group) error {
		lifecycleState.Start(dependenciesGroup)
		return nil
	}))
	path := <-paths
	require.True(t, strings.HasPrefix(path, "/metrics/job/gor_cat/instance/"), path)
	require.Len(t, strings.TrimPrefix(path, "/metrics/job/gor_cat/instance/"), 36)
}

func TestApplyConfigurationTracing(t *testing.T) {
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		otel.SetTracerProvider(noop.NewTracerProvider())
	})

	t.Run("OTLPExport", func(t *testing.T) {
		var exports atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/v1/traces", r.URL.Path)
			require.Equal(t, "application/x-protobuf", r.Header.Get("Content-Type"))
			require.Equal(t, "gor", r.Header.Get("X-Tenant"))
			exports.Add(1)
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		lifecycleState, err := global.ApplyConfiguration(&pb.Configuration{
			Tracing: &pb.TracingConfiguration{
				Backends: []*pb.TracingBackend{{
					SpanExporter: &pb.TracingBackend_OtlpHttpSpanExporter{
						OtlpHttpSpanExporter: &pb.OtlpHttpSpanExporter{
							EndpointUrl: server.URL + "/v1/traces",
							Headers:     map[string]string{"X-Tenant": "gor"},
						},
					},
					SpanProcessor: &pb.TracingBackend_SimpleSpanProcessor{
						SimpleSpanProcessor: &emptypb.Empty{},
					},
				}},
				ResourceAttributes: map[string]string{"deployment.environment": "test"},
				Sampler: &pb.Sampler{
					Policy: &pb.Sampler_Always{Always: &emptypb.Empty{}},
				},
			},
		})
		require.NoError(t, err)

		// Spans are exported as soon as they end.
		_, span := otel.Tracer("test").Start(context.Background(), "ObjectStore.GetRange")
		span.End()
		require.Equal(t, int32(1), exports.Load())

		require.NoError(t, program.RunLocal(context.Background(), func(ctx context.Context, siblingsGroup, dependenciesGroup program.Group) error {
			lifecycleState.Start(dependenciesGroup)
			return nil
		}))
	})

	t.Run("NeverSample", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("Spans should not be exported")
		}))
		defer server.Close()

		_, err := global.ApplyConfiguration(&pb.Configuration{
			Tracing: &pb.TracingConfiguration{
				Backends: []*pb.TracingBackend{{
					SpanExporter: &pb.TracingBackend_OtlpHttpSpanExporter{
						OtlpHttpSpanExporter: &pb.OtlpHttpSpanExporter{
							EndpointUrl: server.URL + "/v1/traces",
						},
					},
					SpanProcessor: &pb.TracingBackend_SimpleSpanProcessor{
						SimpleSpanProcessor: &emptypb.Empty{},
					},
				}},
				Sampler: &pb.Sampler{
					Policy: &pb.Sampler_Never{Never: &emptypb.Empty{}},
				},
			},
		})
		require.NoError(t, err)

		_, span := otel.Tracer("test").Start(context.Background(), "ObjectStore.GetRange")
		require.False(t, span.SpanContext().IsSampled())
		span.End()
	})

	t.Run("MissingSpanExporter", func(t *testing.T) {
		_, err := global.ApplyConfiguration(&pb.Configuration{
			Tracing: &pb.TracingConfiguration{
				Backends: []*pb.TracingBackend{{
					SpanProcessor: &pb.TracingBackend_BatchSpanProcessor{
						BatchSpanProcessor: &pb.BatchSpanProcessor{},
					},
				}},
			},
		})
		require.Equal(t, status.Error(codes.InvalidArgument, "Failed to create tracer provider: Tracing backend 0: Tracing backend does not contain a valid span exporter"), err)
	})

	t.Run("MissingSampler", func(t *testing.T) {
		_, err := global.ApplyConfiguration(&pb.Configuration{
			Tracing: &pb.TracingConfiguration{},
		})
		require.Equal(t, status.Error(codes.InvalidArgument, "Failed to create tracer provider: Failed to create sampler: No configuration provided"), err)
	})

	t.Run("IncompleteParentBasedSampler", func(t *testing.T) {
		_, err := global.ApplyConfiguration(&pb.Configuration{
			Tracing: &pb.TracingConfiguration{
				Sampler: &pb.Sampler{
					Policy: &pb.Sampler_ParentBased{
						ParentBased: &pb.ParentBasedSampler{
							NoParent: &pb.Sampler{
								Policy: &pb.Sampler_TraceIdRatioBased{TraceIdRatioBased: 0.1},
							},
						},
					},
				},
			},
		})
		require.Equal(t, status.Error(codes.InvalidArgument, "Failed to create tracer provider: Failed to create sampler: Local parent not sampled: No configuration provided"), err)
	})
}
