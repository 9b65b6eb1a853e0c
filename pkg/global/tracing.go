package global

import (
	"context"
	"net/http"

	gor_http "github.com/gorpipe/gor-source/pkg/http"
	pb "github.com/gorpipe/gor-source/pkg/proto/configuration/global"
	"github.com/gorpipe/gor-source/pkg/util"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func newSpanExporterFromConfiguration(backend *pb.TracingBackend) (sdktrace.SpanExporter, error) {
	switch spanExporterConfiguration := backend.SpanExporter.(type) {
	case *pb.TracingBackend_JaegerCollectorSpanExporter:
		jaegerConfiguration := spanExporterConfiguration.JaegerCollectorSpanExporter
		var collectorEndpointOptions []jaeger.CollectorEndpointOption
		if endpoint := jaegerConfiguration.GetEndpoint(); endpoint != "" {
			collectorEndpointOptions = append(collectorEndpointOptions, jaeger.WithEndpoint(endpoint))
		}
		roundTripper, err := gor_http.NewRoundTripperFromConfiguration(jaegerConfiguration.GetHttpClient())
		if err != nil {
			return nil, util.StatusWrap(err, "Failed to create Jaeger collector HTTP client")
		}
		collectorEndpointOptions = append(collectorEndpointOptions, jaeger.WithHTTPClient(&http.Client{
			Transport: gor_http.NewMetricsRoundTripper(roundTripper, "Jaeger"),
		}))
		if username := jaegerConfiguration.GetUsername(); username != "" {
			collectorEndpointOptions = append(collectorEndpointOptions, jaeger.WithUsername(username))
		}
		if password := jaegerConfiguration.GetPassword(); password != "" {
			collectorEndpointOptions = append(collectorEndpointOptions, jaeger.WithPassword(password))
		}
		exporter, err := jaeger.New(jaeger.WithCollectorEndpoint(collectorEndpointOptions...))
		if err != nil {
			return nil, util.StatusWrap(err, "Failed to create Jaeger collector span exporter")
		}
		return exporter, nil
	case *pb.TracingBackend_OtlpHttpSpanExporter:
		otlpConfiguration := spanExporterConfiguration.OtlpHttpSpanExporter
		roundTripper, err := gor_http.NewRoundTripperFromConfiguration(otlpConfiguration.GetHttpClient())
		if err != nil {
			return nil, util.StatusWrap(err, "Failed to create OTLP HTTP client")
		}
		clientOptions := []otlptracehttp.Option{
			otlptracehttp.WithHTTPClient(&http.Client{
				Transport: gor_http.NewMetricsRoundTripper(roundTripper, "OTLP"),
			}),
		}
		if endpointURL := otlpConfiguration.GetEndpointUrl(); endpointURL != "" {
			clientOptions = append(clientOptions, otlptracehttp.WithEndpointURL(endpointURL))
		}
		if headers := otlpConfiguration.GetHeaders(); len(headers) > 0 {
			clientOptions = append(clientOptions, otlptracehttp.WithHeaders(headers))
		}
		timeout, err := util.OptionalDuration(otlpConfiguration.GetTimeout(), "OTLP export timeout")
		if err != nil {
			return nil, err
		}
		if timeout > 0 {
			clientOptions = append(clientOptions, otlptracehttp.WithTimeout(timeout))
		}
		exporter, err := otlptrace.New(context.Background(), otlptracehttp.NewClient(clientOptions...))
		if err != nil {
			return nil, util.StatusWrap(err, "Failed to create OTLP span exporter")
		}
		return exporter, nil
	default:
		return nil, status.Error(codes.InvalidArgument, "Tracing backend does not contain a valid span exporter")
	}
}

func newSpanProcessorFromConfiguration(backend *pb.TracingBackend, spanExporter sdktrace.SpanExporter) (sdktrace.SpanProcessor, error) {
	switch spanProcessorConfiguration := backend.SpanProcessor.(type) {
	case *pb.TracingBackend_SimpleSpanProcessor:
		return sdktrace.NewSimpleSpanProcessor(spanExporter), nil
	case *pb.TracingBackend_BatchSpanProcessor:
		batchConfiguration := spanProcessorConfiguration.BatchSpanProcessor
		var batchSpanProcessorOptions []sdktrace.BatchSpanProcessorOption
		batchTimeout, err := util.OptionalDuration(batchConfiguration.GetBatchTimeout(), "batch timeout")
		if err != nil {
			return nil, err
		}
		if batchTimeout > 0 {
			batchSpanProcessorOptions = append(batchSpanProcessorOptions, sdktrace.WithBatchTimeout(batchTimeout))
		}
		if batchConfiguration.GetBlocking() {
			batchSpanProcessorOptions = append(batchSpanProcessorOptions, sdktrace.WithBlocking())
		}
		exportTimeout, err := util.OptionalDuration(batchConfiguration.GetExportTimeout(), "export timeout")
		if err != nil {
			return nil, err
		}
		if exportTimeout > 0 {
			batchSpanProcessorOptions = append(batchSpanProcessorOptions, sdktrace.WithExportTimeout(exportTimeout))
		}
		if size := batchConfiguration.GetMaxExportBatchSize(); size > 0 {
			batchSpanProcessorOptions = append(batchSpanProcessorOptions, sdktrace.WithMaxExportBatchSize(int(size)))
		}
		if size := batchConfiguration.GetMaxQueueSize(); size > 0 {
			batchSpanProcessorOptions = append(batchSpanProcessorOptions, sdktrace.WithMaxQueueSize(int(size)))
		}
		return sdktrace.NewBatchSpanProcessor(spanExporter, batchSpanProcessorOptions...), nil
	default:
		return nil, status.Error(codes.InvalidArgument, "Tracing backend does not contain a valid span processor")
	}
}

// newTracerProviderFromConfiguration creates an OpenTelemetry tracer
// provider that sends spans to all of the configured backends.
func newTracerProviderFromConfiguration(configuration *pb.TracingConfiguration) (*sdktrace.TracerProvider, error) {
	var tracerProviderOptions []sdktrace.TracerProviderOption
	for i, backend := range configuration.GetBackends() {
		spanExporter, err := newSpanExporterFromConfiguration(backend)
		if err != nil {
			return nil, util.StatusWrapf(err, "Tracing backend %d", i)
		}
		spanProcessor, err := newSpanProcessorFromConfiguration(backend, spanExporter)
		if err != nil {
			return nil, util.StatusWrapf(err, "Tracing backend %d", i)
		}
		tracerProviderOptions = append(tracerProviderOptions, sdktrace.WithSpanProcessor(spanProcessor))
	}

	resourceAttributes := []attribute.KeyValue{semconv.ServiceName("gor-source")}
	for key, value := range configuration.GetResourceAttributes() {
		resourceAttributes = append(resourceAttributes, attribute.String(key, value))
	}
	tracerProviderOptions = append(tracerProviderOptions,
		sdktrace.WithResource(resource.NewWithAttributes(semconv.SchemaURL, resourceAttributes...)))

	sampler, err := newSamplerFromConfiguration(configuration.GetSampler())
	if err != nil {
		return nil, util.StatusWrap(err, "Failed to create sampler")
	}
	tracerProviderOptions = append(tracerProviderOptions, sdktrace.WithSampler(sampler))
	return sdktrace.NewTracerProvider(tracerProviderOptions...), nil
}

// newSamplerFromConfiguration creates an OpenTelemetry Sampler based
// on a configuration file.
func newSamplerFromConfiguration(configuration *pb.Sampler) (sdktrace.Sampler, error) {
	if configuration == nil {
		return nil, status.Error(codes.InvalidArgument, "No configuration provided")
	}
	switch policy := configuration.Policy.(type) {
	case *pb.Sampler_Always:
		return sdktrace.AlwaysSample(), nil
	case *pb.Sampler_Never:
		return sdktrace.NeverSample(), nil
	case *pb.Sampler_ParentBased:
		noParent, err := newSamplerFromConfiguration(policy.ParentBased.GetNoParent())
		if err != nil {
			return nil, util.StatusWrap(err, "No parent")
		}
		localParentNotSampled, err := newSamplerFromConfiguration(policy.ParentBased.GetLocalParentNotSampled())
		if err != nil {
			return nil, util.StatusWrap(err, "Local parent not sampled")
		}
		localParentSampled, err := newSamplerFromConfiguration(policy.ParentBased.GetLocalParentSampled())
		if err != nil {
			return nil, util.StatusWrap(err, "Local parent sampled")
		}
		remoteParentNotSampled, err := newSamplerFromConfiguration(policy.ParentBased.GetRemoteParentNotSampled())
		if err != nil {
			return nil, util.StatusWrap(err, "Remote parent not sampled")
		}
		remoteParentSampled, err := newSamplerFromConfiguration(policy.ParentBased.GetRemoteParentSampled())
		if err != nil {
			return nil, util.StatusWrap(err, "Remote parent sampled")
		}
		return sdktrace.ParentBased(
			noParent,
			sdktrace.WithLocalParentNotSampled(localParentNotSampled),
			sdktrace.WithLocalParentSampled(localParentSampled),
			sdktrace.WithRemoteParentNotSampled(remoteParentNotSampled),
			sdktrace.WithRemoteParentSampled(remoteParentSampled)), nil
	case *pb.Sampler_TraceIdRatioBased:
		return sdktrace.TraceIDRatioBased(policy.TraceIdRatioBased), nil
	default:
		return nil, status.Error(codes.InvalidArgument, "Unknown sampling policy")
	}
}
