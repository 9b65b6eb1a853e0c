package global

import (
	"context"
	"io"
	"log"
	"net/http"

	// The pprof package does not provide a function for registering
	// its endpoints against an arbitrary mux. Load it to force
	// registration against the default mux, so we can forward
	// traffic to that mux instead.
	_ "net/http/pprof"
	"os"
	"regexp"
	"sort"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/gorpipe/gor-source/pkg/clock"
	gor_http "github.com/gorpipe/gor-source/pkg/http"
	"github.com/gorpipe/gor-source/pkg/program"
	gor_prometheus "github.com/gorpipe/gor-source/pkg/prometheus"
	pb "github.com/gorpipe/gor-source/pkg/proto/configuration/global"
	"github.com/gorpipe/gor-source/pkg/util"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/client_golang/prometheus/push"

	"go.opentelemetry.io/contrib/propagators/b3"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// LifecycleState is returned by ApplyConfiguration. It can be used by
// the caller to launch the diagnostics web server, the Pushgateway
// client and the tracer provider, and to report whether the
// application is ready.
type LifecycleState struct {
	diagnosticsHTTPServer *pb.DiagnosticsHttpServerConfiguration
	pusher                *push.Pusher
	pushInterval          time.Duration
	tracerProvider        *sdktrace.TracerProvider
	ready                 atomic.Bool
}

// Start marks the process as ready, and launches the diagnostics web
// server, the Pushgateway client and the tracer provider in a group of
// dependencies. They are terminated after the routines depending on
// them complete.
func (ls *LifecycleState) Start(group program.Group) {
	ls.ready.Store(true)
	if ls.diagnosticsHTTPServer != nil {
		group.Go(ls.serveDiagnostics)
	}
	if ls.pusher != nil {
		group.Go(ls.pushMetrics)
	}
	if ls.tracerProvider != nil {
		group.Go(ls.flushSpans)
	}
}

func (ls *LifecycleState) flushSpans(ctx context.Context, siblingsGroup, dependenciesGroup program.Group) error {
	<-ctx.Done()
	// Spans of the final operations may still be queued.
	if err := ls.tracerProvider.Shutdown(context.Background()); err != nil {
		log.Print("Failed to shut down tracer provider: ", err)
	}
	return nil
}

func (ls *LifecycleState) serveDiagnostics(ctx context.Context, siblingsGroup, dependenciesGroup program.Group) error {
	configuration := ls.diagnosticsHTTPServer
	router := mux.NewRouter()
	router.HandleFunc("/-/healthy", func(http.ResponseWriter, *http.Request) {})
	router.HandleFunc("/-/ready", func(w http.ResponseWriter, _ *http.Request) {
		if ls.ready.Load() {
			w.WriteHeader(http.StatusOK)
		} else {
			http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
		}
	})
	if configuration.GetEnablePrometheus() {
		router.Handle("/metrics", promhttp.Handler())
	}
	if configuration.GetEnablePprof() {
		router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)
	}

	server := &http.Server{
		Addr:    configuration.GetListenAddress(),
		Handler: router,
	}
	go func() {
		<-ctx.Done()
		ls.ready.Store(false)
		server.Close()
	}()
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return util.StatusWrap(err, "Diagnostics web server failed")
	}
	return nil
}

func (ls *LifecycleState) pushMetrics(ctx context.Context, siblingsGroup, dependenciesGroup program.Group) error {
	for {
		timer, t := clock.SystemClock.NewTimer(ls.pushInterval)
		select {
		case <-t:
			if err := ls.pusher.Push(); err != nil {
				log.Print("Failed to push metrics to Prometheus Pushgateway: ", err)
			}
		case <-ctx.Done():
			timer.Stop()
			// Push once more, so that metrics of the final
			// interval are not lost.
			if err := ls.pusher.Push(); err != nil {
				log.Print("Failed to push metrics to Prometheus Pushgateway: ", err)
			}
			return nil
		}
	}
}

// ApplyConfiguration applies configuration options to the running
// process. These configuration options are global, in that they apply
// to all binaries, regardless of their purpose.
func ApplyConfiguration(configuration *pb.Configuration) (*LifecycleState, error) {
	if umask := configuration.GetSetUmask(); umask != nil {
		if err := setUmask(umask.Value); err != nil {
			return nil, util.StatusWrap(err, "Failed to set umask")
		}
	}

	// Apply resource limits in a deterministic order.
	resourceLimits := configuration.GetSetResourceLimits()
	resourceNames := make([]string, 0, len(resourceLimits))
	for name := range resourceLimits {
		resourceNames = append(resourceNames, name)
	}
	sort.Strings(resourceNames)
	for _, name := range resourceNames {
		if err := setResourceLimit(name, resourceLimits[name]); err != nil {
			return nil, util.StatusWrapf(err, "Failed to set resource limit %#v", name)
		}
	}

	// Logging.
	logPaths := configuration.GetLogPaths()
	logWriters := append(make([]io.Writer, 0, len(logPaths)+1), os.Stderr)
	for _, logPath := range logPaths {
		w, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o666)
		if err != nil {
			return nil, util.StatusWrapf(err, "Failed to open log path %#v", logPath)
		}
		logWriters = append(logWriters, w)
	}
	log.SetOutput(io.MultiWriter(logWriters...))

	ls := &LifecycleState{
		diagnosticsHTTPServer: configuration.GetDiagnosticsHttpServer(),
	}

	// Perform tracing using OpenTelemetry.
	if tracingConfiguration := configuration.GetTracing(); tracingConfiguration != nil {
		tracerProvider, err := newTracerProviderFromConfiguration(tracingConfiguration)
		if err != nil {
			return nil, util.StatusWrap(err, "Failed to create tracer provider")
		}
		otel.SetTracerProvider(tracerProvider)

		// Construct a propagator which supports both the context and Zipkin B3 propagation standards.
		propagator := propagation.NewCompositeTextMapPropagator(
			propagation.TraceContext{},
			b3.New(b3.WithInjectEncoding(b3.B3MultipleHeader)),
		)
		otel.SetTextMapPropagator(propagator)
		ls.tracerProvider = tracerProvider
	}

	if pushgateway := configuration.GetPrometheusPushgateway(); pushgateway != nil {
		pushInterval, err := util.OptionalDuration(pushgateway.GetPushInterval(), "push interval")
		if err != nil {
			return nil, util.StatusWrap(err, "Failed to parse push interval")
		}
		if pushInterval <= 0 {
			return nil, status.Error(codes.InvalidArgument, "Prometheus Pushgateway push interval must be positive")
		}
		var gatherer prometheus.Gatherer = prometheus.DefaultGatherer
		if pattern := pushgateway.GetMetricNamePattern(); pattern != "" {
			namePattern, err := regexp.Compile(pattern)
			if err != nil {
				return nil, util.StatusWrapWithCode(err, codes.InvalidArgument, "Invalid metric name pattern")
			}
			gatherer = gor_prometheus.NewNameFilteringGatherer(gatherer, namePattern)
		}
		pusher := push.New(pushgateway.GetUrl(), pushgateway.GetJob()).Gatherer(gatherer)
		for key, value := range pushgateway.GetGrouping() {
			pusher.Grouping(key, value)
		}
		if _, ok := pushgateway.GetGrouping()["instance"]; !ok {
			pusher.Grouping("instance", uuid.NewString())
		}
		roundTripper, err := gor_http.NewRoundTripperFromConfiguration(pushgateway.GetHttpClient())
		if err != nil {
			return nil, util.StatusWrap(err, "Failed to create Prometheus Pushgateway HTTP client")
		}
		pusher.Client(&http.Client{
			Transport: gor_http.NewMetricsRoundTripper(roundTripper, "Pushgateway"),
		})
		ls.pusher = pusher
		ls.pushInterval = pushInterval
	}
	return ls, nil
}
