package retry

import (
	"context"
	"sync"
	"time"

	"github.com/gorpipe/gor-source/pkg/clock"
	"github.com/gorpipe/gor-source/pkg/failure"
	"github.com/prometheus/client_golang/prometheus"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var (
	handlerPrometheusMetrics sync.Once

	handlerAttemptsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gor",
			Subsystem: "retry",
			Name:      "attempts_total",
			Help:      "Number of attempts performed by retry handlers, by outcome.",
		},
		[]string{"policy", "outcome"})
	handlerSleepDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "gor",
			Subsystem: "retry",
			Name:      "sleep_duration_seconds",
			Help:      "Amount of time retry handlers waited in between attempts, in seconds.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 17),
		},
		[]string{"policy"})
)

// Action is an operation that is performed by a Handler, potentially
// multiple times.
type Action func(ctx context.Context) error

// ErrorHook is invoked by Handler each time an attempt fails. It is
// provided the cause of the failure, as computed by Cause(), and
// returns the error under which the failure is reported. If the
// failure is terminal, that error is returned to the caller and no
// further attempts are made. Otherwise it is reported once the retry
// budget is exhausted.
type ErrorHook func(cause error) (mapped error, terminal bool)

// Handler executes actions until they succeed, a terminal error is
// reported by the error hook, or the retry budget is exhausted.
//
// Handlers hold no mutable state, meaning Perform() may be called
// concurrently.
type Handler interface {
	Perform(ctx context.Context, action Action) error
}

// HandlerFactory creates a Handler for operations against the
// resource with a given path.
type HandlerFactory func(path string) Handler

// Do is a convenience function for calling Handler.Perform() with an
// action that yields a value.
func Do[T any](ctx context.Context, h Handler, action func(ctx context.Context) (T, error)) (T, error) {
	var result T
	err := h.Perform(ctx, func(ctx context.Context) error {
		var err error
		result, err = action(ctx)
		return err
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return result, nil
}

type handler struct {
	clock          clock.Clock
	policy         Policy
	path           string
	hook           ErrorHook
	attemptTimeout time.Duration

	succeeded   prometheus.Counter
	terminated  prometheus.Counter
	retried     prometheus.Counter
	exhausted   prometheus.Counter
	interrupted prometheus.Counter
	slept       prometheus.Observer
}

// NewHandler creates a Handler that schedules attempts according to a
// policy. Errors returned by the handler are annotated with the path
// of the resource on which the action operates. If attemptTimeout is
// non-zero, every attempt is given a context that is canceled after
// the timeout elapses.
func NewHandler(clock clock.Clock, policy Policy, path string, hook ErrorHook, attemptTimeout time.Duration) Handler {
	handlerPrometheusMetrics.Do(func() {
		prometheus.MustRegister(handlerAttemptsTotal)
		prometheus.MustRegister(handlerSleepDurationSeconds)
	})

	name := policy.name()
	return &handler{
		clock:          clock,
		policy:         policy,
		path:           path,
		hook:           hook,
		attemptTimeout: attemptTimeout,

		succeeded:   handlerAttemptsTotal.WithLabelValues(name, "Succeeded"),
		terminated:  handlerAttemptsTotal.WithLabelValues(name, "Terminated"),
		retried:     handlerAttemptsTotal.WithLabelValues(name, "Retried"),
		exhausted:   handlerAttemptsTotal.WithLabelValues(name, "Exhausted"),
		interrupted: handlerAttemptsTotal.WithLabelValues(name, "Interrupted"),
		slept:       handlerSleepDurationSeconds.WithLabelValues(name),
	}
}

// NewFixedWaitHandler creates a Handler that waits a constant amount
// of time in between attempts, for as long as the next attempt starts
// within the total duration.
func NewFixedWaitHandler(clock clock.Clock, initialDuration, totalDuration time.Duration, path string, hook ErrorHook) Handler {
	return NewHandler(clock, NewFixedWaitPolicy(initialDuration, totalDuration), path, hook, 0)
}

// NewFixedRetriesHandler creates a Handler that performs a fixed
// number of retries, using exponential backoff.
func NewFixedRetriesHandler(clock clock.Clock, initialSleep, maximumSleep time.Duration, backoffFactor float64, retries int, path string, hook ErrorHook) Handler {
	return NewHandler(clock, NewFixedRetriesPolicy(initialSleep, maximumSleep, backoffFactor, retries), path, hook, 0)
}

// attempt runs the action once. The span describing the attempt is
// returned, so that the outcome can be attached to it.
func (h *handler) attempt(ctx context.Context, tracer trace.Tracer, tries int, action Action) (trace.Span, error) {
	if h.attemptTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = h.clock.NewContextWithTimeout(ctx, h.attemptTimeout)
		defer cancel()
	}
	ctx, span := tracer.Start(ctx, "retry.Attempt", trace.WithAttributes(
		attribute.String("gor.path", h.path),
		attribute.String("gor.retry.policy", h.policy.name()),
		attribute.Int("gor.retry.attempt", tries)))
	return span, action(ctx)
}

func (h *handler) Perform(ctx context.Context, action Action) error {
	tracer := otel.Tracer("github.com/gorpipe/gor-source/pkg/retry")
	schedule := h.policy.newSchedule(h.clock.Now())
	tries := 0
	for {
		tries++
		span, err := h.attempt(ctx, tracer, tries, action)
		if err == nil {
			h.succeeded.Inc()
			endAttemptSpan(span, "Succeeded", nil)
			return nil
		}

		mapped := err
		if h.hook != nil {
			var terminal bool
			if mapped, terminal = h.hook(Cause(err)); terminal {
				h.terminated.Inc()
				endAttemptSpan(span, "Terminated", mapped)
				return mapped
			}
		}

		delay, ok := schedule.next(h.clock.Now())
		if !ok {
			h.exhausted.Inc()
			endAttemptSpan(span, "Exhausted", mapped)
			return failure.Wrapf(mapped, failure.Unclassified, h.path, "Retries exhausted after %d attempts", tries)
		}

		h.retried.Inc()
		endAttemptSpan(span, "Retried", mapped)
		h.slept.Observe(delay.Seconds())
		timer, t := h.clock.NewTimer(delay)
		select {
		case <-t:
		case <-ctx.Done():
			// The context remains canceled, so that callers
			// further up observe the cancelation as well.
			timer.Stop()
			h.interrupted.Inc()
			return failure.Wrapf(ctx.Err(), failure.System, h.path, "Retry interrupted after %d retries", tries)
		}
	}
}

func endAttemptSpan(span trace.Span, outcome string, err error) {
	span.SetAttributes(attribute.String("gor.retry.outcome", outcome))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
