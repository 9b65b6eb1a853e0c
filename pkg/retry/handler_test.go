package retry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gorpipe/gor-source/internal/mock"
	"github.com/gorpipe/gor-source/pkg/failure"
	"github.com/gorpipe/gor-source/pkg/retry"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace/noop"
)

// expectSleep registers an expectation for a timer of a given duration
// that fires immediately.
func expectSleep(ctrl *gomock.Controller, clock *mock.MockClock, d time.Duration) {
	timer := mock.NewMockTimer(ctrl)
	ch := make(chan time.Time, 1)
	ch <- time.Unix(0, 0)
	clock.EXPECT().NewTimer(d).Return(timer, (<-chan time.Time)(ch))
}

func TestFixedRetriesHandler(t *testing.T) {
	ctrl, ctx := gomock.WithContext(context.Background(), t)

	clock := mock.NewMockClock(ctrl)
	clock.EXPECT().Now().Return(time.Unix(1000, 0)).AnyTimes()
	handler := retry.NewHandler(
		clock,
		retry.NewFixedRetriesPolicy(100*time.Millisecond, 300*time.Millisecond, 2, 3),
		"mybucket/mykey",
		retry.ClassifyingHook("mybucket/mykey"),
		0)

	t.Run("Success", func(t *testing.T) {
		calls := 0
		require.NoError(t, handler.Perform(ctx, func(ctx context.Context) error {
			calls++
			return nil
		}))
		require.Equal(t, 1, calls)
	})

	t.Run("TransientFailure", func(t *testing.T) {
		// A single failure without a status code should be
		// retried after the initial delay.
		expectSleep(ctrl, clock, 100*time.Millisecond)

		calls := 0
		require.NoError(t, handler.Perform(ctx, func(ctx context.Context) error {
			calls++
			if calls == 1 {
				return errors.New("connection reset by peer")
			}
			return nil
		}))
		require.Equal(t, 2, calls)
	})

	t.Run("UnmappedStatusExhaustsRetries", func(t *testing.T) {
		// Status codes that are not mapped to a terminal error
		// cause exactly three retries, using exponential
		// backoff that is capped at the maximum delay.
		expectSleep(ctrl, clock, 100*time.Millisecond)
		expectSleep(ctrl, clock, 200*time.Millisecond)
		expectSleep(ctrl, clock, 300*time.Millisecond)

		raw := failure.NewStatusFailure(503, "Slow Down", "mybucket/mykey", nil)
		calls := 0
		err := handler.Perform(ctx, func(ctx context.Context) error {
			calls++
			return raw
		})
		require.Equal(t, 4, calls)
		require.ErrorIs(t, err, raw)
		require.True(t, failure.IsKind(err, failure.Unclassified))
		require.Contains(t, err.Error(), "Retries exhausted after 4 attempts")

		// The error of the final attempt is reported as
		// classified, instead of as the raw status failure.
		var exhausted *failure.Error
		require.True(t, errors.As(err, &exhausted))
		classified, ok := exhausted.Err.(*failure.Error)
		require.True(t, ok)
		require.Equal(t, failure.Resource, classified.Kind)
		require.Contains(t, err.Error(), "Request failed with status code 503")
	})

	t.Run("TerminalStatus", func(t *testing.T) {
		// Status codes that map onto a terminal error kind
		// should not be retried.
		calls := 0
		err := handler.Perform(ctx, func(ctx context.Context) error {
			calls++
			return failure.NewStatusFailure(404, "The specified key does not exist.", "mybucket/mykey", nil)
		})
		require.Equal(t, 1, calls)
		require.True(t, failure.IsKind(err, failure.NotFound))
		require.Contains(t, err.Error(), "Not Found. Detail: The specified key does not exist.")
	})

	t.Run("PassThrough", func(t *testing.T) {
		raw := failure.NewNotFoundFailure("/data/file.gorz", errors.New("no such file or directory"))
		err := handler.Perform(ctx, func(ctx context.Context) error {
			return raw
		})
		require.Same(t, raw, err)
	})

	t.Run("TerminalErrorInsideExecutionError", func(t *testing.T) {
		calls := 0
		err := handler.Perform(ctx, func(ctx context.Context) error {
			calls++
			return &failure.ExecutionError{
				Err: failure.New(failure.DataFormat, "mybucket/mykey", "Could not find zipped block"),
			}
		})
		require.Equal(t, 1, calls)
		require.True(t, failure.IsKind(err, failure.DataFormat))
	})
}

func TestFixedWaitHandler(t *testing.T) {
	ctrl, ctx := gomock.WithContext(context.Background(), t)

	clock := mock.NewMockClock(ctrl)
	handler := retry.NewFixedWaitHandler(
		clock,
		time.Second,
		3*time.Second,
		"https://example.com/file.gorz",
		retry.ClassifyingHook("https://example.com/file.gorz"))

	// Attempts continue for as long as the next attempt starts
	// within the total duration.
	clock.EXPECT().Now().Return(time.Unix(1000, 0)).Times(2)
	expectSleep(ctrl, clock, time.Second)
	clock.EXPECT().Now().Return(time.Unix(1001, 0))
	expectSleep(ctrl, clock, time.Second)
	clock.EXPECT().Now().Return(time.Unix(1002, 0))
	expectSleep(ctrl, clock, time.Second)
	clock.EXPECT().Now().Return(time.Unix(1003, 0))

	calls := 0
	err := handler.Perform(ctx, func(ctx context.Context) error {
		calls++
		return failure.NewStatusFailure(500, "Internal Server Error", "", nil)
	})
	require.Equal(t, 4, calls)
	require.True(t, failure.IsKind(err, failure.Unclassified))
	require.Contains(t, err.Error(), "https://example.com/file.gorz")
}

func TestHandlerInterrupted(t *testing.T) {
	ctrl := gomock.NewController(t)

	clock := mock.NewMockClock(ctrl)
	clock.EXPECT().Now().Return(time.Unix(1000, 0)).AnyTimes()
	timer := mock.NewMockTimer(ctrl)
	clock.EXPECT().NewTimer(time.Second).Return(timer, (<-chan time.Time)(make(chan time.Time)))
	timer.EXPECT().Stop().Return(true)

	handler := retry.NewFixedRetriesHandler(
		clock,
		time.Second,
		time.Second,
		1,
		10,
		"mybucket/mykey",
		retry.ClassifyingHook("mybucket/mykey"))

	// Cancelation while sleeping should terminate the retry loop
	// with a system error. No further attempts are made.
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	err := handler.Perform(ctx, func(ctx context.Context) error {
		calls++
		cancel()
		return errors.New("connection refused")
	})
	require.Equal(t, 1, calls)
	require.True(t, failure.IsKind(err, failure.System))
	require.Contains(t, err.Error(), "Retry interrupted after 1 retries")
	require.ErrorIs(t, err, context.Canceled)
	require.ErrorIs(t, ctx.Err(), context.Canceled)
}

func TestHandlerAttemptTimeout(t *testing.T) {
	ctrl, ctx := gomock.WithContext(context.Background(), t)

	clock := mock.NewMockClock(ctrl)
	clock.EXPECT().Now().Return(time.Unix(1000, 0))
	attemptCtx, attemptCancel := context.WithCancel(ctx)
	clock.EXPECT().NewContextWithTimeout(ctx, 5*time.Second).Return(attemptCtx, attemptCancel)

	handler := retry.NewHandler(clock, retry.NewFixedRetriesPolicy(0, 0, 1, 0), "", nil, 5*time.Second)
	require.NoError(t, handler.Perform(ctx, func(ctx context.Context) error {
		require.Equal(t, attemptCtx.Done(), ctx.Done())
		return nil
	}))
	require.ErrorIs(t, attemptCtx.Err(), context.Canceled)
}

func TestDo(t *testing.T) {
	ctrl, ctx := gomock.WithContext(context.Background(), t)

	clock := mock.NewMockClock(ctrl)
	clock.EXPECT().Now().Return(time.Unix(1000, 0)).AnyTimes()
	handler := retry.NewHandler(clock, retry.NewFixedRetriesPolicy(0, 0, 1, 0), "", nil, 0)

	t.Run("Success", func(t *testing.T) {
		length, err := retry.Do(ctx, handler, func(ctx context.Context) (int64, error) {
			return 120, nil
		})
		require.NoError(t, err)
		require.Equal(t, int64(120), length)
	})

	t.Run("Failure", func(t *testing.T) {
		length, err := retry.Do(ctx, handler, func(ctx context.Context) (int64, error) {
			return 120, errors.New("connection refused")
		})
		require.True(t, failure.IsKind(err, failure.Unclassified))
		require.Equal(t, int64(0), length)
	})
}

func TestHandlerTracing(t *testing.T) {
	ctrl, ctx := gomock.WithContext(context.Background(), t)

	spanRecorder := tracetest.NewSpanRecorder()
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(spanRecorder)))
	t.Cleanup(func() { otel.SetTracerProvider(noop.NewTracerProvider()) })

	clock := mock.NewMockClock(ctrl)
	clock.EXPECT().Now().Return(time.Unix(1000, 0)).AnyTimes()
	handler := retry.NewHandler(
		clock,
		retry.NewFixedRetriesPolicy(100*time.Millisecond, 100*time.Millisecond, 1, 1),
		"mybucket/mykey",
		retry.ClassifyingHook("mybucket/mykey"),
		0)

	// Every attempt is recorded as a separate span, carrying the
	// attempt number and the outcome.
	expectSleep(ctrl, clock, 100*time.Millisecond)
	err := handler.Perform(ctx, func(ctx context.Context) error {
		return failure.NewStatusFailure(503, "Slow Down", "mybucket/mykey", nil)
	})
	require.True(t, failure.IsKind(err, failure.Unclassified))

	spans := spanRecorder.Ended()
	require.Len(t, spans, 2)
	for i, outcome := range []string{"Retried", "Exhausted"} {
		span := spans[i]
		require.Equal(t, "retry.Attempt", span.Name())
		require.Equal(t, codes.Error, span.Status().Code)
		require.Contains(t, span.Status().Description, "Request failed with status code 503")
		require.ElementsMatch(t, []attribute.KeyValue{
			attribute.String("gor.path", "mybucket/mykey"),
			attribute.String("gor.retry.policy", "FixedRetries"),
			attribute.Int("gor.retry.attempt", i+1),
			attribute.String("gor.retry.outcome", outcome),
		}, span.Attributes())
	}

	require.NoError(t, handler.Perform(ctx, func(ctx context.Context) error {
		return nil
	}))
	spans = spanRecorder.Ended()
	require.Len(t, spans, 3)
	require.Equal(t, codes.Unset, spans[2].Status().Code)
	require.Contains(t, spans[2].Attributes(), attribute.String("gor.retry.outcome", "Succeeded"))
}
