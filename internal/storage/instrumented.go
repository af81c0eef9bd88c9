package storage

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
)

var _ Adapter = (*Instrumented)(nil)

// Instrumented wraps an Adapter with tracing spans and prometheus metrics.
type Instrumented struct {
	next           Adapter
	backend        string
	metricsManager *metrics.Manager
}

func NewInstrumented(next Adapter, backend string, metricsManager *metrics.Manager) *Instrumented {
	return &Instrumented{
		next:           next,
		backend:        backend,
		metricsManager: metricsManager,
	}
}

func (i *Instrumented) Get(ctx context.Context, key string) (_ []byte, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "storage.get", i.spanAttributes(key))
	defer func() {
		// missing keys are a normal outcome, not a span error
		if errors.Is(err, ErrNotFound) {
			tracing.EndSpanWithErrCheck(span, nil)
			return
		}
		tracing.EndSpanWithErrCheck(span, err)
	}()

	defer i.observe("get", time.Now(), &err)
	return i.next.Get(ctx, key)
}

func (i *Instrumented) Set(ctx context.Context, key string, value []byte) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "storage.set", i.spanAttributes(key))
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	span.SetAttributes(attribute.Int("storage.value_size", len(value)))

	defer i.observe("set", time.Now(), &err)
	return i.next.Set(ctx, key, value)
}

func (i *Instrumented) Delete(ctx context.Context, key string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "storage.delete", i.spanAttributes(key))
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	defer i.observe("delete", time.Now(), &err)
	return i.next.Delete(ctx, key)
}

func (i *Instrumented) spanAttributes(key string) trace.SpanStartOption {
	return trace.WithAttributes(
		attribute.String("storage.backend", i.backend),
		attribute.String("storage.key", key),
	)
}

func (i *Instrumented) observe(op string, start time.Time, err *error) {
	if i.metricsManager == nil {
		return
	}

	status := "ok"
	switch {
	case *err == nil:
	case errors.Is(*err, ErrNotFound):
		status = "not_found"
	default:
		status = "error"
	}

	i.metricsManager.CounterStorageOps.WithLabelValues(op, status).Inc()
	i.metricsManager.HistogramStorageDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}
