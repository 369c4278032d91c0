package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const (
	TracerName = "litmuschaos.io/hyperion-launcher"
)

// StartTracing starts a span named spanName as a child of the span in ctx
func StartTracing(ctx context.Context, spanName string) (context.Context, trace.Span) {
	return otel.Tracer(TracerName).Start(ctx, spanName)
}
