package telemetry

import (
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.osec.io/solverify/internal/core/ports"
)

// instrumentationName identifies spans emitted by this binary.
const instrumentationName = "solverify"

// Setup installs a tracer provider whose spans are bridged to the logger and
// returns a tracer for the application. The provider is registered globally
// so libraries resolving otel.Tracer pick it up too.
func Setup(logger ports.Logger) (trace.Tracer, *sdktrace.TracerProvider) {
	provider := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(NewBridge(logger)),
	)
	otel.SetTracerProvider(provider)
	return provider.Tracer(instrumentationName), provider
}
