package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/hrdesk/internal/core/ports"
)

// Setup installs a global tracer provider that reports every span to presenter.
// The returned function shuts the provider down.
func Setup(presenter ports.Presenter) func(context.Context) error {
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(NewBridge(presenter)),
	)
	otel.SetTracerProvider(tp)
	return tp.Shutdown
}
