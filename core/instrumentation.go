package piano

import (
	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const scopeName = "github.com/koscakluka/piano/core"

var (
	tracer = otel.Tracer(scopeName)
	meter  = otel.Meter(scopeName)
	logger = otelslog.NewLogger(scopeName)
)

var (
	symphoniesStarted, _    = meter.Int64Counter("piano.symphonies.started", metric.WithDescription("Symphonies that scheduled at least one segment."))
	symphoniesCompleted, _  = meter.Int64Counter("piano.symphonies.completed", metric.WithDescription("Symphonies whose completion ran."))
	symphoniesSuperseded, _ = meter.Int64Counter("piano.symphonies.superseded", metric.WithDescription("Symphonies stopped by a newer Play or by Cancel."))
	rendersFailed, _        = meter.Int64Counter("piano.renders.failed", metric.WithDescription("Renders that reported an error and were treated as completed."))
)
