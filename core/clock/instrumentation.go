package clock

import "go.opentelemetry.io/contrib/bridges/otelslog"

const scopeName = "github.com/koscakluka/piano/core/clock"

var logger = otelslog.NewLogger(scopeName)
