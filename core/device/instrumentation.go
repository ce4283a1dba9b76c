package device

import "go.opentelemetry.io/contrib/bridges/otelslog"

const scopeName = "github.com/koscakluka/piano/core/device"

var logger = otelslog.NewLogger(scopeName)
