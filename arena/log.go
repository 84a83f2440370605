package arena

import (
	"io"
	"log/slog"
	"os"
)

// Package logger, discarding by default. Faults are logged at Error level
// before panicking so the diagnostic survives even if the panic is
// swallowed upstream.
var logger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Per-allocation Debug tracing - controlled by MEMARENA_LOG_ALLOC env var.
var traceAlloc = os.Getenv("MEMARENA_LOG_ALLOC") != ""

// SetLogger routes the package's diagnostics to l. Nil is ignored.
func SetLogger(l *slog.Logger) {
	if l != nil {
		logger = l
	}
}
