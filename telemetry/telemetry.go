// file: telemetry/telemetry.go

package telemetry

import (
	"time"

	"github.com/getsentry/sentry-go"
	"lifeseeker-api/logger"
)

var enabled bool

// Init configures the Sentry client for error tracking. When no DSN is
// configured the package degrades to log-only mode, which keeps local
// development and tests free of network calls.
func Init(dsn string) error {
	if dsn == "" {
		logger.Log.Warn("Sentry DSN not configured, error telemetry disabled")
		return nil
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              dsn,
		TracesSampleRate: 1.0,
	})
	if err != nil {
		return err
	}

	enabled = true
	logger.Log.Info("Sentry error telemetry initialized")
	return nil
}

// CaptureException reports an error to Sentry. Safe to call when telemetry
// is disabled; the error is always logged either way by the caller.
func CaptureException(err error) {
	if !enabled || err == nil {
		return
	}
	sentry.CaptureException(err)
}

// Flush drains buffered events before process exit.
func Flush() {
	if enabled {
		sentry.Flush(2 * time.Second)
	}
}
