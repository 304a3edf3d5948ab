package logging

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/sirupsen/logrus"
)

// Middleware attaches a fresh LogData to every request and emits one
// structured completion entry per request.
func Middleware(logger *logrus.Logger) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		logData := NewLogData(logger)
		endTimer := logData.AddTiming("durationMs")

		next(huma.WithValue(ctx, logDataContextKey{}, logData))

		endTimer()
		logData.Log().WithFields(logrus.Fields{
			"method": ctx.Method(),
			"path":   ctx.URL().Path,
			"status": ctx.Status(),
		}).Info("Request.Complete")
	}
}
