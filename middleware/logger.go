package middleware

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// RequestIDKey is the Locals key holding the per-request id
const RequestIDKey = "requestID"

// StructuredLogger logs one line per request. Client addresses are not logged;
// responses store them only as hashes.
func StructuredLogger(logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		requestID := c.Get(fiber.HeaderXRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Locals(RequestIDKey, requestID)
		c.Set(fiber.HeaderXRequestID, requestID)

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			}
		}

		logAttrs := []slog.Attr{
			slog.String("request_id", requestID),
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.Int("status", status),
			slog.Duration("latency", time.Since(start)),
			slog.Int("bytes", len(c.Response().Body())),
		}

		if surveyID := c.Params("id"); surveyID != "" {
			logAttrs = append(logAttrs, slog.String("resource_id", surveyID))
		}

		switch {
		case err != nil:
			logAttrs = append(logAttrs, slog.String("error", err.Error()))
			logger.LogAttrs(c.Context(), slog.LevelError, "request error", logAttrs...)
		case status >= 500:
			logger.LogAttrs(c.Context(), slog.LevelError, "server error", logAttrs...)
		case status >= 400:
			logger.LogAttrs(c.Context(), slog.LevelWarn, "client error", logAttrs...)
		case c.Path() == "/health":
			logger.LogAttrs(c.Context(), slog.LevelDebug, "health check", logAttrs...)
		default:
			logger.LogAttrs(c.Context(), slog.LevelInfo, "request completed", logAttrs...)
		}

		return err
	}
}

// RequestID returns the id assigned by StructuredLogger, or "" outside it
func RequestID(c *fiber.Ctx) string {
	id, _ := c.Locals(RequestIDKey).(string)
	return id
}
