package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"beautymarket/config"
	deliverycontext "beautymarket/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// LoggerMiddleware writes one access log line per request.
type LoggerMiddleware struct {
	logger       *slog.Logger
	successLevel slog.Level
}

// NewLoggerMiddleware logs successful requests at info in debug mode and at debug otherwise.
func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	successLevel := slog.LevelDebug
	if config.Env.Debug {
		successLevel = slog.LevelInfo
	}

	return &LoggerMiddleware{
		logger:       logger,
		successLevel: successLevel,
	}
}

// Handle processes request logging
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		m.logRequest(c, start, err)

		return err
	}
}

func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, err error) {
	req := c.Request()
	status := c.Response().Status
	if err != nil {
		// The central error handler has not written the response yet.
		status = http.StatusInternalServerError
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			status = httpErr.Code
		}
	}

	level := m.successLevel
	switch {
	case status >= 500:
		level = slog.LevelError
	case status >= 400:
		level = slog.LevelWarn
	}

	// Authentication may have replaced the request logger with one carrying user_id.
	ctx := req.Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, m.logger)
	if !logger.Enabled(ctx, level) {
		return
	}

	fields := []slog.Attr{
		slog.String("method", req.Method),
		slog.String("route", c.Path()),
		slog.String("uri", req.URL.Path),
		slog.Int("status", status),
		slog.Duration("latency", time.Since(start)),
		slog.String("remote_ip", c.RealIP()),
		slog.String("user_agent", req.UserAgent()),
	}
	if len(req.URL.RawQuery) > 0 {
		fields = append(fields, slog.String("query", req.URL.RawQuery))
	}
	if err != nil {
		fields = append(fields, slog.Any("error", err))
	}

	logger.LogAttrs(ctx, level, "HTTP Request", fields...)
}
