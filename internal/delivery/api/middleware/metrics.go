package middleware

import (
	"net/http"
	"time"

	domainerrors "beautymarket/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RequestObserver records finished HTTP requests.
type RequestObserver interface {
	ObserveRequest(method, route string, status int, elapsed time.Duration)
}

// MetricsMiddleware reports request counts and latency per route.
type MetricsMiddleware struct {
	observer RequestObserver
}

// NewMetricsMiddleware creates the metrics middleware.
func NewMetricsMiddleware(observer RequestObserver) *MetricsMiddleware {
	return &MetricsMiddleware{observer: observer}
}

// Handle observes the request after the handler chain returns.
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		status := c.Response().Status
		if err != nil {
			// The error handler writes the response after this middleware returns.
			status = statusOf(err)
		}

		route := c.Path()
		if route == "" {
			route = "unmatched"
		}
		m.observer.ObserveRequest(c.Request().Method, route, status, time.Since(start))

		return err
	}
}

func statusOf(err error) int {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode()
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}

	return http.StatusInternalServerError
}
