package middleware

import (
	"log/slog"
	"regexp"

	"beautymarket/config"
	"beautymarket/internal/delivery/api/response"
	deliverycontext "beautymarket/internal/delivery/context"
	domainerrors "beautymarket/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

var suspiciousPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(union\s+(all\s+)?select|select\s+.+\s+from|insert\s+into|delete\s+from|drop\s+(table|database)|update\s+\w+\s+set|exec(ute)?\s*\()`),
	regexp.MustCompile(`(--|/\*|\*/)`),
	regexp.MustCompile(`(?i)<script[^>]*>`),
	regexp.MustCompile(`(?i)javascript:`),
	regexp.MustCompile(`(?i)\bon\w+\s*=`),
}

// SecurityMiddleware sets browser hardening headers and rejects suspicious query strings.
type SecurityMiddleware struct {
	blockSuspicious bool
	logger          *slog.Logger
}

// NewSecurityMiddleware creates the security middleware.
func NewSecurityMiddleware(cfg *config.Config, logger *slog.Logger) *SecurityMiddleware {
	return &SecurityMiddleware{
		blockSuspicious: cfg.Security.BlockSuspiciousInput,
		logger:          logger,
	}
}

// Handle applies the headers and the input filter.
func (m *SecurityMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Response().Header()
		header.Set(echo.HeaderXContentTypeOptions, "nosniff")
		header.Set(echo.HeaderXFrameOptions, "DENY")
		header.Set(echo.HeaderXXSSProtection, "1; mode=block")
		header.Set(echo.HeaderContentSecurityPolicy, "default-src 'self'")

		if m.blockSuspicious && isSuspiciousQuery(c) {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Warn("Suspicious request rejected",
				slog.String("path", c.Request().URL.Path),
				slog.String("remote_ip", c.RealIP()),
			)

			return response.HandleAppError(c, domainerrors.ErrSuspiciousInput)
		}

		return next(c)
	}
}

func isSuspiciousQuery(c echo.Context) bool {
	for key, values := range c.QueryParams() {
		if matchesSuspicious(key) {
			return true
		}
		for _, value := range values {
			if matchesSuspicious(value) {
				return true
			}
		}
	}

	return false
}

func matchesSuspicious(s string) bool {
	for _, pattern := range suspiciousPatterns {
		if pattern.MatchString(s) {
			return true
		}
	}

	return false
}
