package middleware

import (
	"log/slog"
	"net"
	"strings"
	"sync"
	"time"

	"beautymarket/config"
	"beautymarket/internal/delivery/api/response"
	domainerrors "beautymarket/internal/domain/errors"
	"beautymarket/internal/domain/service"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

const limiterIdleTTL = 2 * time.Hour

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter throttles requests per client IP with a token bucket.
type RateLimiter struct {
	enabled  bool
	limit    rate.Limit
	burst    int
	metrics  service.MetricsRecorder
	logger   *slog.Logger
	now      func() time.Time
	mu       sync.Mutex
	limiters map[string]*clientLimiter
}

// NewRateLimiter allows cfg.RateLimit.Requests per Window for every IP.
func NewRateLimiter(cfg *config.Config, metrics service.MetricsRecorder, logger *slog.Logger) *RateLimiter {
	rl := cfg.RateLimit

	return &RateLimiter{
		enabled:  rl.Enabled,
		limit:    rate.Every(rl.Window / time.Duration(rl.Requests)),
		burst:    rl.Burst,
		metrics:  metrics,
		logger:   logger,
		now:      time.Now,
		limiters: make(map[string]*clientLimiter),
	}
}

// Handle rejects requests over the limit with 429.
func (rl *RateLimiter) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !rl.enabled {
			return next(c)
		}

		ip := ClientIP(c)
		if !rl.allow(ip) {
			rl.metrics.RateLimited()
			rl.logger.Warn("Rate limit exceeded",
				slog.String("ip", ip),
				slog.String("path", c.Request().URL.Path),
			)

			return response.HandleAppError(c, domainerrors.ErrRateLimited)
		}

		return next(c)
	}
}

func (rl *RateLimiter) allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	entry, ok := rl.limiters[key]
	if !ok {
		rl.evictIdle(now)
		entry = &clientLimiter{limiter: rate.NewLimiter(rl.limit, rl.burst), lastSeen: now}
		rl.limiters[key] = entry
	}
	entry.lastSeen = now

	return entry.limiter.AllowN(now, 1)
}

// evictIdle runs under mu.
func (rl *RateLimiter) evictIdle(now time.Time) {
	for key, entry := range rl.limiters {
		if now.Sub(entry.lastSeen) > limiterIdleTTL {
			delete(rl.limiters, key)
		}
	}
}

// ClientIP prefers the first X-Forwarded-For hop over the socket address.
func ClientIP(c echo.Context) string {
	if forwarded := c.Request().Header.Get(echo.HeaderXForwardedFor); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}

	host, _, err := net.SplitHostPort(c.Request().RemoteAddr)
	if err != nil {
		return c.Request().RemoteAddr
	}

	return host
}
