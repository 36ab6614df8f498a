package middleware

import (
	"log/slog"
	"slices"
	"strings"

	"beautymarket/internal/delivery/api/response"
	deliverycontext "beautymarket/internal/delivery/context"
	"beautymarket/internal/domain/entity"
	"beautymarket/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	contextKeyUserID = "userID"
	contextKeyRoles  = "roles"
)

// AuthMiddleware authenticates requests with JWT access tokens.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate rejects requests without a valid access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, ok := bearerToken(c)
		if !ok {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header must carry a Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString, service.TokenTypeAccess)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		setIdentity(c, claims)

		return next(c)
	}
}

// Optional attaches the identity when a valid token is present and lets anonymous requests through.
func (m *AuthMiddleware) Optional(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if tokenString, ok := bearerToken(c); ok {
			if claims, err := m.tokenSvc.ValidateToken(tokenString, service.TokenTypeAccess); err == nil {
				setIdentity(c, claims)
			}
		}

		return next(c)
	}
}

// RequireRole must run after Authenticate.
func (m *AuthMiddleware) RequireRole(required entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			roles, ok := c.Get(contextKeyRoles).([]string)
			if !ok {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: role information missing")
			}
			if !slices.Contains(roles, required.String()) {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: requires '"+required.String()+"' role")
			}

			return next(c)
		}
	}
}

// GetUserID returns the authenticated user set by Authenticate or Optional.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(contextKeyUserID).(uuid.UUID)

	return userID, ok && userID != uuid.Nil
}

// GetOptionalUserID returns nil for anonymous requests.
func GetOptionalUserID(c echo.Context) *uuid.UUID {
	userID, ok := GetUserID(c)
	if !ok {
		return nil
	}

	return &userID
}

func bearerToken(c echo.Context) (string, bool) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		return "", false
	}

	return token, true
}

// setIdentity stores the caller on the echo context and tags the request logger with it.
func setIdentity(c echo.Context, claims *service.Claims) {
	c.Set(contextKeyUserID, claims.UserID)
	c.Set(contextKeyRoles, claims.Roles)

	ctx := c.Request().Context()
	ctx = deliverycontext.WithUserID(ctx, claims.UserID)
	if logger := deliverycontext.GetLogger(ctx); logger != nil {
		ctx = deliverycontext.WithLogger(ctx, logger.With(slog.String("user_id", claims.UserID.String())))
	}
	c.SetRequest(c.Request().WithContext(ctx))
}
