package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "beautymarket/internal/delivery/context"
	"beautymarket/internal/domain/entity"
	"beautymarket/internal/domain/service"
	mockService "beautymarket/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthRequest(token string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/account", nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()

	return echo.New().NewContext(req, rec), rec
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	userID := uuid.New()

	t.Run("valid token sets identity", func(t *testing.T) {
		tokenSvc := mockService.NewMockTokenService(t)
		tokenSvc.On("ValidateToken", "good", service.TokenTypeAccess).
			Return(&service.Claims{UserID: userID, Roles: []string{"seller"}}, nil)

		c, _ := newAuthRequest("good")
		var seen, fromCtx uuid.UUID
		err := NewAuthMiddleware(tokenSvc).Authenticate(func(c echo.Context) error {
			seen, _ = GetUserID(c)
			fromCtx, _ = deliverycontext.GetUserIDFromContext(c.Request().Context())

			return c.NoContent(http.StatusOK)
		})(c)

		require.NoError(t, err)
		assert.Equal(t, userID, seen)
		assert.Equal(t, userID, fromCtx)
	})

	t.Run("missing header", func(t *testing.T) {
		c, rec := newAuthRequest("")

		err := NewAuthMiddleware(mockService.NewMockTokenService(t)).Authenticate(func(c echo.Context) error {
			t.Fatal("handler must not run")

			return nil
		})(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "MISSING_TOKEN")
	})

	t.Run("invalid token", func(t *testing.T) {
		tokenSvc := mockService.NewMockTokenService(t)
		tokenSvc.On("ValidateToken", "bad", service.TokenTypeAccess).Return(nil, errors.New("expired"))
		c, rec := newAuthRequest("bad")

		err := NewAuthMiddleware(tokenSvc).Authenticate(func(c echo.Context) error {
			t.Fatal("handler must not run")

			return nil
		})(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "INVALID_TOKEN")
	})
}

func TestAuthMiddleware_Optional(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	tokenSvc.On("ValidateToken", "bad", service.TokenTypeAccess).Return(nil, errors.New("expired"))
	m := NewAuthMiddleware(tokenSvc)

	for _, token := range []string{"", "bad"} {
		c, rec := newAuthRequest(token)

		err := m.Optional(func(c echo.Context) error {
			assert.Nil(t, GetOptionalUserID(c))

			return c.NoContent(http.StatusOK)
		})(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	m := NewAuthMiddleware(mockService.NewMockTokenService(t))
	ok := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	c, rec := newAuthRequest("")
	c.Set(contextKeyRoles, []string{"buyer"})
	require.NoError(t, m.RequireRole(entity.RoleAdmin)(ok)(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	c, rec = newAuthRequest("")
	c.Set(contextKeyRoles, []string{"admin"})
	require.NoError(t, m.RequireRole(entity.RoleAdmin)(ok)(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
