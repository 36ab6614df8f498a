package google

import (
	"context"
	"log/slog"
	"testing"

	"beautymarket/config"
	"beautymarket/internal/domain/entity"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestConfig() *config.Config {
	return &config.Config{GoogleOAuth: &config.GoogleOAuthConfig{ClientID: "test_client_id"}}
}

func stubValidator(payload *idtoken.Payload, err error) TokenValidator {
	return func(_ context.Context, _, audience string) (*idtoken.Payload, error) {
		if err != nil {
			return nil, err
		}
		if audience != payload.Audience {
			return nil, errors.New("audience mismatch")
		}

		return payload, nil
	}
}

func googlePayload(verified bool) *idtoken.Payload {
	return &idtoken.Payload{
		Issuer:   "https://accounts.google.com",
		Audience: "test_client_id",
		Subject:  "test_user_123",
		Claims: map[string]any{
			"email":          "test@example.com",
			"email_verified": verified,
			"name":           "Test User",
			"picture":        "https://example.com/avatar.png",
		},
	}
}

func TestAuthService_VerifyIDToken(t *testing.T) {
	authService := NewAuthServiceWithValidator(newTestConfig(), slog.Default(), stubValidator(googlePayload(true), nil))

	user, err := authService.VerifyIDToken(context.Background(), "token")
	require.NoError(t, err)
	assert.Equal(t, "test_user_123", user.ID)
	assert.Equal(t, "test@example.com", user.Email)
	assert.Equal(t, "Test User", user.Name)
	assert.Equal(t, "https://example.com/avatar.png", user.AvatarURL)
	assert.Equal(t, entity.ProviderTypeGoogle, user.Provider)
	assert.True(t, user.EmailVerified)
}

func TestAuthService_VerifyIDToken_ValidatorError(t *testing.T) {
	authService := NewAuthServiceWithValidator(newTestConfig(), slog.Default(), stubValidator(nil, errors.New("bad signature")))

	user, err := authService.VerifyIDToken(context.Background(), "token")
	assert.Error(t, err)
	assert.Nil(t, user)
	assert.Contains(t, err.Error(), "token verification failed")
}

func TestAuthService_VerifyIDToken_UnverifiedEmail(t *testing.T) {
	authService := NewAuthServiceWithValidator(newTestConfig(), slog.Default(), stubValidator(googlePayload(false), nil))

	user, err := authService.VerifyIDToken(context.Background(), "token")
	assert.Error(t, err)
	assert.Nil(t, user)
	assert.Contains(t, err.Error(), "email not verified")
}

func TestAuthService_VerifyIDToken_WrongIssuer(t *testing.T) {
	payload := googlePayload(true)
	payload.Issuer = "https://evil.example.com"
	authService := NewAuthServiceWithValidator(newTestConfig(), slog.Default(), stubValidator(payload, nil))

	_, err := authService.VerifyIDToken(context.Background(), "token")
	assert.Error(t, err)
}

func TestAuthService_NotConfigured(t *testing.T) {
	authService := NewAuthService(&config.Config{}, slog.Default())

	_, err := authService.VerifyIDToken(context.Background(), "token")
	assert.Error(t, err)
}

func TestAuthService_GetProvider(t *testing.T) {
	authService := NewAuthService(newTestConfig(), slog.Default())

	assert.Equal(t, entity.ProviderTypeGoogle, authService.GetProvider())
}
