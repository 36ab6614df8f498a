// Package google verifies Google Sign-In ID tokens.
package google

import (
	"context"
	"log/slog"

	"beautymarket/config"
	"beautymarket/internal/domain/entity"
	"beautymarket/internal/domain/service"

	"github.com/pkg/errors"
	"google.golang.org/api/idtoken"
)

// TokenValidator checks a token's signature, expiry and audience.
type TokenValidator func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)

// AuthServiceImpl implements service.OAuthAuthService for Google.
type AuthServiceImpl struct {
	clientID string
	validate TokenValidator
	logger   *slog.Logger
}

// NewAuthService creates a Google AuthService backed by idtoken.Validate.
func NewAuthService(cfg *config.Config, logger *slog.Logger) service.OAuthAuthService {
	return NewAuthServiceWithValidator(cfg, logger, idtoken.Validate)
}

// NewAuthServiceWithValidator creates a Google AuthService with a custom validator.
func NewAuthServiceWithValidator(cfg *config.Config, logger *slog.Logger, validate TokenValidator) service.OAuthAuthService {
	clientID := ""
	if cfg.GoogleOAuth != nil {
		clientID = cfg.GoogleOAuth.ClientID
	}

	return &AuthServiceImpl{
		clientID: clientID,
		validate: validate,
		logger:   logger,
	}
}

// VerifyIDToken implements service.OAuthAuthService interface
func (s *AuthServiceImpl) VerifyIDToken(ctx context.Context, idToken string) (*service.OAuthUser, error) {
	if s.clientID == "" {
		return nil, errors.New("google oauth is not configured")
	}

	payload, err := s.validate(ctx, idToken, s.clientID)
	if err != nil {
		s.logger.Warn("Google ID token rejected", slog.Any("error", err))

		return nil, errors.Wrap(err, "token verification failed")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return nil, errors.Errorf("token verification failed: invalid issuer %s", payload.Issuer)
	}

	emailVerified, _ := payload.Claims["email_verified"].(bool)
	if !emailVerified {
		return nil, errors.New("token verification failed: email not verified")
	}

	user := &service.OAuthUser{
		ID:            payload.Subject,
		Email:         claimString(payload.Claims, "email"),
		Name:          claimString(payload.Claims, "name"),
		Provider:      entity.ProviderTypeGoogle,
		AvatarURL:     claimString(payload.Claims, "picture"),
		EmailVerified: emailVerified,
	}
	if user.Email == "" {
		return nil, errors.New("token verification failed: missing email")
	}

	s.logger.Debug("Google ID token verified", slog.String("subject", user.ID))

	return user, nil
}

// GetProvider returns the OAuth provider type
func (s *AuthServiceImpl) GetProvider() entity.ProviderType {
	return entity.ProviderTypeGoogle
}

func claimString(claims map[string]any, key string) string {
	value, _ := claims[key].(string)

	return value
}
